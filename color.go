package mars

// A Color tags a warrior for visualization. The engine stores it but never
// interprets it; a renderer supplies the palette and meaning.
type Color struct {
	R, G, B byte
}

// White is the default color assigned to a warrior at load time.
var White = Color{R: 255, G: 255, B: 255}

// AssignColors shuffles palette and assigns one color to each live warrior,
// mirroring a renderer's need to distinguish warriors on screen. If there
// are more live warriors than palette entries, the warriors beyond the
// palette's length keep their current color. The engine does not interpret
// the assignment; it is read back via Core.Color.
func (c *Core) AssignColors(palette []Color) {
	shuffled := make([]Color, len(palette))
	copy(shuffled, palette)
	c.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	for i, w := range c.warriors {
		if i < len(shuffled) {
			w.color = shuffled[i]
		}
	}
}

// Color returns the color tag assigned to the i'th live warrior.
func (c *Core) Color(i int) Color {
	return c.warriors[i].color
}
