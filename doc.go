// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mars implements a Memory Array Redcode Simulator: the virtual
// machine that runs Core Wars warriors. Two or more programs written in
// Redcode are loaded into a shared circular Core and take turns executing
// one instruction at a time; each tries to force the others' processes to
// execute an illegal instruction and die.
//
// The package follows the ICWS-88/94 standards: the eight addressing modes,
// the seven modifiers, and the opcode set including SEQ/CMP as synonyms.
// A graphical renderer, CLI argument handling and color-assignment policy
// are external concerns; mars exposes a load interface, a single-step
// Cycle call, and read-only views of warrior state sufficient to drive one.
package mars
