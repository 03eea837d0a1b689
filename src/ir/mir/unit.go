// Package mir defines the machine-IR model the allocator operates over:
// functions, basic blocks, instructions, and the tagged vreg/preg/imm/label
// operand variant, plus the per-block successor list and live-in/live-out
// sets C2 fills in. It has no notion of a front end, an optimizer, or a
// concrete instruction encoder — those are out of scope (see DESIGN.md).
package mir

import "strings"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Unit is a machine translation unit: an ordered collection of functions.
type Unit struct {
	functions []*Function
}

// ---------------------
// ----- Functions -----
// ---------------------

// NewUnit returns an empty translation unit.
func NewUnit() *Unit {
	return &Unit{}
}

// CreateFunction appends and returns a new, empty function named name.
func (u *Unit) CreateFunction(name string) *Function {
	f := newFunction(len(u.functions), name, u)
	u.functions = append(u.functions, f)
	return f
}

// Functions returns the unit's functions in creation order.
func (u *Unit) Functions() []*Function {
	return u.functions
}

// String provides a print friendly textual dump of every function in the
// unit.
func (u *Unit) String() string {
	var sb strings.Builder
	for _, f := range u.functions {
		sb.WriteString(f.String())
	}
	return sb.String()
}
