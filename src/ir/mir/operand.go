package mir

import (
	"fmt"

	"lsra/src/ir/mir/types"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Operand is a tagged variant over VReg/PReg/Imm/Label payloads. Every instance
// additionally knows its parent instruction through a non-owning back-reference:
// the instruction owns the operand slot, never the other way around.
type Operand struct {
	kind    types.Kind
	payload int    // vreg id, preg id, or immediate value, depending on kind.
	label   string // set only when kind == types.Label.
	parent  *Instruction
}

// Value is the comparable identity of an Operand: its tag and payload, independent
// of which instance it is. Two operands with equal Value name the same vreg/preg/
// immediate/label even if they live in different instructions.
type Value struct {
	Kind    types.Kind
	Payload int
}

// ---------------------
// ----- Functions -----
// ---------------------

// NewVReg builds an unparented virtual-register operand naming vreg id.
func NewVReg(id int) *Operand {
	return &Operand{kind: types.VReg, payload: id}
}

// NewPReg builds an unparented physical-register operand naming preg id.
func NewPReg(id int) *Operand {
	return &Operand{kind: types.PReg, payload: id}
}

// NewImm builds an unparented immediate operand carrying value i.
func NewImm(i int) *Operand {
	return &Operand{kind: types.Imm, payload: i}
}

// NewLabelOperand builds an unparented label operand carrying the name s.
func NewLabelOperand(s string) *Operand {
	return &Operand{kind: types.Label, label: s}
}

// Kind returns the operand's tag.
func (o *Operand) Kind() types.Kind {
	return o.kind
}

// Payload returns the operand's integer payload (vreg id, preg id, or immediate
// value). It is meaningless for a Label operand; use Label for that case.
func (o *Operand) Payload() int {
	return o.payload
}

// Label returns the operand's label text. It is meaningless for any kind other
// than types.Label.
func (o *Operand) Label() string {
	return o.label
}

// Parent returns the instruction this operand instance belongs to, or nil for
// an operand that has not yet been placed into an instruction's def/use slots.
func (o *Operand) Parent() *Instruction {
	return o.parent
}

// IsVReg reports whether the operand currently names a virtual register.
func (o *Operand) IsVReg() bool {
	return o.kind == types.VReg
}

// IsPReg reports whether the operand currently names a physical register.
func (o *Operand) IsPReg() bool {
	return o.kind == types.PReg
}

// SetReg rewrites the operand in place from a vreg into a preg naming physical
// register preg. This is the mutation C7 uses to commit a successful assignment.
func (o *Operand) SetReg(preg int) {
	o.kind = types.PReg
	o.payload = preg
}

// Value returns the operand's value identity for use as a map key or for
// equality comparison against another operand instance.
func (o *Operand) Value() Value {
	return Value{Kind: o.kind, Payload: o.payload}
}

// Copy returns a new, unparented operand carrying the same kind and payload.
// The caller places it into an instruction's def/use slots, which sets its
// parent; until then Parent returns nil.
func (o *Operand) Copy() *Operand {
	return &Operand{kind: o.kind, payload: o.payload, label: o.label}
}

// String provides a print friendly string representation of the operand.
func (o *Operand) String() string {
	switch o.kind {
	case types.VReg:
		return fmt.Sprintf("v%d", o.payload)
	case types.PReg:
		return fmt.Sprintf("r%d", o.payload)
	case types.Imm:
		return fmt.Sprintf("#%d", o.payload)
	case types.Label:
		return o.label
	default:
		return "?"
	}
}
