package mir

import (
	"fmt"
	"strings"

	"lsra/src/ir/mir/types"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Instruction owns an ordered list of operand slots split into two views: defs
// (operands written) and uses (operands read). It carries a monotonically
// assigned linearization index (no), valid only for the duration of the
// allocator pass that assigned it, and belongs to exactly one block.
type Instruction struct {
	Op    types.Op
	defs  []*Operand
	uses  []*Operand
	no    int // ephemeral per-pass instruction number; -1 means unnumbered.
	block *Block
}

// ---------------------
// ----- Constants -----
// ---------------------

// NoNumber is the sentinel no value of an instruction that has not been
// numbered by the current allocator pass (a fresh instruction, or any
// instruction after a new pass invalidates the previous numbering).
const NoNumber = -1

// ---------------------
// ----- Functions -----
// ---------------------

// NewInstruction builds a free-standing instruction with the given opcode,
// def operands and use operands. The operands' parent back-reference is set
// to the new instruction; the instruction itself is not yet in any block
// until appended via Block.Append or spliced via InsertBefore/InsertAfter.
func NewInstruction(op types.Op, defs, uses []*Operand) *Instruction {
	i := &Instruction{Op: op, defs: defs, uses: uses, no: NoNumber}
	for _, d := range defs {
		d.parent = i
	}
	for _, u := range uses {
		u.parent = i
	}
	return i
}

// Defs returns the instruction's def operand slots. The returned slice aliases
// the instruction's own storage; operands may be mutated in place (e.g. via
// Operand.SetReg) through it.
func (i *Instruction) Defs() []*Operand {
	return i.defs
}

// Uses returns the instruction's use operand slots, aliasing the instruction's
// own storage in the same way as Defs.
func (i *Instruction) Uses() []*Operand {
	return i.uses
}

// No returns the instruction's current linearization number, or NoNumber if it
// has not been numbered since the last time numbering was invalidated.
func (i *Instruction) No() int {
	return i.no
}

// SetNo assigns the instruction's linearization number. Called only by the
// numbering step of the du-chain builder (C3).
func (i *Instruction) SetNo(no int) {
	i.no = no
}

// Block returns the instruction's owning block.
func (i *Instruction) Block() *Block {
	return i.block
}

// InsertBefore splices ni immediately before i in i's owning block. ni is
// marked unnumbered, since numbering is only valid for the pass that computed
// it and any splice invalidates it for the instructions around the insertion
// point going forward.
func (i *Instruction) InsertBefore(ni *Instruction) error {
	if i.block == nil {
		return fmt.Errorf("mir: instruction %s has no parent block", i)
	}
	return i.block.spliceBefore(i, ni)
}

// InsertAfter splices ni immediately after i in i's owning block.
func (i *Instruction) InsertAfter(ni *Instruction) error {
	if i.block == nil {
		return fmt.Errorf("mir: instruction %s has no parent block", i)
	}
	return i.block.spliceAfter(i, ni)
}

// String provides a print friendly textual form of the instruction, in the
// style of a disassembly line: opcode, defs, "<-", uses.
func (i *Instruction) String() string {
	var defs, uses []string
	for _, d := range i.defs {
		defs = append(defs, d.String())
	}
	for _, u := range i.uses {
		uses = append(uses, u.String())
	}
	if len(defs) == 0 {
		return fmt.Sprintf("%s\t%s", i.Op, strings.Join(uses, ", "))
	}
	return fmt.Sprintf("%s\t%s <- %s", i.Op, strings.Join(defs, ", "), strings.Join(uses, ", "))
}
