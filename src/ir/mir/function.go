package mir

import (
	"fmt"
	"sort"
	"strings"

	"lsra/src/util"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Function owns its blocks, tracks the physical registers its body has
// touched (savedRegs, reported to the prologue generator this module does
// not implement), and hands out frame-local stack slots via AllocStack.
type Function struct {
	u         *Unit
	id        int
	name      string
	blocks    []*Block
	savedRegs map[int]bool
	frameSize int
}

// ---------------------
// ----- Functions -----
// ---------------------

// newFunction builds a function with the given id and name, owned by u.
func newFunction(id int, name string, u *Unit) *Function {
	return &Function{u: u, id: id, name: name, savedRegs: make(map[int]bool)}
}

// Id returns the function's unit-local identifier.
func (f *Function) Id() int {
	return f.id
}

// Name returns the function's name.
func (f *Function) Name() string {
	return f.name
}

// Unit returns the function's owning translation unit.
func (f *Function) Unit() *Unit {
	return f.u
}

// Blocks returns the function's blocks in creation order. The returned slice
// aliases the function's own storage.
func (f *Function) Blocks() []*Block {
	return f.blocks
}

// CreateBlock appends and returns a new, empty block.
func (f *Function) CreateBlock() *Block {
	b := newBlock(len(f.blocks), f)
	f.blocks = append(f.blocks, b)
	return b
}

// CreateVReg returns a fresh virtual-register operand. Ids are drawn from the
// same process-wide counter C7 uses to mint synthetic spill vregs
// (util.FreshLabel), so an id is unique across every function and pass in the
// unit; nothing needs it to be dense, since live analysis (C2) builds its own
// compact per-pass index over whatever ids actually appear (see DESIGN.md).
func (f *Function) CreateVReg() *Operand {
	return NewVReg(util.FreshLabel())
}

// AllocStack reserves a frame slot of the given size and returns the new
// cumulative frame size in bytes; the caller negates it to get an FP-relative
// displacement (the frame grows downward from the frame pointer).
func (f *Function) AllocStack(bytes int) int {
	f.frameSize += bytes
	return f.frameSize
}

// FrameSize returns the total number of bytes reserved so far via AllocStack.
func (f *Function) FrameSize() int {
	return f.frameSize
}

// AddSavedReg records that physical register preg is touched by the body and
// must be preserved by the prologue/epilogue this module does not generate.
func (f *Function) AddSavedReg(preg int) {
	f.savedRegs[preg] = true
}

// SavedRegs returns the set of saved physical registers, sorted ascending
// for deterministic output.
func (f *Function) SavedRegs() []int {
	regs := make([]int, 0, len(f.savedRegs))
	for r := range f.savedRegs {
		regs = append(regs, r)
	}
	sort.Ints(regs)
	return regs
}

// String provides a print friendly textual dump of the function: its
// signature line followed by every block's dump.
func (f *Function) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "func %s: frame=%d saved=%v\n", f.name, f.frameSize, f.SavedRegs())
	for _, b := range f.blocks {
		sb.WriteString(b.String())
	}
	return sb.String()
}
