package mir

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Block owns an ordered list of instructions and maintains the two live sets
// the allocator's live-variable analysis (C2) produces: liveIn and liveOut,
// indexed by each live vreg's dense per-pass sequence number rather than by
// Go map so the backward fixpoint's set operations are O(1) word-parallel
// bitset operations (see DESIGN.md, C2). The allocator owns the bitsets'
// contents; Block only stores and returns them.
type Block struct {
	id      int
	f       *Function
	insts   []*Instruction
	succs   []*Block
	liveIn  *bitset.BitSet
	liveOut *bitset.BitSet
}

// ---------------------
// ----- Functions -----
// ---------------------

// newBlock builds a block with the given id, owned by f.
func newBlock(id int, f *Function) *Block {
	return &Block{id: id, f: f}
}

// Id returns the block's function-local identifier.
func (b *Block) Id() int {
	return b.id
}

// Function returns the block's owning function.
func (b *Block) Function() *Function {
	return b.f
}

// Insts returns the block's instructions in program order. The returned
// slice aliases the block's own storage.
func (b *Block) Insts() []*Instruction {
	return b.insts
}

// Append adds inst to the end of the block's instruction list and sets its
// parent block. The instruction starts out unnumbered.
func (b *Block) Append(inst *Instruction) {
	inst.block = b
	inst.no = NoNumber
	b.insts = append(b.insts, inst)
}

// AddSucc records s as a control-flow successor of b.
func (b *Block) AddSucc(s *Block) {
	b.succs = append(b.succs, s)
}

// Succs returns the block's control-flow successors.
func (b *Block) Succs() []*Block {
	return b.succs
}

// LiveIn returns the block's live-in set, or nil if live-variable analysis
// has not yet run for the current pass.
func (b *Block) LiveIn() *bitset.BitSet {
	return b.liveIn
}

// LiveOut returns the block's live-out set, or nil if live-variable analysis
// has not yet run for the current pass.
func (b *Block) LiveOut() *bitset.BitSet {
	return b.liveOut
}

// SetLiveIn installs the block's live-in set, computed by C2.
func (b *Block) SetLiveIn(s *bitset.BitSet) {
	b.liveIn = s
}

// SetLiveOut installs the block's live-out set, computed by C2.
func (b *Block) SetLiveOut(s *bitset.BitSet) {
	b.liveOut = s
}

// spliceBefore inserts ni immediately before anchor in b's instruction list.
func (b *Block) spliceBefore(anchor, ni *Instruction) error {
	return b.splice(anchor, ni, true)
}

// spliceAfter inserts ni immediately after anchor in b's instruction list.
func (b *Block) spliceAfter(anchor, ni *Instruction) error {
	return b.splice(anchor, ni, false)
}

// splice performs the shared insertion logic for spliceBefore/spliceAfter.
func (b *Block) splice(anchor, ni *Instruction, before bool) error {
	idx := -1
	for k, in := range b.insts {
		if in == anchor {
			idx = k
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("mir: anchor instruction not found in block %d", b.id)
	}
	pos := idx
	if !before {
		pos++
	}
	tail := make([]*Instruction, len(b.insts)-pos)
	copy(tail, b.insts[pos:])
	b.insts = append(append(b.insts[:pos:pos], ni), tail...)
	ni.block = b
	ni.no = NoNumber
	return nil
}

// String provides a print friendly textual dump of the block: its label
// followed by one line per instruction.
func (b *Block) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "B%d:\n", b.id)
	for _, in := range b.insts {
		fmt.Fprintf(&sb, "\t%s\n", in)
	}
	return sb.String()
}
