package regalloc

import (
	"github.com/bits-and-blooms/bitset"

	"lsra/src/ir/mir"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// LiveInfo is the result of one function's live-variable analysis: the
// dense per-pass bitset index assigned to every vreg that appears in the
// function, and the complete set of use-operand instances of each vreg
// (consumed by the du-chain builder's kill step, C3).
type LiveInfo struct {
	Index   map[int]uint            // vreg id -> dense bitset index, this pass only.
	AllUses map[int][]*mir.Operand  // vreg id -> every use-operand instance of it in the function.
}

// ---------------------
// ----- Functions -----
// ---------------------

// Analyze runs backward live-variable analysis over f and stores the
// resulting live-in/live-out sets on each block (mir.Block.SetLiveIn/
// SetLiveOut). Sets are vreg-value sets, indexed by a dense sequence number
// assigned here for the duration of this pass, so the fixpoint's set
// operations are plain bitset unions/differences/equality checks rather than
// map churn (see DESIGN.md, C2).
//
// Reconciling with SPEC_FULL §2.1: vreg ids, whether minted by
// mir.Function.CreateVReg or by C7's large-displacement spill code, are not
// dense within any one function — both draw from the same process-wide
// counter so that a synthetic spill vreg can never collide with an ordinary
// one. Building the index fresh at the start of every pass (rather than
// trusting vreg-creation order as the index directly) keeps the bitsets
// correctly sized regardless of how sparse the ids in this function happen
// to be.
func Analyze(f *mir.Function) *LiveInfo {
	index := make(map[int]uint)
	var next uint
	indexOf := func(id int) uint {
		if idx, ok := index[id]; ok {
			return idx
		}
		idx := next
		index[id] = idx
		next++
		return idx
	}

	for _, b := range f.Blocks() {
		for _, in := range b.Insts() {
			for _, d := range in.Defs() {
				if d.IsVReg() {
					indexOf(d.Payload())
				}
			}
			for _, u := range in.Uses() {
				if u.IsVReg() {
					indexOf(u.Payload())
				}
			}
		}
	}
	n := next

	blocks := f.Blocks()
	useSets := make([]*bitset.BitSet, len(blocks))
	defSets := make([]*bitset.BitSet, len(blocks))
	allUses := make(map[int][]*mir.Operand)

	for bi, b := range blocks {
		use := bitset.New(n)
		def := bitset.New(n)
		for _, in := range b.Insts() {
			for _, u := range in.Uses() {
				if !u.IsVReg() {
					continue
				}
				id := u.Payload()
				allUses[id] = append(allUses[id], u)
				if !def.Test(index[id]) {
					use.Set(index[id])
				}
			}
			for _, d := range in.Defs() {
				if !d.IsVReg() {
					continue
				}
				def.Set(index[d.Payload()])
			}
		}
		useSets[bi] = use
		defSets[bi] = def
		b.SetLiveIn(bitset.New(n))
		b.SetLiveOut(bitset.New(n))
	}

	for {
		changed := false
		for bi, b := range blocks {
			out := bitset.New(n)
			for _, s := range b.Succs() {
				out.InPlaceUnion(s.LiveIn())
			}
			in := useSets[bi].Union(out.Difference(defSets[bi]))
			if !in.Equal(b.LiveIn()) || !out.Equal(b.LiveOut()) {
				changed = true
			}
			b.SetLiveIn(in)
			b.SetLiveOut(out)
		}
		if !changed {
			break
		}
	}

	return &LiveInfo{Index: index, AllUses: allUses}
}
