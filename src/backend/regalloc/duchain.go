package regalloc

import (
	"sort"

	"lsra/src/ir/mir"
)

// ---------------------
// ----- Functions -----
// ---------------------

// numberInstructions assigns every instruction in f a fresh linearization
// number, invalidating any numbering from a previous pass. Blocks are walked
// in order; within a block, instructions are assigned numbers consistent
// with program order (earlier instruction, smaller number), and each block
// visited earlier owns a strictly smaller range than one visited later.
func numberInstructions(f *mir.Function) {
	counter := 0
	for _, b := range f.Blocks() {
		insts := b.Insts()
		base := counter
		for idx := len(insts) - 1; idx >= 0; idx-- {
			insts[idx].SetNo(base + idx)
		}
		counter += len(insts)
	}
}

// BuildDuChains numbers f's instructions and builds the def-use chains
// reachable from every vreg definition: for each def-operand instance, the
// set of use-operand instances it reaches without an intervening redefinition
// of the same vreg. A vreg live out of a block is seeded with every use of it
// in the function, so a chain can also hold uses that no path from the def
// reaches; BuildIntervals' coalescing merges the overlapping results.
func BuildDuChains(f *mir.Function, li *LiveInfo) (map[*mir.Operand][]*mir.Operand, error) {
	numberInstructions(f)

	duChain := make(map[*mir.Operand]map[*mir.Operand]struct{})

	for _, b := range f.Blocks() {
		live := make(map[int]map[*mir.Operand]struct{})
		if out := b.LiveOut(); out != nil {
			for id, idx := range li.Index {
				if out.Test(idx) {
					set := make(map[*mir.Operand]struct{}, len(li.AllUses[id]))
					for _, u := range li.AllUses[id] {
						set[u] = struct{}{}
					}
					live[id] = set
				}
			}
		}

		insts := b.Insts()
		for k := len(insts) - 1; k >= 0; k-- {
			in := insts[k]
			if in.No() < 0 {
				return nil, invariantErrorf(f.Name(), "unnumbered instruction reached while building du-chains")
			}
			for _, d := range in.Defs() {
				if !d.IsVReg() {
					continue
				}
				id := d.Payload()
				if duChain[d] == nil {
					duChain[d] = make(map[*mir.Operand]struct{})
				}
				for u := range live[id] {
					duChain[d][u] = struct{}{}
				}
				delete(live, id)
			}
			for _, u := range in.Uses() {
				if !u.IsVReg() {
					continue
				}
				id := u.Payload()
				if live[id] == nil {
					live[id] = make(map[*mir.Operand]struct{})
				}
				live[id][u] = struct{}{}
			}
		}
	}

	result := make(map[*mir.Operand][]*mir.Operand, len(duChain))
	for d, set := range duChain {
		uses := make([]*mir.Operand, 0, len(set))
		for u := range set {
			uses = append(uses, u)
		}
		sort.Slice(uses, func(i, j int) bool {
			return uses[i].Parent().No() < uses[j].Parent().No()
		})
		result[d] = uses
	}
	return result, nil
}
