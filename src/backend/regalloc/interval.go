package regalloc

import (
	"sort"

	"lsra/src/ir/mir"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Interval is the central allocator entity: a contiguous numeric range over
// instruction numbering during which a vreg's value must be preserved,
// together with the def/use operand instances that gave rise to it.
type Interval struct {
	Start, End int
	Defs       []*mir.Operand
	Uses       []*mir.Operand
	Spill      bool
	Disp       int // FP-relative displacement; valid only when Spill.
	RReg       int // assigned physical register; valid only when !Spill.
}

// ---------------------
// ----- Functions -----
// ---------------------

// VReg returns the vreg id all of the interval's defs and uses share.
func (iv *Interval) VReg() int {
	return iv.Defs[0].Payload()
}

// assertValid checks that the interval has at least one def and that
// start <= end (the Interval field rule of §3); it is called after every
// step that can move an endpoint.
func assertValid(fn string, iv *Interval) error {
	if len(iv.Defs) == 0 {
		return invariantErrorf(fn, "interval has no defs")
	}
	if iv.Start > iv.End {
		return invariantErrorf(fn, "interval for v%d has inverted endpoints [%d, %d]", iv.VReg(), iv.Start, iv.End)
	}
	return nil
}

// firstNo returns block B's "first instruction number" in the sense §4.4
// uses it: since numbering increases in program order within a block, this
// is B's last instruction's number, the largest in B's range.
func firstNo(b *mir.Block) (int, bool) {
	insts := b.Insts()
	if len(insts) == 0 {
		return 0, false
	}
	return insts[len(insts)-1].No(), true
}

// BuildIntervals converts the du-chains produced by BuildDuChains into
// sorted, widened and coalesced live intervals for f.
func BuildIntervals(f *mir.Function, duChain map[*mir.Operand][]*mir.Operand, li *LiveInfo) ([]*Interval, error) {
	fn := f.Name()

	var intervals []*Interval
	for d, uses := range duChain {
		if d.Parent() == nil || d.Parent().No() < 0 {
			return nil, invariantErrorf(fn, "unnumbered def reached while building intervals")
		}
		start := d.Parent().No()
		end := start
		for _, u := range uses {
			if n := u.Parent().No(); n > end {
				end = n
			}
		}
		iv := &Interval{Start: start, End: end, Defs: []*mir.Operand{d}, Uses: append([]*mir.Operand(nil), uses...)}
		if err := assertValid(fn, iv); err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}

	if err := widenAll(fn, f, intervals, li); err != nil {
		return nil, err
	}

	intervals, err := coalesce(fn, intervals)
	if err != nil {
		return nil, err
	}

	sort.Slice(intervals, func(i, j int) bool {
		if intervals[i].Start != intervals[j].Start {
			return intervals[i].Start < intervals[j].Start
		}
		if intervals[i].End != intervals[j].End {
			return intervals[i].End < intervals[j].End
		}
		return intervals[i].VReg() < intervals[j].VReg()
	})
	return intervals, nil
}

// widenAll applies the cross-block widening rule of §4.4 to every interval.
func widenAll(fn string, f *mir.Function, intervals []*Interval, li *LiveInfo) error {
	for _, iv := range intervals {
		idx, known := li.Index[iv.VReg()]
		if !known {
			continue
		}
		for _, b := range f.Blocks() {
			liveIn, liveOut := b.LiveIn(), b.LiveOut()
			in := liveIn != nil && liveIn.Test(idx)
			out := liveOut != nil && liveOut.Test(idx)
			if !in && !out {
				continue
			}
			first, ok := firstNo(b)
			if !ok {
				continue
			}
			switch {
			case in && out:
				if first < iv.Start {
					iv.Start = first
				}
				if first > iv.End {
					iv.End = first
				}
			case !in && out:
				for _, in2 := range b.Insts() {
					defs := in2.Defs()
					if len(defs) == 1 && defs[0].IsVReg() && defs[0].Payload() == iv.VReg() {
						if in2.No() < iv.Start {
							iv.Start = in2.No()
						}
						break
					}
				}
				if first > iv.End {
					iv.End = first
				}
			case in && !out:
				if first < iv.Start {
					iv.Start = first
				}
				for _, u := range iv.Uses {
					if u.Parent().Block() == b && u.Parent().No() > iv.End {
						iv.End = u.Parent().No()
					}
				}
			}
			if err := assertValid(fn, iv); err != nil {
				return err
			}
		}
	}
	return nil
}

// coalesce repeatedly merges intervals that share a defining vreg and have
// at least one overlapping use instance, per §4.4. This undoes the
// imprecision of seeding each block's live map from the full all_uses set in
// C3: two du-chain entries for the same vreg, discovered in different
// blocks, can legitimately claim the same use instance, and coalescing
// reunites them into one interval.
func coalesce(fn string, intervals []*Interval) ([]*Interval, error) {
	for {
		changed := false
	outer:
		for i := 0; i < len(intervals); i++ {
			for j := i + 1; j < len(intervals); j++ {
				a, b := intervals[i], intervals[j]
				if a.VReg() != b.VReg() {
					continue
				}
				if !usesOverlap(a, b) {
					continue
				}
				merge(a, b)
				if err := assertValid(fn, a); err != nil {
					return nil, err
				}
				intervals = append(intervals[:j], intervals[j+1:]...)
				changed = true
				break outer
			}
		}
		if !changed {
			break
		}
	}
	return intervals, nil
}

// usesOverlap reports whether a and b share at least one use-operand
// instance.
func usesOverlap(a, b *Interval) bool {
	set := make(map[*mir.Operand]struct{}, len(a.Uses))
	for _, u := range a.Uses {
		set[u] = struct{}{}
	}
	for _, u := range b.Uses {
		if _, ok := set[u]; ok {
			return true
		}
	}
	return false
}

// merge folds b into a: union of defs and uses, endpoints normalised over
// each interval's own {start, end} pair (per §4.4, this also resolves any
// transient inversion from widening).
func merge(a, b *Interval) {
	a.Defs = append(a.Defs, b.Defs...)
	seen := make(map[*mir.Operand]struct{}, len(a.Uses))
	merged := make([]*mir.Operand, 0, len(a.Uses)+len(b.Uses))
	for _, u := range a.Uses {
		if _, ok := seen[u]; !ok {
			seen[u] = struct{}{}
			merged = append(merged, u)
		}
	}
	for _, u := range b.Uses {
		if _, ok := seen[u]; !ok {
			seen[u] = struct{}{}
			merged = append(merged, u)
		}
	}
	a.Uses = merged

	aMin, aMax := minMax(a.Start, a.End)
	bMin, bMax := minMax(b.Start, b.End)
	if bMin < aMin {
		aMin = bMin
	}
	if bMax > aMax {
		aMax = bMax
	}
	a.Start = aMin
	a.End = aMax
}

func minMax(x, y int) (int, int) {
	if x < y {
		return x, y
	}
	return y, x
}
