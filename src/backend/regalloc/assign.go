package regalloc

import (
	"sort"

	"lsra/src/ir/mir"
)

// ---------------------
// ----- Constants -----
// ---------------------

// AllocatableRegs is the target ABI's fixed pool of general-purpose physical
// registers available to the allocator.
var AllocatableRegs = []int{4, 5, 6, 7, 8, 9, 10}

// FramePointerReg is the physical register reserved as the frame pointer;
// never handed out by the assignment engine.
const FramePointerReg = 11

// ImmOffsetMax is the largest absolute immediate offset a load/store can
// address directly; beyond it, spill code must materialize the
// displacement into a register first (§4.7).
const ImmOffsetMax = 255

// SpillSlotSize is the size in bytes of one spill slot.
const SpillSlotSize = 4

// ---------------------
// ----- Functions -----
// ---------------------

// Assign runs the expire-old/spill-at-interval linear-scan heuristic over
// sorted intervals. It returns true iff every interval received a physical
// register (no interval was marked Spill).
func Assign(f *mir.Function, intervals []*Interval) bool {
	pool := append([]int(nil), AllocatableRegs...)
	sort.Ints(pool)

	var active []*Interval
	ok := true

	for _, iv := range intervals {
		active, pool = expireOld(iv, active, pool)

		if len(pool) == 0 {
			active = spillAtInterval(f, iv, active)
			ok = false
			continue
		}

		iv.RReg = pool[0]
		pool = pool[1:]
		active = insertActive(active, iv)
	}

	return ok
}

// expireOld removes from active every interval whose End precedes iv.Start,
// returning their registers to pool (re-sorted ascending, per §4.6).
func expireOld(iv *Interval, active []*Interval, pool []int) ([]*Interval, []int) {
	i := 0
	for i < len(active) && active[i].End < iv.Start {
		pool = append(pool, active[i].RReg)
		i++
	}
	if i > 0 {
		active = active[i:]
		sort.Ints(pool)
	}
	return active, pool
}

// spillAtInterval implements §4.6's spill heuristic: steal the register of
// the active interval with the greatest End if it outlives iv, otherwise
// spill iv itself.
func spillAtInterval(f *mir.Function, iv *Interval, active []*Interval) []*Interval {
	if len(active) == 0 {
		iv.Spill = true
		return active
	}
	s := active[len(active)-1]
	if s.End > iv.End {
		s.Spill = true
		iv.RReg = s.RReg
		f.AddSavedReg(s.RReg)
		active[len(active)-1] = iv
		sort.Slice(active, func(i, j int) bool {
			if active[i].End != active[j].End {
				return active[i].End < active[j].End
			}
			return active[i].VReg() < active[j].VReg()
		})
		return active
	}
	iv.Spill = true
	return active
}

// insertActive inserts iv into active, kept sorted by ascending End with a
// secondary key of ascending vreg id for deterministic tie-breaking (the
// Open Question in §9 resolved this way — see DESIGN.md).
func insertActive(active []*Interval, iv *Interval) []*Interval {
	active = append(active, iv)
	sort.Slice(active, func(i, j int) bool {
		if active[i].End != active[j].End {
			return active[i].End < active[j].End
		}
		return active[i].VReg() < active[j].VReg()
	})
	return active
}
