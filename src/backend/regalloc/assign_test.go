package regalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lsra/src/ir/mir"
)

// fakeInterval builds a standalone interval whose vreg id is derived from its
// endpoints (intervals with equal endpoints share an id), for testing the
// assignment engine (C6) in isolation from live analysis and du-chains.
func fakeInterval(start, end int) *Interval {
	return &Interval{Start: start, End: end, Defs: []*mir.Operand{mir.NewVReg(start*1000 + end)}}
}

func TestAssignSevenSimultaneouslyLiveFitsNoSpill(t *testing.T) {
	u := mir.NewUnit()
	f := u.CreateFunction("seven")
	var intervals []*Interval
	for i := 0; i < 7; i++ {
		intervals = append(intervals, fakeInterval(0, 10))
	}

	ok := Assign(f, intervals)
	require.True(t, ok)

	seen := make(map[int]bool)
	for _, iv := range intervals {
		assert.False(t, iv.Spill)
		assert.Contains(t, AllocatableRegs, iv.RReg)
		assert.False(t, seen[iv.RReg], "each simultaneously live interval needs a distinct register")
		seen[iv.RReg] = true
	}
}

func TestAssignEightSimultaneouslyLiveForcesOneSpill(t *testing.T) {
	u := mir.NewUnit()
	f := u.CreateFunction("eight")
	var intervals []*Interval
	for i := 0; i < 8; i++ {
		intervals = append(intervals, fakeInterval(0, 10))
	}

	ok := Assign(f, intervals)
	require.False(t, ok)

	spilled := 0
	for _, iv := range intervals {
		if iv.Spill {
			spilled++
		}
	}
	assert.Equal(t, 1, spilled)
	// All ends are equal, so the eighth interval does not outlive the active
	// victim: it spills itself and no register is stolen or recorded.
	assert.True(t, intervals[7].Spill)
	assert.Len(t, f.SavedRegs(), 0)
}

func TestAssignExpiresOldIntervalsAndReusesRegister(t *testing.T) {
	u := mir.NewUnit()
	f := u.CreateFunction("reuse")
	a := fakeInterval(0, 1)
	b := fakeInterval(2, 3)

	ok := Assign(f, []*Interval{a, b})
	require.True(t, ok)
	assert.Equal(t, a.RReg, b.RReg, "b starts after a ends, so it should reuse a's register")
}
