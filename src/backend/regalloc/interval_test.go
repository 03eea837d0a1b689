package regalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIntervalsTwoNonOverlapping(t *testing.T) {
	f := buildTwoNonOverlapping()
	li := Analyze(f)
	duChain, err := BuildDuChains(f, li)
	require.NoError(t, err)

	intervals, err := BuildIntervals(f, duChain, li)
	require.NoError(t, err)
	require.Len(t, intervals, 2)

	assert.Equal(t, 0, intervals[0].Start)
	assert.Equal(t, 1, intervals[0].End)
	assert.Equal(t, 2, intervals[1].Start)
	assert.Equal(t, 3, intervals[1].End)
}

func TestBuildIntervalsCoversBlockBBetweenDefAndUse(t *testing.T) {
	f := buildCrossBlock()
	li := Analyze(f)
	duChain, err := BuildDuChains(f, li)
	require.NoError(t, err)

	intervals, err := BuildIntervals(f, duChain, li)
	require.NoError(t, err)
	require.Len(t, intervals, 1)

	b2 := f.Blocks()[1]
	first, ok := firstNo(b2)
	require.True(t, ok)

	iv := intervals[0]
	assert.LessOrEqual(t, iv.Start, first)
	assert.GreaterOrEqual(t, iv.End, first)
}

func TestBuildIntervalsSortedAscendingByStart(t *testing.T) {
	f := buildSimultaneouslyLive("sorted", 5, 0)
	li := Analyze(f)
	duChain, err := BuildDuChains(f, li)
	require.NoError(t, err)

	intervals, err := BuildIntervals(f, duChain, li)
	require.NoError(t, err)
	for i := 1; i < len(intervals); i++ {
		assert.LessOrEqual(t, intervals[i-1].Start, intervals[i].Start)
	}
}
