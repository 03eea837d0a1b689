package regalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCrossBlockLiveness(t *testing.T) {
	f := buildCrossBlock()
	li := Analyze(f)

	blocks := f.Blocks()
	b1, b2, b3 := blocks[0], blocks[1], blocks[2]

	v0 := f.Blocks()[0].Insts()[0].Defs()[0].Payload()
	idx, ok := li.Index[v0]
	require.True(t, ok)

	assert.False(t, b1.LiveIn().Test(idx), "v0 is defined in B1, not live-in to it")
	assert.True(t, b1.LiveOut().Test(idx))

	assert.True(t, b2.LiveIn().Test(idx), "v0 must be live-in to B2")
	assert.True(t, b2.LiveOut().Test(idx), "v0 must be live-out of B2")

	assert.True(t, b3.LiveIn().Test(idx))
	assert.False(t, b3.LiveOut().Test(idx), "B3 has no successors")
}

func TestAnalyzeAllUsesCollectsEveryInstance(t *testing.T) {
	f := buildSimultaneouslyLive("seven", 7, 0)
	li := Analyze(f)

	for _, in := range f.Blocks()[0].Insts() {
		for _, u := range in.Uses() {
			if !u.IsVReg() {
				continue
			}
			uses := li.AllUses[u.Payload()]
			found := false
			for _, candidate := range uses {
				if candidate == u {
					found = true
					break
				}
			}
			assert.True(t, found, "every use instance must appear in AllUses")
		}
	}
}
