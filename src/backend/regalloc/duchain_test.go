package regalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lsra/src/ir/mir"
)

func TestNumberInstructionsAscendsInProgramOrder(t *testing.T) {
	f := buildSimultaneouslyLive("numbering", 3, 0)
	numberInstructions(f)

	insts := f.Blocks()[0].Insts()
	for i := 1; i < len(insts); i++ {
		assert.Less(t, insts[i-1].No(), insts[i].No())
	}
}

func TestBuildDuChainsSingleBlockNoOverlap(t *testing.T) {
	f := buildTwoNonOverlapping()
	li := Analyze(f)

	duChain, err := BuildDuChains(f, li)
	require.NoError(t, err)
	require.Len(t, duChain, 2)

	insts := f.Blocks()[0].Insts()
	d0, u0 := insts[0].Defs()[0], insts[1].Uses()[0]
	d1, u1 := insts[2].Defs()[0], insts[3].Uses()[0]

	require.Contains(t, duChain, d0)
	require.Contains(t, duChain, d1)
	assert.Equal(t, []*mir.Operand{u0}, duChain[d0])
	assert.Equal(t, []*mir.Operand{u1}, duChain[d1])
}
