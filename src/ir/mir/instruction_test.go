package mir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertBeforeAndAfterSplice(t *testing.T) {
	f := NewUnit().CreateFunction("f")
	b := f.CreateBlock()

	v0 := f.CreateVReg()
	v1 := f.CreateVReg()
	first := b.CreateMovImm(v0, 1)
	last := b.CreateMovImm(v1, 2)

	before := NewInstruction(first.Op, nil, []*Operand{v0.Copy()})
	require.NoError(t, first.InsertBefore(before))

	after := NewInstruction(last.Op, nil, []*Operand{v1.Copy()})
	require.NoError(t, last.InsertAfter(after))

	insts := b.Insts()
	require.Len(t, insts, 4)
	assert.Same(t, before, insts[0])
	assert.Same(t, first, insts[1])
	assert.Same(t, last, insts[2])
	assert.Same(t, after, insts[3])

	for _, in := range insts {
		assert.Same(t, b, in.Block())
	}
}

func TestFreshInstructionStartsUnnumbered(t *testing.T) {
	f := NewUnit().CreateFunction("f")
	b := f.CreateBlock()
	v0 := f.CreateVReg()
	in := b.CreateMovImm(v0, 1)
	assert.Equal(t, NoNumber, in.No())

	in.SetNo(3)
	assert.Equal(t, 3, in.No())
}

func TestInsertBeforeWithoutParentBlockFails(t *testing.T) {
	v0 := NewVReg(0)
	orphan := NewInstruction(0, []*Operand{v0}, nil)
	other := NewInstruction(0, nil, nil)
	assert.Error(t, orphan.InsertBefore(other))
}
