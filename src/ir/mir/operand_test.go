package mir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lsra/src/ir/mir/types"
)

func TestOperandValueEquality(t *testing.T) {
	a := NewVReg(3)
	b := NewVReg(3)
	c := NewVReg(4)

	assert.Equal(t, a.Value(), b.Value())
	assert.NotEqual(t, a.Value(), c.Value())
	assert.NotSame(t, a, b, "equal-valued operands must remain distinct instances")
}

func TestOperandCopyIsUnparented(t *testing.T) {
	f := NewUnit().CreateFunction("f")
	blk := f.CreateBlock()
	v0 := f.CreateVReg()
	in := blk.CreateMovImm(v0, 7)

	require.Same(t, in, v0.Parent())

	cp := v0.Copy()
	assert.Nil(t, cp.Parent())
	assert.Equal(t, v0.Value(), cp.Value())
}

func TestOperandSetRegRewritesInPlace(t *testing.T) {
	v := NewVReg(5)
	require.True(t, v.IsVReg())

	v.SetReg(7)
	assert.True(t, v.IsPReg())
	assert.False(t, v.IsVReg())
	assert.Equal(t, 7, v.Payload())
	assert.Equal(t, types.PReg, v.Kind())
}

func TestOperandString(t *testing.T) {
	assert.Equal(t, "v1", NewVReg(1).String())
	assert.Equal(t, "r4", NewPReg(4).String())
	assert.Equal(t, "#42", NewImm(42).String())
	assert.Equal(t, "L1", NewLabelOperand("L1").String())
}
