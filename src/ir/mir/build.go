package mir

import "lsra/src/ir/mir/types"

// ---------------------------------------------------------------
// ----- Builder-style instruction constructors, one per opcode -----
// ---------------------------------------------------------------
//
// Each CreateXxx method builds the instruction, appends it to the block, and
// returns it, in the teacher's builder idiom (block.CreateAdd, CreateSub, ...).

// CreateMovImm appends `dst <- imm i`.
func (b *Block) CreateMovImm(dst *Operand, i int) *Instruction {
	in := NewInstruction(types.MovImm, []*Operand{dst}, []*Operand{NewImm(i)})
	b.Append(in)
	return in
}

// CreateMov appends `dst <- src`.
func (b *Block) CreateMov(dst, src *Operand) *Instruction {
	in := NewInstruction(types.Mov, []*Operand{dst}, []*Operand{src})
	b.Append(in)
	return in
}

// CreateAdd appends `dst <- lhs + rhs`.
func (b *Block) CreateAdd(dst, lhs, rhs *Operand) *Instruction {
	in := NewInstruction(types.Add, []*Operand{dst}, []*Operand{lhs, rhs})
	b.Append(in)
	return in
}

// CreateSub appends `dst <- lhs - rhs`.
func (b *Block) CreateSub(dst, lhs, rhs *Operand) *Instruction {
	in := NewInstruction(types.Sub, []*Operand{dst}, []*Operand{lhs, rhs})
	b.Append(in)
	return in
}

// CreateMul appends `dst <- lhs * rhs`.
func (b *Block) CreateMul(dst, lhs, rhs *Operand) *Instruction {
	in := NewInstruction(types.Mul, []*Operand{dst}, []*Operand{lhs, rhs})
	b.Append(in)
	return in
}

// CreateCmp appends a comparison of lhs and rhs, setting condition flags for
// a following Bcc.
func (b *Block) CreateCmp(lhs, rhs *Operand) *Instruction {
	in := NewInstruction(types.Cmp, nil, []*Operand{lhs, rhs})
	b.Append(in)
	return in
}

// CreateBranch appends an unconditional branch to target.
func (b *Block) CreateBranch(target *Operand) *Instruction {
	in := NewInstruction(types.B, nil, []*Operand{target})
	b.Append(in)
	return in
}

// CreateBranchCond appends a conditional branch to target, predicated on the
// preceding Cmp.
func (b *Block) CreateBranchCond(target *Operand) *Instruction {
	in := NewInstruction(types.Bcc, nil, []*Operand{target})
	b.Append(in)
	return in
}

// CreateRet appends a return instruction, optionally naming the vreg holding
// the return value.
func (b *Block) CreateRet(value *Operand) *Instruction {
	var uses []*Operand
	if value != nil {
		uses = []*Operand{value}
	}
	in := NewInstruction(types.Ret, nil, uses)
	b.Append(in)
	return in
}

// CreateUse appends a synthetic instruction that reads v without defining
// anything, standing in for any real instruction that merely consumes a
// vreg's value (a call argument, a return value, a store target).
func (b *Block) CreateUse(v *Operand) *Instruction {
	in := NewInstruction(types.Use, nil, []*Operand{v})
	b.Append(in)
	return in
}
