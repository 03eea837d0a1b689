package regalloc

import "lsra/src/ir/mir"

// buildSimultaneouslyLive builds a single-block function with n vregs
// defined in sequence and all used at the end, mirroring S3/S4 of SPEC_FULL
// §8. preAlloc, if non-zero, is reserved via AllocStack before any vregs are
// created, to push later spill slots past a given displacement (S5).
func buildSimultaneouslyLive(name string, n, preAlloc int) *mir.Function {
	u := mir.NewUnit()
	f := u.CreateFunction(name)
	if preAlloc > 0 {
		f.AllocStack(preAlloc)
	}
	b := f.CreateBlock()
	vregs := make([]*mir.Operand, n)
	for i := 0; i < n; i++ {
		vregs[i] = f.CreateVReg()
		b.CreateMovImm(vregs[i], i+1)
	}
	for _, v := range vregs {
		b.CreateUse(v)
	}
	return f
}

// buildTwoNonOverlapping builds S2: two back-to-back def/use pairs whose
// live ranges do not overlap.
func buildTwoNonOverlapping() *mir.Function {
	u := mir.NewUnit()
	f := u.CreateFunction("two_nonoverlapping")
	b := f.CreateBlock()
	v0 := f.CreateVReg()
	b.CreateMovImm(v0, 1)
	b.CreateUse(v0)
	v1 := f.CreateVReg()
	b.CreateMovImm(v1, 2)
	b.CreateUse(v1)
	return f
}

// buildCrossBlock builds S6: v0 defined in B1, used only in B3, with B2
// branching between them.
func buildCrossBlock() *mir.Function {
	u := mir.NewUnit()
	f := u.CreateFunction("cross_block")
	b1 := f.CreateBlock()
	b2 := f.CreateBlock()
	b3 := f.CreateBlock()

	v0 := f.CreateVReg()
	b1.CreateMovImm(v0, 42)
	b1.CreateBranch(mir.NewLabelOperand("B2"))
	b1.AddSucc(b2)

	b2.CreateBranch(mir.NewLabelOperand("B3"))
	b2.AddSucc(b3)

	b3.CreateUse(v0)
	return f
}
