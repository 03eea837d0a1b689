package main

import (
	"lsra/src/ir/mir"
)

// ---------------------------------------------------------------
// ----- Scenario builders, one per end-to-end case in SPEC_FULL §8 -----
// ---------------------------------------------------------------
//
// original_source/src/LinearScan.cpp is driven by a full compiler that
// builds its MachineUnit from a parsed source program; with no front end in
// this module (§1), these builders hand-assemble the same small functions
// the scenarios describe, using mir's builder methods directly.

// scenarios maps a scenario name to its builder, for cmd/lsrademo's -scenario
// flag (util.Options.Scenario).
var scenarios = map[string]func() *mir.Unit{
	"s1": scenarioTrivial,
	"s2": scenarioTwoNonOverlapping,
	"s3": scenarioSevenLive,
	"s4": scenarioForcedSpill,
	"s5": scenarioLargeDisplacement,
	"s6": scenarioCrossBlockLiveness,
}

// scenarioTrivial builds S1: a single instruction defining one vreg, never
// used. Expect v0 assigned preg 4, saved_regs = {4}, no spill code.
func scenarioTrivial() *mir.Unit {
	u := mir.NewUnit()
	f := u.CreateFunction("s1_trivial")
	b := f.CreateBlock()
	v0 := f.CreateVReg()
	b.CreateMovImm(v0, 7)
	return u
}

// scenarioTwoNonOverlapping builds S2: two back-to-back def/use pairs whose
// intervals do not overlap. Expect both reuse preg 4.
func scenarioTwoNonOverlapping() *mir.Unit {
	u := mir.NewUnit()
	f := u.CreateFunction("s2_two_nonoverlapping")
	b := f.CreateBlock()
	v0 := f.CreateVReg()
	b.CreateMovImm(v0, 1)
	b.CreateUse(v0)
	v1 := f.CreateVReg()
	b.CreateMovImm(v1, 2)
	b.CreateUse(v1)
	return u
}

// scenarioSevenLive builds S3: seven vregs defined in sequence, all used at
// the end, all simultaneously live. Expect pregs {4..10} distributed with no
// spill.
func scenarioSevenLive() *mir.Unit {
	return buildSimultaneouslyLive("s3_seven_live", 7)
}

// scenarioForcedSpill builds S4: eight simultaneously live vregs, one more
// than the allocatable register count. The first pass spills exactly one
// interval, with loads/stores inserted around its every use/def at
// displacement -4; on the next pass that vreg's short store interval takes
// the register of the longest-lived remaining vreg, which is spilled at -8.
func scenarioForcedSpill() *mir.Unit {
	return buildSimultaneouslyLive("s4_forced_spill", 8)
}

// scenarioLargeDisplacement builds S5: the same eight-simultaneously-live
// shape as S4, but with enough stack already reserved that the spill slot's
// displacement exceeds the target's +-255 immediate-offset range, forcing
// the materialize-then-load/store sequence.
func scenarioLargeDisplacement() *mir.Unit {
	u := mir.NewUnit()
	f := u.CreateFunction("s5_large_displacement")
	f.AllocStack(260) // pre-existing locals push the next slot past disp = -256.
	b := f.CreateBlock()
	appendSimultaneouslyLive(b, f, 8)
	return u
}

// scenarioCrossBlockLiveness builds S6: v0 defined in B1, used only in B3,
// with B2 branching between; B2 has v0 in both live-in and live-out.
func scenarioCrossBlockLiveness() *mir.Unit {
	u := mir.NewUnit()
	f := u.CreateFunction("s6_cross_block_liveness")
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
	b3.CreateRet(v0)
	return u
}

// buildSimultaneouslyLive builds a single-block function named name with n
// vregs defined in sequence and all used at the end.
func buildSimultaneouslyLive(name string, n int) *mir.Unit {
	u := mir.NewUnit()
	f := u.CreateFunction(name)
	b := f.CreateBlock()
	appendSimultaneouslyLive(b, f, n)
	return u
}

// appendSimultaneouslyLive appends n vreg definitions followed by a use of
// each, to block b of function f.
func appendSimultaneouslyLive(b *mir.Block, f *mir.Function, n int) {
	vregs := make([]*mir.Operand, n)
	for i := 0; i < n; i++ {
		vregs[i] = f.CreateVReg()
		b.CreateMovImm(vregs[i], i+1)
	}
	for _, v := range vregs {
		b.CreateUse(v)
	}
}
