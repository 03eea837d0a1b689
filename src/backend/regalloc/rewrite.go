package regalloc

import (
	"lsra/src/ir/mir"
	"lsra/src/ir/mir/types"
	"lsra/src/util"
)

// ---------------------
// ----- Functions -----
// ---------------------

// RewriteSuccess commits a fully-assigned pass (§4.7.a): every interval's
// register is recorded in the function's saved_regs, then written into every
// def and use operand instance the interval carries.
func RewriteSuccess(f *mir.Function, intervals []*Interval) {
	for _, iv := range intervals {
		if iv.Spill {
			continue
		}
		f.AddSavedReg(iv.RReg)
		for _, d := range iv.Defs {
			d.SetReg(iv.RReg)
		}
		for _, u := range iv.Uses {
			u.SetReg(iv.RReg)
		}
	}
}

// EmitSpillCode lowers every spilled interval to explicit stack traffic
// (§4.7.b): a load before each use and a store after each def, sourced from
// a frame slot requested via Function.AllocStack. Displacements whose
// magnitude exceeds the target's immediate-offset range are materialized
// into a freshly minted vreg first. It returns the ids of every synthetic
// vreg it minted, so the driver (C5) can recognise one spilling on a later
// pass as the configuration error §7 describes rather than an ordinary spill.
func EmitSpillCode(f *mir.Function, intervals []*Interval) ([]int, error) {
	fp := mir.NewPReg(FramePointerReg)
	var minted []int

	for _, iv := range intervals {
		if !iv.Spill {
			continue
		}
		disp := -f.AllocStack(SpillSlotSize)
		iv.Disp = disp
		large := disp < -ImmOffsetMax || disp > ImmOffsetMax

		for _, u := range iv.Uses {
			anchor := u.Parent()
			uPrime := u.Copy()
			var load *mir.Instruction
			if large {
				tid := util.FreshLabel()
				minted = append(minted, tid)
				t := mir.NewVReg(tid)
				materialize := mir.NewInstruction(types.Ldr, []*mir.Operand{t}, []*mir.Operand{mir.NewImm(disp)})
				if err := anchor.InsertBefore(materialize); err != nil {
					return nil, invariantErrorf(f.Name(), "spill load materializer: %w", err)
				}
				load = mir.NewInstruction(types.Ldr, []*mir.Operand{uPrime}, []*mir.Operand{fp.Copy(), t})
			} else {
				load = mir.NewInstruction(types.Ldr, []*mir.Operand{uPrime}, []*mir.Operand{fp.Copy(), mir.NewImm(disp)})
			}
			if err := anchor.InsertBefore(load); err != nil {
				return nil, invariantErrorf(f.Name(), "spill load: %w", err)
			}
		}

		for _, d := range iv.Defs {
			anchor := d.Parent()
			dPrime := d.Copy()
			var store *mir.Instruction
			if large {
				tid := util.FreshLabel()
				minted = append(minted, tid)
				t := mir.NewVReg(tid)
				materialize := mir.NewInstruction(types.Ldr, []*mir.Operand{t}, []*mir.Operand{mir.NewImm(disp)})
				if err := anchor.InsertAfter(materialize); err != nil {
					return nil, invariantErrorf(f.Name(), "spill store materializer: %w", err)
				}
				store = mir.NewInstruction(types.Str, nil, []*mir.Operand{dPrime, fp.Copy(), t})
				if err := materialize.InsertAfter(store); err != nil {
					return nil, invariantErrorf(f.Name(), "spill store: %w", err)
				}
				continue
			}
			store = mir.NewInstruction(types.Str, nil, []*mir.Operand{dPrime, fp.Copy(), mir.NewImm(disp)})
			if err := anchor.InsertAfter(store); err != nil {
				return nil, invariantErrorf(f.Name(), "spill store: %w", err)
			}
		}
	}
	return minted, nil
}
