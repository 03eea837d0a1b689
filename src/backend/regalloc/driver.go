package regalloc

import (
	"lsra/src/ir/mir"
	"lsra/src/util"
)

// ---------------------
// ----- Constants -----
// ---------------------

// maxPasses bounds the fixed-point loop defensively. §4.5's termination
// argument (each spill strictly shrinks the competing set, synthetic
// materializer vregs cannot themselves be spilled) means a correct
// allocation never approaches this; tripping it indicates a configuration
// or implementation defect, not an ordinary spill round.
const maxPasses = 64

// ---------------------
// ----- Functions -----
// ---------------------

// Allocate runs the linear-scan allocator over every function in unit, one
// at a time (§5). A function whose pass fails gets no register rewrite and
// its diagnostic is appended to the returned collector; spill code inserted
// by its earlier passes is not removed. The driver proceeds to the next
// function rather than aborting the unit.
func Allocate(unit *mir.Unit) *util.Diagnostics {
	fns := unit.Functions()
	diag := util.NewDiagnostics(len(fns))
	for _, f := range fns {
		if err := allocateFunction(f); err != nil {
			diag.Append(err)
		}
	}
	return diag
}

// allocateFunction runs the fixed-point loop of §4.5 for one function:
// build intervals, attempt assignment, and on spill, emit spill code and
// restart.
func allocateFunction(f *mir.Function) error {
	synthetic := make(map[int]bool)

	for pass := 0; pass < maxPasses; pass++ {
		li := Analyze(f)

		duChain, err := BuildDuChains(f, li)
		if err != nil {
			return err
		}

		intervals, err := BuildIntervals(f, duChain, li)
		if err != nil {
			return err
		}

		if Assign(f, intervals) {
			RewriteSuccess(f, intervals)
			return nil
		}

		for _, iv := range intervals {
			if iv.Spill && synthetic[iv.VReg()] {
				return configErrorf(f.Name(), "synthetic spill-materializer vreg v%d was itself spilled", iv.VReg())
			}
		}

		minted, err := EmitSpillCode(f, intervals)
		if err != nil {
			return err
		}
		for _, id := range minted {
			synthetic[id] = true
		}
	}

	return invariantErrorf(f.Name(), "exceeded %d allocator passes without converging", maxPasses)
}
