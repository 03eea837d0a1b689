// lsrademo exercises the linear-scan register allocator end-to-end without a
// front end: it hand-builds one of the scenarios in scenarios.go, runs
// regalloc.Allocate over it, and prints the function's textual form before
// and after allocation, in the style of the teacher's main.go pipeline
// driver (parse flags, run a stage, print or report an error).
package main

import (
	"fmt"
	"os"

	"lsra/src/backend/regalloc"
	"lsra/src/util"
)

// run drives one allocation according to opt.
func run(opt util.Options) error {
	name := opt.Scenario
	if name == "" {
		name = "s1"
	}
	build, ok := scenarios[name]
	if !ok {
		return fmt.Errorf("unknown scenario %q", name)
	}
	unit := build()

	var w util.Writer
	if opt.Verbose {
		w.WriteString("-- before --\n")
		w.WriteString(unit.String())
	}

	diag := regalloc.Allocate(unit)

	w.WriteString("-- after --\n")
	w.WriteString(unit.String())

	if diag.Len() > 0 {
		w.WriteString("-- diagnostics --\n")
		for _, e := range diag.Errors() {
			w.Write("%s\n", e)
		}
	}

	if len(opt.Out) > 0 {
		f, err := os.OpenFile(opt.Out, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("could not open output file: %w", err)
		}
		defer f.Close()
		return w.Dump(f)
	}
	return w.Dump(os.Stdout)
}

func main() {
	opt, err := util.ParseArgs()
	if err != nil {
		fmt.Printf("command line argument error: %s\n", err)
		os.Exit(1)
	}

	if err := run(opt); err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}
}
