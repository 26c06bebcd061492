package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sdfeval/choice"
	"github.com/katalvlaran/sdfeval/eval"
	"github.com/katalvlaran/sdfeval/interval"
	"github.com/katalvlaran/sdfeval/pool"
	"github.com/katalvlaran/sdfeval/vm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.Red("tapebench: %s", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tapebench",
		Short: "Exercise the tape evaluator against fixed demo programs",
	}
	root.AddCommand(newEvalCmd(), newSubdivCmd(), newSimplifyCmd(), newPoolBenchCmd())
	return root
}

func tapeNameFlag(cmd *cobra.Command, dst *string) {
	cmd.Flags().StringVar(dst, "tape", "sphere", "demo tape: min-xy, max-max-xyz, sphere")
}

func boxFlags(cmd *cobra.Command, lo, hi *[3]float32) {
	cmd.Flags().Float32VarP(&lo[0], "x0", 'x', -1, "x lower bound")
	cmd.Flags().Float32Var(&hi[0], "x1", 1, "x upper bound")
	cmd.Flags().Float32VarP(&lo[1], "y0", 'y', -1, "y lower bound")
	cmd.Flags().Float32Var(&hi[1], "y1", 1, "y upper bound")
	cmd.Flags().Float32VarP(&lo[2], "z0", 'z', -1, "z lower bound")
	cmd.Flags().Float32Var(&hi[2], "z1", 1, "z upper bound")
}

func newEvalCmd() *cobra.Command {
	var tapeName string
	var lo, hi [3]float32

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a demo tape's interval bound over a box",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildDemoTape(tapeName)
			if err != nil {
				return err
			}
			e := eval.NewIntervalEval(p, vm.NewInterval)
			vars := make([]float32, p.VarCount())
			got, err := e.EvalI(interval.New(lo[0], hi[0]), interval.New(lo[1], hi[1]), interval.New(lo[2], hi[2]), vars)
			if err != nil {
				return err
			}
			printBound(tapeName, got, e.Choices())
			return nil
		},
	}
	tapeNameFlag(cmd, &tapeName)
	boxFlags(cmd, &lo, &hi)
	return cmd
}

func newSubdivCmd() *cobra.Command {
	var tapeName string
	var lo, hi [3]float32
	var depth int

	cmd := &cobra.Command{
		Use:   "subdiv",
		Short: "Evaluate a demo tape's interval bound via recursive subdivision",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildDemoTape(tapeName)
			if err != nil {
				return err
			}
			e := eval.NewIntervalEval(p, vm.NewInterval)
			vars := make([]float32, p.VarCount())
			got, err := e.EvalISubdiv(interval.New(lo[0], hi[0]), interval.New(lo[1], hi[1]), interval.New(lo[2], hi[2]), vars, depth)
			if err != nil {
				return err
			}
			printBound(fmt.Sprintf("%s (depth %d)", tapeName, depth), got, e.Choices())
			return nil
		},
	}
	tapeNameFlag(cmd, &tapeName)
	boxFlags(cmd, &lo, &hi)
	cmd.Flags().IntVarP(&depth, "depth", 'k', 3, "subdivision depth")
	return cmd
}

func newSimplifyCmd() *cobra.Command {
	var tapeName string
	var lo, hi [3]float32

	cmd := &cobra.Command{
		Use:   "simplify",
		Short: "Evaluate a demo tape and report clause counts before/after simplification",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildDemoTape(tapeName)
			if err != nil {
				return err
			}
			e := eval.NewIntervalEval(p, vm.NewInterval)
			vars := make([]float32, p.VarCount())
			if _, err := e.EvalI(interval.New(lo[0], hi[0]), interval.New(lo[1], hi[1]), interval.New(lo[2], hi[2]), vars); err != nil {
				return err
			}
			simplified, err := e.Simplify()
			if err != nil {
				return err
			}
			color.Cyan("%s: %d clauses -> %d after simplify", tapeName, len(p.Clauses()), len(simplified.Clauses()))
			return nil
		},
	}
	tapeNameFlag(cmd, &tapeName)
	boxFlags(cmd, &lo, &hi)
	return cmd
}

func newPoolBenchCmd() *cobra.Command {
	var tapeName string
	var workers, prealloc int

	cmd := &cobra.Command{
		Use:   "pool-bench",
		Short: "Lease/release a demo tape's evaluator from a pool across workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildDemoTape(tapeName)
			if err != nil {
				return err
			}
			pl := pool.New(p, pool.Options{Prealloc: prealloc})
			vars := make([]float32, p.VarCount())

			done := make(chan error, workers)
			for w := 0; w < workers; w++ {
				go func(id int) {
					lease := pl.Lease()
					defer lease.Release()
					_, err := lease.Eval.EvalI(interval.New(-1, 1), interval.New(-1, 1), interval.New(-1, 1), vars)
					done <- err
				}(w)
			}
			for w := 0; w < workers; w++ {
				if err := <-done; err != nil {
					return err
				}
			}
			color.Green("%s: %d workers leased/released, %d storages idle", tapeName, workers, pl.FreeCount())
			return nil
		},
	}
	tapeNameFlag(cmd, &tapeName)
	cmd.Flags().IntVar(&workers, "workers", 4, "number of concurrent leases")
	cmd.Flags().IntVar(&prealloc, "prealloc", 2, "evaluators to preallocate")
	return cmd
}

func printBound(label string, v interval.Interval, choices []choice.Choice) {
	if v.HasNaN() {
		color.Yellow("%s: NaN", label)
		return
	}
	color.Green("%s: [%g, %g]", label, v.Lo, v.Hi)
	for i, c := range choices {
		fmt.Printf("  choice[%d] = %s\n", i, c)
	}
}
