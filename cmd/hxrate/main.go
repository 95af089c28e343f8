// Command hxrate loads one or more YAML exchanger cases, solves them, and
// prints the itemized results.
//
// Usage:
//
//	hxrate [-parallel N] [-json] case.yaml [case2.yaml ...]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/thermalab/hxcore/infrastructure/diagnostics"
	"github.com/thermalab/hxcore/infrastructure/props"
	"github.com/thermalab/hxcore/internal/application"
	"github.com/thermalab/hxcore/internal/domain"
)

// builtinFluids is the property table served by the CLI's constant
// provider. Values are quoted at representative states.
var builtinFluids = map[string]domain.FluidProperties{
	"water": {Density: 983.0, Viscosity: 4.67e-4, Cp: 4180.0, Conductivity: 0.654},
	"air":   {Density: 1.204, Viscosity: 1.82e-5, Cp: 1005.0, Conductivity: 0.0259},
	"oil":   {Density: 860.0, Viscosity: 3.0e-2, Cp: 2000.0, Conductivity: 0.14},
}

func main() {
	parallel := flag.Int("parallel", 4, "maximum concurrent solves")
	asJSON := flag.Bool("json", false, "emit full results as JSON")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: hxrate [-parallel N] [-json] case.yaml [case2.yaml ...]")
		os.Exit(2)
	}

	if err := run(context.Background(), flag.Args(), *parallel, *asJSON); err != nil {
		fmt.Fprintf(os.Stderr, "hxrate: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, paths []string, parallel int, asJSON bool) error {
	sink := diagnostics.NewCollectorSink()
	engine, err := application.NewEngine(
		props.NewConstantProvider(builtinFluids),
		application.WithDiagnostics(sink),
	)
	if err != nil {
		return err
	}

	loader := application.NewCaseLoader()
	cases := make([]*application.Case, 0, len(paths))
	for _, path := range paths {
		c, err := loader.LoadFromFile(ctx, path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		cases = append(cases, c)
	}

	results, err := application.Sweep(ctx, engine, cases, parallel)
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("%s: FAILED: %v\n", r.Case.Name, r.Err)
			continue
		}
		if asJSON {
			out, err := json.MarshalIndent(r.Result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			continue
		}
		printResult(r.Case.Name, r.Result)
	}

	if summary := application.Summarize(results); summary.Solved > 1 {
		fmt.Printf("sweep: %d solved, %d failed, duty min/mean/max = %.1f / %.1f / %.1f W\n",
			summary.Solved, summary.Failed, summary.MinDuty, summary.MeanDuty, summary.MaxDuty)
	}
	return nil
}

func printResult(name string, r *domain.HXResult) {
	t := r.Thermal
	h := r.Hydraulic
	fmt.Printf("%s (%s, %d passes)\n", name, r.Bundle.Arrangement, r.Bundle.PassCount())
	fmt.Printf("  Q = %.1f W   UA = %.1f W/K   NTU = %.3f   eps = %.4f\n",
		t.Q, t.UA, t.NTU, t.Effectiveness)
	fmt.Printf("  T_hot,out = %.2f K   T_cold,out = %.2f K\n", t.HotOutlet, t.ColdOutlet)
	fmt.Printf("  dp_tube = %.1f Pa (friction %.1f + inlet %.1f + outlet %.1f + return %.1f)   dp_outside = %.1f Pa\n",
		h.TubeTotal, h.Friction, h.Inlet, h.Outlet, h.Return, h.OutsideLoss)
	for _, w := range r.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
}
