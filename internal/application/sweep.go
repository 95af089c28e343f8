package application

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/thermalab/hxcore/internal/domain"
	"github.com/thermalab/hxcore/internal/ports"
)

// SweepResult pairs one case with its solved result or error. Results keep
// the input order regardless of completion order.
type SweepResult struct {
	// Case is the input case.
	Case *Case

	// Result is the solved snapshot, nil when Err is set.
	Result *domain.HXResult

	// Err is the per-case failure, nil on success.
	Err error
}

// SweepSummary aggregates the duties of the successful cases in a sweep.
type SweepSummary struct {
	// Solved counts the cases that completed without error.
	Solved int `json:"solved"`

	// Failed counts the cases that returned an error.
	Failed int `json:"failed"`

	// MinDuty, MaxDuty and MeanDuty summarize Q over the solved cases [W].
	// All three are zero when nothing solved.
	MinDuty  float64 `json:"min_duty"`
	MaxDuty  float64 `json:"max_duty"`
	MeanDuty float64 `json:"mean_duty"`
}

// Sweep runs independent solves for each case with bounded parallelism.
// Each solve is a pure function of immutable inputs, so the only
// coordination needed is the bound itself; per-case failures are recorded
// in place and do not cancel the remaining cases.
func Sweep(ctx context.Context, solver ports.Solver, cases []*Case, parallelism int) ([]SweepResult, error) {
	if solver == nil {
		return nil, fmt.Errorf("solver is required")
	}
	if parallelism <= 0 {
		parallelism = 1
	}

	results := make([]SweepResult, len(cases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, c := range cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = SweepResult{Case: c, Err: err}
				return nil
			}
			res, err := solver.Solve(ctx, c.Bundle, c.Hot, c.Cold, c.Options)
			results[i] = SweepResult{Case: c, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summarize reduces a sweep to duty statistics over the solved cases.
func Summarize(results []SweepResult) SweepSummary {
	var duties []float64
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		duties = append(duties, r.Result.Thermal.Q)
	}

	summary := SweepSummary{Solved: len(duties), Failed: failed}
	if len(duties) == 0 {
		return summary
	}
	summary.MinDuty = floats.Min(duties)
	summary.MaxDuty = floats.Max(duties)
	summary.MeanDuty = stat.Mean(duties, nil)
	return summary
}
