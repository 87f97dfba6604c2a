package simulation

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"dprsim/internal/feasibility"
)

// BaselineScenarioName labels the identity-parameter run.
const BaselineScenarioName = "Baseline"

// DefaultWhatIfWorkers bounds the scenario parallelism of a batch.
const DefaultWhatIfWorkers = 4

// WhatIfAnalysis compares a batch of scenarios against the identity baseline.
// Best and worst are picked by completion probability; ties break on lower
// cost impact, then lower time impact.
type WhatIfAnalysis struct {
	DprID                  string    `json:"dprId"`
	BaselineScenario       Result    `json:"baselineScenario"`
	SimulatedScenarios     []Result  `json:"simulatedScenarios"`
	BestScenario           Result    `json:"bestScenario"`
	WorstScenario          Result    `json:"worstScenario"`
	AnalysisTimestamp      time.Time `json:"analysisTimestamp"`
	TotalScenariosAnalyzed int       `json:"totalScenariosAnalyzed"`
}

// RunWhatIf simulates every scenario in the batch against the same baseline.
// Scenarios are independent, so they run concurrently (bounded by workers; <= 0
// selects the default); results keep submission order, and the best/worst
// reduction is order-insensitive.
func RunWhatIf(ctx context.Context, dprID string, baseline feasibility.ProjectFeatures, scenarios []NamedParameters, workers int) (WhatIfAnalysis, error) {
	if workers <= 0 {
		workers = DefaultWhatIfWorkers
	}

	base, err := Simulate(baseline, Identity(), BaselineScenarioName)
	if err != nil {
		return WhatIfAnalysis{}, err
	}

	results := make([]Result, len(scenarios))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, sc := range scenarios {
		i, sc := i, sc
		g.Go(func() error {
			res, err := Simulate(baseline, sc.Parameters, sc.Name)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return WhatIfAnalysis{}, err
	}

	best, worst := base, base
	for _, r := range results {
		if BetterScenario(r, best) {
			best = r
		}
		if BetterScenario(worst, r) {
			worst = r
		}
	}

	return WhatIfAnalysis{
		DprID:                  dprID,
		BaselineScenario:       base,
		SimulatedScenarios:     results,
		BestScenario:           best,
		WorstScenario:          worst,
		AnalysisTimestamp:      time.Now().UTC(),
		TotalScenariosAnalyzed: len(results) + 1,
	}, nil
}

// BetterScenario reports whether a is a strictly better outcome than b:
// higher completion probability, ties broken by lower cost impact, then by
// lower time impact.
func BetterScenario(a, b Result) bool {
	if a.CompletionProbability != b.CompletionProbability {
		return a.CompletionProbability > b.CompletionProbability
	}
	if a.CostImpact != b.CostImpact {
		return a.CostImpact < b.CostImpact
	}
	return a.TimeImpact < b.TimeImpact
}
