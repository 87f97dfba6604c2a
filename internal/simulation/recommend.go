package simulation

import (
	"fmt"
	"sort"
	"time"

	"dprsim/internal/feasibility"
)

// RecommendationCategory groups mitigations by the lever they pull.
type RecommendationCategory string

const (
	CategoryTimeline       RecommendationCategory = "TIMELINE"
	CategoryResource       RecommendationCategory = "RESOURCE"
	CategoryComplexity     RecommendationCategory = "COMPLEXITY"
	CategoryRiskMitigation RecommendationCategory = "RISK_MITIGATION"
	CategoryGeneral        RecommendationCategory = "GENERAL"
)

// Priority orders recommendations for the reviewer.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Effort is the coarse implementation cost of a recommendation.
type Effort string

const (
	EffortLow    Effort = "LOW"
	EffortMedium Effort = "MEDIUM"
	EffortHigh   Effort = "HIGH"
)

// CompletionRecommendation is a single proposed mitigation. ExpectedImpact is
// the probabilityChange measured by actually running the simulation engine
// with the implied parameters, never an independent estimate.
type CompletionRecommendation struct {
	Category             RecommendationCategory `json:"category"`
	Priority             Priority               `json:"priority"`
	Recommendation       string                 `json:"recommendation"`
	ExpectedImpact       float64                `json:"expectedImpact"`
	ImplementationEffort Effort                 `json:"implementationEffort"`
	Timeframe            string                 `json:"timeframe"`
}

// RecommendationEngineResult is the immutable, timestamped recommendation
// report for a DPR.
type RecommendationEngineResult struct {
	DprID                string                     `json:"dprId"`
	CurrentProbability   float64                    `json:"currentProbability"`
	PotentialImprovement float64                    `json:"potentialImprovement"`
	Recommendations      []CompletionRecommendation `json:"recommendations"`
	PrioritizedActions   []string                   `json:"prioritizedActions"`
	GeneratedTimestamp   time.Time                  `json:"generatedTimestamp"`
}

// DefaultMaxRecommendations bounds the probe work per request.
const DefaultMaxRecommendations = 5

// Priority thresholds on measured probability gain.
const (
	highPriorityImpact   = 10.0
	mediumPriorityImpact = 5.0
)

// candidate describes the mitigation probed for one risk dimension.
type candidate struct {
	category  RecommendationCategory
	params    Parameters
	text      string
	effort    Effort
	timeframe string
}

// candidateFor maps an assessed risk dimension to the parameter set its
// mitigation implies. These are the exact parameters the engine is probed
// with; the quoted impact comes from that probe.
func candidateFor(t feasibility.RiskType) candidate {
	switch t {
	case feasibility.RiskTimeline:
		p := Identity()
		p.TimelineMultiplier = 0.85
		p.AdditionalRiskMitigation = []feasibility.RiskType{feasibility.RiskTimeline}
		return candidate{
			category:  CategoryTimeline,
			params:    p,
			text:      "Compress the schedule by 15% and shield weather-sensitive packages from seasonal windows",
			effort:    EffortMedium,
			timeframe: "1-2 months",
		}
	case feasibility.RiskResource:
		p := Identity()
		p.ResourceMultiplier = 1.2
		p.AdditionalRiskMitigation = []feasibility.RiskType{feasibility.RiskResource}
		return candidate{
			category:  CategoryResource,
			params:    p,
			text:      "Allocate 20% additional resources to relieve labor and equipment strain",
			effort:    EffortHigh,
			timeframe: "2-3 months",
		}
	case feasibility.RiskComplexity:
		p := Identity()
		p.ComplexityMultiplier = 0.8
		p.AdditionalRiskMitigation = []feasibility.RiskType{feasibility.RiskComplexity}
		return candidate{
			category:  CategoryComplexity,
			params:    p,
			text:      "Descope or phase the technically complex packages to cut complexity by 20%",
			effort:    EffortMedium,
			timeframe: "2-4 months",
		}
	case feasibility.RiskEnvironmental:
		p := Identity()
		p.AccessibilityImprovement = 0.1
		p.AdditionalRiskMitigation = []feasibility.RiskType{feasibility.RiskEnvironmental}
		return candidate{
			category:  CategoryRiskMitigation,
			params:    p,
			text:      "Improve site access and front-load environmental clearances",
			effort:    EffortMedium,
			timeframe: "3-6 months",
		}
	default: // FINANCIAL
		p := Identity()
		p.AdditionalRiskMitigation = []feasibility.RiskType{feasibility.RiskFinancial}
		return candidate{
			category:  CategoryRiskMitigation,
			params:    p,
			text:      "Smooth the monthly burn with phased funding releases and tighter cost controls",
			effort:    EffortLow,
			timeframe: "1 month",
		}
	}
}

// Recommend probes the simulation engine once per MEDIUM-or-worse risk
// dimension and ranks the mitigations by measured probability gain. The list
// is capped at maxRecommendations (<= 0 selects the default).
func Recommend(dprID string, baseline feasibility.ProjectFeatures, maxRecommendations int) (RecommendationEngineResult, error) {
	if err := feasibility.ValidateFeatures(baseline); err != nil {
		return RecommendationEngineResult{}, err
	}
	if maxRecommendations <= 0 {
		maxRecommendations = DefaultMaxRecommendations
	}

	current, _, err := runPipeline(baseline)
	if err != nil {
		return RecommendationEngineResult{}, err
	}

	factors, _ := feasibility.AssessRisk(feasibility.Normalize(baseline))

	var recs []CompletionRecommendation
	for _, rf := range factors {
		if !rf.Impact.AtLeast(feasibility.ImpactMedium) {
			continue
		}

		c := candidateFor(rf.Type)
		probe, err := Simulate(baseline, c.params, fmt.Sprintf("mitigate-%s", rf.Type))
		if err != nil {
			return RecommendationEngineResult{}, fmt.Errorf("probing %s mitigation: %w", rf.Type, err)
		}

		recs = append(recs, CompletionRecommendation{
			Category:             c.category,
			Priority:             priorityForImpact(probe.ProbabilityChange),
			Recommendation:       c.text,
			ExpectedImpact:       probe.ProbabilityChange,
			ImplementationEffort: c.effort,
			Timeframe:            c.timeframe,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Priority != recs[j].Priority {
			return priorityRank(recs[i].Priority) > priorityRank(recs[j].Priority)
		}
		return recs[i].ExpectedImpact > recs[j].ExpectedImpact
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}

	best := 0.0
	actions := make([]string, 0, len(recs))
	for _, r := range recs {
		if r.ExpectedImpact > best {
			best = r.ExpectedImpact
		}
		actions = append(actions, r.Recommendation)
	}

	return RecommendationEngineResult{
		DprID:                dprID,
		CurrentProbability:   current,
		PotentialImprovement: best,
		Recommendations:      recs,
		PrioritizedActions:   actions,
		GeneratedTimestamp:   time.Now().UTC(),
	}, nil
}

func priorityForImpact(impact float64) Priority {
	switch {
	case impact >= highPriorityImpact:
		return PriorityHigh
	case impact >= mediumPriorityImpact:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	default:
		return 0
	}
}
