package simulation

import (
	"time"

	"dprsim/internal/feasibility"
)

// FeasibilityRating buckets a completion probability into the categorical
// label shown to reviewers.
type FeasibilityRating string

const (
	RatingPoor      FeasibilityRating = "POOR"
	RatingFair      FeasibilityRating = "FAIR"
	RatingGood      FeasibilityRating = "GOOD"
	RatingExcellent FeasibilityRating = "EXCELLENT"
)

// RatingForProbability maps a probability (0-100) onto its rating.
func RatingForProbability(p float64) FeasibilityRating {
	switch {
	case p >= 85:
		return RatingExcellent
	case p >= 70:
		return RatingGood
	case p >= 50:
		return RatingFair
	default:
		return RatingPoor
	}
}

// Result is an immutable record of a single scenario run. Timestamp is the
// only field excluded from equality comparisons between identical runs.
type Result struct {
	ScenarioName          string                      `json:"scenarioName"`
	Parameters            Parameters                  `json:"parameters"`
	AdjustedFeatures      feasibility.ProjectFeatures `json:"adjustedFeatures"`
	AdjustedRiskFactors   []feasibility.RiskFactor    `json:"adjustedRiskFactors"`
	CompletionProbability float64                     `json:"completionProbability"`
	ProbabilityChange     float64                     `json:"probabilityChange"`
	RiskScore             float64                     `json:"riskScore"`
	RiskChange            float64                     `json:"riskChange"`
	CostImpact            float64                     `json:"costImpact"`
	TimeImpact            float64                     `json:"timeImpact"`
	Recommendations       []string                    `json:"recommendations"`
	FeasibilityRating     FeasibilityRating           `json:"feasibilityRating"`
	Timestamp             time.Time                   `json:"timestamp"`
}

// Simulate perturbs the baseline by the given parameters and recomputes the
// full normalize -> risk -> probability pipeline on the adjusted features.
// Pure and deterministic: identical (baseline, parameters) pairs yield
// identical results apart from Timestamp. The baseline is never mutated.
func Simulate(baseline feasibility.ProjectFeatures, params Parameters, scenarioName string) (Result, error) {
	if err := params.Validate(); err != nil {
		return Result{}, err
	}
	if err := feasibility.ValidateFeatures(baseline); err != nil {
		return Result{}, err
	}

	baseProb, baseRisk, err := runPipeline(baseline)
	if err != nil {
		return Result{}, err
	}

	adjusted := applyParameters(baseline, params)

	adjProb, adjRisk, err := runPipeline(adjusted)
	if err != nil {
		return Result{}, err
	}
	adjFactors, _ := feasibility.AssessRisk(feasibility.Normalize(adjusted))

	return Result{
		ScenarioName:          scenarioName,
		Parameters:            params,
		AdjustedFeatures:      adjusted,
		AdjustedRiskFactors:   adjFactors,
		CompletionProbability: adjProb,
		ProbabilityChange:     adjProb - baseProb,
		RiskScore:             adjRisk,
		RiskChange:            adjRisk - baseRisk,
		CostImpact:            adjusted.TotalCost - baseline.TotalCost,
		TimeImpact:            adjusted.EstimatedDurationMonths - baseline.EstimatedDurationMonths,
		Recommendations:       scenarioAdvice(adjFactors),
		FeasibilityRating:     RatingForProbability(adjProb),
		Timestamp:             time.Now().UTC(),
	}, nil
}

// runPipeline computes (completionProbability, overallRisk) for a feature
// vector.
func runPipeline(f feasibility.ProjectFeatures) (float64, float64, error) {
	n := feasibility.Normalize(f)
	_, breakdown := feasibility.AssessRisk(n)
	prob, err := feasibility.CalculateProbability(n, breakdown)
	if err != nil {
		return 0, 0, err
	}
	return prob.FinalScore, breakdown.OverallRisk, nil
}

// applyParameters derives the adjusted feature vector. Returns a new value;
// the baseline is owned by the caller.
func applyParameters(f feasibility.ProjectFeatures, p Parameters) feasibility.ProjectFeatures {
	adj := f

	adj.EstimatedDurationMonths = f.EstimatedDurationMonths * p.TimelineMultiplier
	adj.TotalCost = f.TotalCost * p.ResourceMultiplier
	// Monthly burn follows cost growth and schedule compression.
	adj.CostPerMonth = f.CostPerMonth * p.ResourceMultiplier / p.TimelineMultiplier

	// More resources relieve resource and labor strain.
	adj.ResourceComplexityScore = clamp01(f.ResourceComplexityScore / p.ResourceMultiplier)
	adj.LaborIntensityScore = clamp01(f.LaborIntensityScore / p.ResourceMultiplier)

	adj.TechnicalComplexityScore = clamp01(f.TechnicalComplexityScore * p.ComplexityMultiplier)
	adj.EnvironmentalComplexityScore = clamp01(f.EnvironmentalComplexityScore * p.ComplexityMultiplier)
	adj.RegulatoryComplexityScore = clamp01(f.RegulatoryComplexityScore * p.ComplexityMultiplier)

	adj.AccessibilityScore = clamp01(f.AccessibilityScore + p.AccessibilityImprovement)

	for _, t := range p.AdditionalRiskMitigation {
		applyMitigation(&adj, t)
	}

	return adj
}

// applyMitigation scales the input sub-scores feeding the mitigated dimension.
func applyMitigation(f *feasibility.ProjectFeatures, t feasibility.RiskType) {
	switch t {
	case feasibility.RiskTimeline:
		f.SeasonalityFactor *= mitigationFactor
		f.WeatherRiskMonths *= mitigationFactor
	case feasibility.RiskResource:
		f.ResourceComplexityScore *= mitigationFactor
		f.LaborIntensityScore *= mitigationFactor
	case feasibility.RiskComplexity:
		f.TechnicalComplexityScore *= mitigationFactor
		f.EnvironmentalComplexityScore *= mitigationFactor
		f.RegulatoryComplexityScore *= mitigationFactor
	case feasibility.RiskEnvironmental:
		f.EnvironmentalComplexityScore *= mitigationFactor
		f.RemotenessScore *= mitigationFactor
	case feasibility.RiskFinancial:
		f.CostPerMonth *= mitigationFactor
	}
}

// scenarioAdvice surfaces the mitigation texts of the dimensions still at
// MEDIUM or above after adjustment.
func scenarioAdvice(factors []feasibility.RiskFactor) []string {
	var advice []string
	for _, rf := range factors {
		if rf.Impact.AtLeast(feasibility.ImpactMedium) {
			advice = append(advice, rf.Mitigation)
		}
	}
	return advice
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
