package feasibility

import (
	"math"
	"time"
)

// ProbabilityBreakdown is the auditable decomposition of a completion
// probability. Invariant: FinalScore = clamp(BaseScore + sum of adjustments,
// 0, 100).
type ProbabilityBreakdown struct {
	BaseScore            float64 `json:"baseScore"`
	TimelineAdjustment   float64 `json:"timelineAdjustment"`
	ResourceAdjustment   float64 `json:"resourceAdjustment"`
	ComplexityAdjustment float64 `json:"complexityAdjustment"`
	LocationAdjustment   float64 `json:"locationAdjustment"`
	HistoricalAdjustment float64 `json:"historicalAdjustment"`
	RiskAdjustment       float64 `json:"riskAdjustment"`
	FinalScore           float64 `json:"finalScore"`
}

// ProbabilityCalculationResult is the immutable, timestamped probability
// report for a DPR.
type ProbabilityCalculationResult struct {
	DprID                 string               `json:"dprId"`
	CompletionProbability float64              `json:"completionProbability"` // 0-100
	ProbabilityBreakdown  ProbabilityBreakdown `json:"probabilityBreakdown"`
	ConfidenceLevel       float64              `json:"confidenceLevel"` // 0-1
	CalculationTimestamp  time.Time            `json:"calculationTimestamp"`
}

// Base score weights over the historical context, and adjustment scaling.
// Each signed adjustment is linear around the neutral midpoint 0.5 and
// bounded to its fixed range.
const (
	baseNationalWeight   = 0.50
	baseCategoryWeight   = 0.35
	baseExperienceWeight = 0.15

	// adjustmentMidpoint is the neutral value: sub-scores above it on a
	// favorable axis add points, below it subtract.
	adjustmentMidpoint = 0.5

	// adjustmentBound limits each of the timeline/resource/complexity/location
	// adjustments; adjustmentSlope maps the [0,1] deviation onto points.
	adjustmentBound = 15.0
	adjustmentSlope = 30.0

	historicalBound = 10.0
	historicalSlope = 20.0

	// riskPenaltyRate converts overall risk (0-100) into a strictly
	// non-positive adjustment. Risk can only reduce probability.
	riskPenaltyRate = 0.15
)

// CalculateProbability combines normalized features and the risk breakdown
// into a completion-probability estimate. Pure and bit-for-bit reproducible
// for identical inputs.
func CalculateProbability(n NormalizedFeatures, risk RiskBreakdown) (ProbabilityBreakdown, error) {
	base := 100 * (baseNationalWeight*n.NationalSuccess +
		baseCategoryWeight*n.CategorySuccess +
		baseExperienceWeight*n.Experience)

	timelineExposure := (n.ScheduleExposure + n.DurationPressure) / 2
	resourceExposure := (n.ResourceExposure + n.BurnIntensity) / 2
	complexityExposure := (n.TechnicalComplexity + n.EnvironmentalComplexity + n.RegulatoryComplexity) / 3
	locationFavor := (n.Accessibility + n.Infrastructure + (1 - n.Remoteness)) / 3
	historicalFavor := (n.NationalSuccess + n.CategorySuccess) / 2

	b := ProbabilityBreakdown{
		BaseScore:            base,
		TimelineAdjustment:   boundedAdjustment(adjustmentMidpoint-timelineExposure, adjustmentSlope, adjustmentBound),
		ResourceAdjustment:   boundedAdjustment(adjustmentMidpoint-resourceExposure, adjustmentSlope, adjustmentBound),
		ComplexityAdjustment: boundedAdjustment(adjustmentMidpoint-complexityExposure, adjustmentSlope, adjustmentBound),
		LocationAdjustment:   boundedAdjustment(locationFavor-adjustmentMidpoint, adjustmentSlope, adjustmentBound),
		HistoricalAdjustment: boundedAdjustment(historicalFavor-adjustmentMidpoint, historicalSlope, historicalBound),
		RiskAdjustment:       -risk.OverallRisk * riskPenaltyRate,
	}

	sum := b.BaseScore + b.TimelineAdjustment + b.ResourceAdjustment +
		b.ComplexityAdjustment + b.LocationAdjustment +
		b.HistoricalAdjustment + b.RiskAdjustment
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return ProbabilityBreakdown{}, &ComputationError{Stage: "probability calculation", Value: sum}
	}
	b.FinalScore = clampRange(sum, 0, 100)

	return b, nil
}

func boundedAdjustment(deviation, slope, bound float64) float64 {
	return clampRange(deviation*slope, -bound, bound)
}

// ConfidenceLevel estimates how much historical evidence backs a probability
// figure. It depends only on the similar-project count: more comparable
// projects, more confidence, capped at 0.9.
func ConfidenceLevel(similarProjects int) float64 {
	capped := similarProjects
	if capped > 8 {
		capped = 8
	}
	return clampRange(0.5+0.05*float64(capped), 0, 0.9)
}

// CalculateCompletionProbability validates the input and runs the full
// normalize -> assess -> calculate pipeline.
func CalculateCompletionProbability(dprID string, f ProjectFeatures) (ProbabilityCalculationResult, error) {
	if err := ValidateFeatures(f); err != nil {
		return ProbabilityCalculationResult{}, err
	}

	n := Normalize(f)
	_, breakdown := AssessRisk(n)
	prob, err := CalculateProbability(n, breakdown)
	if err != nil {
		return ProbabilityCalculationResult{}, err
	}

	return ProbabilityCalculationResult{
		DprID:                 dprID,
		CompletionProbability: prob.FinalScore,
		ProbabilityBreakdown:  prob,
		ConfidenceLevel:       ConfidenceLevel(f.SimilarProjectsCount),
		CalculationTimestamp:  time.Now().UTC(),
	}, nil
}
