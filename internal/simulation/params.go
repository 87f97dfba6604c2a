package simulation

import (
	"fmt"

	"dprsim/internal/feasibility"
)

// Parameters are the knobs a scenario turns on the baseline feature vector.
// Multipliers are ratios against the baseline (1.0 = unchanged);
// AccessibilityImprovement is an additive bump on the accessibility score.
type Parameters struct {
	TimelineMultiplier       float64                `json:"timelineMultiplier"`
	ResourceMultiplier       float64                `json:"resourceMultiplier"`
	ComplexityMultiplier     float64                `json:"complexityMultiplier"`
	AccessibilityImprovement float64                `json:"accessibilityImprovement"`
	AdditionalRiskMitigation []feasibility.RiskType `json:"additionalRiskMitigation,omitempty"`
}

// NamedParameters pairs a scenario label with its parameters for batch runs.
type NamedParameters struct {
	Name       string     `json:"name"`
	Parameters Parameters `json:"parameters"`
}

const (
	// maxAccessibilityImprovement caps the additive accessibility bump a
	// scenario may claim.
	maxAccessibilityImprovement = 0.2

	// mitigationFactor scales the input sub-scores of a mitigated risk
	// dimension (a targeted mitigation removes 15% of the driving exposure).
	mitigationFactor = 0.85
)

// Identity returns the parameters that leave the baseline unchanged.
func Identity() Parameters {
	return Parameters{
		TimelineMultiplier:   1.0,
		ResourceMultiplier:   1.0,
		ComplexityMultiplier: 1.0,
	}
}

// Validate rejects parameters the engine cannot meaningfully apply. Zero and
// negative multipliers are hard errors, not clamped.
func (p Parameters) Validate() error {
	if p.TimelineMultiplier <= 0 {
		return &feasibility.ValidationError{Field: "timelineMultiplier", Reason: "must be greater than zero"}
	}
	if p.ResourceMultiplier <= 0 {
		return &feasibility.ValidationError{Field: "resourceMultiplier", Reason: "must be greater than zero"}
	}
	if p.ComplexityMultiplier <= 0 {
		return &feasibility.ValidationError{Field: "complexityMultiplier", Reason: "must be greater than zero"}
	}
	if p.AccessibilityImprovement < 0 || p.AccessibilityImprovement > maxAccessibilityImprovement {
		return &feasibility.ValidationError{
			Field:  "accessibilityImprovement",
			Reason: fmt.Sprintf("must be between 0 and %.1f", maxAccessibilityImprovement),
		}
	}
	for _, t := range p.AdditionalRiskMitigation {
		if !t.IsValid() {
			return &feasibility.ValidationError{
				Field:  "additionalRiskMitigation",
				Reason: fmt.Sprintf("unknown risk type %q", string(t)),
			}
		}
	}
	return nil
}
