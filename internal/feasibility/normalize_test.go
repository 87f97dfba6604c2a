package feasibility

import (
	"math"
	"testing"
)

func assertUnit(t *testing.T, name string, v float64) {
	t.Helper()
	if v < 0 || v > 1 {
		t.Errorf("Expected %s in [0,1], got %f", name, v)
	}
}

func checkAllUnit(t *testing.T, n NormalizedFeatures) {
	t.Helper()
	assertUnit(t, "ScheduleExposure", n.ScheduleExposure)
	assertUnit(t, "DurationPressure", n.DurationPressure)
	assertUnit(t, "ResourceExposure", n.ResourceExposure)
	assertUnit(t, "BurnIntensity", n.BurnIntensity)
	assertUnit(t, "CostScale", n.CostScale)
	assertUnit(t, "TechnicalComplexity", n.TechnicalComplexity)
	assertUnit(t, "EnvironmentalComplexity", n.EnvironmentalComplexity)
	assertUnit(t, "RegulatoryComplexity", n.RegulatoryComplexity)
	assertUnit(t, "Accessibility", n.Accessibility)
	assertUnit(t, "Infrastructure", n.Infrastructure)
	assertUnit(t, "Remoteness", n.Remoteness)
	assertUnit(t, "Experience", n.Experience)
	assertUnit(t, "NationalSuccess", n.NationalSuccess)
	assertUnit(t, "CategorySuccess", n.CategorySuccess)
}

func TestNormalize_BoundsExtremeInputs(t *testing.T) {
	f := ProjectFeatures{
		EstimatedDurationMonths:      600,
		SeasonalityFactor:            3,
		WeatherRiskMonths:            48,
		TotalCost:                    1e12,
		CostPerMonth:                 1e11,
		ResourceComplexityScore:      50,
		LaborIntensityScore:          50,
		TechnicalComplexityScore:     50,
		EnvironmentalComplexityScore: 50,
		RegulatoryComplexityScore:    50,
		AccessibilityScore:           50,
		InfrastructureScore:          50,
		RemotenessScore:              50,
		SimilarProjectsCount:         100000,
		NationalSuccessRate:          7,
		CategorySuccessRate:          7,
	}

	checkAllUnit(t, Normalize(f))
}

func TestNormalize_Saturation(t *testing.T) {
	f := validFeatures()
	f.EstimatedDurationMonths = referenceDurationMonths
	f.WeatherRiskMonths = referenceWeatherMonths
	f.SeasonalityFactor = 1
	f.TotalCost = referenceTotalCost
	f.CostPerMonth = referenceBurnPerMonth

	n := Normalize(f)

	if n.DurationPressure != 1 {
		t.Errorf("Expected DurationPressure to saturate at 1, got %f", n.DurationPressure)
	}
	if n.ScheduleExposure != 1 {
		t.Errorf("Expected ScheduleExposure to saturate at 1, got %f", n.ScheduleExposure)
	}
	if n.CostScale != 1 {
		t.Errorf("Expected CostScale to saturate at 1, got %f", n.CostScale)
	}
	if n.BurnIntensity != 1 {
		t.Errorf("Expected BurnIntensity to saturate at 1, got %f", n.BurnIntensity)
	}
}

func TestNormalize_CompositeWeights(t *testing.T) {
	f := validFeatures()
	f.SeasonalityFactor = 1
	f.WeatherRiskMonths = 0
	f.ResourceComplexityScore = 1
	f.LaborIntensityScore = 0

	n := Normalize(f)

	if math.Abs(n.ScheduleExposure-seasonalityWeight) > 1e-9 {
		t.Errorf("Expected ScheduleExposure %f for seasonality-only exposure, got %f", seasonalityWeight, n.ScheduleExposure)
	}
	if math.Abs(n.ResourceExposure-resourceComplexityWeight) > 1e-9 {
		t.Errorf("Expected ResourceExposure %f for complexity-only strain, got %f", resourceComplexityWeight, n.ResourceExposure)
	}
}

func TestNormalize_ExperienceCurve(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		expected float64
	}{
		{"NoHistory", 0, 0},
		{"HalfSaturation", 5, 0.5},
		{"DiminishingReturns", 15, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFeatures()
			f.SimilarProjectsCount = tt.count
			if got := Normalize(f).Experience; math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected Experience %f for %d similar projects, got %f", tt.expected, tt.count, got)
			}
		})
	}
}
