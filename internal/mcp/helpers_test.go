package mcp

import (
	"errors"
	"testing"

	"dprsim/internal/feasibility"
)

func TestDecodeFeatures(t *testing.T) {
	raw := map[string]interface{}{
		"estimatedDurationMonths": 12.0,
		"totalCost":               1000000.0,
		"nationalSuccessRate":     0.7,
	}

	f, err := decodeFeatures(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if f.EstimatedDurationMonths != 12 {
		t.Errorf("Expected duration 12, got %f", f.EstimatedDurationMonths)
	}
	if f.TotalCost != 1000000 {
		t.Errorf("Expected total cost 1000000, got %f", f.TotalCost)
	}
	if f.NationalSuccessRate != 0.7 {
		t.Errorf("Expected national success rate 0.7, got %f", f.NationalSuccessRate)
	}
}

func TestDecodeFeatures_Missing(t *testing.T) {
	_, err := decodeFeatures(nil)
	var ve *feasibility.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if ve.Field != "features" {
		t.Errorf("Expected error on features, got %s", ve.Field)
	}
}

func TestDecodeParameters_OmittedFieldsKeepIdentity(t *testing.T) {
	raw := map[string]interface{}{
		"timelineMultiplier": 0.8,
	}

	p, err := decodeParameters(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.TimelineMultiplier != 0.8 {
		t.Errorf("Expected timeline multiplier 0.8, got %f", p.TimelineMultiplier)
	}
	if p.ResourceMultiplier != 1 || p.ComplexityMultiplier != 1 {
		t.Errorf("Expected omitted multipliers to stay at identity, got %+v", p)
	}
}

func TestDecodeParameters_Missing(t *testing.T) {
	_, err := decodeParameters(nil)
	var ve *feasibility.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
}

func TestDecodeNamedParameters(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{
			"name": "Faster",
			"parameters": map[string]interface{}{
				"timelineMultiplier": 0.8,
			},
		},
	}

	scenarios, err := decodeNamedParameters(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(scenarios) != 1 {
		t.Fatalf("Expected 1 scenario, got %d", len(scenarios))
	}
	if scenarios[0].Name != "Faster" {
		t.Errorf("Expected scenario name Faster, got %s", scenarios[0].Name)
	}
	if scenarios[0].Parameters.TimelineMultiplier != 0.8 {
		t.Errorf("Expected timeline multiplier 0.8, got %f", scenarios[0].Parameters.TimelineMultiplier)
	}
}

func TestDecodeNamedParameters_Invalid(t *testing.T) {
	if _, err := decodeNamedParameters("not an array"); err == nil {
		t.Errorf("Expected an error for a non-array value")
	}
	if _, err := decodeNamedParameters([]interface{}{"not an object"}); err == nil {
		t.Errorf("Expected an error for a non-object scenario")
	}
	// An entry without parameters cannot be simulated.
	if _, err := decodeNamedParameters([]interface{}{map[string]interface{}{"name": "X"}}); err == nil {
		t.Errorf("Expected an error for a scenario without parameters")
	}

	scenarios, err := decodeNamedParameters(nil)
	if err != nil || scenarios != nil {
		t.Errorf("Expected a nil batch to decode to nothing, got %v, %v", scenarios, err)
	}
}

func TestAsString(t *testing.T) {
	if got := asString(nil); got != "" {
		t.Errorf("Expected empty string for nil, got %q", got)
	}
	if got := asString("DPR-1"); got != "DPR-1" {
		t.Errorf("Expected DPR-1, got %q", got)
	}
}
