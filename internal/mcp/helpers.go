package mcp

import (
	"encoding/json"
	"fmt"

	"dprsim/internal/feasibility"
	"dprsim/internal/simulation"
)

// decodeFeatures converts the raw tool argument into a ProjectFeatures
// record via a JSON round-trip, so field names and types follow the schema.
func decodeFeatures(v interface{}) (feasibility.ProjectFeatures, error) {
	var f feasibility.ProjectFeatures
	if v == nil {
		return f, &feasibility.ValidationError{Field: "features", Reason: "missing"}
	}
	if err := reencode(v, &f); err != nil {
		return f, &feasibility.ValidationError{Field: "features", Reason: err.Error()}
	}
	return f, nil
}

// decodeParameters converts the raw tool argument into simulation
// Parameters. Omitted multipliers keep their identity defaults.
func decodeParameters(v interface{}) (simulation.Parameters, error) {
	p := simulation.Identity()
	if v == nil {
		return p, &feasibility.ValidationError{Field: "parameters", Reason: "missing"}
	}
	if err := reencode(v, &p); err != nil {
		return p, &feasibility.ValidationError{Field: "parameters", Reason: err.Error()}
	}
	return p, nil
}

// decodeNamedParameters converts the raw scenario list. A nil argument is an
// empty batch.
func decodeNamedParameters(v interface{}) ([]simulation.NamedParameters, error) {
	if v == nil {
		return nil, nil
	}

	items, ok := v.([]interface{})
	if !ok {
		return nil, &feasibility.ValidationError{Field: "scenarios", Reason: "must be an array"}
	}

	scenarios := make([]simulation.NamedParameters, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, &feasibility.ValidationError{Field: fmt.Sprintf("scenarios[%d]", i), Reason: "must be an object"}
		}

		params, err := decodeParameters(m["parameters"])
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, simulation.NamedParameters{
			Name:       asString(m["name"]),
			Parameters: params,
		})
	}
	return scenarios, nil
}

// reencode round-trips an already-decoded JSON value into a typed struct.
func reencode(v interface{}, target interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, target)
}

func asString(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
