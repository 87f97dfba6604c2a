package mcp

// featuresSchema is the shared input schema for the ProjectFeatures record.
// Every field the engine reads is mandatory; UI-only metadata never reaches
// this layer.
func featuresSchema() map[string]interface{} {
	unitScore := func(desc string) map[string]interface{} {
		return map[string]interface{}{"type": "number", "minimum": 0, "maximum": 1, "description": desc}
	}
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"estimatedDurationMonths": map[string]interface{}{"type": "number", "description": "Planned duration in months (> 0)"},
			"seasonalityFactor":       unitScore("Share of work exposed to seasonal windows"),
			"weatherRiskMonths":       map[string]interface{}{"type": "number", "minimum": 0, "description": "Adverse-weather months per year"},
			"totalCost":               map[string]interface{}{"type": "number", "minimum": 0, "description": "Total estimated cost (rupees)"},
			"costPerMonth":            map[string]interface{}{"type": "number", "minimum": 0, "description": "Planned monthly burn (rupees)"},
			"resourceComplexityScore": unitScore("Resource sourcing complexity"),
			"laborIntensityScore":     unitScore("Labor intensity"),

			"technicalComplexityScore":     unitScore("Technical complexity"),
			"environmentalComplexityScore": unitScore("Environmental complexity"),
			"regulatoryComplexityScore":    unitScore("Regulatory complexity"),

			"accessibilityScore":   unitScore("Site accessibility (higher is better)"),
			"infrastructureScore":  unitScore("Supporting infrastructure (higher is better)"),
			"remotenessScore":      unitScore("Site remoteness"),
			"similarProjectsCount": map[string]interface{}{"type": "integer", "minimum": 0, "description": "Comparable historical projects"},
			"nationalSuccessRate":  unitScore("National completion rate for this project type"),
			"categorySuccessRate":  unitScore("Category completion rate"),
		},
		"required": []string{
			"estimatedDurationMonths", "seasonalityFactor", "weatherRiskMonths",
			"totalCost", "costPerMonth", "resourceComplexityScore", "laborIntensityScore",
			"technicalComplexityScore", "environmentalComplexityScore", "regulatoryComplexityScore",
			"accessibilityScore", "infrastructureScore", "remotenessScore",
			"similarProjectsCount", "nationalSuccessRate", "categorySuccessRate",
		},
	}
}

// parametersSchema describes the simulation perturbation knobs. Multipliers
// default to 1.0 and must be strictly positive.
func parametersSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"timelineMultiplier":       map[string]interface{}{"type": "number", "exclusiveMinimum": 0, "description": "0.5 = 50% faster, 1.5 = 50% slower (default 1.0)"},
			"resourceMultiplier":       map[string]interface{}{"type": "number", "exclusiveMinimum": 0, "description": "1.2 = 20% more resources (default 1.0)"},
			"complexityMultiplier":     map[string]interface{}{"type": "number", "exclusiveMinimum": 0, "description": "0.8 = 20% less complex (default 1.0)"},
			"accessibilityImprovement": map[string]interface{}{"type": "number", "minimum": 0, "maximum": 0.2, "description": "Additive accessibility gain (0-0.2)"},
			"additionalRiskMitigation": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string", "enum": []string{"TIMELINE", "RESOURCE", "COMPLEXITY", "ENVIRONMENTAL", "FINANCIAL"}},
				"description": "Risk dimensions to additionally mitigate",
			},
		},
	}
}

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name": "analyze_risk",
				"description": "Assess the five-dimension risk profile (timeline, resource, complexity, environmental, financial) of a DPR feature vector. " +
					"Returns per-dimension factors with impact levels, the weighted breakdown and the overall risk level.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"dpr_id":   map[string]interface{}{"type": "string", "description": "The DPR document ID"},
						"features": featuresSchema(),
					},
					"required": []string{"dpr_id", "features"},
				},
			},
			map[string]interface{}{
				"name": "calculate_probability",
				"description": "Calculate the completion probability (0-100) with its full auditable breakdown: base score from historical context plus " +
					"six signed adjustments. Deterministic and formula-based; this is NOT a trained model and carries no sampling uncertainty.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"dpr_id":   map[string]interface{}{"type": "string", "description": "The DPR document ID"},
						"features": featuresSchema(),
					},
					"required": []string{"dpr_id", "features"},
				},
			},
			map[string]interface{}{
				"name": "assess_feasibility",
				"description": "Run the combined baseline assessment: completion probability, risk factors, prioritized mitigation texts and a preset " +
					"scenario sweep (accelerated/extended timeline, added resources, reduced complexity, combined). Use this as the FIRST call for a new DPR.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"dpr_id":   map[string]interface{}{"type": "string", "description": "The DPR document ID"},
						"features": featuresSchema(),
					},
					"required": []string{"dpr_id", "features"},
				},
			},
			map[string]interface{}{
				"name": "get_recommendations",
				"description": "Generate prioritized completion recommendations. Every expectedImpact figure is the probability change MEASURED by an " +
					"actual simulation run with the implied mitigation parameters - never an invented estimate. DO NOT quote improvement numbers that are not in this output.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"dpr_id":   map[string]interface{}{"type": "string", "description": "The DPR document ID"},
						"features": featuresSchema(),
					},
					"required": []string{"dpr_id", "features"},
				},
			},
			map[string]interface{}{
				"name": "run_simulation",
				"description": "Run a single what-if scenario against a baseline feature vector. Applies the multipliers, re-runs the full risk and " +
					"probability pipeline on the adjusted features and reports the deltas (probability, risk, cost, time) plus a feasibility rating. Pure and deterministic.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"features":      featuresSchema(),
						"parameters":    parametersSchema(),
						"scenario_name": map[string]interface{}{"type": "string", "description": "Label for this scenario"},
					},
					"required": []string{"features", "parameters"},
				},
			},
			map[string]interface{}{
				"name": "run_whatif",
				"description": "Run a batch what-if analysis: every scenario is simulated against the same baseline and the best/worst outcomes are " +
					"selected by completion probability (ties: lower cost impact, then lower time impact).",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"dpr_id":   map[string]interface{}{"type": "string", "description": "The DPR document ID"},
						"features": featuresSchema(),
						"scenarios": map[string]interface{}{
							"type":        "array",
							"description": "Named parameter sets to simulate",
							"items": map[string]interface{}{
								"type": "object",
								"properties": map[string]interface{}{
									"name":       map[string]interface{}{"type": "string"},
									"parameters": parametersSchema(),
								},
								"required": []string{"name", "parameters"},
							},
						},
					},
					"required": []string{"dpr_id", "features", "scenarios"},
				},
			},
			map[string]interface{}{
				"name": "start_session",
				"description": "Open an interactive simulation session for a DPR. Computes and stores the identity-parameter baseline as history " +
					"element zero. The baseline is fixed for the session's lifetime.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"dpr_id":   map[string]interface{}{"type": "string", "description": "The DPR document ID"},
						"features": featuresSchema(),
					},
					"required": []string{"dpr_id", "features"},
				},
			},
			map[string]interface{}{
				"name": "submit_scenario",
				"description": "Submit one scenario to an interactive session. The result is appended to the session's scenario history (append-only, " +
					"never reordered) and becomes the current scenario.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"session_id":    map[string]interface{}{"type": "string", "description": "The session ID returned by start_session"},
						"parameters":    parametersSchema(),
						"scenario_name": map[string]interface{}{"type": "string", "description": "Label for this scenario"},
					},
					"required": []string{"session_id", "parameters"},
				},
			},
			map[string]interface{}{
				"name":        "get_session",
				"description": "Fetch an interactive session: baseline, current scenario and the full time-ordered scenario history.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"session_id": map[string]interface{}{"type": "string", "description": "The session ID"},
					},
					"required": []string{"session_id"},
				},
			},
			map[string]interface{}{
				"name": "run_session_whatif",
				"description": "Run a what-if analysis over everything explored in a session (its scenario history) plus optional ad-hoc candidates, " +
					"all against the session baseline.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"session_id": map[string]interface{}{"type": "string", "description": "The session ID"},
						"extra_scenarios": map[string]interface{}{
							"type":        "array",
							"description": "Optional ad-hoc candidates to include",
							"items": map[string]interface{}{
								"type": "object",
								"properties": map[string]interface{}{
									"name":       map[string]interface{}{"type": "string"},
									"parameters": parametersSchema(),
								},
								"required": []string{"name", "parameters"},
							},
						},
					},
					"required": []string{"session_id"},
				},
			},
		},
	}
}
