package mcp

import (
	"context"
	"fmt"

	"dprsim/internal/feasibility"
	"dprsim/internal/simulation"
	"dprsim/internal/visuals"
)

func (s *Server) dispatch(name string, args map[string]interface{}) (string, error) {
	switch name {
	case "analyze_risk":
		return s.handleAnalyzeRisk(args)
	case "calculate_probability":
		return s.handleCalculateProbability(args)
	case "assess_feasibility":
		return s.handleAssessFeasibility(args)
	case "get_recommendations":
		return s.handleGetRecommendations(args)
	case "run_simulation":
		return s.handleRunSimulation(args)
	case "run_whatif":
		return s.handleRunWhatIf(args)
	case "start_session":
		return s.handleStartSession(args)
	case "submit_scenario":
		return s.handleSubmitScenario(args)
	case "get_session":
		return s.handleGetSession(args)
	case "run_session_whatif":
		return s.handleSessionWhatIf(args)
	default:
		return "", fmt.Errorf("tool not found: %s", name)
	}
}

func (s *Server) handleAnalyzeRisk(args map[string]interface{}) (string, error) {
	features, err := decodeFeatures(args["features"])
	if err != nil {
		return "", err
	}

	result, err := feasibility.AnalyzeRisk(asString(args["dpr_id"]), features)
	if err != nil {
		return "", err
	}

	text := s.formatResult(result)
	if s.cfg.EnableMermaidCharts {
		text += "\n\n" + visuals.GenerateRiskBreakdownChart(result.RiskBreakdown)
	}
	return text, nil
}

func (s *Server) handleCalculateProbability(args map[string]interface{}) (string, error) {
	features, err := decodeFeatures(args["features"])
	if err != nil {
		return "", err
	}

	result, err := feasibility.CalculateCompletionProbability(asString(args["dpr_id"]), features)
	if err != nil {
		return "", err
	}

	text := s.formatResult(result)
	if s.cfg.EnableMermaidCharts {
		text += "\n\n" + visuals.GenerateProbabilityWaterfall(result.ProbabilityBreakdown)
	}
	return text, nil
}

func (s *Server) handleAssessFeasibility(args map[string]interface{}) (string, error) {
	features, err := decodeFeatures(args["features"])
	if err != nil {
		return "", err
	}

	result, err := simulation.AssessFeasibility(asString(args["dpr_id"]), features, s.cfg.MaxRecommendations)
	if err != nil {
		return "", err
	}
	return s.formatResult(result), nil
}

func (s *Server) handleGetRecommendations(args map[string]interface{}) (string, error) {
	features, err := decodeFeatures(args["features"])
	if err != nil {
		return "", err
	}

	result, err := simulation.Recommend(asString(args["dpr_id"]), features, s.cfg.MaxRecommendations)
	if err != nil {
		return "", err
	}
	return s.formatResult(result), nil
}

func (s *Server) handleRunSimulation(args map[string]interface{}) (string, error) {
	features, err := decodeFeatures(args["features"])
	if err != nil {
		return "", err
	}
	params, err := decodeParameters(args["parameters"])
	if err != nil {
		return "", err
	}

	name := asString(args["scenario_name"])
	if name == "" {
		name = "Custom Scenario"
	}

	result, err := simulation.Simulate(features, params, name)
	if err != nil {
		return "", err
	}
	return s.formatResult(result), nil
}

func (s *Server) handleRunWhatIf(args map[string]interface{}) (string, error) {
	features, err := decodeFeatures(args["features"])
	if err != nil {
		return "", err
	}
	scenarios, err := decodeNamedParameters(args["scenarios"])
	if err != nil {
		return "", err
	}

	analysis, err := simulation.RunWhatIf(context.Background(), asString(args["dpr_id"]), features, scenarios, s.cfg.WhatIfWorkers)
	if err != nil {
		return "", err
	}

	text := s.formatResult(analysis)
	if s.cfg.EnableMermaidCharts {
		text += "\n\n" + visuals.GenerateWhatIfChart(analysis)
	}
	return text, nil
}

func (s *Server) handleStartSession(args map[string]interface{}) (string, error) {
	features, err := decodeFeatures(args["features"])
	if err != nil {
		return "", err
	}

	sess, err := s.sessions.Create(asString(args["dpr_id"]), features)
	if err != nil {
		return "", err
	}
	return s.formatResult(sess), nil
}

func (s *Server) handleSubmitScenario(args map[string]interface{}) (string, error) {
	params, err := decodeParameters(args["parameters"])
	if err != nil {
		return "", err
	}

	sess, err := s.sessions.Submit(asString(args["session_id"]), params, asString(args["scenario_name"]))
	if err != nil {
		return "", err
	}
	return s.formatResult(sess), nil
}

func (s *Server) handleGetSession(args map[string]interface{}) (string, error) {
	sess, err := s.sessions.Get(asString(args["session_id"]))
	if err != nil {
		return "", err
	}
	return s.formatResult(sess), nil
}

func (s *Server) handleSessionWhatIf(args map[string]interface{}) (string, error) {
	extra, err := decodeNamedParameters(args["extra_scenarios"])
	if err != nil {
		return "", err
	}

	analysis, err := s.sessions.WhatIf(context.Background(), asString(args["session_id"]), extra, s.cfg.WhatIfWorkers)
	if err != nil {
		return "", err
	}

	text := s.formatResult(analysis)
	if s.cfg.EnableMermaidCharts {
		text += "\n\n" + visuals.GenerateWhatIfChart(analysis)
	}
	return text, nil
}
