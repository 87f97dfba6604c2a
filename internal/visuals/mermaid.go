package visuals

import (
	"fmt"
	"math"
	"strings"

	"dprsim/internal/feasibility"
	"dprsim/internal/simulation"
)

// GenerateRiskBreakdownChart creates a Mermaid bar chart of the five risk
// dimension scores.
func GenerateRiskBreakdownChart(b feasibility.RiskBreakdown) string {
	labels := []string{
		"\"Timeline\"",
		"\"Resource\"",
		"\"Complexity\"",
		"\"Environmental\"",
		"\"Financial\"",
	}
	values := []string{
		fmt.Sprintf("%.1f", b.TimelineRisk),
		fmt.Sprintf("%.1f", b.ResourceRisk),
		fmt.Sprintf("%.1f", b.ComplexityRisk),
		fmt.Sprintf("%.1f", b.EnvironmentalRisk),
		fmt.Sprintf("%.1f", b.FinancialRisk),
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title \"Risk Breakdown (Overall %.1f)\"\n", b.OverallRisk))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString("    y-axis \"Risk Score\" 0 --> 100\n")
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateProbabilityWaterfall creates a Mermaid bar chart of the signed
// probability adjustments around the base score.
func GenerateProbabilityWaterfall(b feasibility.ProbabilityBreakdown) string {
	labels := []string{
		"\"Base\"",
		"\"Timeline\"",
		"\"Resource\"",
		"\"Complexity\"",
		"\"Location\"",
		"\"Historical\"",
		"\"Risk\"",
		"\"Final\"",
	}
	values := []string{
		fmt.Sprintf("%.1f", b.BaseScore),
		fmt.Sprintf("%.1f", b.TimelineAdjustment),
		fmt.Sprintf("%.1f", b.ResourceAdjustment),
		fmt.Sprintf("%.1f", b.ComplexityAdjustment),
		fmt.Sprintf("%.1f", b.LocationAdjustment),
		fmt.Sprintf("%.1f", b.HistoricalAdjustment),
		fmt.Sprintf("%.1f", b.RiskAdjustment),
		fmt.Sprintf("%.1f", b.FinalScore),
	}

	minY := 0.0
	for _, v := range []float64{b.TimelineAdjustment, b.ResourceAdjustment, b.ComplexityAdjustment,
		b.LocationAdjustment, b.HistoricalAdjustment, b.RiskAdjustment} {
		if v < minY {
			minY = v
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Completion Probability Breakdown\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Points\" %d --> 100\n", int(math.Floor(minY))))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateWhatIfChart creates a Mermaid bar chart comparing scenario
// probabilities against the baseline.
func GenerateWhatIfChart(analysis simulation.WhatIfAnalysis) string {
	scenarios := append([]simulation.Result{analysis.BaselineScenario}, analysis.SimulatedScenarios...)
	if len(scenarios) == 0 {
		return ""
	}

	var labels []string
	var values []string

	// Limit to 20 scenarios to avoid overwhelming the text chart context
	limit := len(scenarios)
	if limit > 20 {
		limit = 20
	}

	for i := 0; i < limit; i++ {
		sc := scenarios[i]
		// Replace spaces to help mermaid rendering
		safeName := strings.ReplaceAll(sc.ScenarioName, " ", "_")
		labels = append(labels, fmt.Sprintf("\"%s\"", safeName))
		values = append(values, fmt.Sprintf("%.1f", sc.CompletionProbability))
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"What-If Scenario Comparison\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString("    y-axis \"Completion Probability\" 0 --> 100\n")
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}
