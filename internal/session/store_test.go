package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"dprsim/internal/feasibility"
	"dprsim/internal/simulation"
)

func testFeatures() feasibility.ProjectFeatures {
	return feasibility.ProjectFeatures{
		EstimatedDurationMonths: 12,
		SeasonalityFactor:       0.5,
		WeatherRiskMonths:       3,

		TotalCost:               1_000_000,
		CostPerMonth:            1_000_000.0 / 12,
		ResourceComplexityScore: 0.5,
		LaborIntensityScore:     0.5,

		TechnicalComplexityScore:     0.5,
		EnvironmentalComplexityScore: 0.5,
		RegulatoryComplexityScore:    0.5,

		AccessibilityScore:  0.5,
		InfrastructureScore: 0.5,
		RemotenessScore:     0.5,

		SimilarProjectsCount: 4,
		NationalSuccessRate:  0.7,
		CategorySuccessRate:  0.7,
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	st := NewStore("")

	s, err := st.Create("DPR-100", testFeatures())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if s.SessionID == "" {
		t.Fatalf("Expected a generated session id")
	}
	if s.DprID != "DPR-100" {
		t.Errorf("Expected dprId DPR-100, got %s", s.DprID)
	}
	if len(s.ScenarioHistory) != 1 {
		t.Fatalf("Expected history to start with the baseline, got %d entries", len(s.ScenarioHistory))
	}
	if s.ScenarioHistory[0].ScenarioName != simulation.BaselineScenarioName {
		t.Errorf("Expected history[0] to be the baseline, got %q", s.ScenarioHistory[0].ScenarioName)
	}
	if s.CurrentScenario.ScenarioName != simulation.BaselineScenarioName {
		t.Errorf("Expected current scenario to be the baseline, got %q", s.CurrentScenario.ScenarioName)
	}
	if len(s.BaselineRiskFactors) != len(feasibility.AllRiskTypes) {
		t.Errorf("Expected %d baseline risk factors, got %d", len(feasibility.AllRiskTypes), len(s.BaselineRiskFactors))
	}

	got, err := st.Get(s.SessionID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.SessionID != s.SessionID {
		t.Errorf("Expected session %s, got %s", s.SessionID, got.SessionID)
	}
}

func TestStore_SubmitAppendsHistory(t *testing.T) {
	st := NewStore("")
	s, err := st.Create("DPR-101", testFeatures())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	faster := simulation.Identity()
	faster.TimelineMultiplier = 0.8
	resourced := simulation.Identity()
	resourced.ResourceMultiplier = 1.2

	if _, err := st.Submit(s.SessionID, faster, "Crash Programme"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := st.Submit(s.SessionID, resourced, "More Crews"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	// Unnamed submissions get a positional name.
	got, err := st.Submit(s.SessionID, simulation.Identity(), "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(got.ScenarioHistory) != 4 {
		t.Fatalf("Expected 4 history entries, got %d", len(got.ScenarioHistory))
	}
	expected := []string{simulation.BaselineScenarioName, "Crash Programme", "More Crews", "Scenario 3"}
	for i, name := range expected {
		if got.ScenarioHistory[i].ScenarioName != name {
			t.Errorf("Expected history[%d] to be %q, got %q", i, name, got.ScenarioHistory[i].ScenarioName)
		}
	}
	if got.CurrentScenario.ScenarioName != "Scenario 3" {
		t.Errorf("Expected current scenario to be the latest submission, got %q", got.CurrentScenario.ScenarioName)
	}
	if got.LastUpdated.Before(got.CreatedAt) {
		t.Errorf("Expected LastUpdated to advance with submissions")
	}
}

func TestStore_SubmitInvalidParamsKeepsHistory(t *testing.T) {
	st := NewStore("")
	s, err := st.Create("DPR-102", testFeatures())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	broken := simulation.Identity()
	broken.ResourceMultiplier = 0

	_, err = st.Submit(s.SessionID, broken, "Broken")
	var ve *feasibility.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}

	got, err := st.Get(s.SessionID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(got.ScenarioHistory) != 1 {
		t.Errorf("Expected rejected submission to leave history untouched, got %d entries", len(got.ScenarioHistory))
	}
}

func TestStore_UnknownSession(t *testing.T) {
	st := NewStore("")

	if _, err := st.Get("no-such-session"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound from Get, got %v", err)
	}
	if _, err := st.Submit("no-such-session", simulation.Identity(), "X"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound from Submit, got %v", err)
	}
	if _, err := st.WhatIf(context.Background(), "no-such-session", nil, 2); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound from WhatIf, got %v", err)
	}
}

func TestStore_ConcurrentSubmits(t *testing.T) {
	st := NewStore("")
	s, err := st.Create("DPR-103", testFeatures())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			params := simulation.Identity()
			params.TimelineMultiplier = 0.8 + 0.04*float64(i)
			if _, err := st.Submit(s.SessionID, params, fmt.Sprintf("Concurrent %d", i)); err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := st.Get(s.SessionID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(got.ScenarioHistory) != n+1 {
		t.Errorf("Expected %d history entries after concurrent submits, got %d", n+1, len(got.ScenarioHistory))
	}
}

func TestStore_WhatIfCoversHistory(t *testing.T) {
	st := NewStore("")
	s, err := st.Create("DPR-104", testFeatures())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	faster := simulation.Identity()
	faster.TimelineMultiplier = 0.8
	if _, err := st.Submit(s.SessionID, faster, "Crash Programme"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	extended := simulation.Identity()
	extended.TimelineMultiplier = 1.25
	extra := []simulation.NamedParameters{{Name: "Extended", Parameters: extended}}

	analysis, err := st.WhatIf(context.Background(), s.SessionID, extra, 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// History minus the baseline, plus the ad-hoc candidate, plus the
	// recomputed baseline itself.
	if analysis.TotalScenariosAnalyzed != 3 {
		t.Errorf("Expected 3 analyzed scenarios, got %d", analysis.TotalScenariosAnalyzed)
	}
	if analysis.SimulatedScenarios[0].ScenarioName != "Crash Programme" {
		t.Errorf("Expected session history first in the batch, got %q", analysis.SimulatedScenarios[0].ScenarioName)
	}
	if analysis.SimulatedScenarios[1].ScenarioName != "Extended" {
		t.Errorf("Expected ad-hoc candidates after the history, got %q", analysis.SimulatedScenarios[1].ScenarioName)
	}
}

func TestStore_SnapshotIsolation(t *testing.T) {
	st := NewStore("")
	s, err := st.Create("DPR-105", testFeatures())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	s.ScenarioHistory[0].ScenarioName = "tampered"
	s.BaselineRiskFactors[0].Mitigation = "tampered"

	got, err := st.Get(s.SessionID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.ScenarioHistory[0].ScenarioName == "tampered" {
		t.Errorf("Expected store history to be isolated from returned copies")
	}
	if got.BaselineRiskFactors[0].Mitigation == "tampered" {
		t.Errorf("Expected store risk factors to be isolated from returned copies")
	}
}

func TestStore_PersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()

	st := NewStore(dir)
	s, err := st.Create("DPR-106", testFeatures())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	faster := simulation.Identity()
	faster.TimelineMultiplier = 0.9
	if _, err := st.Submit(s.SessionID, faster, "Crash Programme"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	restored := NewStore(dir)
	if err := restored.Load(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got, err := restored.Get(s.SessionID)
	if err != nil {
		t.Fatalf("Expected restored session, got %v", err)
	}
	if got.DprID != "DPR-106" {
		t.Errorf("Expected dprId DPR-106, got %s", got.DprID)
	}
	if len(got.ScenarioHistory) != 2 {
		t.Errorf("Expected 2 restored history entries, got %d", len(got.ScenarioHistory))
	}
	if got.CurrentScenario.ScenarioName != "Crash Programme" {
		t.Errorf("Expected restored current scenario, got %q", got.CurrentScenario.ScenarioName)
	}
}

func TestStore_LoadToleratesBadFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "junk.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write junk file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644); err != nil {
		t.Fatalf("Failed to write stray file: %v", err)
	}

	st := NewStore(dir)
	if err := st.Load(); err != nil {
		t.Errorf("Expected bad files to be skipped, got %v", err)
	}
}

func TestStore_LoadMissingDir(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "does-not-exist"))
	if err := st.Load(); err != nil {
		t.Errorf("Expected a missing directory to be tolerated, got %v", err)
	}
}
