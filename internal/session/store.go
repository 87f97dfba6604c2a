package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"dprsim/internal/feasibility"
	"dprsim/internal/simulation"
)

// ErrSessionNotFound is returned when an operation targets an unknown session.
var ErrSessionNotFound = errors.New("session not found")

// Session is one interactive exploration of a DPR. The baseline is fixed at
// creation; ScenarioHistory is the authoritative, append-only log of every
// scenario ever submitted, with the baseline as element zero.
type Session struct {
	SessionID           string                      `json:"sessionId"`
	DprID               string                      `json:"dprId"`
	BaselineFeatures    feasibility.ProjectFeatures `json:"baselineFeatures"`
	BaselineRiskFactors []feasibility.RiskFactor    `json:"baselineRiskFactors"`
	CurrentScenario     simulation.Result           `json:"currentScenario"`
	ScenarioHistory     []simulation.Result         `json:"scenarioHistory"`
	CreatedAt           time.Time                   `json:"createdAt"`
	LastUpdated         time.Time                   `json:"lastUpdated"`
}

// entry pairs a session with its writer lock. Writes to one session never
// block writes to another.
type entry struct {
	mu sync.Mutex
	s  *Session
}

// Store is the arena of interactive sessions keyed by session id. The index
// lock only guards the map; mutation of a single session is serialized by its
// per-session mutex (single writer per key).
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	dir      string // persistence directory; empty disables persistence
}

// NewStore creates a session store. If dir is non-empty, sessions are
// persisted there as one JSON file each and reloaded by Load.
func NewStore(dir string) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		dir:      dir,
	}
}

// Create computes the identity-parameter baseline for the given features and
// opens a new session around it.
func (st *Store) Create(dprID string, features feasibility.ProjectFeatures) (Session, error) {
	baseline, err := simulation.Simulate(features, simulation.Identity(), simulation.BaselineScenarioName)
	if err != nil {
		return Session{}, err
	}
	factors, _ := feasibility.AssessRisk(feasibility.Normalize(features))

	now := time.Now().UTC()
	s := &Session{
		SessionID:           uuid.NewString(),
		DprID:               dprID,
		BaselineFeatures:    features,
		BaselineRiskFactors: factors,
		CurrentScenario:     baseline,
		ScenarioHistory:     []simulation.Result{baseline},
		CreatedAt:           now,
		LastUpdated:         now,
	}

	st.mu.Lock()
	st.sessions[s.SessionID] = &entry{s: s}
	st.mu.Unlock()

	if err := st.persist(s); err != nil {
		log.Warn().Err(err).Str("sessionId", s.SessionID).Msg("Failed to persist new session")
	}

	log.Info().Str("sessionId", s.SessionID).Str("dprId", dprID).Msg("Interactive session created")
	return snapshot(s), nil
}

// Submit runs one scenario against the session baseline, appends it to the
// history and makes it the current scenario. Concurrent submissions against
// the same session are serialized; the history is never reordered or
// truncated.
func (st *Store) Submit(sessionID string, params simulation.Parameters, scenarioName string) (Session, error) {
	e, err := st.lookup(sessionID)
	if err != nil {
		return Session{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if scenarioName == "" {
		scenarioName = fmt.Sprintf("Scenario %d", len(e.s.ScenarioHistory))
	}

	res, err := simulation.Simulate(e.s.BaselineFeatures, params, scenarioName)
	if err != nil {
		return Session{}, err
	}

	e.s.ScenarioHistory = append(e.s.ScenarioHistory, res)
	e.s.CurrentScenario = res
	e.s.LastUpdated = time.Now().UTC()

	if err := st.persist(e.s); err != nil {
		log.Warn().Err(err).Str("sessionId", sessionID).Msg("Failed to persist session")
	}

	return snapshot(e.s), nil
}

// Get returns a copy of the session.
func (st *Store) Get(sessionID string) (Session, error) {
	e, err := st.lookup(sessionID)
	if err != nil {
		return Session{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.s), nil
}

// WhatIf runs a what-if analysis over the session history plus any ad-hoc
// candidates, all against the session baseline.
func (st *Store) WhatIf(ctx context.Context, sessionID string, extra []simulation.NamedParameters, workers int) (simulation.WhatIfAnalysis, error) {
	e, err := st.lookup(sessionID)
	if err != nil {
		return simulation.WhatIfAnalysis{}, err
	}

	e.mu.Lock()
	batch := make([]simulation.NamedParameters, 0, len(e.s.ScenarioHistory)-1+len(extra))
	// History element zero is the baseline; RunWhatIf recomputes it itself.
	for _, r := range e.s.ScenarioHistory[1:] {
		batch = append(batch, simulation.NamedParameters{Name: r.ScenarioName, Parameters: r.Parameters})
	}
	dprID := e.s.DprID
	features := e.s.BaselineFeatures
	e.mu.Unlock()

	batch = append(batch, extra...)
	return simulation.RunWhatIf(ctx, dprID, features, batch, workers)
}

// Load restores previously persisted sessions from the store directory.
// A missing directory is not an error.
func (st *Store) Load() error {
	if st.dir == "" {
		return nil
	}

	files, err := os.ReadDir(st.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read session directory: %w", err)
	}

	loaded := 0
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(st.dir, f.Name()))
		if err != nil {
			log.Warn().Err(err).Str("file", f.Name()).Msg("Skipping unreadable session file")
			continue
		}
		var s Session
		if err := json.Unmarshal(data, &s); err != nil {
			log.Warn().Err(err).Str("file", f.Name()).Msg("Skipping invalid session file")
			continue
		}
		if s.SessionID == "" || len(s.ScenarioHistory) == 0 {
			log.Warn().Str("file", f.Name()).Msg("Skipping incomplete session file")
			continue
		}

		st.mu.Lock()
		st.sessions[s.SessionID] = &entry{s: &s}
		st.mu.Unlock()
		loaded++
	}

	if loaded > 0 {
		log.Info().Int("count", loaded).Msg("Loaded sessions from disk")
	}
	return nil
}

func (st *Store) lookup(sessionID string) (*entry, error) {
	st.mu.RLock()
	e, ok := st.sessions[sessionID]
	st.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrSessionNotFound)
	}
	return e, nil
}

// persist writes the session file atomically (tmp + rename). Caller holds the
// session lock.
func (st *Store) persist(s *Session) error {
	if st.dir == "" {
		return nil
	}
	if err := os.MkdirAll(st.dir, 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	path := filepath.Join(st.dir, s.SessionID+".json")
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename session file: %w", err)
	}
	return nil
}

// snapshot copies a session so callers never alias the store's history slice.
func snapshot(s *Session) Session {
	out := *s
	out.ScenarioHistory = make([]simulation.Result, len(s.ScenarioHistory))
	copy(out.ScenarioHistory, s.ScenarioHistory)
	out.BaselineRiskFactors = make([]feasibility.RiskFactor, len(s.BaselineRiskFactors))
	copy(out.BaselineRiskFactors, s.BaselineRiskFactors)
	return out
}
