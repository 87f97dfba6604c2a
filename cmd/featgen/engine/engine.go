package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"dprsim/internal/feasibility"
)

// GeneratorConfig controls the synthetic feature generator used for demo and
// test fixtures.
type GeneratorConfig struct {
	Profile string // "typical", "favorable", "stressed" or "remote"
	Count   int
	Seed    int64
}

// profileShape centers the generated scores. Each score is sampled uniformly
// within +/- spread of its center and clamped to [0,1].
type profileShape struct {
	durationMonths float64
	totalCost      float64
	exposure       float64 // center for risk-bearing scores
	favorable      float64 // center for accessibility/infrastructure/success rates
	spread         float64
	similarCount   int
}

func shapeFor(profile string) profileShape {
	switch profile {
	case "favorable":
		return profileShape{durationMonths: 10, totalCost: 40_000_000, exposure: 0.25, favorable: 0.8, spread: 0.1, similarCount: 8}
	case "stressed":
		return profileShape{durationMonths: 30, totalCost: 220_000_000, exposure: 0.75, favorable: 0.35, spread: 0.15, similarCount: 1}
	case "remote":
		return profileShape{durationMonths: 18, totalCost: 90_000_000, exposure: 0.55, favorable: 0.3, spread: 0.2, similarCount: 2}
	default: // typical
		return profileShape{durationMonths: 16, totalCost: 80_000_000, exposure: 0.5, favorable: 0.55, spread: 0.2, similarCount: 4}
	}
}

// Generate produces Count feature vectors for the configured profile. The
// output is deterministic for a given (Profile, Count, Seed) triple.
func Generate(cfg GeneratorConfig) []feasibility.ProjectFeatures {
	rng := rand.New(rand.NewSource(cfg.Seed))
	shape := shapeFor(cfg.Profile)

	vectors := make([]feasibility.ProjectFeatures, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		duration := jitter(rng, shape.durationMonths, 0.3)
		cost := jitter(rng, shape.totalCost, 0.4)

		vectors = append(vectors, feasibility.ProjectFeatures{
			EstimatedDurationMonths: duration,
			SeasonalityFactor:       score(rng, shape.exposure, shape.spread),
			WeatherRiskMonths:       score(rng, shape.exposure, shape.spread) * 6,

			TotalCost:               cost,
			CostPerMonth:            cost / duration,
			ResourceComplexityScore: score(rng, shape.exposure, shape.spread),
			LaborIntensityScore:     score(rng, shape.exposure, shape.spread),

			TechnicalComplexityScore:     score(rng, shape.exposure, shape.spread),
			EnvironmentalComplexityScore: score(rng, shape.exposure, shape.spread),
			RegulatoryComplexityScore:    score(rng, shape.exposure, shape.spread),

			AccessibilityScore:  score(rng, shape.favorable, shape.spread),
			InfrastructureScore: score(rng, shape.favorable, shape.spread),
			RemotenessScore:     score(rng, 1-shape.favorable, shape.spread),

			SimilarProjectsCount: shape.similarCount + rng.Intn(3),
			NationalSuccessRate:  score(rng, shape.favorable, 0.1),
			CategorySuccessRate:  score(rng, shape.favorable, 0.1),
		})
	}
	return vectors
}

// Save writes one JSON file per vector into outDir.
func Save(outDir, profile string, vectors []feasibility.ProjectFeatures) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for i, v := range vectors {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode vector %d: %w", i, err)
		}
		path := filepath.Join(outDir, fmt.Sprintf("%s-%03d.json", profile, i+1))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

func score(rng *rand.Rand, center, spread float64) float64 {
	v := center + (rng.Float64()*2-1)*spread
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func jitter(rng *rand.Rand, center, relSpread float64) float64 {
	v := center * (1 + (rng.Float64()*2-1)*relSpread)
	if v < center*0.1 {
		return center * 0.1
	}
	return v
}
