package feasibility

// ProjectFeatures is the normalized feature vector extracted from a DPR document.
// It is the immutable input to every analysis in this package; the engine never
// mutates a baseline in place.
//
// Field domains:
//   - EstimatedDurationMonths: > 0, months
//   - SeasonalityFactor: [0,1], share of work exposed to seasonal windows
//   - WeatherRiskMonths: >= 0, adverse-weather months per year (6 = full exposure)
//   - TotalCost, CostPerMonth: >= 0, rupees
//   - all *Score fields: [0,1]
//   - SimilarProjectsCount: >= 0
//   - NationalSuccessRate, CategorySuccessRate: [0,1]
type ProjectFeatures struct {
	// Timeline features
	EstimatedDurationMonths float64 `json:"estimatedDurationMonths"`
	SeasonalityFactor       float64 `json:"seasonalityFactor"`
	WeatherRiskMonths       float64 `json:"weatherRiskMonths"`

	// Resource features
	TotalCost               float64 `json:"totalCost"`
	CostPerMonth            float64 `json:"costPerMonth"`
	ResourceComplexityScore float64 `json:"resourceComplexityScore"`
	LaborIntensityScore     float64 `json:"laborIntensityScore"`

	// Complexity features
	TechnicalComplexityScore     float64 `json:"technicalComplexityScore"`
	EnvironmentalComplexityScore float64 `json:"environmentalComplexityScore"`
	RegulatoryComplexityScore    float64 `json:"regulatoryComplexityScore"`

	// Location features
	AccessibilityScore  float64 `json:"accessibilityScore"`
	InfrastructureScore float64 `json:"infrastructureScore"`
	RemotenessScore     float64 `json:"remotenessScore"`

	// Historical context
	SimilarProjectsCount int     `json:"similarProjectsCount"`
	NationalSuccessRate  float64 `json:"nationalSuccessRate"`
	CategorySuccessRate  float64 `json:"categorySuccessRate"`
}

// ValidateFeatures rejects values outside their documented domain before any
// computation runs. Over-range positives on bounded scores are NOT rejected
// here; Normalize clamps them. Only sign and zero violations are hard errors.
func ValidateFeatures(f ProjectFeatures) error {
	if f.EstimatedDurationMonths <= 0 {
		return &ValidationError{Field: "estimatedDurationMonths", Reason: "must be greater than zero"}
	}
	if f.TotalCost < 0 {
		return &ValidationError{Field: "totalCost", Reason: "must not be negative"}
	}
	if f.CostPerMonth < 0 {
		return &ValidationError{Field: "costPerMonth", Reason: "must not be negative"}
	}
	if f.WeatherRiskMonths < 0 {
		return &ValidationError{Field: "weatherRiskMonths", Reason: "must not be negative"}
	}
	if f.SimilarProjectsCount < 0 {
		return &ValidationError{Field: "similarProjectsCount", Reason: "must not be negative"}
	}

	nonNegative := map[string]float64{
		"seasonalityFactor":            f.SeasonalityFactor,
		"resourceComplexityScore":      f.ResourceComplexityScore,
		"laborIntensityScore":          f.LaborIntensityScore,
		"technicalComplexityScore":     f.TechnicalComplexityScore,
		"environmentalComplexityScore": f.EnvironmentalComplexityScore,
		"regulatoryComplexityScore":    f.RegulatoryComplexityScore,
		"accessibilityScore":           f.AccessibilityScore,
		"infrastructureScore":          f.InfrastructureScore,
		"remotenessScore":              f.RemotenessScore,
		"nationalSuccessRate":          f.NationalSuccessRate,
		"categorySuccessRate":          f.CategorySuccessRate,
	}
	for field, v := range nonNegative {
		if v < 0 {
			return &ValidationError{Field: field, Reason: "must not be negative"}
		}
	}

	return nil
}
