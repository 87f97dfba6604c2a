package feasibility

// Reference scales for open-ended inputs. Values at or beyond the reference
// saturate at 1.0 rather than raising.
const (
	// referenceWeatherMonths is the weather exposure that counts as full-year risk.
	referenceWeatherMonths = 6.0
	// referenceDurationMonths is the duration at which schedule pressure saturates.
	referenceDurationMonths = 48.0
	// referenceBurnPerMonth is the monthly burn (rupees) that saturates burn intensity.
	referenceBurnPerMonth = 10_000_000.0
	// referenceTotalCost is the project size (rupees) that saturates cost scale.
	referenceTotalCost = 250_000_000.0
	// experienceHalfCount is the similar-project count at which the experience
	// score reaches 0.5 (diminishing returns: n / (n + half)).
	experienceHalfCount = 5.0
)

// Sub-score weights inside composite exposures. Weights sum to 1 per composite.
const (
	seasonalityWeight = 0.6
	weatherWeight     = 0.4

	resourceComplexityWeight = 0.5
	laborIntensityWeight     = 0.5
)

// NormalizedFeatures holds every sub-score mapped into [0,1]. Higher values
// mean more exposure, except Accessibility, Infrastructure, Experience and the
// two success rates, where higher is favorable.
type NormalizedFeatures struct {
	ScheduleExposure float64 `json:"scheduleExposure"`
	DurationPressure float64 `json:"durationPressure"`

	ResourceExposure float64 `json:"resourceExposure"`
	BurnIntensity    float64 `json:"burnIntensity"`
	CostScale        float64 `json:"costScale"`

	TechnicalComplexity     float64 `json:"technicalComplexity"`
	EnvironmentalComplexity float64 `json:"environmentalComplexity"`
	RegulatoryComplexity    float64 `json:"regulatoryComplexity"`

	Accessibility  float64 `json:"accessibility"`
	Infrastructure float64 `json:"infrastructure"`
	Remoteness     float64 `json:"remoteness"`

	Experience      float64 `json:"experience"`
	NationalSuccess float64 `json:"nationalSuccess"`
	CategorySuccess float64 `json:"categorySuccess"`
}

// Normalize maps raw project attributes into bounded [0,1] sub-scores. It is
// pure and total: every input, however extreme, is clamped into range rather
// than rejected.
func Normalize(f ProjectFeatures) NormalizedFeatures {
	weather := clamp01(f.WeatherRiskMonths / referenceWeatherMonths)
	similar := float64(f.SimilarProjectsCount)

	return NormalizedFeatures{
		ScheduleExposure: clamp01(seasonalityWeight*clamp01(f.SeasonalityFactor) + weatherWeight*weather),
		DurationPressure: clamp01(f.EstimatedDurationMonths / referenceDurationMonths),

		ResourceExposure: clamp01(resourceComplexityWeight*clamp01(f.ResourceComplexityScore) +
			laborIntensityWeight*clamp01(f.LaborIntensityScore)),
		BurnIntensity: clamp01(f.CostPerMonth / referenceBurnPerMonth),
		CostScale:     clamp01(f.TotalCost / referenceTotalCost),

		TechnicalComplexity:     clamp01(f.TechnicalComplexityScore),
		EnvironmentalComplexity: clamp01(f.EnvironmentalComplexityScore),
		RegulatoryComplexity:    clamp01(f.RegulatoryComplexityScore),

		Accessibility:  clamp01(f.AccessibilityScore),
		Infrastructure: clamp01(f.InfrastructureScore),
		Remoteness:     clamp01(f.RemotenessScore),

		Experience:      clamp01(similar / (similar + experienceHalfCount)),
		NationalSuccess: clamp01(f.NationalSuccessRate),
		CategorySuccess: clamp01(f.CategorySuccessRate),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
