package feasibility

import "time"

// RiskType identifies one of the five risk dimensions.
type RiskType string

const (
	RiskTimeline      RiskType = "TIMELINE"
	RiskResource      RiskType = "RESOURCE"
	RiskComplexity    RiskType = "COMPLEXITY"
	RiskEnvironmental RiskType = "ENVIRONMENTAL"
	RiskFinancial     RiskType = "FINANCIAL"
)

// AllRiskTypes lists the dimensions in their canonical reporting order.
var AllRiskTypes = []RiskType{RiskTimeline, RiskResource, RiskComplexity, RiskEnvironmental, RiskFinancial}

// IsValid returns true if the risk type is a known dimension.
func (r RiskType) IsValid() bool {
	switch r {
	case RiskTimeline, RiskResource, RiskComplexity, RiskEnvironmental, RiskFinancial:
		return true
	default:
		return false
	}
}

// ImpactLevel classifies a single risk factor.
type ImpactLevel string

const (
	ImpactLow    ImpactLevel = "LOW"
	ImpactMedium ImpactLevel = "MEDIUM"
	ImpactHigh   ImpactLevel = "HIGH"
)

// AtLeast reports whether the impact is at or above the given level.
func (i ImpactLevel) AtLeast(other ImpactLevel) bool {
	return i.rank() >= other.rank()
}

func (i ImpactLevel) rank() int {
	switch i {
	case ImpactHigh:
		return 2
	case ImpactMedium:
		return 1
	default:
		return 0
	}
}

// RiskLevel classifies the overall project risk.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelMedium   RiskLevel = "MEDIUM"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelCritical RiskLevel = "CRITICAL"
)

// RiskFactor describes a single assessed risk dimension.
type RiskFactor struct {
	Type        RiskType    `json:"type"`
	Description string      `json:"description"`
	Impact      ImpactLevel `json:"impact"`
	Probability float64     `json:"probability"` // dimension score / 100
	Mitigation  string      `json:"mitigation"`
}

// RiskBreakdown holds the five dimension scores plus the weighted overall
// score, each in [0,100].
type RiskBreakdown struct {
	TimelineRisk      float64 `json:"timelineRisk"`
	ResourceRisk      float64 `json:"resourceRisk"`
	ComplexityRisk    float64 `json:"complexityRisk"`
	EnvironmentalRisk float64 `json:"environmentalRisk"`
	FinancialRisk     float64 `json:"financialRisk"`
	OverallRisk       float64 `json:"overallRisk"`
}

// RiskAnalysisResult is the immutable, timestamped risk report for a DPR.
type RiskAnalysisResult struct {
	DprID             string        `json:"dprId"`
	OverallRiskLevel  RiskLevel     `json:"overallRiskLevel"`
	RiskScore         float64       `json:"riskScore"`
	RiskFactors       []RiskFactor  `json:"riskFactors"`
	RiskBreakdown     RiskBreakdown `json:"riskBreakdown"`
	AnalysisTimestamp time.Time     `json:"analysisTimestamp"`
}

// Dimension weights. Each dimension's sub-weights sum to 1, as do the overall
// dimension weights.
//
// Mitigation directions (relied upon by the simulation engine):
//   - resource risk DECREASES when resources are added (strain relief)
//   - financial risk INCREASES when resources are added (cost growth)
//   - timeline risk decreases with shorter schedules and lower exposure
const (
	timelineScheduleWeight = 0.55
	timelineDurationWeight = 0.45

	resourceExposureWeight       = 0.60
	resourceInfrastructureWeight = 0.40

	complexityTechnicalWeight     = 0.40
	complexityRegulatoryWeight    = 0.30
	complexityEnvironmentalWeight = 0.30

	environmentalComplexityWeight = 0.45
	environmentalRemotenessWeight = 0.30
	environmentalScheduleWeight   = 0.25

	financialCostScaleWeight = 0.45
	financialBurnWeight      = 0.35
	financialHistoryWeight   = 0.20

	overallTimelineWeight      = 0.25
	overallResourceWeight      = 0.20
	overallComplexityWeight    = 0.20
	overallEnvironmentalWeight = 0.15
	overallFinancialWeight     = 0.20
)

// Impact thresholds per dimension score.
const (
	impactMediumThreshold = 34.0
	impactHighThreshold   = 67.0
)

// AssessRisk derives the per-dimension risk factors and the overall breakdown
// from normalized features. Deterministic; the only failure path is malformed
// input, which is rejected upstream by ValidateFeatures.
func AssessRisk(n NormalizedFeatures) ([]RiskFactor, RiskBreakdown) {
	b := RiskBreakdown{
		TimelineRisk: 100 * (timelineScheduleWeight*n.ScheduleExposure +
			timelineDurationWeight*n.DurationPressure),
		ResourceRisk: 100 * (resourceExposureWeight*n.ResourceExposure +
			resourceInfrastructureWeight*(1-n.Infrastructure)),
		ComplexityRisk: 100 * (complexityTechnicalWeight*n.TechnicalComplexity +
			complexityRegulatoryWeight*n.RegulatoryComplexity +
			complexityEnvironmentalWeight*n.EnvironmentalComplexity),
		EnvironmentalRisk: 100 * (environmentalComplexityWeight*n.EnvironmentalComplexity +
			environmentalRemotenessWeight*n.Remoteness +
			environmentalScheduleWeight*n.ScheduleExposure),
		FinancialRisk: 100 * (financialCostScaleWeight*n.CostScale +
			financialBurnWeight*n.BurnIntensity +
			financialHistoryWeight*(1-n.CategorySuccess)),
	}
	b.OverallRisk = overallTimelineWeight*b.TimelineRisk +
		overallResourceWeight*b.ResourceRisk +
		overallComplexityWeight*b.ComplexityRisk +
		overallEnvironmentalWeight*b.EnvironmentalRisk +
		overallFinancialWeight*b.FinancialRisk

	factors := []RiskFactor{
		newRiskFactor(RiskTimeline, b.TimelineRisk,
			"Schedule exposure from seasonality, weather windows and project duration",
			"Compress the critical path and schedule weather-sensitive work outside risk months"),
		newRiskFactor(RiskResource, b.ResourceRisk,
			"Resource and labor strain relative to available supporting infrastructure",
			"Increase resource allocation and stage equipment mobilization early"),
		newRiskFactor(RiskComplexity, b.ComplexityRisk,
			"Technical, regulatory and environmental complexity of the proposed works",
			"Phase the technically complex packages and front-load regulatory clearances"),
		newRiskFactor(RiskEnvironmental, b.EnvironmentalRisk,
			"Environmental constraints amplified by site remoteness and seasonal exposure",
			"Obtain environmental clearances before mobilization and plan seasonal buffers"),
		newRiskFactor(RiskFinancial, b.FinancialRisk,
			"Funding scale and burn rate against the category's historical outcomes",
			"Secure phased funding commitments and tighten monthly cost monitoring"),
	}

	return factors, b
}

func newRiskFactor(t RiskType, score float64, description, mitigation string) RiskFactor {
	return RiskFactor{
		Type:        t,
		Description: description,
		Impact:      impactForScore(score),
		Probability: score / 100,
		Mitigation:  mitigation,
	}
}

func impactForScore(score float64) ImpactLevel {
	switch {
	case score < impactMediumThreshold:
		return ImpactLow
	case score < impactHighThreshold:
		return ImpactMedium
	default:
		return ImpactHigh
	}
}

// OverallRiskLevel maps the weighted overall score onto the categorical level.
func OverallRiskLevel(overall float64) RiskLevel {
	switch {
	case overall <= 25:
		return RiskLevelLow
	case overall <= 50:
		return RiskLevelMedium
	case overall <= 75:
		return RiskLevelHigh
	default:
		return RiskLevelCritical
	}
}

// AnalyzeRisk validates the input and produces the full risk report.
func AnalyzeRisk(dprID string, f ProjectFeatures) (RiskAnalysisResult, error) {
	if err := ValidateFeatures(f); err != nil {
		return RiskAnalysisResult{}, err
	}

	factors, breakdown := AssessRisk(Normalize(f))

	return RiskAnalysisResult{
		DprID:             dprID,
		OverallRiskLevel:  OverallRiskLevel(breakdown.OverallRisk),
		RiskScore:         breakdown.OverallRisk,
		RiskFactors:       factors,
		RiskBreakdown:     breakdown,
		AnalysisTimestamp: time.Now().UTC(),
	}, nil
}
