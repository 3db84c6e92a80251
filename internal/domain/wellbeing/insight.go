package wellbeing

type InsightType string

const (
	InsightObservation InsightType = "observation"
	InsightPattern     InsightType = "pattern"
	InsightAnomaly     InsightType = "anomaly"
)

type RecommendationCategory string

const (
	CategoryActivity RecommendationCategory = "activity"
	CategorySleep    RecommendationCategory = "sleep"
	CategoryScreen   RecommendationCategory = "screen"
	CategorySocial   RecommendationCategory = "social"
	CategoryLocation RecommendationCategory = "location"
)

// Confidence, impact and strength values are documented ranges only; nothing clamps them.
type UserInsight struct {
	Type           InsightType `json:"type" yaml:"type"`
	Description    string      `json:"description" yaml:"description"`
	Confidence     float64     `json:"confidence" yaml:"confidence"`
	RelatedMetrics []string    `json:"relatedMetrics" yaml:"relatedMetrics"`
}

type Correlation struct {
	Factor1             string  `json:"factor1" yaml:"factor1"`
	Factor2             string  `json:"factor2" yaml:"factor2"`
	CorrelationStrength float64 `json:"correlationStrength" yaml:"correlationStrength"`
	Description         string  `json:"description" yaml:"description"`
}

type StressFactor struct {
	Factor      string  `json:"factor" yaml:"factor"`
	Impact      float64 `json:"impact" yaml:"impact"`
	Description string  `json:"description" yaml:"description"`
}

type Recommendation struct {
	Category       RecommendationCategory `json:"category" yaml:"category"`
	Description    string                 `json:"description" yaml:"description"`
	ExpectedImpact float64                `json:"expectedImpact" yaml:"expectedImpact"`
	Confidence     float64                `json:"confidence" yaml:"confidence"`
}

// ProcessedUserData is built per request and never persisted.
type ProcessedUserData struct {
	UserID          string           `json:"userId"`
	Records         []DailyRecord    `json:"records"`
	Insights        []UserInsight    `json:"insights"`
	Correlations    []Correlation    `json:"correlations"`
	StressFactors   []StressFactor   `json:"stressFactors"`
	Recommendations []Recommendation `json:"recommendations"`
}

type GoalMetric struct {
	Current  float64 `json:"current"`
	Goal     float64 `json:"goal"`
	Status   string  `json:"status"`
	Progress float64 `json:"progress"`
}

type DarkTime struct {
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Max     float64 `json:"max"`
}

type Conversation struct {
	Count         float64 `json:"count"`
	TotalDuration float64 `json:"totalDuration"`
	AvgDuration   float64 `json:"avgDuration"`
	MaxDuration   float64 `json:"maxDuration"`
}

type Locations struct {
	TotalDistance   float64 `json:"totalDistance"`
	UniqueLocations float64 `json:"uniqueLocations"`
}

// Activities are percentages of the day, one decimal.
type Activities struct {
	OnBike  float64 `json:"onBike"`
	OnFoot  float64 `json:"onFoot"`
	Running float64 `json:"running"`
	Still   float64 `json:"still"`
}

type UserMetrics struct {
	MentalScore      float64      `json:"mentalScore"`
	PhysicalActivity GoalMetric   `json:"physicalActivity"`
	Sleep            GoalMetric   `json:"sleep"`
	ScreenTime       GoalMetric   `json:"screenTime"`
	AmbientNoise     GoalMetric   `json:"ambientNoise"`
	DarkTime         DarkTime     `json:"darkTime"`
	Conversation     Conversation `json:"conversation"`
	Locations        Locations    `json:"locations"`
	Activities       Activities   `json:"activities"`
	StressLevel      float64      `json:"stressLevel"`
	DayHistory       []float64    `json:"dayHistory"`
}

// AdvancedMetrics is the static payload served by the advanced-metrics endpoint.
type AdvancedMetrics struct {
	DarkTime     DarkTime     `json:"darkTime"`
	Conversation Conversation `json:"conversation"`
	Locations    Locations    `json:"locations"`
	Activities   Activities   `json:"activities"`
	StressLevel  float64      `json:"stressLevel"`
	DayHistory   []float64    `json:"dayHistory"`
}
