package models

// HealthMetric is one day of sample vitals.
type HealthMetric struct {
	Date                   string  `json:"date"`
	HeartRate              int     `json:"heart_rate"`
	BloodPressureSystolic  int     `json:"blood_pressure_systolic"`
	BloodPressureDiastolic int     `json:"blood_pressure_diastolic"`
	Glucose                int     `json:"glucose"`
	Weight                 float64 `json:"weight"`
	Temperature            float64 `json:"temperature"`
}

// MetricDefinition describes a dashboard metric.
type MetricDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Unit        string `json:"unit"`
	NormalRange string `json:"normal_range"`
}

// MetricPoint is one point of a metric series. Blood pressure points carry
// Systolic and Diastolic instead of Value.
type MetricPoint struct {
	Date      string   `json:"date"`
	Value     *float64 `json:"value,omitempty"`
	Systolic  *int     `json:"systolic,omitempty"`
	Diastolic *int     `json:"diastolic,omitempty"`
}

// Trend directions
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// Trend is the change between the last two samples of a metric.
type Trend struct {
	Direction  string  `json:"direction"`
	Percentage float64 `json:"percentage"`
}

// RiskShare is one slice of the risk distribution chart.
type RiskShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Insight types
const (
	InsightPositive = "positive"
	InsightNeutral  = "neutral"
	InsightWarning  = "warning"
)

// Insight is a canned dashboard observation.
type Insight struct {
	Title   string `json:"title"`
	Insight string `json:"insight"`
	Type    string `json:"type"`
}
