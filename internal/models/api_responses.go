package models

// RemedyResponse contains a remedy lookup result.
type RemedyResponse struct {
	Query   string       `json:"query"`
	Matched bool         `json:"matched"`
	Remedy  RemedyRecord `json:"remedy"`
}

// SymptomAnalysisResponse contains the conditions for an analyzed symptom set.
type SymptomAnalysisResponse struct {
	Symptoms   []string          `json:"symptoms"`
	Conditions []ConditionRecord `json:"conditions"`
}

// ChatReplyResponse contains the turns appended by one chat submission.
type ChatReplyResponse struct {
	UserTurn      ChatTurn `json:"user_turn"`
	AssistantTurn ChatTurn `json:"assistant_turn"`
	Topic         string   `json:"topic,omitempty"`
}

// TranscriptResponse contains a session transcript.
type TranscriptResponse struct {
	Turns []ChatTurn `json:"turns"`
}

// TreatmentPlanResponse contains a generated treatment plan.
type TreatmentPlanResponse struct {
	Condition string          `json:"condition"`
	Matched   bool            `json:"matched"`
	Items     []TreatmentItem `json:"items"`
	Summary   string          `json:"summary"`
}

// MetricOverview is a catalogue entry with its latest value and trend.
type MetricOverview struct {
	MetricDefinition
	Current string `json:"current"`
	Trend   Trend  `json:"trend"`
}

// MetricSeriesResponse contains a metric series and its trend.
type MetricSeriesResponse struct {
	Metric MetricDefinition `json:"metric"`
	Points []MetricPoint    `json:"points"`
	Trend  Trend            `json:"trend"`
}

// AnalyticsSummaryResponse contains the dashboard summary widgets.
type AnalyticsSummaryResponse struct {
	RiskDistribution []RiskShare `json:"risk_distribution"`
	Insights         []Insight   `json:"insights"`
}

// BMIResponse contains a body-mass-index calculation.
type BMIResponse struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

// CatalogResponse lists the suggestion chips and disclaimers shown by clients.
type CatalogResponse struct {
	SiteTitle           string            `json:"site_title"`
	CommonSymptoms      []string          `json:"common_symptoms"`
	RemedyConditions    []string          `json:"remedy_conditions"`
	TreatableConditions []string          `json:"treatable_conditions"`
	QuickQuestions      []string          `json:"quick_questions"`
	Disclaimers         map[string]string `json:"disclaimers"`
}
