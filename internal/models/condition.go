package models

// Risk level constants
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// ConditionRecord is one result of a symptom analysis.
type ConditionRecord struct {
	Name            string   `json:"name"`
	Probability     int      `json:"probability"`
	RiskLevel       string   `json:"risk_level"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}

// IsHighRisk returns true if the condition warrants prompt medical attention.
func (c *ConditionRecord) IsHighRisk() bool {
	return c.RiskLevel == RiskHigh
}

// Disease is a reference entry for the symptom browsing panel.
type Disease struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	RiskLevel       string   `json:"risk_level"`
	Symptoms        []string `json:"symptoms"`
	Recommendations []string `json:"recommendations"`
}

// HasSymptom reports whether the disease lists the given lowercase symptom.
func (d *Disease) HasSymptom(symptom string) bool {
	for _, s := range d.Symptoms {
		if s == symptom {
			return true
		}
	}
	return false
}

// ValidRiskLevel returns true for low, medium and high.
func ValidRiskLevel(level string) bool {
	switch level {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}
