package lookup

import (
	"strings"

	"healthai/internal/models"
)

var treatmentPlans = map[string][]models.TreatmentItem{
	"hypertension": {
		{Category: models.CategoryMedication, Title: "ACE Inhibitor", Description: "Lisinopril 10mg once daily to lower blood pressure", Duration: "3 months initially", Frequency: "Once daily, morning"},
		{Category: models.CategoryLifestyle, Title: "Dietary Modifications", Description: "Low sodium diet (less than 2300mg/day), increase potassium-rich foods", Duration: "Ongoing", Frequency: "Daily"},
		{Category: models.CategoryLifestyle, Title: "Regular Exercise", Description: "Moderate aerobic exercise 30 minutes daily, 5 days per week", Duration: "Ongoing", Frequency: "5 times per week"},
		{Category: models.CategoryFollowup, Title: "Blood Pressure Monitoring", Description: "Regular BP checks and medication adjustment as needed", Duration: "2 weeks initially, then monthly", Frequency: "Bi-weekly, then monthly"},
	},
	"type 2 diabetes": {
		{Category: models.CategoryMedication, Title: "Metformin", Description: "Metformin 500mg twice daily with meals to control blood sugar", Duration: "6 months, then review", Frequency: "Twice daily with meals"},
		{Category: models.CategoryLifestyle, Title: "Diabetic Diet Plan", Description: "Carbohydrate counting, portion control, regular meal timing", Duration: "Ongoing", Frequency: "Every meal"},
		{Category: models.CategoryLifestyle, Title: "Blood Glucose Monitoring", Description: "Check blood sugar levels before meals and bedtime", Duration: "Ongoing", Frequency: "4 times daily"},
		{Category: models.CategoryFollowup, Title: "HbA1c Testing", Description: "Quarterly blood tests to monitor long-term glucose control", Duration: "Ongoing", Frequency: "Every 3 months"},
	},
	"common cold": {
		{Category: models.CategoryMedication, Title: "Symptom Relief", Description: "OTC pain relievers (acetaminophen/ibuprofen) for aches and fever", Duration: "5-7 days or until symptoms resolve", Frequency: "As needed, follow package directions"},
		{Category: models.CategoryLifestyle, Title: "Rest and Hydration", Description: "Adequate sleep (8+ hours), increased fluid intake (water, warm broths)", Duration: "Until recovery", Frequency: "Continuous"},
		{Category: models.CategoryTherapy, Title: "Humidifier Use", Description: "Use humidifier or breathe steam to ease congestion", Duration: "While symptoms persist", Frequency: "2-3 times daily"},
		{Category: models.CategoryFollowup, Title: "Monitor Symptoms", Description: "Contact healthcare provider if symptoms worsen or last >10 days", Duration: "Duration of illness", Frequency: "Daily self-assessment"},
	},
}

var genericPlan = []models.TreatmentItem{
	{Category: models.CategoryFollowup, Title: "Medical Consultation", Description: "Comprehensive evaluation by healthcare provider for accurate diagnosis", Duration: "1 visit initially", Frequency: "As recommended"},
	{Category: models.CategoryLifestyle, Title: "General Wellness", Description: "Maintain healthy diet, regular exercise, adequate sleep", Duration: "Ongoing", Frequency: "Daily"},
	{Category: models.CategoryLifestyle, Title: "Symptom Tracking", Description: "Keep a diary of symptoms, triggers, and daily activities", Duration: "2-4 weeks", Frequency: "Daily entries"},
}

// GenerateTreatmentPlan returns the ordered plan for condition, or the
// generic three-step plan when the condition is unknown.
func GenerateTreatmentPlan(condition string) []models.TreatmentItem {
	items, _, _ := GenerateTreatmentPlanMatch(condition)
	return items
}

// GenerateTreatmentPlanMatch is GenerateTreatmentPlan that also reports
// whether the table matched and under which key.
func GenerateTreatmentPlanMatch(condition string) ([]models.TreatmentItem, string, bool) {
	key := strings.ToLower(condition)
	if items, ok := treatmentPlans[key]; ok {
		return cloneItems(items), key, true
	}
	return cloneItems(genericPlan), "", false
}

// PlanSummary returns the closing paragraph shown under a plan.
func PlanSummary(condition string) string {
	return "This comprehensive treatment plan addresses multiple aspects of " +
		strings.ToLower(condition) +
		" management. Follow all recommendations and maintain regular communication with your healthcare provider for optimal outcomes."
}

// TreatmentKeys returns the condition keys with a dedicated plan, sorted.
func TreatmentKeys() []string {
	return sortedKeys(treatmentPlans)
}

func cloneItems(items []models.TreatmentItem) []models.TreatmentItem {
	out := make([]models.TreatmentItem, len(items))
	copy(out, items)
	return out
}
