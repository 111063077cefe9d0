package lookup

import "healthai/internal/models"

// analysisResults is the simulated output of every symptom analysis.
var analysisResults = []models.ConditionRecord{
	{
		Name:        "Common Cold",
		Probability: 85,
		RiskLevel:   models.RiskLow,
		Description: "A viral infection of the upper respiratory tract, typically mild and self-limiting.",
		Recommendations: []string{
			"Get plenty of rest and stay hydrated",
			"Use over-the-counter pain relievers if needed",
			"Consider warm salt water gargles for sore throat",
			"Monitor symptoms and seek medical care if they worsen",
		},
	},
	{
		Name:        "Seasonal Allergies",
		Probability: 65,
		RiskLevel:   models.RiskLow,
		Description: "Allergic reaction to environmental allergens like pollen, dust, or pet dander.",
		Recommendations: []string{
			"Avoid known allergens when possible",
			"Consider antihistamines for symptom relief",
			"Keep windows closed during high pollen days",
			"Consult an allergist for comprehensive testing",
		},
	},
	{
		Name:        "Viral Gastroenteritis",
		Probability: 45,
		RiskLevel:   models.RiskMedium,
		Description: "Inflammation of the stomach and intestines caused by a viral infection.",
		Recommendations: []string{
			"Stay hydrated with clear fluids",
			"Follow the BRAT diet (bananas, rice, applesauce, toast)",
			"Rest and avoid dairy products temporarily",
			"Seek medical attention if symptoms persist beyond 3 days",
		},
	},
}

// MatchConditions returns the analysis result for a symptom set. The result
// does not depend on which symptoms are given: it is always Common Cold,
// Seasonal Allergies and Viral Gastroenteritis, in that order. Callers must
// not pass an empty set.
func MatchConditions(symptoms []string) []models.ConditionRecord {
	out := make([]models.ConditionRecord, len(analysisResults))
	for i, c := range analysisResults {
		c.Recommendations = append([]string(nil), c.Recommendations...)
		out[i] = c
	}
	return out
}

var diseases = []models.Disease{
	{
		Name:            "Common Cold",
		Description:     "A viral infection affecting the upper respiratory tract",
		RiskLevel:       models.RiskLow,
		Symptoms:        []string{"runny nose", "sneezing", "mild fever", "cough"},
		Recommendations: []string{"Rest", "Stay hydrated", "Use humidifier", "Consult doctor if symptoms worsen"},
	},
	{
		Name:            "Seasonal Allergies",
		Description:     "Allergic reaction to seasonal allergens like pollen",
		RiskLevel:       models.RiskLow,
		Symptoms:        []string{"sneezing", "itchy eyes", "runny nose", "congestion"},
		Recommendations: []string{"Avoid allergens", "Use antihistamines", "Keep windows closed", "Shower after outdoor activities"},
	},
	{
		Name:            "Tension Headache",
		Description:     "Most common type of headache caused by stress or tension",
		RiskLevel:       models.RiskLow,
		Symptoms:        []string{"headache", "neck stiffness", "fatigue"},
		Recommendations: []string{"Rest in quiet environment", "Apply cold/warm compress", "Stay hydrated", "Manage stress"},
	},
	{
		Name:            "Gastroenteritis",
		Description:     "Inflammation of stomach and intestines, often viral",
		RiskLevel:       models.RiskMedium,
		Symptoms:        []string{"nausea", "vomiting", "diarrhea", "abdominal pain"},
		Recommendations: []string{"Stay hydrated", "BRAT diet", "Rest", "Seek medical attention if severe"},
	},
	{
		Name:            "Hypertension",
		Description:     "High blood pressure condition requiring medical attention",
		RiskLevel:       models.RiskHigh,
		Symptoms:        []string{"headache", "dizziness", "chest pain", "fatigue"},
		Recommendations: []string{"Reduce sodium intake", "Exercise regularly", "Monitor blood pressure", "Consult doctor about medication"},
	},
}

// Diseases returns the reference catalogue for symptom browsing.
func Diseases() []models.Disease {
	out := make([]models.Disease, len(diseases))
	for i, d := range diseases {
		d.Symptoms = append([]string(nil), d.Symptoms...)
		d.Recommendations = append([]string(nil), d.Recommendations...)
		out[i] = d
	}
	return out
}

// DiseasesWithSymptom returns the catalogue entries listing symptom.
// It is a browsing filter, not a diagnosis.
func DiseasesWithSymptom(symptom string) []models.Disease {
	out := make([]models.Disease, 0)
	for _, d := range Diseases() {
		if d.HasSymptom(symptom) {
			out = append(out, d)
		}
	}
	return out
}
