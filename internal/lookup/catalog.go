package lookup

import (
	"maps"
	"slices"
)

var commonSymptoms = []string{
	"headache", "fever", "cough", "sore throat", "runny nose", "sneezing",
	"fatigue", "body aches", "nausea", "vomiting", "diarrhea", "abdominal pain",
	"chest pain", "shortness of breath", "dizziness", "skin rash", "joint pain",
	"back pain", "neck stiffness", "loss of appetite", "chills", "sweating",
}

// remedyConditions are suggestion chips; most fall through to the generic
// remedy.
var remedyConditions = []string{
	"common cold", "headache", "nausea", "sore throat", "cough",
	"stomach ache", "insomnia", "stress", "anxiety", "fatigue",
}

var treatableConditions = []string{
	"Hypertension",
	"Type 2 Diabetes",
	"Common Cold",
	"Seasonal Allergies",
	"Migraine",
	"Anxiety Disorder",
	"Chronic Back Pain",
	"Gastroesophageal Reflux Disease (GERD)",
	"Asthma",
	"Depression",
}

var quickQuestions = []string{
	"What should I do for a headache?",
	"How can I improve my sleep?",
	"When should I see a doctor for a fever?",
	"What are some stress management techniques?",
	"How much water should I drink daily?",
	"What's a healthy diet?",
}

// CommonSymptoms returns the selectable symptom tokens.
func CommonSymptoms() []string { return slices.Clone(commonSymptoms) }

// CommonConditions returns the remedy search suggestions.
func CommonConditions() []string { return slices.Clone(remedyConditions) }

// TreatableConditions returns the conditions offered by the plan generator.
func TreatableConditions() []string { return slices.Clone(treatableConditions) }

// QuickQuestions returns the suggested chat prompts.
func QuickQuestions() []string { return slices.Clone(quickQuestions) }

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
