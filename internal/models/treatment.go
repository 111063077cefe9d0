package models

// Treatment categories
const (
	CategoryMedication = "medication"
	CategoryLifestyle  = "lifestyle"
	CategoryTherapy    = "therapy"
	CategoryFollowup   = "followup"
)

// TreatmentItem is one step of a treatment plan.
type TreatmentItem struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration,omitempty"`
	Frequency   string `json:"frequency,omitempty"`
}

// ValidCategory returns true for the four known treatment categories.
func ValidCategory(category string) bool {
	switch category {
	case CategoryMedication, CategoryLifestyle, CategoryTherapy, CategoryFollowup:
		return true
	}
	return false
}
