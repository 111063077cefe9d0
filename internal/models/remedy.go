package models

// RemedyRecord is a natural home remedy for a condition.
// Instructions are ordered steps.
type RemedyRecord struct {
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Benefits     []string `json:"benefits"`
	Precautions  []string `json:"precautions"`
	Duration     string   `json:"duration"`
}

// Clone returns a deep copy of the record.
func (r RemedyRecord) Clone() RemedyRecord {
	return RemedyRecord{
		Title:        r.Title,
		Ingredients:  cloneStrings(r.Ingredients),
		Instructions: cloneStrings(r.Instructions),
		Benefits:     cloneStrings(r.Benefits),
		Precautions:  cloneStrings(r.Precautions),
		Duration:     r.Duration,
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
