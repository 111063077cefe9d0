// Package lookup implements the rule-based health lookup engine. Every table
// is fixed at process start and never mutated; all operations are total and
// return copies callers may modify freely.
package lookup

import (
	"strings"

	"healthai/internal/models"
)

var remedies = map[string]models.RemedyRecord{
	"common cold": {
		Title:       "Natural Cold Relief",
		Ingredients: []string{"Honey (2 tbsp)", "Fresh ginger (1 inch)", "Lemon juice (1 tbsp)", "Warm water (1 cup)", "Turmeric powder (1/2 tsp)"},
		Instructions: []string{
			"Grate fresh ginger and steep in hot water for 5 minutes",
			"Strain the ginger tea and add honey while warm",
			"Add fresh lemon juice and turmeric powder",
			"Stir well and drink 2-3 times daily",
			"Gargle with warm salt water before drinking",
		},
		Benefits:    []string{"Boosts immune system", "Reduces inflammation", "Soothes throat irritation", "Natural antibacterial properties"},
		Precautions: []string{"Not suitable for children under 1 year (honey)", "Consult doctor if symptoms persist beyond 7 days", "Avoid if allergic to any ingredients"},
		Duration:    "3-5 days",
	},
	"headache": {
		Title:       "Tension Headache Relief",
		Ingredients: []string{"Peppermint oil (2-3 drops)", "Lavender oil (2-3 drops)", "Carrier oil (coconut/olive)", "Cold compress", "Chamomile tea"},
		Instructions: []string{
			"Mix essential oils with carrier oil",
			"Gently massage temples and forehead",
			"Apply cold compress to forehead for 15 minutes",
			"Brew chamomile tea and drink slowly",
			"Rest in a dark, quiet room",
		},
		Benefits:    []string{"Reduces muscle tension", "Promotes relaxation", "Natural pain relief", "Improves blood circulation"},
		Precautions: []string{"Test essential oils on small skin area first", "Avoid if pregnant without doctor approval", "Seek medical help for severe or recurring headaches"},
		Duration:    "30 minutes to 2 hours",
	},
	"nausea": {
		Title:       "Ginger Nausea Relief",
		Ingredients: []string{"Fresh ginger root (1 inch)", "Mint leaves (5-6)", "Lemon slices (2-3)", "Hot water (2 cups)", "Honey (optional)"},
		Instructions: []string{
			"Slice ginger thinly and add to hot water",
			"Add mint leaves and lemon slices",
			"Steep for 10 minutes and strain",
			"Add honey if desired for taste",
			"Sip slowly throughout the day",
		},
		Benefits:    []string{"Settles stomach", "Reduces nausea symptoms", "Aids digestion", "Natural anti-inflammatory"},
		Precautions: []string{"Start with small amounts", "Avoid if on blood-thinning medications", "Consult doctor if nausea persists"},
		Duration:    "1-2 days",
	},
}

// genericRemedy is returned for any query without a table entry. Title is
// filled in per query.
var genericRemedy = models.RemedyRecord{
	Ingredients: []string{"Warm water (1 cup)", "Honey (1 tbsp)", "Lemon juice (1 tsp)", "Fresh herbs (optional)"},
	Instructions: []string{
		"Mix warm water with honey until dissolved",
		"Add fresh lemon juice and stir well",
		"Add herbs if desired for additional benefits",
		"Consume slowly 2-3 times daily",
		"Rest and stay hydrated",
	},
	Benefits:    []string{"Natural healing properties", "Boosts immune system", "Reduces inflammation", "Promotes recovery"},
	Precautions: []string{"Consult healthcare provider if symptoms persist", "Avoid if allergic to any ingredients", "Not suitable for infants under 12 months"},
	Duration:    "2-3 days",
}

// GenericRemedyTitle returns the title used for an unmatched remedy query.
func GenericRemedyTitle(query string) string {
	return "Natural Relief for " + query
}

// FindRemedy returns the remedy stored for query, or the generic template
// titled with the query text as given.
func FindRemedy(query string) models.RemedyRecord {
	r, _, _ := FindRemedyMatch(query)
	return r
}

// FindRemedyMatch is FindRemedy that also reports whether the table matched
// and under which key.
func FindRemedyMatch(query string) (models.RemedyRecord, string, bool) {
	key := strings.ToLower(query)
	if r, ok := remedies[key]; ok {
		return r.Clone(), key, true
	}
	r := genericRemedy.Clone()
	r.Title = GenericRemedyTitle(query)
	return r, "", false
}

// RemedyKeys returns the remedy table keys in sorted order.
func RemedyKeys() []string {
	return sortedKeys(remedies)
}
