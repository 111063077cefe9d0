package validation

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// MaxQueryLength bounds free-text input accepted by the API.
const MaxQueryLength = 500

// MaxSymptoms bounds the size of a symptom set.
const MaxSymptoms = 50

// NormalizeQuery lowercases and trims text so lookups are case-insensitive.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// ValidateQuery checks that free text is non-empty after trimming and not
// overly long.
func ValidateQuery(query string) (bool, string) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return false, "input is required"
	}
	if utf8.RuneCountInString(trimmed) > MaxQueryLength {
		return false, "input must be at most 500 characters"
	}
	return true, ""
}

// NormalizeSymptoms lowercases and trims each symptom, drops empty entries and
// duplicates, and keeps first-seen order.
func NormalizeSymptoms(symptoms []string) []string {
	seen := make(map[string]bool, len(symptoms))
	out := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		n := NormalizeQuery(s)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// ValidateSymptoms checks a normalized symptom set.
func ValidateSymptoms(symptoms []string) (bool, string) {
	if len(symptoms) == 0 {
		return false, "at least one symptom is required"
	}
	if len(symptoms) > MaxSymptoms {
		return false, "at most 50 symptoms are allowed"
	}
	for _, s := range symptoms {
		if ok, msg := ValidateQuery(s); !ok {
			return false, msg
		}
	}
	return true, ""
}

// metricRanges holds plausible bounds for user-entered vitals.
var metricRanges = map[string][2]float64{
	"heart_rate":   {40, 200},
	"systolic_bp":  {70, 250},
	"diastolic_bp": {40, 150},
	"glucose":      {50, 400},
	"weight":       {20, 300},
	"temperature":  {35, 42},
	"height":       {50, 250},
}

// ValidateMetricValue checks value against the bounds for metric. Metrics
// without bounds are accepted.
func ValidateMetricValue(metric string, value float64) bool {
	r, ok := metricRanges[metric]
	if !ok {
		return true
	}
	return value >= r[0] && value <= r[1]
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}
