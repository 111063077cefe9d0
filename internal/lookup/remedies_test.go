package lookup

import (
	"reflect"
	"strings"
	"testing"
)

func TestFindRemedy_KnownKeys(t *testing.T) {
	tests := []struct {
		name  string
		query string
		key   string
		title string
	}{
		{"lowercase", "common cold", "common cold", "Natural Cold Relief"},
		{"title case", "Common Cold", "common cold", "Natural Cold Relief"},
		{"upper case", "HEADACHE", "headache", "Tension Headache Relief"},
		{"mixed case", "NaUsEa", "nausea", "Ginger Nausea Relief"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, key, ok := FindRemedyMatch(tt.query)
			if !ok {
				t.Fatalf("FindRemedyMatch(%q) matched = false, want true", tt.query)
			}
			if key != tt.key {
				t.Errorf("key = %q, want %q", key, tt.key)
			}
			if got.Title != tt.title {
				t.Errorf("Title = %q, want %q", got.Title, tt.title)
			}
			if !reflect.DeepEqual(got, remedies[tt.key]) {
				t.Errorf("FindRemedy(%q) did not return the stored record", tt.query)
			}
		})
	}
}

func TestFindRemedy_EveryKeyRoundTrips(t *testing.T) {
	for _, key := range RemedyKeys() {
		for _, q := range []string{key, strings.ToUpper(key), strings.ToUpper(key[:1]) + key[1:]} {
			if got := FindRemedy(q); !reflect.DeepEqual(got, remedies[key]) {
				t.Errorf("FindRemedy(%q) = %+v, want stored record for %q", q, got, key)
			}
		}
	}
}

func TestFindRemedy_Fallback(t *testing.T) {
	tests := []string{"Sore Throat", "insomnia", "xyzzy", "Common-Cold", " headache ", "nausea\n"}

	for _, q := range tests {
		t.Run(q, func(t *testing.T) {
			got, key, ok := FindRemedyMatch(q)
			if ok {
				t.Fatalf("FindRemedyMatch(%q) matched, want fallback", q)
			}
			if key != "" {
				t.Errorf("key = %q, want empty", key)
			}
			if got.Title != "Natural Relief for "+q {
				t.Errorf("Title = %q, want it to embed %q verbatim", got.Title, q)
			}
			want := genericRemedy
			want.Title = got.Title
			if !reflect.DeepEqual(got, want) {
				t.Errorf("fallback fields differ from template: %+v", got)
			}
		})
	}
}

func TestFindRemedy_ReturnsCopies(t *testing.T) {
	first := FindRemedy("headache")
	first.Instructions[0] = "changed"
	first.Ingredients = append(first.Ingredients, "extra")

	second := FindRemedy("headache")
	if second.Instructions[0] != "Mix essential oils with carrier oil" {
		t.Errorf("stored instructions were mutated: %q", second.Instructions[0])
	}
	if len(second.Ingredients) != 5 {
		t.Errorf("stored ingredients length = %d, want 5", len(second.Ingredients))
	}

	fb := FindRemedy("unknown")
	fb.Benefits[0] = "changed"
	if FindRemedy("other").Benefits[0] != "Natural healing properties" {
		t.Error("fallback template was mutated")
	}
}

func TestRemedyKeys(t *testing.T) {
	want := []string{"common cold", "headache", "nausea"}
	if got := RemedyKeys(); !reflect.DeepEqual(got, want) {
		t.Errorf("RemedyKeys() = %v, want %v", got, want)
	}
	for _, k := range RemedyKeys() {
		if k != strings.ToLower(strings.TrimSpace(k)) {
			t.Errorf("key %q is not lowercase and trimmed", k)
		}
	}
}
