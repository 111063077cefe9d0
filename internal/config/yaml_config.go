package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"healthai/internal/lookup"
	"healthai/internal/models"
)

// YAMLConfig represents the optional catalogue file. It only changes what is
// suggested to clients; the lookup tables themselves are fixed.
type YAMLConfig struct {
	SiteTitle      string            `yaml:"site_title"`
	Disclaimers    map[string]string `yaml:"disclaimers"`
	QuickQuestions []string          `yaml:"quick_questions"`
	ExtraSymptoms  []string          `yaml:"extra_symptoms"`
}

// DefaultDisclaimers are shown when the catalogue file does not override them.
var DefaultDisclaimers = map[string]string{
	"remedies":  "These natural remedies are complementary to professional medical care and should not replace proper medical treatment. Always consult with a healthcare provider for serious conditions or if symptoms persist or worsen.",
	"chat":      "This AI assistant provides general health information only and should not replace professional medical advice. For medical emergencies, call emergency services immediately. Always consult with qualified healthcare providers for proper diagnosis and treatment.",
	"treatment": "These AI-generated treatment plans are for informational purposes only and should not replace professional medical advice. Always consult with qualified healthcare providers before starting, stopping, or modifying any treatment. Individual patient needs may vary, and treatments should be personalized by medical professionals.",
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return loadYAMLFile(getEnv("CONFIG_FILE", "config.yaml"))
}

func loadYAMLFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.SiteTitle == "" {
		cfg.SiteTitle = "HealthAI Platform"
	}

	return &cfg, nil
}

// CatalogResponse builds the client catalogue, applying file overrides on top
// of the built-in lists.
func (c *YAMLConfig) CatalogResponse() models.CatalogResponse {
	resp := models.CatalogResponse{
		SiteTitle:           "HealthAI Platform",
		CommonSymptoms:      lookup.CommonSymptoms(),
		RemedyConditions:    lookup.CommonConditions(),
		TreatableConditions: lookup.TreatableConditions(),
		QuickQuestions:      lookup.QuickQuestions(),
		Disclaimers:         make(map[string]string, len(DefaultDisclaimers)),
	}
	for k, v := range DefaultDisclaimers {
		resp.Disclaimers[k] = v
	}
	if c == nil {
		return resp
	}

	resp.SiteTitle = c.SiteTitle
	for k, v := range c.Disclaimers {
		resp.Disclaimers[k] = v
	}
	resp.QuickQuestions = appendUnique(resp.QuickQuestions, c.QuickQuestions)
	resp.CommonSymptoms = appendUnique(resp.CommonSymptoms, c.ExtraSymptoms)
	return resp
}

func appendUnique(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, s := range base {
		seen[s] = true
	}
	for _, s := range extra {
		if s != "" && !seen[s] {
			seen[s] = true
			base = append(base, s)
		}
	}
	return base
}
