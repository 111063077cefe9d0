package api

import (
	"github.com/gofiber/fiber/v3"

	"healthai/internal/config"
	"healthai/internal/lookup"
	"healthai/internal/validation"
)

// CatalogHandler serves the reference lists clients build their pickers from.
type CatalogHandler struct {
	catalog *config.YAMLConfig
}

// NewCatalogHandler creates a catalog handler. A nil catalog serves the
// built-in lists.
func NewCatalogHandler(catalog *config.YAMLConfig) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Catalog returns symptoms, remedy conditions, treatable conditions, quick
// questions and disclaimers.
func (h *CatalogHandler) Catalog(c fiber.Ctx) error {
	return jsonSuccess(c, h.catalog.CatalogResponse())
}

// Diseases returns the disease reference catalogue, optionally filtered by
// ?symptom=.
func (h *CatalogHandler) Diseases(c fiber.Ctx) error {
	if symptom := validation.NormalizeQuery(c.Query("symptom")); symptom != "" {
		return jsonSuccess(c, lookup.DiseasesWithSymptom(symptom))
	}
	return jsonSuccess(c, lookup.Diseases())
}
