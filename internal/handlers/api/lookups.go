package api

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v3"

	"healthai/internal/lookup"
	"healthai/internal/models"
	"healthai/internal/validation"
)

// Recorder counts lookup outcomes.
type Recorder interface {
	Record(operation, key string, matched bool)
}

// LookupHandler serves the symptom, remedy and treatment lookups.
type LookupHandler struct {
	recorder Recorder
}

// NewLookupHandler creates a new lookup handler.
func NewLookupHandler(recorder Recorder) *LookupHandler {
	return &LookupHandler{recorder: recorder}
}

// AnalyzeSymptoms returns the candidate conditions for a symptom set.
func (h *LookupHandler) AnalyzeSymptoms(c fiber.Ctx) error {
	var body struct {
		Symptoms []string `json:"symptoms"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	symptoms := validation.NormalizeSymptoms(body.Symptoms)
	if valid, msg := validation.ValidateSymptoms(symptoms); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	conditions := lookup.MatchConditions(symptoms)
	h.recorder.Record(models.OperationConditions, "", true)

	return jsonSuccess(c, models.SymptomAnalysisResponse{
		Symptoms:   symptoms,
		Conditions: conditions,
	})
}

// Remedy returns the remedy for ?q=, or the generic remedy when no entry
// matches.
func (h *LookupHandler) Remedy(c fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if valid, msg := validation.ValidateQuery(query); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	remedy, key, matched := lookup.FindRemedyMatch(query)
	h.recorder.Record(models.OperationRemedy, key, matched)

	return jsonSuccess(c, models.RemedyResponse{
		Query:   query,
		Matched: matched,
		Remedy:  remedy,
	})
}

// TreatmentPlan returns the plan for a condition. Patient details are
// accepted and range-checked but do not change the plan.
func (h *LookupHandler) TreatmentPlan(c fiber.Ctx) error {
	var body struct {
		Condition   string   `json:"condition"`
		Age         *int     `json:"age"`
		Weight      *float64 `json:"weight"`
		Allergies   string   `json:"allergies"`
		Medications string   `json:"medications"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	condition := strings.TrimSpace(body.Condition)
	if valid, msg := validation.ValidateQuery(condition); !valid {
		return jsonError(c, fiber.StatusBadRequest, "condition: "+msg)
	}
	if body.Age != nil && (*body.Age < 0 || *body.Age > 130) {
		return jsonError(c, fiber.StatusBadRequest, "age must be between 0 and 130")
	}
	if body.Weight != nil && !validation.ValidateMetricValue("weight", *body.Weight) {
		return jsonError(c, fiber.StatusBadRequest, "weight is out of range")
	}

	items, key, matched := lookup.GenerateTreatmentPlanMatch(condition)
	h.recorder.Record(models.OperationTreatment, key, matched)

	return jsonSuccess(c, models.TreatmentPlanResponse{
		Condition: condition,
		Matched:   matched,
		Items:     items,
		Summary:   lookup.PlanSummary(condition),
	})
}
