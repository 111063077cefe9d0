package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"healthai/internal/analytics"
	"healthai/internal/models"
	"healthai/internal/validation"
)

// AnalyticsHandler serves the sample health dashboard.
type AnalyticsHandler struct{}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler() *AnalyticsHandler {
	return &AnalyticsHandler{}
}

// Metrics returns the metric catalogue with current values and trends.
func (h *AnalyticsHandler) Metrics(c fiber.Ctx) error {
	return jsonSuccess(c, analytics.Overview())
}

// Metric returns the series and trend for one metric.
func (h *AnalyticsHandler) Metric(c fiber.Ctx) error {
	id := c.Params("id")

	def, err := analytics.Metric(id)
	if err != nil {
		if errors.Is(err, analytics.ErrUnknownMetric) {
			return jsonError(c, fiber.StatusNotFound, "metric not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch metric")
	}

	points, err := analytics.Series(id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch metric")
	}
	trend, err := analytics.ComputeTrend(id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch metric")
	}

	return jsonSuccess(c, models.MetricSeriesResponse{
		Metric: def,
		Points: points,
		Trend:  trend,
	})
}

// Summary returns the risk distribution and insights.
func (h *AnalyticsHandler) Summary(c fiber.Ctx) error {
	return jsonSuccess(c, models.AnalyticsSummaryResponse{
		RiskDistribution: analytics.RiskDistribution(),
		Insights:         analytics.Insights(),
	})
}

// BMI computes the body-mass index for a weight and height.
func (h *AnalyticsHandler) BMI(c fiber.Ctx) error {
	var body struct {
		WeightKg float64 `json:"weight_kg"`
		HeightCm float64 `json:"height_cm"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if !validation.ValidateMetricValue("weight", body.WeightKg) {
		return jsonError(c, fiber.StatusBadRequest, "weight_kg is out of range")
	}
	if !validation.ValidateMetricValue("height", body.HeightCm) {
		return jsonError(c, fiber.StatusBadRequest, "height_cm is out of range")
	}

	bmi := analytics.BMI(body.WeightKg, body.HeightCm)
	return jsonSuccess(c, models.BMIResponse{
		BMI:      bmi,
		Category: analytics.BMICategory(bmi),
	})
}
