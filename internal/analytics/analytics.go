// Package analytics serves the sample health dashboard: a fixed week of
// vitals, the metric catalogue, trends and canned insights.
package analytics

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"healthai/internal/models"
)

// ErrUnknownMetric is returned for metric IDs outside the catalogue.
var ErrUnknownMetric = errors.New("unknown metric")

// Metric IDs
const (
	MetricHeartRate     = "heartRate"
	MetricBloodPressure = "bloodPressure"
	MetricGlucose       = "glucose"
	MetricWeight        = "weight"
	MetricTemperature   = "temperature"
)

// trendThreshold is the percent change below which a trend is stable.
const trendThreshold = 2.0

var samples = []models.HealthMetric{
	{Date: "2024-01-01", HeartRate: 72, BloodPressureSystolic: 120, BloodPressureDiastolic: 80, Glucose: 95, Weight: 70, Temperature: 36.5},
	{Date: "2024-01-02", HeartRate: 75, BloodPressureSystolic: 118, BloodPressureDiastolic: 78, Glucose: 92, Weight: 70.2, Temperature: 36.6},
	{Date: "2024-01-03", HeartRate: 68, BloodPressureSystolic: 122, BloodPressureDiastolic: 82, Glucose: 88, Weight: 69.8, Temperature: 36.4},
	{Date: "2024-01-04", HeartRate: 74, BloodPressureSystolic: 119, BloodPressureDiastolic: 79, Glucose: 94, Weight: 70.1, Temperature: 36.5},
	{Date: "2024-01-05", HeartRate: 71, BloodPressureSystolic: 121, BloodPressureDiastolic: 81, Glucose: 91, Weight: 70.0, Temperature: 36.7},
	{Date: "2024-01-06", HeartRate: 76, BloodPressureSystolic: 117, BloodPressureDiastolic: 77, Glucose: 89, Weight: 69.9, Temperature: 36.3},
	{Date: "2024-01-07", HeartRate: 73, BloodPressureSystolic: 123, BloodPressureDiastolic: 83, Glucose: 93, Weight: 70.3, Temperature: 36.6},
}

var catalogue = []models.MetricDefinition{
	{ID: MetricHeartRate, Name: "Heart Rate", Unit: "bpm", NormalRange: "60-100"},
	{ID: MetricBloodPressure, Name: "Blood Pressure", Unit: "mmHg", NormalRange: "120/80"},
	{ID: MetricGlucose, Name: "Blood Glucose", Unit: "mg/dL", NormalRange: "70-100"},
	{ID: MetricWeight, Name: "Weight", Unit: "kg", NormalRange: "BMI 18.5-24.9"},
	{ID: MetricTemperature, Name: "Temperature", Unit: "°C", NormalRange: "36.1-37.2"},
}

// Samples returns the sample week of vitals, oldest first.
func Samples() []models.HealthMetric {
	out := make([]models.HealthMetric, len(samples))
	copy(out, samples)
	return out
}

// Metrics returns the metric catalogue in display order.
func Metrics() []models.MetricDefinition {
	out := make([]models.MetricDefinition, len(catalogue))
	copy(out, catalogue)
	return out
}

// Metric returns the catalogue entry for id.
func Metric(id string) (models.MetricDefinition, error) {
	for _, m := range catalogue {
		if m.ID == id {
			return m, nil
		}
	}
	return models.MetricDefinition{}, fmt.Errorf("%w: %s", ErrUnknownMetric, id)
}

// value extracts the scalar used for charts and trends. Blood pressure uses
// the systolic reading.
func value(id string, m models.HealthMetric) float64 {
	switch id {
	case MetricHeartRate:
		return float64(m.HeartRate)
	case MetricBloodPressure:
		return float64(m.BloodPressureSystolic)
	case MetricGlucose:
		return float64(m.Glucose)
	case MetricWeight:
		return m.Weight
	case MetricTemperature:
		return m.Temperature
	}
	return 0
}

// Series returns the chart points for a metric.
func Series(id string) ([]models.MetricPoint, error) {
	if _, err := Metric(id); err != nil {
		return nil, err
	}
	points := make([]models.MetricPoint, len(samples))
	for i, s := range samples {
		p := models.MetricPoint{Date: s.Date}
		if id == MetricBloodPressure {
			sys, dia := s.BloodPressureSystolic, s.BloodPressureDiastolic
			p.Systolic, p.Diastolic = &sys, &dia
		} else {
			v := value(id, s)
			p.Value = &v
		}
		points[i] = p
	}
	return points, nil
}

// CurrentValue formats the latest sample of a metric.
func CurrentValue(id string) (string, error) {
	if _, err := Metric(id); err != nil {
		return "", err
	}
	if len(samples) == 0 {
		return "0", nil
	}
	last := samples[len(samples)-1]
	switch id {
	case MetricBloodPressure:
		return fmt.Sprintf("%d/%d", last.BloodPressureSystolic, last.BloodPressureDiastolic), nil
	case MetricHeartRate, MetricGlucose:
		return strconv.Itoa(int(value(id, last))), nil
	}
	return strconv.FormatFloat(value(id, last), 'f', -1, 64), nil
}

// ComputeTrend compares the last two samples of a metric.
func ComputeTrend(id string) (models.Trend, error) {
	if _, err := Metric(id); err != nil {
		return models.Trend{}, err
	}
	return trendOf(id, samples), nil
}

func trendOf(id string, data []models.HealthMetric) models.Trend {
	if len(data) < 2 {
		return models.Trend{Direction: models.TrendStable}
	}
	current := value(id, data[len(data)-1])
	previous := value(id, data[len(data)-2])
	if previous == 0 {
		return models.Trend{Direction: models.TrendStable}
	}

	change := (current - previous) / previous * 100
	direction := models.TrendStable
	switch {
	case change > trendThreshold:
		direction = models.TrendUp
	case change < -trendThreshold:
		direction = models.TrendDown
	}
	return models.Trend{
		Direction:  direction,
		Percentage: math.Round(math.Abs(change)*10) / 10,
	}
}

// Overview returns every catalogue metric with its current value and trend.
func Overview() []models.MetricOverview {
	out := make([]models.MetricOverview, 0, len(catalogue))
	for _, m := range catalogue {
		current, _ := CurrentValue(m.ID)
		out = append(out, models.MetricOverview{
			MetricDefinition: m,
			Current:          current,
			Trend:            trendOf(m.ID, samples),
		})
	}
	return out
}

// RiskDistribution returns the fixed risk assessment chart data.
func RiskDistribution() []models.RiskShare {
	return []models.RiskShare{
		{Name: "Low Risk", Value: 70, Color: RiskColor(models.RiskLow)},
		{Name: "Medium Risk", Value: 25, Color: RiskColor(models.RiskMedium)},
		{Name: "High Risk", Value: 5, Color: RiskColor(models.RiskHigh)},
	}
}

// Insights returns the canned dashboard observations.
func Insights() []models.Insight {
	return []models.Insight{
		{Title: "Heart Rate Variability", Insight: "Your heart rate shows good variability, indicating healthy cardiovascular fitness.", Type: models.InsightPositive},
		{Title: "Blood Pressure Trends", Insight: "Blood pressure readings are within normal range. Continue maintaining a healthy lifestyle.", Type: models.InsightPositive},
		{Title: "Glucose Stability", Insight: "Blood glucose levels are stable and within healthy parameters.", Type: models.InsightPositive},
		{Title: "Weight Management", Insight: "Weight is stable. Consider tracking diet and exercise for optimal health.", Type: models.InsightNeutral},
	}
}

// RiskColor returns the display colour for a risk level.
func RiskColor(level string) string {
	switch level {
	case models.RiskLow:
		return "#10B981"
	case models.RiskMedium:
		return "#F59E0B"
	case models.RiskHigh:
		return "#EF4444"
	}
	return "#6B7280"
}

// MetricUnit returns the unit label for a metric ID, or "" if unknown.
func MetricUnit(id string) string {
	m, err := Metric(id)
	if err != nil {
		return ""
	}
	return m.Unit
}
