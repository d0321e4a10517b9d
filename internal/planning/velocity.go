package planning

import (
	"math"

	"github.com/restockly/backend/internal/domain"
)

const (
	defaultDayRange = 90

	trendIncreasingThreshold = 1.2
	trendDecreasingThreshold = 0.8

	seasonalityMin = 0.5
	seasonalityMax = 2.0
	growthMin      = 0.7
	growthMax      = 1.5
)

// VelocityAnalyzer turns a raw daily-sales history into trailing totals,
// trend and seasonality signals, and multi-horizon forecasts.
type VelocityAnalyzer struct{}

func NewVelocityAnalyzer() *VelocityAnalyzer {
	return &VelocityAnalyzer{}
}

// Analyze computes SalesVelocityMetrics for one item over the given day
// range (90 when dayRange <= 0). History is most-recent-first; a history
// shorter than the range is zero-padded at the oldest end.
func (va *VelocityAnalyzer) Analyze(item domain.InventoryItem, dayRange int) domain.SalesVelocityMetrics {
	if dayRange <= 0 {
		dayRange = defaultDayRange
	}

	history := normalizeHistory(item.DailySalesHistory, dayRange)

	units30 := sumWindow(history, 30)
	avgDaily := units30 / 30
	growth := growthFactor(item.DailySalesHistory, history)
	seasonality := seasonalityFactor(item.DailySalesHistory, history)

	return domain.SalesVelocityMetrics{
		SKU:                item.SKU,
		UnitsSold7Days:     sumWindow(history, 7),
		UnitsSold30Days:    units30,
		UnitsSold60Days:    sumWindow(history, 60),
		UnitsSold90Days:    sumWindow(history, 90),
		AverageDailySales:  avgDaily,
		AverageWeeklySales: units30 / 4.29,
		SalesTrend:         salesTrend(history),
		Forecast30Days:     forecast(avgDaily, growth, seasonality, 30),
		Forecast60Days:     forecast(avgDaily, growth, seasonality, 60),
		Forecast90Days:     forecast(avgDaily, growth, seasonality, 90),
		SeasonalityFactor:  seasonality,
	}
}

// normalizeHistory pads or truncates a most-recent-first history to exactly
// n entries. Missing oldest days are assumed to be zero-sales days.
func normalizeHistory(history []float64, n int) []float64 {
	normalized := make([]float64, n)
	copy(normalized, history)
	return normalized
}

func sumWindow(history []float64, days int) float64 {
	if days > len(history) {
		days = len(history)
	}
	var total float64
	for _, v := range history[:days] {
		total += v
	}
	return total
}

// salesTrend compares the most recent 15 days against the 15 days before
// that. A previous-window total of zero reads as a flat ratio.
func salesTrend(history []float64) domain.SalesTrend {
	recent := sumWindow(history, 15)
	previous := sumWindow(history, 30) - recent

	ratio := 1.0
	if previous > 0 {
		ratio = recent / previous
	}

	switch {
	case ratio > trendIncreasingThreshold:
		return domain.TrendIncreasing
	case ratio < trendDecreasingThreshold:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}

// seasonalityFactor is the ratio of the recent-15-day daily average to the
// full-period daily average, clamped to [0.5, 2.0]. Histories shorter than
// 30 days carry too little signal and read as 1.0.
func seasonalityFactor(raw, normalized []float64) float64 {
	if len(raw) < 30 {
		return 1.0
	}

	fullAvg := sumWindow(normalized, len(normalized)) / float64(len(normalized))
	if fullAvg == 0 {
		return 1.0
	}

	recentAvg := sumWindow(normalized, 15) / 15
	return clamp(recentAvg/fullAvg, seasonalityMin, seasonalityMax)
}

// growthFactor is the ratio of the most-recent-30-day total to the prior
// 30-day total, clamped to [0.7, 1.5]. Histories shorter than 60 days read
// as 1.0.
func growthFactor(raw, normalized []float64) float64 {
	if len(raw) < 60 {
		return 1.0
	}

	recent := sumWindow(normalized, 30)
	prior := sumWindow(normalized, 60) - recent
	if prior == 0 {
		return 1.0
	}

	return clamp(recent/prior, growthMin, growthMax)
}

func forecast(avgDaily, growth, seasonality float64, horizonDays int) int {
	return int(math.Round(avgDaily * growth * seasonality * float64(horizonDays)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
