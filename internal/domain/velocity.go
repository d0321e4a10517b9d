package domain

// SalesTrend indicates the short-term direction of a SKU's sales.
type SalesTrend string

const (
	TrendIncreasing SalesTrend = "increasing"
	TrendStable     SalesTrend = "stable"
	TrendDecreasing SalesTrend = "decreasing"
)

// SalesVelocityMetrics holds trailing-window sales totals, trend and
// seasonality signals, and multi-horizon demand forecasts for one SKU.
// Recomputed on every call, never persisted.
type SalesVelocityMetrics struct {
	SKU                string     `json:"sku"`
	UnitsSold7Days     float64    `json:"units_sold_7_days"`
	UnitsSold30Days    float64    `json:"units_sold_30_days"`
	UnitsSold60Days    float64    `json:"units_sold_60_days"`
	UnitsSold90Days    float64    `json:"units_sold_90_days"`
	AverageDailySales  float64    `json:"average_daily_sales"`
	AverageWeeklySales float64    `json:"average_weekly_sales"`
	SalesTrend         SalesTrend `json:"sales_trend"`
	Forecast30Days     int        `json:"forecast_30_days"`
	Forecast60Days     int        `json:"forecast_60_days"`
	Forecast90Days     int        `json:"forecast_90_days"`
	SeasonalityFactor  float64    `json:"seasonality_factor"`
}
