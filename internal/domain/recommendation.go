package domain

import "time"

// RiskLevel classifies how close a SKU is to stocking out.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

var riskSeverity = map[RiskLevel]int{
	RiskHigh:   0,
	RiskMedium: 1,
	RiskLow:    2,
}

// Severity returns a sort rank for the risk level, highest risk first.
// Unknown levels sort last.
func (r RiskLevel) Severity() int {
	if rank, ok := riskSeverity[r]; ok {
		return rank
	}
	return len(riskSeverity)
}

// InventoryLevelRecommendation is the per-SKU stocking recommendation
// produced from an item and a merged parameter set.
type InventoryLevelRecommendation struct {
	SKU                              string     `json:"sku"`
	CurrentLevel                     int        `json:"current_level"`
	RecommendedLevel                 int        `json:"recommended_level"`
	ReorderQuantity                  int        `json:"reorder_quantity"`
	Confidence                       float64    `json:"confidence"`
	DaysOfCoverageAtCurrentLevel     float64    `json:"days_of_coverage_at_current_level"`
	DaysOfCoverageAtRecommendedLevel float64    `json:"days_of_coverage_at_recommended_level"`
	RiskLevel                        RiskLevel  `json:"risk_level"`
	EstimatedStockoutDate            *time.Time `json:"estimated_stockout_date,omitempty"`
	EstimatedLostSales               float64    `json:"estimated_lost_sales"`
	RecommendationReason             string     `json:"recommendation_reason"`
}
