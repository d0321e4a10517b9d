package domain

// HealthStatus classifies the current inventory position of a SKU.
type HealthStatus string

const (
	HealthHealthy    HealthStatus = "healthy"
	HealthExcess     HealthStatus = "excess"
	HealthLow        HealthStatus = "low"
	HealthOutOfStock HealthStatus = "outOfStock"
	HealthOveraged   HealthStatus = "overaged"
	HealthSlowMoving HealthStatus = "slowMoving"
)

// InventoryHealthAssessment is the per-SKU health snapshot with cost
// figures and canned remediation actions.
type InventoryHealthAssessment struct {
	SKU                        string       `json:"sku"`
	HealthStatus               HealthStatus `json:"health_status"`
	InventoryAgeDays           int          `json:"inventory_age_days"`
	AtRiskOfLongTermStorageFee bool         `json:"at_risk_of_long_term_storage_fee"`
	ExcessInventoryPercent     float64      `json:"excess_inventory_percent"`
	ExcessInventoryCost        float64      `json:"excess_inventory_cost"`
	MonthlyStorageCost         float64      `json:"monthly_storage_cost"`
	SellThroughRate            float64      `json:"sell_through_rate"`
	RecommendedActions         []string     `json:"recommended_actions"`
}
