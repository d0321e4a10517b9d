package domain

// ReorderPlanLine is one allocated SKU in a reorder plan, carrying the
// unit cost the allocation was priced at.
type ReorderPlanLine struct {
	InventoryLevelRecommendation
	UnitCost float64 `json:"unit_cost"`
	LineCost float64 `json:"line_cost"`
}

// ReorderPlan is a budget- and unit-constrained allocation across the
// recommendations of a planning run.
type ReorderPlan struct {
	Lines         []ReorderPlanLine `json:"lines"`
	TotalUnits    int               `json:"total_units"`
	TotalCost     float64           `json:"total_cost"`
	BudgetApplied bool              `json:"budget_applied"`
}

// ItemFailure marks a single SKU whose computation failed inside a batch
// operation. The batch itself still succeeds for the remaining items.
type ItemFailure struct {
	SKU    string `json:"sku"`
	Reason string `json:"reason"`
}
