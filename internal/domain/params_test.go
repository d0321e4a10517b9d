package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPlanningParams(t *testing.T) {
	params := DefaultPlanningParams()

	assert.Equal(t, 60, params.TargetDaysOfCoverage)
	assert.Equal(t, 14, params.SafetyStockDays)
	assert.Equal(t, 1, params.MinimumReorderQuantity)
	assert.Equal(t, 10000, params.MaximumReorderQuantity)
	assert.Equal(t, 30, params.LeadTimeDays)
	assert.Equal(t, 1.0, params.SeasonalityFactor)
	assert.Equal(t, 1.0, params.SalesGrowthFactor)
	assert.False(t, params.ApplyBudgetConstraints)
}

func TestMerged_NilOverridesLeaveDefaults(t *testing.T) {
	params := DefaultPlanningParams()
	assert.Equal(t, params, params.Merged(nil))
	assert.Equal(t, params, params.Merged(&PlanningOverrides{}))
}

func TestMerged_ExplicitZeroWins(t *testing.T) {
	zero := 0
	merged := DefaultPlanningParams().Merged(&PlanningOverrides{SafetyStockDays: &zero})

	assert.Equal(t, 0, merged.SafetyStockDays)
	assert.Equal(t, 60, merged.TargetDaysOfCoverage, "untouched fields keep their defaults")
}

func TestMerged_AllFields(t *testing.T) {
	target, safety, minQty, maxQty, lead, maxUnits := 90, 7, 5, 500, 21, 300
	season, growth, budget := 1.2, 0.9, 2500.0
	apply := true

	merged := DefaultPlanningParams().Merged(&PlanningOverrides{
		TargetDaysOfCoverage:   &target,
		SafetyStockDays:        &safety,
		MinimumReorderQuantity: &minQty,
		MaximumReorderQuantity: &maxQty,
		LeadTimeDays:           &lead,
		SeasonalityFactor:      &season,
		SalesGrowthFactor:      &growth,
		ApplyBudgetConstraints: &apply,
		MaxBudget:              &budget,
		MaxUnits:               &maxUnits,
	})

	assert.Equal(t, PlanningParams{
		TargetDaysOfCoverage:   90,
		SafetyStockDays:        7,
		MinimumReorderQuantity: 5,
		MaximumReorderQuantity: 500,
		LeadTimeDays:           21,
		SeasonalityFactor:      1.2,
		SalesGrowthFactor:      0.9,
		ApplyBudgetConstraints: true,
		MaxBudget:              2500.0,
		MaxUnits:               300,
	}, merged)
}

func TestRiskSeverityOrdering(t *testing.T) {
	assert.Less(t, RiskHigh.Severity(), RiskMedium.Severity())
	assert.Less(t, RiskMedium.Severity(), RiskLow.Severity())
	assert.Greater(t, RiskLevel("bogus").Severity(), RiskLow.Severity())
}

func TestInventoryItem_AvailableQuantity(t *testing.T) {
	item := InventoryItem{Quantity: 100, ReservedQuantity: 30, InboundQuantity: 20}
	assert.Equal(t, 50, item.AvailableQuantity())

	oversubscribed := InventoryItem{Quantity: 10, ReservedQuantity: 50}
	assert.Equal(t, 0, oversubscribed.AvailableQuantity())
}

func TestInventoryItem_UnitCost(t *testing.T) {
	cost := 4.2
	assert.Equal(t, 4.2, InventoryItem{Cost: &cost}.UnitCost(10))
	assert.Equal(t, 10.0, InventoryItem{}.UnitCost(10))
}
