package planning

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restockly/backend/internal/domain"
)

func rec(sku string, risk domain.RiskLevel, coverage float64, qty int) domain.InventoryLevelRecommendation {
	return domain.InventoryLevelRecommendation{
		SKU:                          sku,
		RiskLevel:                    risk,
		DaysOfCoverageAtCurrentLevel: coverage,
		ReorderQuantity:              qty,
		RecommendationReason:         "Restock to maintain optimal inventory level.",
	}
}

func planTotals(recs []domain.InventoryLevelRecommendation, costs map[string]float64, defaultCost float64) (units int, cost float64) {
	for _, r := range recs {
		unitCost := defaultCost
		if c, ok := costs[r.SKU]; ok {
			unitCost = c
		}
		units += r.ReorderQuantity
		cost += float64(r.ReorderQuantity) * unitCost
	}
	return units, cost
}

func TestOptimize_HigherRiskFundedFirst(t *testing.T) {
	optimizer := NewReorderPlanOptimizer(10)
	recs := []domain.InventoryLevelRecommendation{
		rec("SKU-LOW", domain.RiskLow, 80, 100),
		rec("SKU-HIGH", domain.RiskHigh, 5, 100),
	}
	costs := map[string]float64{"SKU-LOW": 1, "SKU-HIGH": 1}

	out := optimizer.Optimize(recs, costs, 120, math.MaxInt32)

	require.Len(t, out, 2)
	assert.Equal(t, "SKU-HIGH", out[0].SKU)
	assert.Equal(t, 100, out[0].ReorderQuantity, "high risk taken in full")
	assert.Equal(t, 20, out[1].ReorderQuantity, "low risk gets the remainder")
	assert.Equal(t, "Reorder reduced from 100 to 20 due to budget constraints", out[1].RecommendationReason)
}

func TestOptimize_SoonerStockoutBreaksRiskTies(t *testing.T) {
	optimizer := NewReorderPlanOptimizer(10)
	recs := []domain.InventoryLevelRecommendation{
		rec("SKU-LATER", domain.RiskHigh, 20, 50),
		rec("SKU-SOON", domain.RiskHigh, 2, 50),
	}

	out := optimizer.Optimize(recs, nil, 500, math.MaxInt32)

	assert.Equal(t, "SKU-SOON", out[0].SKU)
	assert.Equal(t, 50, out[0].ReorderQuantity)
	assert.Equal(t, 0, out[1].ReorderQuantity)
	assert.Equal(t, "No reorder due to budget constraints", out[1].RecommendationReason)
}

func TestOptimize_UnitCapBinds(t *testing.T) {
	optimizer := NewReorderPlanOptimizer(1)
	recs := []domain.InventoryLevelRecommendation{
		rec("A", domain.RiskHigh, 1, 100),
		rec("B", domain.RiskMedium, 10, 100),
	}

	out := optimizer.Optimize(recs, nil, math.MaxFloat64, 150)

	units, _ := planTotals(out, nil, 1)
	assert.Equal(t, 150, units)
	assert.Equal(t, 100, out[0].ReorderQuantity)
	assert.Equal(t, 50, out[1].ReorderQuantity)
}

func TestOptimize_NeverExceedsCaps(t *testing.T) {
	optimizer := NewReorderPlanOptimizer(10)

	tests := []struct {
		name     string
		budget   float64
		maxUnits int
	}{
		{"tight budget", 37, 1000},
		{"tight units", 100000, 7},
		{"both tight", 55, 11},
		{"nothing available", 0, 0},
	}

	recs := []domain.InventoryLevelRecommendation{
		rec("A", domain.RiskHigh, 1, 9),
		rec("B", domain.RiskMedium, 3, 14),
		rec("C", domain.RiskLow, 90, 25),
	}
	costs := map[string]float64{"A": 3, "B": 7.5}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := optimizer.Optimize(recs, costs, tt.budget, tt.maxUnits)

			units, cost := planTotals(out, costs, 10)
			assert.LessOrEqual(t, cost, tt.budget+1e-9)
			assert.LessOrEqual(t, units, tt.maxUnits)
			for _, r := range out {
				assert.GreaterOrEqual(t, r.ReorderQuantity, 0)
			}
		})
	}
}

func TestOptimize_UnconstrainedPlanUntouched(t *testing.T) {
	optimizer := NewReorderPlanOptimizer(10)
	recs := []domain.InventoryLevelRecommendation{
		rec("A", domain.RiskHigh, 1, 9),
		rec("B", domain.RiskLow, 90, 25),
	}

	out := optimizer.Optimize(recs, nil, math.MaxFloat64, math.MaxInt32)

	for _, r := range out {
		assert.False(t, strings.Contains(r.RecommendationReason, "budget"), "no budget annotation expected")
	}
	units, _ := planTotals(out, nil, 10)
	assert.Equal(t, 34, units)
}

func TestOptimize_DoesNotMutateInput(t *testing.T) {
	optimizer := NewReorderPlanOptimizer(10)
	recs := []domain.InventoryLevelRecommendation{
		rec("A", domain.RiskHigh, 1, 100),
	}

	_ = optimizer.Optimize(recs, nil, 50, math.MaxInt32)

	assert.Equal(t, 100, recs[0].ReorderQuantity)
	assert.Equal(t, "Restock to maintain optimal inventory level.", recs[0].RecommendationReason)
}
