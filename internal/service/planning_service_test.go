package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restockly/backend/internal/config"
	"github.com/restockly/backend/internal/domain"
)

type fakeRepository struct {
	items []domain.InventoryItem
	err   error
}

func (f *fakeRepository) FetchItems(_ context.Context, skus []string) ([]domain.InventoryItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[string]bool, len(skus))
	for _, sku := range skus {
		wanted[sku] = true
	}
	var out []domain.InventoryItem
	for _, item := range f.items {
		if wanted[item.SKU] {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeRepository) FetchAll(_ context.Context) ([]domain.InventoryItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func flat(value float64, days int) []float64 {
	history := make([]float64, days)
	for i := range history {
		history[i] = value
	}
	return history
}

func testConfig() config.PlanningConfig {
	return config.PlanningConfig{
		TargetDaysOfCoverage:     60,
		SafetyStockDays:          14,
		MinimumReorderQuantity:   1,
		MaximumReorderQuantity:   10000,
		LeadTimeDays:             30,
		StorageRatePerUnit:       0.75,
		FulfillmentFeePerUnit:    3.50,
		MonthlyStorageFeePerUnit: 0.75,
		ReferralFeePercent:       15,
		DefaultUnitCost:          10,
		WorkerCount:              4,
	}
}

func testItems() []domain.InventoryItem {
	return []domain.InventoryItem{
		{SKU: "SKU-STEADY", Quantity: 1000, DailySalesHistory: flat(10, 90)},
		{SKU: "SKU-LOW", Quantity: 50, DailySalesHistory: flat(10, 90)},
		{SKU: "SKU-EXCESS", Quantity: 500, DailySalesHistory: flat(1, 90)},
		{SKU: "SKU-OUT", Quantity: 0, DailySalesHistory: flat(5, 90)},
	}
}

func TestRecommendations_PerSKU(t *testing.T) {
	svc := NewPlanningService(&fakeRepository{items: testItems()}, testConfig())

	recs, failures, err := svc.Recommendations(context.Background(), []string{"SKU-STEADY", "SKU-LOW"}, nil)

	require.NoError(t, err)
	assert.Empty(t, failures)
	require.Len(t, recs, 2)

	bySKU := make(map[string]domain.InventoryLevelRecommendation, len(recs))
	for _, rec := range recs {
		bySKU[rec.SKU] = rec
	}
	assert.Equal(t, 40, bySKU["SKU-STEADY"].ReorderQuantity)
	assert.Equal(t, domain.RiskLow, bySKU["SKU-STEADY"].RiskLevel)
	assert.Equal(t, domain.RiskHigh, bySKU["SKU-LOW"].RiskLevel)
}

func TestRecommendations_OverridesApply(t *testing.T) {
	svc := NewPlanningService(&fakeRepository{items: testItems()}, testConfig())

	target := 120
	recs, _, err := svc.Recommendations(context.Background(), []string{"SKU-STEADY"}, &domain.PlanningOverrides{
		TargetDaysOfCoverage: &target,
	})

	require.NoError(t, err)
	require.Len(t, recs, 1)
	// 10/day over (120+30+14) days
	assert.Equal(t, 1640, recs[0].RecommendedLevel)
}

func TestProviderFailureAbortsOperation(t *testing.T) {
	cause := errors.New("connection refused")
	svc := NewPlanningService(&fakeRepository{err: cause}, testConfig())

	_, _, err := svc.Recommendations(context.Background(), []string{"SKU-1"}, nil)

	var unavailable *domain.UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "recommendations", unavailable.Op)
	assert.ErrorIs(t, err, cause)
}

func TestVelocityMetrics_DefaultRange(t *testing.T) {
	svc := NewPlanningService(&fakeRepository{items: testItems()}, testConfig())

	metrics, failures, err := svc.VelocityMetrics(context.Background(), []string{"SKU-STEADY"}, 0)

	require.NoError(t, err)
	assert.Empty(t, failures)
	require.Len(t, metrics, 1)
	assert.Equal(t, 900.0, metrics[0].UnitsSold90Days)
}

func TestHealthAssessments(t *testing.T) {
	svc := NewPlanningService(&fakeRepository{items: testItems()}, testConfig())

	assessments, _, err := svc.HealthAssessments(context.Background(), []string{"SKU-OUT", "SKU-EXCESS"})

	require.NoError(t, err)
	require.Len(t, assessments, 2)
	statuses := map[string]domain.HealthStatus{}
	for _, a := range assessments {
		statuses[a.SKU] = a.HealthStatus
	}
	assert.Equal(t, domain.HealthOutOfStock, statuses["SKU-OUT"])
	assert.Equal(t, domain.HealthExcess, statuses["SKU-EXCESS"])
}

func TestExcessInventoryReport_FiltersToExcess(t *testing.T) {
	svc := NewPlanningService(&fakeRepository{items: testItems()}, testConfig())

	assessments, _, err := svc.ExcessInventoryReport(context.Background())

	require.NoError(t, err)
	require.Len(t, assessments, 1)
	assert.Equal(t, "SKU-EXCESS", assessments[0].SKU)
}

func TestLowInventoryReport_ThresholdFilter(t *testing.T) {
	svc := NewPlanningService(&fakeRepository{items: testItems()}, testConfig())

	recs, _, err := svc.LowInventoryReport(context.Background(), 0)

	require.NoError(t, err)
	// SKU-LOW has 5 days of cover, SKU-OUT has none; the rest sit well
	// above the default 14-day threshold.
	require.Len(t, recs, 2)
	seen := map[string]bool{}
	for _, rec := range recs {
		seen[rec.SKU] = true
		assert.LessOrEqual(t, rec.DaysOfCoverageAtCurrentLevel, 14.0)
	}
	assert.True(t, seen["SKU-LOW"])
	assert.True(t, seen["SKU-OUT"])
}

func TestOptimalReorderPlan_WithoutConstraints(t *testing.T) {
	svc := NewPlanningService(&fakeRepository{items: testItems()}, testConfig())

	plan, failures, err := svc.OptimalReorderPlan(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, failures)
	assert.False(t, plan.BudgetApplied)

	total := 0
	cost := 0.0
	for _, line := range plan.Lines {
		total += line.ReorderQuantity
		cost += line.LineCost
	}
	assert.Equal(t, plan.TotalUnits, total)
	assert.InDelta(t, plan.TotalCost, cost, 1e-9)
}

func TestOptimalReorderPlan_BudgetConstrained(t *testing.T) {
	cost := 2.0
	items := []domain.InventoryItem{
		{SKU: "SKU-URGENT", Quantity: 10, Cost: &cost, DailySalesHistory: flat(10, 90)},
		{SKU: "SKU-RELAXED", Quantity: 900, Cost: &cost, DailySalesHistory: flat(10, 90)},
	}
	svc := NewPlanningService(&fakeRepository{items: items}, testConfig())

	apply := true
	budget := 1000.0
	plan, _, err := svc.OptimalReorderPlan(context.Background(), &domain.PlanningOverrides{
		ApplyBudgetConstraints: &apply,
		MaxBudget:              &budget,
	})

	require.NoError(t, err)
	assert.True(t, plan.BudgetApplied)
	assert.LessOrEqual(t, plan.TotalCost, budget)

	// the urgent SKU comes first and gets funded before the relaxed one
	require.NotEmpty(t, plan.Lines)
	assert.Equal(t, "SKU-URGENT", plan.Lines[0].SKU)
	assert.Equal(t, 500, plan.Lines[0].ReorderQuantity)

	// lines carry the item's real unit cost, not the default, and the
	// plan totals are derived from them
	lineTotal := 0.0
	for _, line := range plan.Lines {
		assert.Equal(t, cost, line.UnitCost)
		assert.Equal(t, float64(line.ReorderQuantity)*line.UnitCost, line.LineCost)
		lineTotal += line.LineCost
	}
	assert.Equal(t, lineTotal, plan.TotalCost)
}

func TestComputeBatch_PanicIsolatedToItem(t *testing.T) {
	items := testItems()

	results, failures, err := computeBatch(context.Background(), 4, items, func(item domain.InventoryItem) string {
		if item.SKU == "SKU-EXCESS" {
			panic("bad history window")
		}
		return item.SKU
	})

	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, "SKU-EXCESS", failures[0].SKU)
	assert.Contains(t, failures[0].Reason, "bad history window")

	// the remaining items still compute, in input order
	assert.Equal(t, []string{"SKU-STEADY", "SKU-LOW", "SKU-OUT"}, results)
}

func TestUnknownSKUsAreSimplyAbsent(t *testing.T) {
	svc := NewPlanningService(&fakeRepository{items: testItems()}, testConfig())

	recs, failures, err := svc.Recommendations(context.Background(), []string{"SKU-STEADY", "SKU-GHOST"}, nil)

	require.NoError(t, err)
	assert.Empty(t, failures)
	assert.Len(t, recs, 1)
}
