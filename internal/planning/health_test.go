package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/restockly/backend/internal/domain"
)

func testAssessor() *HealthAssessor {
	return NewHealthAssessor(HealthAssessorConfig{
		StorageRatePerUnit: 0.75,
		DefaultUnitCost:    10,
	})
}

func assess(t *testing.T, item domain.InventoryItem) domain.InventoryHealthAssessment {
	t.Helper()
	velocity := NewVelocityAnalyzer().Analyze(item, 90)
	return testAssessor().Assess(item, velocity)
}

func TestHealthStatus_Precedence(t *testing.T) {
	tests := []struct {
		name string
		item domain.InventoryItem
		want domain.HealthStatus
	}{
		{
			name: "no stock wins over everything",
			item: domain.InventoryItem{Quantity: 0, InventoryAgeDays: 500, DailySalesHistory: flatHistory(10, 90)},
			want: domain.HealthOutOfStock,
		},
		{
			name: "no sales beats old age",
			item: domain.InventoryItem{Quantity: 50, InventoryAgeDays: 500},
			want: domain.HealthSlowMoving,
		},
		{
			name: "overaged with sales",
			item: domain.InventoryItem{Quantity: 100, InventoryAgeDays: 400, DailySalesHistory: flatHistory(2, 90)},
			want: domain.HealthOveraged,
		},
		{
			name: "low cover",
			item: domain.InventoryItem{Quantity: 100, DailySalesHistory: flatHistory(10, 90)},
			want: domain.HealthLow,
		},
		{
			name: "excess cover",
			item: domain.InventoryItem{Quantity: 200, DailySalesHistory: flatHistory(1, 90)},
			want: domain.HealthExcess,
		},
		{
			name: "healthy",
			item: domain.InventoryItem{Quantity: 60, DailySalesHistory: flatHistory(1, 90)},
			want: domain.HealthHealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := assess(t, tt.item)
			assert.Equal(t, tt.want, got.HealthStatus)
			assert.NotEmpty(t, got.RecommendedActions)
		})
	}
}

func TestHealthStatus_OutOfStockIffZeroQuantity(t *testing.T) {
	histories := [][]float64{nil, flatHistory(0, 90), flatHistory(50, 90)}

	for _, history := range histories {
		out := assess(t, domain.InventoryItem{Quantity: 0, DailySalesHistory: history})
		assert.Equal(t, domain.HealthOutOfStock, out.HealthStatus)

		in := assess(t, domain.InventoryItem{Quantity: 1, DailySalesHistory: history})
		assert.NotEqual(t, domain.HealthOutOfStock, in.HealthStatus)
	}
}

func TestHealthAssessment_ExcessFigures(t *testing.T) {
	// 1/day against 200 on hand: 90-day target is 90 units, 110 excess.
	item := domain.InventoryItem{Quantity: 200, DailySalesHistory: flatHistory(1, 90)}

	out := assess(t, item)

	assert.Equal(t, domain.HealthExcess, out.HealthStatus)
	assert.Equal(t, 55.0, out.ExcessInventoryPercent)
	assert.Equal(t, 1100.0, out.ExcessInventoryCost, "missing item cost falls back to the default")
	assert.Equal(t, 150.0, out.MonthlyStorageCost)
	assert.InDelta(t, 30.0/200.0, out.SellThroughRate, 1e-9)
}

func TestHealthAssessment_ItemCostOverridesDefault(t *testing.T) {
	cost := 4.0
	item := domain.InventoryItem{Quantity: 200, Cost: &cost, DailySalesHistory: flatHistory(1, 90)}

	out := assess(t, item)

	assert.Equal(t, 440.0, out.ExcessInventoryCost)
}

func TestHealthAssessment_LongTermStorageFeeRisk(t *testing.T) {
	base := domain.InventoryItem{Quantity: 100, DailySalesHistory: flatHistory(1, 90)}

	base.InventoryAgeDays = 270
	assert.False(t, assess(t, base).AtRiskOfLongTermStorageFee)

	base.InventoryAgeDays = 271
	assert.True(t, assess(t, base).AtRiskOfLongTermStorageFee)
}
