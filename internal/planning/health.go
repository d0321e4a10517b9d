package planning

import (
	"math"

	"github.com/restockly/backend/internal/domain"
)

const (
	overagedAgeDays     = 365
	longTermFeeRiskDays = 270
	lowCoverageDays     = 15
	excessCoverageDays  = 120
	targetCoverageDays  = 90
)

// HealthAssessorConfig carries the cost constants for health assessment.
type HealthAssessorConfig struct {
	StorageRatePerUnit float64 // monthly storage cost per on-hand unit
	DefaultUnitCost    float64 // unit cost used when the item carries none
}

// HealthAssessor classifies an item's inventory position and derives
// excess- and storage-cost figures plus remediation actions.
type HealthAssessor struct {
	cfg HealthAssessorConfig
}

func NewHealthAssessor(cfg HealthAssessorConfig) *HealthAssessor {
	return &HealthAssessor{cfg: cfg}
}

// Assess produces the health snapshot for one item, given its velocity
// metrics computed over the same call.
func (ha *HealthAssessor) Assess(item domain.InventoryItem, velocity domain.SalesVelocityMetrics) domain.InventoryHealthAssessment {
	status := healthStatus(item, velocity)

	var sellThrough float64
	if item.Quantity > 0 {
		sellThrough = velocity.UnitsSold30Days / float64(item.Quantity)
	}

	targetInventory := int(math.Ceil(velocity.AverageDailySales * targetCoverageDays))
	excessUnits := item.Quantity - targetInventory
	if excessUnits < 0 {
		excessUnits = 0
	}

	var excessPercent float64
	if item.Quantity > 0 {
		excessPercent = float64(excessUnits) / float64(item.Quantity) * 100
	}

	return domain.InventoryHealthAssessment{
		SKU:                        item.SKU,
		HealthStatus:               status,
		InventoryAgeDays:           item.InventoryAgeDays,
		AtRiskOfLongTermStorageFee: item.InventoryAgeDays > longTermFeeRiskDays,
		ExcessInventoryPercent:     excessPercent,
		ExcessInventoryCost:        float64(excessUnits) * item.UnitCost(ha.cfg.DefaultUnitCost),
		MonthlyStorageCost:         ha.cfg.StorageRatePerUnit * float64(item.Quantity),
		SellThroughRate:            sellThrough,
		RecommendedActions:         recommendedActions(status),
	}
}

// healthStatus applies the status precedence: first match wins.
func healthStatus(item domain.InventoryItem, velocity domain.SalesVelocityMetrics) domain.HealthStatus {
	switch {
	case item.Quantity == 0:
		return domain.HealthOutOfStock
	case velocity.AverageDailySales == 0:
		return domain.HealthSlowMoving
	case item.InventoryAgeDays > overagedAgeDays:
		return domain.HealthOveraged
	case velocity.AverageDailySales*lowCoverageDays > float64(item.Quantity):
		return domain.HealthLow
	case velocity.AverageDailySales*excessCoverageDays < float64(item.Quantity):
		return domain.HealthExcess
	default:
		return domain.HealthHealthy
	}
}

func recommendedActions(status domain.HealthStatus) []string {
	switch status {
	case domain.HealthExcess:
		return []string{
			"Run a promotion to accelerate sell-through.",
			"Review pricing against recent demand.",
		}
	case domain.HealthLow:
		return []string{
			"Expedite a restock order before stock runs out.",
		}
	case domain.HealthOutOfStock:
		return []string{
			"Restock immediately.",
			"Review replenishment process to prevent recurrence.",
		}
	case domain.HealthSlowMoving:
		return []string{
			"Increase marketing exposure for this SKU.",
			"Consider liquidation if demand does not recover.",
		}
	case domain.HealthOveraged:
		return []string{
			"Create a removal order for aged units.",
			"Run a clearance promotion before long-term storage fees apply.",
		}
	default:
		return []string{"No action needed."}
	}
}
