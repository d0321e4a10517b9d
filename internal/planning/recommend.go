package planning

import (
	"math"
	"time"

	"github.com/restockly/backend/internal/domain"
)

const (
	// Coverage assigned when there is stock but no measurable demand.
	indefiniteCoverageDays = 365

	confidenceFloor       = 0.3
	confidenceDataHorizon = 60
	excessLevelMultiplier = 1.5
)

// RecommendationEngine derives a stocking recommendation for a single item
// from its sales history, current position, and planning parameters.
type RecommendationEngine struct {
	// Clock supplies "now" for stockout-date projection. Defaults to
	// time.Now when nil.
	Clock func() time.Time
}

func NewRecommendationEngine() *RecommendationEngine {
	return &RecommendationEngine{}
}

func (re *RecommendationEngine) now() time.Time {
	if re.Clock != nil {
		return re.Clock()
	}
	return time.Now()
}

// Recommend produces the InventoryLevelRecommendation for one item under
// the given merged parameters.
func (re *RecommendationEngine) Recommend(item domain.InventoryItem, params domain.PlanningParams) domain.InventoryLevelRecommendation {
	avgDaily := meanOf(item.DailySalesHistory)
	adjustedDaily := avgDaily * params.SalesGrowthFactor * params.SeasonalityFactor

	currentCoverage := coverageDays(float64(item.Quantity), adjustedDaily, item.Quantity > 0)

	planningHorizon := params.TargetDaysOfCoverage + params.LeadTimeDays + params.SafetyStockDays
	recommendedLevel := int(math.Ceil(adjustedDaily * float64(planningHorizon)))

	reorderQty := recommendedLevel - item.AvailableQuantity()
	if reorderQty < 0 {
		reorderQty = 0
	}
	// A zero reorder stays zero; a positive one is raised to the minimum,
	// then capped at the maximum.
	if reorderQty > 0 && reorderQty < params.MinimumReorderQuantity {
		reorderQty = params.MinimumReorderQuantity
	}
	if reorderQty > params.MaximumReorderQuantity {
		reorderQty = params.MaximumReorderQuantity
	}

	recommendedCoverage := coverageDays(float64(recommendedLevel), adjustedDaily, true)

	risk := riskLevel(currentCoverage, params)

	var stockoutDate *time.Time
	if adjustedDaily > 0 && item.Quantity > 0 {
		at := re.now().Add(time.Duration(currentCoverage * 24 * float64(time.Hour)))
		stockoutDate = &at
	}

	var lostSales float64
	if adjustedDaily > 0 {
		lostSales = math.Max(0, adjustedDaily*float64(params.TargetDaysOfCoverage)-float64(item.Quantity))
	}

	return domain.InventoryLevelRecommendation{
		SKU:                              item.SKU,
		CurrentLevel:                     item.Quantity,
		RecommendedLevel:                 recommendedLevel,
		ReorderQuantity:                  reorderQty,
		Confidence:                       confidence(item.DailySalesHistory),
		DaysOfCoverageAtCurrentLevel:     currentCoverage,
		DaysOfCoverageAtRecommendedLevel: recommendedCoverage,
		RiskLevel:                        risk,
		EstimatedStockoutDate:            stockoutDate,
		EstimatedLostSales:               lostSales,
		RecommendationReason:             reason(item, recommendedLevel, reorderQty, risk),
	}
}

// coverageDays converts a stock level into days of demand. With no
// measurable demand, stock on hand reads as a year of runway.
func coverageDays(level, adjustedDaily float64, hasStock bool) float64 {
	if adjustedDaily > 0 {
		return level / adjustedDaily
	}
	if hasStock {
		return indefiniteCoverageDays
	}
	return 0
}

// riskLevel is monotonic in coverage: high inside the lead time window,
// medium inside lead time plus safety stock, low beyond.
func riskLevel(currentCoverage float64, params domain.PlanningParams) domain.RiskLevel {
	switch {
	case currentCoverage <= float64(params.LeadTimeDays):
		return domain.RiskHigh
	case currentCoverage <= float64(params.LeadTimeDays+params.SafetyStockDays):
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

func reason(item domain.InventoryItem, recommendedLevel, reorderQty int, risk domain.RiskLevel) string {
	if reorderQty > 0 {
		switch risk {
		case domain.RiskHigh:
			return "Imminent stockout risk. Reorder immediately."
		case domain.RiskMedium:
			return "Inventory below safety stock level."
		default:
			return "Restock to maintain optimal inventory level."
		}
	}

	if float64(item.Quantity) > float64(recommendedLevel)*excessLevelMultiplier {
		return "Inventory exceeds recommended level. Consider reducing stock."
	}

	return "Inventory is within optimal range."
}

// confidence blends history depth with demand stability: a full 60 days of
// low-variance history approaches 1.0, an empty history bottoms out at the
// 0.3 floor.
func confidence(history []float64) float64 {
	if len(history) == 0 {
		return confidenceFloor
	}

	dataFactor := math.Min(1, float64(len(history))/confidenceDataHorizon)

	mean := meanOf(history)
	variance := varianceOf(history, mean)

	cv := 1.0
	if mean > 0 {
		cv = math.Sqrt(variance) / mean
	}
	varianceFactor := math.Max(0, 1-math.Min(1, cv))

	return confidenceFloor + (1-confidenceFloor)*dataFactor*varianceFactor
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

func varianceOf(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var total float64
	for _, v := range values {
		d := v - mean
		total += d * d
	}
	return total / float64(len(values))
}
