package planning

import (
	"fmt"
	"math"
	"sort"

	"github.com/restockly/backend/internal/domain"
)

// ReorderPlanOptimizer fits a batch of recommendations under a global
// budget and unit cap. The allocation is a single-pass greedy walk in risk
// order, a known approximation rather than a global optimum.
type ReorderPlanOptimizer struct {
	// DefaultUnitCost is used when a SKU is missing from the cost lookup.
	DefaultUnitCost float64
}

func NewReorderPlanOptimizer(defaultUnitCost float64) *ReorderPlanOptimizer {
	return &ReorderPlanOptimizer{DefaultUnitCost: defaultUnitCost}
}

// Optimize returns the recommendations with reorder quantities reduced
// where needed so that total cost never exceeds maxBudget and total units
// never exceed maxUnits. Highest-risk, soonest-to-stock-out SKUs are
// funded first.
func (o *ReorderPlanOptimizer) Optimize(recs []domain.InventoryLevelRecommendation, unitCosts map[string]float64, maxBudget float64, maxUnits int) []domain.InventoryLevelRecommendation {
	ordered := make([]domain.InventoryLevelRecommendation, len(recs))
	copy(ordered, recs)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].RiskLevel != ordered[j].RiskLevel {
			return ordered[i].RiskLevel.Severity() < ordered[j].RiskLevel.Severity()
		}
		return ordered[i].DaysOfCoverageAtCurrentLevel < ordered[j].DaysOfCoverageAtCurrentLevel
	})

	remainingBudget := maxBudget
	remainingUnits := maxUnits

	for i := range ordered {
		rec := &ordered[i]
		if rec.ReorderQuantity <= 0 {
			continue
		}

		unitCost := o.DefaultUnitCost
		if c, ok := unitCosts[rec.SKU]; ok {
			unitCost = c
		}

		fullCost := float64(rec.ReorderQuantity) * unitCost
		if fullCost <= remainingBudget && rec.ReorderQuantity <= remainingUnits {
			remainingBudget -= fullCost
			remainingUnits -= rec.ReorderQuantity
			continue
		}

		affordable := rec.ReorderQuantity
		if unitCost > 0 {
			if byBudget := remainingBudget / unitCost; byBudget < float64(affordable) {
				affordable = int(math.Floor(byBudget))
			}
		}
		reduced := minInt(affordable, remainingUnits, rec.ReorderQuantity)
		if reduced < 0 {
			reduced = 0
		}

		if reduced == 0 {
			rec.RecommendationReason = "No reorder due to budget constraints"
		} else {
			rec.RecommendationReason = fmt.Sprintf("Reorder reduced from %d to %d due to budget constraints", rec.ReorderQuantity, reduced)
		}

		remainingBudget -= float64(reduced) * unitCost
		remainingUnits -= reduced
		rec.ReorderQuantity = reduced
	}

	return ordered
}

func minInt(values ...int) int {
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
