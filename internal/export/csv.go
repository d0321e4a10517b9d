package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/restockly/backend/internal/domain"
)

var planHeader = []string{
	"sku",
	"risk_level",
	"days_of_coverage",
	"reorder_quantity",
	"unit_cost",
	"line_cost",
	"reason",
}

// PlanCSV renders a reorder plan as CSV, one line per plan line in plan
// order, using the costs the plan was priced at.
func PlanCSV(plan *domain.ReorderPlan) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(planHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, line := range plan.Lines {
		record := []string{
			line.SKU,
			string(line.RiskLevel),
			strconv.FormatFloat(line.DaysOfCoverageAtCurrentLevel, 'f', 1, 64),
			strconv.Itoa(line.ReorderQuantity),
			strconv.FormatFloat(line.UnitCost, 'f', 2, 64),
			strconv.FormatFloat(line.LineCost, 'f', 2, 64),
			line.RecommendationReason,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record for %s: %w", line.SKU, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
