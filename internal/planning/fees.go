package planning

import (
	"math"

	"github.com/restockly/backend/internal/domain"
)

const (
	longTermFeeAgeDays = 365
	maxStorageDays     = 365
)

// FeeEstimatorConfig carries the flat rates of the carrying-cost model.
type FeeEstimatorConfig struct {
	FulfillmentFeePerUnit     float64
	MonthlyStorageFeePerUnit  float64
	LongTermStorageFeePerUnit float64
	ReferralFeePercent        float64
}

// FeeEstimator approximates per-unit carrying cost from flat rates and the
// item's projected storage duration. Deliberately coarse: no live pricing.
type FeeEstimator struct {
	cfg FeeEstimatorConfig
}

func NewFeeEstimator(cfg FeeEstimatorConfig) *FeeEstimator {
	return &FeeEstimator{cfg: cfg}
}

// Estimate computes the fee breakdown for one item.
func (fe *FeeEstimator) Estimate(item domain.InventoryItem) domain.FeeEstimate {
	storageDays := maxStorageDays
	if avgDaily := meanOf(item.DailySalesHistory); avgDaily > 0 {
		storageDays = int(math.Round(float64(item.Quantity) / avgDaily))
		if storageDays > maxStorageDays {
			storageDays = maxStorageDays
		}
	}

	var longTerm float64
	if item.InventoryAgeDays > longTermFeeAgeDays {
		longTerm = fe.cfg.LongTermStorageFeePerUnit
	}

	total := fe.cfg.FulfillmentFeePerUnit +
		fe.cfg.MonthlyStorageFeePerUnit*(float64(storageDays)/30) +
		longTerm

	return domain.FeeEstimate{
		SKU:                       item.SKU,
		FulfillmentFeePerUnit:     fe.cfg.FulfillmentFeePerUnit,
		MonthlyStorageFeePerUnit:  fe.cfg.MonthlyStorageFeePerUnit,
		LongTermStorageFeePerUnit: longTerm,
		ReferralFeePercent:        fe.cfg.ReferralFeePercent,
		EstimatedStorageDays:      storageDays,
		TotalFeesPerUnit:          total,
	}
}
