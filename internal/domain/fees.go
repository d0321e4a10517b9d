package domain

// FeeEstimate approximates the per-unit carrying cost of a SKU. This is a
// coarse cost model with flat rates, not a live pricing lookup.
type FeeEstimate struct {
	SKU                       string  `json:"sku"`
	FulfillmentFeePerUnit     float64 `json:"fulfillment_fee_per_unit"`
	MonthlyStorageFeePerUnit  float64 `json:"monthly_storage_fee_per_unit"`
	LongTermStorageFeePerUnit float64 `json:"long_term_storage_fee_per_unit,omitempty"`
	ReferralFeePercent        float64 `json:"referral_fee_percent"`
	EstimatedStorageDays      int     `json:"estimated_storage_days"`
	TotalFeesPerUnit          float64 `json:"total_fees_per_unit"`
}
