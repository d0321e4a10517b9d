package domain

// InventoryItem is the raw per-SKU input the planning engine works from.
// It is read-only as far as the engine is concerned; every derived record
// is a fresh snapshot computed from an item plus planning parameters.
type InventoryItem struct {
	SKU               string    `json:"sku" db:"sku"`
	ASIN              string    `json:"asin,omitempty" db:"asin"`
	Quantity          int       `json:"quantity" db:"quantity"`
	ReservedQuantity  int       `json:"reserved_quantity" db:"reserved_quantity"`
	InboundQuantity   int       `json:"inbound_quantity" db:"inbound_quantity"`
	Price             *float64  `json:"price,omitempty" db:"price"`
	Cost              *float64  `json:"cost,omitempty" db:"cost"`
	InventoryAgeDays  int       `json:"inventory_age_days" db:"inventory_age_days"`
	DailySalesHistory []float64 `json:"daily_sales_history" db:"-"` // most-recent-first, variable length
}

// AvailableQuantity is on-hand stock minus reserved and inbound units,
// floored at zero.
func (it InventoryItem) AvailableQuantity() int {
	available := it.Quantity - (it.ReservedQuantity + it.InboundQuantity)
	if available < 0 {
		return 0
	}
	return available
}

// UnitCost returns the item cost, falling back to the given default when
// the item carries no cost figure.
func (it InventoryItem) UnitCost(fallback float64) float64 {
	if it.Cost != nil {
		return *it.Cost
	}
	return fallback
}
