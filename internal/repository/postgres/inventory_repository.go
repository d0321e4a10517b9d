package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/restockly/backend/internal/domain"
)

// InventoryRepository reads items and their daily sales history from
// postgres. Histories come back most-recent-first, aggregated in SQL.
type InventoryRepository struct {
	db *DB
}

func NewInventoryRepository(db *DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

const itemSelect = `
	SELECT i.sku,
	       COALESCE(i.asin, '') AS asin,
	       i.quantity,
	       i.reserved_quantity,
	       i.inbound_quantity,
	       i.price,
	       i.cost,
	       COALESCE(i.inventory_age_days, 0) AS inventory_age_days,
	       COALESCE(
	           (SELECT array_agg(s.units_sold::float8 ORDER BY s.sales_date DESC)
	              FROM item_daily_sales s
	             WHERE s.sku = i.sku),
	           '{}'::float8[]
	       ) AS daily_sales_history
	  FROM inventory_items i`

type itemRow struct {
	SKU              string          `db:"sku"`
	ASIN             string          `db:"asin"`
	Quantity         int             `db:"quantity"`
	ReservedQuantity int             `db:"reserved_quantity"`
	InboundQuantity  int             `db:"inbound_quantity"`
	Price            *float64        `db:"price"`
	Cost             *float64        `db:"cost"`
	InventoryAgeDays int             `db:"inventory_age_days"`
	History          pq.Float64Array `db:"daily_sales_history"`
}

func (r *InventoryRepository) FetchItems(ctx context.Context, skus []string) ([]domain.InventoryItem, error) {
	query := itemSelect + ` WHERE i.sku = ANY($1) ORDER BY i.sku`

	var rows []itemRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(skus)); err != nil {
		return nil, fmt.Errorf("fetch inventory items: %w", err)
	}

	return toItems(rows), nil
}

func (r *InventoryRepository) FetchAll(ctx context.Context) ([]domain.InventoryItem, error) {
	query := itemSelect + ` ORDER BY i.sku`

	var rows []itemRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("fetch all inventory items: %w", err)
	}

	return toItems(rows), nil
}

func toItems(rows []itemRow) []domain.InventoryItem {
	items := make([]domain.InventoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.InventoryItem{
			SKU:               row.SKU,
			ASIN:              row.ASIN,
			Quantity:          row.Quantity,
			ReservedQuantity:  row.ReservedQuantity,
			InboundQuantity:   row.InboundQuantity,
			Price:             row.Price,
			Cost:              row.Cost,
			InventoryAgeDays:  row.InventoryAgeDays,
			DailySalesHistory: row.History,
		})
	}
	return items
}
