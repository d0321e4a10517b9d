package repository

import (
	"context"

	"github.com/restockly/backend/internal/domain"
)

// InventoryRepository is the single upstream contract of the planning
// engine. FetchAll is an explicit whole-catalog operation rather than an
// empty-SKU-list sentinel on FetchItems.
type InventoryRepository interface {
	FetchItems(ctx context.Context, skus []string) ([]domain.InventoryItem, error)
	FetchAll(ctx context.Context) ([]domain.InventoryItem, error)
}
