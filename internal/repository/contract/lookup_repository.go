package contract

import (
	"context"

	"maverik-copilot-be/internal/entity"
)

// LookupRepository reads the seeded survey catalogs by table name.
type LookupRepository interface {
	FindAll(ctx context.Context, catalog string) ([]*entity.Lookup, error)
}
