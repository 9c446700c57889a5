package interfaces

import (
	"context"

	"github.com/bogun-lab/facildash/pkg/domain/model"
)

// DataSource hands out the loaded dataset snapshot. Implementations load
// once and return the same immutable *model.Dataset afterwards; callers
// must treat it as read-only.
type DataSource interface {
	Dataset(ctx context.Context) (*model.Dataset, error)
}
