package repository

import (
	"context"

	"github.com/bogun-lab/facildash/pkg/domain/interfaces"
	"github.com/bogun-lab/facildash/pkg/domain/model"
)

// Memory implements DataSource over records supplied at construction.
// Used by tests and anywhere a dataset is already in hand.
type Memory struct {
	dataset *model.Dataset
}

// NewMemory creates a memory data source. Records that are missing a
// region or facility type are excluded the same way file loaders
// exclude malformed rows.
func NewMemory(records []model.Record) interfaces.DataSource {
	var valid []model.Record
	dropped := 0
	for _, rec := range records {
		if !rec.IsValid() {
			dropped++
			continue
		}
		valid = append(valid, rec)
	}
	return &Memory{dataset: model.NewDataset(valid, dropped)}
}

// Dataset returns the dataset snapshot
func (s *Memory) Dataset(ctx context.Context) (*model.Dataset, error) {
	return s.dataset, nil
}
