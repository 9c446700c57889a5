package model

import (
	"time"

	"github.com/bogun-lab/facildash/pkg/domain/types"
)

// Record is one row of the source dataset. Only the region and facility
// type columns participate in aggregation; every other column is ignored
// at load time.
type Record struct {
	Region       types.Region
	FacilityType types.FacilityType
}

// IsValid reports whether the record carries both fields required for
// aggregation. Loaders drop invalid records instead of failing the load.
func (r Record) IsValid() bool {
	return r.Region != "" && r.FacilityType != ""
}

// Dataset is an immutable snapshot of loaded records. It is built once by
// a data source and shared read-only for the life of the process; nothing
// mutates it after construction.
type Dataset struct {
	ID          types.DatasetID
	Records     []Record
	LoadedAt    time.Time
	DroppedRows int
}

// NewDataset creates a dataset snapshot from loaded records. dropped is
// the number of malformed rows the loader excluded.
func NewDataset(records []Record, dropped int) *Dataset {
	return &Dataset{
		ID:          types.NewDatasetID(),
		Records:     records,
		LoadedAt:    time.Now(),
		DroppedRows: dropped,
	}
}

// Size returns the number of usable records in the snapshot
func (d *Dataset) Size() int {
	return len(d.Records)
}
