package types

import (
	"github.com/google/uuid"
)

// Region represents a top-level administrative area (province or
// metropolitan city) a facility belongs to
type Region string

// String returns the string representation
func (r Region) String() string {
	return string(r)
}

// FacilityType represents the categorical classification of a health
// facility (clinic, hospital, health center, ...)
type FacilityType string

// String returns the string representation
func (t FacilityType) String() string {
	return string(t)
}

// DatasetID identifies one loaded dataset snapshot
type DatasetID string

// String returns the string representation
func (id DatasetID) String() string {
	return string(id)
}

// NewDatasetID creates a new DatasetID
func NewDatasetID() DatasetID {
	return DatasetID(uuid.New().String())
}

// ColorHex is an RGB color in "#RRGGBB" form, ready for any chart or
// frontend consumer
type ColorHex string

// String returns the string representation
func (c ColorHex) String() string {
	return string(c)
}
