package model

import "github.com/m-mizutani/goerr/v2"

// Default column headers of the public dataset this service was built
// for (보건복지부 전국 지역보건의료기관 현황).
const (
	DefaultRegionColumn       = "시도"
	DefaultFacilityTypeColumn = "기관유형"
)

// ColumnMapping names the dataset headers that hold the region and the
// facility type. Loaded from an optional YAML file for datasets that use
// different headers.
type ColumnMapping struct {
	Region       string `yaml:"region"`
	FacilityType string `yaml:"facility_type"`
}

// DefaultColumnMapping returns the mapping for the original dataset
func DefaultColumnMapping() ColumnMapping {
	return ColumnMapping{
		Region:       DefaultRegionColumn,
		FacilityType: DefaultFacilityTypeColumn,
	}
}

// Validate validates the mapping
func (c *ColumnMapping) Validate() error {
	if c.Region == "" {
		return goerr.New("region column name is required")
	}
	if c.FacilityType == "" {
		return goerr.New("facility type column name is required")
	}
	return nil
}
