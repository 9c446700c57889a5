package model

import "github.com/bogun-lab/facildash/pkg/domain/types"

// ChartItem is one bar of a rendered chart: a label, its display value,
// the raw count for tooltips, and the assigned color. The shape is kept
// flat so any chart or UI consumer can take it as-is.
type ChartItem struct {
	Label string         `json:"label"`
	Value float64        `json:"value"`
	Count int            `json:"count"`
	Color types.ColorHex `json:"color"`
}

// ChartData is everything a presentation layer needs to draw one
// region's bar chart.
type ChartData struct {
	Region types.Region `json:"region"`
	Items  []ChartItem  `json:"items"`
}
