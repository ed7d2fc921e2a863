// Package gap turns free-text completions into per-dimension research volume
// estimates and flags the dimensions that look under-studied.
package gap

import (
	"strconv"
	"time"
)

// Dimension is one axis of analysis.
type Dimension string

const (
	DimensionTemporal    Dimension = "temporal"
	DimensionRegional    Dimension = "regional"
	DimensionDemographic Dimension = "demographic"
	DimensionThematic    Dimension = "thematic"
)

// DimensionPoint is a (label, value) pair. Temporal labels are years,
// thematic values are coverage percentages (0-100), everything else counts.
type DimensionPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// LookbackYears is the width of the temporal window ending at the current year.
const LookbackYears = 20

var Regions = []string{
	"North America",
	"South America",
	"Europe",
	"Africa",
	"Middle East",
	"South Asia",
	"East Asia",
	"Southeast Asia",
	"Oceania",
}

var Populations = []string{
	"Children (0-12)",
	"Adolescents (13-17)",
	"Young Adults (18-24)",
	"Adults (25-64)",
	"Elderly (65+)",
	"Women",
	"Low-Income Groups",
	"Rural Communities",
	"Indigenous Peoples",
}

// YearLabels returns every year from now-LookbackYears to now, ascending.
func YearLabels(now time.Time) []string {
	end := now.Year()
	labels := make([]string, 0, LookbackYears+1)
	for y := end - LookbackYears; y <= end; y++ {
		labels = append(labels, strconv.Itoa(y))
	}
	return labels
}

// Values extracts the numeric column of points.
func Values(points []DimensionPoint) []int {
	out := make([]int, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}
