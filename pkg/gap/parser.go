package gap

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ParseResult is the outcome of a best-effort parse. An empty result is a
// normal outcome, not an error.
type ParseResult struct {
	Points  []DimensionPoint
	Skipped int // lines that matched the shape but named an unknown label
}

func (r ParseResult) Empty() bool {
	return len(r.Points) == 0
}

var (
	yearCountPattern = regexp.MustCompile(`\b(\d{4}):\s*(-?\d{1,3}(?:,\d{3})+\b|-?\d+)`)
	groupedNumber    = regexp.MustCompile(`^-?\d{1,3}(?:,\d{3})+$`)
	coveragePattern  = regexp.MustCompile(`([^:]+):\s*(\d+)%`)
	labelNoise       = regexp.MustCompile(`^(?:[-*•#>]+|\d+[.)])\s*`)
)

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

func labelSet(labels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	return set
}

// parseCount reads an integer, accepting thousands separators ("1,200").
func parseCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if groupedNumber.MatchString(raw) {
		raw = strings.ReplaceAll(raw, ",", "")
	}
	return strconv.Atoi(raw)
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// ParseYearCounts collects every "YYYY: N" pair whose year is in labels.
// The first value seen for a year wins.
func ParseYearCounts(text string, labels []string) ParseResult {
	known := labelSet(labels)
	seen := make(map[string]bool)
	result := ParseResult{Points: []DimensionPoint{}}

	for _, line := range splitLines(text) {
		for _, m := range yearCountPattern.FindAllStringSubmatch(line, -1) {
			year := m[1]
			if _, ok := known[year]; !ok {
				result.Skipped++
				continue
			}
			if seen[year] {
				continue
			}
			count, err := parseCount(m[2])
			if err != nil {
				continue
			}
			seen[year] = true
			result.Points = append(result.Points, DimensionPoint{Label: year, Value: nonNegative(count)})
		}
	}
	return result
}

// ParseLabeledCounts accepts "Label: N" lines whose label exactly matches
// one of labels. A value that is not an integer counts as 0.
func ParseLabeledCounts(text string, labels []string) ParseResult {
	known := labelSet(labels)
	seen := make(map[string]bool)
	result := ParseResult{Points: []DimensionPoint{}}

	for _, line := range splitLines(text) {
		parts := strings.SplitN(strings.TrimSpace(line), ": ", 2)
		if len(parts) != 2 {
			continue
		}
		label := parts[0]
		if _, ok := known[label]; !ok {
			result.Skipped++
			continue
		}
		if seen[label] {
			continue
		}
		seen[label] = true

		count, err := parseCount(parts[1])
		if err != nil {
			count = 0
		}
		result.Points = append(result.Points, DimensionPoint{Label: label, Value: nonNegative(count)})
	}
	return result
}

// ParseCoverage collects "Subtopic: N%" lines. There is no fixed label set,
// so every match is kept; coverage is clamped to 0..100.
func ParseCoverage(text string) ParseResult {
	seen := make(map[string]bool)
	result := ParseResult{Points: []DimensionPoint{}}

	for _, line := range splitLines(text) {
		m := coveragePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		label := cleanLabel(m[1])
		if label == "" || seen[label] {
			continue
		}
		coverage, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if coverage > 100 {
			coverage = 100
		}
		seen[label] = true
		result.Points = append(result.Points, DimensionPoint{Label: label, Value: coverage})
	}
	return result
}

func cleanLabel(raw string) string {
	label := strings.TrimSpace(raw)
	label = labelNoise.ReplaceAllString(label, "")
	return strings.TrimSpace(strings.Trim(label, "*_ "))
}

// Backfill appends a zero-value point for every label missing from points.
func Backfill(points []DimensionPoint, labels []string) []DimensionPoint {
	present := make(map[string]bool, len(points))
	for _, p := range points {
		present[p.Label] = true
	}
	out := make([]DimensionPoint, 0, len(labels))
	out = append(out, points...)
	for _, l := range labels {
		if !present[l] {
			out = append(out, DimensionPoint{Label: l, Value: 0})
		}
	}
	return out
}

// SortByYear orders temporal points ascending by their numeric label.
func SortByYear(points []DimensionPoint) []DimensionPoint {
	out := append([]DimensionPoint(nil), points...)
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := strconv.Atoi(out[i].Label)
		b, _ := strconv.Atoi(out[j].Label)
		return a < b
	})
	return out
}
