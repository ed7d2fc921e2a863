package gap

import (
	"fmt"
	"strings"
)

// Rule names reported in Flags.
const (
	RuleDecline         = "decline"
	RuleLowVolume       = "low_volume"
	RuleVeryLow         = "very_low"
	RuleUnderResearched = "under_researched"
	RuleUnderCovered    = "under_covered"
)

const (
	recentWindow         = 5
	declineRatio         = 0.5
	lowVolumeAverage     = 5.0
	underResearchedShare = 0.10
	coverageMargin       = 15
	coverageCeiling      = 50
)

// Flag records one rule that fired and the labels it named.
type Flag struct {
	Dimension Dimension `json:"dimension"`
	Rule      string    `json:"rule"`
	Labels    []string  `json:"labels"`
}

type Gaps struct {
	Insights  []string
	Questions []string
	Flags     []Flag
}

func (g *Gaps) add(flag Flag, insight, question string) {
	g.Flags = append(g.Flags, flag)
	g.Insights = append(g.Insights, insight)
	g.Questions = append(g.Questions, question)
}

// DetectGaps applies the fixed thresholds to the four dimensions. It is pure:
// identical input always yields identical output.
func DetectGaps(topic string, temporal, regional, demographic, thematic []DimensionPoint) Gaps {
	gaps := Gaps{Insights: []string{}, Questions: []string{}, Flags: []Flag{}}

	detectTemporal(&gaps, topic, temporal)

	if rule, flagged, lowest := detectLowEntries(regional); rule != "" {
		names := labelsOf(flagged)
		if rule == RuleVeryLow {
			gaps.add(Flag{DimensionRegional, rule, names},
				fmt.Sprintf("No research on %q was found for %s.", topic, joinNames(names)),
				fmt.Sprintf("What are the unique challenges and opportunities for %q research in %s?", topic, lowest.Label))
		} else {
			gaps.add(Flag{DimensionRegional, rule, names},
				fmt.Sprintf("Research on %q is scarce in %s compared with the best-studied region.", topic, joinNames(names)),
				fmt.Sprintf("How could research capacity on %q be strengthened in %s?", topic, lowest.Label))
		}
	}

	if rule, flagged, lowest := detectLowEntries(demographic); rule != "" {
		names := labelsOf(flagged)
		if rule == RuleVeryLow {
			gaps.add(Flag{DimensionDemographic, rule, names},
				fmt.Sprintf("No research on %q was found that focuses on %s.", topic, joinNames(names)),
				fmt.Sprintf("How does %q specifically affect %s?", topic, lowest.Label))
		} else {
			gaps.add(Flag{DimensionDemographic, rule, names},
				fmt.Sprintf("Research on %q rarely focuses on %s.", topic, joinNames(names)),
				fmt.Sprintf("Which interventions related to %q have been evaluated for %s?", topic, lowest.Label))
		}
	}

	if flagged, lowest := detectUnderCovered(thematic); len(flagged) > 0 {
		names := labelsOf(flagged)
		gaps.add(Flag{DimensionThematic, RuleUnderCovered, names},
			fmt.Sprintf("The %s aspects of %q appear to be under-researched.", joinNames(names), topic),
			fmt.Sprintf("What would a dedicated study of %s reveal about %q?", lowest.Label, topic))
	}

	return gaps
}

func detectTemporal(gaps *Gaps, topic string, temporal []DimensionPoint) {
	if len(temporal) == 0 {
		return
	}
	series := SortByYear(temporal)

	recent := series
	if len(series) > recentWindow {
		recent = series[len(series)-recentWindow:]
	}
	overall := average(series)
	recentAvg := average(recent)
	from, to := recent[0].Label, recent[len(recent)-1].Label

	switch {
	case overall > 0 && recentAvg < declineRatio*overall:
		gaps.add(Flag{DimensionTemporal, RuleDecline, []string{from, to}},
			fmt.Sprintf("Research output on %q has declined sharply between %s and %s: recent years average %.1f publications versus %.1f overall.",
				topic, from, to, recentAvg, overall),
			fmt.Sprintf("What has driven the decline in research on %q since %s, and which questions were left unanswered?", topic, from))
	case overall < lowVolumeAverage:
		gaps.add(Flag{DimensionTemporal, RuleLowVolume, []string{series[0].Label, to}},
			fmt.Sprintf("Overall research volume on %q is very low, averaging %.1f publications per year between %s and %s.",
				topic, overall, series[0].Label, to),
			fmt.Sprintf("What barriers have kept %q from attracting sustained research attention?", topic))
	}
}

// detectLowEntries returns the very-low entries (value 0) when there are any,
// otherwise the entries at or below 10% of the maximum. lowest is the first
// entry with the smallest value among the flagged ones.
func detectLowEntries(points []DimensionPoint) (rule string, flagged []DimensionPoint, lowest DimensionPoint) {
	if len(points) == 0 {
		return "", nil, DimensionPoint{}
	}

	maxValue := points[0].Value
	for _, p := range points[1:] {
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}
	threshold := underResearchedShare * float64(maxValue)

	var veryLow, under []DimensionPoint
	for _, p := range points {
		switch {
		case p.Value == 0:
			veryLow = append(veryLow, p)
		case p.Value > 0 && float64(p.Value) <= threshold:
			under = append(under, p)
		}
	}

	switch {
	case len(veryLow) > 0:
		return RuleVeryLow, veryLow, minPoint(veryLow)
	case len(under) > 0:
		return RuleUnderResearched, under, minPoint(under)
	default:
		return "", nil, DimensionPoint{}
	}
}

func detectUnderCovered(points []DimensionPoint) (flagged []DimensionPoint, lowest DimensionPoint) {
	if len(points) == 0 {
		return nil, DimensionPoint{}
	}
	threshold := minPoint(points).Value + coverageMargin

	for _, p := range points {
		if p.Value < threshold && p.Value < coverageCeiling {
			flagged = append(flagged, p)
		}
	}
	if len(flagged) == 0 {
		return nil, DimensionPoint{}
	}
	return flagged, minPoint(flagged)
}

func minPoint(points []DimensionPoint) DimensionPoint {
	lowest := points[0]
	for _, p := range points[1:] {
		if p.Value < lowest.Value {
			lowest = p
		}
	}
	return lowest
}

func average(points []DimensionPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	// float64 so huge parsed counts cannot wrap the sum.
	var sum float64
	for _, p := range points {
		sum += float64(p.Value)
	}
	return sum / float64(len(points))
}

func labelsOf(points []DimensionPoint) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Label
	}
	return out
}

// joinNames renders "a", "a and b" or "a, b and c".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
