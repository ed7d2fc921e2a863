package entity

import "time"

type TimelinePoint struct {
	Year  int
	Count int
}

type NamedCount struct {
	Name  string
	Count int
}

type SubtopicCoverage struct {
	Name     string
	Coverage int
}

// ResearchResult is one completed exploration of a topic. Id is empty until
// the result is saved.
type ResearchResult struct {
	Id                 string
	Query              string
	Summary            string
	Timeline           []TimelinePoint
	Regions            []NamedCount
	Populations        []NamedCount
	Subtopics          []SubtopicCoverage
	Insights           []string
	SuggestedQuestions []string
	Degraded           bool
	SavedAt            *time.Time
}
