package dto

import "time"

type TopicQuery struct {
	Topic string `query:"topic" validate:"required,min=3,max=100"`
}

type TimelineData struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

type RegionData struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type PopulationData struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type SubtopicData struct {
	Name     string `json:"name"`
	Coverage int    `json:"coverage"`
}

// ResearchResultResponse is the shape the explorer UI renders and stores.
type ResearchResultResponse struct {
	Id                 string           `json:"id,omitempty"`
	Query              string           `json:"query"`
	Summary            string           `json:"summary"`
	Timeline           []TimelineData   `json:"timeline"`
	Regions            []RegionData     `json:"regions"`
	Populations        []PopulationData `json:"populations"`
	Subtopics          []SubtopicData   `json:"subtopics"`
	Insights           []string         `json:"insights"`
	SuggestedQuestions []string         `json:"suggestedQuestions"`
	Degraded           bool             `json:"degraded"`
	SavedAt            *time.Time       `json:"savedAt,omitempty"`
}

type QuestionGroupResponse struct {
	Group     string   `json:"group"`
	Questions []string `json:"questions"`
}

type InsightsResponse struct {
	Insights           []string                `json:"insights"`
	SuggestedQuestions []string                `json:"suggestedQuestions"`
	QuestionGroups     []QuestionGroupResponse `json:"questionGroups"`
	Degraded           bool                    `json:"degraded"`
}
