package dto

// SaveResearchQueryRequest is a ResearchResult posted back by the UI. Id is
// optional; a new one is generated when absent.
type SaveResearchQueryRequest struct {
	Id                 string           `json:"id" validate:"omitempty,max=64"`
	Query              string           `json:"query" validate:"required,min=3,max=100"`
	Summary            string           `json:"summary"`
	Timeline           []TimelineData   `json:"timeline"`
	Regions            []RegionData     `json:"regions"`
	Populations        []PopulationData `json:"populations"`
	Subtopics          []SubtopicData   `json:"subtopics"`
	Insights           []string         `json:"insights"`
	SuggestedQuestions []string         `json:"suggestedQuestions"`
	Degraded           bool             `json:"degraded"`
}

type HistoryResponse struct {
	Topics []string `json:"topics"`
}
