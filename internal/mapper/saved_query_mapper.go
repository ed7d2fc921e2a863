package mapper

import (
	"encoding/json"
	"fmt"
	"time"

	"research-gap-be/internal/entity"
	"research-gap-be/internal/model"

	"gorm.io/datatypes"
)

type SavedQueryMapper struct{}

func NewSavedQueryMapper() *SavedQueryMapper {
	return &SavedQueryMapper{}
}

func (m *SavedQueryMapper) ToModel(e *entity.ResearchResult, position int64) (*model.SavedResearchQuery, error) {
	if e == nil {
		return nil, nil
	}

	cols := make([]datatypes.JSON, 6)
	for i, v := range []interface{}{e.Timeline, e.Regions, e.Populations, e.Subtopics, e.Insights, e.SuggestedQuestions} {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode saved query column %d: %w", i, err)
		}
		cols[i] = datatypes.JSON(raw)
	}

	return &model.SavedResearchQuery{
		Id:                 e.Id,
		Position:           position,
		Query:              e.Query,
		Summary:            e.Summary,
		Timeline:           cols[0],
		Regions:            cols[1],
		Populations:        cols[2],
		Subtopics:          cols[3],
		Insights:           cols[4],
		SuggestedQuestions: cols[5],
		Degraded:           e.Degraded,
	}, nil
}

func (m *SavedQueryMapper) ToEntity(row *model.SavedResearchQuery) (*entity.ResearchResult, error) {
	if row == nil {
		return nil, nil
	}

	e := &entity.ResearchResult{
		Id:       row.Id,
		Query:    row.Query,
		Summary:  row.Summary,
		Degraded: row.Degraded,
	}
	if !row.UpdatedAt.IsZero() {
		t := row.UpdatedAt.In(time.UTC)
		e.SavedAt = &t
	}

	targets := []struct {
		raw datatypes.JSON
		dst interface{}
	}{
		{row.Timeline, &e.Timeline},
		{row.Regions, &e.Regions},
		{row.Populations, &e.Populations},
		{row.Subtopics, &e.Subtopics},
		{row.Insights, &e.Insights},
		{row.SuggestedQuestions, &e.SuggestedQuestions},
	}
	for _, t := range targets {
		if len(t.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(t.raw, t.dst); err != nil {
			return nil, fmt.Errorf("decode saved query %s: %w", row.Id, err)
		}
	}
	return e, nil
}
