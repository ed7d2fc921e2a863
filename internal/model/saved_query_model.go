package model

import (
	"time"

	"gorm.io/datatypes"
)

// SavedResearchQuery stores one saved ResearchResult. Dimension arrays are
// kept as JSON columns; Position preserves insertion order.
type SavedResearchQuery struct {
	Id                 string         `gorm:"type:varchar(64);primaryKey"`
	Position           int64          `gorm:"not null;index"`
	Query              string         `gorm:"type:varchar(255);not null"`
	Summary            string         `gorm:"type:text"`
	Timeline           datatypes.JSON `gorm:"type:jsonb"`
	Regions            datatypes.JSON `gorm:"type:jsonb"`
	Populations        datatypes.JSON `gorm:"type:jsonb"`
	Subtopics          datatypes.JSON `gorm:"type:jsonb"`
	Insights           datatypes.JSON `gorm:"type:jsonb"`
	SuggestedQuestions datatypes.JSON `gorm:"type:jsonb"`
	Degraded           bool           `gorm:"not null;default:false"`
	CreatedAt          time.Time      `gorm:"autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime"`
}

func (SavedResearchQuery) TableName() string {
	return "saved_research_queries"
}
