package dbmodels

import (
	"time"

	"talentflow-backend/models"
)

type Candidate struct {
	BaseModel
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone,omitempty"`
	Stage    models.Stage    `json:"stage"`
	JobID    string          `json:"jobId"`
	Notes    []Note          `json:"notes"`
	Timeline []TimelineEvent `json:"timeline"`
}

// Note is append-only: once attached to a candidate it is never edited.
type Note struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// TimelineEvent records one entry of the candidate history. Every stage
// transition appends exactly one stage_change event.
type TimelineEvent struct {
	ID            string              `json:"id"`
	Type          models.TimelineType `json:"type"`
	PreviousStage models.Stage        `json:"previousStage,omitempty"`
	NewStage      models.Stage        `json:"newStage,omitempty"`
	Note          string              `json:"note,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}
