package dbmodels

import "talentflow-backend/models"

// Assessment is keyed by its job: one assessment per job, enforced by the
// store (the record id is the job id).
type Assessment struct {
	BaseModel
	JobID            string    `json:"jobId"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Sections         []Section `json:"sections"`
	IsPublished      bool      `json:"isPublished"`
	TimeLimitMinutes *int      `json:"timeLimitMinutes,omitempty"`
}

type Section struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Order       int        `json:"order"`
	Questions   []Question `json:"questions"`
}

// Question is a union tagged by Type; only the fields of the matching variant
// are populated.
type Question struct {
	ID          string              `json:"id"`
	Type        models.QuestionType `json:"type"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Required    bool                `json:"required"`
	Order       int                 `json:"order"`

	// single-choice / multi-choice
	Options       []Option `json:"options,omitempty"`
	MaxSelections *int     `json:"maxSelections,omitempty"`

	// short-text / long-text
	Placeholder string `json:"placeholder,omitempty"`
	MaxLength   *int   `json:"maxLength,omitempty"`

	// numeric
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Step *float64 `json:"step,omitempty"`

	// file-upload
	AcceptedTypes []string `json:"acceptedTypes,omitempty"`
	MaxSizeMB     *int     `json:"maxSize,omitempty"`
}

type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}
