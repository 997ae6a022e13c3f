package dbmodels

import "time"

type AssessmentResponse struct {
	BaseModel
	AssessmentID     string     `json:"assessmentId"`
	CandidateID      string     `json:"candidateId"`
	JobID            string     `json:"jobId"`
	Answers          []Answer   `json:"answers"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	TimeSpentSeconds int        `json:"timeSpent"`
	Score            *float64   `json:"score,omitempty"`
}

type Answer struct {
	QuestionID string      `json:"questionId"`
	Value      interface{} `json:"value"`
}
