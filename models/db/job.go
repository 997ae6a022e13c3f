package dbmodels

import "talentflow-backend/models"

type Job struct {
	BaseModel
	Title       string           `json:"title"`
	Slug        string           `json:"slug"` // unique across active and archived jobs
	Description string           `json:"description"`
	Status      models.JobStatus `json:"status"`
	Tags        []string         `json:"tags"`
	Order       int              `json:"order"` // display position, relative only
	Location    string           `json:"location"`
	Type        models.JobType   `json:"type"`
	Salary      *SalaryRange     `json:"salary,omitempty"`
}

type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}
