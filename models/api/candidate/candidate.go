package candidateapimodels

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"talentflow-backend/models"
	apimodels "talentflow-backend/models/api"
)

type CandidateData struct {
	Name  string       `json:"name"`
	Email string       `json:"email"`
	Phone string       `json:"phone,omitempty"`
	Stage models.Stage `json:"stage"`
	JobID string       `json:"jobId"`
}

func (d CandidateData) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("candidate name is required")
	}
	if !strings.Contains(d.Email, "@") {
		return errors.Errorf("invalid email: %v", d.Email)
	}
	if d.JobID == "" {
		return errors.New("candidate must reference a job")
	}
	if d.Stage != "" {
		if err := d.Stage.IsValid(); err != nil {
			return err
		}
	}
	return nil
}

// CandidatePatch carries a partial update; a non-nil Stage triggers the
// stage-change timeline append.
type CandidatePatch struct {
	Name  *string       `json:"name,omitempty"`
	Email *string       `json:"email,omitempty"`
	Phone *string       `json:"phone,omitempty"`
	Stage *models.Stage `json:"stage,omitempty"`
	JobID *string       `json:"jobId,omitempty"`
}

func (p CandidatePatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return errors.New("candidate name must not be empty")
	}
	if p.Email != nil && !strings.Contains(*p.Email, "@") {
		return errors.Errorf("invalid email: %v", *p.Email)
	}
	if p.Stage != nil {
		if err := p.Stage.IsValid(); err != nil {
			return err
		}
	}
	return nil
}

type NoteData struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

func (d NoteData) Validate() error {
	if strings.TrimSpace(d.Author) == "" {
		return errors.New("note author is required")
	}
	if strings.TrimSpace(d.Text) == "" {
		return errors.New("note text is required")
	}
	return nil
}

type CandidateFilter struct {
	Search        string               `json:"search" query:"search"`
	Stage         string               `json:"stage" query:"stage"` // stage name or all; empty means all
	JobID         string               `json:"jobId" query:"jobId"`
	Sort          string               `json:"sort" query:"sort"`
	SortDirection models.SortDirection `json:"sortDirection" query:"sortDirection"`
	apimodels.Pagination
}

func (f CandidateFilter) CacheKey() string {
	page, pageSize := f.GetPage()
	return fmt.Sprintf("search=%s&stage=%s&job=%s&sort=%s&dir=%s&page=%d&size=%d",
		f.Search, f.Stage, f.JobID, f.Sort, f.SortDirection, page, pageSize)
}
