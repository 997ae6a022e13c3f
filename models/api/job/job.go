package jobapimodels

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"talentflow-backend/models"
	apimodels "talentflow-backend/models/api"
	dbmodels "talentflow-backend/models/db"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// JobData is the create payload (id and timestamps are assigned by the store).
type JobData struct {
	Title       string                `json:"title"`
	Slug        string                `json:"slug"`
	Description string                `json:"description"`
	Status      models.JobStatus      `json:"status"`
	Tags        []string              `json:"tags"`
	Location    string                `json:"location"`
	Type        models.JobType        `json:"type"`
	Salary      *dbmodels.SalaryRange `json:"salary,omitempty"`
}

func (d JobData) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("job title is required")
	}
	if !slugRe.MatchString(d.Slug) {
		return errors.Errorf("slug must be url-safe: %v", d.Slug)
	}
	if d.Status != "" {
		if err := d.Status.IsValid(); err != nil {
			return err
		}
	}
	if d.Type != "" {
		if err := d.Type.IsValid(); err != nil {
			return err
		}
	}
	if d.Salary != nil && d.Salary.Min > d.Salary.Max {
		return errors.New("salary range min exceeds max")
	}
	return nil
}

// JobPatch carries a partial update; nil fields are left untouched.
type JobPatch struct {
	Title       *string               `json:"title,omitempty"`
	Slug        *string               `json:"slug,omitempty"`
	Description *string               `json:"description,omitempty"`
	Status      *models.JobStatus     `json:"status,omitempty"`
	Tags        *[]string             `json:"tags,omitempty"`
	Location    *string               `json:"location,omitempty"`
	Type        *models.JobType       `json:"type,omitempty"`
	Salary      *dbmodels.SalaryRange `json:"salary,omitempty"`
}

func (p JobPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return errors.New("job title must not be empty")
	}
	if p.Slug != nil && !slugRe.MatchString(*p.Slug) {
		return errors.Errorf("slug must be url-safe: %v", *p.Slug)
	}
	if p.Status != nil {
		if err := p.Status.IsValid(); err != nil {
			return err
		}
	}
	if p.Type != nil {
		if err := p.Type.IsValid(); err != nil {
			return err
		}
	}
	return nil
}

// Apply merges the patch into rec (shallow, field by field).
func (p JobPatch) Apply(rec *dbmodels.Job) {
	if p.Title != nil {
		rec.Title = *p.Title
	}
	if p.Slug != nil {
		rec.Slug = *p.Slug
	}
	if p.Description != nil {
		rec.Description = *p.Description
	}
	if p.Status != nil {
		rec.Status = *p.Status
	}
	if p.Tags != nil {
		rec.Tags = *p.Tags
	}
	if p.Location != nil {
		rec.Location = *p.Location
	}
	if p.Type != nil {
		rec.Type = *p.Type
	}
	if p.Salary != nil {
		rec.Salary = p.Salary
	}
}

type JobFilter struct {
	Search        string               `json:"search" query:"search"`
	Status        string               `json:"status" query:"status"` // active/archived/all; empty means all
	Sort          string               `json:"sort" query:"sort"`
	SortDirection models.SortDirection `json:"sortDirection" query:"sortDirection"`
	apimodels.Pagination
}

// CacheKey is the stable string form used to address cached list results.
func (f JobFilter) CacheKey() string {
	page, pageSize := f.GetPage()
	return fmt.Sprintf("search=%s&status=%s&sort=%s&dir=%s&page=%d&size=%d",
		f.Search, f.Status, f.Sort, f.SortDirection, page, pageSize)
}

type ReorderRequest struct {
	FromOrder int `json:"fromOrder"`
	ToOrder   int `json:"toOrder"`
}

func (r ReorderRequest) Validate() error {
	if r.FromOrder == r.ToOrder {
		return errors.New("fromOrder and toOrder must differ")
	}
	return nil
}
