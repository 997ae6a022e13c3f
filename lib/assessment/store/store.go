package assessmentstore

import (
	"time"

	"github.com/google/uuid"

	"talentflow-backend/lib/apperr"
	"talentflow-backend/lib/recordstore"
	assessmentapimodels "talentflow-backend/models/api/assessment"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	GetByJob(jobID string) (*dbmodels.Assessment, error)
	Upsert(jobID string, data assessmentapimodels.AssessmentData) (*dbmodels.Assessment, error)
	Delete(jobID string) error
	SubmitResponse(jobID string, req assessmentapimodels.SubmitRequest) (*dbmodels.AssessmentResponse, error)
	ListResponses(jobID string) ([]dbmodels.AssessmentResponse, error)
}

func NewInstance(store *recordstore.Store) Provider {
	return &impl{store: store}
}

type impl struct {
	store *recordstore.Store
}

func (i impl) table() recordstore.Table {
	return i.store.Table(recordstore.TableAssessments)
}

func (i impl) GetByJob(jobID string) (*dbmodels.Assessment, error) {
	// keyed by job id: one assessment per job is enforced here
	return recordstore.GetAs[dbmodels.Assessment](i.table(), jobID)
}

func (i impl) Upsert(jobID string, data assessmentapimodels.AssessmentData) (*dbmodels.Assessment, error) {
	now := time.Now().UTC()
	rec, err := i.GetByJob(jobID)
	if err != nil {
		if !apperr.IsKind(err, apperr.KindNotFound) {
			return nil, err
		}
		rec = &dbmodels.Assessment{
			BaseModel: dbmodels.BaseModel{
				ID:        jobID,
				CreatedAt: now,
			},
			JobID: jobID,
		}
	}
	rec.Title = data.Title
	rec.Description = data.Description
	rec.Sections = normalizeSections(data.Sections)
	rec.IsPublished = data.IsPublished
	rec.TimeLimitMinutes = data.TimeLimitMinutes
	rec.UpdatedAt = now
	if err := recordstore.SetAs(i.table(), jobID, *rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// normalizeSections assigns ids to new sections/questions/options and keeps
// the declared ordering dense.
func normalizeSections(sections []dbmodels.Section) []dbmodels.Section {
	out := make([]dbmodels.Section, len(sections))
	for si, section := range sections {
		if section.ID == "" {
			section.ID = uuid.NewString()
		}
		section.Order = si
		for qi := range section.Questions {
			if section.Questions[qi].ID == "" {
				section.Questions[qi].ID = uuid.NewString()
			}
			section.Questions[qi].Order = qi
			for oi := range section.Questions[qi].Options {
				if section.Questions[qi].Options[oi].ID == "" {
					section.Questions[qi].Options[oi].ID = uuid.NewString()
				}
			}
		}
		out[si] = section
	}
	return out
}

func (i impl) Delete(jobID string) error {
	if _, err := i.GetByJob(jobID); err != nil {
		return err
	}
	return i.table().Delete(jobID)
}

func (i impl) SubmitResponse(jobID string, req assessmentapimodels.SubmitRequest) (*dbmodels.AssessmentResponse, error) {
	assessment, err := i.GetByJob(jobID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	rec := dbmodels.AssessmentResponse{
		BaseModel: dbmodels.BaseModel{
			ID:        uuid.NewString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		AssessmentID:     assessment.ID,
		CandidateID:      req.CandidateID,
		JobID:            jobID,
		Answers:          req.Answers,
		CompletedAt:      &now,
		TimeSpentSeconds: req.TimeSpentSeconds,
	}
	responses := i.store.Table(recordstore.TableResponses)
	if err := recordstore.SetAs(responses, rec.ID, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListResponses(jobID string) ([]dbmodels.AssessmentResponse, error) {
	all, err := recordstore.ListAs[dbmodels.AssessmentResponse](i.store.Table(recordstore.TableResponses))
	if err != nil {
		return nil, err
	}
	out := []dbmodels.AssessmentResponse{}
	for _, rec := range all {
		if rec.JobID == jobID {
			out = append(out, rec)
		}
	}
	return out, nil
}
