package session

import (
	"context"
	"time"

	"talentflow-backend/lib/querycache"
	assessmentapimodels "talentflow-backend/models/api/assessment"
	dbmodels "talentflow-backend/models/db"
)

const assessmentsPrefix = "assessments"

func assessmentKey(jobID string) string {
	return querycache.Key(assessmentsPrefix, jobID)
}

func (s *Session) LoadAssessment(ctx context.Context, jobID string) (*dbmodels.Assessment, error) {
	value, err := s.cache.Query(ctx, assessmentKey(jobID), func(ctx context.Context) (interface{}, error) {
		return s.api.GetAssessment(ctx, jobID)
	})
	if err != nil {
		return nil, err
	}
	rec := value.(*dbmodels.Assessment)
	if rec != nil {
		s.upsertAssessment(*rec)
	}
	return rec, nil
}

func (s *Session) upsertAssessment(rec dbmodels.Assessment) {
	if !s.ui.Assessments.UpdateByID(rec.JobID, func(local *dbmodels.Assessment) { *local = rec }) {
		s.ui.Assessments.Add(rec)
	}
}

// SaveAssessment persists the builder state. The local copy updates
// immediately so the builder never flickers back to the previous draft.
func (s *Session) SaveAssessment(ctx context.Context, jobID string, data assessmentapimodels.AssessmentData) (*dbmodels.Assessment, error) {
	result, err := s.cache.Mutate(ctx, querycache.Mutation{
		Optimistic: func() querycache.Restore {
			snap := s.ui.Assessments.Snapshot()
			now := time.Now().UTC()
			local := dbmodels.Assessment{
				BaseModel:        dbmodels.BaseModel{ID: jobID, CreatedAt: now, UpdatedAt: now},
				JobID:            jobID,
				Title:            data.Title,
				Description:      data.Description,
				Sections:         data.Sections,
				IsPublished:      data.IsPublished,
				TimeLimitMinutes: data.TimeLimitMinutes,
			}
			if existing, ok := s.ui.Assessments.Get(jobID); ok {
				local.CreatedAt = existing.CreatedAt
			}
			s.upsertAssessment(local)
			return func() { s.ui.Assessments.Restore(snap) }
		},
		Commit: func(ctx context.Context) (interface{}, error) {
			return s.api.SaveAssessment(ctx, jobID, data)
		},
		OnSuccess: func(ctx context.Context, seq uint64, result interface{}) {
			if rec := result.(*dbmodels.Assessment); rec != nil {
				s.upsertAssessment(*rec)
				s.cache.SetAt(assessmentKey(jobID), seq, rec)
			}
		},
		OnSettled: func(ctx context.Context) {
			s.cache.Invalidate(assessmentKey(jobID))
		},
	})
	if err != nil {
		return nil, err
	}
	return result.(*dbmodels.Assessment), nil
}

func (s *Session) SubmitAssessment(ctx context.Context, jobID string, req assessmentapimodels.SubmitRequest) (*dbmodels.AssessmentResponse, error) {
	return s.api.SubmitAssessment(ctx, jobID, req)
}

func (s *Session) AssessmentResponses(ctx context.Context, jobID string) ([]dbmodels.AssessmentResponse, error) {
	return s.api.ListAssessmentResponses(ctx, jobID)
}
