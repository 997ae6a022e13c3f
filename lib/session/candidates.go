package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"talentflow-backend/lib/client"
	"talentflow-backend/lib/querycache"
	"talentflow-backend/lib/uistore"
	"talentflow-backend/models"
	candidateapimodels "talentflow-backend/models/api/candidate"
	dbmodels "talentflow-backend/models/db"
)

const candidatesPrefix = "candidates"

func candidatesListKey(filter candidateapimodels.CandidateFilter) string {
	return querycache.Key(candidatesPrefix, "list", filter.CacheKey())
}

func (s *Session) LoadCandidates(ctx context.Context, filter candidateapimodels.CandidateFilter) ([]dbmodels.Candidate, error) {
	s.ui.Candidates.SetLoading(true)
	defer s.ui.Candidates.SetLoading(false)

	key := candidatesListKey(filter)
	s.mu.Lock()
	s.candKey = key
	s.mu.Unlock()

	value, err := s.cache.Query(ctx, key, func(ctx context.Context) (interface{}, error) {
		page, err := s.api.ListCandidates(ctx, filter)
		if err != nil {
			return nil, err
		}
		return page, nil
	})
	if err != nil {
		return nil, err
	}
	s.applyCandidatesPage(value.(client.Paged[dbmodels.Candidate]))
	return s.ui.Candidates.Items(), nil
}

func (s *Session) applyCandidatesPage(page client.Paged[dbmodels.Candidate]) {
	merged, kept := uistore.MergeOptimistic(page.Items, s.ui.Candidates.Items(),
		func(rec dbmodels.Candidate) string { return rec.ID }, s.pendingIDs())
	s.ui.Candidates.SetAll(merged)
	s.ui.Candidates.SetMeta(uistore.Meta{
		Total:    int(page.Total) + kept,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
}

func (s *Session) refreshCandidates(ctx context.Context) {
	prefix := querycache.Key(candidatesPrefix)
	s.cache.InvalidatePrefix(prefix)
	if err := s.cache.Refetch(ctx, prefix); err != nil {
		log.WithError(err).Warn("failed to refresh candidate queries")
		return
	}
	s.mu.Lock()
	key := s.candKey
	s.mu.Unlock()
	if key == "" {
		return
	}
	if value, ok := s.cache.Peek(key); ok {
		s.applyCandidatesPage(value.(client.Paged[dbmodels.Candidate]))
	}
}

func (s *Session) CreateCandidate(ctx context.Context, data candidateapimodels.CandidateData) (*dbmodels.Candidate, error) {
	tempID := uuid.NewString()
	result, err := s.cache.Mutate(ctx, querycache.Mutation{
		Optimistic: func() querycache.Restore {
			snap := s.ui.Candidates.Snapshot()
			now := time.Now().UTC()
			local := dbmodels.Candidate{
				BaseModel: dbmodels.BaseModel{ID: tempID, CreatedAt: now, UpdatedAt: now},
				Name:      data.Name,
				Email:     data.Email,
				Phone:     data.Phone,
				Stage:     data.Stage,
				JobID:     data.JobID,
			}
			if local.Stage == "" {
				local.Stage = models.StageApplied
			}
			s.markPending(tempID)
			s.ui.Candidates.Add(local)
			meta := s.ui.Candidates.Meta()
			meta.Total++
			s.ui.Candidates.SetMeta(meta)
			return func() { s.ui.Candidates.Restore(snap) }
		},
		Commit: func(ctx context.Context) (interface{}, error) {
			return s.api.CreateCandidate(ctx, data)
		},
		OnSuccess: func(ctx context.Context, seq uint64, result interface{}) {
			rec := result.(*dbmodels.Candidate)
			s.ui.Candidates.RemoveByID(tempID)
			if rec != nil {
				s.ui.Candidates.Add(*rec)
			}
		},
		OnSettled: func(ctx context.Context) {
			s.unmarkPending(tempID)
			s.refreshCandidates(ctx)
		},
	})
	if err != nil {
		return nil, err
	}
	return result.(*dbmodels.Candidate), nil
}

func (s *Session) UpdateCandidate(ctx context.Context, id string, patch candidateapimodels.CandidatePatch) (*dbmodels.Candidate, error) {
	result, err := s.cache.Mutate(ctx, querycache.Mutation{
		Optimistic: func() querycache.Restore {
			snap := s.ui.Candidates.Snapshot()
			s.ui.Candidates.UpdateByID(id, func(rec *dbmodels.Candidate) {
				applyCandidatePatch(rec, patch)
				rec.UpdatedAt = time.Now().UTC()
			})
			return func() { s.ui.Candidates.Restore(snap) }
		},
		Commit: func(ctx context.Context) (interface{}, error) {
			return s.api.UpdateCandidate(ctx, id, patch)
		},
		OnSuccess: func(ctx context.Context, seq uint64, result interface{}) {
			if rec := result.(*dbmodels.Candidate); rec != nil {
				s.ui.Candidates.UpdateByID(id, func(local *dbmodels.Candidate) { *local = *rec })
			}
		},
		OnSettled: func(ctx context.Context) {
			s.refreshCandidates(ctx)
			s.cache.Invalidate(timelineKey(id))
		},
	})
	if err != nil {
		return nil, err
	}
	return result.(*dbmodels.Candidate), nil
}

// MoveCandidate is the Kanban drag: a stage-only patch. The card moves
// columns immediately and slides back when the commit ultimately fails.
func (s *Session) MoveCandidate(ctx context.Context, id string, stage models.Stage) (*dbmodels.Candidate, error) {
	return s.UpdateCandidate(ctx, id, candidateapimodels.CandidatePatch{Stage: &stage})
}

func applyCandidatePatch(rec *dbmodels.Candidate, patch candidateapimodels.CandidatePatch) {
	if patch.Name != nil {
		rec.Name = *patch.Name
	}
	if patch.Email != nil {
		rec.Email = *patch.Email
	}
	if patch.Phone != nil {
		rec.Phone = *patch.Phone
	}
	if patch.Stage != nil {
		rec.Stage = *patch.Stage
	}
	if patch.JobID != nil {
		rec.JobID = *patch.JobID
	}
}

func (s *Session) AddCandidateNote(ctx context.Context, id string, note candidateapimodels.NoteData) (*dbmodels.Candidate, error) {
	result, err := s.cache.Mutate(ctx, querycache.Mutation{
		Optimistic: func() querycache.Restore {
			snap := s.ui.Candidates.Snapshot()
			s.ui.Candidates.UpdateByID(id, func(rec *dbmodels.Candidate) {
				rec.Notes = append(rec.Notes, dbmodels.Note{
					ID:        uuid.NewString(),
					Author:    note.Author,
					Text:      note.Text,
					CreatedAt: time.Now().UTC(),
				})
			})
			return func() { s.ui.Candidates.Restore(snap) }
		},
		Commit: func(ctx context.Context) (interface{}, error) {
			return s.api.AddCandidateNote(ctx, id, note)
		},
		OnSuccess: func(ctx context.Context, seq uint64, result interface{}) {
			if rec := result.(*dbmodels.Candidate); rec != nil {
				s.ui.Candidates.UpdateByID(id, func(local *dbmodels.Candidate) { *local = *rec })
			}
		},
		OnSettled: func(ctx context.Context) {
			s.refreshCandidates(ctx)
			s.cache.Invalidate(timelineKey(id))
		},
	})
	if err != nil {
		return nil, err
	}
	return result.(*dbmodels.Candidate), nil
}

func (s *Session) DeleteCandidate(ctx context.Context, id string) error {
	_, err := s.cache.Mutate(ctx, querycache.Mutation{
		Optimistic: func() querycache.Restore {
			snap := s.ui.Candidates.Snapshot()
			if s.ui.Candidates.RemoveByID(id) {
				meta := s.ui.Candidates.Meta()
				meta.Total--
				s.ui.Candidates.SetMeta(meta)
			}
			return func() { s.ui.Candidates.Restore(snap) }
		},
		Commit: func(ctx context.Context) (interface{}, error) {
			return nil, s.api.DeleteCandidate(ctx, id)
		},
		OnSettled: func(ctx context.Context) {
			s.refreshCandidates(ctx)
		},
	})
	return err
}

func timelineKey(id string) string {
	return querycache.Key(candidatesPrefix, "timeline", id)
}

// CandidateTimeline loads the history through the cache; stage changes and
// notes invalidate it, so repeated opens of the profile drawer stay cheap.
func (s *Session) CandidateTimeline(ctx context.Context, id string) ([]dbmodels.TimelineEvent, error) {
	value, err := s.cache.Query(ctx, timelineKey(id), func(ctx context.Context) (interface{}, error) {
		return s.api.CandidateTimeline(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return value.([]dbmodels.TimelineEvent), nil
}
