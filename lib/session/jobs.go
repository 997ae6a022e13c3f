package session

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"talentflow-backend/lib/client"
	"talentflow-backend/lib/ordering"
	"talentflow-backend/lib/querycache"
	"talentflow-backend/lib/uistore"
	"talentflow-backend/models"
	jobapimodels "talentflow-backend/models/api/job"
	dbmodels "talentflow-backend/models/db"
)

const jobsPrefix = "jobs"

func jobsListKey(filter jobapimodels.JobFilter) string {
	return querycache.Key(jobsPrefix, "list", filter.CacheKey())
}

// LoadJobs fetches the filtered page through the cache and merges it into the
// UI list. Optimistic records the server does not know yet survive the merge
// and count towards the reported total.
func (s *Session) LoadJobs(ctx context.Context, filter jobapimodels.JobFilter) ([]dbmodels.Job, error) {
	s.ui.Jobs.SetLoading(true)
	defer s.ui.Jobs.SetLoading(false)

	key := jobsListKey(filter)
	s.mu.Lock()
	s.jobsKey = key
	s.mu.Unlock()

	value, err := s.cache.Query(ctx, key, func(ctx context.Context) (interface{}, error) {
		page, err := s.api.ListJobs(ctx, filter)
		if err != nil {
			return nil, err
		}
		return page, nil
	})
	if err != nil {
		return nil, err
	}
	s.applyJobsPage(value.(client.Paged[dbmodels.Job]))
	return s.ui.Jobs.Items(), nil
}

func (s *Session) applyJobsPage(page client.Paged[dbmodels.Job]) {
	merged, kept := uistore.MergeOptimistic(page.Items, s.ui.Jobs.Items(),
		func(rec dbmodels.Job) string { return rec.ID }, s.pendingIDs())
	s.ui.Jobs.SetAll(merged)
	s.ui.Jobs.SetMeta(uistore.Meta{
		Total:    int(page.Total) + kept,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
}

// refreshJobs drops every cached job query, reloads the active ones, and
// re-applies the page the UI is looking at. Runs from onSettled, so the board
// converges on server truth after every write.
func (s *Session) refreshJobs(ctx context.Context) {
	prefix := querycache.Key(jobsPrefix)
	s.cache.InvalidatePrefix(prefix)
	if err := s.cache.Refetch(ctx, prefix); err != nil {
		log.WithError(err).Warn("failed to refresh job queries")
		return
	}
	s.mu.Lock()
	key := s.jobsKey
	s.mu.Unlock()
	if key == "" {
		return
	}
	if value, ok := s.cache.Peek(key); ok {
		s.applyJobsPage(value.(client.Paged[dbmodels.Job]))
	}
}

// CreateJob shows the new job immediately under a temporary id and swaps in
// the server record when the commit lands. A failed commit removes it again.
func (s *Session) CreateJob(ctx context.Context, data jobapimodels.JobData) (*dbmodels.Job, error) {
	tempID := uuid.NewString()
	result, err := s.cache.Mutate(ctx, querycache.Mutation{
		Optimistic: func() querycache.Restore {
			snap := s.ui.Jobs.Snapshot()
			now := time.Now().UTC()
			local := dbmodels.Job{
				BaseModel:   dbmodels.BaseModel{ID: tempID, CreatedAt: now, UpdatedAt: now},
				Title:       data.Title,
				Slug:        data.Slug,
				Description: data.Description,
				Status:      data.Status,
				Tags:        data.Tags,
				Order:       s.nextJobOrder(),
				Location:    data.Location,
				Type:        data.Type,
				Salary:      data.Salary,
			}
			if local.Status == "" {
				local.Status = models.JobStatusActive
			}
			s.markPending(tempID)
			s.ui.Jobs.Add(local)
			meta := s.ui.Jobs.Meta()
			meta.Total++
			s.ui.Jobs.SetMeta(meta)
			return func() { s.ui.Jobs.Restore(snap) }
		},
		Commit: func(ctx context.Context) (interface{}, error) {
			return s.api.CreateJob(ctx, data)
		},
		OnSuccess: func(ctx context.Context, seq uint64, result interface{}) {
			rec := result.(*dbmodels.Job)
			s.ui.Jobs.RemoveByID(tempID)
			if rec != nil {
				s.ui.Jobs.Add(*rec)
			}
		},
		OnSettled: func(ctx context.Context) {
			s.unmarkPending(tempID)
			s.refreshJobs(ctx)
		},
	})
	if err != nil {
		return nil, err
	}
	return result.(*dbmodels.Job), nil
}

func (s *Session) nextJobOrder() int {
	next := 0
	for _, rec := range s.ui.Jobs.Items() {
		if rec.Order >= next {
			next = rec.Order + 1
		}
	}
	return next
}

func (s *Session) UpdateJob(ctx context.Context, id string, patch jobapimodels.JobPatch) (*dbmodels.Job, error) {
	result, err := s.cache.Mutate(ctx, querycache.Mutation{
		Optimistic: func() querycache.Restore {
			snap := s.ui.Jobs.Snapshot()
			s.ui.Jobs.UpdateByID(id, func(rec *dbmodels.Job) {
				patch.Apply(rec)
				rec.UpdatedAt = time.Now().UTC()
			})
			return func() { s.ui.Jobs.Restore(snap) }
		},
		Commit: func(ctx context.Context) (interface{}, error) {
			return s.api.UpdateJob(ctx, id, patch)
		},
		OnSuccess: func(ctx context.Context, seq uint64, result interface{}) {
			if rec := result.(*dbmodels.Job); rec != nil {
				s.ui.Jobs.UpdateByID(id, func(local *dbmodels.Job) { *local = *rec })
			}
		},
		OnSettled: func(ctx context.Context) {
			s.refreshJobs(ctx)
		},
	})
	if err != nil {
		return nil, err
	}
	return result.(*dbmodels.Job), nil
}

// ArchiveJob flips the job to archived in place; the record stays on the
// board until a filtered reload drops it.
func (s *Session) ArchiveJob(ctx context.Context, id string) (*dbmodels.Job, error) {
	result, err := s.cache.Mutate(ctx, querycache.Mutation{
		Optimistic: func() querycache.Restore {
			snap := s.ui.Jobs.Snapshot()
			s.ui.Jobs.UpdateByID(id, func(rec *dbmodels.Job) {
				rec.Status = models.JobStatusArchived
				rec.UpdatedAt = time.Now().UTC()
			})
			return func() { s.ui.Jobs.Restore(snap) }
		},
		Commit: func(ctx context.Context) (interface{}, error) {
			return s.api.ArchiveJob(ctx, id)
		},
		OnSuccess: func(ctx context.Context, seq uint64, result interface{}) {
			if rec := result.(*dbmodels.Job); rec != nil {
				s.ui.Jobs.UpdateByID(id, func(local *dbmodels.Job) { *local = *rec })
			}
		},
		OnSettled: func(ctx context.Context) {
			s.refreshJobs(ctx)
		},
	})
	if err != nil {
		return nil, err
	}
	return result.(*dbmodels.Job), nil
}

// ReorderJob moves the job at fromOrder to toOrder. The same shift the server
// applies runs against the local list first, so the board lands in its final
// shape before the response arrives and does not snap back after it.
// The lock covers the plan as well as the commit: the plan must read the
// board state the previous reorder left behind, or overlapping shifts
// compound into orders the server never produced.
func (s *Session) ReorderJob(ctx context.Context, fromOrder, toOrder int) ([]dbmodels.Job, error) {
	s.reorderMu.Lock()
	defer s.reorderMu.Unlock()

	items := s.ui.Jobs.Items()
	entries := make([]ordering.Entry, 0, len(items))
	movedID := ""
	for _, rec := range items {
		entries = append(entries, ordering.Entry{ID: rec.ID, Order: rec.Order})
		if rec.Order == fromOrder {
			movedID = rec.ID
		}
	}
	changes, err := ordering.Plan(entries, fromOrder, toOrder)
	if err != nil {
		return nil, err
	}

	req := jobapimodels.ReorderRequest{FromOrder: fromOrder, ToOrder: toOrder}
	result, err := s.cache.Mutate(ctx, querycache.Mutation{
		Optimistic: func() querycache.Restore {
			snap := s.ui.Jobs.Snapshot()
			s.applyJobOrders(changes)
			return func() { s.ui.Jobs.Restore(snap) }
		},
		Commit: func(ctx context.Context) (interface{}, error) {
			return s.api.ReorderJobs(ctx, movedID, req)
		},
		OnSuccess: func(ctx context.Context, seq uint64, result interface{}) {
			affected := result.([]dbmodels.Job)
			for _, rec := range affected {
				srv := rec
				s.ui.Jobs.UpdateByID(srv.ID, func(local *dbmodels.Job) { *local = srv })
			}
			s.sortJobsByOrder()
		},
		OnSettled: func(ctx context.Context) {
			s.refreshJobs(ctx)
		},
	})
	if err != nil {
		return nil, err
	}
	return result.([]dbmodels.Job), nil
}

func (s *Session) applyJobOrders(changes []ordering.Change) {
	for _, change := range changes {
		order := change.Order
		s.ui.Jobs.UpdateByID(change.ID, func(rec *dbmodels.Job) { rec.Order = order })
	}
	s.sortJobsByOrder()
}

func (s *Session) sortJobsByOrder() {
	items := s.ui.Jobs.Items()
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	s.ui.Jobs.SetAll(items)
}
