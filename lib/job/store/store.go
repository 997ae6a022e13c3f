package jobstore

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"talentflow-backend/lib/apperr"
	"talentflow-backend/lib/ordering"
	"talentflow-backend/lib/recordstore"
	"talentflow-backend/models"
	jobapimodels "talentflow-backend/models/api/job"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	Create(data jobapimodels.JobData) (*dbmodels.Job, error)
	GetByID(id string) (*dbmodels.Job, error)
	List(filter jobapimodels.JobFilter) (list []dbmodels.Job, total int64, err error)
	Update(id string, patch jobapimodels.JobPatch) (*dbmodels.Job, error)
	Archive(id string) (*dbmodels.Job, error)
	Reorder(fromOrder, toOrder int) ([]dbmodels.Job, error)
}

func NewInstance(store *recordstore.Store) Provider {
	return &impl{store: store}
}

type impl struct {
	store *recordstore.Store
}

func (i impl) table() recordstore.Table {
	return i.store.Table(recordstore.TableJobs)
}

func (i impl) Create(data jobapimodels.JobData) (*dbmodels.Job, error) {
	all, err := recordstore.ListAs[dbmodels.Job](i.table())
	if err != nil {
		return nil, err
	}
	maxOrder := -1
	for _, job := range all {
		if job.Slug == data.Slug {
			return nil, apperr.Errorf(apperr.KindConflict, "slug already in use: %v", data.Slug)
		}
		if job.Order > maxOrder {
			maxOrder = job.Order
		}
	}

	now := time.Now().UTC()
	rec := dbmodels.Job{
		BaseModel: dbmodels.BaseModel{
			ID:        uuid.NewString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       data.Title,
		Slug:        data.Slug,
		Description: data.Description,
		Status:      data.Status,
		Tags:        data.Tags,
		Order:       maxOrder + 1,
		Location:    data.Location,
		Type:        data.Type,
		Salary:      data.Salary,
	}
	if rec.Status == "" {
		rec.Status = models.JobStatusActive
	}
	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	if err := recordstore.SetAs(i.table(), rec.ID, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByID(id string) (*dbmodels.Job, error) {
	return recordstore.GetAs[dbmodels.Job](i.table(), id)
}

func (i impl) List(filter jobapimodels.JobFilter) ([]dbmodels.Job, int64, error) {
	all, err := recordstore.ListAs[dbmodels.Job](i.table())
	if err != nil {
		return nil, 0, err
	}

	matched := make([]dbmodels.Job, 0, len(all))
	for _, job := range all {
		if !matchesStatus(job, filter.Status) {
			continue
		}
		if !matchesSearch(job, filter.Search) {
			continue
		}
		matched = append(matched, job)
	}
	sortJobs(matched, filter.Sort, filter.SortDirection)

	total := int64(len(matched))
	page, pageSize := filter.GetPage()
	start := (page - 1) * pageSize
	if start >= len(matched) {
		return []dbmodels.Job{}, total, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func matchesStatus(job dbmodels.Job, status string) bool {
	if status == "" || status == string(models.JobStatusAll) {
		return true
	}
	return string(job.Status) == status
}

func matchesSearch(job dbmodels.Job, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(job.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(job.Description), needle) {
		return true
	}
	for _, tag := range job.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// sortJobs orders by the requested field: strings lexicographic, dates by
// timestamp, missing values last regardless of direction. The default is the
// board order.
func sortJobs(list []dbmodels.Job, field string, dir models.SortDirection) {
	desc := dir == models.SortDesc
	sort.SliceStable(list, func(a, b int) bool {
		left, right := list[a], list[b]
		switch field {
		case "title":
			return lessString(left.Title, right.Title, desc)
		case "slug":
			return lessString(left.Slug, right.Slug, desc)
		case "status":
			return lessString(string(left.Status), string(right.Status), desc)
		case "createdAt":
			return lessTime(left.CreatedAt, right.CreatedAt, desc)
		case "updatedAt":
			return lessTime(left.UpdatedAt, right.UpdatedAt, desc)
		default:
			if desc {
				return left.Order > right.Order
			}
			return left.Order < right.Order
		}
	})
}

func lessString(a, b string, desc bool) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la == "" || lb == "" {
		return lb == "" && la != "" // missing sorts last
	}
	if desc {
		return la > lb
	}
	return la < lb
}

func lessTime(a, b time.Time, desc bool) bool {
	if a.IsZero() || b.IsZero() {
		return b.IsZero() && !a.IsZero()
	}
	if desc {
		return a.After(b)
	}
	return a.Before(b)
}

func (i impl) Update(id string, patch jobapimodels.JobPatch) (*dbmodels.Job, error) {
	rec, err := recordstore.GetAs[dbmodels.Job](i.table(), id)
	if err != nil {
		return nil, err
	}
	if patch.Slug != nil && *patch.Slug != rec.Slug {
		all, err := recordstore.ListAs[dbmodels.Job](i.table())
		if err != nil {
			return nil, err
		}
		for _, other := range all {
			if other.ID != id && other.Slug == *patch.Slug {
				return nil, apperr.Errorf(apperr.KindConflict, "slug already in use: %v", *patch.Slug)
			}
		}
	}
	patch.Apply(rec)
	rec.UpdatedAt = time.Now().UTC()
	if err := recordstore.SetAs(i.table(), id, *rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Archive soft-deletes: the record stays in storage with status archived.
func (i impl) Archive(id string) (*dbmodels.Job, error) {
	rec, err := recordstore.GetAs[dbmodels.Job](i.table(), id)
	if err != nil {
		return nil, err
	}
	rec.Status = models.JobStatusArchived
	rec.UpdatedAt = time.Now().UTC()
	if err := recordstore.SetAs(i.table(), id, *rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Reorder applies the shared shift plan inside one transaction; either every
// affected job is renumbered or none is.
func (i impl) Reorder(fromOrder, toOrder int) ([]dbmodels.Job, error) {
	affected := []dbmodels.Job{}
	err := i.store.InTx(func(tx *recordstore.Store) error {
		table := tx.Table(recordstore.TableJobs)
		all, err := recordstore.ListAs[dbmodels.Job](table)
		if err != nil {
			return err
		}
		entries := make([]ordering.Entry, 0, len(all))
		byID := make(map[string]dbmodels.Job, len(all))
		for _, job := range all {
			entries = append(entries, ordering.Entry{ID: job.ID, Order: job.Order})
			byID[job.ID] = job
		}
		changes, err := ordering.Plan(entries, fromOrder, toOrder)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		for _, change := range changes {
			job := byID[change.ID]
			job.Order = change.Order
			job.UpdatedAt = now
			if err := recordstore.SetAs(table, job.ID, job); err != nil {
				return err
			}
			affected = append(affected, job)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(affected, func(a, b int) bool { return affected[a].Order < affected[b].Order })
	return affected, nil
}
