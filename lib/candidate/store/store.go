package candidatestore

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"talentflow-backend/lib/recordstore"
	"talentflow-backend/models"
	candidateapimodels "talentflow-backend/models/api/candidate"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	Create(data candidateapimodels.CandidateData) (*dbmodels.Candidate, error)
	GetByID(id string) (*dbmodels.Candidate, error)
	List(filter candidateapimodels.CandidateFilter) (list []dbmodels.Candidate, total int64, err error)
	ListAll(filter candidateapimodels.CandidateFilter) ([]dbmodels.Candidate, error)
	Update(id string, patch candidateapimodels.CandidatePatch) (*dbmodels.Candidate, error)
	AddNote(id string, note candidateapimodels.NoteData) (*dbmodels.Candidate, error)
	Delete(id string) error
	Timeline(id string) ([]dbmodels.TimelineEvent, error)
}

func NewInstance(store *recordstore.Store) Provider {
	return &impl{store: store}
}

type impl struct {
	store *recordstore.Store
}

func (i impl) table() recordstore.Table {
	return i.store.Table(recordstore.TableCandidates)
}

func (i impl) Create(data candidateapimodels.CandidateData) (*dbmodels.Candidate, error) {
	now := time.Now().UTC()
	rec := dbmodels.Candidate{
		BaseModel: dbmodels.BaseModel{
			ID:        uuid.NewString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:  data.Name,
		Email: data.Email,
		Phone: data.Phone,
		Stage: data.Stage,
		JobID: data.JobID,
		Notes: []dbmodels.Note{},
		Timeline: []dbmodels.TimelineEvent{{
			ID:        uuid.NewString(),
			Type:      models.TimelineAdded,
			NewStage:  data.Stage,
			CreatedAt: now,
		}},
	}
	if rec.Stage == "" {
		rec.Stage = models.StageApplied
		rec.Timeline[0].NewStage = rec.Stage
	}
	if err := recordstore.SetAs(i.table(), rec.ID, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByID(id string) (*dbmodels.Candidate, error) {
	return recordstore.GetAs[dbmodels.Candidate](i.table(), id)
}

func (i impl) List(filter candidateapimodels.CandidateFilter) ([]dbmodels.Candidate, int64, error) {
	matched, err := i.ListAll(filter)
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(matched))
	page, pageSize := filter.GetPage()
	start := (page - 1) * pageSize
	if start >= len(matched) {
		return []dbmodels.Candidate{}, total, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// ListAll applies filter and sort but no pagination (export uses it).
func (i impl) ListAll(filter candidateapimodels.CandidateFilter) ([]dbmodels.Candidate, error) {
	all, err := recordstore.ListAs[dbmodels.Candidate](i.table())
	if err != nil {
		return nil, err
	}
	matched := make([]dbmodels.Candidate, 0, len(all))
	for _, c := range all {
		if filter.JobID != "" && c.JobID != filter.JobID {
			continue
		}
		if filter.Stage != "" && filter.Stage != "all" && string(c.Stage) != filter.Stage {
			continue
		}
		if !matchesSearch(c, filter.Search) {
			continue
		}
		matched = append(matched, c)
	}
	sortCandidates(matched, filter.Sort, filter.SortDirection)
	return matched, nil
}

func matchesSearch(c dbmodels.Candidate, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(c.Name), needle) ||
		strings.Contains(strings.ToLower(c.Email), needle)
}

func sortCandidates(list []dbmodels.Candidate, field string, dir models.SortDirection) {
	desc := dir == models.SortDesc
	sort.SliceStable(list, func(a, b int) bool {
		left, right := list[a], list[b]
		switch field {
		case "name":
			return lessString(left.Name, right.Name, desc)
		case "email":
			return lessString(left.Email, right.Email, desc)
		case "stage":
			return lessString(string(left.Stage), string(right.Stage), desc)
		case "updatedAt":
			return lessTime(left.UpdatedAt, right.UpdatedAt, desc)
		default:
			return lessTime(left.CreatedAt, right.CreatedAt, desc)
		}
	})
}

func lessString(a, b string, desc bool) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la == "" || lb == "" {
		return lb == "" && la != ""
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

// Update merges the patch; a stage change appends exactly one stage_change
// timeline event recording the transition.
func (i impl) Update(id string, patch candidateapimodels.CandidatePatch) (*dbmodels.Candidate, error) {
	rec, err := recordstore.GetAs[dbmodels.Candidate](i.table(), id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if patch.Name != nil {
		rec.Name = *patch.Name
	}
	if patch.Email != nil {
		rec.Email = *patch.Email
	}
	if patch.Phone != nil {
		rec.Phone = *patch.Phone
	}
	if patch.JobID != nil {
		rec.JobID = *patch.JobID
	}
	if patch.Stage != nil && *patch.Stage != rec.Stage {
		rec.Timeline = append(rec.Timeline, dbmodels.TimelineEvent{
			ID:            uuid.NewString(),
			Type:          models.TimelineStageChange,
			PreviousStage: rec.Stage,
			NewStage:      *patch.Stage,
			CreatedAt:     now,
		})
		rec.Stage = *patch.Stage
	}
	rec.UpdatedAt = now
	if err := recordstore.SetAs(i.table(), id, *rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (i impl) AddNote(id string, note candidateapimodels.NoteData) (*dbmodels.Candidate, error) {
	rec, err := recordstore.GetAs[dbmodels.Candidate](i.table(), id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	rec.Notes = append(rec.Notes, dbmodels.Note{
		ID:        uuid.NewString(),
		Author:    note.Author,
		Text:      note.Text,
		CreatedAt: now,
	})
	rec.Timeline = append(rec.Timeline, dbmodels.TimelineEvent{
		ID:        uuid.NewString(),
		Type:      models.TimelineNote,
		Note:      note.Text,
		CreatedAt: now,
	})
	rec.UpdatedAt = now
	if err := recordstore.SetAs(i.table(), id, *rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (i impl) Delete(id string) error {
	if _, err := i.GetByID(id); err != nil {
		return err
	}
	return i.table().Delete(id)
}

func (i impl) Timeline(id string) ([]dbmodels.TimelineEvent, error) {
	rec, err := i.GetByID(id)
	if err != nil {
		return nil, err
	}
	return rec.Timeline, nil
}
