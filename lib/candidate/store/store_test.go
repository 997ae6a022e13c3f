package candidatestore_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"talentflow-backend/lib/apperr"
	candidatestore "talentflow-backend/lib/candidate/store"
	"talentflow-backend/lib/recordstore"
	"talentflow-backend/models"
	candidateapimodels "talentflow-backend/models/api/candidate"
	dbmodels "talentflow-backend/models/db"
)

func newProvider(t *testing.T) candidatestore.Provider {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	store := recordstore.NewInstance(gdb)
	require.NoError(t, store.AutoMigrate())
	return candidatestore.NewInstance(store)
}

func create(t *testing.T, provider candidatestore.Provider, name string) *dbmodels.Candidate {
	t.Helper()
	rec, err := provider.Create(candidateapimodels.CandidateData{
		Name:  name,
		Email: fmt.Sprintf("%s@example.com", name),
		JobID: "job-1",
	})
	require.NoError(t, err)
	return rec
}

func moveTo(t *testing.T, provider candidatestore.Provider, id string, stage models.Stage) *dbmodels.Candidate {
	t.Helper()
	rec, err := provider.Update(id, candidateapimodels.CandidatePatch{Stage: &stage})
	require.NoError(t, err)
	return rec
}

func stageChanges(rec *dbmodels.Candidate) []dbmodels.TimelineEvent {
	events := []dbmodels.TimelineEvent{}
	for _, event := range rec.Timeline {
		if event.Type == models.TimelineStageChange {
			events = append(events, event)
		}
	}
	return events
}

func TestCreateStartsTimeline(t *testing.T) {
	provider := newProvider(t)
	rec := create(t, provider, "ada")

	require.Equal(t, models.StageApplied, rec.Stage)
	require.Len(t, rec.Timeline, 1)
	require.Equal(t, models.TimelineAdded, rec.Timeline[0].Type)
}

// Every stage transition appends exactly one stage_change event; m moves mean
// m events, even when a stage repeats.
func TestStageMovesAppendOneEventEach(t *testing.T) {
	provider := newProvider(t)
	rec := create(t, provider, "ada")

	moves := []models.Stage{models.StageScreen, models.StageTech, models.StageScreen}
	for _, stage := range moves {
		rec = moveTo(t, provider, rec.ID, stage)
	}

	changes := stageChanges(rec)
	require.Len(t, changes, len(moves))
	last := changes[len(changes)-1]
	require.Equal(t, models.StageTech, last.PreviousStage)
	require.Equal(t, models.StageScreen, last.NewStage)
	require.Equal(t, models.StageScreen, rec.Stage)
}

func TestUpdateWithoutStageChangeAddsNoEvent(t *testing.T) {
	provider := newProvider(t)
	rec := create(t, provider, "ada")

	phone := "+1 555 0100"
	rec, err := provider.Update(rec.ID, candidateapimodels.CandidatePatch{Phone: &phone})
	require.NoError(t, err)
	require.Empty(t, stageChanges(rec))

	// re-sending the current stage is not a transition
	rec = moveTo(t, provider, rec.ID, models.StageApplied)
	require.Empty(t, stageChanges(rec))
}

func TestAddNoteAppends(t *testing.T) {
	provider := newProvider(t)
	rec := create(t, provider, "ada")

	rec, err := provider.AddNote(rec.ID, candidateapimodels.NoteData{Author: "hr", Text: "strong intro call"})
	require.NoError(t, err)
	require.Len(t, rec.Notes, 1)
	require.Equal(t, "strong intro call", rec.Notes[0].Text)
	require.NotEmpty(t, rec.Notes[0].ID)

	events, err := provider.Timeline(rec.ID)
	require.NoError(t, err)
	noteEvents := 0
	for _, event := range events {
		if event.Type == models.TimelineNote {
			noteEvents++
		}
	}
	require.Equal(t, 1, noteEvents)
}

func TestListFiltersByStageAndJob(t *testing.T) {
	provider := newProvider(t)
	ada := create(t, provider, "ada")
	create(t, provider, "bob")
	moveTo(t, provider, ada.ID, models.StageScreen)

	list, total, err := provider.List(candidateapimodels.CandidateFilter{Stage: string(models.StageScreen)})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "ada", list[0].Name)

	list, total, err = provider.List(candidateapimodels.CandidateFilter{Search: "bob@"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "bob", list[0].Name)
}

func TestDeleteIsHard(t *testing.T) {
	provider := newProvider(t)
	rec := create(t, provider, "ada")

	require.NoError(t, provider.Delete(rec.ID))
	_, err := provider.GetByID(rec.ID)
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
