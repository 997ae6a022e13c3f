package uistore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"talentflow-backend/lib/uistore"
	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"
)

func job(id, title string) dbmodels.Job {
	return dbmodels.Job{
		BaseModel: dbmodels.BaseModel{ID: id},
		Title:     title,
		Status:    models.JobStatusActive,
	}
}

func jobID(rec dbmodels.Job) string { return rec.ID }

func TestUpdateByIDIsNoOpOnMissing(t *testing.T) {
	col := uistore.NewCollection(jobID)
	col.SetAll([]dbmodels.Job{job("a", "A"), job("b", "B")})

	touched := col.UpdateByID("missing", func(rec *dbmodels.Job) { rec.Title = "X" })
	require.False(t, touched)
	require.Equal(t, []dbmodels.Job{job("a", "A"), job("b", "B")}, col.Items(), "list is untouched")

	touched = col.UpdateByID("b", func(rec *dbmodels.Job) { rec.Title = "B2" })
	require.True(t, touched)
	got, ok := col.Get("b")
	require.True(t, ok)
	require.Equal(t, "B2", got.Title)
}

func TestCurrentSlotFollowsList(t *testing.T) {
	col := uistore.NewCollection(jobID)
	col.SetAll([]dbmodels.Job{job("a", "A"), job("b", "B")})
	col.SetCurrent("b")

	current, ok := col.Current()
	require.True(t, ok)
	require.Equal(t, "B", current.Title)

	// an edit through the list is visible through the slot
	col.UpdateByID("b", func(rec *dbmodels.Job) { rec.Title = "B2" })
	current, ok = col.Current()
	require.True(t, ok)
	require.Equal(t, "B2", current.Title)

	// removing the item clears the slot
	require.True(t, col.RemoveByID("b"))
	_, ok = col.Current()
	require.False(t, ok)
}

func TestSnapshotRestore(t *testing.T) {
	col := uistore.NewCollection(jobID)
	col.SetAll([]dbmodels.Job{job("a", "A")})
	col.SetMeta(uistore.Meta{Total: 1, Page: 1, PageSize: 10})

	snap := col.Snapshot()
	col.Add(job("b", "B"))
	col.SetMeta(uistore.Meta{Total: 2, Page: 1, PageSize: 10})

	col.Restore(snap)
	require.Len(t, col.Items(), 1)
	require.Equal(t, 1, col.Meta().Total)
}

func TestMergeOptimisticKeepsPendingOnly(t *testing.T) {
	server := []dbmodels.Job{job("s1", "Server 1"), job("s2", "Server 2")}
	local := []dbmodels.Job{
		job("s1", "Stale copy"),  // known to the server, server copy wins
		job("tmp", "Pending"),    // optimistic create, still pending
		job("gone", "Abandoned"), // not pending, dropped
	}
	pending := map[string]struct{}{"tmp": {}}

	merged, kept := uistore.MergeOptimistic(server, local, jobID, pending)
	require.Equal(t, 1, kept)
	require.Len(t, merged, 3)
	require.Equal(t, "Server 1", merged[0].Title, "server copy wins over the stale local one")
	require.Equal(t, "tmp", merged[2].ID, "pending record survives the merge")
}
