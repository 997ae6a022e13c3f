package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"talentflow-backend/config"
	"talentflow-backend/initializers"
	"talentflow-backend/lib/apperr"
	"talentflow-backend/lib/client"
	"talentflow-backend/lib/faults"
	"talentflow-backend/lib/querycache"
	"talentflow-backend/lib/session"
	"talentflow-backend/lib/uistore"
	"talentflow-backend/models"
	apimodels "talentflow-backend/models/api"
	assessmentapimodels "talentflow-backend/models/api/assessment"
	authapimodels "talentflow-backend/models/api/auth"
	candidateapimodels "talentflow-backend/models/api/candidate"
	jobapimodels "talentflow-backend/models/api/job"
	dbmodels "talentflow-backend/models/db"
)

// newTestSession wires the full stack in one process: sqlite-backed record
// store, fiber app with the simulate middleware, and the client stack on top.
func newTestSession(t *testing.T, policy faults.Policy) *session.Session {
	t.Helper()
	cfg := &config.Configuration{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.JWTExpireInSec = 3600

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	app, _, err := initializers.BuildApp(cfg, gdb, policy, nil)
	require.NoError(t, err)

	api := client.New(client.InProcess(app), client.RetryPolicy{Attempts: 3, BaseDelay: time.Millisecond})
	return session.New(api, querycache.New(), uistore.New())
}

func wideFilter() jobapimodels.JobFilter {
	return jobapimodels.JobFilter{Pagination: apimodels.Pagination{Page: 1, PageSize: 100}}
}

func createJob(t *testing.T, sess *session.Session, title, slug string) *dbmodels.Job {
	t.Helper()
	rec, err := sess.CreateJob(context.Background(), jobapimodels.JobData{Title: title, Slug: slug})
	require.NoError(t, err)
	return rec
}

func TestCreateJobSettlesOnServerRecord(t *testing.T) {
	sess := newTestSession(t, faults.Disabled())
	ctx := context.Background()

	_, err := sess.LoadJobs(ctx, wideFilter())
	require.NoError(t, err)
	require.Equal(t, 0, sess.UI().Jobs.Meta().Total)

	rec := createJob(t, sess, "Backend Engineer", "backend-engineer")
	require.NotEmpty(t, rec.ID)

	items := sess.UI().Jobs.Items()
	require.Len(t, items, 1)
	require.Equal(t, rec.ID, items[0].ID, "temporary id is replaced by the server one")
	require.Equal(t, 1, sess.UI().Jobs.Meta().Total)
}

func TestCreateJobRollsBackWhenRetriesExhaust(t *testing.T) {
	// three injected failures, one per retry attempt
	sess := newTestSession(t, faults.Script(true, true, true))
	ctx := context.Background()

	_, err := sess.LoadJobs(ctx, wideFilter())
	require.NoError(t, err)
	before := sess.UI().Jobs.Items()

	_, err = sess.CreateJob(ctx, jobapimodels.JobData{Title: "Doomed", Slug: "doomed"})
	require.Error(t, err)
	require.True(t, apperr.IsKind(err, apperr.KindServer))

	require.Equal(t, before, sess.UI().Jobs.Items(), "failed create leaves no trace")
	require.Equal(t, 0, sess.UI().Jobs.Meta().Total)
}

func TestCreateJobRecoversWithinRetryBudget(t *testing.T) {
	// two failures, third attempt lands
	sess := newTestSession(t, faults.Script(true, true))
	ctx := context.Background()

	rec, err := sess.CreateJob(ctx, jobapimodels.JobData{Title: "Persistent", Slug: "persistent"})
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)
}

func TestDuplicateSlugConflicts(t *testing.T) {
	sess := newTestSession(t, faults.Disabled())
	createJob(t, sess, "One", "shared-slug")

	_, err := sess.CreateJob(context.Background(), jobapimodels.JobData{Title: "Two", Slug: "shared-slug"})
	require.Error(t, err)
	require.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestReorderDoesNotSnapBack(t *testing.T) {
	sess := newTestSession(t, faults.Disabled())
	ctx := context.Background()

	slugs := []string{"alpha", "bravo", "charlie", "delta", "echo"}
	for _, slug := range slugs {
		createJob(t, sess, slug, slug)
	}
	_, err := sess.LoadJobs(ctx, wideFilter())
	require.NoError(t, err)

	movedID := ""
	for _, rec := range sess.UI().Jobs.Items() {
		if rec.Order == 0 {
			movedID = rec.ID
		}
	}
	require.NotEmpty(t, movedID)

	affected, err := sess.ReorderJob(ctx, 0, 3)
	require.NoError(t, err)
	require.NotEmpty(t, affected)

	items := sess.UI().Jobs.Items()
	orders := map[int]bool{}
	for idx, rec := range items {
		require.False(t, orders[rec.Order], "orders stay unique after the shift")
		orders[rec.Order] = true
		if rec.ID == movedID {
			require.Equal(t, 3, rec.Order)
		}
		if idx > 0 {
			require.Greater(t, rec.Order, items[idx-1].Order, "list stays sorted by order")
		}
	}
}

// Overlapping reorders must queue: each plan has to read the board state the
// previous move left behind, or the second shift moves the wrong job and
// collides orders.
func TestConcurrentReordersQueue(t *testing.T) {
	sess := newTestSession(t, faults.Disabled())
	ctx := context.Background()

	slugs := []string{"alpha", "bravo", "charlie", "delta", "echo"}
	for _, slug := range slugs {
		createJob(t, sess, slug, slug)
	}
	_, err := sess.LoadJobs(ctx, wideFilter())
	require.NoError(t, err)

	moves := [][2]int{{0, 4}, {4, 0}, {1, 3}, {3, 1}}
	errs := make([]error, len(moves))
	var wg sync.WaitGroup
	for idx, move := range moves {
		wg.Add(1)
		go func(idx, from, to int) {
			defer wg.Done()
			_, errs[idx] = sess.ReorderJob(ctx, from, to)
		}(idx, move[0], move[1])
	}
	wg.Wait()
	for idx, err := range errs {
		require.NoError(t, err, "reorder %v failed", moves[idx])
	}

	items, err := sess.LoadJobs(ctx, wideFilter())
	require.NoError(t, err)
	require.Len(t, items, len(slugs))
	orders := map[int]bool{}
	for _, rec := range items {
		require.False(t, orders[rec.Order], "order %d assigned twice", rec.Order)
		require.GreaterOrEqual(t, rec.Order, 0)
		require.Less(t, rec.Order, len(slugs), "orders stay dense")
		orders[rec.Order] = true
	}
}

func TestReorderRollsBackWhenServerRefuses(t *testing.T) {
	sess := newTestSession(t, faults.Disabled())
	ctx := context.Background()
	for _, slug := range []string{"alpha", "bravo", "charlie"} {
		createJob(t, sess, slug, slug)
	}
	_, err := sess.LoadJobs(ctx, wideFilter())
	require.NoError(t, err)
	before := sess.UI().Jobs.Items()

	// no job sits at order 9: the shared plan refuses before anything moves
	_, err = sess.ReorderJob(ctx, 9, 0)
	require.Error(t, err)
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))
	require.Equal(t, before, sess.UI().Jobs.Items())
}

func TestCandidateStageMoveTimeline(t *testing.T) {
	sess := newTestSession(t, faults.Disabled())
	ctx := context.Background()
	job := createJob(t, sess, "Role", "role")

	cand, err := sess.CreateCandidate(ctx, candidateapimodels.CandidateData{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		JobID: job.ID,
	})
	require.NoError(t, err)
	require.Equal(t, models.StageApplied, cand.Stage)

	_, err = sess.MoveCandidate(ctx, cand.ID, models.StageScreen)
	require.NoError(t, err)
	_, err = sess.MoveCandidate(ctx, cand.ID, models.StageTech)
	require.NoError(t, err)
	_, err = sess.MoveCandidate(ctx, cand.ID, models.StageScreen)
	require.NoError(t, err)

	events, err := sess.CandidateTimeline(ctx, cand.ID)
	require.NoError(t, err)
	changes := 0
	for _, event := range events {
		if event.Type == models.TimelineStageChange {
			changes++
		}
	}
	require.Equal(t, 3, changes, "every move appends exactly one event")
}

func TestCandidateNoteAndDelete(t *testing.T) {
	sess := newTestSession(t, faults.Disabled())
	ctx := context.Background()
	job := createJob(t, sess, "Role", "role")
	cand, err := sess.CreateCandidate(ctx, candidateapimodels.CandidateData{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		JobID: job.ID,
	})
	require.NoError(t, err)

	withNote, err := sess.AddCandidateNote(ctx, cand.ID, candidateapimodels.NoteData{
		Author: "hr",
		Text:   "strong intro call",
	})
	require.NoError(t, err)
	require.Len(t, withNote.Notes, 1)

	require.NoError(t, sess.DeleteCandidate(ctx, cand.ID))
	_, ok := sess.UI().Candidates.Get(cand.ID)
	require.False(t, ok)
}

func TestAssessmentRoundtrip(t *testing.T) {
	sess := newTestSession(t, faults.Disabled())
	ctx := context.Background()
	job := createJob(t, sess, "Role", "role")

	data := assessmentapimodels.AssessmentData{
		Title: "Screening",
		Sections: []dbmodels.Section{{
			Title: "Basics",
			Questions: []dbmodels.Question{{
				Type:  models.QuestionSingleChoice,
				Title: "Pick one",
				Options: []dbmodels.Option{
					{Label: "A", Value: "a"},
					{Label: "B", Value: "b"},
				},
			}},
		}},
	}
	saved, err := sess.SaveAssessment(ctx, job.ID, data)
	require.NoError(t, err)
	require.Equal(t, job.ID, saved.JobID)

	loaded, err := sess.LoadAssessment(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, "Screening", loaded.Title)

	resp, err := sess.SubmitAssessment(ctx, job.ID, assessmentapimodels.SubmitRequest{
		CandidateID: "cand-1",
		Answers: []dbmodels.Answer{{
			QuestionID: loaded.Sections[0].Questions[0].ID,
			Value:      "a",
		}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	responses, err := sess.AssessmentResponses(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, responses, 1)
}

func TestAssessmentValidation(t *testing.T) {
	sess := newTestSession(t, faults.Disabled())
	ctx := context.Background()
	job := createJob(t, sess, "Role", "role")

	bad := assessmentapimodels.AssessmentData{
		Title: "Broken",
		Sections: []dbmodels.Section{{
			Title: "Basics",
			Questions: []dbmodels.Question{{
				Type:    models.QuestionSingleChoice,
				Title:   "Pick one",
				Options: []dbmodels.Option{{Label: "Only", Value: "only"}},
			}},
		}},
	}
	_, err := sess.SaveAssessment(ctx, job.ID, bad)
	require.Error(t, err)
	require.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestAuthFlow(t *testing.T) {
	sess := newTestSession(t, faults.Disabled())
	ctx := context.Background()

	signup := authapimodels.SignupRequest{
		Name:     "Recruiter",
		Email:    "recruiter@example.com",
		Password: "s3cret-pass",
	}
	resp, err := sess.Signup(ctx, signup)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	user, err := sess.Verify(ctx)
	require.NoError(t, err)
	require.Equal(t, "recruiter@example.com", user.Email)

	// wrong password and unknown account answer the same way
	_, err = sess.Signin(ctx, authapimodels.SigninRequest{Email: signup.Email, Password: "wrong-pass"})
	require.True(t, apperr.IsKind(err, apperr.KindAuth))
	_, err = sess.Signin(ctx, authapimodels.SigninRequest{Email: "ghost@example.com", Password: "whatever"})
	require.True(t, apperr.IsKind(err, apperr.KindAuth))

	// duplicate registration conflicts
	_, err = sess.Signup(ctx, signup)
	require.True(t, apperr.IsKind(err, apperr.KindConflict))

	require.NoError(t, sess.Logout(ctx))
	_, err = sess.Verify(ctx)
	require.True(t, apperr.IsKind(err, apperr.KindAuth))
}
