package pdfexport_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pdfexport "talentflow-backend/lib/export/pdf"
	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"
)

func TestCandidateProfile(t *testing.T) {
	now := time.Now().UTC()
	rec := dbmodels.Candidate{
		BaseModel: dbmodels.BaseModel{ID: "c1", CreatedAt: now, UpdatedAt: now},
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Stage:     models.StageTech,
		JobID:     "j1",
		Notes: []dbmodels.Note{
			{ID: "n1", Author: "hr", Text: "strong intro call", CreatedAt: now},
		},
		Timeline: []dbmodels.TimelineEvent{
			{ID: "e1", Type: models.TimelineAdded, CreatedAt: now},
			{ID: "e2", Type: models.TimelineStageChange, PreviousStage: models.StageApplied, NewStage: models.StageTech, CreatedAt: now},
		},
	}

	content, err := pdfexport.CandidateProfile(rec, "Backend Engineer")
	require.NoError(t, err)
	require.NotEmpty(t, content)
	require.Equal(t, "%PDF", string(content[:4]))
}
