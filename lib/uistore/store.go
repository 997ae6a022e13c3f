package uistore

import (
	dbmodels "talentflow-backend/models/db"
)

// Store bundles the collections the workspace renders. Assessments are keyed
// by their job, matching the one-per-job rule.
type Store struct {
	Jobs        *Collection[dbmodels.Job]
	Candidates  *Collection[dbmodels.Candidate]
	Assessments *Collection[dbmodels.Assessment]
}

func New() *Store {
	return &Store{
		Jobs:        NewCollection(func(rec dbmodels.Job) string { return rec.ID }),
		Candidates:  NewCollection(func(rec dbmodels.Candidate) string { return rec.ID }),
		Assessments: NewCollection(func(rec dbmodels.Assessment) string { return rec.JobID }),
	}
}
