package candidatehandler

import (
	log "github.com/sirupsen/logrus"

	"talentflow-backend/lib/apperr"
	candidatestore "talentflow-backend/lib/candidate/store"
	candidateapimodels "talentflow-backend/models/api/candidate"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	List(filter candidateapimodels.CandidateFilter) (list []dbmodels.Candidate, total int64, err error)
	ListAll(filter candidateapimodels.CandidateFilter) ([]dbmodels.Candidate, error)
	GetByID(id string) (*dbmodels.Candidate, error)
	Create(data candidateapimodels.CandidateData) (*dbmodels.Candidate, error)
	Update(id string, patch candidateapimodels.CandidatePatch) (*dbmodels.Candidate, error)
	AddNote(id string, note candidateapimodels.NoteData) (*dbmodels.Candidate, error)
	Delete(id string) error
	Timeline(id string) ([]dbmodels.TimelineEvent, error)
}

func NewHandler(store candidatestore.Provider) Provider {
	return &impl{store: store}
}

type impl struct {
	store candidatestore.Provider
}

func (i impl) List(filter candidateapimodels.CandidateFilter) ([]dbmodels.Candidate, int64, error) {
	return i.store.List(filter)
}

func (i impl) ListAll(filter candidateapimodels.CandidateFilter) ([]dbmodels.Candidate, error) {
	return i.store.ListAll(filter)
}

func (i impl) GetByID(id string) (*dbmodels.Candidate, error) {
	return i.store.GetByID(id)
}

func (i impl) Create(data candidateapimodels.CandidateData) (*dbmodels.Candidate, error) {
	if err := data.Validate(); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid candidate payload")
	}
	rec, err := i.store.Create(data)
	if err != nil {
		return nil, err
	}
	log.WithField("id", rec.ID).WithField("job", rec.JobID).Info("candidate created")
	return rec, nil
}

func (i impl) Update(id string, patch candidateapimodels.CandidatePatch) (*dbmodels.Candidate, error) {
	if err := patch.Validate(); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid candidate patch")
	}
	rec, err := i.store.Update(id, patch)
	if err != nil {
		return nil, err
	}
	if patch.Stage != nil {
		log.WithField("id", id).WithField("stage", *patch.Stage).Info("candidate stage updated")
	}
	return rec, nil
}

func (i impl) AddNote(id string, note candidateapimodels.NoteData) (*dbmodels.Candidate, error) {
	if err := note.Validate(); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid note payload")
	}
	return i.store.AddNote(id, note)
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) Timeline(id string) ([]dbmodels.TimelineEvent, error) {
	return i.store.Timeline(id)
}
