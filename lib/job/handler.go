package jobhandler

import (
	log "github.com/sirupsen/logrus"

	"talentflow-backend/lib/apperr"
	jobstore "talentflow-backend/lib/job/store"
	jobapimodels "talentflow-backend/models/api/job"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	List(filter jobapimodels.JobFilter) (list []dbmodels.Job, total int64, err error)
	GetByID(id string) (*dbmodels.Job, error)
	Create(data jobapimodels.JobData) (*dbmodels.Job, error)
	Update(id string, patch jobapimodels.JobPatch) (*dbmodels.Job, error)
	Archive(id string) (*dbmodels.Job, error)
	Reorder(req jobapimodels.ReorderRequest) ([]dbmodels.Job, error)
}

func NewHandler(store jobstore.Provider) Provider {
	return &impl{store: store}
}

type impl struct {
	store jobstore.Provider
}

func (i impl) List(filter jobapimodels.JobFilter) ([]dbmodels.Job, int64, error) {
	return i.store.List(filter)
}

func (i impl) GetByID(id string) (*dbmodels.Job, error) {
	return i.store.GetByID(id)
}

func (i impl) Create(data jobapimodels.JobData) (*dbmodels.Job, error) {
	if err := data.Validate(); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid job payload")
	}
	rec, err := i.store.Create(data)
	if err != nil {
		return nil, err
	}
	log.WithField("id", rec.ID).WithField("slug", rec.Slug).Info("job created")
	return rec, nil
}

func (i impl) Update(id string, patch jobapimodels.JobPatch) (*dbmodels.Job, error) {
	if err := patch.Validate(); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid job patch")
	}
	return i.store.Update(id, patch)
}

func (i impl) Archive(id string) (*dbmodels.Job, error) {
	rec, err := i.store.Archive(id)
	if err != nil {
		return nil, err
	}
	log.WithField("id", id).Info("job archived")
	return rec, nil
}

func (i impl) Reorder(req jobapimodels.ReorderRequest) ([]dbmodels.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid reorder request")
	}
	return i.store.Reorder(req.FromOrder, req.ToOrder)
}
