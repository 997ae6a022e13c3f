package assessmenthandler

import (
	"talentflow-backend/lib/apperr"
	assessmentstore "talentflow-backend/lib/assessment/store"
	assessmentapimodels "talentflow-backend/models/api/assessment"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	GetByJob(jobID string) (*dbmodels.Assessment, error)
	Save(jobID string, data assessmentapimodels.AssessmentData) (*dbmodels.Assessment, error)
	Submit(jobID string, req assessmentapimodels.SubmitRequest) (*dbmodels.AssessmentResponse, error)
	ListResponses(jobID string) ([]dbmodels.AssessmentResponse, error)
}

func NewHandler(store assessmentstore.Provider) Provider {
	return &impl{store: store}
}

type impl struct {
	store assessmentstore.Provider
}

func (i impl) GetByJob(jobID string) (*dbmodels.Assessment, error) {
	return i.store.GetByJob(jobID)
}

func (i impl) Save(jobID string, data assessmentapimodels.AssessmentData) (*dbmodels.Assessment, error) {
	if err := data.Validate(); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid assessment payload")
	}
	return i.store.Upsert(jobID, data)
}

func (i impl) Submit(jobID string, req assessmentapimodels.SubmitRequest) (*dbmodels.AssessmentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid submission")
	}
	return i.store.SubmitResponse(jobID, req)
}

func (i impl) ListResponses(jobID string) ([]dbmodels.AssessmentResponse, error) {
	return i.store.ListResponses(jobID)
}
