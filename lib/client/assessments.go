package client

import (
	"context"
	"net/http"

	assessmentapimodels "talentflow-backend/models/api/assessment"
	dbmodels "talentflow-backend/models/db"
)

func (c *Client) GetAssessment(ctx context.Context, jobID string) (*dbmodels.Assessment, error) {
	return call[dbmodels.Assessment](ctx, c, http.MethodGet, "/assessments/"+jobID, nil, nil)
}

func (c *Client) SaveAssessment(ctx context.Context, jobID string, data assessmentapimodels.AssessmentData) (*dbmodels.Assessment, error) {
	return call[dbmodels.Assessment](ctx, c, http.MethodPut, "/assessments/"+jobID, nil, data)
}

func (c *Client) SubmitAssessment(ctx context.Context, jobID string, req assessmentapimodels.SubmitRequest) (*dbmodels.AssessmentResponse, error) {
	return call[dbmodels.AssessmentResponse](ctx, c, http.MethodPost, "/assessments/"+jobID+"/submit", nil, req)
}

func (c *Client) ListAssessmentResponses(ctx context.Context, jobID string) ([]dbmodels.AssessmentResponse, error) {
	return callList[dbmodels.AssessmentResponse](ctx, c, http.MethodGet, "/assessments/"+jobID+"/responses", nil, nil)
}
