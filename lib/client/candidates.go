package client

import (
	"context"
	"net/http"
	"net/url"

	candidateapimodels "talentflow-backend/models/api/candidate"
	dbmodels "talentflow-backend/models/db"
)

func candidateQuery(filter candidateapimodels.CandidateFilter) url.Values {
	query := url.Values{}
	setIfNotEmpty(query, "search", filter.Search)
	setIfNotEmpty(query, "stage", filter.Stage)
	setIfNotEmpty(query, "jobId", filter.JobID)
	setIfNotEmpty(query, "sort", filter.Sort)
	setIfNotEmpty(query, "sortDirection", string(filter.SortDirection))
	setPage(query, filter.Page, filter.PageSize)
	return query
}

func (c *Client) ListCandidates(ctx context.Context, filter candidateapimodels.CandidateFilter) (Paged[dbmodels.Candidate], error) {
	return callPaged[dbmodels.Candidate](ctx, c, "/candidates", candidateQuery(filter))
}

func (c *Client) GetCandidate(ctx context.Context, id string) (*dbmodels.Candidate, error) {
	return call[dbmodels.Candidate](ctx, c, http.MethodGet, "/candidates/"+id, nil, nil)
}

func (c *Client) CreateCandidate(ctx context.Context, data candidateapimodels.CandidateData) (*dbmodels.Candidate, error) {
	return call[dbmodels.Candidate](ctx, c, http.MethodPost, "/candidates", nil, data)
}

func (c *Client) UpdateCandidate(ctx context.Context, id string, patch candidateapimodels.CandidatePatch) (*dbmodels.Candidate, error) {
	return call[dbmodels.Candidate](ctx, c, http.MethodPatch, "/candidates/"+id, nil, patch)
}

func (c *Client) DeleteCandidate(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/candidates/"+id, nil, nil)
	return err
}

func (c *Client) CandidateTimeline(ctx context.Context, id string) ([]dbmodels.TimelineEvent, error) {
	return callList[dbmodels.TimelineEvent](ctx, c, http.MethodGet, "/candidates/"+id+"/timeline", nil, nil)
}

func (c *Client) AddCandidateNote(ctx context.Context, id string, note candidateapimodels.NoteData) (*dbmodels.Candidate, error) {
	return call[dbmodels.Candidate](ctx, c, http.MethodPost, "/candidates/"+id+"/notes", nil, note)
}
