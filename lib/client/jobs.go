package client

import (
	"context"
	"net/http"
	"net/url"

	jobapimodels "talentflow-backend/models/api/job"
	dbmodels "talentflow-backend/models/db"
)

func jobQuery(filter jobapimodels.JobFilter) url.Values {
	query := url.Values{}
	setIfNotEmpty(query, "search", filter.Search)
	setIfNotEmpty(query, "status", filter.Status)
	setIfNotEmpty(query, "sort", filter.Sort)
	setIfNotEmpty(query, "sortDirection", string(filter.SortDirection))
	setPage(query, filter.Page, filter.PageSize)
	return query
}

func (c *Client) ListJobs(ctx context.Context, filter jobapimodels.JobFilter) (Paged[dbmodels.Job], error) {
	return callPaged[dbmodels.Job](ctx, c, "/jobs", jobQuery(filter))
}

func (c *Client) GetJob(ctx context.Context, id string) (*dbmodels.Job, error) {
	return call[dbmodels.Job](ctx, c, http.MethodGet, "/jobs/"+id, nil, nil)
}

func (c *Client) CreateJob(ctx context.Context, data jobapimodels.JobData) (*dbmodels.Job, error) {
	return call[dbmodels.Job](ctx, c, http.MethodPost, "/jobs", nil, data)
}

func (c *Client) UpdateJob(ctx context.Context, id string, patch jobapimodels.JobPatch) (*dbmodels.Job, error) {
	return call[dbmodels.Job](ctx, c, http.MethodPatch, "/jobs/"+id, nil, patch)
}

func (c *Client) ArchiveJob(ctx context.Context, id string) (*dbmodels.Job, error) {
	return call[dbmodels.Job](ctx, c, http.MethodDelete, "/jobs/"+id, nil, nil)
}

// ReorderJobs moves the job between board positions and returns every job the
// shift touched, already carrying the new order values.
func (c *Client) ReorderJobs(ctx context.Context, id string, req jobapimodels.ReorderRequest) ([]dbmodels.Job, error) {
	return callList[dbmodels.Job](ctx, c, http.MethodPatch, "/jobs/"+id+"/reorder", nil, req)
}
