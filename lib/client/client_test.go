package client

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"talentflow-backend/lib/apperr"
	jobapimodels "talentflow-backend/models/api/job"
)

type scriptedDoer struct {
	responses []*http.Response
	calls     int
}

func (d *scriptedDoer) Do(req *http.Request) (*http.Response, error) {
	idx := d.calls
	if idx >= len(d.responses) {
		idx = len(d.responses) - 1
	}
	d.calls++
	return d.responses[idx], nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func newTestClient(doer Doer) *Client {
	return New(doer, RetryPolicy{Attempts: 3, BaseDelay: time.Millisecond})
}

func TestStatusMapsOntoErrorKinds(t *testing.T) {
	cases := []struct {
		status int
		kind   apperr.Kind
	}{
		{http.StatusBadRequest, apperr.KindValidation},
		{http.StatusUnauthorized, apperr.KindAuth},
		{http.StatusNotFound, apperr.KindNotFound},
		{http.StatusConflict, apperr.KindConflict},
		{http.StatusInternalServerError, apperr.KindServer},
	}
	for _, tc := range cases {
		doer := &scriptedDoer{responses: []*http.Response{
			jsonResponse(tc.status, `{"success":false,"message":"nope"}`),
		}}
		c := newTestClient(doer)

		_, err := c.GetJob(context.Background(), "some-id")
		require.Error(t, err)
		require.True(t, apperr.IsKind(err, tc.kind), "status %d must map to %v, got %v",
			tc.status, tc.kind, apperr.KindOf(err))
	}
}

func TestServerErrorsAreRetriedToSuccess(t *testing.T) {
	doer := &scriptedDoer{responses: []*http.Response{
		jsonResponse(http.StatusInternalServerError, `{"success":false,"message":"injected server error"}`),
		jsonResponse(http.StatusInternalServerError, `{"success":false,"message":"injected server error"}`),
		jsonResponse(http.StatusOK, `{"success":true,"data":{"id":"j1","title":"Engineer"}}`),
	}}
	c := newTestClient(doer)

	rec, err := c.GetJob(context.Background(), "j1")
	require.NoError(t, err)
	require.Equal(t, 3, doer.calls)
	require.Equal(t, "Engineer", rec.Title)
}

func TestValidationErrorsAreNotRetried(t *testing.T) {
	doer := &scriptedDoer{responses: []*http.Response{
		jsonResponse(http.StatusBadRequest, `{"success":false,"message":"slug must be url-safe"}`),
	}}
	c := newTestClient(doer)

	_, err := c.CreateJob(context.Background(), jobapimodels.JobData{Title: "x", Slug: "BAD SLUG"})
	require.Error(t, err)
	require.True(t, apperr.IsKind(err, apperr.KindValidation))
	require.Equal(t, 1, doer.calls)
}

func TestPagedDecoding(t *testing.T) {
	doer := &scriptedDoer{responses: []*http.Response{
		jsonResponse(http.StatusOK,
			`{"success":true,"data":[{"id":"a","title":"A"},{"id":"b","title":"B"}],"total":12,"page":2,"pageSize":2,"totalPages":6}`),
	}}
	c := newTestClient(doer)

	page, err := c.ListJobs(context.Background(), jobapimodels.JobFilter{})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.EqualValues(t, 12, page.Total)
	require.Equal(t, 2, page.Page)
	require.Equal(t, 6, page.TotalPages)
}

func TestAuthTokenIsSentOnceInstalled(t *testing.T) {
	var seen string
	doer := doerFunc(func(req *http.Request) (*http.Response, error) {
		seen = req.Header.Get("Authorization")
		return jsonResponse(http.StatusOK, `{"success":true}`), nil
	})
	c := newTestClient(doer)
	c.SetToken("token-123")

	_, err := c.GetJob(context.Background(), "j1")
	require.NoError(t, err)
	require.Equal(t, "Bearer token-123", seen)
}

type doerFunc func(req *http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }
