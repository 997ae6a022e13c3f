// Package session binds the typed client, the query cache and the UI store
// into the workflows the workspace runs: load lists through the cache,
// apply writes optimistically, reconcile when the server answers.
package session

import (
	"context"
	"sync"

	"talentflow-backend/lib/client"
	"talentflow-backend/lib/querycache"
	"talentflow-backend/lib/uistore"
	authapimodels "talentflow-backend/models/api/auth"
)

type Session struct {
	api   *client.Client
	cache *querycache.Cache
	ui    *uistore.Store

	// reorderMu serializes board reorders; overlapping shifts would compound
	// into orders the server never produced.
	reorderMu sync.Mutex

	mu      sync.Mutex
	pending map[string]struct{} // optimistic creates whose commit has not settled
	jobsKey string // cache key of the page the UI is looking at
	candKey string
}

func New(api *client.Client, cache *querycache.Cache, ui *uistore.Store) *Session {
	return &Session{
		api:     api,
		cache:   cache,
		ui:      ui,
		pending: map[string]struct{}{},
	}
}

func (s *Session) UI() *uistore.Store {
	return s.ui
}

func (s *Session) Cache() *querycache.Cache {
	return s.cache
}

func (s *Session) markPending(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[id] = struct{}{}
}

func (s *Session) unmarkPending(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, id)
}

func (s *Session) pendingIDs() map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make(map[string]struct{}, len(s.pending))
	for id := range s.pending {
		snapshot[id] = struct{}{}
	}
	return snapshot
}

func (s *Session) Signup(ctx context.Context, req authapimodels.SignupRequest) (*authapimodels.JWTResponse, error) {
	return s.api.Signup(ctx, req)
}

func (s *Session) Signin(ctx context.Context, req authapimodels.SigninRequest) (*authapimodels.JWTResponse, error) {
	return s.api.Signin(ctx, req)
}

func (s *Session) Logout(ctx context.Context) error {
	return s.api.Logout(ctx)
}

func (s *Session) Verify(ctx context.Context) (*authapimodels.UserView, error) {
	return s.api.Verify(ctx)
}
