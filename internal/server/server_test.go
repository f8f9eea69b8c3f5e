package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/activity"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/economy"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/sse"
)

// stubService answers the handful of calls the routing tests make
type stubService struct {
	economy.Service
}

func (stubService) GetPlayer(_ context.Context, id string) (*domain.Player, error) {
	if id == "p1" {
		return &domain.Player{ID: "p1", Name: "Crixus"}, nil
	}
	return nil, domain.ErrPlayerNotFound
}

func (stubService) Locations() []activity.Location {
	return []activity.Location{{Name: "Outskirts Road"}}
}

func (stubService) Rankings(_ context.Context, n int) ([]domain.RankEntry, error) {
	return []domain.RankEntry{{PlayerID: "p1", Rank: 1}}, nil
}

func TestRouter(t *testing.T) {
	hub := sse.NewHub()
	hub.Start()
	defer hub.Stop()
	router := NewRouter(Options{RateLimitRequests: 100}, stubService{}, hub)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"liveness", "GET", "/healthz", "", http.StatusOK},
		{"readiness without deps", "GET", "/readyz", "", http.StatusOK},
		{"version", "GET", "/version", "", http.StatusOK},
		{"metrics", "GET", "/metrics", "", http.StatusOK},
		{"player", "GET", "/api/v1/players/p1", "", http.StatusOK},
		{"unknown player", "GET", "/api/v1/players/nobody", "", http.StatusNotFound},
		{"locations", "GET", "/api/v1/locations", "", http.StatusOK},
		{"rankings", "GET", "/api/v1/rankings?limit=3", "", http.StatusOK},
		{"bad body", "POST", "/api/v1/players", "{", http.StatusBadRequest},
		{"unknown route", "GET", "/api/v1/nope", "", http.StatusNotFound},
		{"wrong method", "DELETE", "/api/v1/players/p1", "", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_SetsSecurityHeaders(t *testing.T) {
	router := NewRouter(Options{}, stubService{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}
