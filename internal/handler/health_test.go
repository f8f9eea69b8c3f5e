package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPinger mocks a storage backend's Ping
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("All Backends Reachable", func(t *testing.T) {
		db, cache := &MockPinger{}, &MockPinger{}
		db.On("Ping", mock.Anything).Return(nil)
		cache.On("Ping", mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		HandleReadyz(db, cache).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		db.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("Database Connection Failed", func(t *testing.T) {
		db := &MockPinger{}
		db.On("Ping", mock.Anything).Return(assert.AnError)

		w := httptest.NewRecorder()
		HandleReadyz(db).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, w.Body.String(), `"message":"storage connection failed"`)
		db.AssertExpectations(t)
	})

	t.Run("Second Backend Fails", func(t *testing.T) {
		db, cache := &MockPinger{}, &MockPinger{}
		db.On("Ping", mock.Anything).Return(nil)
		cache.On("Ping", mock.Anything).Return(errors.New("connection refused"))

		w := httptest.NewRecorder()
		HandleReadyz(db, cache).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Database Timeout", func(t *testing.T) {
		db := &MockPinger{}
		db.On("Ping", mock.Anything).Return(context.DeadlineExceeded)

		w := httptest.NewRecorder()
		HandleReadyz(db).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestHandleVersion(t *testing.T) {
	w := httptest.NewRecorder()
	HandleVersion("1.4.0").ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"1.4.0"`)
	assert.Contains(t, w.Body.String(), `"go_version":"go`)

	w = httptest.NewRecorder()
	HandleVersion("").ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))
	assert.Contains(t, w.Body.String(), `"version":"dev"`)
}
