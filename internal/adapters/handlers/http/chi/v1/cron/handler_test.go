package cron_test

import (
	"encoding/json"
	"io"
	"log/slog"
	httpgo "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Vittal-Dev1/Tentacao/internal/adapters/handlers/http/chi"
	authhandler "github.com/Vittal-Dev1/Tentacao/internal/adapters/handlers/http/chi/v1/auth"
	cronhandler "github.com/Vittal-Dev1/Tentacao/internal/adapters/handlers/http/chi/v1/cron"
	mediahandler "github.com/Vittal-Dev1/Tentacao/internal/adapters/handlers/http/chi/v1/media"
	"github.com/Vittal-Dev1/Tentacao/internal/config"
	"github.com/Vittal-Dev1/Tentacao/internal/core/service/cleanup"
	mediaservice "github.com/Vittal-Dev1/Tentacao/internal/core/service/media"
	"github.com/Vittal-Dev1/Tentacao/internal/core/service/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookieName = "tentacao_admin_auth"

func newTestRouter(t *testing.T, cleanupMock *cleanup.MockCleanupService, secret string, sessionMock *session.MockSessionService) httpgo.Handler {
	t.Helper()

	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authH := authhandler.NewAuthHandlerV1(sessionMock, config.AuthConfig{CookieName: testCookieName, SessionTTL: time.Hour}, false, discardLogger)
	mediaH := mediahandler.NewMediaHandlerV1(&mediaservice.MockMediaService{}, discardLogger)
	cronH := cronhandler.NewCronHandlerV1(cleanupMock, secret, discardLogger)

	return chi.NewRouter(discardLogger, sessionMock, testCookieName, authH, mediaH, cronH, "", "", "")
}

func TestCleanupV1(t *testing.T) {

	t.Run("nominal - bearer secret", func(t *testing.T) {
		// Arrange
		cleanupMock := &cleanup.MockCleanupService{}
		cleanupMock.On("PurgeCombos", mock.Anything).Return(4, nil)

		h := newTestRouter(t, cleanupMock, "cron-secret", &session.MockSessionService{})
		w := httptest.NewRecorder()

		req := httptest.NewRequest(httpgo.MethodGet, "/api/v1/cron/cleanup", nil)
		req.Header.Set("Authorization", "Bearer cron-secret")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, httpgo.StatusOK, w.Code)

		var response cronhandler.V1CleanupResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, 4, response.Deleted)
		assert.Equal(t, "combos deleted", response.Message)

		cleanupMock.AssertExpectations(t)
	})

	t.Run("nothing to delete", func(t *testing.T) {
		cleanupMock := &cleanup.MockCleanupService{}
		cleanupMock.On("PurgeCombos", mock.Anything).Return(0, nil)

		h := newTestRouter(t, cleanupMock, "cron-secret", &session.MockSessionService{})
		w := httptest.NewRecorder()

		req := httptest.NewRequest(httpgo.MethodGet, "/api/v1/cron/cleanup", nil)
		req.Header.Set("Authorization", "Bearer cron-secret")

		h.ServeHTTP(w, req)

		assert.Equal(t, httpgo.StatusOK, w.Code)

		var response cronhandler.V1CleanupResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, 0, response.Deleted)
		assert.Equal(t, "no combos to delete", response.Message)
	})

	t.Run("wrong bearer secret", func(t *testing.T) {
		cleanupMock := &cleanup.MockCleanupService{}

		h := newTestRouter(t, cleanupMock, "cron-secret", &session.MockSessionService{})
		w := httptest.NewRecorder()

		req := httptest.NewRequest(httpgo.MethodGet, "/api/v1/cron/cleanup", nil)
		req.Header.Set("Authorization", "Bearer wrong")

		h.ServeHTTP(w, req)

		assert.Equal(t, httpgo.StatusUnauthorized, w.Code)
		cleanupMock.AssertNotCalled(t, "PurgeCombos", mock.Anything)
	})

	t.Run("missing authorization header", func(t *testing.T) {
		cleanupMock := &cleanup.MockCleanupService{}

		h := newTestRouter(t, cleanupMock, "cron-secret", &session.MockSessionService{})
		w := httptest.NewRecorder()

		req := httptest.NewRequest(httpgo.MethodGet, "/api/v1/cron/cleanup", nil)

		h.ServeHTTP(w, req)

		assert.Equal(t, httpgo.StatusUnauthorized, w.Code)
	})

	t.Run("falls back to the admin session when no secret is set", func(t *testing.T) {
		cleanupMock := &cleanup.MockCleanupService{}
		cleanupMock.On("PurgeCombos", mock.Anything).Return(2, nil)

		sessionMock := &session.MockSessionService{}
		sessionMock.On("Verify", "valid-token").Return(nil)

		h := newTestRouter(t, cleanupMock, "", sessionMock)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(httpgo.MethodGet, "/api/v1/cron/cleanup", nil)
		req.AddCookie(&httpgo.Cookie{Name: testCookieName, Value: "valid-token"})

		h.ServeHTTP(w, req)

		assert.Equal(t, httpgo.StatusOK, w.Code)

		var response cronhandler.V1CleanupResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, 2, response.Deleted)

		sessionMock.AssertExpectations(t)
		cleanupMock.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		cleanupMock := &cleanup.MockCleanupService{}
		cleanupMock.On("PurgeCombos", mock.Anything).Return(0, assert.AnError)

		h := newTestRouter(t, cleanupMock, "cron-secret", &session.MockSessionService{})
		w := httptest.NewRecorder()

		req := httptest.NewRequest(httpgo.MethodGet, "/api/v1/cron/cleanup", nil)
		req.Header.Set("Authorization", "Bearer cron-secret")

		h.ServeHTTP(w, req)

		assert.Equal(t, httpgo.StatusInternalServerError, w.Code)
	})
}
