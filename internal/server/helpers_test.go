package server

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/petr3232-cloud/syndicate-backend/internal/auth"
	"github.com/petr3232-cloud/syndicate-backend/internal/config"
	"github.com/petr3232-cloud/syndicate-backend/internal/domain"
)

// mockApp implements domain.AppService with pluggable behavior per test.
type mockApp struct {
	authenticateFn func(ctx context.Context, initData string) (string, error)
	getDayTaskFn   func(ctx context.Context, telegramID string, day int) (*domain.Task, []domain.ChecklistEntry, error)
	toggleFn       func(ctx context.Context, telegramID string, itemID uuid.UUID, done bool) (*domain.ChecklistMark, error)
}

func (m *mockApp) Authenticate(ctx context.Context, initData string) (string, error) {
	return m.authenticateFn(ctx, initData)
}

func (m *mockApp) GetDayTask(ctx context.Context, telegramID string, day int) (*domain.Task, []domain.ChecklistEntry, error) {
	return m.getDayTaskFn(ctx, telegramID, day)
}

func (m *mockApp) ToggleChecklist(ctx context.Context, telegramID string, itemID uuid.UUID, done bool) (*domain.ChecklistMark, error) {
	return m.toggleFn(ctx, telegramID, itemID, done)
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(_ context.Context) error { return f.err }

type testServer struct {
	srv    *Server
	tokens *auth.TokenManager
	clock  *clockwork.FakeClock
	db     *fakePinger
}

func newTestServer(t *testing.T, app domain.AppService) *testServer {
	t.Helper()

	cfg := &config.Config{
		AppEnv:    "test",
		Port:      "8080",
		BotToken:  "42:test-bot-token",
		JWTSecret: "test-secret-0123",
	}
	clock := clockwork.NewFakeClock()
	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), clock)
	db := &fakePinger{}

	return &testServer{
		srv:    NewServer(cfg, app, tokens, db),
		tokens: tokens,
		clock:  clock,
		db:     db,
	}
}

// do runs a request through the full Echo stack, middleware included.
func (ts *testServer) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.srv.echo.ServeHTTP(rec, req)
	return rec
}
