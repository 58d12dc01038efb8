package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"shared-calendar/internal/calendar/repository"
	"shared-calendar/internal/model"
	"shared-calendar/internal/prefs"
	"shared-calendar/internal/session"
	pkgLog "shared-calendar/pkg/log"
	"shared-calendar/pkg/response"
)

type emptyRepo struct{}

func (emptyRepo) ListCalendars(ctx context.Context, sc model.Scope) ([]model.Calendar, error) {
	return []model.Calendar{{ID: "c1", Name: "Personal", IsDefault: true}}, nil
}
func (emptyRepo) ListShares(ctx context.Context, sc model.Scope) ([]model.Share, error) {
	return nil, nil
}
func (emptyRepo) ListEvents(ctx context.Context, sc model.Scope, calendarID string) ([]model.Event, error) {
	return nil, nil
}
func (emptyRepo) CreateEvent(ctx context.Context, sc model.Scope, opt repository.CreateEventOptions) (model.Event, error) {
	return model.Event{}, repository.ErrReadOnly
}
func (emptyRepo) DeleteEvent(ctx context.Context, sc model.Scope, eventID string) error {
	return repository.ErrReadOnly
}
func (emptyRepo) CreateCalendar(ctx context.Context, sc model.Scope, input model.CalendarInput) (model.Calendar, error) {
	return model.Calendar{}, repository.ErrReadOnly
}
func (emptyRepo) DeleteCalendar(ctx context.Context, sc model.Scope, calendarID string) error {
	return repository.ErrReadOnly
}
func (emptyRepo) ShareCalendar(ctx context.Context, sc model.Scope, input model.ShareInput) (model.ShareInvite, error) {
	return model.ShareInvite{}, repository.ErrReadOnly
}

type webhookStub struct{ called bool }

func (w *webhookStub) HandleCalendarWebhook(c *gin.Context) {
	w.called = true
	response.OK(c, nil)
}

func newTestServer(t *testing.T, webhook *webhookStub) *HTTPServer {
	t.Helper()
	l := pkgLog.NewNop()
	cfg := Config{
		Logger:      l,
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: string(model.EnvironmentProduction),
		Sessions:    session.NewManager(l, emptyRepo{}, prefs.NewStore(t.TempDir()), session.Config{}),
	}
	if webhook != nil {
		cfg.WebhookHandler = webhook
	}
	srv, err := New(l, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return srv
}

func TestNewValidates(t *testing.T) {
	if _, err := New(pkgLog.NewNop(), Config{Mode: gin.TestMode, Port: 8080}); err == nil {
		t.Errorf("expected an error without a session manager")
	}
	if _, err := New(pkgLog.NewNop(), Config{Mode: gin.TestMode}); err == nil {
		t.Errorf("expected an error without a port")
	}
}

func TestRoutes(t *testing.T) {
	webhook := &webhookStub{}
	srv := newTestServer(t, webhook)

	t.Run("ready reports sessions", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Data map[string]any `json:"data"`
		}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Data["sessions"] != float64(0) {
			t.Errorf("unexpected ready payload %v", resp.Data)
		}
	})

	t.Run("api requires auth", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/calendars", nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("api opens a session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
		req.Header.Set("Authorization", "Bearer tok")
		req.Header.Set("X-User-ID", "u1")
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if srv.sessions.Len() != 1 {
			t.Errorf("expected one live session, got %d", srv.sessions.Len())
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("missing request id header")
		}
	})

	t.Run("webhook route", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/calendar", nil))
		if w.Code != http.StatusOK || !webhook.called {
			t.Errorf("webhook not routed: %d", w.Code)
		}
	})
}

func TestWebhookRouteOptional(t *testing.T) {
	srv := newTestServer(t, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/calendar", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 without a webhook handler, got %d", w.Code)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.port = 0
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()
	if err := <-done; err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
