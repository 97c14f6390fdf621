package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ragecodemaster/landing/pkg/address"
	"github.com/ragecodemaster/landing/pkg/clients/telegram"
	"github.com/ragecodemaster/landing/pkg/models"
	"github.com/ragecodemaster/landing/pkg/services"
	"github.com/ragecodemaster/landing/pkg/validation"
	"github.com/ragecodemaster/landing/pkg/views"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordingNotifier struct {
	mu    sync.Mutex
	texts []string
}

func (n *recordingNotifier) Notify(_ context.Context, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.texts = append(n.texts, text)
	return nil
}

func (n *recordingNotifier) calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.texts...)
}

type fakeTelegram struct {
	sent []string
	err  error
}

func (f *fakeTelegram) SendMessage(_ context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, text)
	return nil
}

func clock() time.Time {
	return time.Date(2024, time.February, 10, 9, 30, 0, 0, time.UTC)
}

func setup(t *testing.T, tg telegram.Client) (*gin.Engine, *recordingNotifier) {
	t.Helper()
	n := &recordingNotifier{}
	v := validation.New(address.NewHeuristic(0), clock)
	svc := services.NewLeadSubmissionService(v, n, services.NewInFlight(time.Minute), clock)
	if tg == nil {
		tg = &fakeTelegram{}
	}
	return NewRouter(NewHandlers(svc, views.New(nil), tg), "*"), n
}

func postForm(r http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	r, _ := setup(t, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("got %d %s", w.Code, w.Body.String())
	}
}

func TestLandingPage(t *testing.T) {
	r, _ := setup(t, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type: got %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, `id="consultation-form"`) || !strings.Contains(body, `name="form_id"`) {
		t.Error("expected consultation form with a form id")
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a request id header")
	}
}

func TestSubmitConsultationEndToEnd(t *testing.T) {
	r, n := setup(t, nil)

	w := postForm(r, "/consultation", url.Values{
		"form_id": {"f-1"},
		"name":    {"Ada Lovelace"},
		"email":   {"ada@example.com"},
		"goal":    {"career-change"},
		"message": {"Hello"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `id="consultation-success"`) {
		t.Error("expected the thank-you view")
	}

	calls := n.calls()
	if len(calls) != 1 {
		t.Fatalf("notify calls: got %d, want 1", len(calls))
	}
	for _, want := range []string{"Ada Lovelace", "ada@example.com"} {
		if !strings.Contains(calls[0], want) {
			t.Errorf("notification missing %q:\n%s", want, calls[0])
		}
	}
}

func TestSubmitConsultationInvalid(t *testing.T) {
	r, n := setup(t, nil)

	w := postForm(r, "/consultation", url.Values{"form_id": {"f-2"}, "name": {"Ada"}, "email": {"nope"}})

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Please enter a valid email address", `value="Ada"`, `value="f-2"`} {
		if !strings.Contains(body, want) {
			t.Errorf("missing %q", want)
		}
	}
	if len(n.calls()) != 0 {
		t.Error("nothing should be sent for an invalid form")
	}
}

func TestCardLinkPage(t *testing.T) {
	r, _ := setup(t, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/card-link?course=java", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `name="course" value="java"`) {
		t.Error("expected the course to be preselected")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/card-link?course=cobol", nil))
	if strings.Contains(w.Body.String(), "selected-course") {
		t.Error("unknown course should not be shown")
	}
}

func cardLinkValues() url.Values {
	return url.Values{
		"form_id":     {"c-1"},
		"course":      {"javascript"},
		"card_number": {"4532015112830366"},
		"expiry":      {"0324"},
		"cvv":         {"123"},
		"first_name":  {"Ada"},
		"last_name":   {"Lovelace"},
		"email":       {"ada@example.com"},
		"address":     {"123 Main St"},
		"city":        {"San Francisco"},
		"state":       {"CA"},
		"zip":         {"94105"},
	}
}

func TestSubmitCardLink(t *testing.T) {
	r, n := setup(t, nil)

	w := postForm(r, "/card-link", cardLinkValues())

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d\n%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Card Linked Successfully!") {
		t.Error("expected the success view")
	}
	if calls := n.calls(); len(calls) != 1 || !strings.Contains(calls[0], "•••• 0366") {
		t.Errorf("notify calls: %q", calls)
	}
}

func TestSubmitCardLinkInvalid(t *testing.T) {
	r, n := setup(t, nil)

	values := cardLinkValues()
	values.Set("card_number", "4532015112830367")
	w := postForm(r, "/card-link", values)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Please enter a valid card number") {
		t.Error("expected card number error")
	}
	if !strings.Contains(body, `value="4532 0151 1283 0367"`) {
		t.Error("expected the card number to be shown formatted")
	}
	if len(n.calls()) != 0 {
		t.Error("nothing should be sent for an invalid form")
	}
}

type inFlightService struct{}

func (inFlightService) SubmitConsultation(context.Context, models.ConsultationForm) (services.Outcome, error) {
	return services.Outcome{State: services.Submitting}, services.ErrSubmissionInFlight
}

func (inFlightService) SubmitCardLink(context.Context, models.CardLinkForm) (services.Outcome, error) {
	return services.Outcome{State: services.Submitting}, services.ErrSubmissionInFlight
}

func TestSubmitWhileInFlight(t *testing.T) {
	r := NewRouter(NewHandlers(inFlightService{}, views.New(nil), &fakeTelegram{}), "*")

	for _, path := range []string{"/consultation", "/card-link"} {
		w := postForm(r, path, url.Values{"form_id": {"x"}})
		if w.Code != http.StatusConflict {
			t.Errorf("%s: status got %d, want 409", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), "already being processed") {
			t.Errorf("%s: expected in-flight notice", path)
		}
	}
}

func TestFormat(t *testing.T) {
	r, _ := setup(t, nil)

	w := postJSON(r, "/api/format", `{"field":"card_number","value":"4532015112830366"}`)

	var resp models.FormatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Value != "4532 0151 1283 0366" {
		t.Errorf("got %q", resp.Value)
	}

	if w := postJSON(r, "/api/format", `{"value":"1"}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing field: got %d", w.Code)
	}
}

func TestNotify(t *testing.T) {
	tg := &fakeTelegram{}
	r, _ := setup(t, tg)

	w := postJSON(r, "/api/telegram", `{"text":"hello"}`)

	if w.Code != http.StatusOK || w.Body.String() != `{"ok":true}` {
		t.Errorf("got %d %s", w.Code, w.Body.String())
	}
	if len(tg.sent) != 1 || tg.sent[0] != "hello" {
		t.Errorf("sent: %q", tg.sent)
	}
}

func TestNotifyErrors(t *testing.T) {
	tests := []struct {
		name    string
		tgErr   error
		body    string
		wantErr string
	}{
		{"missing credentials", telegram.ErrMissingCredentials, `{"text":"hi"}`, "Missing Telegram credentials"},
		{"upstream failure", &telegram.Error{StatusCode: 400, Body: "chat not found"}, `{"text":"hi"}`, "chat not found"},
		{"malformed body", nil, `{"text":`, "Invalid JSON format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setup(t, &fakeTelegram{err: tt.tgErr})

			w := postJSON(r, "/api/telegram", tt.body)

			if w.Code != http.StatusInternalServerError {
				t.Errorf("status: got %d", w.Code)
			}
			var resp models.NotifyResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.OK || !strings.Contains(resp.Error, tt.wantErr) {
				t.Errorf("got %+v, want error containing %q", resp, tt.wantErr)
			}
		})
	}
}

func TestAPIPreflight(t *testing.T) {
	r, _ := setup(t, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/telegram", nil))

	if w.Code != http.StatusNoContent {
		t.Errorf("status: got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS header")
	}
}
