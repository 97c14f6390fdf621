package relay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(t *testing.T, handler http.Handler) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api/telegram", 5*time.Second)
}

func TestSend(t *testing.T) {
	var gotText string

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/telegram" {
			t.Errorf("path: got %s", r.URL.Path)
		}
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		gotText = body.Text
		w.Write([]byte(`{"ok":true}`))
	}))

	if err := c.Send(context.Background(), "new lead"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if gotText != "new lead" {
		t.Errorf("text: got %q", gotText)
	}
}

func TestSendFailureEnvelope(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"ok":false,"error":"Missing Telegram credentials"}`))
	}))

	err := c.Send(context.Background(), "x")

	var rerr *Error
	if !errors.As(err, &rerr) {
		t.Fatalf("got %v, want *Error", err)
	}
	if rerr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status: got %d", rerr.StatusCode)
	}
	if rerr.Message != "Missing Telegram credentials" {
		t.Errorf("message: got %q", rerr.Message)
	}
}

func TestSendNonJSONFailure(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))

	err := c.Send(context.Background(), "x")

	var rerr *Error
	if !errors.As(err, &rerr) {
		t.Fatalf("got %v, want *Error", err)
	}
	if rerr.Message != "upstream down" {
		t.Errorf("message: got %q", rerr.Message)
	}
}

func TestSendOKStatusWithoutOKFlag(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false,"error":"rejected"}`))
	}))

	if err := c.Send(context.Background(), "x"); err == nil {
		t.Fatal("expected error when ok is false")
	}
}
