package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL+"/", WithUserAgent("askbot-test"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNew_InvalidBaseURL(t *testing.T) {
	for _, u := range []string{"", "localhost:3000", "ftp://host", "http://"} {
		if _, err := New(u); err == nil {
			t.Errorf("New(%q): expected error", u)
		}
	}
}

func TestAsk(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/question" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.RawQuery != "q=convert+10+km+to+miles" {
			t.Errorf("raw query = %s", r.URL.RawQuery)
		}
		if r.UserAgent() != "askbot-test" {
			t.Errorf("user agent = %s", r.UserAgent())
		}
		writeJSON(w, 200, Answer{
			ResponseText: "10 kilometers(km) is equal to 6.21371 miles(mi).",
			Query:        "convert 10 km to miles",
			Rating:       1,
			Action:       "unit_converter",
		})
	})

	a, err := c.Ask(context.Background(), "convert 10 km to miles")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if a.Action != "unit_converter" || a.Rating != 1 {
		t.Errorf("unexpected answer: %+v", a)
	}
}

func TestAsk_ServerError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 500, map[string]any{"error": "Internal Server Error!", "code": 500})
	})

	_, err := c.Ask(context.Background(), "hello")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != 500 || apiErr.Message != "Internal Server Error!" {
		t.Errorf("unexpected error: %+v", apiErr)
	}
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Error("expected errors.Is(err, ErrUnexpectedStatus)")
	}
}

func TestAsk_PlainTextError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Page Not Found!"))
	})

	_, err := c.Ask(context.Background(), "hello")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "Page Not Found!" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWelcome(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, map[string]string{"responseText": "Welcome!"})
	})

	got, err := c.Welcome(context.Background())
	if err != nil {
		t.Fatalf("Welcome: %v", err)
	}
	if got != "Welcome!" {
		t.Errorf("got %q", got)
	}
}

func TestAllQuestions(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, []string{"What is your name?", "Explain a transformer."})
	})

	got, err := c.AllQuestions(context.Background())
	if err != nil {
		t.Fatalf("AllQuestions: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %v", got)
	}
}

func TestSuggest(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "conv" || r.URL.Query().Get("limit") != "3" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		writeJSON(w, 200, []string{"Convert {amount} {unitFrom} to {unitTo}."})
	})

	got, err := c.Suggest(context.Background(), "conv", 3)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %v", got)
	}
}

func TestSuggest_NoLimit(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("limit") {
			t.Errorf("unexpected limit in %s", r.URL.RawQuery)
		}
		writeJSON(w, 200, []string{})
	})

	if _, err := c.Suggest(context.Background(), "x", 0); err != nil {
		t.Fatalf("Suggest: %v", err)
	}
}

func TestHealth_Unhealthy(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, Health{
			Status: "error",
			Checks: map[string]string{"knowledge": "error"},
		})
	})

	h, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if h.Status != "error" || h.Checks["knowledge"] != "error" {
		t.Errorf("unexpected health: %+v", h)
	}
}

func TestMalformedBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	})

	if _, err := c.Welcome(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Welcome(context.Background()); err == nil {
		t.Fatal("expected timeout error")
	}
}
