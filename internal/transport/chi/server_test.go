package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/askbot/internal/domain"
	"github.com/kailas-cloud/askbot/internal/domain/knowledge"
	"github.com/kailas-cloud/askbot/internal/domain/match"
	"github.com/kailas-cloud/askbot/internal/units"
	chatuc "github.com/kailas-cloud/askbot/internal/usecase/chat"
	"github.com/kailas-cloud/askbot/internal/usecase/classify"
	healthuc "github.com/kailas-cloud/askbot/internal/usecase/health"
	"github.com/kailas-cloud/askbot/internal/usecase/resolve"
	suggestuc "github.com/kailas-cloud/askbot/internal/usecase/suggest"
)

// --- Mocks ---

type fakeLookup struct {
	summary string
	err     error
}

func (f *fakeLookup) Summary(context.Context, string) (string, error) {
	return f.summary, f.err
}

type firstPicker struct{}

func (firstPicker) IntN(int) int { return 0 }

type brokenResolver struct{}

func (brokenResolver) BestMatch(string, []string) (match.Result, error) {
	return match.Result{}, errors.New("resolver exploded")
}

type fakeCache struct{ err error }

func (f fakeCache) Ping(context.Context) error { return f.err }

type emptyKnowledge struct{}

func (emptyKnowledge) Corpus() []string { return nil }

// --- Helpers ---

func testKnowledge(t *testing.T) *knowledge.Base {
	t.Helper()
	entry := func(q, a []string) knowledge.Entry {
		e, err := knowledge.NewEntry(q, a)
		if err != nil {
			t.Fatalf("NewEntry: %v", err)
		}
		return e
	}
	kb, err := knowledge.New(knowledge.Sources{
		UnitConverter: []string{"convert {amount} {unitFrom} to {unitTo}"},
		Wikipedia:     []string{"what is {topic}", "who is {topic}"},
		Support: []knowledge.Entry{
			entry([]string{"who made you"}, []string{"I was made by [DEVELOPER_NAME]."}),
		},
		DomainChat: []knowledge.Entry{
			entry([]string{"explain a circuit breaker"}, []string{"A circuit breaker interrupts fault current."}),
		},
		GeneralChat: []knowledge.Entry{
			entry([]string{"hello", "hi there"}, []string{"Hello! I'm [BOT_NAME]."}),
			entry([]string{"how are you doing today"}, []string{"Great, thanks for asking."}),
		},
		Welcome:  []string{"Welcome to [BOT_NAME]!"},
		Fallback: []string{"Sorry, I didn't get that."},
	})
	if err != nil {
		t.Fatalf("knowledge.New: %v", err)
	}
	return kb
}

type serverOpts struct {
	lookup    *fakeLookup
	resolver  chatuc.Resolver
	health    *healthuc.Service
	publicDir string
}

func newTestRouter(t *testing.T, opts serverOpts) http.Handler {
	t.Helper()
	kb := testKnowledge(t)
	if opts.lookup == nil {
		opts.lookup = &fakeLookup{summary: "Ohm's law relates current and voltage."}
	}
	if opts.resolver == nil {
		opts.resolver = resolve.New()
	}
	if opts.health == nil {
		opts.health = healthuc.New(kb, nil)
	}
	if opts.publicDir == "" {
		opts.publicDir = t.TempDir()
	}

	chat := chatuc.New(kb, classify.New(), opts.resolver, units.New(), opts.lookup, chatuc.Placeholders{
		BotName:        "askbot",
		DeveloperName:  "Jane Doe",
		DeveloperEmail: "jane@example.com",
		BugReportURL:   "https://example.com/issues",
	}).WithPicker(firstPicker{})

	srv := NewServer(chat, suggestuc.New(kb), opts.health, opts.publicDir, zap.NewNop())
	return NewRouter(srv, zap.NewNop())
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", target, http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

// --- Tests ---

func TestQuestion_GeneralChat(t *testing.T) {
	h := newTestRouter(t, serverOpts{})

	rr := doGet(t, h, "/api/question?q=hello")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content type: got %q", ct)
	}

	resp := decodeBody[questionResponse](t, rr)
	if resp.ResponseText != "Hello! I'm askbot." {
		t.Errorf("responseText: got %q", resp.ResponseText)
	}
	if resp.Action != "general_chat" {
		t.Errorf("action: got %q", resp.Action)
	}
	if resp.Rating != 1 {
		t.Errorf("rating: got %v, want 1", resp.Rating)
	}
	if resp.SimilarQuestion != "hello" {
		t.Errorf("similarQuestion: got %q", resp.SimilarQuestion)
	}
	if resp.IsFallback {
		t.Error("expected isFallback=false")
	}
}

func TestQuestion_ResponseFieldsAndIndent(t *testing.T) {
	h := newTestRouter(t, serverOpts{})

	rr := doGet(t, h, "/api/question?q=hello")
	body := rr.Body.String()

	for _, field := range []string{
		`"responseText"`, `"query"`, `"rating"`, `"action"`, `"isFallback"`, `"similarQuestion"`,
	} {
		if !strings.Contains(body, field) {
			t.Errorf("missing field %s in %s", field, body)
		}
	}
	if !strings.Contains(body, "\n    \"responseText\"") {
		t.Errorf("expected 4-space indentation, got %s", body)
	}
}

func TestQuestion_PercentEncodedQuery(t *testing.T) {
	h := newTestRouter(t, serverOpts{})

	rr := doGet(t, h, "/api/question?q=convert%2010%20km%20to%20miles")
	resp := decodeBody[questionResponse](t, rr)

	if resp.Action != "unit_converter" {
		t.Fatalf("action: got %q", resp.Action)
	}
	if resp.ResponseText != "10 kilometers(km) is equal to 6.21371 miles(mi)." {
		t.Errorf("responseText: got %q", resp.ResponseText)
	}
	if resp.Query != "convert 10 km to miles" {
		t.Errorf("query: got %q", resp.Query)
	}
}

func TestQuestion_PlusDecodesToSpace(t *testing.T) {
	h := newTestRouter(t, serverOpts{})

	resp := decodeBody[questionResponse](t, doGet(t, h, "/api/question?q=hi+there"))
	if resp.Query != "hi there" {
		t.Errorf("query: got %q, want %q", resp.Query, "hi there")
	}
}

func TestQuestion_DecodedOnce(t *testing.T) {
	h := newTestRouter(t, serverOpts{})

	// %2525 decodes to the literal "%25", not to "%".
	resp := decodeBody[questionResponse](t, doGet(t, h, "/api/question?q=hello%2525"))
	if resp.Query != "hello%25" {
		t.Errorf("query: got %q, want %q", resp.Query, "hello%25")
	}
}

func TestQuestion_MissingQueryGreets(t *testing.T) {
	h := newTestRouter(t, serverOpts{})

	rr := doGet(t, h, "/api/question")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	resp := decodeBody[questionResponse](t, rr)
	if resp.ResponseText != "Hello! I'm askbot." {
		t.Errorf("responseText: got %q", resp.ResponseText)
	}
}

func TestQuestion_Wikipedia(t *testing.T) {
	h := newTestRouter(t, serverOpts{lookup: &fakeLookup{summary: "Ohm's law relates current and voltage."}})

	resp := decodeBody[questionResponse](t, doGet(t, h, "/api/question?q=what%20is%20ohms%20law"))
	if resp.Action != "wikipedia" {
		t.Fatalf("action: got %q", resp.Action)
	}
	if resp.ResponseText != "Ohm's law relates current and voltage." {
		t.Errorf("responseText: got %q", resp.ResponseText)
	}
}

func TestQuestion_WikipediaLookupFailureStillOK(t *testing.T) {
	h := newTestRouter(t, serverOpts{lookup: &fakeLookup{err: domain.ErrLookup}})

	rr := doGet(t, h, "/api/question?q=what%20is%20ohms%20law")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	resp := decodeBody[questionResponse](t, rr)
	if resp.ResponseText == "" {
		t.Error("expected an apology text")
	}
}

func TestQuestion_MalformedEncoding_500WithMessage(t *testing.T) {
	h := newTestRouter(t, serverOpts{})

	rr := doGet(t, h, "/api/question?q=%E0%A4%A")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rr.Code)
	}
	resp := decodeBody[errorResponse](t, rr)
	if resp.Code != 500 {
		t.Errorf("code: got %d, want 500", resp.Code)
	}
	if !strings.Contains(resp.Error, "invalid URL escape") {
		t.Errorf("error: got %q, want decoder message", resp.Error)
	}
}

func TestQuestion_InternalError_GenericMessage(t *testing.T) {
	h := newTestRouter(t, serverOpts{resolver: brokenResolver{}})

	rr := doGet(t, h, "/api/question?q=hello")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rr.Code)
	}
	resp := decodeBody[errorResponse](t, rr)
	if resp.Error != GenericErrorMessage {
		t.Errorf("error: got %q, want %q", resp.Error, GenericErrorMessage)
	}
	if resp.Code != 500 {
		t.Errorf("code: got %d, want 500", resp.Code)
	}
}

func TestWelcome(t *testing.T) {
	h := newTestRouter(t, serverOpts{})

	rr := doGet(t, h, "/api/welcome")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	resp := decodeBody[welcomeResponse](t, rr)
	if resp.ResponseText != "Welcome to askbot!" {
		t.Errorf("responseText: got %q", resp.ResponseText)
	}
}

func TestAllQuestions(t *testing.T) {
	h := newTestRouter(t, serverOpts{})

	rr := doGet(t, h, "/api/allQuestions")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	questions := decodeBody[[]string](t, rr)
	if len(questions) == 0 {
		t.Fatal("expected a non-empty question list")
	}
	for _, q := range questions {
		if len(q) < chatuc.MinListedQuestionLen {
			t.Errorf("question %q is shorter than %d", q, chatuc.MinListedQuestionLen)
		}
	}
}

func TestSuggest(t *testing.T) {
	h := newTestRouter(t, serverOpts{})

	rr := doGet(t, h, "/api/suggest?q=circuit&limit=3")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	got := decodeBody[[]string](t, rr)
	if len(got) == 0 || len(got) > 3 {
		t.Fatalf("expected 1..3 suggestions, got %v", got)
	}
	if !strings.Contains(strings.ToLower(got[0]), "circuit breaker") {
		t.Errorf("first suggestion: got %q", got[0])
	}
}

func TestSuggest_EmptyQuery(t *testing.T) {
	h := newTestRouter(t, serverOpts{})

	rr := doGet(t, h, "/api/suggest?limit=nope")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if got := decodeBody[[]string](t, rr); len(got) != 0 {
		t.Errorf("expected no suggestions, got %v", got)
	}
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		health     func(kb *knowledge.Base) *healthuc.Service
		wantCode   int
		wantStatus string
	}{
		{
			name:       "ok without cache",
			health:     func(kb *knowledge.Base) *healthuc.Service { return healthuc.New(kb, nil) },
			wantCode:   http.StatusOK,
			wantStatus: "ok",
		},
		{
			name: "degraded cache",
			health: func(kb *knowledge.Base) *healthuc.Service {
				return healthuc.New(kb, fakeCache{err: errors.New("connection refused")})
			},
			wantCode:   http.StatusOK,
			wantStatus: "degraded",
		},
		{
			name:       "no knowledge",
			health:     func(*knowledge.Base) *healthuc.Service { return healthuc.New(emptyKnowledge{}, nil) },
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestRouter(t, serverOpts{health: tc.health(testKnowledge(t))})

			rr := doGet(t, h, "/health")
			if rr.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d", rr.Code, tc.wantCode)
			}
			resp := decodeBody[healthResponse](t, rr)
			if resp.Status != tc.wantStatus {
				t.Errorf("health status: got %q, want %q", resp.Status, tc.wantStatus)
			}
			if _, ok := resp.Checks["knowledge"]; !ok {
				t.Error("expected knowledge check in response")
			}
		})
	}
}

func TestRawQueryParam(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"q=hello", "hello", false},
		{"limit=3&q=a%20b", "a b", false},
		{"q=a+b", "a b", false},
		{"q=", "", false},
		{"q=one&q=two", "one", false},
		{"qq=x", "", false},
		{"q=%zz", "", true},
	}

	for _, tc := range tests {
		got, err := rawQueryParam(tc.raw, "q")
		if (err != nil) != tc.wantErr {
			t.Errorf("rawQueryParam(%q): err = %v, wantErr %v", tc.raw, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("rawQueryParam(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestStatic_ServesFileAndIndex(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.html"), "<h1>askbot</h1>")
	writeFile(t, filepath.Join(dir, "css", "site.css"), "body{}")

	h := newTestRouter(t, serverOpts{publicDir: dir})

	rr := doGet(t, h, "/")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "askbot") {
		t.Errorf("index: got %d %q", rr.Code, rr.Body.String())
	}

	rr = doGet(t, h, "/css/site.css")
	if rr.Code != http.StatusOK || rr.Body.String() != "body{}" {
		t.Errorf("asset: got %d %q", rr.Code, rr.Body.String())
	}
}

func TestStatic_NotFoundPage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "404.html"), "<p>lost</p>")

	h := newTestRouter(t, serverOpts{publicDir: dir})

	rr := doGet(t, h, "/does/not/exist")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rr.Code)
	}
	if rr.Body.String() != "<p>lost</p>" {
		t.Errorf("body: got %q", rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type: got %q", ct)
	}
}

func TestStatic_NotFoundPlainText(t *testing.T) {
	h := newTestRouter(t, serverOpts{publicDir: filepath.Join(t.TempDir(), "missing")})

	rr := doGet(t, h, "/nothing-here")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rr.Code)
	}
	if rr.Body.String() != notFoundMessage {
		t.Errorf("body: got %q, want %q", rr.Body.String(), notFoundMessage)
	}
}

func TestStatic_DirectoryWithoutIndex(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "img", "logo.txt"), "logo")

	h := newTestRouter(t, serverOpts{publicDir: dir})

	if rr := doGet(t, h, "/img/"); rr.Code != http.StatusNotFound {
		t.Errorf("directory listing: got %d, want 404", rr.Code)
	}
}

func TestStatic_PathTraversal(t *testing.T) {
	dir := t.TempDir()
	h := newTestRouter(t, serverOpts{publicDir: dir})

	if rr := doGet(t, h, "/../../etc/passwd"); rr.Code != http.StatusNotFound {
		t.Errorf("traversal: got %d, want 404", rr.Code)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
