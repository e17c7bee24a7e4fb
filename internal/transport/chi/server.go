// Package chi exposes the bot over HTTP using the chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/askbot/internal/domain"
	"github.com/kailas-cloud/askbot/internal/domain/intent"
	"github.com/kailas-cloud/askbot/internal/logger"
	chatuc "github.com/kailas-cloud/askbot/internal/usecase/chat"
	healthuc "github.com/kailas-cloud/askbot/internal/usecase/health"
	suggestuc "github.com/kailas-cloud/askbot/internal/usecase/suggest"
)

// GenericErrorMessage is returned for every failure whose message is not safe to show.
const GenericErrorMessage = "Internal Server Error!"

// errorHandler tries to handle an error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server holds the HTTP handlers.
type Server struct {
	chat          *chatuc.Service
	suggest       *suggestuc.Service
	health        *healthuc.Service
	static        http.Handler
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. publicDir holds static assets and 404.html.
func NewServer(
	chat *chatuc.Service,
	suggest *suggestuc.Service,
	health *healthuc.Service,
	publicDir string,
	logger *zap.Logger,
) *Server {
	s := &Server{
		chat:    chat,
		suggest: suggest,
		health:  health,
		static:  newStaticHandler(publicDir, logger),
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		decodingErrorHandler,
	}
	return s
}

type questionResponse struct {
	ResponseText    string        `json:"responseText"`
	Query           string        `json:"query"`
	Rating          float64       `json:"rating"`
	Action          intent.Intent `json:"action"`
	IsFallback      bool          `json:"isFallback"`
	SimilarQuestion string        `json:"similarQuestion"`
}

type welcomeResponse struct {
	ResponseText string `json:"responseText"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// Question handles GET /api/question?q=.
func (s *Server) Question(w http.ResponseWriter, r *http.Request) {
	q, err := rawQueryParam(r.URL.RawQuery, "q")
	if err != nil {
		s.handleError(w, r, domain.NewDecodingError(err))
		return
	}

	rep, err := s.chat.Answer(r.Context(), q)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, questionResponse{
		ResponseText:    rep.Text,
		Query:           rep.Query,
		Rating:          rep.Rating,
		Action:          rep.Action,
		IsFallback:      rep.IsFallback,
		SimilarQuestion: rep.SimilarQuestion,
	})
}

// Welcome handles GET /api/welcome.
func (s *Server) Welcome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, welcomeResponse{ResponseText: s.chat.Welcome()})
}

// AllQuestions handles GET /api/allQuestions.
func (s *Server) AllQuestions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.chat.AllQuestions())
}

// Suggest handles GET /api/suggest?q=&limit=. An unparsable limit selects the default.
func (s *Server) Suggest(w http.ResponseWriter, r *http.Request) {
	q, err := rawQueryParam(r.URL.RawQuery, "q")
	if err != nil {
		s.handleError(w, r, domain.NewDecodingError(err))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	writeJSON(w, http.StatusOK, s.suggest.Suggest(q, limit))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// NotFound serves static assets for unmatched routes, then the 404 page.
func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	s.static.ServeHTTP(w, r)
}

// rawQueryParam decodes the first value of key from a raw query string exactly once.
// A missing key yields "".
func rawQueryParam(rawQuery, key string) (string, error) {
	for rawQuery != "" {
		var pair string
		pair, rawQuery, _ = strings.Cut(rawQuery, "&")
		k, v, _ := strings.Cut(pair, "=")
		if k != key {
			continue
		}
		decoded, err := url.QueryUnescape(v)
		if err != nil {
			return "", err //nolint:wrapcheck // the decoder message is shown to the client as-is
		}
		return decoded, nil
	}
	return "", nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{
		Error: message,
		Code:  status,
	})
}

// decodingErrorHandler exposes the decoder's message for malformed percent-encoding.
func decodingErrorHandler(w http.ResponseWriter, err error) bool {
	var de *domain.DecodingError
	if !errors.As(err, &de) {
		return false
	}
	writeError(w, http.StatusInternalServerError, de.Error())
	return true
}

func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	for _, h := range s.errorHandlers {
		if h(w, err) {
			log.Warn("request error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, GenericErrorMessage)
}
