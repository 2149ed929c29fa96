package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	netUrl "net/url"
	"strings"

	"github.com/IliaW/partner-evaluator/internal/crawler"
	"github.com/IliaW/partner-evaluator/internal/evaluation"
	"github.com/IliaW/partner-evaluator/internal/evaluator"
	"github.com/asaskevich/govalidator"
	jsoniter "github.com/json-iterator/go"
)

type predictRequest struct {
	URL   string `json:"url"`
	Force bool   `json:"force"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := jsoniter.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.Error("failed to parse request JSON.", slog.String("err", err.Error()))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request format"})
		return
	}
	s.log.Info("received prediction request.", slog.String("url", req.URL))

	if strings.TrimSpace(req.URL) == "" {
		s.log.Warn("no url provided in request.")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "URL is required"})
		return
	}
	if !ValidateURL(req.URL) {
		s.log.Warn("invalid url format.", slog.String("url", req.URL))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid URL format"})
		return
	}

	report, err := s.evaluator.Evaluate(r.Context(), req.URL, req.Force)
	if err != nil {
		status, msg := statusForError(err)
		s.log.Error("prediction failed.", slog.String("url", req.URL), slog.Int("status", status),
			slog.String("err", err.Error()))
		writeJSON(w, status, errorResponse{Error: msg})
		return
	}

	w.Header().Set("X-Evaluation-Id", report.ID)
	if report.Cached {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	writeJSON(w, http.StatusOK, report.Evaluation)
}

func statusForError(err error) (int, string) {
	timeout := errors.Is(err, context.DeadlineExceeded)
	switch {
	case errors.Is(err, evaluation.ErrScrape) && timeout:
		return http.StatusGatewayTimeout, "Timeout while scraping website"
	case errors.Is(err, crawler.ErrEmptyContent):
		return http.StatusInternalServerError, "No readable content found on website"
	case errors.Is(err, crawler.ErrNoContent):
		return http.StatusInternalServerError, "Failed to retrieve content from website"
	case errors.Is(err, evaluation.ErrScrape):
		return http.StatusInternalServerError, "Failed to scrape website: " + causeMessage(err, evaluation.ErrScrape)
	case errors.Is(err, evaluation.ErrEvaluate) && timeout:
		return http.StatusGatewayTimeout, "Timeout during content evaluation"
	case errors.Is(err, evaluation.ErrEvaluate):
		return http.StatusInternalServerError, "Failed to evaluate content: " +
			causeMessage(err, evaluation.ErrEvaluate, evaluator.ErrEvaluation)
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

// causeMessage strips the given wrapper prefixes, outermost first, from the error message.
func causeMessage(err error, wrappers ...error) string {
	msg := err.Error()
	for _, w := range wrappers {
		msg = strings.TrimPrefix(msg, w.Error()+": ")
	}
	return msg
}

// ValidateURL accepts absolute http(s) URLs and bare host names like example.com/about.
func ValidateURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	raw = crawler.NormalizeSeed(raw)
	u, err := netUrl.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	return govalidator.IsURL(raw)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := jsoniter.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to write response.", slog.String("err", err.Error()))
	}
}
