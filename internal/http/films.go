package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/Clark-Hu/film-catalog/internal/catalog"
)

type errorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type recordErrorDetails struct {
	Record int    `json:"record,omitempty"`
	Title  string `json:"title,omitempty"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

func (s *Server) handleListFilms(w http.ResponseWriter, r *http.Request) {
	films, err := s.films.ListFilms(r.Context())
	if err != nil {
		s.respondCatalogError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, films)
}

func (s *Server) respondCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, context.Canceled) && r.Context().Err() != nil:
		s.logger.Info("client went away before the catalog was ready", slog.String("error", err.Error()))
	case isTimeout(err):
		s.logger.Warn("films api timed out", slog.String("error", err.Error()))
		s.respondError(w, http.StatusGatewayTimeout, "UPSTREAM_TIMEOUT", "Films API did not answer in time")
	case errors.Is(err, catalog.ErrUpstreamUnavailable):
		s.logger.Error("films api unavailable", slog.String("error", err.Error()))
		s.respondError(w, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "Films API is unavailable")
	case errors.Is(err, catalog.ErrInvalidInput), errors.Is(err, catalog.ErrMagnitudeParseMiss):
		s.logger.Error("films api sent an invalid record", slog.String("error", err.Error()))
		resp := errorResponse{
			Code:    "INVALID_UPSTREAM_RECORD",
			Message: "Films API returned a record that cannot be normalized",
		}
		if details := recordDetails(err); details != nil {
			resp.Details = details
		}
		s.respondJSON(w, http.StatusBadGateway, resp)
	default:
		s.logger.Error("list films failed", slog.String("error", err.Error()))
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list films")
	}
}

func recordDetails(err error) *recordErrorDetails {
	var cerr *catalog.Error
	if !errors.As(err, &cerr) {
		return nil
	}
	details := &recordErrorDetails{
		Record: cerr.Record,
		Title:  cerr.Title,
		Field:  cerr.Field,
		Reason: cerr.Kind.String(),
	}
	if cerr.Err != nil {
		details.Reason = cerr.Err.Error()
	}
	return details
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			s.logger.Error("failed to encode response", slog.String("error", err.Error()))
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	s.respondJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
