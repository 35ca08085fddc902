package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"openhours/backend/internal/domain"
	"openhours/backend/internal/store"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (s *Server) getAvailability(w http.ResponseWriter, r *http.Request) {
	log := s.requestLog(r, "GetAvailability")

	var req GetAvailabilityRequest
	if !s.decode(w, r, log, &req) {
		return
	}

	res, err := s.svc.Compute(r.Context(), req.ComputeInput())
	if err != nil {
		s.writeServiceError(w, log, "availability compute failed", err)
		return
	}
	log.Info("availability computed", slog.Int("free_slots", len(res.FreeSlots)))
	writeJSON(w, http.StatusOK, NewAvailabilityResponse(res))
}

func (s *Server) checkAvailability(w http.ResponseWriter, r *http.Request) {
	log := s.requestLog(r, "CheckAvailability")

	var req CheckAvailabilityRequest
	if !s.decode(w, r, log, &req) {
		return
	}

	res, err := s.svc.Check(r.Context(), req.CheckInput())
	if err != nil {
		s.writeServiceError(w, log, "availability check failed", err)
		return
	}
	log.Info("availability checked", slog.Any("calendar_ids", req.CalendarIDs), slog.Int("free_slots", len(res.FreeSlots)))
	writeJSON(w, http.StatusOK, NewAvailabilityResponse(res))
}

func (s *Server) replaceBusyPeriods(w http.ResponseWriter, r *http.Request) {
	calendarID := strings.TrimSpace(chi.URLParam(r, "calendarID"))
	log := s.requestLog(r, "ReplaceBusyPeriods").With(slog.String("calendar_id", calendarID))

	var req ReplaceBusyPeriodsRequest
	req.CalendarID = calendarID
	if !s.decode(w, r, log, &req) {
		return
	}
	if req.CalendarID != calendarID {
		s.writeServiceError(w, log, "", domain.NewValidationError(domain.CodeInvalidRequest, "calendar_id does not match the path"))
		return
	}

	n, err := s.svc.ReplaceBusy(r.Context(), req.ReplaceBusyInput())
	if err != nil {
		s.writeServiceError(w, log, "busy replace failed", err)
		return
	}
	log.Info("busy periods replaced", slog.Int("stored", n))
	writeJSON(w, http.StatusOK, ReplaceBusyPeriodsResponse{CalendarID: calendarID, Stored: n})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	code := http.StatusOK
	checks := make(map[string]string, len(s.readiness))
	for _, c := range s.readiness {
		if err := c.Check(ctx); err != nil {
			s.log.Warn("readiness check failed", slog.String("check", c.Name), slog.Any("err", err))
			checks[c.Name] = "unavailable"
			code = http.StatusServiceUnavailable
			continue
		}
		checks[c.Name] = "ok"
	}

	status := "ready"
	if code != http.StatusOK {
		status = "not_ready"
	}
	writeJSON(w, code, map[string]any{"status": status, "checks": checks})
}

func (s *Server) requestLog(r *http.Request, op string) *slog.Logger {
	return s.log.With(
		slog.String("op", op),
		slog.String("request_id", chimiddleware.GetReqID(r.Context())),
	)
}

// decode reads a JSON body into msg and validates it. It writes the error
// response itself and reports whether the handler should continue.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, log *slog.Logger, msg any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(msg); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			log.Warn("request body too large", slog.Int64("limit", maxErr.Limit))
			writeError(w, http.StatusRequestEntityTooLarge, errorDetail{Code: string(domain.CodeInvalidRequest), Message: "request body too large"})
		case errors.Is(err, io.EOF):
			writeError(w, http.StatusBadRequest, errorDetail{Code: string(domain.CodeInvalidRequest), Message: "request body is required"})
		default:
			log.Warn("invalid request body", slog.Any("err", err))
			writeError(w, http.StatusBadRequest, errorDetail{Code: string(domain.CodeInvalidRequest), Message: "invalid JSON body: " + err.Error()})
		}
		return false
	}
	if dec.More() {
		writeError(w, http.StatusBadRequest, errorDetail{Code: string(domain.CodeInvalidRequest), Message: "request body must contain a single JSON object"})
		return false
	}
	if err := Validate(msg); err != nil {
		s.writeServiceError(w, log, "", err)
		return false
	}
	return true
}

func (s *Server) writeServiceError(w http.ResponseWriter, log *slog.Logger, msg string, err error) {
	switch {
	case domain.IsClientError(err):
		detail := errorDetail{Code: string(domain.CodeOf(err)), Message: err.Error()}
		var pErr *domain.ParseError
		if errors.As(err, &pErr) {
			detail.Field = pErr.Field
		}
		log.Warn("invalid request", slog.Any("err", err), slog.String("code", detail.Code))
		writeError(w, http.StatusBadRequest, detail)
	case errors.Is(err, store.ErrSourceUnavailable):
		log.Warn("calendar source unavailable", slog.Any("err", err))
		writeError(w, http.StatusServiceUnavailable, errorDetail{Code: "SOURCE_UNAVAILABLE", Message: "calendar source unavailable"})
	default:
		log.Error(msg, slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, errorDetail{Code: string(domain.CodeInternal), Message: "internal error"})
	}
}

func writeError(w http.ResponseWriter, status int, detail errorDetail) {
	writeJSON(w, status, errorBody{Error: detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
