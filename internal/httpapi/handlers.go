package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"go-quiz/internal/api"
)

type handlers struct {
	svc    api.Service
	logger *zap.Logger
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *handlers) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
		)
	})
}

func (h *handlers) fetchUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.FetchUser(r.Context())
	h.respond(w, u, err)
}

func (h *handlers) blockNotifications(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.BlockNotifications(r.Context())
	h.respond(w, u, err)
}

func (h *handlers) gameTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.GameTypes(r.Context())
	h.respond(w, types, err)
}

func (h *handlers) scoreboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.Scoreboard(r.Context())
	h.respond(w, entries, err)
}

func (h *handlers) startBattle(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Type api.GameType `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Type == "" {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	b, err := h.svc.StartBattle(r.Context(), body.Type)
	if err != nil {
		h.respond(w, nil, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *handlers) getBattle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "battleID")
	if !ok {
		return
	}
	b, err := h.svc.GetBattle(r.Context(), id)
	h.respond(w, b, err)
}

func (h *handlers) answer(w http.ResponseWriter, r *http.Request) {
	battleID, ok := pathInt(w, r, "battleID")
	if !ok {
		return
	}
	questionID, ok := pathInt(w, r, "questionID")
	if !ok {
		return
	}

	var req api.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	q, err := h.svc.Answer(r.Context(), battleID, questionID, req)
	h.respond(w, q, err)
}

func (h *handlers) respond(w http.ResponseWriter, v any, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, v)
	case errors.Is(err, api.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, api.ErrUnknownGameType):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return v, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, struct {
		Error string `json:"error"`
	}{Error: msg})
}
