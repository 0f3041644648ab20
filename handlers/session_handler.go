package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"playShelfAPI/internal/store"
	"playShelfAPI/internal/types/session"
	"playShelfAPI/middleware"
	"playShelfAPI/services"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

func (h *SessionHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	sessions, err := h.sessionService.ListSessions(ctx)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load sessions")
		return
	}

	respondWithJSON(w, http.StatusOK, sessions)
}

func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req session.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.sessionService.CreateSession(ctx, &req)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

// DeleteSession removes one session addressed by id plus its start_time
// query parameter (RFC 3339), the composite key of the sessions
// collection.
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	id := mux.Vars(r)["id"]

	startTimeParam := r.URL.Query().Get("start_time")
	if startTimeParam == "" {
		respondWithError(w, http.StatusBadRequest, "Query parameter 'start_time' is required")
		return
	}
	startTime, err := time.Parse(time.RFC3339, startTimeParam)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid 'start_time', expected RFC 3339")
		return
	}

	if err := h.sessionService.DeleteSession(ctx, id, startTime); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Session not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to delete session")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Session deleted"})
}
