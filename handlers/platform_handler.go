package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"playShelfAPI/internal/types/platform"
	"playShelfAPI/middleware"
	"playShelfAPI/services"
)

type PlatformHandler struct {
	platformService *services.PlatformService
}

func NewPlatformHandler(platformService *services.PlatformService) *PlatformHandler {
	return &PlatformHandler{
		platformService: platformService,
	}
}

func (h *PlatformHandler) GetPlatforms(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	platforms, err := h.platformService.ListPlatforms(ctx)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load platforms")
		return
	}

	respondWithJSON(w, http.StatusOK, platforms)
}

func (h *PlatformHandler) CreatePlatform(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req platform.CreatePlatformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.platformService.CreatePlatform(ctx, &req)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}
