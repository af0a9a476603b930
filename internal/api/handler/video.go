package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Postmodum37/searchy/internal/domain/model"
	"github.com/Postmodum37/searchy/internal/domain/repository"
	"github.com/Postmodum37/searchy/internal/usecase"
)

// SearchResponse wraps shaped search results with the echoed query and a
// response timestamp.
type SearchResponse struct {
	Query     string                    `json:"query"`
	Results   []model.VideoSearchResult `json:"results"`
	Count     int                       `json:"count"`
	Timestamp time.Time                 `json:"timestamp"`
}

// VideoHandler handles search and video lookup HTTP requests.
type VideoHandler struct {
	svc usecase.VideoService
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(svc usecase.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// Search handles GET /search
func (h *VideoHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		Error(w, http.StatusBadRequest, "invalid_query", "Query parameter q is required")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			Error(w, http.StatusBadRequest, "invalid_limit", "Limit must be an integer")
			return
		}
		limit = parsed
	}

	noCache, err := boolParam(r, "no_cache")
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_no_cache", "no_cache must be a boolean")
		return
	}

	results, err := h.svc.Search(r.Context(), query, limit, noCache)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, SearchResponse{
		Query:     query,
		Results:   results,
		Count:     len(results),
		Timestamp: time.Now().UTC(),
	})
}

// Get handles GET /videos/{id}
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "id")

	noCache, err := boolParam(r, "no_cache")
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_no_cache", "no_cache must be a boolean")
		return
	}

	detail, err := h.svc.GetVideo(r.Context(), videoID, noCache)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, detail)
}

// Audio handles GET /videos/{id}/audio
func (h *VideoHandler) Audio(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "id")

	noCache, err := boolParam(r, "no_cache")
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_no_cache", "no_cache must be a boolean")
		return
	}

	stream, err := h.svc.GetAudioStream(r.Context(), videoID, noCache)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, stream)
}

func (h *VideoHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrVideoNotFound):
		Error(w, http.StatusNotFound, "video_not_found", "Video not found")
	case errors.Is(err, model.ErrNoPlayableAudio):
		Error(w, http.StatusNotFound, "no_playable_audio", "Video has no playable audio format")
	case errors.Is(err, usecase.ErrEmptyQuery):
		Error(w, http.StatusBadRequest, "invalid_query", "Search query cannot be empty")
	case errors.Is(err, usecase.ErrInvalidLimit):
		Error(w, http.StatusBadRequest, "invalid_limit", "Limit must be between 1 and the configured maximum")
	default:
		Error(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}

// boolParam parses an optional boolean query parameter. Absence reads as
// false.
func boolParam(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
