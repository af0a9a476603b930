package handler

import (
	"net/http"

	"github.com/Postmodum37/searchy/internal/cache"
)

type CacheClearResponse struct {
	Message string `json:"message"`
}

type CacheStatsResponse struct {
	Size int `json:"size"`
}

// CacheHandler exposes administrative endpoints over the response cache.
type CacheHandler struct {
	store *cache.Store
}

// NewCacheHandler creates a new CacheHandler.
func NewCacheHandler(store *cache.Store) *CacheHandler {
	return &CacheHandler{store: store}
}

// Clear handles DELETE /cache
func (h *CacheHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.store.Clear()
	JSON(w, http.StatusOK, CacheClearResponse{Message: "Cache cleared successfully"})
}

// Stats handles GET /cache/stats
//
// Size includes entries that are expired but not yet evicted; the sweep and
// lazy reads converge it.
func (h *CacheHandler) Stats(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, CacheStatsResponse{Size: h.store.Size()})
}
