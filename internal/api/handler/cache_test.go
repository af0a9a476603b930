package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Postmodum37/searchy/internal/cache"
)

func TestCacheHandler_Stats(t *testing.T) {
	store := cache.New(5 * time.Minute)
	store.Set("a", 1, time.Minute)
	store.Set("b", 2, time.Minute)

	h := NewCacheHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/cache/stats", nil)
	rec := httptest.NewRecorder()
	h.Stats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp CacheStatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Size != 2 {
		t.Errorf("Size = %d, want 2", resp.Size)
	}
}

func TestCacheHandler_Clear(t *testing.T) {
	store := cache.New(5 * time.Minute)
	store.Set("a", 1, time.Minute)

	h := NewCacheHandler(store)

	req := httptest.NewRequest(http.MethodDelete, "/cache", nil)
	rec := httptest.NewRecorder()
	h.Clear(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if size := store.Size(); size != 0 {
		t.Errorf("Size after clear = %d, want 0", size)
	}
}
