package repository

import (
	"context"

	"github.com/Postmodum37/searchy/internal/domain/model"
)

// MetadataExtractor is the boundary to the upstream metadata source.
// Implementations may retry internally across credential contexts; callers
// see a single blocking call with two outcomes: a raw record or an error.
type MetadataExtractor interface {
	// Extract resolves a watch URL or search target (e.g. "ytsearch10:query")
	// into a raw record. Returns ErrVideoNotFound when the target does not
	// resolve to an available video.
	Extract(ctx context.Context, target string) (*model.RawVideoInfo, error)
}
