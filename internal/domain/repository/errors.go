package repository

import "errors"

var (
	// ErrVideoNotFound is returned when the upstream cannot resolve a video.
	ErrVideoNotFound = errors.New("video not found")
)
