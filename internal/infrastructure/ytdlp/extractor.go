// Package ytdlp runs the yt-dlp CLI to extract YouTube metadata.
package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/Postmodum37/searchy/internal/domain/model"
	"github.com/Postmodum37/searchy/internal/domain/repository"
)

// Config holds configuration for the yt-dlp extractor.
type Config struct {
	// BinPath is the path to the yt-dlp binary.
	// If empty, "yt-dlp" will be used (assumes it's in PATH).
	BinPath string

	// AgeLimit is passed to yt-dlp to allow age-restricted results.
	// Default: 21
	AgeLimit int

	// DefaultBrowser is the browser whose cookies are tried first for
	// age-restricted content.
	// Default: chrome
	DefaultBrowser string

	// FallbackBrowsers are tried in order when the default browser's cookies
	// fail. A final attempt runs without cookies.
	FallbackBrowsers []string

	// AttemptTimeout bounds a single yt-dlp invocation.
	// Default: 60s
	AttemptTimeout time.Duration

	// MaxConcurrent caps concurrent yt-dlp processes. Extraction is a
	// multi-second subprocess call, so the cap keeps a request burst from
	// forking unbounded processes.
	// Default: 4
	MaxConcurrent int
}

// DefaultConfig returns a Config with production-ready defaults.
func DefaultConfig() Config {
	return Config{
		BinPath:          "yt-dlp",
		AgeLimit:         21,
		DefaultBrowser:   "chrome",
		FallbackBrowsers: []string{"firefox", "edge", "safari", "opera", "brave"},
		AttemptTimeout:   60 * time.Second,
		MaxConcurrent:    4,
	}
}

// Extractor implements repository.MetadataExtractor using the yt-dlp CLI.
type Extractor struct {
	config Config
	sem    *semaphore.Weighted
}

// Compile-time verification that Extractor implements MetadataExtractor.
var _ repository.MetadataExtractor = (*Extractor)(nil)

// New creates a yt-dlp backed extractor.
func New(cfg Config) *Extractor {
	if cfg.BinPath == "" {
		cfg.BinPath = "yt-dlp"
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = DefaultConfig().MaxConcurrent
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = DefaultConfig().AttemptTimeout
	}
	return &Extractor{
		config: cfg,
		sem:    semaphore.NewWeighted(int64(cfg.MaxConcurrent)),
	}
}

// Extract runs yt-dlp for the target and decodes its JSON output. Attempts
// walk the browser cookie chain: default browser first, then each fallback,
// then one cookie-less run. The last attempt's error is returned when all
// fail.
func (e *Extractor) Extract(ctx context.Context, target string) (*model.RawVideoInfo, error) {
	if err := e.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("acquire extraction slot: %w", err)
	}
	defer e.sem.Release(1)

	browsers := make([]string, 0, len(e.config.FallbackBrowsers)+2)
	if e.config.DefaultBrowser != "" {
		browsers = append(browsers, e.config.DefaultBrowser)
	}
	browsers = append(browsers, e.config.FallbackBrowsers...)
	browsers = append(browsers, "") // cookie-less last attempt

	var lastErr error
	for _, browser := range browsers {
		info, err := e.run(ctx, target, browser)
		if err == nil {
			return info, nil
		}
		if ctx.Err() != nil {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// run executes a single yt-dlp invocation.
func (e *Extractor) run(ctx context.Context, target, browser string) (*model.RawVideoInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, e.config.AttemptTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.config.BinPath, e.buildArgs(target, browser)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("extraction cancelled: %w", ctx.Err())
		}
		if isUnavailable(stderr.String()) {
			return nil, fmt.Errorf("%w: %s", repository.ErrVideoNotFound, target)
		}
		return nil, fmt.Errorf("yt-dlp execution failed: %w: %s", err, firstLine(stderr.String()))
	}

	var info model.RawVideoInfo
	if err := json.Unmarshal(stdout.Bytes(), &info); err != nil {
		return nil, fmt.Errorf("decode yt-dlp output: %w", err)
	}
	return &info, nil
}

// buildArgs assembles the yt-dlp command line for one attempt. An empty
// browser omits the cookies flag.
func (e *Extractor) buildArgs(target, browser string) []string {
	args := []string{
		"--dump-single-json",
		"--no-warnings",
		"--quiet",
		"--no-check-certificates",
		"--age-limit", strconv.Itoa(e.config.AgeLimit),
	}
	if browser != "" {
		args = append(args, "--cookies-from-browser", browser)
	}
	return append(args, target)
}

// isUnavailable recognizes the yt-dlp error output for videos that do not
// exist or were taken down.
func isUnavailable(stderr string) bool {
	return strings.Contains(stderr, "Video unavailable") ||
		strings.Contains(stderr, "HTTP Error 404")
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
