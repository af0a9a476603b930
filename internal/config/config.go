package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is prepended to every variable name, e.g. SEARCHY_API_PORT.
const envPrefix = "searchy"

type Config struct {
	API     APIConfig
	Server  ServerConfig
	Cache   CacheConfig
	Search  SearchConfig
	YouTube YouTubeConfig
}

type APIConfig struct {
	Title       string `envconfig:"API_TITLE" default:"Searchy"`
	Version     string `envconfig:"API_VERSION" default:"0.1.0"`
	Description string `envconfig:"API_DESCRIPTION" default:"Efficient YouTube search API service without API key requirements"`
}

type ServerConfig struct {
	Port            int           `envconfig:"API_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"API_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"API_WRITE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `envconfig:"API_SHUTDOWN_TIMEOUT" default:"10s"`
}

type CacheConfig struct {
	DefaultTTL      time.Duration `envconfig:"CACHE_DEFAULT_TTL" default:"5m"`
	SearchTTL       time.Duration `envconfig:"CACHE_SEARCH_TTL" default:"5m"`
	VideoTTL        time.Duration `envconfig:"CACHE_VIDEO_TTL" default:"10m"`
	CleanupInterval time.Duration `envconfig:"CACHE_CLEANUP_INTERVAL" default:"1m"`
}

type SearchConfig struct {
	DefaultLimit int `envconfig:"SEARCH_DEFAULT_LIMIT" default:"10"`
	MaxLimit     int `envconfig:"SEARCH_MAX_LIMIT" default:"50"`
}

type YouTubeConfig struct {
	BinPath          string        `envconfig:"YTDLP_PATH" default:"yt-dlp"`
	AgeLimit         int           `envconfig:"YOUTUBE_AGE_LIMIT" default:"21"`
	DefaultBrowser   string        `envconfig:"YOUTUBE_DEFAULT_BROWSER" default:"chrome"`
	FallbackBrowsers []string      `envconfig:"YOUTUBE_FALLBACK_BROWSERS" default:"firefox,edge,safari,opera,brave"`
	ExtractTimeout   time.Duration `envconfig:"YOUTUBE_EXTRACT_TIMEOUT" default:"60s"`
	MaxConcurrent    int           `envconfig:"YOUTUBE_MAX_CONCURRENT" default:"4"`
	AudioURLValidity time.Duration `envconfig:"YOUTUBE_AUDIO_URL_VALIDITY" default:"6h"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
