// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "briefing-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CorpusConfig holds settings for corpus retrieval.
type CorpusConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint is the dynamic corpus endpoint URL. Empty disables the
	// network fetch.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// File is the path to a bundled corpus JSON file used when the
	// endpoint is unreachable or unavailable.
	File string `json:"file,omitempty" yaml:"file,omitempty"`

	// CacheDir is the directory holding the SQLite fetch cache. Empty
	// disables caching.
	CacheDir string `json:"cache_dir,omitempty" yaml:"cache_dir,omitempty"`
}

// GenerateConfig holds settings for deck generation.
type GenerateConfig struct {
	// Seed seeds the random source. Zero means seed from crypto/rand.
	Seed int64 `json:"seed" yaml:"seed"`

	// Format selects the deck encoding: "json" or "yaml".
	Format string `json:"format" yaml:"format"`

	// Output is the destination path; empty writes to stdout.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address (default ":8440").
	Addr string `json:"addr" yaml:"addr"`

	// Mode selects the logging profile: "dev" or "prod".
	Mode string `json:"mode" yaml:"mode"`
}

// Config is the top-level configuration loaded from
// briefing-engine.yaml and BRIEFING_ENGINE_* environment variables.
type Config struct {
	Corpus   CorpusConfig   `json:"corpus" yaml:"corpus"`
	Generate GenerateConfig `json:"generate" yaml:"generate"`
	Server   ServerConfig   `json:"server" yaml:"server"`
}
