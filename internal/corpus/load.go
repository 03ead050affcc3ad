// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus retrieves the harvested vocabulary corpus. Retrieval
// degrades silently: the dynamic endpoint is tried first, then the
// SQLite fetch cache, then the bundled file, and finally generation
// proceeds with no corpus at all. A missing corpus is normal operation,
// never an error.
package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/pdiddy/briefing-engine/internal/httputil"
	"github.com/pdiddy/briefing-engine/pkg/types"
)

const defaultTimeout = 15 * time.Second

// Loader resolves a corpus from the configured sources.
type Loader struct {
	cfg    types.CorpusConfig
	token  string
	client *http.Client
	cache  *Cache
	w      io.Writer
}

// NewLoader builds a Loader. token is the optional bearer token for the
// corpus endpoint (loaded from .secrets/corpus-endpoint-token); w
// receives human-readable progress lines.
func NewLoader(cfg types.CorpusConfig, token string, w io.Writer) (*Loader, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	l := &Loader{
		cfg:    cfg,
		token:  token,
		client: &http.Client{Timeout: timeout},
		w:      w,
	}

	if cfg.CacheDir != "" {
		cache, err := OpenCache(cfg.CacheDir)
		if err != nil {
			return nil, err
		}
		l.cache = cache
	}
	return l, nil
}

// Close releases the fetch cache, if any.
func (l *Loader) Close() error {
	if l.cache == nil {
		return nil
	}
	return l.cache.Close()
}

// Load resolves the corpus: endpoint, then cache, then bundled file,
// then nil. A nil corpus with a nil error means full-fallback
// generation. Only context cancellation is surfaced as an error.
func (l *Loader) Load(ctx context.Context) (*types.Corpus, error) {
	if l.cfg.Endpoint != "" {
		corpus, payload, err := l.fetchEndpoint(ctx)
		if err == nil {
			fmt.Fprintf(l.w, "corpus: fetched from %s (%d slides, %d sources)\n",
				l.cfg.Endpoint, corpus.Stats.TotalSlides, corpus.Stats.UniqueSources)
			if l.cache != nil {
				if cerr := l.cache.Put(l.cfg.Endpoint, payload); cerr != nil {
					fmt.Fprintf(l.w, "warning: %v\n", cerr)
				}
			}
			return corpus, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		fmt.Fprintf(l.w, "corpus: endpoint unavailable (%v)\n", err)
	}

	if l.cache != nil {
		corpus, ok, err := l.cache.Latest()
		if err != nil {
			fmt.Fprintf(l.w, "warning: %v\n", err)
		} else if ok {
			fmt.Fprintln(l.w, "corpus: using cached fetch")
			return corpus, nil
		}
	}

	if l.cfg.File != "" {
		corpus, err := LoadFile(l.cfg.File)
		if err != nil {
			fmt.Fprintf(l.w, "corpus: bundled file unusable (%v)\n", err)
		} else {
			fmt.Fprintf(l.w, "corpus: loaded bundled file %s\n", l.cfg.File)
			return corpus, nil
		}
	}

	fmt.Fprintln(l.w, "corpus: none available, using built-in vocabulary")
	return nil, nil
}

// fetchEndpoint GETs the dynamic endpoint, which responds with
// {"available": bool, "corpus": {...}}. The raw corpus payload is
// returned alongside the decoded value for caching.
func (l *Loader) fetchEndpoint(ctx context.Context) (*types.Corpus, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.Endpoint, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("building corpus request: %w", err)
	}
	if l.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", l.cfg.UserAgent)
	}
	if l.token != "" {
		req.Header.Set("Authorization", "Bearer "+l.token)
	}

	resp, err := httputil.DoWithRetry(ctx, l.client, req, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching corpus: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("corpus endpoint returned %s", resp.Status)
	}

	var env struct {
		Available bool            `json:"available"`
		Corpus    json.RawMessage `json:"corpus"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, nil, fmt.Errorf("decoding corpus envelope: %w", err)
	}
	if !env.Available || len(env.Corpus) == 0 {
		return nil, nil, fmt.Errorf("corpus endpoint reports unavailable")
	}

	var corpus types.Corpus
	if err := json.Unmarshal(env.Corpus, &corpus); err != nil {
		return nil, nil, fmt.Errorf("decoding corpus: %w", err)
	}
	return &corpus, env.Corpus, nil
}

// LoadFile reads a bare Corpus JSON object from disk.
func LoadFile(path string) (*types.Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus file: %w", err)
	}
	var corpus types.Corpus
	if err := json.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("parsing corpus file: %w", err)
	}
	return &corpus, nil
}
