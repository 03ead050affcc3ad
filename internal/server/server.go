// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes deck generation over HTTP for external
// renderers. The server is stateless: the corpus is loaded once at
// startup and every request assembles its own independently seeded
// deck.
package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/briefing-engine/internal/deck"
	"github.com/pdiddy/briefing-engine/internal/logger"
	"github.com/pdiddy/briefing-engine/internal/randutil"
	"github.com/pdiddy/briefing-engine/pkg/types"
)

// Server holds the request handlers' shared read-only state.
type Server struct {
	corpus *types.Corpus
	log    *logger.Logger
}

// NewRouter builds the gin engine. mode "prod"/"production" selects
// gin's release mode.
func NewRouter(corpus *types.Corpus, log *logger.Logger, mode string) *gin.Engine {
	if mode == "prod" || mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{corpus: corpus, log: log}

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLog())

	router.GET("/healthcheck", s.handleHealth)
	api := router.Group("/api")
	{
		api.GET("/deck", s.handleDeck)
		api.GET("/corpus", s.handleCorpus)
	}

	return router
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleDeck generates a fresh deck. An optional ?seed=N makes the
// response reproducible; otherwise a crypto-seeded source is used and
// the chosen seed is reported.
func (s *Server) handleDeck(c *gin.Context) {
	var (
		src  randutil.Source
		seed int64
	)
	if raw := c.Query("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
			return
		}
		seed = parsed
		src = randutil.New(seed)
	} else {
		var err error
		src, seed, err = randutil.NewSeeded()
		if err != nil {
			s.log.Error("seeding generator", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not seed generator"})
			return
		}
	}

	d, err := deck.Generate(s.corpus, src)
	if err != nil {
		s.log.Error("generating deck", "seed", seed, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "deck generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"seed": seed, "deck": d})
}

// handleCorpus reports corpus availability and harvest stats.
func (s *Server) handleCorpus(c *gin.Context) {
	if s.corpus == nil {
		c.JSON(http.StatusOK, gin.H{"available": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"available": true,
		"stats":     s.corpus.Stats,
		"terms":     len(s.corpus.Terms),
		"titles":    len(s.corpus.Titles),
		"acronyms":  len(s.corpus.Acronyms),
		"palettes":  len(s.corpus.Palettes),
	})
}
