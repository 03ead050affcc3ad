// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/briefing-engine/internal/corpus"
	"github.com/pdiddy/briefing-engine/internal/logger"
	"github.com/pdiddy/briefing-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve deck generation over HTTP",
	Long: `Serve loads the corpus once, then exposes generation to external
renderers: GET /api/deck returns a freshly generated deck (optionally
seeded via ?seed=N), GET /api/corpus reports corpus availability, and
GET /healthcheck reports liveness.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := viper.GetString("server.mode")
		log, err := logger.New(mode)
		if err != nil {
			return err
		}
		defer log.Sync()

		loader, err := corpus.NewLoader(corpusConfig(), corpusToken(), os.Stderr)
		if err != nil {
			return err
		}
		c, err := loader.Load(cmd.Context())
		loader.Close()
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = viper.GetString("server.addr")
		}

		router := server.NewRouter(c, log, mode)
		log.Info("listening", "addr", addr, "corpus_available", c != nil)
		return router.Run(addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8440)")

	rootCmd.AddCommand(serveCmd)
}
