// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/briefing-engine/internal/corpus"
	"github.com/pdiddy/briefing-engine/internal/deck"
	"github.com/pdiddy/briefing-engine/internal/randutil"
	"github.com/pdiddy/briefing-engine/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one briefing deck",
	Long: `Generate assembles one randomized briefing deck and writes it to stdout
or --output. The corpus is resolved endpoint-first with silent fallback to
the fetch cache, the bundled corpus file, and finally the built-in
vocabulary; a missing corpus never fails the command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := corpusConfig()
		if f, _ := cmd.Flags().GetString("corpus-file"); f != "" {
			cfg.File = f
		}
		if noFetch, _ := cmd.Flags().GetBool("no-fetch"); noFetch {
			cfg.Endpoint = ""
		}

		loader, err := corpus.NewLoader(cfg, corpusToken(), os.Stderr)
		if err != nil {
			return err
		}
		defer loader.Close()

		c, err := loader.Load(cmd.Context())
		if err != nil {
			return err
		}

		seed, _ := cmd.Flags().GetInt64("seed")
		if seed == 0 {
			seed = viper.GetInt64("generate.seed")
		}
		var src randutil.Source
		if seed != 0 {
			src = randutil.New(seed)
		} else {
			src, seed, err = randutil.NewSeeded()
			if err != nil {
				return err
			}
		}
		fmt.Fprintf(os.Stderr, "seed: %d\n", seed)

		d, err := deck.Generate(c, src)
		if err != nil {
			return fmt.Errorf("generating deck: %w", err)
		}

		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = viper.GetString("generate.format")
		}
		data, err := encodeDeck(d, format)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("writing deck: %w", err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s (%d slides)\n", output, len(d.Slides))
		return nil
	},
}

func encodeDeck(d *types.Deck, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding deck: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(d)
		if err != nil {
			return nil, fmt.Errorf("encoding deck: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}

func init() {
	generateCmd.Flags().Int64("seed", 0, "random seed (0 seeds from crypto/rand)")
	generateCmd.Flags().String("format", "", "output format: json or yaml")
	generateCmd.Flags().String("output", "", "output path (default: stdout)")
	generateCmd.Flags().String("corpus-file", "", "path to a bundled corpus JSON file")
	generateCmd.Flags().Bool("no-fetch", false, "skip the corpus endpoint fetch")

	rootCmd.AddCommand(generateCmd)
}
