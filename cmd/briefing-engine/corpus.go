// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/briefing-engine/internal/corpus"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Resolve and inspect the vocabulary corpus",
	Long: `Corpus resolves the corpus the same way generate does (endpoint, fetch
cache, bundled file) and prints its availability, field sizes, and harvest
stats without generating a deck.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := corpus.NewLoader(corpusConfig(), corpusToken(), os.Stderr)
		if err != nil {
			return err
		}
		defer loader.Close()

		c, err := loader.Load(cmd.Context())
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			report := map[string]any{"available": c != nil}
			if c != nil {
				report["terms"] = len(c.Terms)
				report["titles"] = len(c.Titles)
				report["acronyms"] = len(c.Acronyms)
				report["palettes"] = len(c.Palettes)
				report["type_vocab"] = len(c.TypeVocab)
				report["stats"] = c.Stats
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		if c == nil {
			fmt.Println("corpus: unavailable (built-in vocabulary only)")
			return nil
		}
		fmt.Printf("corpus: available\n")
		fmt.Printf("  terms:      %d\n", len(c.Terms))
		fmt.Printf("  titles:     %d\n", len(c.Titles))
		fmt.Printf("  acronyms:   %d\n", len(c.Acronyms))
		fmt.Printf("  palettes:   %d\n", len(c.Palettes))
		fmt.Printf("  type vocab: %d slide types\n", len(c.TypeVocab))
		fmt.Printf("  harvested:  %d slides from %d sources\n",
			c.Stats.TotalSlides, c.Stats.UniqueSources)
		return nil
	},
}

func init() {
	corpusCmd.Flags().Bool("json", false, "output the report as JSON")

	rootCmd.AddCommand(corpusCmd)
}
