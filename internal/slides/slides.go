// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package slides holds one pure generator per slide type. Every
// generator takes (classification, organization, vocabulary view,
// random source) and returns a fully populated slide record; nothing
// here touches shared state, so generation is safe to run per request.
//
// Titles follow a two-tier fallback: a corpus-sourced title when the
// view can supply one, otherwise a uniform pick from that type's fixed
// default titles. The two tiers are never pooled.
package slides

import (
	"fmt"

	"github.com/pdiddy/briefing-engine/internal/randutil"
	"github.com/pdiddy/briefing-engine/internal/vocab"
	"github.com/pdiddy/briefing-engine/pkg/types"
)

// Generator produces one body slide. The assembler draws generators
// from a weighted pool; any generator may run more than once per deck.
type Generator func(cls types.Classification, org string, v *vocab.View, src randutil.Source) (types.Slide, error)

// meta builds the shared discriminator/classification header.
func meta(t types.SlideType, cls types.Classification) types.SlideMeta {
	return types.SlideMeta{Type: t, Classification: cls}
}

// slideTitle resolves a slide title through the two-tier fallback.
func slideTitle(v *vocab.View, src randutil.Source, t types.SlideType) (string, error) {
	if title, ok := v.SlideTitle(src, t); ok {
		return title, nil
	}
	title, err := randutil.PickOne(src, defaultTitles[t])
	if err != nil {
		return "", fmt.Errorf("default title for %s: %w", t, err)
	}
	return title, nil
}
