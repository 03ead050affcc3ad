// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"fmt"

	"github.com/pdiddy/briefing-engine/internal/randutil"
	"github.com/pdiddy/briefing-engine/internal/vocab"
	"github.com/pdiddy/briefing-engine/pkg/types"
)

// Title composes the opening slide: topic, organization, a subtitle
// template (half the time interpolating an acronym when any are
// available), and a sensitivity caveat.
func Title(cls types.Classification, org, topic string, v *vocab.View, src randutil.Source) (*types.TitleSlide, error) {
	subtitle, err := subtitle(v, src)
	if err != nil {
		return nil, fmt.Errorf("title subtitle: %w", err)
	}
	caveat, err := randutil.PickOne(src, caveats)
	if err != nil {
		return nil, fmt.Errorf("title caveat: %w", err)
	}

	return &types.TitleSlide{
		SlideMeta:    meta(types.SlideTitle, cls),
		Topic:        topic,
		Organization: org,
		Subtitle:     subtitle,
		Caveat:       caveat,
		Palette:      v.ColorPalette(src),
	}, nil
}

func subtitle(v *vocab.View, src randutil.Source) (string, error) {
	if len(v.Acronyms) > 0 && randutil.Chance(src, 0.5) {
		tmpl, err := randutil.PickOne(src, subtitleAcronym)
		if err != nil {
			return "", err
		}
		acr, err := randutil.PickOne(src, v.Acronyms)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(tmpl, acr), nil
	}
	return randutil.PickOne(src, subtitlePlain)
}
