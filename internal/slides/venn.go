// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"fmt"

	"github.com/pdiddy/briefing-engine/internal/randutil"
	"github.com/pdiddy/briefing-engine/internal/vocab"
	"github.com/pdiddy/briefing-engine/pkg/types"
)

// vennCorpusTermFloor is the corpus term count above which the center
// label may be a real corpus term instead of a stock phrase.
const vennCorpusTermFloor = 20

// Venn samples exactly three circle labels, overwrites up to two with
// acronyms half the time, and picks a center label from the stock
// phrase set or, when the corpus term list is rich enough, from the
// corpus itself.
func Venn(cls types.Classification, org string, v *vocab.View, src randutil.Source) (types.Slide, error) {
	title, err := slideTitle(v, src, types.SlideVenn)
	if err != nil {
		return nil, err
	}

	circles := randutil.PickN(src, vennCircleLabels, 3)
	if len(circles) != 3 {
		return nil, fmt.Errorf("venn circles: %w", randutil.ErrEmptyList)
	}
	if randutil.Chance(src, 0.5) {
		acr := v.AcronymSubset(src, src.IntRange(1, 2))
		for i, a := range acr {
			circles[i] = a
		}
	}

	center, err := vennCenter(v, src)
	if err != nil {
		return nil, fmt.Errorf("venn center: %w", err)
	}

	return &types.VennSlide{
		SlideMeta: meta(types.SlideVenn, cls),
		Title:     title,
		Circles:   circles,
		Center:    center,
		Palette:   v.ColorPalette(src),
	}, nil
}

func vennCenter(v *vocab.View, src randutil.Source) (string, error) {
	if v.Available && len(v.Terms) > vennCorpusTermFloor && randutil.Chance(src, 0.5) {
		term, err := randutil.PickOne(src, v.Terms)
		if err != nil {
			return "", err
		}
		return vocab.TitleCase(term), nil
	}
	return randutil.PickOne(src, vennCenterLabels)
}
