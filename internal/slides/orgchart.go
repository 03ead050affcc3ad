// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"fmt"

	"github.com/pdiddy/briefing-engine/internal/randutil"
	"github.com/pdiddy/briefing-engine/internal/vocab"
	"github.com/pdiddy/briefing-engine/pkg/types"
)

// OrgChart samples 6-11 box labels from the fixed hierarchy vocabulary,
// optionally appends up to 3 acronym boxes, and arranges them in the
// fixed three-tier layout: one top box, up to three deputies, remainder
// wrapped into the office grid.
func OrgChart(cls types.Classification, org string, v *vocab.View, src randutil.Source) (types.Slide, error) {
	title, err := slideTitle(v, src, types.SlideOrgChart)
	if err != nil {
		return nil, err
	}

	boxes := randutil.PickN(src, orgBoxLabels, src.IntRange(6, 11))
	if len(boxes) == 0 {
		return nil, fmt.Errorf("orgchart boxes: %w", randutil.ErrEmptyList)
	}
	if randutil.Chance(src, 0.5) {
		boxes = append(boxes, v.AcronymSubset(src, src.IntRange(1, 3))...)
	}

	deputies := boxes[1:]
	if len(deputies) > 3 {
		deputies = deputies[:3]
	}

	return &types.OrgChartSlide{
		SlideMeta: meta(types.SlideOrgChart, cls),
		Title:     title,
		Top:       boxes[0],
		Deputies:  deputies,
		Offices:   boxes[1+len(deputies):],
	}, nil
}
