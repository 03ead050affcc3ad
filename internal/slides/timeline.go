// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"fmt"
	"math"

	"github.com/pdiddy/briefing-engine/internal/randutil"
	"github.com/pdiddy/briefing-engine/internal/vocab"
	"github.com/pdiddy/briefing-engine/pkg/types"
)

// Timeline samples 5-9 phase labels without replacement from the fixed
// phase vocabulary and assigns each an increasing fiscal-year label
// from a randomized base year with fractional-year stepping. The
// "we are here" marker sits at a random horizontal offset.
func Timeline(cls types.Classification, org string, v *vocab.View, src randutil.Source) (types.Slide, error) {
	title, err := slideTitle(v, src, types.SlideTimeline)
	if err != nil {
		return nil, err
	}

	labels := randutil.PickN(src, timelinePhases, src.IntRange(5, 9))
	if len(labels) < 5 {
		return nil, fmt.Errorf("timeline phases: %w", randutil.ErrEmptyList)
	}

	baseYear := src.IntRange(2024, 2027)
	step := 0.5 + src.Float() // years per phase, in [0.5, 1.5)

	phases := make([]types.TimelinePhase, 0, len(labels))
	for i, label := range labels {
		year := baseYear + int(math.Floor(float64(i)*step))
		phases = append(phases, types.TimelinePhase{
			Label:      label,
			FiscalYear: fmt.Sprintf("FY%02d", year%100),
		})
	}

	return &types.TimelineSlide{
		SlideMeta:   meta(types.SlideTimeline, cls),
		Title:       title,
		Phases:      phases,
		TodayOffset: 0.15 + src.Float()*0.7,
	}, nil
}
