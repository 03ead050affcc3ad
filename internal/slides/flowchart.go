// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"fmt"

	"github.com/pdiddy/briefing-engine/internal/randutil"
	"github.com/pdiddy/briefing-engine/internal/vocab"
	"github.com/pdiddy/briefing-engine/pkg/types"
)

// Flowchart samples 6-10 process-node labels, overwrites up to 4 with
// acronyms half the time, and labels each transition with a connective
// verb.
func Flowchart(cls types.Classification, org string, v *vocab.View, src randutil.Source) (types.Slide, error) {
	title, err := slideTitle(v, src, types.SlideFlowchart)
	if err != nil {
		return nil, err
	}

	nodes := randutil.PickN(src, flowNodeLabels, src.IntRange(6, 10))
	if len(nodes) < 2 {
		return nil, fmt.Errorf("flowchart nodes: %w", randutil.ErrEmptyList)
	}

	if randutil.Chance(src, 0.5) {
		acr := v.AcronymSubset(src, src.IntRange(1, 4))
		positions := randutil.PickN(src, indices(len(nodes)), len(acr))
		for i, pos := range positions {
			nodes[pos] = acr[i]
		}
	}

	connectors := make([]string, 0, len(nodes)-1)
	for i := 0; i < len(nodes)-1; i++ {
		c, err := randutil.PickOne(src, connectives)
		if err != nil {
			return nil, fmt.Errorf("flowchart connector: %w", err)
		}
		connectors = append(connectors, c)
	}

	return &types.FlowchartSlide{
		SlideMeta:  meta(types.SlideFlowchart, cls),
		Title:      title,
		Nodes:      nodes,
		Connectors: connectors,
	}, nil
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
