// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"fmt"

	"github.com/pdiddy/briefing-engine/internal/randutil"
	"github.com/pdiddy/briefing-engine/internal/vocab"
	"github.com/pdiddy/briefing-engine/pkg/types"
)

// Matrix samples 4-6 row labels (replaced wholesale by an acronym
// subset half the time) and 3-5 column labels, then fills the grid with
// uniformly random statuses. Uniform sampling over four states reads as
// alarmingly red; that skew is the product, not a bug.
func Matrix(cls types.Classification, org string, v *vocab.View, src randutil.Source) (types.Slide, error) {
	title, err := slideTitle(v, src, types.SlideMatrix)
	if err != nil {
		return nil, err
	}

	rows := randutil.PickN(src, matrixRowLabels, src.IntRange(4, 6))
	if randutil.Chance(src, 0.5) {
		if acr := v.AcronymSubset(src, len(rows)); len(acr) == len(rows) {
			rows = acr
		}
	}
	cols := randutil.PickN(src, matrixColLabels, src.IntRange(3, 5))
	if len(rows) == 0 || len(cols) == 0 {
		return nil, fmt.Errorf("matrix labels: %w", randutil.ErrEmptyList)
	}

	grid := make([][]types.CellStatus, len(rows))
	for i := range grid {
		cells := make([]types.CellStatus, len(cols))
		for j := range cells {
			cells[j] = types.CellStatuses[src.Uniform(len(types.CellStatuses))]
		}
		grid[i] = cells
	}

	return &types.MatrixSlide{
		SlideMeta: meta(types.SlideMatrix, cls),
		Title:     title,
		Rows:      rows,
		Cols:      cols,
		Grid:      grid,
	}, nil
}
