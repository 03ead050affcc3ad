// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"fmt"
	"math"

	"github.com/pdiddy/briefing-engine/internal/randutil"
	"github.com/pdiddy/briefing-engine/internal/vocab"
	"github.com/pdiddy/briefing-engine/pkg/types"
)

// Budget cell values are uniform in [budgetMin, budgetMax] $M, rounded
// to one decimal.
const (
	budgetMin = 0.5
	budgetMax = 250.0
)

// Budget builds the six fixed fiscal-year columns and 4-7 sampled
// category rows. Row totals, year totals, and the grand total are
// computed from the sampled cells so the table always reconciles.
func Budget(cls types.Classification, org string, v *vocab.View, src randutil.Source) (types.Slide, error) {
	title, err := slideTitle(v, src, types.SlideBudget)
	if err != nil {
		return nil, err
	}

	categories := randutil.PickN(src, budgetCategories, src.IntRange(4, 7))
	if len(categories) == 0 {
		return nil, fmt.Errorf("budget categories: %w", randutil.ErrEmptyList)
	}

	rows := make([]types.BudgetRow, 0, len(categories))
	yearTotals := make([]float64, len(budgetYears))
	grandTotal := 0.0
	for _, category := range categories {
		values := make([]float64, len(budgetYears))
		sum := 0.0
		for j := range values {
			values[j] = round1(budgetMin + src.Float()*(budgetMax-budgetMin))
			sum += values[j]
			yearTotals[j] += values[j]
		}
		total := round1(sum)
		grandTotal += total
		rows = append(rows, types.BudgetRow{
			Category: category,
			Values:   values,
			Total:    total,
		})
	}
	for j := range yearTotals {
		yearTotals[j] = round1(yearTotals[j])
	}

	return &types.BudgetSlide{
		SlideMeta:  meta(types.SlideBudget, cls),
		Title:      title,
		Years:      budgetYears,
		Rows:       rows,
		YearTotals: yearTotals,
		GrandTotal: round1(grandTotal),
	}, nil
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
