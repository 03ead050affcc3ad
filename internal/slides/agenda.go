// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"fmt"

	"github.com/pdiddy/briefing-engine/internal/randutil"
	"github.com/pdiddy/briefing-engine/internal/vocab"
	"github.com/pdiddy/briefing-engine/pkg/types"
)

// Agenda numbers the given topics and assigns each a randomized
// duration and presenter.
func Agenda(cls types.Classification, topics []string, v *vocab.View, src randutil.Source) (*types.AgendaSlide, error) {
	if len(topics) == 0 {
		return nil, fmt.Errorf("agenda topics: %w", randutil.ErrEmptyList)
	}

	title, err := slideTitle(v, src, types.SlideAgenda)
	if err != nil {
		return nil, err
	}

	items := make([]types.AgendaItem, 0, len(topics))
	for i, topic := range topics {
		presenter, err := presenter(src)
		if err != nil {
			return nil, err
		}
		items = append(items, types.AgendaItem{
			Number:    i + 1,
			Topic:     topic,
			Minutes:   src.IntRange(5, 20),
			Presenter: presenter,
		})
	}

	return &types.AgendaSlide{
		SlideMeta: meta(types.SlideAgenda, cls),
		Title:     title,
		Items:     items,
	}, nil
}

func presenter(src randutil.Source) (string, error) {
	rank, err := randutil.PickOne(src, presenterRanks)
	if err != nil {
		return "", fmt.Errorf("presenter rank: %w", err)
	}
	name, err := randutil.PickOne(src, presenterNames)
	if err != nil {
		return "", fmt.Errorf("presenter name: %w", err)
	}
	return rank + " " + name, nil
}
