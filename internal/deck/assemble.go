// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package deck assembles complete briefing decks: it resolves the
// vocabulary view, picks the deck-wide topic, organization, and
// classification, and drives the slide generators in the required
// order. Each call produces an independent Deck value; there is no
// shared deck state.
package deck

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/briefing-engine/internal/randutil"
	"github.com/pdiddy/briefing-engine/internal/slides"
	"github.com/pdiddy/briefing-engine/internal/vocab"
	"github.com/pdiddy/briefing-engine/pkg/types"
)

const (
	minSlides = 9
	maxSlides = 15

	agendaProbability = 0.65
	backupProbability = 0.5
)

// generatorPool is the body-slide candidate list. It is intentionally
// skewed: bullets and matrix slides dominate real decks, so they appear
// more than once. The uniform draw over this table produces the skewed
// type distribution.
var generatorPool = []slides.Generator{
	slides.Bullets,
	slides.Bullets,
	slides.Bullets,
	slides.Matrix,
	slides.Matrix,
	slides.Timeline,
	slides.OrgChart,
	slides.Flowchart,
	slides.Budget,
	slides.Venn,
}

// Generate assembles one deck from an optional corpus. The slide count
// is uniform in [9,15]; the title slide is always first, the agenda
// (when present) second, questions next-to-last or last, and backup
// (when present) strictly last. The backup coin is decided up front so
// the finished deck always has exactly the chosen count.
func Generate(corpus *types.Corpus, src randutil.Source) (*types.Deck, error) {
	v := vocab.Resolve(corpus)

	topic, err := randutil.PickOne(src, v.Topics)
	if err != nil {
		return nil, fmt.Errorf("picking topic: %w", err)
	}
	org, err := randutil.PickOne(src, v.Organizations)
	if err != nil {
		return nil, fmt.Errorf("picking organization: %w", err)
	}
	cls, err := randutil.PickOne(src, vocab.Classifications)
	if err != nil {
		return nil, fmt.Errorf("picking classification: %w", err)
	}

	target := src.IntRange(minSlides, maxSlides)
	withBackup := randutil.Chance(src, backupProbability)

	deck := make([]types.Slide, 0, target)

	title, err := slides.Title(cls, org, topic, v, src)
	if err != nil {
		return nil, fmt.Errorf("title slide: %w", err)
	}
	deck = append(deck, title)

	if randutil.Chance(src, agendaProbability) {
		agendaTopics := randutil.PickN(src, v.Topics, src.IntRange(4, 7))
		agenda, err := slides.Agenda(cls, agendaTopics, v, src)
		if err != nil {
			return nil, fmt.Errorf("agenda slide: %w", err)
		}
		deck = append(deck, agenda)
	}

	bodyEnd := target - 1
	if withBackup {
		bodyEnd = target - 2
	}
	for len(deck) < bodyEnd {
		gen := generatorPool[src.Uniform(len(generatorPool))]
		slide, err := gen(cls, org, v, src)
		if err != nil {
			return nil, fmt.Errorf("body slide: %w", err)
		}
		deck = append(deck, slide)
	}

	questions, err := slides.Questions(cls, org, v, src)
	if err != nil {
		return nil, fmt.Errorf("questions slide: %w", err)
	}
	deck = append(deck, questions)

	if withBackup {
		backup, err := slides.Backup(cls, org, v, src)
		if err != nil {
			return nil, fmt.Errorf("backup slide: %w", err)
		}
		deck = append(deck, backup)
	}

	return &types.Deck{
		ID:             uuid.NewString(),
		GeneratedAt:    time.Now().UTC(),
		Topic:          topic,
		Organization:   org,
		Classification: cls,
		Slides:         deck,
		CorpusUsed:     v.Available,
		Stats:          v.Stats,
	}, nil
}
