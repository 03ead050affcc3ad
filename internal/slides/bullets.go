// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"fmt"

	"github.com/pdiddy/briefing-engine/internal/randutil"
	"github.com/pdiddy/briefing-engine/internal/vocab"
	"github.com/pdiddy/briefing-engine/pkg/types"
)

// Bullets produces 4-8 bullet lines, each a verb plus one or two domain
// terms plus a qualifying phrase, and a bottom-line summary taken from
// a corpus sample sentence when one exists.
func Bullets(cls types.Classification, org string, v *vocab.View, src randutil.Source) (types.Slide, error) {
	title, err := slideTitle(v, src, types.SlideBullets)
	if err != nil {
		return nil, err
	}

	count := src.IntRange(4, 8)
	bullets := make([]string, 0, count)
	for i := 0; i < count; i++ {
		line, err := bulletLine(v, src)
		if err != nil {
			return nil, fmt.Errorf("bullet line: %w", err)
		}
		bullets = append(bullets, line)
	}

	bottomLine, ok := v.SampleSentence(src, types.SlideBullets)
	if !ok {
		bottomLine, err = randutil.PickOne(src, defaultBottomLines)
		if err != nil {
			return nil, fmt.Errorf("bottom line: %w", err)
		}
	}

	return &types.BulletsSlide{
		SlideMeta:  meta(types.SlideBullets, cls),
		Title:      title,
		Bullets:    bullets,
		BottomLine: bottomLine,
		Palette:    v.ColorPalette(src),
	}, nil
}

func bulletLine(v *vocab.View, src randutil.Source) (string, error) {
	verb, err := randutil.PickOne(src, bulletVerbs)
	if err != nil {
		return "", err
	}
	term, err := bulletTerm(v, src)
	if err != nil {
		return "", err
	}
	qualifier, err := randutil.PickOne(src, bulletQualifiers)
	if err != nil {
		return "", err
	}

	if randutil.Chance(src, 0.5) {
		second, err := bulletTerm(v, src)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s and %s %s", verb, term, second, qualifier), nil
	}
	return fmt.Sprintf("%s %s %s", verb, term, qualifier), nil
}

// bulletTerm draws from the merged bullets phrase list or the overall
// term list.
func bulletTerm(v *vocab.View, src randutil.Source) (string, error) {
	if randutil.Chance(src, 0.4) {
		return v.BulletPhrase(src)
	}
	return randutil.PickOne(src, v.Terms)
}
