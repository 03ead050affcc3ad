// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"fmt"

	"github.com/pdiddy/briefing-engine/internal/randutil"
	"github.com/pdiddy/briefing-engine/internal/vocab"
	"github.com/pdiddy/briefing-engine/pkg/types"
)

// Questions builds the mandatory next-to-last slide.
func Questions(cls types.Classification, org string, v *vocab.View, src randutil.Source) (*types.QuestionsSlide, error) {
	heading, err := randutil.PickOne(src, questionsHeadings)
	if err != nil {
		return nil, fmt.Errorf("questions heading: %w", err)
	}
	return &types.QuestionsSlide{
		SlideMeta: meta(types.SlideQuestions, cls),
		Heading:   heading,
	}, nil
}

// Backup builds the optional strictly-last slide.
func Backup(cls types.Classification, org string, v *vocab.View, src randutil.Source) (*types.BackupSlide, error) {
	heading, err := randutil.PickOne(src, backupHeadings)
	if err != nil {
		return nil, fmt.Errorf("backup heading: %w", err)
	}
	return &types.BackupSlide{
		SlideMeta: meta(types.SlideBackup, cls),
		Heading:   heading,
	}, nil
}
