// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vocab resolves the unified vocabulary view that slide
// generation draws from. A harvested corpus is merged with the built-in
// fallback lists under fixed size thresholds: a corpus list that
// exceeds its threshold stands alone, otherwise it is concatenated with
// the fallback list. The merge is deterministic; only the later picks
// from the merged lists are random.
package vocab

import (
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/briefing-engine/internal/randutil"
	"github.com/pdiddy/briefing-engine/pkg/types"
)

// Merge thresholds. These are tuning constants carried over from the
// original generator; do not adjust them without re-checking generated
// output against a real corpus.
const (
	termThreshold        = 20
	titleThreshold       = 20
	acronymThreshold     = 10
	typeVocabThreshold   = 10
	sampleTitleThreshold = 5
)

// sentencePreviewLen bounds sample-sentence previews.
const sentencePreviewLen = 160

// View is the unified vocabulary for one generation pass. It is
// recomputed from the corpus on every deck and discarded afterwards;
// it holds no mutable state.
type View struct {
	// Available reports whether a corpus contributed to this view.
	Available bool

	// Topics are candidate briefing subjects.
	Topics []string

	// Terms is the merged domain term list.
	Terms []string

	// Acronyms is the merged, un-expanded acronym list.
	Acronyms []string

	// Organizations is always the fixed built-in list.
	Organizations []string

	// Titles is the corpus's real slide title list (no built-in
	// fallback exists; per-slide-type defaults live with the
	// generators).
	Titles []string

	// Stats is the corpus harvest metadata, nil without a corpus.
	Stats *types.CorpusStats

	palettes     [][]string
	typeVocab    map[types.SlideType][]string
	rawTypeVocab map[types.SlideType][]string
	samples      map[types.SlideType][]types.Sample
}

// typeVocabFallbacks lists the built-in per-type phrase lists. Only
// bullets has one; other types merge against an empty list.
var typeVocabFallbacks = map[types.SlideType][]string{
	types.SlideBullets: fallbackBulletPhrases,
}

// Resolve derives a View from an optional corpus. A nil corpus yields
// the pure-fallback view. Resolve is side-effect-free and never fails:
// missing corpus fields behave as empty lists.
func Resolve(corpus *types.Corpus) *View {
	v := &View{
		Organizations: Organizations,
		typeVocab:     make(map[types.SlideType][]string),
	}

	if corpus == nil {
		v.Topics = fallbackTopics
		v.Terms = fallbackTerms
		v.Acronyms = fallbackAcronyms
		for t, fb := range typeVocabFallbacks {
			v.typeVocab[t] = fb
		}
		return v
	}

	v.Available = true
	v.Terms = mergeList(corpus.Terms, fallbackTerms, termThreshold)
	v.Topics = mergeList(deriveTopics(corpus.Terms), fallbackTopics, termThreshold)
	v.Acronyms = mergeList(acronymStrings(corpus.Acronyms), fallbackAcronyms, acronymThreshold)
	v.Titles = mergeList(corpus.Titles, nil, titleThreshold)
	v.samples = corpus.Samples
	stats := corpus.Stats
	v.Stats = &stats

	for _, p := range corpus.Palettes {
		if len(p) >= 3 {
			v.palettes = append(v.palettes, p)
		}
	}

	v.rawTypeVocab = corpus.TypeVocab
	seen := make(map[types.SlideType]bool)
	for t, list := range corpus.TypeVocab {
		v.typeVocab[t] = mergeList(list, typeVocabFallbacks[t], typeVocabThreshold)
		seen[t] = true
	}
	for t, fb := range typeVocabFallbacks {
		if !seen[t] {
			v.typeVocab[t] = fb
		}
	}

	return v
}

// mergeList applies the threshold rule to one field: above the
// threshold the corpus list stands alone, otherwise corpus entries are
// concatenated with the fallback.
func mergeList(corpusList, fallback []string, threshold int) []string {
	if len(corpusList) > threshold {
		return corpusList
	}
	merged := make([]string, 0, len(corpusList)+len(fallback))
	merged = append(merged, corpusList...)
	merged = append(merged, fallback...)
	return merged
}

// deriveTopics turns multi-word corpus terms into title-cased briefing
// subjects. The corpus has no dedicated topics field.
func deriveTopics(terms []string) []string {
	var topics []string
	for _, t := range terms {
		if strings.Count(t, " ") >= 1 && len(t) >= 8 {
			topics = append(topics, TitleCase(t))
		}
	}
	return topics
}

// acronymStrings flattens corpus acronym entries to their short forms.
func acronymStrings(acronyms []types.Acronym) []string {
	var out []string
	for _, a := range acronyms {
		if a.Short != "" {
			out = append(out, a.Short)
		}
	}
	return out
}

// BulletPhrase returns one phrase from the merged bullets vocabulary.
func (v *View) BulletPhrase(src randutil.Source) (string, error) {
	return randutil.PickOne(src, v.typeVocab[types.SlideBullets])
}

// TypePhrase returns one phrase from the merged vocabulary for the
// given slide type, or ok=false when the merged list is empty.
func (v *View) TypePhrase(src randutil.Source, t types.SlideType) (string, bool) {
	list := v.typeVocab[t]
	if len(list) == 0 {
		return "", false
	}
	return list[src.Uniform(len(list))], true
}

// SlideTitle returns a corpus-sourced title for the given slide type,
// or ok=false when the corpus cannot supply one. Harvested sample
// titles are preferred, then title-cased per-type phrases, then the
// global real-title list. Callers fall back to their fixed default
// titles on ok=false.
func (v *View) SlideTitle(src randutil.Source, t types.SlideType) (string, bool) {
	if samples := v.samples[t]; len(samples) > sampleTitleThreshold {
		s := samples[src.Uniform(len(samples))]
		if s.Title != "" {
			return s.Title, true
		}
	}
	if list, ok := v.corpusTypeVocab(t); ok {
		return TitleCase(list[src.Uniform(len(list))]), true
	}
	if len(v.Titles) > 0 {
		return v.Titles[src.Uniform(len(v.Titles))], true
	}
	return "", false
}

// corpusTypeVocab returns the raw corpus per-type vocabulary only when
// it exceeds its threshold. The merged list is deliberately not
// consulted here: fallback phrases must never qualify a type for
// corpus-sourced titles.
func (v *View) corpusTypeVocab(t types.SlideType) ([]string, bool) {
	list := v.rawTypeVocab[t]
	if len(list) > typeVocabThreshold {
		return list, true
	}
	return nil, false
}

// SampleSentence returns a harvested sentence for the given slide type,
// truncated to a bounded preview, or ok=false when none exists.
func (v *View) SampleSentence(src randutil.Source, t types.SlideType) (string, bool) {
	samples := v.samples[t]
	if len(samples) == 0 {
		return "", false
	}
	text := strings.TrimSpace(samples[src.Uniform(len(samples))].Text)
	if text == "" {
		return "", false
	}
	if len(text) > sentencePreviewLen {
		// Back up to a rune boundary so the cut never splits a
		// multi-byte character.
		cut := sentencePreviewLen
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = strings.TrimSpace(text[:cut]) + "..."
	}
	return text, true
}

// ColorPalette returns a corpus palette of at least three colors when
// one exists, otherwise the fixed default palette. The choice is made
// fresh on every call.
func (v *View) ColorPalette(src randutil.Source) []string {
	if len(v.palettes) > 0 {
		return v.palettes[src.Uniform(len(v.palettes))]
	}
	return DefaultPalette
}

// AcronymSubset returns up to n distinct acronyms from the merged list.
func (v *View) AcronymSubset(src randutil.Source, n int) []string {
	return randutil.PickN(src, v.Acronyms, n)
}

// TitleCase uppercases the first letter of each word.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
