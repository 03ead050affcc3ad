// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vocab

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pdiddy/briefing-engine/internal/randutil"
	"github.com/pdiddy/briefing-engine/pkg/types"
)

func numberedList(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s-%03d", prefix, i)
	}
	return out
}

func TestResolveNilCorpus(t *testing.T) {
	v := Resolve(nil)

	if v.Available {
		t.Error("Available = true for nil corpus")
	}
	if len(v.Terms) != len(fallbackTerms) {
		t.Errorf("len(Terms) = %d, want %d fallback terms", len(v.Terms), len(fallbackTerms))
	}
	if len(v.Topics) != len(fallbackTopics) {
		t.Errorf("len(Topics) = %d, want %d fallback topics", len(v.Topics), len(fallbackTopics))
	}
	if len(v.Acronyms) != len(fallbackAcronyms) {
		t.Errorf("len(Acronyms) = %d, want %d fallback acronyms", len(v.Acronyms), len(fallbackAcronyms))
	}
	if len(v.Organizations) != len(Organizations) {
		t.Errorf("len(Organizations) = %d, want %d", len(v.Organizations), len(Organizations))
	}
	if v.Stats != nil {
		t.Error("Stats should be nil without a corpus")
	}
}

func TestResolveTermsAboveThreshold(t *testing.T) {
	// 25 terms > threshold 20: the corpus list stands alone.
	corpus := &types.Corpus{Terms: numberedList("term", 25)}
	v := Resolve(corpus)

	if !v.Available {
		t.Error("Available = false with a corpus")
	}
	if len(v.Terms) != 25 {
		t.Fatalf("len(Terms) = %d, want 25 corpus terms only", len(v.Terms))
	}
	for i, term := range v.Terms {
		if term != corpus.Terms[i] {
			t.Fatalf("Terms[%d] = %q, want %q", i, term, corpus.Terms[i])
		}
	}
}

func TestResolveTermsAtOrBelowThreshold(t *testing.T) {
	// 20 terms is not above the threshold: corpus + fallback, corpus first.
	corpus := &types.Corpus{Terms: numberedList("term", 20)}
	v := Resolve(corpus)

	want := 20 + len(fallbackTerms)
	if len(v.Terms) != want {
		t.Fatalf("len(Terms) = %d, want %d (corpus + fallback)", len(v.Terms), want)
	}
	present := make(map[string]bool, len(v.Terms))
	for _, term := range v.Terms {
		present[term] = true
	}
	for _, term := range corpus.Terms {
		if !present[term] {
			t.Errorf("merged terms missing corpus term %q", term)
		}
	}
	for _, term := range fallbackTerms {
		if !present[term] {
			t.Errorf("merged terms missing fallback term %q", term)
		}
	}
}

func TestResolveAcronymThreshold(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"above threshold stands alone", 11, 11},
		{"at threshold merges", 10, 10 + len(fallbackAcronyms)},
		{"empty merges", 0, len(fallbackAcronyms)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acronyms := make([]types.Acronym, tt.count)
			for i := range acronyms {
				acronyms[i] = types.Acronym{Short: fmt.Sprintf("ACR%d", i)}
			}
			v := Resolve(&types.Corpus{Acronyms: acronyms})
			if len(v.Acronyms) != tt.want {
				t.Errorf("len(Acronyms) = %d, want %d", len(v.Acronyms), tt.want)
			}
		})
	}
}

func TestResolveOrganizationsNeverCorpusSourced(t *testing.T) {
	v := Resolve(&types.Corpus{Terms: numberedList("term", 100)})
	if len(v.Organizations) != len(Organizations) {
		t.Fatalf("len(Organizations) = %d, want the fixed list", len(v.Organizations))
	}
	for i, org := range v.Organizations {
		if org != Organizations[i] {
			t.Errorf("Organizations[%d] = %q, want %q", i, org, Organizations[i])
		}
	}
}

func TestSlideTitleFromSamples(t *testing.T) {
	samples := make([]types.Sample, 6) // > sampleTitleThreshold
	for i := range samples {
		samples[i] = types.Sample{Title: fmt.Sprintf("REAL TITLE %d", i), Text: "body"}
	}
	v := Resolve(&types.Corpus{
		Samples: map[types.SlideType][]types.Sample{types.SlideBullets: samples},
	})

	src := randutil.New(1)
	title, ok := v.SlideTitle(src, types.SlideBullets)
	if !ok {
		t.Fatal("SlideTitle() ok = false, want a sample title")
	}
	if !strings.HasPrefix(title, "REAL TITLE") {
		t.Errorf("SlideTitle() = %q, want a harvested sample title", title)
	}
}

func TestSlideTitleFromTypeVocab(t *testing.T) {
	v := Resolve(&types.Corpus{
		TypeVocab: map[types.SlideType][]string{
			types.SlideMatrix: numberedList("matrix phrase", 11), // > typeVocabThreshold
		},
	})

	src := randutil.New(1)
	title, ok := v.SlideTitle(src, types.SlideMatrix)
	if !ok {
		t.Fatal("SlideTitle() ok = false, want a title-cased phrase")
	}
	if !strings.HasPrefix(title, "Matrix Phrase") {
		t.Errorf("SlideTitle() = %q, want a title-cased corpus phrase", title)
	}
}

func TestSlideTitleFromGlobalTitles(t *testing.T) {
	// No qualifying samples or per-type vocab: the real-title list is
	// the last corpus tier before the fixed defaults.
	titles := numberedList("REAL TITLE", 3)
	v := Resolve(&types.Corpus{Titles: titles})

	src := randutil.New(1)
	got, ok := v.SlideTitle(src, types.SlideMatrix)
	if !ok {
		t.Fatal("SlideTitle() ok = false, want a global corpus title")
	}
	found := false
	for _, title := range titles {
		if got == title {
			found = true
		}
	}
	if !found {
		t.Errorf("SlideTitle() = %q, not in the corpus title list", got)
	}
}

func TestSlideTitleUnavailable(t *testing.T) {
	tests := []struct {
		name   string
		corpus *types.Corpus
	}{
		{"nil corpus", nil},
		{"small per-type vocab", &types.Corpus{
			TypeVocab: map[types.SlideType][]string{
				types.SlideMatrix: numberedList("p", 10), // merged, not corpus-only
			},
		}},
		{"few samples", &types.Corpus{
			Samples: map[types.SlideType][]types.Sample{
				types.SlideMatrix: {{Title: "A", Text: "b"}},
			},
		}},
	}

	src := randutil.New(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Resolve(tt.corpus)
			if _, ok := v.SlideTitle(src, types.SlideMatrix); ok {
				t.Error("SlideTitle() ok = true, want no corpus title")
			}
		})
	}
}

func TestSampleSentence(t *testing.T) {
	long := strings.Repeat("operational synergy ", 20) // well over the preview bound
	v := Resolve(&types.Corpus{
		Samples: map[types.SlideType][]types.Sample{
			types.SlideBullets: {{Title: "T", Text: long}},
		},
	})

	src := randutil.New(3)
	got, ok := v.SampleSentence(src, types.SlideBullets)
	if !ok {
		t.Fatal("SampleSentence() ok = false, want a sentence")
	}
	if len(got) > sentencePreviewLen+3 {
		t.Errorf("len(SampleSentence()) = %d, want at most %d plus ellipsis", len(got), sentencePreviewLen)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("SampleSentence() = %q, want truncation ellipsis", got)
	}

	if _, ok := v.SampleSentence(src, types.SlideBudget); ok {
		t.Error("SampleSentence() ok = true for a type with no samples")
	}
}

func TestSampleSentenceTruncatesOnRuneBoundary(t *testing.T) {
	// An em-dash straddling the preview bound must be dropped whole,
	// never cut mid-rune.
	text := strings.Repeat("a", sentencePreviewLen-1) + "— aftermath"
	v := Resolve(&types.Corpus{
		Samples: map[types.SlideType][]types.Sample{
			types.SlideBullets: {{Title: "T", Text: text}},
		},
	})

	src := randutil.New(3)
	got, ok := v.SampleSentence(src, types.SlideBullets)
	if !ok {
		t.Fatal("SampleSentence() ok = false, want a sentence")
	}
	if !utf8.ValidString(got) {
		t.Fatalf("SampleSentence() returned invalid UTF-8: %q", got)
	}
	if strings.ContainsRune(got, '—') {
		t.Errorf("SampleSentence() = %q, straddling rune should be dropped", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("SampleSentence() = %q, want truncation ellipsis", got)
	}
}

func TestColorPalette(t *testing.T) {
	src := randutil.New(4)

	// No corpus: always the fixed default.
	v := Resolve(nil)
	if got := v.ColorPalette(src); len(got) != len(DefaultPalette) {
		t.Errorf("ColorPalette() without corpus = %v, want default palette", got)
	}

	// Corpus palettes under three colors are ignored.
	v = Resolve(&types.Corpus{Palettes: [][]string{{"#111111", "#222222"}}})
	if got := v.ColorPalette(src); len(got) != len(DefaultPalette) {
		t.Errorf("ColorPalette() with short palettes = %v, want default palette", got)
	}

	// A qualifying palette is used.
	corpusPalette := []string{"#111111", "#222222", "#333333"}
	v = Resolve(&types.Corpus{Palettes: [][]string{corpusPalette}})
	got := v.ColorPalette(src)
	if len(got) != 3 || got[0] != "#111111" {
		t.Errorf("ColorPalette() = %v, want the corpus palette", got)
	}
}

func TestAcronymSubset(t *testing.T) {
	v := Resolve(nil)
	src := randutil.New(9)

	got := v.AcronymSubset(src, 5)
	if len(got) != 5 {
		t.Fatalf("len(AcronymSubset(5)) = %d, want 5", len(got))
	}
	seen := make(map[string]bool)
	for _, a := range got {
		if seen[a] {
			t.Errorf("AcronymSubset returned %q twice", a)
		}
		seen[a] = true
	}
}

func TestBulletPhraseAlwaysAvailable(t *testing.T) {
	src := randutil.New(17)
	for _, corpus := range []*types.Corpus{nil, {}, {TypeVocab: map[types.SlideType][]string{}}} {
		v := Resolve(corpus)
		if _, err := v.BulletPhrase(src); err != nil {
			t.Errorf("BulletPhrase() error = %v for corpus %+v", err, corpus)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"joint fires integration", "Joint Fires Integration"},
		{"warfighter", "Warfighter"},
		{"", ""},
		{"a b", "A B"},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
