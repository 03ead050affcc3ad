// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SlideType discriminates the slide union. Consumers switch on it
// exhaustively; there are exactly eleven variants.
type SlideType string

const (
	SlideTitle     SlideType = "title"
	SlideAgenda    SlideType = "agenda"
	SlideBullets   SlideType = "bullets"
	SlideTimeline  SlideType = "timeline"
	SlideMatrix    SlideType = "matrix"
	SlideOrgChart  SlideType = "orgchart"
	SlideFlowchart SlideType = "flowchart"
	SlideBudget    SlideType = "budget"
	SlideVenn      SlideType = "venn"
	SlideQuestions SlideType = "questions"
	SlideBackup    SlideType = "backup"
)

// Acronym is one corpus acronym entry. The harvest pipeline emits two
// encodings: a bare string ("DOD") or an object with an expansion
// ({"a": "DOD", "e": "Department of Defense"}). Both decode into this
// struct.
type Acronym struct {
	Short     string `json:"a" yaml:"a"`
	Expansion string `json:"e,omitempty" yaml:"e,omitempty"`
}

// UnmarshalJSON accepts either corpus encoding.
func (a *Acronym) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding acronym string: %w", err)
		}
		a.Short = s
		a.Expansion = ""
		return nil
	}

	var obj struct {
		Short     string `json:"a"`
		Expansion string `json:"e"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decoding acronym object: %w", err)
	}
	a.Short = obj.Short
	a.Expansion = obj.Expansion
	return nil
}

// Sample is one harvested slide excerpt: the slide's title and a short
// run of its body text.
type Sample struct {
	Title string `json:"t" yaml:"t"`
	Text  string `json:"s" yaml:"s"`
}

// CorpusStats carries harvest metadata, passed through to consumers
// untouched.
type CorpusStats struct {
	TotalSlides   int `json:"total_slides" yaml:"total_slides"`
	UniqueSources int `json:"unique_sources" yaml:"unique_sources"`
}

// Corpus is the harvested vocabulary bundle (the pipeline's
// slim_corpus.json). Every field is optional; a missing field behaves
// as an empty list. A nil *Corpus means "no corpus" and is a normal,
// fully supported state.
type Corpus struct {
	// Terms is the overall frequency-ranked term list.
	Terms []string `json:"terms" yaml:"terms"`

	// TypeVocab maps a slide type to its frequency-ranked phrase list.
	TypeVocab map[SlideType][]string `json:"type_vocab" yaml:"type_vocab"`

	// Titles is the list of most common real slide titles.
	Titles []string `json:"titles" yaml:"titles"`

	// Acronyms is the frequency-ranked acronym list.
	Acronyms []Acronym `json:"acronyms" yaml:"acronyms"`

	// Palettes holds color palettes extracted from real slides, each a
	// list of hex color strings.
	Palettes [][]string `json:"palettes" yaml:"palettes"`

	// Samples maps a slide type to harvested slide excerpts.
	Samples map[SlideType][]Sample `json:"samples" yaml:"samples"`

	// Stats is harvest metadata.
	Stats CorpusStats `json:"stats" yaml:"stats"`
}

// CorpusEnvelope is the dynamic corpus endpoint's response shape.
type CorpusEnvelope struct {
	Available bool    `json:"available"`
	Corpus    *Corpus `json:"corpus"`
}
