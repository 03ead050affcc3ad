// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Classification is a deck-wide sensitivity marking: a banner label and
// its banner color.
type Classification struct {
	Label string `json:"label" yaml:"label"`
	Color string `json:"color" yaml:"color"`
}

// Slide is the tagged union over the eleven slide variants. Each
// variant is its own struct carrying the deck classification plus
// variant-specific payload; consumers switch on SlideType.
type Slide interface {
	SlideType() SlideType
	Marking() Classification
}

// SlideMeta carries the discriminator and classification shared by all
// slide variants. Embedded by every concrete slide.
type SlideMeta struct {
	Type           SlideType      `json:"type" yaml:"type"`
	Classification Classification `json:"classification" yaml:"classification"`
}

// SlideType returns the union discriminator.
func (m SlideMeta) SlideType() SlideType { return m.Type }

// Marking returns the slide's classification marking.
func (m SlideMeta) Marking() Classification { return m.Classification }

// TitleSlide opens every deck.
type TitleSlide struct {
	SlideMeta    `yaml:",inline"`
	Topic        string   `json:"topic" yaml:"topic"`
	Organization string   `json:"organization" yaml:"organization"`
	Subtitle     string   `json:"subtitle" yaml:"subtitle"`
	Caveat       string   `json:"caveat" yaml:"caveat"`
	Palette      []string `json:"palette" yaml:"palette"`
}

// AgendaItem is one numbered agenda entry.
type AgendaItem struct {
	Number    int    `json:"number" yaml:"number"`
	Topic     string `json:"topic" yaml:"topic"`
	Minutes   int    `json:"minutes" yaml:"minutes"`
	Presenter string `json:"presenter" yaml:"presenter"`
}

// AgendaSlide lists the briefing's agenda.
type AgendaSlide struct {
	SlideMeta `yaml:",inline"`
	Title     string       `json:"title" yaml:"title"`
	Items     []AgendaItem `json:"items" yaml:"items"`
}

// BulletsSlide is the workhorse text slide: 4-8 bullet lines plus a
// bottom-line summary.
type BulletsSlide struct {
	SlideMeta  `yaml:",inline"`
	Title      string   `json:"title" yaml:"title"`
	Bullets    []string `json:"bullets" yaml:"bullets"`
	BottomLine string   `json:"bottom_line" yaml:"bottom_line"`
	Palette    []string `json:"palette" yaml:"palette"`
}

// TimelinePhase is one labeled program phase on the timeline.
type TimelinePhase struct {
	Label      string `json:"label" yaml:"label"`
	FiscalYear string `json:"fiscal_year" yaml:"fiscal_year"`
}

// TimelineSlide lays program phases along a fiscal-year axis.
// TodayOffset is the horizontal position of the "we are here" marker as
// a fraction of the axis width.
type TimelineSlide struct {
	SlideMeta   `yaml:",inline"`
	Title       string          `json:"title" yaml:"title"`
	Phases      []TimelinePhase `json:"phases" yaml:"phases"`
	TodayOffset float64         `json:"today_offset" yaml:"today_offset"`
}

// CellStatus is one risk-matrix cell state.
type CellStatus string

const (
	StatusGreen  CellStatus = "green"
	StatusYellow CellStatus = "yellow"
	StatusRed    CellStatus = "red"
	StatusGrey   CellStatus = "grey"
)

// CellStatuses lists every matrix cell state.
var CellStatuses = []CellStatus{StatusGreen, StatusYellow, StatusRed, StatusGrey}

// MatrixSlide is a rows x cols status grid. Grid always has len(Rows)
// rows of len(Cols) cells each.
type MatrixSlide struct {
	SlideMeta `yaml:",inline"`
	Title     string         `json:"title" yaml:"title"`
	Rows      []string       `json:"rows" yaml:"rows"`
	Cols      []string       `json:"cols" yaml:"cols"`
	Grid      [][]CellStatus `json:"grid" yaml:"grid"`
}

// OrgChartSlide is a three-tier box hierarchy: one top box, up to three
// deputies, and the remainder wrapped into an office grid.
type OrgChartSlide struct {
	SlideMeta `yaml:",inline"`
	Title     string   `json:"title" yaml:"title"`
	Top       string   `json:"top" yaml:"top"`
	Deputies  []string `json:"deputies" yaml:"deputies"`
	Offices   []string `json:"offices" yaml:"offices"`
}

// FlowchartSlide is a linear process chain. Connectors[i] labels the
// transition from Nodes[i] to Nodes[i+1], so len(Connectors) is always
// len(Nodes)-1.
type FlowchartSlide struct {
	SlideMeta  `yaml:",inline"`
	Title      string   `json:"title" yaml:"title"`
	Nodes      []string `json:"nodes" yaml:"nodes"`
	Connectors []string `json:"connectors" yaml:"connectors"`
}

// BudgetRow is one budget category across the fiscal-year columns.
// Total is the computed sum of Values rounded to one decimal.
type BudgetRow struct {
	Category string    `json:"category" yaml:"category"`
	Values   []float64 `json:"values" yaml:"values"`
	Total    float64   `json:"total" yaml:"total"`
}

// BudgetSlide is the fiscal-year funding table. YearTotals and
// GrandTotal are computed from Rows, never sampled, so the table always
// reconciles.
type BudgetSlide struct {
	SlideMeta  `yaml:",inline"`
	Title      string      `json:"title" yaml:"title"`
	Years      []string    `json:"years" yaml:"years"`
	Rows       []BudgetRow `json:"rows" yaml:"rows"`
	YearTotals []float64   `json:"year_totals" yaml:"year_totals"`
	GrandTotal float64     `json:"grand_total" yaml:"grand_total"`
}

// VennSlide is three overlapping circles with a center label.
type VennSlide struct {
	SlideMeta `yaml:",inline"`
	Title     string   `json:"title" yaml:"title"`
	Circles   []string `json:"circles" yaml:"circles"`
	Center    string   `json:"center" yaml:"center"`
	Palette   []string `json:"palette" yaml:"palette"`
}

// QuestionsSlide closes the main body of every deck.
type QuestionsSlide struct {
	SlideMeta `yaml:",inline"`
	Heading   string `json:"heading" yaml:"heading"`
}

// BackupSlide, when present, is strictly the last slide.
type BackupSlide struct {
	SlideMeta `yaml:",inline"`
	Heading   string `json:"heading" yaml:"heading"`
}

// Deck is the complete output of one generation call.
type Deck struct {
	// ID uniquely identifies this generation.
	ID string `json:"id" yaml:"id"`

	// GeneratedAt is the assembly timestamp.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// Topic is the briefing subject shown on the title slide.
	Topic string `json:"topic" yaml:"topic"`

	// Organization is the presenting organization, always drawn from
	// the built-in organization list.
	Organization string `json:"organization" yaml:"organization"`

	// Classification is the deck-wide marking carried by every slide.
	Classification Classification `json:"classification" yaml:"classification"`

	// Slides is the ordered slide sequence, 9-15 entries.
	Slides []Slide `json:"slides" yaml:"slides"`

	// CorpusUsed reports whether a harvested corpus contributed
	// vocabulary to this deck.
	CorpusUsed bool `json:"corpus_used" yaml:"corpus_used"`

	// Stats passes through the corpus harvest metadata when a corpus
	// was used.
	Stats *CorpusStats `json:"stats,omitempty" yaml:"stats,omitempty"`
}
