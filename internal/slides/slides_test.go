// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"strings"
	"testing"

	"github.com/pdiddy/briefing-engine/internal/randutil"
	"github.com/pdiddy/briefing-engine/internal/vocab"
	"github.com/pdiddy/briefing-engine/pkg/types"
)

var testCls = types.Classification{Label: "SECRET", Color: "#c8102e"}

const testOrg = "Joint Task Force Integration Cell"

func TestTitle(t *testing.T) {
	v := vocab.Resolve(nil)
	src := randutil.New(42)

	slide, err := Title(testCls, testOrg, "Enterprise Readiness Posture Review", v, src)
	if err != nil {
		t.Fatalf("Title() error = %v", err)
	}
	if slide.SlideType() != types.SlideTitle {
		t.Errorf("SlideType() = %q, want title", slide.SlideType())
	}
	if slide.Topic != "Enterprise Readiness Posture Review" {
		t.Errorf("Topic = %q", slide.Topic)
	}
	if slide.Organization != testOrg {
		t.Errorf("Organization = %q", slide.Organization)
	}
	if slide.Subtitle == "" {
		t.Error("Subtitle is empty")
	}
	if slide.Caveat == "" {
		t.Error("Caveat is empty")
	}
	if len(slide.Palette) < 3 {
		t.Errorf("len(Palette) = %d, want at least 3", len(slide.Palette))
	}
	if slide.Marking() != testCls {
		t.Errorf("Marking() = %v, want %v", slide.Marking(), testCls)
	}
}

func TestAgenda(t *testing.T) {
	v := vocab.Resolve(nil)
	src := randutil.New(7)
	topics := []string{"Topic One", "Topic Two", "Topic Three", "Topic Four"}

	slide, err := Agenda(testCls, topics, v, src)
	if err != nil {
		t.Fatalf("Agenda() error = %v", err)
	}
	if len(slide.Items) != len(topics) {
		t.Fatalf("len(Items) = %d, want %d", len(slide.Items), len(topics))
	}
	for i, item := range slide.Items {
		if item.Number != i+1 {
			t.Errorf("Items[%d].Number = %d, want %d", i, item.Number, i+1)
		}
		if item.Topic != topics[i] {
			t.Errorf("Items[%d].Topic = %q, want %q", i, item.Topic, topics[i])
		}
		if item.Minutes < 5 || item.Minutes > 20 {
			t.Errorf("Items[%d].Minutes = %d, out of [5, 20]", i, item.Minutes)
		}
		if item.Presenter == "" {
			t.Errorf("Items[%d].Presenter is empty", i)
		}
	}
}

func TestAgendaRejectsEmptyTopics(t *testing.T) {
	v := vocab.Resolve(nil)
	src := randutil.New(7)

	if _, err := Agenda(testCls, nil, v, src); err == nil {
		t.Fatal("Agenda(nil topics) error = nil, want error")
	}
}

func TestOrgChartLayout(t *testing.T) {
	v := vocab.Resolve(nil)

	for seed := int64(0); seed < 40; seed++ {
		src := randutil.New(seed)
		slide, err := OrgChart(testCls, testOrg, v, src)
		if err != nil {
			t.Fatalf("seed %d: OrgChart() error = %v", seed, err)
		}
		chart := slide.(*types.OrgChartSlide)

		if chart.Top == "" {
			t.Fatalf("seed %d: empty top box", seed)
		}
		if len(chart.Deputies) > 3 {
			t.Errorf("seed %d: len(Deputies) = %d, want at most 3", seed, len(chart.Deputies))
		}
		total := 1 + len(chart.Deputies) + len(chart.Offices)
		if total < 6 || total > 14 {
			t.Errorf("seed %d: %d boxes, out of [6, 14]", seed, total)
		}
	}
}

func TestFlowchartConnectors(t *testing.T) {
	v := vocab.Resolve(nil)

	for seed := int64(0); seed < 40; seed++ {
		src := randutil.New(seed)
		slide, err := Flowchart(testCls, testOrg, v, src)
		if err != nil {
			t.Fatalf("seed %d: Flowchart() error = %v", seed, err)
		}
		flow := slide.(*types.FlowchartSlide)

		if len(flow.Nodes) < 6 || len(flow.Nodes) > 10 {
			t.Errorf("seed %d: %d nodes, out of [6, 10]", seed, len(flow.Nodes))
		}
		if len(flow.Connectors) != len(flow.Nodes)-1 {
			t.Errorf("seed %d: %d connectors for %d nodes", seed, len(flow.Connectors), len(flow.Nodes))
		}
		for _, c := range flow.Connectors {
			if c == "" {
				t.Errorf("seed %d: empty connector label", seed)
			}
		}
	}
}

func TestVenn(t *testing.T) {
	v := vocab.Resolve(nil)

	for seed := int64(0); seed < 40; seed++ {
		src := randutil.New(seed)
		slide, err := Venn(testCls, testOrg, v, src)
		if err != nil {
			t.Fatalf("seed %d: Venn() error = %v", seed, err)
		}
		venn := slide.(*types.VennSlide)

		if len(venn.Circles) != 3 {
			t.Fatalf("seed %d: %d circles, want exactly 3", seed, len(venn.Circles))
		}
		if venn.Center == "" {
			t.Errorf("seed %d: empty center label", seed)
		}
	}
}

func TestQuestionsAndBackup(t *testing.T) {
	v := vocab.Resolve(nil)
	src := randutil.New(3)

	q, err := Questions(testCls, testOrg, v, src)
	if err != nil {
		t.Fatalf("Questions() error = %v", err)
	}
	if q.SlideType() != types.SlideQuestions || q.Heading == "" {
		t.Errorf("Questions() = %+v", q)
	}

	b, err := Backup(testCls, testOrg, v, src)
	if err != nil {
		t.Fatalf("Backup() error = %v", err)
	}
	if b.SlideType() != types.SlideBackup || b.Heading == "" {
		t.Errorf("Backup() = %+v", b)
	}
}

func TestSlideTitleTwoTier(t *testing.T) {
	src := randutil.New(5)

	// Without a qualifying corpus the title comes from the fixed
	// default table for the type.
	v := vocab.Resolve(nil)
	title, err := slideTitle(v, src, types.SlideMatrix)
	if err != nil {
		t.Fatalf("slideTitle() error = %v", err)
	}
	found := false
	for _, d := range defaultTitles[types.SlideMatrix] {
		if title == d {
			found = true
		}
	}
	if !found {
		t.Errorf("slideTitle() = %q, not in the matrix default table", title)
	}

	// With rich per-type vocabulary the corpus wins.
	phrases := make([]string, 12)
	for i := range phrases {
		phrases[i] = "corpus risk posture"
	}
	v = vocab.Resolve(&types.Corpus{
		TypeVocab: map[types.SlideType][]string{types.SlideMatrix: phrases},
	})
	title, err = slideTitle(v, src, types.SlideMatrix)
	if err != nil {
		t.Fatalf("slideTitle() error = %v", err)
	}
	if !strings.HasPrefix(title, "Corpus Risk Posture") {
		t.Errorf("slideTitle() = %q, want the corpus phrase", title)
	}
}
