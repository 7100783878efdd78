package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.lost.host/meutraa/urchin/internal/game"
	"git.lost.host/meutraa/urchin/internal/testdata"
)

func TestParse(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "chart.yaml")
	if err := os.WriteFile(file, []byte(testdata.ChartYAML), 0o644); nil != err {
		t.Fatal(err)
	}

	var p Parser = &DefaultParser{}
	charts, err := p.Parse(file)
	if nil != err {
		t.Fatal("unable to parse chart", err)
	}
	if len(charts) != 2 {
		t.Fatal("expected 2 difficulties, got", len(charts))
	}

	c := charts[0]
	if c.Difficulty.Name != "basic" || c.Difficulty.Level != "3" {
		t.Error("difficulty", c.Difficulty)
	}
	if c.NoteCount != 8 || c.HoldCount != 1 || c.SlideCount != 1 || c.HellCount != 1 {
		t.Error("counts", c.NoteCount, c.HoldCount, c.SlideCount, c.HellCount)
	}
	// 5 short, hold head + 2, slide head + step + end, air action 2
	if total := c.Total(); total != 13 {
		t.Error("total", total)
	}
	if c.Sum == "" || c.Sum == charts[1].Sum {
		t.Error("each difficulty needs its own sum")
	}

	for i := 1; i < len(c.Notes); i++ {
		if c.Notes[i].Time < c.Notes[i-1].Time {
			t.Fatal("notes are not sorted")
		}
	}

	var slide *game.Note
	for _, n := range c.Notes {
		if n.Category == game.Slide {
			slide = n
		}
		if n.Category == game.Air && n.Direction != game.Down {
			t.Error("air direction was not read")
		}
	}
	if nil == slide || len(slide.Steps) != 3 || slide.Duration != 1 {
		t.Fatal("slide", slide)
	}
	if curve := slide.Steps[1].Curve; len(curve) != 3 || curve[2] != (game.CurvePoint{Offset: 0.5, Center: 0.5}) {
		t.Error("curve", curve)
	}
}

var invalidTests = map[string]error{
	`charts: []`: ErrNoCharts,
	`charts: [{notes: [{type: hold, time: 1, lane: 0, length: 4, steps: [{role: step, time: 2, lane: 0, length: 4}]}]}]`:   ErrMissingEnd,
	`charts: [{notes: [{type: tap, time: 1, lane: 14, length: 4}]}]`:                                                       ErrLaneSpan,
	`charts: [{notes: [{type: hold, time: 1, lane: 0, length: 4, steps: [{role: end, time: 0.5, lane: 0, length: 4}]}]}]`: ErrStepOrder,
	`charts: [{notes: [{type: airaction, time: 1, lane: 0, length: 4, steps: [{role: control, time: 1.5, lane: 0, length: 4}, {role: end, time: 2, lane: 0, length: 4}, {role: step, time: 3, lane: 0, length: 4}]}]}]`: ErrStepOrder,
	`charts: [{notes: []}]`: ErrNoScorableNotes,
}

func TestParseInvalid(t *testing.T) {
	p := DefaultParser{}
	for source, expected := range invalidTests {
		_, err := p.ParseBytes([]byte(source))
		if !errors.Is(err, expected) {
			t.Log("source  ", source)
			t.Log("error   ", err)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestParseValidation(t *testing.T) {
	var validationTests = map[string]string{
		`charts: [{notes: [{type: mine, time: 1, lane: 0, length: 4}]}]`:                     "type",
		`charts: [{notes: [{type: tap, time: 1, lane: 0}]}]`:                                  "length",
		`charts: [{notes: [{type: tap, time: -1, lane: 0, length: 1}]}]`:                      "time",
		`charts: [{notes: [{type: air, time: 1, lane: 0, length: 1, direction: left}]}]`:      "direction",
		`charts: [{notes: [{type: hold, time: 1, lane: 0, length: 1, steps: [{role: end, time: 2, lane: 0, length: 1, curve: [[0, 2]]}]}]}]`: "curve",
	}

	p := DefaultParser{}
	for source, field := range validationTests {
		_, err := p.ParseBytes([]byte(source))
		if nil == err || !strings.Contains(strings.ToLower(err.Error()), field) {
			t.Errorf("%s: expected an error about %s, got %v", source, field, err)
		}
	}
}

func TestParseMissingFile(t *testing.T) {
	p := DefaultParser{}
	if _, err := p.Parse(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Error("expected not exist, got", err)
	}
}
