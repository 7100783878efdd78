package parser

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"sort"

	"git.lost.host/meutraa/urchin/internal/game"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

type DefaultParser struct{}

type chartFile struct {
	Title  string      `yaml:"title"`
	Charts []chartData `yaml:"charts"`
}

type chartData struct {
	Difficulty struct {
		Name  string `yaml:"name"`
		Level string `yaml:"level"`
	} `yaml:"difficulty"`
	Notes []noteData `yaml:"notes"`
}

type noteData struct {
	Type      string     `yaml:"type"`
	Time      float64    `yaml:"time"`
	Duration  float64    `yaml:"duration"`
	Lane      int        `yaml:"lane"`
	Length    int        `yaml:"length"`
	Direction string     `yaml:"direction"`
	Steps     []stepData `yaml:"steps"`
}

type stepData struct {
	Role   string      `yaml:"role"`
	Time   float64     `yaml:"time"`
	Lane   int         `yaml:"lane"`
	Length int         `yaml:"length"`
	Curve  [][]float64 `yaml:"curve"` // [offset, center] pairs
}

func names[T fmt.Stringer](values ...T) []interface{} {
	ns := make([]interface{}, len(values))
	for i, v := range values {
		ns[i] = v.String()
	}
	return ns
}

var (
	noteTypes = names(game.Tap, game.ExTap, game.Flick, game.Air, game.Hold, game.Slide, game.AirAction, game.Hazard)
	stepRoles = names(game.Step, game.End, game.Injection, game.Control, game.Invisible)
)

var curvePoint = validation.By(func(value interface{}) error {
	p, _ := value.([]float64)
	if len(p) != 2 {
		return errors.New("curve points are [offset, center] pairs")
	}
	if p[1] < 0 || p[1] > 1 {
		return fmt.Errorf("curve center %v outside 0..1", p[1])
	}
	return nil
})

func (n noteData) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Type, validation.Required, validation.In(noteTypes...)),
		validation.Field(&n.Time, validation.Min(0.0)),
		validation.Field(&n.Duration, validation.Min(0.0)),
		validation.Field(&n.Lane, validation.Min(0), validation.Max(game.LaneCount-1)),
		validation.Field(&n.Length, validation.Required, validation.Min(1), validation.Max(game.LaneCount)),
		validation.Field(&n.Direction, validation.In("up", "down")),
		validation.Field(&n.Steps),
	)
}

func (s stepData) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Role, validation.Required, validation.In(stepRoles...)),
		validation.Field(&s.Time, validation.Min(0.0)),
		validation.Field(&s.Lane, validation.Min(0), validation.Max(game.LaneCount-1)),
		validation.Field(&s.Length, validation.Required, validation.Min(1), validation.Max(game.LaneCount)),
		validation.Field(&s.Curve, validation.Each(curvePoint)),
	)
}

func (p *DefaultParser) Parse(file string) ([]*game.Chart, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, err
	}
	charts, err := p.ParseBytes(data)
	if nil != err {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return charts, nil
}

func (p *DefaultParser) ParseBytes(data []byte) ([]*game.Chart, error) {
	var f chartFile
	if err := yaml.Unmarshal(data, &f); nil != err {
		return nil, fmt.Errorf("unable to parse chart: %w", err)
	}
	if len(f.Charts) == 0 {
		return nil, ErrNoCharts
	}

	charts := make([]*game.Chart, 0, len(f.Charts))
	for i, cd := range f.Charts {
		chart, err := buildChart(cd)
		if nil != err {
			return nil, fmt.Errorf("chart %d (%s): %w", i, cd.Difficulty.Name, err)
		}
		chart.Sum = hashChart(data, chart.Difficulty)
		charts = append(charts, chart)
	}
	return charts, nil
}

func hashChart(data []byte, d game.Difficulty) string {
	h := sha256.New()
	h.Write(data)
	h.Write([]byte(d.Name))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func buildChart(cd chartData) (*game.Chart, error) {
	chart := &game.Chart{
		Difficulty: game.Difficulty{Name: cd.Difficulty.Name, Level: cd.Difficulty.Level},
	}
	for i, nd := range cd.Notes {
		if err := nd.Validate(); nil != err {
			return nil, fmt.Errorf("note %d: %w", i, err)
		}
		note, err := buildNote(nd)
		if nil != err {
			return nil, fmt.Errorf("note %d: %w", i, err)
		}
		chart.Notes = append(chart.Notes, note)

		chart.NoteCount++
		switch note.Category {
		case game.Hold:
			chart.HoldCount++
		case game.Slide:
			chart.SlideCount++
		case game.Hazard:
			chart.HellCount++
		}
	}

	sort.SliceStable(chart.Notes, func(i, j int) bool {
		return chart.Notes[i].Time < chart.Notes[j].Time
	})

	if chart.Total() == 0 {
		return nil, ErrNoScorableNotes
	}
	return chart, nil
}

func buildNote(nd noteData) (*game.Note, error) {
	// Already validated, these cannot fail
	category, _ := game.ParseCategory(nd.Type)
	direction, _ := game.ParseDirection(nd.Direction)

	if nd.Lane+nd.Length > game.LaneCount {
		return nil, fmt.Errorf("[%d, %d): %w", nd.Lane, nd.Lane+nd.Length, ErrLaneSpan)
	}

	note := &game.Note{
		Unit:      game.Unit{Time: nd.Time, Lane: nd.Lane, Length: nd.Length},
		Category:  category,
		Direction: direction,
		Duration:  nd.Duration,
	}
	if !category.Sustained() {
		return note, nil
	}

	last := nd.Time
	ended := false
	for i, sd := range nd.Steps {
		if sd.Lane+sd.Length > game.LaneCount {
			return nil, fmt.Errorf("step %d [%d, %d): %w", i, sd.Lane, sd.Lane+sd.Length, ErrLaneSpan)
		}
		if sd.Time < last {
			return nil, fmt.Errorf("step %d at %v before %v: %w", i, sd.Time, last, ErrStepOrder)
		}
		if ended {
			return nil, fmt.Errorf("step %d after the end: %w", i, ErrStepOrder)
		}
		last = sd.Time

		role, _ := game.ParseRole(sd.Role)
		ended = role == game.End
		step := &game.SubEvent{
			Unit: game.Unit{Time: sd.Time, Lane: sd.Lane, Length: sd.Length},
			Role: role,
		}
		for _, p := range sd.Curve {
			step.Curve = append(step.Curve, game.CurvePoint{Offset: p[0], Center: p[1]})
		}
		note.Steps = append(note.Steps, step)
	}
	if !ended {
		return nil, fmt.Errorf("%s at %v: %w", category, nd.Time, ErrMissingEnd)
	}
	if note.Duration == 0 {
		note.Duration = last - nd.Time
	}
	return note, nil
}
