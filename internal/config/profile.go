package config

import (
	"fmt"
	"os"
	"time"

	"git.lost.host/meutraa/urchin/internal/judge"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Profile is the set of judge settings that can change while playing.
type Profile struct {
	Widths  WidthsProfile  `yaml:"widths"`
	Adjusts AdjustsProfile `yaml:"adjusts"`
	AutoAir bool           `yaml:"auto_air"`
	// Only read when a chart starts
	GaugeMax float64 `yaml:"gauge_max"`
}

type WidthsProfile struct {
	Critical time.Duration `yaml:"critical"`
	Justice  time.Duration `yaml:"justice"`
	Attack   time.Duration `yaml:"attack"`
}

type AdjustsProfile struct {
	Slider     time.Duration `yaml:"slider"`
	Air        time.Duration `yaml:"air"`
	Multiplier float64       `yaml:"multiplier"`
}

func (w WidthsProfile) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.Critical, validation.Required, validation.Min(time.Duration(0)).Exclusive()),
		validation.Field(&w.Justice, validation.Required, validation.Min(w.Critical)),
		validation.Field(&w.Attack, validation.Required, validation.Min(w.Justice)),
	)
}

func (a AdjustsProfile) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Multiplier, validation.Required, validation.Min(0.0).Exclusive()),
	)
}

func (p Profile) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Widths),
		validation.Field(&p.Adjusts),
		validation.Field(&p.GaugeMax, validation.Required, validation.Min(0.0).Exclusive()),
	)
}

// FlagProfile builds a profile from the parsed flags.
func FlagProfile() Profile {
	return Profile{
		Widths: WidthsProfile{
			Critical: *Critical,
			Justice:  *Justice,
			Attack:   *Attack,
		},
		Adjusts: AdjustsProfile{
			Slider:     *AdjustSlider,
			Air:        *AdjustAir,
			Multiplier: *AirMultiplier,
		},
		AutoAir:  *AutoAir,
		GaugeMax: *GaugeMax,
	}
}

// LoadProfile reads the file over base, so keys missing from the file keep
// the values of base.
func LoadProfile(file string, base Profile) (Profile, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return base, err
	}
	p := base
	if err := yaml.Unmarshal(data, &p); nil != err {
		return base, fmt.Errorf("unable to parse profile %s: %w", file, err)
	}
	if err := p.Validate(); nil != err {
		return base, fmt.Errorf("invalid profile %s: %w", file, err)
	}
	return p, nil
}

// Apply pushes the live settings into the processor. GaugeMax is an option
// of the processor instead, see Options.
func (p Profile) Apply(proc *judge.Processor) {
	proc.SetJudgeWidths(p.Widths.Critical.Seconds(), p.Widths.Justice.Seconds(), p.Widths.Attack.Seconds())
	proc.SetJudgeAdjusts(p.Adjusts.Slider.Seconds(), p.Adjusts.Air.Seconds(), p.Adjusts.Multiplier)
	proc.SetAutoAir(p.AutoAir)
}

func (p Profile) Options() []judge.Option {
	return []judge.Option{
		judge.WithAutoAir(p.AutoAir),
		judge.WithGaugeMax(p.GaugeMax),
	}
}
