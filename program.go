package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"git.lost.host/meutraa/urchin/internal/config"
	"git.lost.host/meutraa/urchin/internal/game"
	"git.lost.host/meutraa/urchin/internal/input"
	"git.lost.host/meutraa/urchin/internal/judge"
	"git.lost.host/meutraa/urchin/internal/render"
	"git.lost.host/meutraa/urchin/internal/replay"
	"github.com/charmbracelet/log"
)

// Program is a single play session of one chart.
type Program struct {
	Renderer *render.DefaultRenderer
	Judge    *judge.Processor
	Keyboard *input.Keyboard
	Store    *replay.Store // Optional
	Logger   *log.Logger

	chart    *game.Chart
	title    string
	profile  config.Profile
	profiles <-chan config.Profile

	snap     input.Snapshot
	recorder replay.Recorder

	offset, shift float64 // Seconds
	seekStep      float64
	end           float64

	// A run that was seeked or had its profile changed is not a faithful
	// recording and is not saved.
	dirty bool
	quit  bool
	err   error
}

func (p *Program) Init(file string, chart *game.Chart, profile config.Profile, profiles <-chan config.Profile) {
	p.chart = chart
	p.title = filepath.Base(file)
	p.profile = profile
	p.profiles = profiles
	p.offset = config.Offset.Seconds()
	p.seekStep = config.SeekStep.Seconds()
	profile.Apply(p.Judge)
	p.end = replay.Horizon(chart, p.settings())
	p.Judge.Reset(chart)
	p.recorder.Reset()
}

// Update runs one tick at now, returning false once the session is over.
func (p *Program) Update(now time.Duration) bool {
	t := now.Seconds() - p.offset + p.shift

	select {
	case profile := <-p.profiles:
		profile.Apply(p.Judge)
		p.profile = profile
		p.end = replay.Horizon(p.chart, p.settings())
		p.dirty = true
	default:
	}

	commands, err := p.Keyboard.Poll(t, &p.snap)
	if nil != err {
		p.err = err
		return false
	}
	for _, c := range commands {
		switch c {
		case input.Quit:
			p.quit = true
			return false
		case input.SeekBack:
			p.Seek(-p.seekStep)
		case input.SeekForward:
			p.Seek(p.seekStep)
		}
	}
	t = now.Seconds() - p.offset + p.shift

	p.Judge.Update(t, &p.snap)
	p.recorder.Record(t, &p.snap)
	p.Render(t)

	return t < p.end
}

func (p *Program) settings() replay.Settings {
	return replay.SettingsOf(p.Judge, p.profile.AutoAir, p.profile.GaugeMax)
}

func (p *Program) Seek(relative float64) {
	p.shift += relative
	p.Keyboard.Reset()
	p.snap.Release()
	p.Judge.MovePosition(relative)
	p.dirty = true
}

func (p *Program) Render(t float64) {
	p.Renderer.RenderHUD(render.HUD{
		Title:      p.title,
		Difficulty: p.chart.Difficulty,
		Now:        t,
		Length:     p.chart.Length(),
		Status:     p.Judge.Status(),
		State:      &p.snap,
	})
}

func (p *Program) Run(ctx context.Context) error {
	if err := p.Renderer.Init(); nil != err {
		return fmt.Errorf("unable to initialize terminal: %w", err)
	}
	p.Renderer.RenderLoop(*config.Delay, *config.FramePeriod, func(now time.Duration) bool {
		if nil != ctx.Err() {
			return false
		}
		return p.Update(now)
	})
	if err := p.Renderer.Deinit(); nil != err {
		p.Logger.Warn("unable to restore terminal", "err", err)
	}
	return p.err
}

// Save stores the recorded input of a finished run.
func (p *Program) Save() {
	switch {
	case nil == p.Store:
		return
	case p.quit || p.dirty:
		p.Logger.Info("run not saved", "quit", p.quit, "seeked or reloaded", p.dirty)
		return
	}
	h := replay.History{
		Settings: p.settings(),
		Inputs:   p.recorder.Inputs(),
	}
	if err := p.Store.Save(p.chart, &h); nil != err {
		p.Logger.Warn("unable to save replay", "err", err)
		return
	}
	p.Logger.Info("saved replay", "id", h.ID)
}
