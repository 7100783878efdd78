package parser

import (
	"errors"

	"git.lost.host/meutraa/urchin/internal/game"
)

var (
	ErrNoCharts        = errors.New("no charts")
	ErrNoScorableNotes = errors.New("no judged notes")
	ErrLaneSpan        = errors.New("lane span outside the field")
	ErrMissingEnd      = errors.New("sustained note without an end")
	ErrStepOrder       = errors.New("steps out of order")
)

type Parser interface {
	Parse(file string) ([]*game.Chart, error)
}
