package input

import "git.lost.host/meutraa/urchin/internal/game"

// Snapshot is a State the host fills once per tick.
type Snapshot struct {
	current [2][game.LaneCount]bool
	last    [2][game.LaneCount]bool
}

func valid(src Source, index int) bool {
	return int(src) < 2 && index >= 0 && index < channels(src)
}

func (s *Snapshot) Held(src Source, index int) bool {
	return valid(src, index) && s.current[src][index]
}

func (s *Snapshot) HeldLast(src Source, index int) bool {
	return valid(src, index) && s.last[src][index]
}

func (s *Snapshot) Pressed(src Source, index int) bool {
	return valid(src, index) && s.current[src][index] && !s.last[src][index]
}

// Set changes the channel for the current tick.
func (s *Snapshot) Set(src Source, index int, held bool) {
	if valid(src, index) {
		s.current[src][index] = held
	}
}

// Advance starts a new tick, the current state becomes the last state.
func (s *Snapshot) Advance() {
	s.last = s.current
}

// Release lets go of every channel without touching the last state.
func (s *Snapshot) Release() {
	s.current = [2][game.LaneCount]bool{}
}

// Bits packs the current state of a source, one bit per channel.
func (s *Snapshot) Bits(src Source) uint16 {
	var bits uint16
	for i := 0; i < channels(src); i++ {
		if s.current[src][i] {
			bits |= 1 << i
		}
	}
	return bits
}

// SetBits is the inverse of Bits.
func (s *Snapshot) SetBits(src Source, bits uint16) {
	for i := 0; i < channels(src); i++ {
		s.Set(src, i, bits&(1<<i) != 0)
	}
}
