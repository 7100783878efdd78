package theme

import "git.lost.host/meutraa/urchin/internal/game"

type Theme interface {
	RenderTier(tier game.Tier) string
	RenderLane(lane int, held bool) string
	RenderAir(name string, held bool) string
	RenderGauge(fraction float64, width int) string
}
