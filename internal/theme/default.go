package theme

import (
	"strings"

	"git.lost.host/meutraa/urchin/internal/game"
	"github.com/charmbracelet/lipgloss"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) RenderTier(tier game.Tier) string {
	if tier > game.Miss {
		tier = game.Miss
	}
	return tierStyles[tier].Render(tierSyms[tier])
}

// Lanes alternate colors every four lanes, the width of a slider cell.
func (t *DefaultTheme) RenderLane(lane int, held bool) string {
	if !held {
		return idleStyle.Render(laneSym)
	}
	return laneStyles[(lane/4)%len(laneStyles)].Render(laneSym)
}

func (t *DefaultTheme) RenderAir(name string, held bool) string {
	if !held {
		return idleStyle.Render(name)
	}
	return airStyle.Render(name)
}

func (t *DefaultTheme) RenderGauge(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	fraction = min(max(fraction, 0), 1)
	filled := int(fraction * float64(width))
	return gaugeStyle.Render(strings.Repeat(gaugeSym, filled)) +
		idleStyle.Render(strings.Repeat(gaugeEmptySym, width-filled))
}

const (
	laneSym       = "▮"
	gaugeSym      = "█"
	gaugeEmptySym = "░"
)

var (
	tierSyms = [...]string{
		game.JusticeCritical: "JUSTICE CRITICAL",
		game.Justice:         "         JUSTICE",
		game.Attack:          "          ATTACK",
		game.Miss:            "            MISS",
	}
	tierStyles = map[game.Tier]lipgloss.Style{
		game.JusticeCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		game.Justice:         lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		game.Attack:          lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		game.Miss:            lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
	laneStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	}
	idleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	airStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	gaugeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)
