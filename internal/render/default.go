package render

import (
	"io"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/urchin/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type DefaultRenderer struct {
	out          io.Writer
	fd           int
	buffer       strings.Builder
	restoreState *term.State
	decorations  []*decoration

	Theme       theme.Theme
	FlashFrames int // How long judgement effects stay on screen

	width, height int
}

type decoration struct {
	X, Y    uint16
	Width   int // Cells cleared when removed
	Content string
	Frames  int // remaining frames until removed
	Slide   bool
}

// NewRenderer draws to out. fd is the descriptor behind out, used for the
// terminal size and raw mode, pass -1 when out is not a terminal.
func NewRenderer(out io.Writer, fd int, th theme.Theme) *DefaultRenderer {
	r := &DefaultRenderer{
		out:         out,
		fd:          fd,
		Theme:       th,
		FlashFrames: 240,
		width:       defaultWidth,
		height:      defaultHeight,
	}
	r.Resize()
	return r
}

func (r *DefaultRenderer) IsTerminal() bool {
	return r.fd >= 0 && term.IsTerminal(r.fd)
}

// Resize reads the terminal size, keeping the previous size when there is
// no terminal.
func (r *DefaultRenderer) Resize() bool {
	if !r.IsTerminal() {
		return false
	}
	width, height, err := term.GetSize(r.fd)
	if nil != err || width <= 0 || height <= 0 {
		return false
	}
	r.width, r.height = width, height
	return true
}

func (r *DefaultRenderer) Size() (int, int) {
	return r.width, r.height
}

func (r *DefaultRenderer) Init() error {
	if r.IsTerminal() {
		state, err := term.MakeRaw(r.fd)
		if nil != err {
			return err
		}
		r.restoreState = state
	}

	r.buffer.WriteString("\033[?1049h") // Enable alternate buffer
	r.buffer.WriteString("\033[?25l")   // Make the cursor invisible
	r.buffer.WriteString("\033[2J")     // Clear the screen
	return r.Flush()
}

func (r *DefaultRenderer) Deinit() error {
	r.buffer.WriteString("\033[?1049l") // Disable alternate buffer
	r.buffer.WriteString("\033[?25h")   // Make the cursor visible
	if err := r.Flush(); nil != err {
		return err
	}
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(r.fd, r.restoreState)
}

func (r *DefaultRenderer) AddDecoration(col, row uint16, content string, frames int) {
	r.addDecoration(&decoration{X: col, Y: row, Content: content, Frames: frames})
}

func (r *DefaultRenderer) addDecoration(d *decoration) {
	if d.Width == 0 {
		d.Width = lipgloss.Width(d.Content)
	}
	// A new decoration in the same cell replaces the old one
	nd := r.decorations[:0]
	for _, o := range r.decorations {
		if o.X != d.X || o.Y != d.Y {
			nd = append(nd, o)
		}
	}
	r.decorations = append(nd, d)
	r.Fill(d.Y, d.X, d.Content)
}

func (r *DefaultRenderer) clear(d *decoration) {
	r.Fill(d.Y, d.X, strings.Repeat(" ", d.Width))
}

func (r *DefaultRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames == 0 {
			r.clear(d)
			continue
		}
		nd = append(nd, d)
		d.Frames--
	}
	r.decorations = nd
}

// RenderLoop calls render once per period until it returns false. now is
// negative during the start delay.
func (r *DefaultRenderer) RenderLoop(delay, period time.Duration, render func(now time.Duration) bool) {
	cont := true
	startTime := time.Now().Add(delay)
	for cont {
		now := time.Now()
		deadline := now.Add(period)

		cont = render(now.Sub(startTime))

		r.tickDecorations()
		r.Flush()

		time.Sleep(time.Until(deadline))
	}
}

func (r *DefaultRenderer) Fill(row, column uint16, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.FormatInt(int64(row), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(column), 10))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) Flush() error {
	if r.buffer.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(r.out, r.buffer.String())
	r.buffer.Reset()
	return err
}
