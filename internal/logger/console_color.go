package logger

import (
	"io"

	"github.com/fatih/color"
)

// Palette colors command output consistently.
// Green: passing results
// Red: failures
// Yellow: warnings
// Cyan: headings and labels
type Palette struct {
	success *color.Color
	fail    *color.Color
	warn    *color.Color
	label   *color.Color
}

// NewPalette returns a palette for w. Colors are only emitted when w is a
// terminal, so redirected output stays plain.
func NewPalette(w io.Writer) *Palette {
	p := &Palette{
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
		label:   color.New(color.FgCyan, color.Bold),
	}
	on := isTerminal(w)
	for _, c := range []*color.Color{p.success, p.fail, p.warn, p.label} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *Palette) Success(s string) string { return p.success.Sprint(s) }
func (p *Palette) Fail(s string) string    { return p.fail.Sprint(s) }
func (p *Palette) Warn(s string) string    { return p.warn.Sprint(s) }
func (p *Palette) Label(s string) string   { return p.label.Sprint(s) }
