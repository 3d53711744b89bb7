package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/fuzzy"
	"github.com/npillmayer/fuzzy/levelcut"
	"golang.org/x/term"
)

// printer writes fuzzy sets to a terminal.
type printer struct {
	w       io.Writer
	width   int // width of membership bars
	heading *color.Color
	number  *color.Color
	bar     *color.Color
}

func newPrinter(w io.Writer, useColor *bool) *printer {
	p := &printer{
		w:       w,
		width:   barWidth(),
		heading: color.New(color.FgBlue, color.Bold),
		number:  color.New(color.FgRed),
		bar:     color.New(color.FgGreen),
	}
	enabled := !color.NoColor
	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		enabled = false
	}
	if useColor != nil {
		enabled = *useColor
	}
	for _, c := range []*color.Color{p.heading, p.number, p.bar} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// barWidth derives the width of membership bars from the terminal size.
func barWidth() int {
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err == nil {
			switch {
			case w > 65:
				return w - 40
			case w > 40:
				return w - 30
			}
			return 10
		}
	}
	return 40
}

func (p *printer) set(title string, s fuzzy.Set) {
	p.heading.Fprintf(p.w, "%s\n", title)
	fmt.Fprintf(p.w, "  support  %s\n", s.Support())
	fmt.Fprintf(p.w, "  core     %s\n", s.Core())
	fmt.Fprintf(p.w, "  peak     %s   levels %d   convex %t\n",
		p.number.Sprintf("%g", s.Peak()), len(s.Levels()), s.IsConvex())
	p.heading.Fprintf(p.w, "breakpoints\n")
	for _, bp := range s.Breakpoints() {
		p.membership(bp)
	}
}

func (p *printer) membership(bp levelcut.Breakpoint) {
	n := int(bp.Mu*float64(p.width) + 0.5)
	fmt.Fprintf(p.w, "  %12.6g  %s  %s\n", bp.X, p.number.Sprintf("%8.6f", bp.Mu),
		p.bar.Sprint(strings.Repeat("#", n)))
}

func (p *printer) cuts(cuts []levelcut.LevelCut) {
	p.heading.Fprintf(p.w, "level-cuts\n")
	for _, c := range cuts {
		fmt.Fprintf(p.w, "  %s  %s\n", p.number.Sprintf("%8.6f", c.Alpha), c.Components)
	}
}
