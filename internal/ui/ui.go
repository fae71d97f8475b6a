// Package ui renders alias listings and notices for the terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/davebream/again/internal/config"
	"github.com/davebream/again/internal/registry"
)

// Printer writes user-facing output.
type Printer struct {
	out    io.Writer
	scope  *color.Color
	alias  *color.Color
	notice *color.Color
	warn   *color.Color
}

// NewPrinter returns a Printer writing to out. mode is one of the
// config.Color* values; auto defers to terminal detection and NO_COLOR.
func NewPrinter(out io.Writer, mode string) *Printer {
	p := &Printer{
		out:    out,
		scope:  color.New(color.FgCyan),
		alias:  color.New(color.FgGreen, color.Bold),
		notice: color.New(color.FgYellow),
		warn:   color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.scope, p.alias, p.notice, p.warn} {
		switch mode {
		case config.ColorAlways:
			c.EnableColor()
		case config.ColorNever:
			c.DisableColor()
		}
	}
	return p
}

// Entry prints one listing row as "alias: command". When showScope is set,
// scoped rows are prefixed with "[scope] ".
func (p *Printer) Entry(e registry.Entry, showScope bool) {
	if showScope && e.Scoped() {
		p.scope.Fprintf(p.out, "[%s] ", e.Scope)
	}
	p.alias.Fprint(p.out, e.Alias)
	fmt.Fprintf(p.out, ": %s\n", e.Command)
}

// Saved reports a stored binding and the command it replaced, if one was bound.
func (p *Printer) Saved(c registry.Change) {
	fmt.Fprint(p.out, "Saved ")
	p.alias.Fprint(p.out, c.Alias)
	fmt.Fprintf(p.out, ": %s\n", c.Command)
	if c.Replaced {
		p.notice.Fprintf(p.out, "Replaced: %s\n", c.Previous)
	}
}

// Deleted reports a removed binding.
func (p *Printer) Deleted(c registry.Change) {
	fmt.Fprint(p.out, "Deleted ")
	p.alias.Fprint(p.out, c.Alias)
	fmt.Fprintf(p.out, ": %s\n", c.Previous)
}

// Renamed reports a successful rename.
func (p *Printer) Renamed(source, destination string) {
	fmt.Fprintf(p.out, "Renamed %s -> ", source)
	p.alias.Fprintln(p.out, destination)
}

// NotFound reports an alias that is not bound.
func (p *Printer) NotFound(alias string) {
	p.notice.Fprintf(p.out, "Alias not found: %s\n", alias)
}

// Missing reports a rename whose source is not bound.
func (p *Printer) Missing(alias string) {
	p.notice.Fprintf(p.out, "Alias doesn't exist: %s\n", alias)
}

// Exists reports a rename onto an alias that is already bound.
func (p *Printer) Exists(alias, command string) {
	p.notice.Fprintf(p.out, "Alias already exists: %s: %s\n", alias, command)
}

// Warn prints a problem that does not fail the invocation.
func (p *Printer) Warn(format string, args ...any) {
	p.warn.Fprintf(p.out, format+"\n", args...)
}
