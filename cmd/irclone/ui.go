package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/funvibe/irclone/internal/config"
)

type styles struct {
	enabled bool
	Header  lipgloss.Style
	Symbol  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

func newStyles(w io.Writer, mode string) *styles {
	if !colorEnabled(w, mode) {
		return &styles{}
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)
	return &styles{
		enabled: true,
		Header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Symbol:  r.NewStyle().Foreground(lipgloss.Color("214")),
		Success: r.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

func colorEnabled(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (s *styles) paint(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

func (s *styles) header(text string) string  { return s.paint(s.Header, text) }
func (s *styles) symbol(text string) string  { return s.paint(s.Symbol, text) }
func (s *styles) success(text string) string { return s.paint(s.Success, text) }
func (s *styles) failure(text string) string { return s.paint(s.Error, text) }
