// Package output renders command results as styled text, markdown, or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = ""
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Styles used by terminal output.
var (
	TitleStyle  = lipgloss.NewStyle().Bold(true)
	CodeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	TagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	HintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out  io.Writer
	errw io.Writer
	mode Mode
}

// NewRenderer creates a renderer. ModeAuto picks text when out is a
// terminal and markdown otherwise.
func NewRenderer(out, errw io.Writer, mode Mode) *Renderer {
	return &Renderer{out: out, errw: errw, mode: mode}
}

// Out returns the destination writer.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// EffectiveMode resolves ModeAuto against the destination.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeText
	}
	return ModeMarkdown
}

// Println writes a line to the output stream.
func (r *Renderer) Println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

// Printf writes formatted output to the output stream.
func (r *Renderer) Printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}

// Error writes a line to the error stream.
func (r *Renderer) Error(a ...any) {
	fmt.Fprintln(r.errw, a...)
}

// JSON writes v as indented JSON to the output stream.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
