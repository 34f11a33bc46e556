// Package output renders CLI results for terminals and pipes.
//
// Text mode styles headers and diagnostics with lipgloss when writing to a
// terminal and falls back to plain ASCII otherwise, so piped output and
// golden files stay free of escape sequences. JSON and YAML modes encode
// structured values for scripts.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/sqlparser/pkg/parser"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Mode selects how results are written.
type Mode string

// Output modes.
const (
	ModeText Mode = "text"
	ModeJSON Mode = "json"
	ModeYAML Mode = "yaml"
)

// Renderer writes results to out and diagnostics to errOut.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool

	header lipgloss.Style
	label  lipgloss.Style
	errMsg lipgloss.Style
	caret  lipgloss.Style
	muted  lipgloss.Style
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in int
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(out, errOut, IsTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit terminal state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeText
	}
	lr := lipgloss.NewRenderer(out, termenv.WithColorCache(true))
	if !isTTY {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		header: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6")),
		label:  lr.NewStyle().Bold(true),
		errMsg: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
		caret:  lr.NewStyle().Foreground(lipgloss.Color("#F59E0B")).TabWidth(lipgloss.NoTabConversion),
		muted:  lr.NewStyle().Foreground(lipgloss.Color("#64748B")),
	}
}

// Mode returns the output mode.
func (r *Renderer) Mode() Mode { return r.mode }

// Out returns the result writer.
func (r *Renderer) Out() io.Writer { return r.out }

// ErrOut returns the diagnostic writer.
func (r *Renderer) ErrOut() io.Writer { return r.errOut }

// IsTTY reports whether output goes to a terminal.
func (r *Renderer) IsTTY() bool { return r.isTTY }

// Println writes a line to out.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to out.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Header writes a section title.
func (r *Renderer) Header(title string) {
	r.Println(r.header.Render(title))
}

// Label writes a bold line such as "Round-trip:".
func (r *Renderer) Label(text string) {
	r.Println(r.label.Render(text))
}

// Muted returns s in the de-emphasized style.
func (r *Renderer) Muted(s string) string {
	return r.muted.Render(s)
}

// Warn writes a one-line message to errOut.
func (r *Renderer) Warn(format string, a ...any) {
	_, _ = fmt.Fprintln(r.errOut, r.caret.Render(fmt.Sprintf(format, a...)))
}

// ParseError writes "Error during parsing: <err>" to errOut, followed by
// the offending source line and a caret under the reported column when err
// carries a position inside src.
func (r *Renderer) ParseError(src string, err error) {
	_, _ = fmt.Fprintf(r.errOut, "%s %v\n", r.errMsg.Render("Error during parsing:"), err)

	pos, ok := parser.ErrorPosition(err)
	if !ok || pos.Line < 1 {
		return
	}
	lines := strings.Split(src, "\n")
	if pos.Line > len(lines) {
		return
	}
	line := strings.TrimRight(lines[pos.Line-1], "\r")
	_, _ = fmt.Fprintf(r.errOut, "  %s\n  %s\n", line, r.caret.Render(caretLine(line, pos.Column)))
}

// caretLine builds the marker under a 1-based character column, copying
// tabs so the caret lines up with the source line above it.
func caretLine(line string, column int) string {
	var sb strings.Builder
	i := 1
	for _, ch := range line {
		if i >= column {
			break
		}
		if ch == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
		i++
	}
	for ; i < column; i++ {
		sb.WriteByte(' ')
	}
	sb.WriteByte('^')
	return sb.String()
}

// Table writes rows under header. Terminals get box-drawing borders; other
// writers get plain ASCII.
func (r *Renderer) Table(header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	if r.isTTY {
		t.SetStyle(table.StyleLight)
	} else {
		t.SetStyle(table.StyleDefault)
	}

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, v := range row {
			tr[i] = v
		}
		t.AppendRow(tr)
	}
	t.Render()
}

// Data encodes v as JSON or YAML according to the mode. Text mode uses YAML.
func (r *Renderer) Data(v any) error {
	if r.mode == ModeJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
