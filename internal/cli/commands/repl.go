package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/sqlparser/internal/cli/output"
	"github.com/leapstack-labs/sqlparser/pkg/astjson"
	"github.com/leapstack-labs/sqlparser/pkg/dialect"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/all"
	"github.com/leapstack-labs/sqlparser/pkg/format"
	"github.com/leapstack-labs/sqlparser/pkg/parser"
	"github.com/spf13/cobra"
)

const (
	replPrompt         = "sql> "
	replContinuePrompt = " ...> "
)

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse statements interactively",
		Long: `Start an interactive session that parses each statement as it is
entered and prints its canonical form.

Statements may span several lines and end with a semicolon. Dot commands
switch the dialect or leave the session; type .help for the list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepl(cmd)
		},
	}
}

func runRepl(cmd *cobra.Command) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".sqlparser_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile,
		AutoComplete:    newKeywordCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	s := newReplSession(cc.Renderer, cc.Dialect)
	s.Banner()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			s.Reset()
			rl.SetPrompt(s.Prompt())
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if s.HandleLine(line) {
			break
		}
		rl.SetPrompt(s.Prompt())
	}
	return nil
}

// replSession holds the state of an interactive session.
type replSession struct {
	r       *output.Renderer
	dialect *dialect.Dialect
	buf     strings.Builder
}

func newReplSession(r *output.Renderer, d *dialect.Dialect) *replSession {
	return &replSession{r: r, dialect: d}
}

func (s *replSession) Banner() {
	s.r.Printf("sqlparser REPL (dialect: %s)\n", s.dialect.Name)
	s.r.Println("Type .help for commands, .quit to exit")
	s.r.Println()
}

// Prompt returns the prompt for the next line.
func (s *replSession) Prompt() string {
	if s.buf.Len() > 0 {
		return replContinuePrompt
	}
	return replPrompt
}

// Reset discards a partially entered statement.
func (s *replSession) Reset() { s.buf.Reset() }

// HandleLine processes one input line and reports whether the session
// should end.
func (s *replSession) HandleLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if s.buf.Len() == 0 && strings.HasPrefix(line, ".") {
		return s.dotCommand(line)
	}

	s.buf.WriteString(line)
	if !strings.HasSuffix(line, ";") {
		s.buf.WriteString("\n")
		return false
	}

	src := s.buf.String()
	s.buf.Reset()
	s.parse(src)
	return false
}

func (s *replSession) parse(src string) {
	stmts, err := parser.ParseStatements(src, s.dialect)
	if err != nil {
		s.r.ParseError(src, err)
		return
	}
	for _, stmt := range stmts {
		s.r.Println(format.Format(stmt, s.dialect))
	}
	if s.r.Mode() == output.ModeText {
		return
	}
	f := astjson.JSON
	if s.r.Mode() == output.ModeYAML {
		f = astjson.YAML
	}
	if err := astjson.Encode(s.r.Out(), f, stmts, astjson.Options{}); err != nil {
		s.r.Warn("Error: %v", err)
	}
}

func (s *replSession) dotCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printReplHelp(s.r.Out())

	case ".dialect":
		if len(parts) < 2 {
			s.r.Printf("%s\n", s.dialect.Name)
			return false
		}
		d, err := all.ByFlag(parts[1])
		if err != nil {
			s.r.Warn("Error: %v", err)
			return false
		}
		s.dialect = d
		s.r.Printf("Dialect set to %s\n", d.Name)

	case ".dialects":
		s.r.Println(strings.Join(all.Flags(), " "))

	default:
		s.r.Warn("Unknown command: %s (type .help for commands)", command)
	}
	return false
}

func printReplHelp(w io.Writer) {
	help := `
Commands:
  .help            Show this help message
  .dialect [name]  Show or change the dialect (ansi, postgres, ms, ...)
  .dialects        List the dialect flags
  .quit / .exit    Exit the REPL

Tips:
  - Statements end with a semicolon (;) and may span lines
  - Ctrl+C discards a partially entered statement
  - Tab completes keywords
`
	_, _ = fmt.Fprintln(w, help)
}

// newKeywordCompleter completes SQL keywords and dot commands.
func newKeywordCompleter() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, word := range parser.CompletionWords() {
		items = append(items, readline.PcItem(word))
	}

	dialects := make([]readline.PrefixCompleterInterface, 0, len(all.Dialects))
	for _, flag := range all.Flags() {
		dialects = append(dialects, readline.PcItem(flag))
	}
	items = append(items,
		readline.PcItem(".help"),
		readline.PcItem(".dialect", dialects...),
		readline.PcItem(".dialects"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
	return readline.NewPrefixCompleter(items...)
}
