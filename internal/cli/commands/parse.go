package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/leapstack-labs/sqlparser/internal/cli/output"
	"github.com/leapstack-labs/sqlparser/internal/source"
	"github.com/leapstack-labs/sqlparser/pkg/astjson"
	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/dialect"
	"github.com/leapstack-labs/sqlparser/pkg/format"
	"github.com/leapstack-labs/sqlparser/pkg/parser"
	"github.com/leapstack-labs/sqlparser/pkg/token"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	Watch    bool // re-parse on every change until interrupted
	Comments bool // keep comments in the round-trip output
	Spans    bool // include source spans in JSON/YAML output
}

// AddParseFlags registers the parse flags on cmd. The root command
// shares them so "sqlparser FILE --watch" works.
func AddParseFlags(cmd *cobra.Command, opts *ParseOptions) {
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-parse files whenever they change")
	cmd.Flags().BoolVar(&opts.Comments, "comments", false, "Reproduce comments in the round-trip output")
	cmd.Flags().BoolVar(&opts.Spans, "spans", false, "Include source spans in json/yaml output")
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}
	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Parse SQL files and print their round-trip",
		Long: `Parse each file with the selected dialect and print the statements
rendered back to canonical SQL.

A byte order mark is stripped and UTF-16 input is decoded. Use "-" to read
standard input. Files are parsed concurrently (see --workers) and reported
in argument order. The exit code is 1 if any file fails.`,
		Example: `  # Parse with the default generic dialect
  sqlparser parse query.sql

  # Parse as MySQL and print the AST as JSON
  sqlparser parse query.sql --mysql -o json

  # Re-parse on every save
  sqlparser parse query.sql --watch`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunParse(cmd, args, opts)
		},
	}
	AddParseFlags(cmd, opts)
	return cmd
}

// parseResult is the outcome for one file.
type parseResult struct {
	Name     string
	Text     string
	Stmts    []core.Stmt
	Comments []token.Comment
	ReadErr  error
	ParseErr error
}

// RunParse parses files and reports each one.
func RunParse(cmd *cobra.Command, files []string, opts *ParseOptions) error {
	if opts.Watch {
		for _, name := range files {
			if name == source.Stdin {
				return fmt.Errorf("--watch cannot be used with standard input")
			}
		}
	}

	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	results, err := parseFiles(cmd.Context(), cc.Dialect, cc.Cfg.GetWorkers(), files)
	if err != nil {
		return err
	}

	failed := false
	for i := range results {
		if !reportParse(cc, &results[i], opts) {
			failed = true
		}
	}

	if opts.Watch {
		return watchParse(cmd.Context(), cc, files, opts)
	}
	if failed {
		return ErrParseFailed
	}
	return nil
}

// parseFiles parses every file on a bounded pool of workers. Results keep
// argument order.
func parseFiles(ctx context.Context, d *dialect.Dialect, workers int, files []string) ([]parseResult, error) {
	results := make([]parseResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = parseFile(name, d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func parseFile(name string, d *dialect.Dialect) parseResult {
	res := parseResult{Name: name}
	f, err := source.ReadFile(name)
	if err != nil {
		res.ReadErr = err
		return res
	}
	res.Text = f.Text
	res.Stmts, res.Comments, res.ParseErr = parser.ParseScript(f.Text, d)
	return res
}

// reportParse prints one result and reports whether it succeeded.
func reportParse(cc *CommandContext, res *parseResult, opts *ParseOptions) bool {
	r := cc.Renderer
	logger := cc.Logger.With("file", res.Name, "dialect", cc.Dialect.Name)

	if res.ReadErr != nil {
		logger.Debug("read failed", "error", res.ReadErr)
		r.Warn("Error: %v", res.ReadErr)
		return false
	}

	r.Println(r.Muted(fmt.Sprintf("Parsing from file '%s' using %s", res.Name, cc.Dialect.Name)))

	if res.ParseErr != nil {
		logger.Debug("parse failed", "error", res.ParseErr)
		r.ParseError(res.Text, res.ParseErr)
		return false
	}
	logger.Debug("parsed", "statements", len(res.Stmts), "comments", len(res.Comments))

	r.Label("Round-trip:")
	r.Printf("'%s'\n", roundTrip(res, cc.Dialect, opts.Comments))

	switch r.Mode() {
	case output.ModeJSON:
		r.Label("Serialized as JSON:")
		return encodeAST(cc, res, astjson.JSON, opts)
	case output.ModeYAML:
		r.Label("Serialized as YAML:")
		return encodeAST(cc, res, astjson.YAML, opts)
	}
	return true
}

func roundTrip(res *parseResult, d *dialect.Dialect, comments bool) string {
	if comments {
		return strings.TrimSuffix(format.Script(res.Stmts, res.Comments, d), "\n")
	}
	return strings.Join(format.Statements(res.Stmts, d), "\n")
}

func encodeAST(cc *CommandContext, res *parseResult, f astjson.Format, opts *ParseOptions) bool {
	if err := astjson.Encode(cc.Renderer.Out(), f, res.Stmts, astjson.Options{Spans: opts.Spans}); err != nil {
		cc.Renderer.Warn("Error: %v", err)
		return false
	}
	return true
}

// watchParse re-reports each file as it changes until interrupted.
func watchParse(ctx context.Context, cc *CommandContext, files []string, opts *ParseOptions) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	cc.Renderer.Warn("Watching %d file(s) for changes, press Ctrl+C to stop", len(files))
	w := &source.Watcher{Logger: cc.Logger}
	return w.Watch(ctx, files, func(name string) {
		res := parseFile(name, cc.Dialect)
		reportParse(cc, &res, opts)
	})
}
