package commands

import (
	"errors"
	"log/slog"

	"github.com/leapstack-labs/sqlparser/internal/cli/config"
	"github.com/leapstack-labs/sqlparser/internal/cli/output"
	"github.com/leapstack-labs/sqlparser/pkg/dialect"
	"github.com/spf13/cobra"
)

// ErrParseFailed is returned after parse errors were already reported to
// the user. The caller exits non-zero without printing it again.
var ErrParseFailed = errors.New("parse failed")

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Dialect  *dialect.Dialect
	Renderer *output.Renderer
}

// NewCommandContext resolves the configured dialect and builds a renderer
// for the configured output mode.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := config.FromContext(cmd.Context())
	d, err := cfg.GetDialect()
	if err != nil {
		return nil, err
	}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Dialect:  d,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output)),
	}, nil
}
