package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/leapstack-labs/sqlparser/internal/cli/config"
	"github.com/leapstack-labs/sqlparser/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command. Its flags are read through
// the config loader, so they layer over the config file and environment.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the parser over HTTP",
		Long: `Start an HTTP service that parses SQL on request.

Endpoints:
  POST /v1/parse      Parse {"sql": "...", "dialect": "mysql"} and return
                      the round-trip statements and the AST as JSON
  GET  /v1/dialects   List the supported dialects
  GET  /healthz       Liveness probe

The dialect flags select the default used when a request names none.`,
		Example: `  # Listen on the default address
  sqlparser serve

  # Listen on all interfaces with Postgres as the default dialect
  sqlparser serve --addr :8722 --postgres`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}

	cmd.Flags().String("addr", config.DefaultAddr, "Address to listen on")
	cmd.Flags().Duration("read-timeout", config.DefaultReadTimeout, "Maximum time to read a request")
	cmd.Flags().Duration("parse-timeout", config.DefaultParseTimeout, "Maximum time to parse one request")
	cmd.Flags().Int64("max-body-bytes", config.DefaultMaxBodyBytes, "Maximum request body size")
	return cmd
}

func runServe(cmd *cobra.Command) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{
		Addr:           cc.Cfg.Server.Addr,
		ReadTimeout:    cc.Cfg.Server.ReadTimeout,
		ParseTimeout:   cc.Cfg.Server.ParseTimeout,
		MaxBodyBytes:   cc.Cfg.Server.MaxBodyBytes,
		DefaultDialect: cc.Dialect,
		Logger:         cc.Logger,
	})

	cc.Renderer.Warn("Listening on http://%s (default dialect %s), press Ctrl+C to stop", cc.Cfg.Server.Addr, cc.Dialect.Name)
	return srv.Serve(ctx)
}
