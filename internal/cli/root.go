// Package cli provides the command-line interface for sqlparser.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/leapstack-labs/sqlparser/internal/cli/commands"
	"github.com/leapstack-labs/sqlparser/internal/cli/config"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/all"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string
	parseOpts := &commands.ParseOptions{}

	rootCmd := &cobra.Command{
		Use:   "sqlparser [file]...",
		Short: "sqlparser - dialect-aware SQL parser",
		Long: `sqlparser tokenizes and parses SQL in one of several dialects and prints
the statements back as canonical SQL.

Given files and no subcommand it behaves like "sqlparser parse": each file
is parsed and its round-trip printed, and the exit code is 1 if any file
fails to parse. Select the dialect with one of the switches below or with
--dialect; the default is generic.`,
		Example: `  sqlparser query.sql
  sqlparser query.sql --postgres
  sqlparser query.sql --ms -o json`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			if err := checkDialectFlags(cmd); err != nil {
				return err
			}

			cfg, used, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if used != "" {
				logger.Debug("using config file", "path", used)
			}
			logger.Debug("configuration loaded", "dialect", cfg.Dialect, "output", cfg.Output, "workers", cfg.GetWorkers())

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return commands.RunParse(cmd, args, parseOpts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./sqlparser.yaml)")
	pf.String("dialect", "", "Dialect name or flag (default: generic)")
	for _, d := range all.Dialects {
		pf.Bool(d.Flag, false, fmt.Sprintf("Use the %s dialect", d.Name))
	}
	pf.StringP("output", "o", "", "Output format (text|json|yaml)")
	pf.BoolP("verbose", "v", false, "Verbose output")
	pf.Int("workers", 0, "Files parsed concurrently (default: number of CPUs)")

	commands.AddParseFlags(rootCmd, parseOpts)

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputText, config.OutputJSON, config.OutputYAML}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("dialect", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return all.Flags(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewTokensCommand())
	rootCmd.AddCommand(commands.NewTablesCommand())
	rootCmd.AddCommand(commands.NewDialectsCommand())
	rootCmd.AddCommand(commands.NewReplCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// checkDialectFlags rejects more than one dialect switch, or a switch
// combined with --dialect.
func checkDialectFlags(cmd *cobra.Command) error {
	set := config.DialectFlagsSet(cmd.Flags())
	if len(set) > 1 {
		return fmt.Errorf("conflicting dialect flags: --%s", strings.Join(set, ", --"))
	}
	if len(set) == 1 && cmd.Flags().Changed("dialect") {
		return fmt.Errorf("--%s cannot be combined with --dialect", set[0])
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, commands.ErrParseFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for sqlparser.

To load completions:

Bash:
  $ source <(sqlparser completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ sqlparser completion bash > /etc/bash_completion.d/sqlparser
  # macOS:
  $ sqlparser completion bash > $(brew --prefix)/etc/bash_completion.d/sqlparser

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ sqlparser completion zsh > "${fpath[1]}/_sqlparser"

Fish:
  $ sqlparser completion fish | source

  # To load completions for each session, execute once:
  $ sqlparser completion fish > ~/.config/fish/completions/sqlparser.fish

PowerShell:
  PS> sqlparser completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
