package commands

import (
	"strconv"

	"github.com/leapstack-labs/sqlparser/internal/cli/output"
	"github.com/leapstack-labs/sqlparser/internal/source"
	"github.com/leapstack-labs/sqlparser/pkg/parser"
	"github.com/spf13/cobra"
)

// TableInfo is a table referenced by a statement.
type TableInfo struct {
	Statement int    `json:"statement" yaml:"statement"` // 1-based
	Name      string `json:"name" yaml:"name"`
	Alias     string `json:"alias,omitempty" yaml:"alias,omitempty"`
}

// NewTablesCommand creates the tables command.
func NewTablesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tables <file>",
		Short: "List the tables each statement reads or writes",
		Long: `Parse a file and list the physical tables referenced by each statement.
CTE names are resolved by scope and are not reported as tables.`,
		Example: `  sqlparser tables etl.sql --snowflake`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTables(cmd, args[0])
		},
	}
}

func runTables(cmd *cobra.Command, name string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cc.Renderer

	f, err := source.ReadFile(name)
	if err != nil {
		return err
	}
	stmts, err := parser.ParseStatements(f.Text, cc.Dialect)
	if err != nil {
		r.ParseError(f.Text, err)
		return ErrParseFailed
	}

	infos := []TableInfo{}
	for i, stmt := range stmts {
		refs, err := parser.ReferencedTables(stmt, cc.Dialect)
		if err != nil {
			return err
		}
		for _, ref := range refs {
			info := TableInfo{Statement: i + 1, Name: ref.Name.String()}
			if ref.Alias != nil {
				info.Alias = ref.Alias.String()
			}
			infos = append(infos, info)
		}
	}
	cc.Logger.Debug("collected tables", "file", name, "statements", len(stmts), "tables", len(infos))

	if r.Mode() != output.ModeText {
		return r.Data(infos)
	}
	rows := make([][]string, len(infos))
	for i, info := range infos {
		rows[i] = []string{strconv.Itoa(info.Statement), info.Name, info.Alias}
	}
	r.Table([]string{"Stmt", "Table", "Alias"}, rows)
	return nil
}
