package commands

import (
	"strings"

	"github.com/leapstack-labs/sqlparser/internal/cli/output"
	"github.com/leapstack-labs/sqlparser/pkg/dialect"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/all"
	"github.com/spf13/cobra"
)

// DialectInfo describes a built-in dialect.
type DialectInfo struct {
	Name     string   `json:"name" yaml:"name"`
	Flag     string   `json:"flag" yaml:"flag"`
	Quotes   []string `json:"quotes" yaml:"quotes"`
	Features []string `json:"features,omitempty" yaml:"features,omitempty"`
	Reserved int      `json:"reserved_words" yaml:"reserved_words"`
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List the supported SQL dialects",
		Long: `List every built-in dialect with its command-line flag, identifier
quoting and the syntax extensions it enables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDialects(cmd)
		},
	}
}

func describeDialect(d *dialect.Dialect) DialectInfo {
	info := DialectInfo{
		Name:     d.Name,
		Flag:     "--" + d.Flag,
		Reserved: len(d.ReservedWords()),
	}
	for _, q := range d.QuoteChars() {
		end, _ := d.QuoteEnd(q)
		info.Quotes = append(info.Quotes, string(q)+"x"+string(end))
	}

	features := []struct {
		on   bool
		name string
	}{
		{d.SupportsTop(), "TOP"},
		{d.SupportsQualify(), "QUALIFY"},
		{d.SupportsCastOperator(), "::"},
		{d.SupportsIlike(), "ILIKE"},
		{d.SupportsReturning(), "RETURNING"},
		{d.BackslashEscapes(), "backslash escapes"},
		{d.HashComments(), "# comments"},
	}
	for _, f := range features {
		if f.on {
			info.Features = append(info.Features, f.name)
		}
	}
	return info
}

func runDialects(cmd *cobra.Command) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cc.Renderer

	infos := make([]DialectInfo, len(all.Dialects))
	for i, d := range all.Dialects {
		infos[i] = describeDialect(d)
	}

	if r.Mode() != output.ModeText {
		return r.Data(infos)
	}
	rows := make([][]string, len(infos))
	for i, info := range infos {
		name := info.Name
		if info.Name == cc.Dialect.Name {
			name += " *"
		}
		rows[i] = []string{name, info.Flag, strings.Join(info.Quotes, " "), strings.Join(info.Features, ", ")}
	}
	r.Table([]string{"Dialect", "Flag", "Quotes", "Features"}, rows)
	return nil
}
