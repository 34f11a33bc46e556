package commands

import (
	"github.com/leapstack-labs/sqlparser/internal/cli/output"
	"github.com/leapstack-labs/sqlparser/internal/source"
	"github.com/leapstack-labs/sqlparser/pkg/parser"
	"github.com/leapstack-labs/sqlparser/pkg/token"
	"github.com/spf13/cobra"
)

// TokenInfo is the serialized form of a token.
type TokenInfo struct {
	Kind    string `json:"kind" yaml:"kind"`
	Type    string `json:"type" yaml:"type"`
	Literal string `json:"literal,omitempty" yaml:"literal,omitempty"`
	Pos     string `json:"pos" yaml:"pos"`
}

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	var comments bool
	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a SQL file",
		Long: `Tokenize a file with the selected dialect and print every token with
its kind, type, literal and line:column position.`,
		Example: `  sqlparser tokens query.sql --mysql
  sqlparser tokens query.sql -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0], comments)
		},
	}
	cmd.Flags().BoolVar(&comments, "comments", false, "Also list comments")
	return cmd
}

func runTokens(cmd *cobra.Command, name string, withComments bool) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cc.Renderer

	f, err := source.ReadFile(name)
	if err != nil {
		return err
	}
	tokens, comments, err := parser.Tokenize(f.Text, cc.Dialect)
	if err != nil {
		r.ParseError(f.Text, err)
		return ErrParseFailed
	}

	infos := make([]TokenInfo, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type == token.EOF {
			continue
		}
		infos = append(infos, TokenInfo{
			Kind:    tok.Kind().String(),
			Type:    tok.Type.String(),
			Literal: tok.Literal,
			Pos:     tok.Pos.String(),
		})
	}
	if withComments {
		for _, c := range comments {
			infos = append(infos, TokenInfo{Kind: "comment", Type: c.Kind.String(), Literal: c.Body(), Pos: c.Span.Start.String()})
		}
	}

	if r.Mode() != output.ModeText {
		return r.Data(infos)
	}
	rows := make([][]string, len(infos))
	for i, info := range infos {
		rows[i] = []string{info.Pos, info.Kind, info.Type, info.Literal}
	}
	r.Table([]string{"Pos", "Kind", "Type", "Literal"}, rows)
	return nil
}
