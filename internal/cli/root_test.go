package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leapstack-labs/sqlparser/internal/cli/commands"
	"github.com/leapstack-labs/sqlparser/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

// runCLI executes the root command and returns its stdout and stderr.
// Occurrences of path in stdout are replaced with "query.sql" so output
// can be compared against golden files. It runs in the package directory,
// where golden.Assert resolves testdata/ and no config file is discovered.
func runCLI(t *testing.T, path string, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	stdout := out.String()
	if path != "" {
		stdout = strings.ReplaceAll(stdout, path, "query.sql")
	}
	return stdout, errOut.String(), err
}

func TestRoot_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		sql    string
		flags  []string
		golden string
	}{
		{
			name:   "default generic",
			sql:    "select a from t where x != 1; select 2",
			golden: "roundtrip_generic.golden",
		},
		{
			name:   "mysql limit",
			sql:    "SELECT * FROM t LIMIT 5, 10",
			flags:  []string{"--mysql"},
			golden: "roundtrip_mysql.golden",
		},
		{
			name:   "ms top via dialect flag",
			sql:    "SELECT TOP 5 [a] FROM t",
			flags:  []string{"--dialect", "ms"},
			golden: "roundtrip_ms.golden",
		},
		{
			name:   "comments kept",
			sql:    "-- daily\nSELECT 1;",
			flags:  []string{"--comments"},
			golden: "roundtrip_comments.golden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteSQLFile(t, "query.sql", tt.sql)
			stdout, stderr, err := runCLI(t, path, append([]string{path}, tt.flags...)...)
			require.NoError(t, err, stderr)

			testutil.AssertNoANSI(t, stdout)
			golden.Assert(t, stdout, tt.golden)
		})
	}
}

func TestRoot_ParseError(t *testing.T) {
	path := testutil.WriteSQLFile(t, "query.sql", "SELECT * FROM")
	stdout, stderr, err := runCLI(t, path, path)

	require.ErrorIs(t, err, commands.ErrParseFailed)
	assert.Equal(t, "Parsing from file 'query.sql' using generic\n", stdout)
	assert.Equal(t,
		"Error during parsing: parse error at line 1, column 14: expected table name, found end of input\n"+
			"  SELECT * FROM\n"+
			"               ^\n",
		stderr)
}

func TestRoot_UnknownStatement(t *testing.T) {
	path := testutil.WriteSQLFile(t, "query.sql", "FROB x")
	_, stderr, err := runCLI(t, path, path, "--ansi")

	require.ErrorIs(t, err, commands.ErrParseFailed)
	assert.Contains(t, stderr, "expected a statement")
}

func TestRoot_MissingFile(t *testing.T) {
	_, stderr, err := runCLI(t, "", "does-not-exist.sql")

	require.ErrorIs(t, err, commands.ErrParseFailed)
	assert.Contains(t, stderr, "unable to read the file does-not-exist.sql")
}

func TestRoot_DialectFlagErrors(t *testing.T) {
	path := testutil.WriteSQLFile(t, "query.sql", "SELECT 1")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"two switches", []string{path, "--mysql", "--hive"}, "conflicting dialect flags: --mysql, --hive"},
		{"switch and name", []string{path, "--mysql", "--dialect", "hive"}, "--mysql cannot be combined with --dialect"},
		{"unknown name", []string{path, "--dialect", "oracle"}, "oracle"},
		{"unknown output", []string{path, "-o", "xml"}, "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, path, tt.args...)
			require.Error(t, err)
			assert.NotErrorIs(t, err, commands.ErrParseFailed)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRoot_JSONOutput(t *testing.T) {
	path := testutil.WriteSQLFile(t, "query.sql", "SELECT a FROM t")
	stdout, _, err := runCLI(t, path, path, "-o", "json")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Round-trip:\n'SELECT a FROM t'\n")
	assert.Contains(t, stdout, "Serialized as JSON:\n")
	assert.Contains(t, stdout, `"node": "SelectStmt"`)
}

func TestRoot_NoArgsShowsHelp(t *testing.T) {
	stdout, _, err := runCLI(t, "")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "--snowflake")
}

func TestRoot_Subcommands(t *testing.T) {
	path := testutil.WriteSQLFile(t, "query.sql",
		"WITH c AS (SELECT 1) SELECT * FROM c JOIN s.t AS x ON 1 = 1")

	t.Run("tables", func(t *testing.T) {
		stdout, _, err := runCLI(t, path, "tables", path)
		require.NoError(t, err)
		assert.Contains(t, stdout, "| STMT | TABLE | ALIAS |")
		assert.Contains(t, stdout, "| 1    | s.t   | x     |")
		assert.NotContains(t, stdout, "| c ")
	})

	t.Run("tokens json", func(t *testing.T) {
		stdout, _, err := runCLI(t, path, "tokens", path, "-o", "json")
		require.NoError(t, err)
		assert.Contains(t, stdout, `"literal": "WITH"`)
		assert.Contains(t, stdout, `"pos": "1:1"`)
	})

	t.Run("tokens with comments", func(t *testing.T) {
		commented := testutil.WriteSQLFile(t, "commented.sql", "SELECT 1 -- tail\n/* block */")
		stdout, _, err := runCLI(t, commented, "tokens", commented, "--comments", "-o", "json")
		require.NoError(t, err)
		assert.Contains(t, stdout, `"type": "LINE_COMMENT"`)
		assert.Contains(t, stdout, `"literal": "tail"`)
		assert.Contains(t, stdout, `"type": "BLOCK_COMMENT"`)
		assert.Contains(t, stdout, `"pos": "2:1"`)
	})

	t.Run("parse with dialect", func(t *testing.T) {
		stdout, _, err := runCLI(t, path, "parse", path, "--postgres")
		require.NoError(t, err)
		assert.Contains(t, stdout, "using postgres")
	})

	t.Run("dialects", func(t *testing.T) {
		stdout, _, err := runCLI(t, "", "dialects", "-o", "yaml")
		require.NoError(t, err)
		assert.Contains(t, stdout, "name: snowflake")
		assert.Contains(t, stdout, "flag: --ms")
	})

	t.Run("version", func(t *testing.T) {
		stdout, _, err := runCLI(t, "", "version")
		require.NoError(t, err)
		assert.Contains(t, stdout, "sqlparser v"+Version)
	})
}

func TestRoot_CompletionCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sqlparser")
}
