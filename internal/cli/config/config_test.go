package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFlagSet mirrors the flags the root and serve commands register.
func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("dialect", "", "")
	for _, name := range []string{"ansi", "postgres", "ms", "mysql", "snowflake", "hive", "generic"} {
		fs.Bool(name, false, "")
	}
	fs.StringP("output", "o", "", "")
	fs.BoolP("verbose", "v", false, "")
	fs.Int("workers", 0, "")
	fs.String("addr", "", "")
	fs.Duration("parse-timeout", 0, "")
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sqlparser.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
dialect: postgres
output: json
workers: 3
server:
  addr: ":9000"
  read_timeout: 30s
  parse_timeout: 500ms
`)

	cfg, used, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "postgres", cfg.Dialect)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Server.ParseTimeout)
	assert.Equal(t, int64(DefaultMaxBodyBytes), cfg.Server.MaxBodyBytes)
}

func TestLoad_FoundInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sqlparser.yml"), []byte("dialect: hive\n"), 0o600))
	t.Chdir(dir)

	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "sqlparser.yml", used)
	assert.Equal(t, "hive", cfg.Dialect)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, "dialect: postgres\noutput: json\n")

	tests := []struct {
		name        string
		env         map[string]string
		args        []string
		wantDialect string
		wantOutput  string
		wantAddr    string
	}{
		{
			name:        "file only",
			wantDialect: "postgres",
			wantOutput:  "json",
			wantAddr:    DefaultAddr,
		},
		{
			name:        "env overrides file",
			env:         map[string]string{"SQLPARSER_DIALECT": "mysql", "SQLPARSER_SERVER_ADDR": ":1"},
			wantDialect: "mysql",
			wantOutput:  "json",
			wantAddr:    ":1",
		},
		{
			name:        "dialect switch overrides env",
			env:         map[string]string{"SQLPARSER_DIALECT": "mysql"},
			args:        []string{"--snowflake", "-o", "yaml"},
			wantDialect: "snowflake",
			wantOutput:  "yaml",
			wantAddr:    DefaultAddr,
		},
		{
			name:        "dialect flag",
			args:        []string{"--dialect", "ms", "--addr", ":2"},
			wantDialect: "ms",
			wantOutput:  "json",
			wantAddr:    ":2",
		},
		{
			name:        "switch set to false is ignored",
			args:        []string{"--hive=false"},
			wantDialect: "postgres",
			wantOutput:  "json",
			wantAddr:    DefaultAddr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			fs := newFlagSet()
			require.NoError(t, fs.Parse(tt.args))

			cfg, _, err := Load(path, fs)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDialect, cfg.Dialect)
			assert.Equal(t, tt.wantOutput, cfg.Output)
			assert.Equal(t, tt.wantAddr, cfg.Server.Addr)
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{"unknown dialect", "dialect: oracle\n", "invalid dialect"},
		{"unknown output", "output: xml\n", "invalid output"},
		{"negative workers", "workers: -1\n", "workers"},
		{"bad duration", "server:\n  parse_timeout: soon\n", "unable to decode config"},
		{"zero timeout", "server:\n  parse_timeout: 0s\n", "parse_timeout must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load(writeConfig(t, tt.content), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestDialectFlagsSet(t *testing.T) {
	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--mysql", "--hive", "--ansi=false"}))
	assert.Equal(t, []string{"mysql", "hive"}, DialectFlagsSet(fs))
}

func TestConfig_Helpers(t *testing.T) {
	cfg := Default()
	d, err := cfg.GetDialect()
	require.NoError(t, err)
	assert.Equal(t, "generic", d.Name)
	assert.Positive(t, cfg.GetWorkers())

	cfg.Workers = 2
	assert.Equal(t, 2, cfg.GetWorkers())
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()), "falls back to a discard logger")

	logger := NewLogger(os.Stderr, true)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))

	cfg := Default()
	cfg.Dialect = "mysql"
	assert.Same(t, cfg, FromContext(WithConfig(context.Background(), cfg)))
}
