package dialect

import (
	"errors"
	"testing"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	d := New(&core.DialectConfig{Name: "RegistryTest", Flag: "regtest"}).Build()
	Register(d)

	got, ok := Get("registrytest")
	require.True(t, ok)
	assert.Same(t, d, got)
	assert.Contains(t, List(), "registrytest")

	var found bool
	for _, each := range All() {
		if each == d {
			found = true
		}
	}
	assert.True(t, found)
}

func TestLookup(t *testing.T) {
	d := New(&core.DialectConfig{Name: "lookuptest", Flag: "lt"}).Build()
	Register(d)

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"by name", "lookuptest", nil},
		{"by name case-insensitive", "LookupTest", nil},
		{"by flag", "lt", nil},
		{"by flag with dashes", "--lt", nil},
		{"empty", "", ErrDialectRequired},
		{"unknown", "nosuch", ErrUnknownDialect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Same(t, d, got)
		})
	}
}
