package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/leapstack-labs/sqlparser/internal/testutil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    string
		wantErr error
	}{
		{"plain", []byte("SELECT 1"), "SELECT 1", nil},
		{"utf8 bom", []byte("\xEF\xBB\xBFSELECT 1"), "SELECT 1", nil},
		{"utf8 bom only", []byte("\xEF\xBB\xBF"), "", nil},
		{"empty", nil, "", nil},
		{"multibyte kept", []byte("SELECT 'héllo'"), "SELECT 'héllo'", nil},
		{"utf16 le", []byte{0xFF, 0xFE, 'S', 0, 'E', 0, 'L', 0}, "SEL", nil},
		{"utf16 be", []byte{0xFE, 0xFF, 0, 'S', 0, 'E', 0, 'L'}, "SEL", nil},
		{"invalid utf8", []byte{'a', 0xC3, 0x28}, "", ErrInvalidUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead(t *testing.T) {
	got, err := Read(strings.NewReader("\uFEFFSELECT 2"))
	require.NoError(t, err)
	assert.Equal(t, "SELECT 2", got)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q.sql")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBFSELECT 1;"), 0o600))

	f, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Name)
	assert.Equal(t, "SELECT 1;", f.Text)

	_, err = ReadFile(filepath.Join(dir, "missing.sql"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to read the file")
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestWatcher_Watch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q.sql")
	other := filepath.Join(dir, "other.sql")
	require.NoError(t, os.WriteFile(path, []byte("SELECT 1"), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changed := make(chan string, 4)
	w := &Watcher{Debounce: 20 * time.Millisecond, Logger: testutil.NewTestLogger(t)}
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, []string{path}, func(p string) { changed <- p })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(other, []byte("SELECT 3"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("SELECT 2"), 0o600))

	select {
	case got := <-changed:
		assert.Equal(t, path, got)
	case <-ctx.Done():
		t.Fatal("no change reported")
	}

	cancel()
	require.NoError(t, <-done)
	close(changed)
	for p := range changed {
		assert.Equal(t, path, p, "unrelated files are not reported")
	}
}
