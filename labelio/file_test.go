package labelio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackendReadWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "label")
	require.NoError(t, os.WriteFile(path, make([]byte, 256), 0o600))

	b, err := NewFileBackend(path, 64, 128)
	require.NoError(t, err)
	defer b.Close()

	payload := append([]byte("nvlist-bytes"), make([]byte, 116)...)
	require.NoError(t, b.Write(payload))

	got, err := b.Read()
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestFileBackendRejectsOversizedWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "label")
	require.NoError(t, os.WriteFile(path, make([]byte, 64), 0o600))

	b, err := NewFileBackend(path, 0, 32)
	require.NoError(t, err)
	defer b.Close()

	err = b.Write(make([]byte, 64))
	assert.ErrorIs(t, err, ErrTooLarge)
}
