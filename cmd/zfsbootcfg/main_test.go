package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsoome-bootenv/zfsbootenv/bootenv"
)

func TestRunSetAndReadBootDevice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "label")
	require.NoError(t, os.WriteFile(path, make([]byte, 4096), 0o600))

	require.NoError(t, run(path, 0, 4096, "", "DATA_TYPE_STRING", "zroot/ROOT/default", "zroot", false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	l, err := bootenv.Open(data)
	require.NoError(t, err)
	dev, err := bootenv.BootDevice(l)
	require.NoError(t, err)
	assert.Equal(t, "zroot/ROOT/default", dev)
}

func TestRunSetArbitraryPair(t *testing.T) {
	path := filepath.Join(t.TempDir(), "label")
	require.NoError(t, os.WriteFile(path, make([]byte, 4096), 0o600))

	require.NoError(t, run(path, 0, 4096, "grub:envmap", "DATA_TYPE_STRING", "mapdata", "", false))
	require.NoError(t, run(path, 0, 4096, "grub:envmap", "DATA_TYPE_STRING", "", "", true))
}
