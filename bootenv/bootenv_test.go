package bootenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsoome-bootenv/zfsbootenv/nvlist"
)

func TestNewProvisionsVersion(t *testing.T) {
	l := New()
	v, err := l.Find(Version, nvlist.TypeUint64)
	require.NoError(t, err)
	assert.Equal(t, VersionNvlist, v.Uint)
}

func TestSetPairEmptyValueRemoves(t *testing.T) {
	l := New()
	require.NoError(t, SetPair(l, "grub:envmap", "mapdata"))

	ok, err := l.Exists("grub:envmap")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, SetPair(l, "grub:envmap", ""))
	ok, err = l.Exists("grub:envmap")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetPairEmptyValueOnAbsentKeyIsNoop(t *testing.T) {
	l := New()
	require.NoError(t, SetPair(l, "grub:envmap", ""))
	ok, err := l.Exists("grub:envmap")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBootDeviceRoundTrip(t *testing.T) {
	l := New()
	require.NoError(t, SetBootDevice(l, "zroot/ROOT/default"))

	dev, err := BootDevice(l)
	require.NoError(t, err)
	assert.Equal(t, "zroot/ROOT/default", dev)
}

func TestBootDeviceAcceptsPreformattedDescriptor(t *testing.T) {
	l := New()
	require.NoError(t, SetBootDevice(l, "zfs:zroot/ROOT/default:"))

	v, err := l.Find(OSBootonce, nvlist.TypeString)
	require.NoError(t, err)
	assert.Equal(t, "zfs:zroot/ROOT/default:", v.Str)
}

func TestSetBootDeviceEmptyClears(t *testing.T) {
	l := New()
	require.NoError(t, SetBootDevice(l, "zroot/ROOT/default"))
	require.NoError(t, SetBootDevice(l, ""))

	_, err := BootDevice(l)
	assert.ErrorIs(t, err, nvlist.ErrNotFound)
}
