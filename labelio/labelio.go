// Package labelio persists a bootenv nvlist byte region to a backing
// store. It deliberately does not reproduce the real ZFS vdev label
// layout (four copies, uberblock rings, checksums) or the zpool ioctl
// surface that maintains it. What it keeps is the one shape every caller in this module
// needs: read a fixed-size region, hand it to bootenv.Open, and write
// the region back under an exclusive lock.
package labelio

import "github.com/tsoome-bootenv/zfsbootenv/nvlist"

// Backend reads and writes the raw bytes of a bootenv label region. A
// Backend does not know about nvlist encoding; callers decode with
// bootenv.Open and encode with (*nvlist.List).Export before calling Write.
type Backend interface {
	// Read returns the current contents of the label region.
	Read() ([]byte, error)
	// Write replaces the label region's contents with data, which must
	// not exceed the region's configured Size.
	Write(data []byte) error
	// Size returns the capacity of the label region in bytes.
	Size() int
}

// ErrTooLarge is returned by Write when data would not fit in the
// backend's configured region size.
var ErrTooLarge = nvlist.ErrNoMemory
