package bootenv

import (
	"fmt"
	"strings"

	"github.com/tsoome-bootenv/zfsbootenv/nvlist"
)

// New returns an empty bootenv nvlist with the mandatory Version key
// already set to VersionNvlist, as lzbe_set_boot_device does the first
// time it touches an empty label area.
func New() *nvlist.List {
	l := nvlist.Create(nvlist.UniqueName)
	_ = l.AddUint64(Version, VersionNvlist)
	return l
}

// Open validates an imported label bootenv stream and ensures it carries
// the mandatory Version key, adding it under VersionNvlist if absent —
// the same "version is mandatory" provisioning lzbe_set_boot_device
// performs on every call.
func Open(stream []byte) (*nvlist.List, error) {
	l, err := nvlist.Import(stream)
	if err != nil {
		return nil, err
	}
	if ok, _ := l.Exists(Version); !ok {
		if err := l.AddUint64(Version, VersionNvlist); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// SetPair stores a string-typed key/value pair, removing key instead
// when value is empty and the key is already present — the convention
// lzbe_set_pair implements for DATA_TYPE_STRING pairs.
func SetPair(l *nvlist.List, key, value string) error {
	if value == "" {
		if ok, _ := l.Exists(key); ok {
			return l.Remove(key, nvlist.TypeString)
		}
		return nil
	}
	return l.AddString(key, value)
}

// RemovePair removes key if present, and is a no-op otherwise.
func RemovePair(l *nvlist.List, key string) error {
	if ok, _ := l.Exists(key); !ok {
		return nil
	}
	return l.Remove(key, nvlist.TypeString)
}

// SetBootDevice records device as the next-boot-once device, in the
// "zfs:<dataset>:" descriptor form lzbe_set_boot_device writes. An empty
// device clears the boot-once configuration instead. A device already
// prefixed with "zfs:" is stored as given, same as the original.
func SetBootDevice(l *nvlist.List, device string) error {
	if device == "" {
		return RemovePair(l, OSBootonce)
	}
	if strings.HasPrefix(device, "zfs:") {
		return l.AddString(OSBootonce, device)
	}
	return l.AddString(OSBootonce, fmt.Sprintf("zfs:%s:", device))
}

// BootDevice returns the dataset name recorded by SetBootDevice, with
// the "zfs:" prefix and trailing ":" suffix stripped, mirroring
// lzbe_get_boot_device. Returns nvlist.ErrNotFound if no boot-once device
// is configured.
func BootDevice(l *nvlist.List) (string, error) {
	v, err := l.Find(OSBootonce, nvlist.TypeString)
	if err != nil {
		return "", err
	}
	if v.Type != nvlist.TypeString {
		return "", nvlist.ErrMalformed
	}
	val := v.Str
	if strings.HasPrefix(val, "zfs:") {
		val = val[4:]
	}
	val = strings.TrimSuffix(val, ":")
	return val, nil
}
