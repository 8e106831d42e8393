// Package bootenv implements the FreeBSD/illumos zpool label bootenv
// nvlist convention on top of nvlist: reserved key names, the
// "zfs:<dataset>:" boot-once device descriptor, and the empty-value-
// means-remove convention libzfsbootenv's lzbe_* helpers use.
package bootenv

// Reserved pair keys, ported from sys/zfs_bootenv.h. BOOTENV_OS is fixed
// to "freebsd" here; illumos consumers would use the "illumos:" vendor
// prefix instead; this module only implements the FreeBSD convention.
const (
	// Version is the mandatory key recording which bootenv layout a
	// label's nvlist uses.
	Version = "version"

	GrubEnvmap = "grub:envmap"

	FreeBSDBootonce     = "freebsd:bootonce"
	FreeBSDBootonceUsed = "freebsd:bootonce-used"
	IllumosBootonce     = "illumos:bootonce"
	IllumosBootonceUsed = "illumos:bootonce-used"

	// OSBootonce is the bootonce key for the convention this package
	// implements (FreeBSD).
	OSBootonce     = FreeBSDBootonce
	OSBootonceUsed = FreeBSDBootonceUsed
)

// Version values for the Version key. VersionNvlist marks a label's
// bootenv area as holding an nvlist payload rather than a raw legacy
// string, the only encoding this package produces.
const (
	VersionRaw uint64 = iota
	VersionNvlist
)
