//go:build gofuzz
// +build gofuzz

package nvlist

// Fuzz exercises Import, the only entry point for foreign bytes in this
// package, the way go-fuzz drives untrusted kernel/bootloader input.
func Fuzz(data []byte) int {
	l, err := Import(data)
	if err != nil {
		return 0
	}
	if _, err := l.Pairs(); err != nil {
		return 0
	}
	if _, err := l.Export(); err != nil {
		return 0
	}
	return 1
}
