package labelio

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// FileBackend is a Backend over a fixed-offset, fixed-size region of an
// already-open file — a vdev device node or a disk image. Each Write
// takes an advisory exclusive unix.Flock on the whole file and releases
// it when the write returns; Read takes no lock.
type FileBackend struct {
	f      *os.File
	offset int64
	size   int
}

// NewFileBackend opens path and returns a Backend over the size-byte
// region starting at offset. The caller is responsible for closing the
// returned FileBackend with Close once done.
func NewFileBackend(path string, offset int64, size int) (*FileBackend, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return &FileBackend{f: f, offset: offset, size: size}, nil
}

// Close releases the backend's open file descriptor.
func (b *FileBackend) Close() error {
	return b.f.Close()
}

func (b *FileBackend) Size() int { return b.size }

func (b *FileBackend) Read() ([]byte, error) {
	buf := make([]byte, b.size)
	n, err := b.f.ReadAt(buf, b.offset)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

func (b *FileBackend) Write(data []byte) error {
	if len(data) > b.size {
		return fmt.Errorf("labelio: %d bytes exceeds region size %d: %w", len(data), b.size, ErrTooLarge)
	}

	fd := int(b.f.Fd())
	if err := unix.Flock(fd, unix.LOCK_EX); err != nil {
		return err
	}
	defer unix.Flock(fd, unix.LOCK_UN)

	if _, err := b.f.WriteAt(data, b.offset); err != nil {
		return err
	}
	return nil
}
