package brc

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// mmapFile maps the whole file read-only and returns the view, which is
// backed by the page cache. A zero-length file maps to a nil view since
// mapping zero bytes is an error at the syscall level. Releasing the
// view is the caller's job via munmapFile.
func mmapFile(f *os.File) ([]byte, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("unable to stat file: %w", err)
	}
	if fi.Size() == 0 {
		return nil, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(fi.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("unable to mmap file: %w", err)
	}
	return data, nil
}

func munmapFile(data []byte) error {
	if data == nil {
		return nil
	}
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("unable to munmap file: %w", err)
	}
	return nil
}
