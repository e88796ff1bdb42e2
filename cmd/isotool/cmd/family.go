package cmd

import (
	"fmt"
	"io"
	"os"
)

// detectFamily reads the magic tag and rewinds the file.
func detectFamily(f *os.File) (string, error) {
	var tag [4]byte
	if _, err := io.ReadFull(f, tag[:]); err != nil {
		return "", fmt.Errorf("reading magic tag: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	switch {
	case tag == [4]byte{'F', 'I', 'R', 0}:
		return "FIR", nil
	case tag == [4]byte{'F', 'A', 'C', 0}:
		return "FAC", nil
	}
	return "", fmt.Errorf("%s: not a recognized container", f.Name())
}
