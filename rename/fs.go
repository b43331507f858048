package rename

import (
	"fmt"
	"os"
)

// FS is the filesystem surface the engine needs. Rename implementations
// must refuse an existing destination: the engine never knowingly calls
// Rename onto one, and the contract keeps that guarantee honest.
type FS interface {
	Exists(path string) bool
	Rename(oldPath, newPath string) error
}

// OSFS is the live filesystem.
type OSFS struct{}

func (OSFS) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func (OSFS) Rename(oldPath, newPath string) error {
	if _, err := os.Lstat(newPath); err == nil {
		return fmt.Errorf("rename %s: destination %s already exists", oldPath, newPath)
	}
	return os.Rename(oldPath, newPath)
}
