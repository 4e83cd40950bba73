package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// TempFilePrefix is the prefix used for temporary files during exclusive writes.
	TempFilePrefix = "blog-tmp-"
)

// writeFileExclusive writes data to a temp file and then hard-links it to
// filename. The link fails if filename exists, so an existing document is
// never replaced and readers never observe a half-written one.
// The returned error satisfies os.IsExist when the target already exists.
func writeFileExclusive(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)

	tmpFile, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Link(tmpFile.Name(), filename); err != nil {
		if os.IsExist(err) {
			return err
		}
		return fmt.Errorf("failed to link temp file to %s: %w", filename, err)
	}

	return nil
}
