package export

import (
	"fmt"
	"os"
)

// writeFileAtomically writes content to a ".part" sibling of path and
// renames it into place, so a reader never observes a partially written
// file and a crash mid-write leaves only the ".part" file behind.
func writeFileAtomically(path string, content []byte) error {
	tmpPath := path + ".part"
	if err := os.WriteFile(tmpPath, content, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func ensureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create target directory: %w", err)
	}
	return nil
}
