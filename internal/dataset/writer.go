package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Write serializes the dataset to path atomically: the JSON lands in a
// temp file in the same directory and is renamed into place, so a reader
// never observes a half-written file.
func Write(path string, ds *Dataset) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir failed: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, ".medals-*.json")
	if err != nil {
		return fmt.Errorf("create temp file failed: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(ds); err != nil {
		tmp.Close()
		return fmt.Errorf("encode dataset failed: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file failed: %w", err)
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod temp file failed: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into place failed: %w", err)
	}
	return nil
}
