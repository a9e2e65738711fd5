package record

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile stores rec as <dir>/<id>.toml and returns the path. The file
// is written to a temporary name and renamed into place, so readers see
// either no record or a complete one.
func WriteFile(dir string, rec Record) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, rec); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("record: create %s: %w", dir, err)
	}

	path := filepath.Join(dir, rec.ID+".toml")
	tmp, err := os.CreateTemp(dir, rec.ID+".toml.tmp.*")
	if err != nil {
		return "", fmt.Errorf("record: create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return "", fmt.Errorf("record: write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return "", fmt.Errorf("record: sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("record: close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return "", fmt.Errorf("record: set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("record: rename into place: %w", err)
	}
	committed = true
	return path, nil
}

// ReadFile loads a record written by WriteFile.
func ReadFile(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, fmt.Errorf("record: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
