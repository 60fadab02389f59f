// Package output persists report artifacts. Existing files are never
// overwritten in place: they are renamed to a timestamped backup first,
// and new content lands via a temp file plus rename.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// backupTimestamp is the layout for backup file names. Derived from the
// displaced file's own modification time, not the current clock, so a
// backup name says when its content was produced.
const backupTimestamp = "2006-01-02_15-04-05"

// BackupName returns the timestamped backup path for an existing file:
// the timestamp is inserted before the final extension, or appended when
// the name has none.
func BackupName(path string, stamp string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return path + "." + stamp
	}
	return strings.TrimSuffix(path, ext) + "." + stamp + ext
}

// Displace moves an existing file aside to its timestamped backup name.
// Returns the backup path, or "" when no file existed. The original
// bytes are preserved untouched; only the name changes.
func Displace(path string) (string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	backup := BackupName(path, info.ModTime().Format(backupTimestamp))
	if err := os.Rename(path, backup); err != nil {
		return "", fmt.Errorf("back up %s: %w", path, err)
	}
	return backup, nil
}

// WriteFile writes data to path atomically, displacing any existing file
// to a timestamped backup first. Returns the backup path if one was
// made. The temp file lives in the destination directory so the final
// rename stays on one filesystem.
func WriteFile(path string, data []byte) (backup string, err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	backup, err = Displace(path)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return backup, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return backup, fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return backup, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return backup, fmt.Errorf("finalize %s: %w", path, err)
	}
	return backup, nil
}
