package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// DocumentPath returns the live report path for an output base name.
func DocumentPath(dir, base string) string {
	return filepath.Join(dir, base+".html")
}

// FilePath returns the live standalone manifest path for an output base
// name.
func FilePath(dir, base string) string {
	return filepath.Join(dir, base+"_MANIFEST.json")
}

// LoadCurrent loads the manifest of the most recent run: preferably the
// block embedded in the live report document, falling back to the live
// standalone manifest file. Returns the manifest and the path it was
// recovered from. If neither source is readable this is fatal for the
// caller; the error carries remediation text.
func LoadCurrent(dir, base string) (*Manifest, string, error) {
	docPath := DocumentPath(dir, base)
	if data, err := os.ReadFile(docPath); err == nil {
		if m, err := Extract(string(data)); err == nil {
			return m, docPath, nil
		}
	}

	filePath := FilePath(dir, base)
	if _, err := os.Stat(filePath); err == nil {
		m, err := Load(filePath)
		if err != nil {
			return nil, "", fmt.Errorf("current manifest %s is unreadable: %w", filePath, err)
		}
		return m, filePath, nil
	}

	return nil, "", fmt.Errorf(
		"no analysis found in %s: neither %s nor %s is readable; run 'genomewatch analyze' first",
		dir, filepath.Base(docPath), filepath.Base(filePath))
}

// FindPrevious locates the most recent prior manifest among timestamped
// backups in dir. Backup documents are tried first, newest by
// modification time; the manifest embedded in a document always takes
// precedence over a standalone backup manifest, since the two are written
// moments apart for the same run and the document is the authoritative
// artifact. Standalone backup manifests are the fallback, again newest
// first. A document whose embedded block is missing or unparsable is
// skipped (manifest absent from that source); a standalone backup
// manifest that matches but cannot be parsed is a hard error. Returns nil
// with no error when no candidate exists (first run).
func FindPrevious(dir, base string) (*Manifest, string, error) {
	for _, p := range newestFirst(filepath.Join(dir, base+".*.html")) {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		m, err := Extract(string(data))
		if err != nil {
			continue
		}
		return m, p, nil
	}

	for _, p := range newestFirst(filepath.Join(dir, base+"_MANIFEST.*.json")) {
		m, err := Load(p)
		if err != nil {
			return nil, "", fmt.Errorf("previous manifest %s matched but cannot be read: %w", p, err)
		}
		return m, p, nil
	}

	return nil, "", nil
}

// newestFirst returns the paths matching pattern, most recently modified
// first.
func newestFirst(pattern string) []string {
	matches, _ := filepath.Glob(pattern)

	modTimes := make(map[string]time.Time, len(matches))
	for _, p := range matches {
		if info, err := os.Stat(p); err == nil {
			modTimes[p] = info.ModTime()
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return modTimes[matches[i]].After(modTimes[matches[j]])
	})
	return matches
}
