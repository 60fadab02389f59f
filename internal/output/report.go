package output

import (
	"genomewatch/internal/manifest"
)

// SavedReport records where a run's artifacts landed and which prior
// files were displaced to backups.
type SavedReport struct {
	DocumentPath   string
	ManifestPath   string
	DocumentBackup string // "" on first run
	ManifestBackup string // "" on first run
}

// SaveReport persists the report document and its standalone manifest
// under dir with the given base name, backing up any prior run's files.
func SaveReport(dir, base, doc string, m *manifest.Manifest) (SavedReport, error) {
	var saved SavedReport

	payload, err := m.JSON()
	if err != nil {
		return saved, err
	}

	saved.DocumentPath = manifest.DocumentPath(dir, base)
	saved.DocumentBackup, err = WriteFile(saved.DocumentPath, []byte(doc))
	if err != nil {
		return saved, err
	}

	saved.ManifestPath = manifest.FilePath(dir, base)
	saved.ManifestBackup, err = WriteFile(saved.ManifestPath, payload)
	if err != nil {
		return saved, err
	}
	return saved, nil
}
