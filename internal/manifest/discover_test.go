package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "genome_report"

func writeDoc(t *testing.T, path string, m *Manifest) {
	t.Helper()
	block, err := Embed(m)
	require.NoError(t, err)
	doc := "<html><body>\n" + block + "</body></html>\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
}

func writeManifestFile(t *testing.T, path string, m *Manifest) {
	t.Helper()
	data, err := m.JSON()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func touch(t *testing.T, path string, when time.Time) {
	t.Helper()
	require.NoError(t, os.Chtimes(path, when, when))
}

func TestLoadCurrent_PrefersEmbeddedBlock(t *testing.T) {
	dir := t.TempDir()
	docManifest := manifestWith(map[string]string{"rsDoc": "clinical"})
	fileManifest := manifestWith(map[string]string{"rsFile": "clinical"})

	writeDoc(t, DocumentPath(dir, base), docManifest)
	writeManifestFile(t, FilePath(dir, base), fileManifest)

	got, path, err := LoadCurrent(dir, base)
	require.NoError(t, err)
	assert.Equal(t, docManifest, got)
	assert.Equal(t, DocumentPath(dir, base), path)
}

func TestLoadCurrent_FallsBackToManifestFile(t *testing.T) {
	dir := t.TempDir()
	fileManifest := manifestWith(map[string]string{"rsFile": "clinical"})

	// Document exists but carries no block.
	require.NoError(t, os.WriteFile(DocumentPath(dir, base), []byte("<html></html>"), 0644))
	writeManifestFile(t, FilePath(dir, base), fileManifest)

	got, path, err := LoadCurrent(dir, base)
	require.NoError(t, err)
	assert.Equal(t, fileManifest, got)
	assert.Equal(t, FilePath(dir, base), path)
}

func TestLoadCurrent_NothingFound(t *testing.T) {
	dir := t.TempDir()

	_, _, err := LoadCurrent(dir, base)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "genomewatch analyze")
}

func TestLoadCurrent_UnreadableManifestFileFatal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(FilePath(dir, base), []byte("{corrupt"), 0644))

	_, _, err := LoadCurrent(dir, base)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreadable")
}

func TestFindPrevious_NoCandidates(t *testing.T) {
	dir := t.TempDir()
	// Live files only; discovery must not mistake them for backups.
	writeDoc(t, DocumentPath(dir, base), manifestWith(map[string]string{"rsLive": "traits"}))
	writeManifestFile(t, FilePath(dir, base), manifestWith(map[string]string{"rsLive": "traits"}))

	m, path, err := FindPrevious(dir, base)
	require.NoError(t, err)
	assert.Nil(t, m)
	assert.Empty(t, path)
}

func TestFindPrevious_NewestBackupDocWins(t *testing.T) {
	dir := t.TempDir()
	older := manifestWith(map[string]string{"rsOld": "clinical"})
	newer := manifestWith(map[string]string{"rsNew": "clinical"})

	oldPath := filepath.Join(dir, base+".2026-03-01_10-00-00.html")
	newPath := filepath.Join(dir, base+".2026-03-10_10-00-00.html")
	writeDoc(t, oldPath, older)
	writeDoc(t, newPath, newer)
	touch(t, oldPath, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	touch(t, newPath, time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC))

	m, path, err := FindPrevious(dir, base)
	require.NoError(t, err)
	assert.Equal(t, newer, m)
	assert.Equal(t, newPath, path)
}

func TestFindPrevious_EmbeddedBeatsStandaloneAtSameTime(t *testing.T) {
	dir := t.TempDir()
	docManifest := manifestWith(map[string]string{"rsDoc": "clinical"})
	fileManifest := manifestWith(map[string]string{"rsFile": "clinical"})

	when := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	docPath := filepath.Join(dir, base+".2026-03-10_10-00-00.html")
	filePath := filepath.Join(dir, base+"_MANIFEST.2026-03-10_10-00-00.json")
	writeDoc(t, docPath, docManifest)
	writeManifestFile(t, filePath, fileManifest)
	touch(t, docPath, when)
	touch(t, filePath, when)

	m, path, err := FindPrevious(dir, base)
	require.NoError(t, err)
	assert.Equal(t, docManifest, m)
	assert.Equal(t, docPath, path)
}

func TestFindPrevious_DocumentWinsOverSlightlyNewerManifestFile(t *testing.T) {
	// One run writes the document a few milliseconds before its standalone
	// manifest, so the pair never shares an exact mtime. The embedded
	// manifest still wins.
	dir := t.TempDir()
	docManifest := manifestWith(map[string]string{"rsDoc": "clinical"})
	fileManifest := manifestWith(map[string]string{"rsFile": "clinical"})

	when := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	docPath := filepath.Join(dir, base+".2026-03-10_10-00-00.html")
	filePath := filepath.Join(dir, base+"_MANIFEST.2026-03-10_10-00-00.json")
	writeDoc(t, docPath, docManifest)
	writeManifestFile(t, filePath, fileManifest)
	touch(t, docPath, when)
	touch(t, filePath, when.Add(5*time.Millisecond))

	m, path, err := FindPrevious(dir, base)
	require.NoError(t, err)
	assert.Equal(t, docManifest, m)
	assert.Equal(t, docPath, path)
}

func TestFindPrevious_SkipsDocWithoutBlock(t *testing.T) {
	dir := t.TempDir()
	fallback := manifestWith(map[string]string{"rsFile": "clinical"})

	docPath := filepath.Join(dir, base+".2026-03-10_10-00-00.html")
	filePath := filepath.Join(dir, base+"_MANIFEST.2026-03-01_10-00-00.json")
	require.NoError(t, os.WriteFile(docPath, []byte("<html>no block</html>"), 0644))
	writeManifestFile(t, filePath, fallback)
	touch(t, docPath, time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC))
	touch(t, filePath, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	m, path, err := FindPrevious(dir, base)
	require.NoError(t, err)
	assert.Equal(t, fallback, m)
	assert.Equal(t, filePath, path)
}

func TestFindPrevious_CorruptStandaloneFatal(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, base+"_MANIFEST.2026-03-10_10-00-00.json")
	require.NoError(t, os.WriteFile(filePath, []byte("{corrupt"), 0644))

	_, _, err := FindPrevious(dir, base)
	require.Error(t, err)
	assert.Contains(t, err.Error(), filePath)
}
