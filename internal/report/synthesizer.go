package report

import (
	"time"

	"go.uber.org/zap"

	"genomewatch/internal/catalog"
	"genomewatch/internal/manifest"
	"genomewatch/internal/scan"
)

// Synthesizer turns scan results into the report document and its
// manifest. It holds no state beyond its collaborators; persistence is
// the caller's responsibility.
type Synthesizer struct {
	cat    *catalog.Catalog
	logger *zap.Logger
	now    func() time.Time
}

// New creates a synthesizer over the given catalog.
func New(cat *catalog.Catalog) *Synthesizer {
	return &Synthesizer{
		cat:    cat,
		logger: zap.NewNop(),
		now:    time.Now,
	}
}

// SetLogger sets the logger for summary messages.
func (s *Synthesizer) SetLogger(l *zap.Logger) {
	s.logger = l
}

// SetClock overrides the generation timestamp source.
func (s *Synthesizer) SetClock(now func() time.Time) {
	s.now = now
}

// Synthesize joins the observed variants against the catalog and returns
// the rendered HTML document (with the manifest embedded) and the
// manifest itself.
func (s *Synthesizer) Synthesize(observed []scan.Observed) (string, *manifest.Manifest, error) {
	f := Join(s.cat, observed)

	s.logger.Info("findings categorized",
		zap.Int("pharmacogenomic", len(f.Pharm)),
		zap.Int("clinical", len(f.Clinical)),
		zap.Int("traits", len(f.Traits)))

	generated := s.now()
	m := BuildManifest(generated, f)

	doc, err := renderHTML(f, m, generated)
	if err != nil {
		return "", nil, err
	}
	return doc, m, nil
}
