package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// The embedded block is versioned and checksummed so that extraction
// never has to guess: a fixed start sentinel carrying the payload digest,
// the payload inside a JSON script tag, and a fixed end sentinel. The
// payload round-trips byte-for-byte.
const (
	blockStartPrefix = "<!-- genomewatch:manifest v1 sha256="
	blockStartSuffix = " -->"
	blockOpen        = `<script type="application/json" id="genome-manifest">`
	blockClose       = "</script>"
	blockEnd         = "<!-- /genomewatch:manifest -->"
)

// ErrNoBlock is returned when a document contains no recoverable manifest
// block. Discovery treats it as "manifest absent from this source".
var ErrNoBlock = errors.New("no manifest block in document")

// Embed renders the manifest as an embeddable document block.
func Embed(m *Manifest) (string, error) {
	payload, err := m.JSON()
	if err != nil {
		return "", fmt.Errorf("embed manifest: %w", err)
	}
	sum := sha256.Sum256(payload)

	var b strings.Builder
	b.WriteString(blockStartPrefix)
	b.WriteString(hex.EncodeToString(sum[:]))
	b.WriteString(blockStartSuffix)
	b.WriteByte('\n')
	b.WriteString(blockOpen)
	b.WriteByte('\n')
	b.Write(payload)
	b.WriteByte('\n')
	b.WriteString(blockClose)
	b.WriteByte('\n')
	b.WriteString(blockEnd)
	b.WriteByte('\n')
	return b.String(), nil
}

// ExtractRaw locates the manifest block in a document and returns the
// payload bytes verbatim, after verifying the checksum. A missing block,
// truncated block, or digest mismatch all yield ErrNoBlock: the sentinels
// are specific enough that anything malformed is treated as absent rather
// than half-trusted.
func ExtractRaw(doc string) ([]byte, error) {
	start := strings.Index(doc, blockStartPrefix)
	if start < 0 {
		return nil, ErrNoBlock
	}
	rest := doc[start+len(blockStartPrefix):]

	sumEnd := strings.Index(rest, blockStartSuffix)
	if sumEnd < 0 {
		return nil, ErrNoBlock
	}
	wantSum := rest[:sumEnd]
	rest = rest[sumEnd+len(blockStartSuffix):]

	open := strings.Index(rest, blockOpen)
	if open < 0 {
		return nil, ErrNoBlock
	}
	rest = rest[open+len(blockOpen):]

	closeIdx := strings.Index(rest, blockClose)
	if closeIdx < 0 {
		return nil, ErrNoBlock
	}
	if !strings.Contains(rest[closeIdx:], blockEnd) {
		return nil, ErrNoBlock
	}

	payload := strings.TrimPrefix(rest[:closeIdx], "\n")
	payload = strings.TrimSuffix(payload, "\n")

	sum := sha256.Sum256([]byte(payload))
	if hex.EncodeToString(sum[:]) != wantSum {
		return nil, ErrNoBlock
	}

	return []byte(payload), nil
}

// Extract recovers the embedded manifest from a document.
func Extract(doc string) (*Manifest, error) {
	payload, err := ExtractRaw(doc)
	if err != nil {
		return nil, err
	}
	m, err := Parse(payload)
	if err != nil {
		// Checksummed payload that still fails to parse: treat as absent,
		// same as a missing block.
		return nil, ErrNoBlock
	}
	return m, nil
}
