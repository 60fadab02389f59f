package vcf

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// minFields is the number of tab-delimited columns a genotyped VCF line
// must have: the 8 fixed columns plus FORMAT and one sample column.
const minFields = 10

// Parser reads genotyped variant records from a VCF file in one forward
// pass. Header lines and malformed data lines are skipped, not fatal.
type Parser struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
	skipped    int
}

// NewParser creates a parser for the given file. Both plain and gzipped
// (.vcf.gz) files are supported; compression is detected from the gzip
// magic bytes, not the file name.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vcf file: %w", err)
	}

	p := &Parser{file: file}

	buf := make([]byte, 2)
	if _, err := io.ReadFull(file, buf); err != nil {
		// A file shorter than two bytes has no records either way.
		p.reader = bufio.NewReader(file)
		return p, nil
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek vcf file: %w", err)
	}

	if buf[0] == 0x1f && buf[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.reader = bufio.NewReader(p.gzipReader)
	} else {
		p.reader = bufio.NewReader(file)
	}

	return p, nil
}

// NewParserFromReader creates a parser from an io.Reader (e.g., stdin).
func NewParserFromReader(r io.Reader) *Parser {
	return &Parser{reader: bufio.NewReader(r)}
}

// Next reads the next genotyped record. Header lines and lines with fewer
// than 10 columns or an unparsable position are skipped silently.
// Returns nil, nil when there are no more records.
func (p *Parser) Next() (*Record, error) {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read variant line: %w", err)
		}
		if line == "" && err == io.EOF {
			return nil, nil
		}
		p.lineNumber++

		line = strings.TrimRight(line, "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			if err == io.EOF {
				return nil, nil
			}
			continue
		}

		rec, ok := p.parseLine(line)
		if !ok {
			p.skipped++
			if err == io.EOF {
				return nil, nil
			}
			continue
		}
		return rec, nil
	}
}

// parseLine parses a single data line. Returns false for lines that do
// not carry a well-formed genotyped record.
func (p *Parser) parseLine(line string) (*Record, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) < minFields {
		return nil, false
	}

	pos, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil, false
	}

	// Genotype is the first colon-delimited field of the sample column.
	gt := fields[9]
	if i := strings.IndexByte(gt, ':'); i >= 0 {
		gt = gt[:i]
	}

	return &Record{
		Chrom:    fields[0],
		Pos:      pos,
		ID:       fields[2],
		Ref:      fields[3],
		Alts:     strings.Split(fields[4], ","),
		Genotype: gt,
	}, true
}

// LineNumber returns the current line number being processed.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// SkippedLines returns the number of malformed data lines skipped so far.
func (p *Parser) SkippedLines() int {
	return p.skipped
}

// Close closes the parser and underlying file.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}
