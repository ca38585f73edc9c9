// Package dimacs reads DIMACS CNF instances and the auxiliary "models"
// fixture files used by the solver's own test suite.
package dimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/schwering/sat/internal/sat"
)

// Writer is the subset of *sat.Solver that LoadDIMACS needs. Accepting an
// interface instead of a concrete *sat.Solver keeps the parser testable
// without a real solver and documents exactly what it touches.
type Writer interface {
	AddVariable() sat.Var
	AddClause(lits []sat.Literal) sat.ClauseRef
}

// Open opens filename and, if gzipped is true or filename ends in ".gz",
// wraps it in a gzip reader so the caller sees decompressed DIMACS text.
func Open(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("dimacs: %w", err)
	}
	if !gzipped && !strings.HasSuffix(filename, ".gz") {
		return file, nil
	}
	gz, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("dimacs: %s: %w", filename, err)
	}
	return &gzipReadCloser{gz: gz, file: file}, nil
}

type gzipReadCloser struct {
	gz   *gzip.Reader
	file *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.gz.Read(p) }

func (g *gzipReadCloser) Close() error {
	gzErr := g.gz.Close()
	fileErr := g.file.Close()
	if gzErr != nil {
		return gzErr
	}
	return fileErr
}

// LoadDIMACS reads a DIMACS CNF instance from r, declaring one variable per
// the header's count and adding one clause per clause line. It returns the
// declared variable and clause counts from the header, or an error naming
// the offending line.
//
// Comment lines ("c ...") are skipped wherever they occur, not only in the
// preamble, matching the leniency most DIMACS producers rely on in
// practice. Each clause is read from a single line; tokens after its
// terminating 0 on that line are ignored. A missing header, a non-"cnf"
// format field, an out-of-range literal, a non-numeric token, or a clause
// line without a terminating 0 are all reported as errors.
func LoadDIMACS(r io.Reader, w Writer) (nVars, nClauses int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	nextLine := func() (string, bool) {
		for scanner.Scan() {
			lineNo++
			line := strings.TrimSpace(scanner.Text())
			if line == "" || line[0] == 'c' {
				continue
			}
			return line, true
		}
		return "", false
	}

	header, ok := nextLine()
	if !ok {
		return 0, 0, fmt.Errorf("dimacs: no header line found")
	}
	fields := strings.Fields(header)
	if len(fields) != 4 || fields[0] != "p" {
		return 0, 0, fmt.Errorf("dimacs: line %d: malformed header %q", lineNo, header)
	}
	if fields[1] != "cnf" {
		return 0, 0, fmt.Errorf("dimacs: line %d: unsupported format %q", lineNo, fields[1])
	}
	nVars, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("dimacs: line %d: bad variable count: %w", lineNo, err)
	}
	nClauses, err = strconv.Atoi(fields[3])
	if err != nil {
		return 0, 0, fmt.Errorf("dimacs: line %d: bad clause count: %w", lineNo, err)
	}

	for i := 0; i < nVars; i++ {
		w.AddVariable()
	}

	lits := make([]sat.Literal, 0, 8)
	seen := 0
	for seen < nClauses {
		line, ok := nextLine()
		if !ok {
			return nVars, nClauses, fmt.Errorf("dimacs: expected %d clauses, found %d", nClauses, seen)
		}

		lits = lits[:0]
		terminated := false
		for _, tok := range strings.Fields(line) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nVars, nClauses, fmt.Errorf("dimacs: line %d: bad literal %q: %w", lineNo, tok, err)
			}
			if n == 0 {
				terminated = true
				break
			}
			v := n
			if v < 0 {
				v = -v
			}
			if v > nVars {
				return nVars, nClauses, fmt.Errorf("dimacs: line %d: literal %d out of range for %d variables", lineNo, n, nVars)
			}
			lits = append(lits, sat.Lit(sat.Var(v), n > 0))
		}
		if !terminated {
			return nVars, nClauses, fmt.Errorf("dimacs: line %d: clause missing terminating 0", lineNo)
		}

		w.AddClause(lits)
		seen++
	}

	return nVars, nClauses, nil
}
