package conmat

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// maxLineBytes bounds one text row; visualization-scale matrices stay far
// below this.
const maxLineBytes = 1 << 20

// parseToken converts one whitespace-delimited token to float64. Non-numeric
// tokens become NaN in-place — the format's long-standing lossy convention,
// deliberately not an error.
func parseToken(tok string) float64 {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return math.NaN()
	}

	return v
}

// ParseDense reads the whitespace-delimited matrix text format: one row per
// line, values separated by any run of spaces or tabs, blank lines ignored.
// Every row must have the same length as the first; a ragged row is ErrShape.
// Non-numeric tokens parse to NaN in-place (see parseToken). Empty input is
// ErrShape.
// Complexity: O(rows·cols) over the input text.
func ParseDense(r io.Reader) (*Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]float64
	cols := 0
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if cols == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("ParseDense: line %d has %d values, want %d: %w", line, len(fields), cols, ErrShape)
		}
		row := make([]float64, len(fields))
		for j, tok := range fields {
			row[j] = parseToken(tok)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ParseDense: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("ParseDense: empty input: %w", ErrShape)
	}

	return DenseOf(rows)
}

// ParseVector reads a whitespace-delimited numeric vector: every token in the
// input, regardless of line breaks. Non-numeric tokens parse to NaN in-place.
// Empty input is ErrShape.
// Complexity: O(tokens).
func ParseVector(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	sc.Split(bufio.ScanWords)

	var out []float64
	for sc.Scan() {
		out = append(out, parseToken(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ParseVector: read: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("ParseVector: empty input: %w", ErrShape)
	}

	return out, nil
}
