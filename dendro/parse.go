package dendro

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ParseLinkage reads the whitespace linkage text format: one merge per line,
// three fields (leftId rightId mergeDistance), blank lines ignored. A row
// with any other field count is ErrLinkage. Non-numeric tokens parse to NaN
// in-place, matching the matrix text convention; NaN ids then fail in Build,
// where the leaf count is known. An empty table is valid (no dendrogram).
// Complexity: O(rows).
func ParseLinkage(r io.Reader) ([]LinkageRow, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var rows []LinkageRow
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("ParseLinkage: line %d has %d fields, want 3: %w", line, len(fields), ErrLinkage)
		}
		rows = append(rows, LinkageRow{
			Left:     linkageToken(fields[0]),
			Right:    linkageToken(fields[1]),
			Distance: linkageToken(fields[2]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ParseLinkage: read: %w", err)
	}

	return rows, nil
}

func linkageToken(tok string) float64 {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return math.NaN()
	}

	return v
}
