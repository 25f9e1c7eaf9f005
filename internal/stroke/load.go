package stroke

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/san-kum/epicycles/internal/epicycle"
)

// Load reads a stroke file of "x,y" rows. Files ending in .zst are
// decompressed first.
func Load(path string) ([]epicycle.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("stroke: %s: %w", path, err)
		}
		defer dec.Close()
		r = dec
	}

	pts, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pts, nil
}

// Read parses CSV rows of at least two numeric columns. Lines starting with
// '#' are comments and a non-numeric first row is taken as a header.
func Read(r io.Reader) ([]epicycle.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	pts := make([]epicycle.Point, 0, 256)
	first := true
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("stroke: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if len(record) < 2 {
			return nil, fmt.Errorf("stroke: line %d: expected x,y, got %d field(s)", line, len(record))
		}

		x, errX := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if errX != nil || errY != nil {
			if first {
				first = false
				continue
			}
			return nil, fmt.Errorf("stroke: line %d: invalid coordinate %q,%q", line, record[0], record[1])
		}
		first = false
		pts = append(pts, epicycle.Point{X: x, Y: y})
	}
	return pts, nil
}
