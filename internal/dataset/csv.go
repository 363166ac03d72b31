// Package dataset loads and generates the x/y/z point sets fed to the
// plotter, and holds the built-in demo scenes.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/banshee-data/shadowplot/internal/fsutil"
)

// LoadCSV reads three numeric columns (x, y, z). A first row whose first
// field is not a number is taken as a header. Lines starting with '#' are
// comments.
func LoadCSV(r io.Reader) (x, y, z []float64, err error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, nil, err
		}
		line, _ := cr.FieldPos(0)

		if first {
			first = false
			if len(rec) > 0 && !isNumber(rec[0]) {
				continue
			}
		}
		if len(rec) != 3 {
			return nil, nil, nil, fmt.Errorf("line %d: expected 3 columns, got %d", line, len(rec))
		}

		var vals [3]float64
		for i, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("line %d column %d: %w", line, i+1, err)
			}
			vals[i] = v
		}
		x = append(x, vals[0])
		y = append(y, vals[1])
		z = append(z, vals[2])
	}
	return x, y, z, nil
}

// LoadCSVFile opens path on fs and reads it with LoadCSV.
func LoadCSVFile(fs fsutil.FileSystem, path string) (x, y, z []float64, err error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	x, y, z, err = LoadCSV(f)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return x, y, z, nil
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}
