package jdep

import (
	"embed"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

//go:embed data/*.csv
var dataFS embed.FS

// Dataset holds the probability and region grids extracted from Figure 1
// of Zarka et al. 2018, A&A, 618, A84. A Dataset is read-only after
// construction and safe for concurrent use.
//
// The extracted maxima, 65.3% for all emission and 17.0% for non-Io
// emission, exceed the plotted colorbar maxima of the source figure. This
// comes from how the contour labels were interpreted during extraction
// and is kept as extracted rather than rescaled.
type Dataset struct {
	ProbabilityAll   *Grid // CML x Io phase, percent
	ProbabilityNonIo *Grid // CML x Ganymede phase, percent
	RegionsIo        *RegionMask
	RegionsNonIo     *RegionMask
}

var (
	defaultOnce sync.Once
	defaultData *Dataset
)

// DefaultDataset returns the bundled dataset, parsing the embedded files
// on first use. It panics if the embedded data is corrupt: that is a
// defect in the build, not a runtime condition a caller could handle.
func DefaultDataset() *Dataset {
	defaultOnce.Do(func() {
		ds, err := loadDataset()
		if err != nil {
			panic("jdep: corrupt embedded dataset: " + err.Error())
		}
		defaultData = ds
	})
	return defaultData
}

func loadDataset() (*Dataset, error) {
	pAll, err := readGrid("data/probability_all.csv")
	if err != nil {
		return nil, err
	}
	pNonIo, err := readGrid("data/probability_nonio.csv")
	if err != nil {
		return nil, err
	}
	rIo, err := readMask("data/regions_io.csv")
	if err != nil {
		return nil, err
	}
	rNonIo, err := readMask("data/regions_nonio.csv")
	if err != nil {
		return nil, err
	}
	return &Dataset{
		ProbabilityAll:   pAll,
		ProbabilityNonIo: pNonIo,
		RegionsIo:        rIo,
		RegionsNonIo:     rNonIo,
	}, nil
}

// readRows parses one embedded CSV table. Lines starting with # are
// comments. The table must be square: rows are phase samples, columns are
// CML samples, both starting at 0 degrees with uniform spacing.
func readRows(name string) ([][]float64, error) {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var rows [][]float64
	for ln, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		row := make([]float64, len(fields))
		for k, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, ln+1, err)
			}
			row[k] = v
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no samples", name)
	}
	for _, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("%s: table is not square (%d rows, %d columns)", name, len(rows), len(row))
		}
	}
	return rows, nil
}

func readGrid(name string) (*Grid, error) {
	rows, err := readRows(name)
	if err != nil {
		return nil, err
	}
	n := len(rows)
	vals := make([]float64, 0, n*n)
	for _, row := range rows {
		vals = append(vals, row...)
	}
	return newGrid(vals, n), nil
}

func readMask(name string) (*RegionMask, error) {
	rows, err := readRows(name)
	if err != nil {
		return nil, err
	}
	n := len(rows)
	bits := make([]RegionBits, 0, n*n)
	for i, row := range rows {
		for j, v := range row {
			b := RegionBits(v)
			if float64(b) != v || v < 0 || v > 127 {
				return nil, fmt.Errorf("%s: cell (%d,%d): %v is not a region bitmask", name, i, j, v)
			}
			bits = append(bits, b)
		}
	}
	return newRegionMask(bits, n), nil
}
