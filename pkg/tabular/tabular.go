/*
Copyright 2025 The hazardlab Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package tabular reads the delimited coefficient tables that concrete
// model variants consume. Rows are periods or scenarios, named columns are
// regression coefficients. Column names are matched case-insensitively.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
)

// ErrUnknownColumn indicates a column lookup by a name the table does not
// declare.
var ErrUnknownColumn = errors.New("unknown column")

// Table is a column-addressable coefficient dataset. It is immutable after
// load and safe for concurrent reads.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]float64
}

// ReadCSV parses a coefficient table from delimited text. The first skipRows
// rows are discarded (comment banners in published coefficient files), the
// next row is the header, and every remaining row holds one float64 per
// column. Header names are normalized to lower case.
func ReadCSV(r io.Reader, skipRows int) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	for i := 0; i < skipRows; i++ {
		if _, err := cr.Read(); err != nil {
			return nil, fmt.Errorf("skipping header rows: %w", err)
		}
	}

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading column names: %w", err)
	}
	t := &Table{
		columns: make([]string, len(header)),
		index:   make(map[string]int, len(header)),
	}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, exists := t.index[name]; exists {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		t.columns[i] = name
		t.index[name] = i
	}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make([]float64, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", len(t.rows)+1, t.columns[i], err)
			}
			row[i] = v
		}
		t.rows = append(t.rows, row)
	}
	return t, nil
}

// Load reads a coefficient table from a file system, typically an embedded
// data directory.
func Load(fsys fs.FS, name string, skipRows int) (*Table, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadCSV(f, skipRows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

// Columns returns the column names in file order.
func (t *Table) Columns() []string { return t.columns }

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns the i-th data row. The returned slice is shared with the table
// and must be treated as read-only.
func (t *Table) Row(i int) []float64 { return t.rows[i] }

// Column returns the values of the named column across all rows. Names are
// matched case-insensitively.
func (t *Table) Column(name string) ([]float64, error) {
	idx, ok := t.index[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	out := make([]float64, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[idx]
	}
	return out, nil
}

// Value returns the value at the given row in the named column.
func (t *Table) Value(row int, name string) (float64, error) {
	idx, ok := t.index[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	if row < 0 || row >= len(t.rows) {
		return 0, fmt.Errorf("row %d out of range [0, %d)", row, len(t.rows))
	}
	return t.rows[row][idx], nil
}
