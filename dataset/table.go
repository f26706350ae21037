// Package dataset loads tabular data into gonum matrices with named
// columns. One column is designated as the regression target; the
// remaining columns, in file order, form the feature universe for
// subset search.
package dataset

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/selago-ml/selago/pkg/errors"
)

// Table is an immutable in-memory tabular dataset. Numeric columns
// hold their parsed values; categorical columns hold label codes
// assigned from the sorted set of distinct strings in the column.
type Table struct {
	columns     []string
	data        *mat.Dense
	target      string
	categorical map[string]bool
	// labels maps a categorical column to its code→string table
	labels map[string][]string
}

// CSVOption configures FromCSV.
type CSVOption func(*csvOptions)

type csvOptions struct {
	target  string
	comma   rune
	flagged map[string]bool
}

// WithTarget designates the label column.
func WithTarget(name string) CSVOption {
	return func(o *csvOptions) {
		o.target = name
	}
}

// WithDelimiter sets the field delimiter. Default is ','.
func WithDelimiter(comma rune) CSVOption {
	return func(o *csvOptions) {
		o.comma = comma
	}
}

// WithCategorical forces a column to be treated as categorical even
// when every value parses as a number.
func WithCategorical(names ...string) CSVOption {
	return func(o *csvOptions) {
		for _, n := range names {
			o.flagged[n] = true
		}
	}
}

// FromCSV reads a headed CSV file into a Table. Columns whose values
// do not all parse as floats are label-encoded as categorical.
func FromCSV(r io.Reader, opts ...CSVOption) (*Table, error) {
	options := csvOptions{comma: ',', flagged: make(map[string]bool)}
	for _, opt := range opts {
		opt(&options)
	}

	reader := csv.NewReader(r)
	reader.Comma = options.comma
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "dataset.FromCSV: read")
	}
	if len(records) < 2 {
		return nil, errors.NewConfigurationError("dataset.FromCSV", "need a header row and at least one data row", len(records))
	}

	header := records[0]
	rows := records[1:]
	nCols := len(header)
	nRows := len(rows)

	seen := make(map[string]bool, nCols)
	for _, name := range header {
		if seen[name] {
			return nil, errors.NewConfigurationError("dataset.FromCSV", "duplicate column name", name)
		}
		seen[name] = true
	}

	if options.target != "" && !seen[options.target] {
		return nil, errors.NewConfigurationError("dataset.FromCSV", "target column not found", options.target)
	}
	for name := range options.flagged {
		if !seen[name] {
			return nil, errors.NewConfigurationError("dataset.FromCSV", "categorical column not found", name)
		}
	}

	// First pass: decide per column whether every value is numeric
	raw := make([][]string, nCols)
	numeric := make([]bool, nCols)
	for j := 0; j < nCols; j++ {
		raw[j] = make([]string, nRows)
		numeric[j] = !options.flagged[header[j]]
	}
	for i, row := range rows {
		if len(row) != nCols {
			return nil, errors.NewDimensionError("dataset.FromCSV", nCols, len(row), 1)
		}
		for j, cell := range row {
			raw[j][i] = cell
			if numeric[j] {
				if _, err := strconv.ParseFloat(cell, 64); err != nil {
					numeric[j] = false
				}
			}
		}
	}

	t := &Table{
		columns:     append([]string(nil), header...),
		target:      options.target,
		categorical: make(map[string]bool),
		labels:      make(map[string][]string),
	}

	data := mat.NewDense(nRows, nCols, nil)
	for j := 0; j < nCols; j++ {
		if numeric[j] {
			for i := 0; i < nRows; i++ {
				v, err := strconv.ParseFloat(raw[j][i], 64)
				if err != nil {
					return nil, errors.Wrapf(err, "dataset.FromCSV: column %q row %d", header[j], i)
				}
				data.Set(i, j, v)
			}
			continue
		}

		if header[j] == options.target {
			return nil, errors.NewConfigurationError("dataset.FromCSV", "target column must be numeric", options.target)
		}

		codes, labels := encodeLabels(raw[j])
		t.categorical[header[j]] = true
		t.labels[header[j]] = labels
		for i := 0; i < nRows; i++ {
			data.Set(i, j, codes[i])
		}
	}
	t.data = data

	return t, nil
}

// encodeLabels assigns each distinct string a code by sorted order so
// the encoding does not depend on row order.
func encodeLabels(values []string) ([]float64, []string) {
	distinct := make(map[string]int)
	for _, v := range values {
		distinct[v] = 0
	}

	labels := make([]string, 0, len(distinct))
	for v := range distinct {
		labels = append(labels, v)
	}
	sort.Strings(labels)
	for i, v := range labels {
		distinct[v] = i
	}

	codes := make([]float64, len(values))
	for i, v := range values {
		codes[i] = float64(distinct[v])
	}
	return codes, labels
}

// Columns returns all column names in file order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// FeatureNames returns the ordered feature universe: every column
// except the target.
func (t *Table) FeatureNames() []string {
	names := make([]string, 0, len(t.columns))
	for _, name := range t.columns {
		if name != t.target {
			names = append(names, name)
		}
	}
	return names
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	r, _ := t.data.Dims()
	return r
}

// IsCategorical reports whether the named column was label-encoded.
func (t *Table) IsCategorical(name string) bool {
	return t.categorical[name]
}

// Labels returns the code→string table for a categorical column, nil
// for numeric columns.
func (t *Table) Labels(name string) []string {
	return append([]string(nil), t.labels[name]...)
}

func (t *Table) columnIndex(name string) (int, error) {
	for j, col := range t.columns {
		if col == name {
			return j, nil
		}
	}
	return 0, errors.NewConfigurationError("dataset.Table", "unknown column", name)
}

// Select returns the n×k matrix holding the named columns in the given
// order. An unknown name is a ConfigurationError.
func (t *Table) Select(names []string) (*mat.Dense, error) {
	if len(names) == 0 {
		return nil, errors.NewConfigurationError("dataset.Select", "no columns requested", nil)
	}

	r, _ := t.data.Dims()
	result := mat.NewDense(r, len(names), nil)
	for k, name := range names {
		j, err := t.columnIndex(name)
		if err != nil {
			return nil, err
		}
		for i := 0; i < r; i++ {
			result.Set(i, k, t.data.At(i, j))
		}
	}
	return result, nil
}

// Column returns a single column as a vector.
func (t *Table) Column(name string) (*mat.VecDense, error) {
	j, err := t.columnIndex(name)
	if err != nil {
		return nil, err
	}

	r, _ := t.data.Dims()
	v := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		v.SetVec(i, t.data.At(i, j))
	}
	return v, nil
}

// Target returns the designated label column as an n×1 matrix.
func (t *Table) Target() (*mat.Dense, error) {
	if t.target == "" {
		return nil, errors.NewConfigurationError("dataset.Target", "no target column designated", nil)
	}

	vec, err := t.Column(t.target)
	if err != nil {
		return nil, err
	}

	r := vec.Len()
	y := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		y.Set(i, 0, vec.AtVec(i))
	}
	return y, nil
}

// TargetName returns the designated label column name.
func (t *Table) TargetName() string {
	return t.target
}
