package dataset

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-gota/gota/dataframe"

	"github.com/katalvlaran/tabstat/table"
)

// DefaultHeader controls whether the first CSV row is treated as column
// names when no option says otherwise.
const DefaultHeader = true

// Option configures a load.
type Option func(*options)

type options struct {
	header bool
}

// WithHeader sets whether the first row holds column names. With
// header=false every row is data and gota synthesizes X0, X1, ... names.
func WithHeader(header bool) Option {
	return func(o *options) { o.header = header }
}

func gatherOptions(opts []Option) options {
	o := options{header: DefaultHeader}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Load reads the CSV file at path into a table, returning the table and
// its column names. Row order equals file order.
func Load(path string, opts ...Option) (table.Table, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, opts...)
}

// Read parses CSV from r into a table. Parse failures surface as
// errors wrapped with dataset context; cell-level interpretation never
// fails (non-numeric text simply stays text).
func Read(r io.Reader, opts ...Option) (table.Table, []string, error) {
	o := gatherOptions(opts)

	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(o.header),
		dataframe.DetectTypes(false), // keep raw strings; coercion is the table package's job
	)
	if df.Err != nil {
		return nil, nil, fmt.Errorf("dataset: read csv: %w", df.Err)
	}

	records := df.Records() // first record is always the column names
	names := df.Names()
	m := make(table.Table, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(table.Row, len(rec))
		for i, raw := range rec {
			row[i] = cellOf(raw)
		}
		m = append(m, row)
	}
	return m, names, nil
}

// cellOf maps one raw CSV cell onto the table's scalar model.
func cellOf(raw string) table.Cell {
	if raw == "" {
		return table.Null
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return table.Number(v)
	}
	return table.Text(raw)
}
