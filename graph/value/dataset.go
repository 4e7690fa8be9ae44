package value

import "fmt"

// DataSet is the uniform tabular container every result-processing
// operator consumes and produces: a fixed column schema plus rows whose
// arity always matches it. The arity invariant is enforced at
// construction and on every append, never checked lazily by a consumer.
type DataSet struct {
	ColNames []string
	Rows     [][]Value
}

// NewDataSet builds an empty DataSet with the given schema.
func NewDataSet(colNames []string) *DataSet {
	return &DataSet{ColNames: colNames, Rows: make([][]Value, 0)}
}

// AppendRow adds row to the DataSet, returning an error if its arity does
// not match ColNames — this is the one chokepoint that guarantees the
// arity invariant holds for every row ever added.
func (d *DataSet) AppendRow(row []Value) error {
	if len(row) != len(d.ColNames) {
		return fmt.Errorf("value: row arity %d does not match column count %d", len(row), len(d.ColNames))
	}
	d.Rows = append(d.Rows, row)
	return nil
}

// ColIndex returns the position of name in ColNames, or -1.
func (d *DataSet) ColIndex(name string) int {
	for i, n := range d.ColNames {
		if n == name {
			return i
		}
	}
	return -1
}

// Get returns row[colIndex] for the named column, or Null if either the
// column or the row is out of range.
func (d *DataSet) Get(rowIdx int, name string) Value {
	ci := d.ColIndex(name)
	if ci < 0 || rowIdx < 0 || rowIdx >= len(d.Rows) {
		return Null()
	}
	return d.Rows[rowIdx][ci]
}

// Clone returns a DataSet with the same schema and a shallow copy of every
// row slice — safe for a consumer to reorder/truncate without mutating the
// source.
func (d *DataSet) Clone() *DataSet {
	out := &DataSet{ColNames: append([]string(nil), d.ColNames...), Rows: make([][]Value, len(d.Rows))}
	for i, r := range d.Rows {
		out.Rows[i] = append([]Value(nil), r...)
	}
	return out
}

// WithColumns returns an empty DataSet with the given column names; d's
// own columns are not used. No operator in this module calls it.
func (d *DataSet) WithColumns(colNames []string) *DataSet {
	return NewDataSet(colNames)
}

// ExecutionResult is the top-level envelope an executor's execute() call
// returns: exactly one of the payload shapes is meaningful, selected by
// Kind, plus a uniform Success/Error/Count status.
type ResultKind uint8

const (
	ResultDataSet ResultKind = iota
	ResultValues
	ResultVertices
	ResultEdges
	ResultPaths
)

type ExecutionResult struct {
	Kind ResultKind

	DataSet  *DataSet
	Values   []Value
	Vertices []*Vertex
	Edges    []*Edge
	Paths    []*Path

	Count   int64
	Success bool
	Err     error
}

// OK builds a successful result wrapping a DataSet, the common case for
// every result-processing operator.
func OK(ds *DataSet) *ExecutionResult {
	return &ExecutionResult{Kind: ResultDataSet, DataSet: ds, Count: int64(len(ds.Rows)), Success: true}
}

// Failed builds a failed result carrying err; no payload field is valid.
func Failed(err error) *ExecutionResult {
	return &ExecutionResult{Success: false, Err: err}
}
