package exec

import (
	"context"
	"sort"

	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// SortFactor mirrors plan.SortFactor — see project.go's ProjectItem comment
// for why graph/exec keeps its own copy instead of importing graph/plan.
type SortFactor struct {
	Column string
	Asc    bool
}

// SortExec orders rows by Factors, applied left to right. Values that are
// not mutually orderable (ErrNotOrderable) sort as equal rather than
// erroring the whole query — sort is a best-effort total order over a
// Value set that may contain unorderable container/graph members.
type SortExec struct {
	BaseExecutor
	Factors []SortFactor
}

func NewSortExec(child Operator, factors []SortFactor) *SortExec {
	return &SortExec{BaseExecutor: NewBaseExecutor("Sort", child), Factors: factors}
}

func (e *SortExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	in, err := ExecuteChild(ctx, e.Children()[0])
	if err != nil || !in.Success {
		return in, err
	}
	ds := in.DataSet
	if ds == nil {
		return value.OK(value.NewDataSet(nil)), nil
	}
	out := ds.Clone()
	sort.SliceStable(out.Rows, func(i, j int) bool {
		return rowLess(out, out.Rows[i], out.Rows[j], e.Factors)
	})
	return value.OK(out), nil
}

// rowLess applies factors left to right, first non-zero comparison wins.
func rowLess(ds *value.DataSet, a, b []value.Value, factors []SortFactor) bool {
	for _, f := range factors {
		ci := ds.ColIndex(f.Column)
		if ci < 0 {
			continue
		}
		c, err := a[ci].Compare(b[ci])
		if err != nil {
			continue
		}
		if c == 0 {
			continue
		}
		if f.Asc {
			return c < 0
		}
		return c > 0
	}
	return false
}
