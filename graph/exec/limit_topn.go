package exec

import (
	"container/heap"
	"context"

	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// LimitExec keeps at most Count rows starting at Offset.
type LimitExec struct {
	BaseExecutor
	Offset, Count int64
}

func NewLimitExec(child Operator, offset, count int64) *LimitExec {
	return &LimitExec{BaseExecutor: NewBaseExecutor("Limit", child), Offset: offset, Count: count}
}

func (e *LimitExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	in, err := ExecuteChild(ctx, e.Children()[0])
	if err != nil || !in.Success {
		return in, err
	}
	ds := in.DataSet
	if ds == nil {
		return value.OK(value.NewDataSet(nil)), nil
	}
	out := value.NewDataSet(ds.ColNames)
	start := int(e.Offset)
	if start < 0 {
		start = 0
	}
	if start > len(ds.Rows) {
		start = len(ds.Rows)
	}
	end := len(ds.Rows)
	if e.Count >= 0 && start+int(e.Count) < end {
		end = start + int(e.Count)
	}
	for _, row := range ds.Rows[start:end] {
		_ = out.AppendRow(row)
	}
	return value.OK(out), nil
}

// TopNExec keeps the N best rows by Factors via a bounded min/max-heap,
// the fusion shape the Sort+Limit rewrite rule produces — avoids fully
// sorting the whole input when only the top N rows matter.
type TopNExec struct {
	BaseExecutor
	Factors []SortFactor
	N       int64
}

func NewTopNExec(child Operator, factors []SortFactor, n int64) *TopNExec {
	return &TopNExec{BaseExecutor: NewBaseExecutor("TopN", child), Factors: factors, N: n}
}

func (e *TopNExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	in, err := ExecuteChild(ctx, e.Children()[0])
	if err != nil || !in.Success {
		return in, err
	}
	ds := in.DataSet
	out := value.NewDataSet(nil)
	if ds == nil {
		return value.OK(out), nil
	}
	out.ColNames = ds.ColNames
	if e.N <= 0 {
		return value.OK(out), nil
	}

	h := &topNHeap{ds: ds, factors: e.Factors}
	for _, row := range ds.Rows {
		heap.Push(h, row)
		if int64(h.Len()) > e.N {
			heap.Pop(h)
		}
	}
	// h now holds the N best rows in heap (worst-first) order; sort them
	// into the user-facing best-first order before returning.
	rows := make([][]value.Value, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		rows[i] = heap.Pop(h).([]value.Value)
	}
	for _, row := range rows {
		_ = out.AppendRow(row)
	}
	return value.OK(out), nil
}

// topNHeap is a min-heap under "worse than" ordering (per factors), so the
// root is always the current worst of the retained top-N — popping it
// when the heap overflows N keeps only the best.
type topNHeap struct {
	ds      *value.DataSet
	factors []SortFactor
	rows    [][]value.Value
}

func (h *topNHeap) Len() int { return len(h.rows) }
func (h *topNHeap) Less(i, j int) bool {
	// "worse" sorts first: a row is worse than another if it would sort
	// after it under the user's ordering, i.e. rowLess(other, this).
	return rowLess(h.ds, h.rows[j], h.rows[i], h.factors)
}
func (h *topNHeap) Swap(i, j int) { h.rows[i], h.rows[j] = h.rows[j], h.rows[i] }
func (h *topNHeap) Push(x interface{}) { h.rows = append(h.rows, x.([]value.Value)) }
func (h *topNHeap) Pop() interface{} {
	n := len(h.rows)
	row := h.rows[n-1]
	h.rows = h.rows[:n-1]
	return row
}
