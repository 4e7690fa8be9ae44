package exec

import (
	"context"

	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// DedupStrategy mirrors plan.DedupStrategy.
type DedupStrategy uint8

const (
	DedupFull DedupStrategy = iota
	DedupByKeys
	DedupByVertexID
	DedupByEdgeKey
)

// DedupExec removes rows whose dedup key has already been seen, enforcing
// a monotonic memory ceiling on the seen-set's estimated footprint.
type DedupExec struct {
	BaseExecutor
	Strategy         DedupStrategy
	Keys             []string
	MemoryLimitBytes int64
}

func NewDedupExec(child Operator, strategy DedupStrategy, keys []string, memLimit int64) *DedupExec {
	return &DedupExec{BaseExecutor: NewBaseExecutor("Dedup", child), Strategy: strategy, Keys: keys, MemoryLimitBytes: memLimit}
}

func (e *DedupExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	in, err := ExecuteChild(ctx, e.Children()[0])
	if err != nil || !in.Success {
		return in, err
	}
	ds := in.DataSet
	if ds == nil {
		return value.OK(value.NewDataSet(nil)), nil
	}

	out := value.NewDataSet(ds.ColNames)
	seen := make(map[string]struct{})
	var footprint int64

	for _, row := range ds.Rows {
		key := e.dedupKey(ds, row)
		if _, ok := seen[key]; ok {
			continue
		}
		if e.MemoryLimitBytes > 0 {
			footprint += int64(len(key))
			if footprint > e.MemoryLimitBytes {
				return value.Failed(ErrDedupMemoryExceeded), ErrDedupMemoryExceeded
			}
		}
		seen[key] = struct{}{}
		_ = out.AppendRow(row)
	}
	return value.OK(out), nil
}

func (e *DedupExec) dedupKey(ds *value.DataSet, row []value.Value) string {
	switch e.Strategy {
	case DedupByKeys:
		key := ""
		for _, k := range e.Keys {
			if ci := ds.ColIndex(k); ci >= 0 {
				key += row[ci].DedupKey() + "\x1f"
			}
		}
		return key
	case DedupByVertexID:
		if len(row) > 0 {
			if v, err := row[0].AsVertex(); err == nil {
				return v.ID
			}
		}
		return fullRowKey(row)
	case DedupByEdgeKey:
		if len(row) > 0 {
			if ed, err := row[0].AsEdge(); err == nil {
				return ed.Key()
			}
		}
		return fullRowKey(row)
	default: // DedupFull
		return fullRowKey(row)
	}
}

func fullRowKey(row []value.Value) string {
	key := ""
	for _, v := range row {
		key += v.DedupKey() + "\x1f"
	}
	return key
}
