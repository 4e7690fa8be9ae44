package exec

import (
	"context"

	"github.com/zhukovaskychina/graphql-engine/graph/storage"
	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// IndexScanExec reads vertices through a named secondary index rather than
// a full tag scan — the rewrite engine's index-selection rule rewires a
// ScanVertices node into this shape once it proves a Filter predicate above
// it is a property-equality probe the catalog has an index for. EqualKey
// only names the indexed property; the equality value itself stays in the
// Filter node the rewrite rule leaves sitting on top (it may be a runtime
// variable, not a constant, so it cannot be folded in here). Execution
// still delegates to Collaborator.ScanVertices with HasProp set, letting
// the storage side pick the index-aware path for that property key.
type IndexScanExec struct {
	BaseExecutor
	IndexName string
	EqualKey  string
	Store     storage.Collaborator
}

func NewIndexScanExec(indexName, equalKey string, store storage.Collaborator) *IndexScanExec {
	return &IndexScanExec{BaseExecutor: NewBaseExecutor("IndexScan"), IndexName: indexName, EqualKey: equalKey, Store: store}
}

func (e *IndexScanExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	filter := storage.VertexFilter{PropKey: e.EqualKey, HasProp: true}
	vs, err := e.Store.ScanVertices(ctx, filter)
	if err != nil {
		return value.Failed(err), err
	}
	out := value.NewDataSet([]string{"_scan"})
	for _, v := range vs {
		_ = out.AppendRow([]value.Value{value.VertexVal(v)})
	}
	return value.OK(out), nil
}
