package exec

import (
	"context"

	"github.com/zhukovaskychina/graphql-engine/graph/storage"
	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// AlgorithmExec runs one whole-graph analytics call against the storage
// collaborator's AlgorithmRunner — the executor-side half of every
// Algorithm-category plan node. Run is set by the builder to close over
// the specific call (PageRank, TriangleCount, ...) the plan node named.
type AlgorithmExec struct {
	BaseExecutor
	Run     func(ctx context.Context, runner storage.AlgorithmRunner) (*value.DataSet, error)
	Runner  storage.AlgorithmRunner
}

func NewAlgorithmExec(name string, child Operator, runner storage.AlgorithmRunner, run func(ctx context.Context, runner storage.AlgorithmRunner) (*value.DataSet, error)) *AlgorithmExec {
	var children []Operator
	if child != nil {
		children = []Operator{child}
	}
	return &AlgorithmExec{BaseExecutor: NewBaseExecutor(name, children...), Run: run, Runner: runner}
}

func (e *AlgorithmExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	if len(e.Children()) > 0 {
		if _, err := ExecuteChild(ctx, e.Children()[0]); err != nil {
			return value.Failed(err), err
		}
	}
	ds, err := e.Run(ctx, e.Runner)
	if err != nil {
		return value.Failed(err), err
	}
	return value.OK(ds), nil
}
