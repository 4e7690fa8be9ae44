package exec

import (
	"context"

	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// fakeOperator is a leaf Operator returning a fixed result, for exercising
// a single operator under test without building a full plan tree.
type fakeOperator struct {
	BaseExecutor
	result *value.ExecutionResult
	err    error
}

func newFakeOperator(name string, res *value.ExecutionResult) *fakeOperator {
	return &fakeOperator{BaseExecutor: NewBaseExecutor(name), result: res}
}

func (f *fakeOperator) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	return f.result, f.err
}

func dataSetOf(cols []string, rows ...[]value.Value) *value.DataSet {
	ds := value.NewDataSet(cols)
	for _, r := range rows {
		_ = ds.AppendRow(r)
	}
	return ds
}
