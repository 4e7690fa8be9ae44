package exec

import (
	"context"

	"github.com/zhukovaskychina/graphql-engine/graph/storage"
	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// DDLExec runs a single schema-mutation call against the storage
// collaborator's Catalog — the executor-side half of every Management-
// category plan node, all of which delegate their body the same way.
// Run is set by the executor builder to close over the specific Catalog
// call (CreateTag, DropIndex, ...) the originating plan node named.
type DDLExec struct {
	BaseExecutor
	Run func(ctx context.Context, catalog storage.Catalog) error
	Catalog storage.Catalog
}

func NewDDLExec(name string, catalog storage.Catalog, run func(ctx context.Context, catalog storage.Catalog) error) *DDLExec {
	return &DDLExec{BaseExecutor: NewBaseExecutor(name), Run: run, Catalog: catalog}
}

func (e *DDLExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	if err := e.Run(ctx, e.Catalog); err != nil {
		return value.Failed(err), err
	}
	return value.OK(value.NewDataSet(nil)), nil
}
