package exec

import (
	"context"
	"fmt"

	"github.com/zhukovaskychina/graphql-engine/graph/expr"
	"github.com/zhukovaskychina/graphql-engine/graph/plan"
	"github.com/zhukovaskychina/graphql-engine/graph/pool"
	"github.com/zhukovaskychina/graphql-engine/graph/storage"
	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// Builder translates a (rewritten) plan.Node tree into an Operator tree,
// wiring every leaf and transform to the engine dependencies the plan
// model itself stays free of: the storage collaborator, the function and
// aggregate registries, the worker pool, and the safety guards. It is the
// one place that imports both graph/plan and graph/exec — everywhere else
// the two packages keep their own parallel copies of shared parameter
// shapes (see project.go's ProjectItem comment for why).
type Builder struct {
	Store     storage.Collaborator
	Catalog   storage.Catalog
	Algorithm storage.AlgorithmRunner
	Funcs     *expr.FunctionRegistry
	Aggs      *expr.AggregateRegistry
	Pool      *pool.Pool
	Parallel  ParallelConfig
	Safety    *SafetyValidator
}

// Build recursively constructs the Operator for node, building its inputs
// first — a plan tree is always built bottom-up since every constructor
// above needs its children's Operators in hand.
func (b *Builder) Build(node plan.Node) (Operator, error) {
	children, err := b.buildInputs(node)
	if err != nil {
		return nil, err
	}

	switch n := node.(type) {

	// Access
	case *plan.ScanVertices:
		return NewScanVerticesExec(n.TagFilter, b.Store), nil
	case *plan.ScanEdges:
		return NewScanEdgesExec(n.TypeFilter, b.Store), nil
	case *plan.GetVertices:
		return NewGetVerticesExec(n.IDs, b.Store), nil
	case *plan.GetEdges:
		return NewGetEdgesExec(b.convertEdgeKeys(n.Keys), b.Store), nil
	case *plan.GetNeighbors:
		return NewGetNeighborsExec(children[0], n.SrcVar, n.EdgeTypes, n.Reverse, b.Store), nil
	case *plan.IndexScan:
		return NewIndexScanExec(n.IndexName, n.EqualKey, b.Store), nil
	case *plan.Argument:
		return NewArgumentExec(n.ArgName, n.OutputVar(), b.Store), nil

	// Traversal
	case *plan.Traverse:
		te := NewTraverseExec(children[0], n.SrcVar, n.EdgeTypes, n.Reverse, n.MinHop, n.MaxHop,
			n.EdgeFilter, n.VertexFilter, n.GeneralFilter, b.Store, b.Funcs, b.Aggs, b.Pool, b.Parallel, b.Safety)
		te.GeneratePath = n.GeneratePath
		return te, nil
	case *plan.Expand:
		return NewExpandExec(children[0], n.SrcVar, n.EdgeTypes, n.Reverse, n.EdgeFilter, b.Store, b.Funcs, b.Aggs), nil
	case *plan.ExpandAll:
		return NewExpandAllExec(children[0], n.SrcVar, n.Reverse, b.Store), nil
	case *plan.AppendVertices:
		return NewAppendVerticesExec(children[0], n.EdgeVar, b.Store), nil
	case *plan.BFSShortest:
		return NewBFSShortestExec(children[0], n.FromVar, n.ToVar, n.EdgeTypes, n.MaxHop, b.Store), nil
	case *plan.ShortestPath:
		return NewShortestPathExec(children[0], n.FromVar, n.ToVar, n.EdgeTypes, n.MaxHop, b.Store), nil
	case *plan.AllPaths:
		return NewAllPathsExec(children[0], n.FromVar, n.ToVar, n.EdgeTypes, n.MaxHop, b.Store, b.Safety), nil
	case *plan.MultiShortestPath:
		return NewMultiShortestPathExec(children[0], n.FromVar, n.ToVar, n.EdgeTypes, n.MaxHop, n.SingleShortest, b.Store, b.Pool, b.Parallel), nil

	// Operation
	case *plan.Filter:
		return NewFilterExec(children[0], n.Predicate, b.Funcs, b.Aggs, b.Pool, b.Parallel), nil
	case *plan.Project:
		return NewProjectExec(children[0], convertProjectItems(n.Items), b.Funcs, b.Aggs, b.Pool, b.Parallel), nil
	case *plan.Sort:
		return NewSortExec(children[0], convertSortFactors(n.Factors)), nil
	case *plan.Limit:
		return NewLimitExec(children[0], n.Offset, n.Count), nil
	case *plan.TopN:
		return NewTopNExec(children[0], convertSortFactors(n.Factors), n.N), nil
	case *plan.Sample:
		return NewSampleExec(children[0], n.Count, convertSampleStrategy(n.Strategy), uint64(n.ID())), nil
	case *plan.Dedup:
		memLimit := n.MemoryLimitBytes
		if memLimit == 0 {
			memLimit = 100 * 1024 * 1024
		}
		return NewDedupExec(children[0], convertDedupStrategy(n.Strategy), n.Keys, memLimit), nil
	case *plan.Aggregate:
		return NewAggregateExec(children[0], n.GroupCols, n.GroupKeys, convertAggregateItems(n.Items), b.Funcs, b.Aggs, b.Pool, b.Parallel), nil
	case *plan.Having:
		return NewHavingExec(children[0], n.Predicate, b.Funcs, b.Aggs), nil
	case *plan.Unwind:
		return NewUnwindExec(children[0], n.ListExpr, n.OutputVar(), b.Funcs, b.Aggs), nil
	case *plan.Assign:
		return NewAssignExec(children[0], n.Expr, n.Alias, b.Funcs, b.Aggs), nil

	// Join
	case *plan.InnerJoin:
		return NewInnerJoinExec(children[0], children[1], n.On, b.Funcs, b.Aggs), nil
	case *plan.LeftJoin:
		return NewLeftJoinExec(children[0], children[1], n.On, b.Funcs, b.Aggs), nil
	case *plan.HashJoin:
		return NewHashJoinExec(children[0], children[1], n.LeftKey, n.RightKey, b.Funcs, b.Aggs), nil
	case *plan.CrossJoin:
		return NewCrossJoinExec(children[0], children[1]), nil
	case *plan.BiJoin:
		return NewBiJoinExec(children[0], children[1], n.LeftVertexVar, n.RightVertexVar), nil

	// DataProcessing
	case *plan.Union:
		return NewUnionExec(children...), nil
	case *plan.UnionAllVersioned:
		return NewUnionAllVersionedExec(children...), nil
	case *plan.Intersect:
		return NewIntersectExec(children...), nil
	case *plan.Minus:
		return NewMinusExec(children[0], children[1]), nil
	case *plan.Distinct:
		return NewDistinctExec(children[0]), nil
	case *plan.DataCollect:
		return NewDataCollectExec(n.CollectVar, children...), nil

	// ControlFlow
	case *plan.Start:
		return NewStartExec(), nil
	case *plan.End:
		return NewEndExec(children[0]), nil
	case *plan.PassThrough:
		return NewPassThroughExec(children[0]), nil
	case *plan.SelectBranch:
		// Inputs() is [IfBranch, ElseBranch] by construction (see
		// plan.NewSelectBranch), so children already holds both built
		// operators in order.
		return NewSelectBranchExec(children[0], children[1], n.ConditionVar, b.resolveBoolInput), nil
	case *plan.Loop:
		// Inputs() is [Body] by construction (see plan.NewLoop).
		return NewLoopExec(children[0], n.ConditionVar, b.Safety), nil
	case *plan.LoopBody:
		return NewLoopBodyExec(children[0]), nil

	// Algorithm
	case *plan.ConnectedComponents:
		edgeTypes := n.EdgeTypes
		return NewAlgorithmExec("ConnectedComponents", children[0], b.Algorithm, func(ctx context.Context, r storage.AlgorithmRunner) (*value.DataSet, error) {
			return r.ConnectedComponents(ctx, edgeTypes)
		}), nil
	case *plan.LabelPropagation:
		edgeTypes, maxRounds := n.EdgeTypes, n.MaxRounds
		return NewAlgorithmExec("LabelPropagation", children[0], b.Algorithm, func(ctx context.Context, r storage.AlgorithmRunner) (*value.DataSet, error) {
			return r.LabelPropagation(ctx, edgeTypes, maxRounds)
		}), nil
	case *plan.TriangleCount:
		edgeTypes := n.EdgeTypes
		return NewAlgorithmExec("TriangleCount", children[0], b.Algorithm, func(ctx context.Context, r storage.AlgorithmRunner) (*value.DataSet, error) {
			return r.TriangleCount(ctx, edgeTypes)
		}), nil
	case *plan.PageRank:
		edgeTypes, damping, maxRounds := n.EdgeTypes, n.Damping, n.MaxRounds
		return NewAlgorithmExec("PageRank", children[0], b.Algorithm, func(ctx context.Context, r storage.AlgorithmRunner) (*value.DataSet, error) {
			return r.PageRank(ctx, edgeTypes, damping, maxRounds)
		}), nil
	case *plan.ShortestPathAlgo:
		edgeTypes := n.EdgeTypes
		return NewAlgorithmExec("ShortestPathAlgo", children[0], b.Algorithm, func(ctx context.Context, r storage.AlgorithmRunner) (*value.DataSet, error) {
			return r.AllPairsShortestPath(ctx, edgeTypes)
		}), nil
	case *plan.SubgraphExtract:
		fromVar, edgeTypes, maxHop := n.FromVar, n.EdgeTypes, n.MaxHop
		store := b.Store
		return NewAlgorithmExec("SubgraphExtract", children[0], b.Algorithm, func(ctx context.Context, r storage.AlgorithmRunner) (*value.DataSet, error) {
			from, err := store.GetInput(ctx, fromVar)
			if err != nil {
				return nil, err
			}
			ids := make([]string, 0, len(from))
			for _, v := range from {
				if id, ok := vertexID(v); ok {
					ids = append(ids, id)
				}
			}
			return r.SubgraphExtract(ctx, ids, edgeTypes, maxHop)
		}), nil

	// Management (DDL)
	case *plan.CreateTag:
		return NewDDLExec("CreateTag", b.Catalog, func(ctx context.Context, c storage.Catalog) error {
			return c.CreateTag(ctx, n.TagName, n.Props)
		}), nil
	case *plan.AlterTag:
		return NewDDLExec("AlterTag", b.Catalog, func(ctx context.Context, c storage.Catalog) error {
			return c.AlterTag(ctx, n.TagName, n.AddProps, n.DropProps)
		}), nil
	case *plan.DropTag:
		return NewDDLExec("DropTag", b.Catalog, func(ctx context.Context, c storage.Catalog) error {
			return c.DropTag(ctx, n.TagName)
		}), nil
	case *plan.CreateEdgeType:
		return NewDDLExec("CreateEdgeType", b.Catalog, func(ctx context.Context, c storage.Catalog) error {
			return c.CreateEdgeType(ctx, n.TypeName, n.Props)
		}), nil
	case *plan.AlterEdgeType:
		return NewDDLExec("AlterEdgeType", b.Catalog, func(ctx context.Context, c storage.Catalog) error {
			return c.AlterEdgeType(ctx, n.TypeName, n.AddProps, n.DropProps)
		}), nil
	case *plan.DropEdgeType:
		return NewDDLExec("DropEdgeType", b.Catalog, func(ctx context.Context, c storage.Catalog) error {
			return c.DropEdgeType(ctx, n.TypeName)
		}), nil
	case *plan.CreateIndex:
		return NewDDLExec("CreateIndex", b.Catalog, func(ctx context.Context, c storage.Catalog) error {
			return c.CreateIndex(ctx, n.IndexName, n.OnTag, n.Fields)
		}), nil
	case *plan.DropIndex:
		return NewDDLExec("DropIndex", b.Catalog, func(ctx context.Context, c storage.Catalog) error {
			return c.DropIndex(ctx, n.IndexName)
		}), nil
	case *plan.CreateSnapshot:
		return NewDDLExec("CreateSnapshot", b.Catalog, func(ctx context.Context, c storage.Catalog) error {
			return c.CreateSnapshot(ctx, n.SnapshotName)
		}), nil
	}

	return nil, fmt.Errorf("exec: no builder case for plan node %s", node.Name())
}

func (b *Builder) buildInputs(node plan.Node) ([]Operator, error) {
	inputs := node.Inputs()
	if len(inputs) == 0 {
		return nil, nil
	}
	ops := make([]Operator, len(inputs))
	for i, in := range inputs {
		op, err := b.Build(in)
		if err != nil {
			return nil, err
		}
		ops[i] = op
	}
	return ops, nil
}

// resolveBoolInput resolves a SelectBranch's ConditionVar as a bound
// parameter through the same GetInput hook Argument uses — a branch
// condition is always supplied by the caller before the query runs.
func (b *Builder) resolveBoolInput(ctx context.Context, name string) (bool, error) {
	vals, err := b.Store.GetInput(ctx, name)
	if err != nil {
		return false, err
	}
	if len(vals) == 0 {
		return false, nil
	}
	ok, _ := vals[0].AsBool()
	return ok, nil
}

func (b *Builder) convertEdgeKeys(keys []plan.EdgeKey) []storage.EdgeKey {
	out := make([]storage.EdgeKey, len(keys))
	for i, k := range keys {
		out[i] = storage.EdgeKey{Src: k.Src, Dst: k.Dst, Type: k.Type, Rank: k.Rank}
	}
	return out
}

func convertProjectItems(items []plan.ProjectItem) []ProjectItem {
	out := make([]ProjectItem, len(items))
	for i, it := range items {
		out[i] = ProjectItem{Expr: it.Expr, Alias: it.Alias}
	}
	return out
}

func convertSortFactors(factors []plan.SortFactor) []SortFactor {
	out := make([]SortFactor, len(factors))
	for i, f := range factors {
		out[i] = SortFactor{Column: f.Column, Asc: f.Asc}
	}
	return out
}

func convertAggregateItems(items []plan.AggregateItem) []AggregateItem {
	out := make([]AggregateItem, len(items))
	for i, it := range items {
		out[i] = AggregateItem{Func: it.Func, Arg: it.Arg, Alias: it.Alias}
	}
	return out
}

func convertDedupStrategy(s plan.DedupStrategy) DedupStrategy {
	switch s {
	case plan.DedupByKeys:
		return DedupByKeys
	case plan.DedupByVertexID:
		return DedupByVertexID
	case plan.DedupByEdgeKey:
		return DedupByEdgeKey
	default:
		return DedupFull
	}
}

func convertSampleStrategy(s plan.SampleStrategy) SampleStrategy {
	switch s {
	case plan.SampleReservoir:
		return SampleReservoir
	case plan.SampleSystem:
		return SampleSystem
	default:
		return SampleRandom
	}
}
