package plan

// The full Kind enumeration. Grouped by Category for readability; the
// grouping is re-asserted by kindCategory below so a rewrite rule can
// categorize any Kind in O(1) without a switch over every name.
const (
	KindUnknown Kind = iota

	// Access — nodes that pull rows from the storage collaborator.
	KindScanVertices
	KindScanEdges
	KindGetVertices
	KindGetEdges
	KindGetNeighbors
	KindIndexScan
	KindArgument

	// Traversal — multi-hop graph walks.
	KindTraverse
	KindExpand
	KindExpandAll
	KindAppendVertices
	KindBFSShortest
	KindShortestPath
	KindAllPaths
	KindMultiShortestPath

	// Operation — single-input row transforms (result processing).
	KindFilter
	KindProject
	KindSort
	KindLimit
	KindTopN
	KindSample
	KindDedup
	KindAggregate
	KindHaving
	KindUnwind
	KindAssign

	// Join — two-input row combinators.
	KindInnerJoin
	KindLeftJoin
	KindHashJoin
	KindCrossJoin
	KindBiJoin

	// DataProcessing — multi-input set operations.
	KindUnion
	KindUnionAllVersioned
	KindIntersect
	KindMinus
	KindDistinct
	KindDataCollect

	// ControlFlow — plan-shape scaffolding nodes.
	KindStart
	KindEnd
	KindPassThrough
	KindSelectBranch
	KindLoop
	KindLoopBody

	// Algorithm — whole-graph analytics operators.
	KindConnectedComponents
	KindLabelPropagation
	KindTriangleCount
	KindPageRank
	KindShortestPathAlgo
	KindSubgraphExtract

	// Management — DDL. Bodies are delegated to the storage collaborator
	// (spec's explicit non-goal); only enum membership and plan-shape
	// participation live here.
	KindCreateTag
	KindAlterTag
	KindDropTag
	KindCreateEdgeType
	KindAlterEdgeType
	KindDropEdgeType
	KindCreateIndex
	KindDropIndex
	KindCreateSnapshot

	kindSentinelEnd
)

var kindNames = map[Kind]string{
	KindUnknown:             "Unknown",
	KindScanVertices:        "ScanVertices",
	KindScanEdges:           "ScanEdges",
	KindGetVertices:         "GetVertices",
	KindGetEdges:            "GetEdges",
	KindGetNeighbors:        "GetNeighbors",
	KindIndexScan:           "IndexScan",
	KindArgument:            "Argument",
	KindTraverse:            "Traverse",
	KindExpand:              "Expand",
	KindExpandAll:           "ExpandAll",
	KindAppendVertices:      "AppendVertices",
	KindBFSShortest:         "BFSShortest",
	KindShortestPath:        "ShortestPath",
	KindAllPaths:            "AllPaths",
	KindMultiShortestPath:   "MultiShortestPath",
	KindFilter:              "Filter",
	KindProject:             "Project",
	KindSort:                "Sort",
	KindLimit:               "Limit",
	KindTopN:                "TopN",
	KindSample:              "Sample",
	KindDedup:               "Dedup",
	KindAggregate:           "Aggregate",
	KindHaving:              "Having",
	KindUnwind:              "Unwind",
	KindAssign:              "Assign",
	KindInnerJoin:           "InnerJoin",
	KindLeftJoin:            "LeftJoin",
	KindHashJoin:            "HashJoin",
	KindCrossJoin:           "CrossJoin",
	KindBiJoin:              "BiJoin",
	KindUnion:               "Union",
	KindUnionAllVersioned:   "UnionAllVersioned",
	KindIntersect:           "Intersect",
	KindMinus:               "Minus",
	KindDistinct:            "Distinct",
	KindDataCollect:         "DataCollect",
	KindStart:               "Start",
	KindEnd:                 "End",
	KindPassThrough:         "PassThrough",
	KindSelectBranch:        "SelectBranch",
	KindLoop:                "Loop",
	KindLoopBody:            "LoopBody",
	KindConnectedComponents: "ConnectedComponents",
	KindLabelPropagation:    "LabelPropagation",
	KindTriangleCount:       "TriangleCount",
	KindPageRank:            "PageRank",
	KindShortestPathAlgo:    "ShortestPathAlgo",
	KindSubgraphExtract:     "SubgraphExtract",
	KindCreateTag:           "CreateTag",
	KindAlterTag:            "AlterTag",
	KindDropTag:             "DropTag",
	KindCreateEdgeType:      "CreateEdgeType",
	KindAlterEdgeType:       "AlterEdgeType",
	KindDropEdgeType:        "DropEdgeType",
	KindCreateIndex:         "CreateIndex",
	KindDropIndex:           "DropIndex",
	KindCreateSnapshot:      "CreateSnapshot",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "InvalidKind"
}

var kindCategory = map[Kind]Category{
	KindScanVertices: CategoryAccess, KindScanEdges: CategoryAccess,
	KindGetVertices: CategoryAccess, KindGetEdges: CategoryAccess,
	KindGetNeighbors: CategoryAccess, KindIndexScan: CategoryAccess,
	KindArgument: CategoryAccess,

	KindTraverse: CategoryTraversal, KindExpand: CategoryTraversal,
	KindExpandAll: CategoryTraversal, KindAppendVertices: CategoryTraversal,
	KindBFSShortest: CategoryTraversal, KindShortestPath: CategoryTraversal,
	KindAllPaths: CategoryTraversal, KindMultiShortestPath: CategoryTraversal,

	KindFilter: CategoryOperation, KindProject: CategoryOperation,
	KindSort: CategoryOperation, KindLimit: CategoryOperation,
	KindTopN: CategoryOperation, KindSample: CategoryOperation,
	KindDedup: CategoryOperation, KindAggregate: CategoryOperation,
	KindHaving: CategoryOperation, KindUnwind: CategoryOperation,
	KindAssign: CategoryOperation,

	KindInnerJoin: CategoryJoin, KindLeftJoin: CategoryJoin,
	KindHashJoin: CategoryJoin, KindCrossJoin: CategoryJoin,
	KindBiJoin: CategoryJoin,

	KindUnion: CategoryDataProcessing, KindUnionAllVersioned: CategoryDataProcessing,
	KindIntersect: CategoryDataProcessing, KindMinus: CategoryDataProcessing,
	KindDistinct: CategoryDataProcessing, KindDataCollect: CategoryDataProcessing,

	KindStart: CategoryControlFlow, KindEnd: CategoryControlFlow,
	KindPassThrough: CategoryControlFlow, KindSelectBranch: CategoryControlFlow,
	KindLoop: CategoryControlFlow, KindLoopBody: CategoryControlFlow,

	KindConnectedComponents: CategoryAlgorithm, KindLabelPropagation: CategoryAlgorithm,
	KindTriangleCount: CategoryAlgorithm, KindPageRank: CategoryAlgorithm,
	KindShortestPathAlgo: CategoryAlgorithm, KindSubgraphExtract: CategoryAlgorithm,

	KindCreateTag: CategoryManagement, KindAlterTag: CategoryManagement,
	KindDropTag: CategoryManagement, KindCreateEdgeType: CategoryManagement,
	KindAlterEdgeType: CategoryManagement, KindDropEdgeType: CategoryManagement,
	KindCreateIndex: CategoryManagement, KindDropIndex: CategoryManagement,
	KindCreateSnapshot: CategoryManagement,
}

// CategoryOf looks up k's category in O(1), used by rewrite pattern
// matching instead of a type switch over every concrete node type.
func CategoryOf(k Kind) Category {
	return kindCategory[k]
}

// IsDDL reports whether k is a Management-category node whose execution
// body is delegated entirely to the storage collaborator.
func IsDDL(k Kind) bool {
	return CategoryOf(k) == CategoryManagement
}
