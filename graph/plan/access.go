package plan

// ScanVertices reads every vertex in the graph, optionally restricted to a
// tag, handing the storage collaborator's cursor to the executor.
type ScanVertices struct {
	BaseNode
	TagFilter string // "" means no tag restriction
}

func NewScanVertices(outputVar, tagFilter string) *ScanVertices {
	return &ScanVertices{BaseNode: NewBaseNode("ScanVertices", outputVar, []string{outputVar}), TagFilter: tagFilter}
}

func (n *ScanVertices) Kind() Kind         { return KindScanVertices }
func (n *ScanVertices) Category() Category { return CategoryOf(KindScanVertices) }
func (n *ScanVertices) Clone() Node {
	return &ScanVertices{BaseNode: n.cloneBase(), TagFilter: n.TagFilter}
}
func (n *ScanVertices) CloneWithNewID() Node {
	return &ScanVertices{BaseNode: n.cloneBaseNewID(), TagFilter: n.TagFilter}
}

// ScanEdges reads every edge in the graph, optionally restricted to a type.
type ScanEdges struct {
	BaseNode
	TypeFilter string
}

func NewScanEdges(outputVar, typeFilter string) *ScanEdges {
	return &ScanEdges{BaseNode: NewBaseNode("ScanEdges", outputVar, []string{outputVar}), TypeFilter: typeFilter}
}

func (n *ScanEdges) Kind() Kind         { return KindScanEdges }
func (n *ScanEdges) Category() Category { return CategoryOf(KindScanEdges) }
func (n *ScanEdges) Clone() Node {
	return &ScanEdges{BaseNode: n.cloneBase(), TypeFilter: n.TypeFilter}
}
func (n *ScanEdges) CloneWithNewID() Node {
	return &ScanEdges{BaseNode: n.cloneBaseNewID(), TypeFilter: n.TypeFilter}
}

// GetVertices fetches vertices by an explicit id list — the point-lookup
// counterpart to ScanVertices.
type GetVertices struct {
	BaseNode
	IDs []string
}

func NewGetVertices(outputVar string, ids []string) *GetVertices {
	return &GetVertices{BaseNode: NewBaseNode("GetVertices", outputVar, []string{outputVar}), IDs: ids}
}

func (n *GetVertices) Kind() Kind         { return KindGetVertices }
func (n *GetVertices) Category() Category { return CategoryOf(KindGetVertices) }
func (n *GetVertices) Clone() Node {
	return &GetVertices{BaseNode: n.cloneBase(), IDs: append([]string(nil), n.IDs...)}
}
func (n *GetVertices) CloneWithNewID() Node {
	return &GetVertices{BaseNode: n.cloneBaseNewID(), IDs: append([]string(nil), n.IDs...)}
}

// GetEdges fetches edges by explicit (src, type, rank, dst) keys.
type GetEdges struct {
	BaseNode
	Keys []EdgeKey
}

type EdgeKey struct {
	Src, Dst, Type string
	Rank           int64
}

func NewGetEdges(outputVar string, keys []EdgeKey) *GetEdges {
	return &GetEdges{BaseNode: NewBaseNode("GetEdges", outputVar, []string{outputVar}), Keys: keys}
}

func (n *GetEdges) Kind() Kind         { return KindGetEdges }
func (n *GetEdges) Category() Category { return CategoryOf(KindGetEdges) }
func (n *GetEdges) Clone() Node {
	return &GetEdges{BaseNode: n.cloneBase(), Keys: append([]EdgeKey(nil), n.Keys...)}
}
func (n *GetEdges) CloneWithNewID() Node {
	return &GetEdges{BaseNode: n.cloneBaseNewID(), Keys: append([]EdgeKey(nil), n.Keys...)}
}

// GetNeighbors fetches a vertex's immediate neighbors over a single hop;
// Traverse generalizes this to multiple hops and is built on top of it.
type GetNeighbors struct {
	BaseNode
	SrcVar    string
	EdgeTypes []string
	Reverse   bool
}

func NewGetNeighbors(outputVar, srcVar string, edgeTypes []string, reverse bool) *GetNeighbors {
	return &GetNeighbors{
		BaseNode:  NewBaseNode("GetNeighbors", outputVar, []string{outputVar}),
		SrcVar:    srcVar,
		EdgeTypes: edgeTypes,
		Reverse:   reverse,
	}
}

func (n *GetNeighbors) Kind() Kind         { return KindGetNeighbors }
func (n *GetNeighbors) Category() Category { return CategoryOf(KindGetNeighbors) }
func (n *GetNeighbors) Clone() Node {
	return &GetNeighbors{BaseNode: n.cloneBase(), SrcVar: n.SrcVar, EdgeTypes: append([]string(nil), n.EdgeTypes...), Reverse: n.Reverse}
}
func (n *GetNeighbors) CloneWithNewID() Node {
	return &GetNeighbors{BaseNode: n.cloneBaseNewID(), SrcVar: n.SrcVar, EdgeTypes: append([]string(nil), n.EdgeTypes...), Reverse: n.Reverse}
}

// IndexScan reads vertices/edges via a named secondary index rather than a
// full scan; introduced by the index-selection rewrite rule, never by the
// planner directly.
type IndexScan struct {
	BaseNode
	IndexName string
	// EqualKey is the equality-probe key the rewrite rule matched from a
	// pushed-down predicate.
	EqualKey string
}

func NewIndexScan(outputVar, indexName, equalKey string) *IndexScan {
	return &IndexScan{BaseNode: NewBaseNode("IndexScan", outputVar, []string{outputVar}), IndexName: indexName, EqualKey: equalKey}
}

func (n *IndexScan) Kind() Kind         { return KindIndexScan }
func (n *IndexScan) Category() Category { return CategoryOf(KindIndexScan) }
func (n *IndexScan) Clone() Node {
	return &IndexScan{BaseNode: n.cloneBase(), IndexName: n.IndexName, EqualKey: n.EqualKey}
}
func (n *IndexScan) CloneWithNewID() Node {
	return &IndexScan{BaseNode: n.cloneBaseNewID(), IndexName: n.IndexName, EqualKey: n.EqualKey}
}

// Argument is a leaf node whose rows come from outside the plan tree — a
// parameter list the caller bound before execution. graph/exec's
// ArgumentExec reads it via the storage collaborator's GetInput hook.
type Argument struct {
	BaseNode
	ArgName string
}

func NewArgument(outputVar, argName string) *Argument {
	return &Argument{BaseNode: NewBaseNode("Argument", outputVar, []string{outputVar}), ArgName: argName}
}

func (n *Argument) Kind() Kind         { return KindArgument }
func (n *Argument) Category() Category { return CategoryOf(KindArgument) }
func (n *Argument) Clone() Node {
	return &Argument{BaseNode: n.cloneBase(), ArgName: n.ArgName}
}
func (n *Argument) CloneWithNewID() Node {
	return &Argument{BaseNode: n.cloneBaseNewID(), ArgName: n.ArgName}
}
