package plan

import "github.com/zhukovaskychina/graphql-engine/graph/expr"

// Filter drops rows for which Predicate does not evaluate to a true Bool
// (a null or typed-null result is treated as false, never an error).
type Filter struct {
	BaseNode
	Predicate expr.Expression
}

func NewFilter(input Node, outputVar string, predicate expr.Expression) *Filter {
	n := &Filter{BaseNode: NewBaseNode("Filter", outputVar, input.ColNames()), Predicate: predicate}
	n.SetInputs([]Node{input})
	return n
}

func (n *Filter) Kind() Kind         { return KindFilter }
func (n *Filter) Category() Category { return CategoryOf(KindFilter) }
func (n *Filter) Clone() Node        { return &Filter{BaseNode: n.cloneBase(), Predicate: n.Predicate} }
func (n *Filter) CloneWithNewID() Node {
	return &Filter{BaseNode: n.cloneBaseNewID(), Predicate: n.Predicate}
}

// ProjectItem is one output column: Expr evaluated and bound to Alias.
type ProjectItem struct {
	Expr  expr.Expression
	Alias string
}

// Project rebuilds each row's column set from Items, in order.
type Project struct {
	BaseNode
	Items []ProjectItem
}

func NewProject(input Node, outputVar string, items []ProjectItem) *Project {
	cols := make([]string, len(items))
	for i, it := range items {
		cols[i] = it.Alias
	}
	n := &Project{BaseNode: NewBaseNode("Project", outputVar, cols), Items: items}
	n.SetInputs([]Node{input})
	return n
}

func (n *Project) Kind() Kind         { return KindProject }
func (n *Project) Category() Category { return CategoryOf(KindProject) }
func (n *Project) Clone() Node {
	return &Project{BaseNode: n.cloneBase(), Items: append([]ProjectItem(nil), n.Items...)}
}
func (n *Project) CloneWithNewID() Node {
	return &Project{BaseNode: n.cloneBaseNewID(), Items: append([]ProjectItem(nil), n.Items...)}
}

// SortFactor is one ORDER BY term.
type SortFactor struct {
	Column string
	Asc    bool
}

// Sort orders rows by Factors, applied left to right.
type Sort struct {
	BaseNode
	Factors []SortFactor
}

func NewSort(input Node, outputVar string, factors []SortFactor) *Sort {
	n := &Sort{BaseNode: NewBaseNode("Sort", outputVar, input.ColNames()), Factors: factors}
	n.SetInputs([]Node{input})
	return n
}

func (n *Sort) Kind() Kind         { return KindSort }
func (n *Sort) Category() Category { return CategoryOf(KindSort) }
func (n *Sort) Clone() Node {
	return &Sort{BaseNode: n.cloneBase(), Factors: append([]SortFactor(nil), n.Factors...)}
}
func (n *Sort) CloneWithNewID() Node {
	return &Sort{BaseNode: n.cloneBaseNewID(), Factors: append([]SortFactor(nil), n.Factors...)}
}

// Limit keeps at most Count rows, skipping the first Offset.
type Limit struct {
	BaseNode
	Offset, Count int64
}

func NewLimit(input Node, outputVar string, offset, count int64) *Limit {
	n := &Limit{BaseNode: NewBaseNode("Limit", outputVar, input.ColNames()), Offset: offset, Count: count}
	n.SetInputs([]Node{input})
	return n
}

func (n *Limit) Kind() Kind         { return KindLimit }
func (n *Limit) Category() Category { return CategoryOf(KindLimit) }
func (n *Limit) Clone() Node        { return &Limit{BaseNode: n.cloneBase(), Offset: n.Offset, Count: n.Count} }
func (n *Limit) CloneWithNewID() Node {
	return &Limit{BaseNode: n.cloneBaseNewID(), Offset: n.Offset, Count: n.Count}
}

// TopN is the heap-based fusion of Sort+Limit: keeps the N best rows by
// Factors without materializing and fully sorting every row. Introduced
// only by the Sort+Limit fusion rewrite rule, never by the planner.
type TopN struct {
	BaseNode
	Factors []SortFactor
	N       int64
}

func NewTopN(input Node, outputVar string, factors []SortFactor, n int64) *TopN {
	node := &TopN{BaseNode: NewBaseNode("TopN", outputVar, input.ColNames()), Factors: factors, N: n}
	node.SetInputs([]Node{input})
	return node
}

func (n *TopN) Kind() Kind         { return KindTopN }
func (n *TopN) Category() Category { return CategoryOf(KindTopN) }
func (n *TopN) Clone() Node {
	return &TopN{BaseNode: n.cloneBase(), Factors: append([]SortFactor(nil), n.Factors...), N: n.N}
}
func (n *TopN) CloneWithNewID() Node {
	return &TopN{BaseNode: n.cloneBaseNewID(), Factors: append([]SortFactor(nil), n.Factors...), N: n.N}
}

// SampleStrategy selects how Sample picks its output rows.
type SampleStrategy uint8

const (
	SampleRandom SampleStrategy = iota
	SampleReservoir
	SampleSystem
)

// Sample picks Count rows from the input according to Strategy.
type Sample struct {
	BaseNode
	Count    int64
	Strategy SampleStrategy
}

func NewSample(input Node, outputVar string, count int64, strategy SampleStrategy) *Sample {
	n := &Sample{BaseNode: NewBaseNode("Sample", outputVar, input.ColNames()), Count: count, Strategy: strategy}
	n.SetInputs([]Node{input})
	return n
}

func (n *Sample) Kind() Kind         { return KindSample }
func (n *Sample) Category() Category { return CategoryOf(KindSample) }
func (n *Sample) Clone() Node {
	return &Sample{BaseNode: n.cloneBase(), Count: n.Count, Strategy: n.Strategy}
}
func (n *Sample) CloneWithNewID() Node {
	return &Sample{BaseNode: n.cloneBaseNewID(), Count: n.Count, Strategy: n.Strategy}
}

// DedupStrategy selects the uniqueness key Dedup uses.
type DedupStrategy uint8

const (
	DedupFull DedupStrategy = iota
	DedupByKeys
	DedupByVertexID
	DedupByEdgeKey
)

// Dedup removes rows whose dedup key has already been seen, enforcing a
// monotonic memory ceiling on the seen-set (MemoryLimitBytes, 0 means the
// executor's default ceiling of 100 MiB applies).
type Dedup struct {
	BaseNode
	Strategy        DedupStrategy
	Keys            []string
	MemoryLimitBytes int64
}

func NewDedup(input Node, outputVar string, strategy DedupStrategy, keys []string) *Dedup {
	n := &Dedup{BaseNode: NewBaseNode("Dedup", outputVar, input.ColNames()), Strategy: strategy, Keys: keys}
	n.SetInputs([]Node{input})
	return n
}

func (n *Dedup) Kind() Kind         { return KindDedup }
func (n *Dedup) Category() Category { return CategoryOf(KindDedup) }
func (n *Dedup) Clone() Node {
	return &Dedup{BaseNode: n.cloneBase(), Strategy: n.Strategy, Keys: append([]string(nil), n.Keys...), MemoryLimitBytes: n.MemoryLimitBytes}
}
func (n *Dedup) CloneWithNewID() Node {
	return &Dedup{BaseNode: n.cloneBaseNewID(), Strategy: n.Strategy, Keys: append([]string(nil), n.Keys...), MemoryLimitBytes: n.MemoryLimitBytes}
}

// AggregateItem is one output aggregate: Func(Arg) AS Alias.
type AggregateItem struct {
	Func  expr.AggregateKind
	Arg   expr.Expression
	Alias string
}

// Aggregate groups input rows by GroupKeys and computes Items per group.
type Aggregate struct {
	BaseNode
	GroupKeys []expr.Expression
	GroupCols []string
	Items     []AggregateItem
}

func NewAggregate(input Node, outputVar string, groupCols []string, groupKeys []expr.Expression, items []AggregateItem) *Aggregate {
	cols := append([]string(nil), groupCols...)
	for _, it := range items {
		cols = append(cols, it.Alias)
	}
	n := &Aggregate{BaseNode: NewBaseNode("Aggregate", outputVar, cols), GroupKeys: groupKeys, GroupCols: groupCols, Items: items}
	n.SetInputs([]Node{input})
	return n
}

func (n *Aggregate) Kind() Kind         { return KindAggregate }
func (n *Aggregate) Category() Category { return CategoryOf(KindAggregate) }
func (n *Aggregate) Clone() Node {
	return &Aggregate{
		BaseNode:  n.cloneBase(),
		GroupKeys: append([]expr.Expression(nil), n.GroupKeys...),
		GroupCols: append([]string(nil), n.GroupCols...),
		Items:     append([]AggregateItem(nil), n.Items...),
	}
}
func (n *Aggregate) CloneWithNewID() Node {
	return &Aggregate{
		BaseNode:  n.cloneBaseNewID(),
		GroupKeys: append([]expr.Expression(nil), n.GroupKeys...),
		GroupCols: append([]string(nil), n.GroupCols...),
		Items:     append([]AggregateItem(nil), n.Items...),
	}
}

// Having filters post-aggregate rows by Predicate, the same evaluation
// contract as Filter but kept as a distinct Kind so rewrite rules can
// recognize "this only ever sits directly above an Aggregate" shapes.
type Having struct {
	BaseNode
	Predicate expr.Expression
}

func NewHaving(input Node, outputVar string, predicate expr.Expression) *Having {
	n := &Having{BaseNode: NewBaseNode("Having", outputVar, input.ColNames()), Predicate: predicate}
	n.SetInputs([]Node{input})
	return n
}

func (n *Having) Kind() Kind         { return KindHaving }
func (n *Having) Category() Category { return CategoryOf(KindHaving) }
func (n *Having) Clone() Node        { return &Having{BaseNode: n.cloneBase(), Predicate: n.Predicate} }
func (n *Having) CloneWithNewID() Node {
	return &Having{BaseNode: n.cloneBaseNewID(), Predicate: n.Predicate}
}

// Unwind expands a single list-valued column into one row per element,
// binding each element to OutputVar.
type Unwind struct {
	BaseNode
	ListExpr expr.Expression
}

func NewUnwind(input Node, outputVar string, listExpr expr.Expression) *Unwind {
	n := &Unwind{BaseNode: NewBaseNode("Unwind", outputVar, append(append([]string(nil), input.ColNames()...), outputVar)), ListExpr: listExpr}
	n.SetInputs([]Node{input})
	return n
}

func (n *Unwind) Kind() Kind         { return KindUnwind }
func (n *Unwind) Category() Category { return CategoryOf(KindUnwind) }
func (n *Unwind) Clone() Node        { return &Unwind{BaseNode: n.cloneBase(), ListExpr: n.ListExpr} }
func (n *Unwind) CloneWithNewID() Node {
	return &Unwind{BaseNode: n.cloneBaseNewID(), ListExpr: n.ListExpr}
}

// Assign binds Expr's result to a new column named Alias without dropping
// any existing column — a lightweight single-column Project that leaves
// the rest of the row shape undisturbed. No rewrite rule creates one.
type Assign struct {
	BaseNode
	Expr  expr.Expression
	Alias string
}

func NewAssign(input Node, outputVar string, e expr.Expression, alias string) *Assign {
	n := &Assign{BaseNode: NewBaseNode("Assign", outputVar, append(append([]string(nil), input.ColNames()...), alias)), Expr: e, Alias: alias}
	n.SetInputs([]Node{input})
	return n
}

func (n *Assign) Kind() Kind         { return KindAssign }
func (n *Assign) Category() Category { return CategoryOf(KindAssign) }
func (n *Assign) Clone() Node        { return &Assign{BaseNode: n.cloneBase(), Expr: n.Expr, Alias: n.Alias} }
func (n *Assign) CloneWithNewID() Node {
	return &Assign{BaseNode: n.cloneBaseNewID(), Expr: n.Expr, Alias: n.Alias}
}
