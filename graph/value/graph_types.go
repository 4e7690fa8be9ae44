package value

import "fmt"

// TagInstance is one tag's property bag attached to a vertex, e.g. the
// "person" tag on a vertex that also carries a "employee" tag.
type TagInstance struct {
	Tag   string
	Props map[string]Value
}

// Vertex is a graph node: an id plus zero or more tag instances.
type Vertex struct {
	ID   string
	Tags []TagInstance
}

// Tag returns the named tag instance, if the vertex carries it.
func (v *Vertex) Tag(name string) (TagInstance, bool) {
	for _, t := range v.Tags {
		if t.Tag == name {
			return t, true
		}
	}
	return TagInstance{}, false
}

// Prop looks up a property by tag name and key.
func (v *Vertex) Prop(tag, key string) Value {
	t, ok := v.Tag(tag)
	if !ok {
		return Null()
	}
	if val, ok := t.Props[key]; ok {
		return val
	}
	return Null()
}

// Edge is a directed, typed, ranked graph edge. Rank disambiguates
// parallel edges of the same type between the same src/dst pair.
type Edge struct {
	Src   string
	Dst   string
	Type  string
	Rank  int64
	Props map[string]Value
}

// Key returns the edge's identity tuple as used by Dedup's ByEdgeKey
// strategy.
func (e *Edge) Key() string {
	return fmt.Sprintf("%s->%s:%s@%d", e.Src, e.Dst, e.Type, e.Rank)
}

func (e *Edge) Prop(key string) Value {
	if val, ok := e.Props[key]; ok {
		return val
	}
	return Null()
}

// Reversed returns a copy of e with Src/Dst swapped and Type negated, the
// convention used when a traversal walks an edge against its natural
// direction.
func (e *Edge) Reversed() *Edge {
	return &Edge{Src: e.Dst, Dst: e.Src, Type: "-" + e.Type, Rank: e.Rank, Props: e.Props}
}

// Path is an alternating sequence of vertices and edges, starting and
// ending with a vertex: Edges has one fewer element than Vertices.
type Path struct {
	Vertices []*Vertex
	Edges    []*Edge
}

// Length is the number of edges (hops) in the path.
func (p *Path) Length() int { return len(p.Edges) }

func (p *Path) String() string {
	if len(p.Vertices) == 0 {
		return "<empty path>"
	}
	s := p.Vertices[0].ID
	for i, e := range p.Edges {
		s += fmt.Sprintf(" -[%s]-> %s", e.Type, p.Vertices[i+1].ID)
	}
	return s
}

// Append returns a new Path extended by one hop, leaving p untouched —
// paths are treated as immutable once handed to a DataSet row.
func (p *Path) Append(e *Edge, dst *Vertex) *Path {
	vs := make([]*Vertex, len(p.Vertices), len(p.Vertices)+1)
	copy(vs, p.Vertices)
	vs = append(vs, dst)
	es := make([]*Edge, len(p.Edges), len(p.Edges)+1)
	copy(es, p.Edges)
	es = append(es, e)
	return &Path{Vertices: vs, Edges: es}
}
