// Package value implements the engine's tagged Value union: the single
// runtime representation flowing through expression evaluation, plan
// execution, and result materialization. Every arithmetic operator is
// total — it never panics and never returns a Go error for a domain
// failure, it folds into one of the typed null variants instead (NaN,
// DivByZero, BadType, BadData, OutOfRange, Empty, Null). Compare is the
// exception: it returns ErrNotOrderable for pairs it cannot order.
package value

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/OneOfOne/xxhash"
)

// Kind tags the active member of a Value.
type Kind uint8

const (
	KNull Kind = iota
	KBool
	KInt
	KFloat
	KString
	KList
	KMap
	KSet
	KVertex
	KEdge
	KPath
)

func (k Kind) String() string {
	switch k {
	case KNull:
		return "NULL"
	case KBool:
		return "BOOL"
	case KInt:
		return "INT"
	case KFloat:
		return "FLOAT"
	case KString:
		return "STRING"
	case KList:
		return "LIST"
	case KMap:
		return "MAP"
	case KSet:
		return "SET"
	case KVertex:
		return "VERTEX"
	case KEdge:
		return "EDGE"
	case KPath:
		return "PATH"
	default:
		return "UNKNOWN"
	}
}

// NullVariant distinguishes the reason a KNull Value is null. A bare Null
// (explicit absence of data) is NullPlain; the rest are produced internally
// by operators that hit a domain failure and must still return a Value
// rather than a Go error.
type NullVariant uint8

const (
	NullPlain NullVariant = iota
	NullNaN
	NullDivByZero
	NullBadType
	NullBadData
	NullOutOfRange
	NullEmpty
)

func (n NullVariant) String() string {
	switch n {
	case NullNaN:
		return "NaN"
	case NullDivByZero:
		return "DIV_BY_ZERO"
	case NullBadType:
		return "BAD_TYPE"
	case NullBadData:
		return "BAD_DATA"
	case NullOutOfRange:
		return "OUT_OF_RANGE"
	case NullEmpty:
		return "EMPTY"
	default:
		return "NULL"
	}
}

// Value is an immutable, copyable tagged union. Zero value is Null().
type Value struct {
	kind Kind
	null NullVariant

	b bool
	i int64
	f float64
	s string

	list []Value
	mp   map[string]Value
	set  map[string]Value

	vertex *Vertex
	edge   *Edge
	path   *Path
}

// Null returns the plain null value.
func Null() Value { return Value{kind: KNull, null: NullPlain} }

// NullOf returns a null value tagged with a specific variant.
func NullOf(variant NullVariant) Value { return Value{kind: KNull, null: variant} }

func Bool(b bool) Value   { return Value{kind: KBool, b: b} }
func Int(i int64) Value   { return Value{kind: KInt, i: i} }
func Float(f float64) Value { return Value{kind: KFloat, f: f} }
func String(s string) Value { return Value{kind: KString, s: s} }

func List(items []Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KList, list: items}
}

func Map(m map[string]Value) Value {
	if m == nil {
		m = map[string]Value{}
	}
	return Value{kind: KMap, mp: m}
}

// Set builds a KSet value keyed by each member's canonical string form,
// deduplicating on construction.
func Set(items []Value) Value {
	m := make(map[string]Value, len(items))
	for _, it := range items {
		m[it.canonicalKey()] = it
	}
	return Value{kind: KSet, set: m}
}

func VertexVal(v *Vertex) Value { return Value{kind: KVertex, vertex: v} }
func EdgeVal(e *Edge) Value     { return Value{kind: KEdge, edge: e} }
func PathVal(p *Path) Value     { return Value{kind: KPath, path: p} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool  { return v.kind == KNull }
func (v Value) IsEmpty() bool { return v.kind == KNull && v.null == NullEmpty }
func (v Value) NullVariant() NullVariant {
	if v.kind != KNull {
		return NullPlain
	}
	return v.null
}

func (v Value) AsBool() (bool, error) {
	if v.kind != KBool {
		return false, ErrTypeMismatch
	}
	return v.b, nil
}

func (v Value) AsInt() (int64, error) {
	if v.kind != KInt {
		return 0, ErrTypeMismatch
	}
	return v.i, nil
}

func (v Value) AsFloat() (float64, error) {
	if v.kind != KFloat {
		return 0, ErrTypeMismatch
	}
	return v.f, nil
}

func (v Value) AsString() (string, error) {
	if v.kind != KString {
		return "", ErrTypeMismatch
	}
	return v.s, nil
}

func (v Value) AsList() ([]Value, error) {
	if v.kind != KList {
		return nil, ErrTypeMismatch
	}
	return v.list, nil
}

func (v Value) AsMap() (map[string]Value, error) {
	if v.kind != KMap {
		return nil, ErrTypeMismatch
	}
	return v.mp, nil
}

func (v Value) AsSet() (map[string]Value, error) {
	if v.kind != KSet {
		return nil, ErrTypeMismatch
	}
	return v.set, nil
}

func (v Value) AsVertex() (*Vertex, error) {
	if v.kind != KVertex {
		return nil, ErrTypeMismatch
	}
	return v.vertex, nil
}

func (v Value) AsEdge() (*Edge, error) {
	if v.kind != KEdge {
		return nil, ErrTypeMismatch
	}
	return v.edge, nil
}

func (v Value) AsPath() (*Path, error) {
	if v.kind != KPath {
		return nil, ErrTypeMismatch
	}
	return v.path, nil
}

// IsNumeric reports whether v is KInt or KFloat.
func (v Value) IsNumeric() bool { return v.kind == KInt || v.kind == KFloat }

// Float64 coerces an Int or Float value to float64. Only valid when
// IsNumeric() is true.
func (v Value) Float64() float64 {
	if v.kind == KInt {
		return float64(v.i)
	}
	return v.f
}

func (v Value) canonicalKey() string {
	switch v.kind {
	case KNull:
		return fmt.Sprintf("\x00null:%d", v.null)
	case KBool:
		return fmt.Sprintf("\x00bool:%t", v.b)
	case KInt:
		return fmt.Sprintf("\x00int:%d", v.i)
	case KFloat:
		if v.f == math.Trunc(v.f) && math.Abs(v.f) < 1<<63 {
			return fmt.Sprintf("\x00int:%d", int64(v.f))
		}
		return fmt.Sprintf("\x00float:%v", v.f)
	case KString:
		return "\x00str:" + v.s
	case KVertex:
		if v.vertex != nil {
			return "\x00vid:" + v.vertex.ID
		}
	case KEdge:
		if v.edge != nil {
			return fmt.Sprintf("\x00eid:%s->%s:%s@%d", v.edge.Src, v.edge.Dst, v.edge.Type, v.edge.Rank)
		}
	case KList:
		parts := make([]string, len(v.list))
		for i, e := range v.list {
			parts[i] = e.canonicalKey()
		}
		return "\x00list:[" + strings.Join(parts, ",") + "]"
	case KMap:
		keys := make([]string, 0, len(v.mp))
		for k := range v.mp {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var sb strings.Builder
		sb.WriteString("\x00map:{")
		for _, k := range keys {
			sb.WriteString(k)
			sb.WriteByte(':')
			sb.WriteString(v.mp[k].canonicalKey())
			sb.WriteByte(',')
		}
		sb.WriteByte('}')
		return sb.String()
	case KSet:
		keys := make([]string, 0, len(v.set))
		for k := range v.set {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return "\x00set:[" + strings.Join(keys, ",") + "]"
	}
	return "\x00unknown"
}

// Hash returns a 64-bit hash suitable for dedup keys and hash-join/
// hash-aggregate buckets. Two Values that Equals() report true always hash
// equal.
func (v Value) Hash() uint64 {
	h := xxhash.New64()
	_, _ = h.WriteString(v.canonicalKey())
	return h.Sum64()
}

// DedupKey returns a canonical string form suitable as a map key for exact
// dedup (Dedup's Full/ByKeys strategies, Aggregate's COUNT DISTINCT/
// COLLECT SET). Two Values that Equals() report true always share a key.
func (v Value) DedupKey() string {
	return v.canonicalKey()
}

// Equals reports structural equality. Null values are equal only when they
// share the same variant (NullPlain == NullPlain, but NullNaN != NullPlain),
// mirroring spec's "typed null, not an error" contract where distinct
// failure reasons stay distinguishable.
func (v Value) Equals(other Value) bool {
	if v.kind != other.kind {
		if v.IsNumeric() && other.IsNumeric() {
			return v.Float64() == other.Float64()
		}
		return false
	}
	switch v.kind {
	case KNull:
		return v.null == other.null
	case KBool:
		return v.b == other.b
	case KInt:
		return v.i == other.i
	case KFloat:
		return v.f == other.f
	case KString:
		return v.s == other.s
	default:
		return v.canonicalKey() == other.canonicalKey()
	}
}

// Compare implements spec's total order: Null < Bool < Numeric < String <
// containers/graph-types. Containers (List/Map/Set) and graph types
// (Vertex/Edge/Path) are not orderable against each other and return
// ErrNotOrderable; they are still equality-comparable via Equals.
func (v Value) Compare(other Value) (int, error) {
	rank := func(k Kind) int {
		switch k {
		case KNull:
			return 0
		case KBool:
			return 1
		case KInt, KFloat:
			return 2
		case KString:
			return 3
		default:
			return 4
		}
	}
	rv, ro := rank(v.kind), rank(other.kind)
	if rv != ro {
		return cmpInt(rv, ro), nil
	}
	switch v.kind {
	case KNull:
		return 0, nil
	case KBool:
		if v.b == other.b {
			return 0, nil
		}
		if !v.b {
			return -1, nil
		}
		return 1, nil
	case KInt, KFloat:
		a, b := v.Float64(), other.Float64()
		return cmpFloat(a, b), nil
	case KString:
		return strings.Compare(v.s, other.s), nil
	default:
		return 0, ErrNotOrderable
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (v Value) String() string {
	switch v.kind {
	case KNull:
		if v.null == NullPlain {
			return "NULL"
		}
		return "NULL(" + v.null.String() + ")"
	case KBool:
		return fmt.Sprintf("%t", v.b)
	case KInt:
		return fmt.Sprintf("%d", v.i)
	case KFloat:
		return fmt.Sprintf("%v", v.f)
	case KString:
		return v.s
	case KList:
		parts := make([]string, len(v.list))
		for i, e := range v.list {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KMap:
		return v.canonicalKey()
	case KSet:
		return v.canonicalKey()
	case KVertex:
		if v.vertex != nil {
			return v.vertex.ID
		}
		return "<nil vertex>"
	case KEdge:
		if v.edge != nil {
			return fmt.Sprintf("%s->%s@%d", v.edge.Src, v.edge.Dst, v.edge.Rank)
		}
		return "<nil edge>"
	case KPath:
		if v.path != nil {
			return v.path.String()
		}
		return "<nil path>"
	default:
		return "<?>"
	}
}
