package value

import "errors"

// Sentinel errors for the value package. Callers compare with errors.Is;
// wrap with juju/errors.Trace/Annotate at higher layers, never here —
// a leaf package keeps its errors bare so identity survives wrapping.
var (
	// ErrTypeMismatch is returned by accessors (AsInt, AsString, ...) when
	// the Value does not carry the requested tag. Arithmetic and
	// comparison operators never return this — they fold into BadType
	// instead, per the typed-null contract.
	ErrTypeMismatch = errors.New("value: type mismatch")
	// ErrNotOrderable is returned by Compare when both sides are container
	// or graph values (List/Map/Set/Vertex/Edge/Path), which have no total
	// order here; a container against a scalar is ordered by type rank.
	ErrNotOrderable = errors.New("value: not orderable")
)
