package expr

import (
	"strings"

	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// ScalarFunc is a registered scalar function: a positional-argument
// transform with no aggregation state.
type ScalarFunc func(args []value.Value) value.Value

// FunctionRegistry holds the scalar functions available to FunctionCall
// nodes. Built once at engine startup and shared read-only across
// concurrent evaluators, mirroring the teacher's compiler function table.
type FunctionRegistry struct {
	fns map[string]ScalarFunc
}

// NewFunctionRegistry returns a registry pre-populated with the built-in
// scalar functions (string/math helpers commonly needed by filter and
// projection expressions).
func NewFunctionRegistry() *FunctionRegistry {
	r := &FunctionRegistry{fns: make(map[string]ScalarFunc)}
	r.Register("toLower", func(args []value.Value) value.Value {
		s, err := arg0String(args)
		if err != nil {
			return value.NullOf(value.NullBadType)
		}
		return value.String(strings.ToLower(s))
	})
	r.Register("toUpper", func(args []value.Value) value.Value {
		s, err := arg0String(args)
		if err != nil {
			return value.NullOf(value.NullBadType)
		}
		return value.String(strings.ToUpper(s))
	})
	r.Register("length", func(args []value.Value) value.Value {
		if len(args) != 1 {
			return value.NullOf(value.NullBadType)
		}
		switch args[0].Kind() {
		case value.KString:
			s, _ := args[0].AsString()
			return value.Int(int64(len(s)))
		case value.KList:
			l, _ := args[0].AsList()
			return value.Int(int64(len(l)))
		case value.KPath:
			p, _ := args[0].AsPath()
			return value.Int(int64(p.Length()))
		default:
			return value.NullOf(value.NullBadType)
		}
	})
	r.Register("coalesce", func(args []value.Value) value.Value {
		for _, a := range args {
			if !a.IsNull() {
				return a
			}
		}
		return value.Null()
	})
	return r
}

// Register adds or overrides a function by name.
func (r *FunctionRegistry) Register(name string, fn ScalarFunc) { r.fns[name] = fn }

// Lookup returns the function registered under name.
func (r *FunctionRegistry) Lookup(name string) (ScalarFunc, bool) {
	fn, ok := r.fns[name]
	return fn, ok
}

func arg0String(args []value.Value) (string, error) {
	if len(args) != 1 {
		return "", value.ErrTypeMismatch
	}
	return args[0].AsString()
}
