package abi

import "strings"

// NamedValue is a value with a parameter or field name.
type NamedValue struct {
	Value Value
	Name  string
}

// ParamSet is an ordered parameter list. Order is encoding order; duplicate
// names are allowed and Get returns the first match.
type ParamSet []NamedValue

func (p *ParamSet) Add(name string, v Value) {
	*p = append(*p, NamedValue{Name: name, Value: v})
}

func (p ParamSet) Get(name string) (Value, bool) {
	for _, nv := range p {
		if nv.Name == name {
			return nv.Value, true
		}
	}
	return nil, false
}

func (p ParamSet) Values() []Value {
	out := make([]Value, len(p))
	for i, nv := range p {
		out[i] = nv.Value
	}
	return out
}

func (p ParamSet) Types() []*Type {
	out := make([]*Type, len(p))
	for i, nv := range p {
		out[i] = nv.Value.Type()
	}
	return out
}

// Signature returns the parenthesised, comma-joined parameter types as they
// appear in a function signature.
func (p ParamSet) Signature() string {
	return typeList(p.Types())
}

func typeList(ts []*Type) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.Signature()
	}
	return "(" + strings.Join(parts, ",") + ")"
}
