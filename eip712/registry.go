package eip712

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"slices"

	"go.uber.org/zap"

	"github.com/wippyai/walletcore/abi"
	"github.com/wippyai/walletcore/errors"
)

// DomainType is the reserved name of the domain struct.
const DomainType = "EIP712Domain"

// Registry maps declared struct names to resolved definitions. A Registry is
// built per call by MakeTypes and is read-only afterwards.
type Registry struct {
	defs  map[string]*abi.StructDef
	names []string
}

type fieldDecl struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// partialRegistry holds one empty definition per declared name. Field types
// are resolved against it and written into the same definitions.
type partialRegistry struct {
	decls map[string][]fieldDecl
	defs  map[string]*abi.StructDef
	names []string
}

// MakeTypes resolves the "types" object of typed data into a Registry.
func MakeTypes(typesJSON []byte) (*Registry, error) {
	partial, err := declareTypes(typesJSON)
	if err != nil {
		return nil, err
	}
	reg, err := partial.resolve()
	if err != nil {
		return nil, err
	}

	Logger().Debug("eip712 types resolved",
		zap.Int("structs", len(reg.names)),
		zap.Strings("names", reg.names))
	return reg, nil
}

// declareTypes is the first pass: it validates the shape of the types object
// and creates an empty definition per declared name.
func declareTypes(typesJSON []byte) (*partialRegistry, error) {
	raw := bytes.TrimSpace(typesJSON)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, errors.InvalidInput(errors.PhaseParse, []string{"types"}, "types must be a JSON object")
	}

	var decls map[string][]fieldDecl
	if err := json.Unmarshal(raw, &decls); err != nil {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Path("types").
			Cause(err).
			Detail("malformed type declarations").
			Build()
	}

	p := &partialRegistry{
		decls: decls,
		defs:  make(map[string]*abi.StructDef, len(decls)),
		names: make([]string, 0, len(decls)),
	}
	for name := range decls {
		if !isStructName(name) {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				Path("types", name).
				Detail("invalid struct name %q", name).
				Build()
		}
		p.defs[name] = &abi.StructDef{Name: name}
		p.names = append(p.names, name)
	}
	slices.Sort(p.names)
	return p, nil
}

func (p *partialRegistry) lookup(name string) (*abi.StructDef, bool) {
	def, ok := p.defs[name]
	return def, ok
}

// resolve is the second pass: every field type is parsed against the
// partial registry and written into the shared definitions.
func (p *partialRegistry) resolve() (*Registry, error) {
	for _, name := range p.names {
		def := p.defs[name]
		fields := make([]abi.FieldDef, 0, len(p.decls[name]))
		for _, d := range p.decls[name] {
			path := []string{"types", name, d.Name}
			if d.Name == "" || d.Type == "" {
				return nil, errors.InvalidInput(errors.PhaseResolve, path, "field needs a name and a type")
			}
			t, err := abi.ParseTypeWith(d.Type, p.lookup)
			if err != nil {
				return nil, resolveError(path, d.Type, err)
			}
			if hasTuple(t) {
				return nil, errors.New(errors.PhaseResolve, errors.KindUnsupported).
					Path(path...).
					AbiType(d.Type).
					Detail("tuple types cannot be declared in typed data").
					Build()
			}
			fields = append(fields, abi.FieldDef{Name: d.Name, Type: t})
		}
		def.Fields = fields
	}
	return &Registry{defs: p.defs, names: p.names}, nil
}

func resolveError(path []string, typeName string, cause error) *errors.Error {
	kind := errors.KindInvalidInput
	var e *errors.Error
	if stderrors.As(cause, &e) {
		kind = e.Kind
	}
	return errors.New(errors.PhaseResolve, kind).
		Path(path...).
		AbiType(typeName).
		Cause(cause).
		Detail("cannot resolve field type").
		Build()
}

func hasTuple(t *abi.Type) bool {
	for t.Kind == abi.KindArray || t.Kind == abi.KindFixedArray {
		t = t.Elem
	}
	return t.Kind == abi.KindTuple
}

// Lookup returns the definition of a declared struct.
func (r *Registry) Lookup(name string) (*abi.StructDef, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Names returns the declared struct names in sorted order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

func (r *Registry) Len() int { return len(r.names) }

// isStructName accepts identifiers that do not collide with ABI type names.
func isStructName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_' || c == '$':
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	_, err := abi.ParseType(name)
	var e *errors.Error
	return stderrors.As(err, &e) && e.Kind == errors.KindNotFound
}
