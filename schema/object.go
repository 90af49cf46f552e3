package schema

import (
	"context"
	"slices"

	"github.com/reoring/datagraph"
	js "github.com/reoring/datagraph/schema/jsonschema"
)

type field struct {
	name       string
	schema     checker
	export     func() (*js.Schema, error)
	required   bool
	hasDefault bool
	def        any
}

// ObjectBuilder describes an object with known fields. Unknown keys are
// rejected unless the policy says otherwise.
type ObjectBuilder struct {
	fields  []*field
	unknown UnknownPolicy
}

// FieldStep configures the field added last.
type FieldStep struct {
	b *ObjectBuilder
	f *field
}

// Object creates a new object builder with safe defaults (UnknownStrict).
func Object() *ObjectBuilder { return &ObjectBuilder{unknown: UnknownStrict} }

// Field registers a field. Registering a name again replaces its schema.
// It panics when s was not built by this package.
func (b *ObjectBuilder) Field(name string, s Schema) *FieldStep {
	c, ok := s.(checker)
	if !ok {
		panic("schema: Field needs a schema built by this package")
	}
	f := &field{name: name, schema: c, export: s.JSONSchema}
	if i := slices.IndexFunc(b.fields, func(x *field) bool { return x.name == name }); i >= 0 {
		b.fields[i] = f
	} else {
		b.fields = append(b.fields, f)
	}
	return &FieldStep{b: b, f: f}
}

// Unknown sets the unknown key policy.
func (b *ObjectBuilder) Unknown(p UnknownPolicy) *ObjectBuilder { b.unknown = p; return b }

// Required marks the field as required and returns the builder.
func (f *FieldStep) Required() *ObjectBuilder { f.f.required = true; return f.b }

// Optional marks the field as optional (default) and returns the builder.
func (f *FieldStep) Optional() *ObjectBuilder { f.f.required = false; return f.b }

// Default sets the value used when the field is absent. The default is
// validated like input.
func (f *FieldStep) Default(v any) *ObjectBuilder {
	f.f.hasDefault, f.f.def = true, v
	return f.b
}

func (f *FieldStep) Field(name string, s Schema) *FieldStep { return f.b.Field(name, s) }
func (f *FieldStep) Unknown(p UnknownPolicy) *ObjectBuilder { return f.b.Unknown(p) }
func (f *FieldStep) Validate(ctx context.Context, v any) (any, error) {
	return f.b.Validate(ctx, v)
}
func (f *FieldStep) JSONSchema() (*js.Schema, error) { return f.b.JSONSchema() }

func (f *FieldStep) check(ctx context.Context, v any, path string, st *state) any {
	return f.b.check(ctx, v, path, st)
}

func (b *ObjectBuilder) Validate(ctx context.Context, v any) (any, error) { return run(ctx, b, v) }

func (b *ObjectBuilder) lookup(key string) *field {
	for _, f := range b.fields {
		if f.name == key {
			return f
		}
	}
	return nil
}

func (b *ObjectBuilder) check(ctx context.Context, v any, path string, st *state) any {
	_, props, ok := datagraph.Entries(v)
	if !ok {
		st.add(path, "invalid_type", map[string]string{"expected": "object"})
		return nil
	}
	out := datagraph.NewObject()
	for _, p := range props {
		if st.stop(ctx) {
			return nil
		}
		f := b.lookup(p.Key)
		if f == nil {
			switch b.unknown {
			case UnknownStrict:
				st.add(child(path, p.Key), "unknown_key", nil)
			case UnknownPassthrough:
				out.Set(p.Key, p.Value)
			}
			continue
		}
		out.Set(p.Key, f.schema.check(ctx, p.Value, child(path, p.Key), st))
	}
	for _, f := range b.fields {
		if st.stop(ctx) {
			return nil
		}
		if _, seen := out.Get(f.name); seen {
			continue
		}
		switch {
		case f.hasDefault:
			out.Set(f.name, f.schema.check(ctx, f.def, child(path, f.name), st))
		case f.required:
			st.add(child(path, f.name), "required", nil)
		}
	}
	return out
}

func (b *ObjectBuilder) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "object", Properties: map[string]*js.Schema{}}
	for _, f := range b.fields {
		fs, err := f.export()
		if err != nil {
			return nil, err
		}
		if f.hasDefault {
			fs.Default = f.def
		}
		out.Properties[f.name] = fs
		if f.required {
			out.Required = append(out.Required, f.name)
		}
	}
	if b.unknown != UnknownPassthrough {
		out.AdditionalProperties = false
	}
	return out, nil
}

// ArraySchema describes a list whose elements share one schema.
type ArraySchema struct {
	items          checker
	export         func() (*js.Schema, error)
	minLen, maxLen int
}

// Array returns an array schema with the given element schema. It panics
// when items was not built by this package.
func Array(items Schema) *ArraySchema {
	c, ok := items.(checker)
	if !ok {
		panic("schema: Array needs a schema built by this package")
	}
	return &ArraySchema{items: c, export: items.JSONSchema, minLen: -1, maxLen: -1}
}

// Min sets the minimum length.
func (a *ArraySchema) Min(n int) *ArraySchema { a.minLen = n; return a }

// Max sets the maximum length.
func (a *ArraySchema) Max(n int) *ArraySchema { a.maxLen = n; return a }

func (a *ArraySchema) Validate(ctx context.Context, v any) (any, error) { return run(ctx, a, v) }

// check accepts arrays, and a single non-list value as a one element array
// because the form and XML readers cannot tell a list of one from a scalar.
func (a *ArraySchema) check(ctx context.Context, v any, path string, st *state) any {
	els, ok := datagraph.Elements(v)
	if !ok {
		if v == nil || datagraph.IsObject(v) {
			st.add(path, "invalid_type", map[string]string{"expected": "array"})
			return nil
		}
		els = []any{v}
	}
	if a.minLen >= 0 && len(els) < a.minLen {
		st.add(path, "too_short", map[string]string{"min": itoa(a.minLen)})
	}
	if a.maxLen >= 0 && len(els) > a.maxLen {
		st.add(path, "too_long", map[string]string{"max": itoa(a.maxLen)})
	}
	out := make([]any, 0, len(els))
	for i, e := range els {
		if st.stop(ctx) {
			return nil
		}
		out = append(out, a.items.check(ctx, e, child(path, itoa(i)), st))
	}
	return out
}

func (a *ArraySchema) JSONSchema() (*js.Schema, error) {
	items, err := a.export()
	if err != nil {
		return nil, err
	}
	out := &js.Schema{Type: "array", Items: items}
	if a.minLen >= 0 {
		out.MinItems = js.Int(a.minLen)
	}
	if a.maxLen >= 0 {
		out.MaxItems = js.Int(a.maxLen)
	}
	return out, nil
}
