// Package jsonschema infers and merges structural schemas of decoded
// JSON documents. ASSIST agreement files differ slightly from pair to
// pair; merging their schemas yields one superschema capable of
// reading every file of a kind without type errors.
// This is a pure package - no I/O.
package jsonschema

import (
	"math"
	"sort"
	"strings"
)

// Kind enumerates the structural type of a JSON value.
type Kind int

const (
	Null Kind = iota
	Bool
	Int
	Float
	String
	List
	Struct
)

var kindNames = map[Kind]string{
	Null:   "null",
	Bool:   "bool",
	Int:    "int",
	Float:  "float",
	String: "string",
	List:   "list",
	Struct: "struct",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// IsScalar reports whether the kind is a leaf type.
func (k Kind) IsScalar() bool {
	return k == Bool || k == Int || k == Float || k == String
}

// Field is a named member of a Struct type.
type Field struct {
	Name string
	Type Type
}

// Type is an immutable structural description of a JSON value.
// Elem is set for List, Fields for Struct. Struct fields are always
// kept sorted by name so structurally equal types compare equal
// regardless of the order keys appeared in the source documents.
type Type struct {
	Kind   Kind
	Elem   *Type
	Fields []Field
}

// Schema is the type of one document row: a Struct-rooted Type.
type Schema = Type

// Infer derives the structural type of a decoded JSON value
// (the output of encoding/json into any).
// Numbers decode as float64; integral values are typed Int so that
// mixed corpora exercise the Int/Float promotion during Merge.
func Infer(v any) Type {
	switch val := v.(type) {
	case nil:
		return Type{Kind: Null}
	case bool:
		return Type{Kind: Bool}
	case float64:
		if val == math.Trunc(val) && !math.IsInf(val, 0) {
			return Type{Kind: Int}
		}
		return Type{Kind: Float}
	case string:
		return Type{Kind: String}
	case []any:
		elem := Type{Kind: Null}
		for _, item := range val {
			merged, err := mergeTypes(elem, Infer(item), nil)
			if err != nil {
				// Heterogeneous lists in one document degrade to
				// string elements rather than failing inference.
				merged = Type{Kind: String}
			}
			elem = merged
		}
		return Type{Kind: List, Elem: &elem}
	case map[string]any:
		fields := make([]Field, 0, len(val))
		for name, item := range val {
			fields = append(fields, Field{Name: name, Type: Infer(item)})
		}
		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Name < fields[j].Name
		})
		return Type{Kind: Struct, Fields: fields}
	default:
		// Decoded JSON has no other value types.
		return Type{Kind: String}
	}
}

// Equal reports structural equality of two types.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case List:
		return t.Elem.Equal(*other.Elem)
	case Struct:
		if len(t.Fields) != len(other.Fields) {
			return false
		}
		for i, f := range t.Fields {
			o := other.Fields[i]
			if f.Name != o.Name || !f.Type.Equal(o.Type) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Lookup returns the type of a named struct field.
func (t Type) Lookup(name string) (Type, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return Type{}, false
}

// String renders a compact description of the type, mostly for logs
// and error messages.
func (t Type) String() string {
	switch t.Kind {
	case List:
		return "list[" + t.Elem.String() + "]"
	case Struct:
		names := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			names[i] = f.Name + ": " + f.Type.String()
		}
		return "struct{" + strings.Join(names, ", ") + "}"
	default:
		return t.Kind.String()
	}
}
