package jsonschema

import (
	"fmt"
	"math"
	"strconv"
)

// Normalize coerces a decoded JSON value onto a (usually merged)
// schema. Scalars widen the way the schema was widened: Int fits into
// Float, any scalar fits into String. Struct fields missing from the
// value are filled with nil, so a document parsed against the corpus
// superschema always carries every field the superschema knows about.
//
// A shape mismatch (scalar where the schema expects a struct and the
// like) means this document does not conform to the unified schema;
// the caller treats that as a document-level extraction failure.
func Normalize(v any, t Type) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch t.Kind {
	case Null:
		// Field was null in every document the schema saw.
		return nil, nil

	case Bool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
		return nil, coerceError(v, t)

	case Int:
		if f, ok := v.(float64); ok && f == math.Trunc(f) {
			return int64(f), nil
		}
		return nil, coerceError(v, t)

	case Float:
		if f, ok := v.(float64); ok {
			return f, nil
		}
		return nil, coerceError(v, t)

	case String:
		switch val := v.(type) {
		case string:
			return val, nil
		case bool:
			return strconv.FormatBool(val), nil
		case float64:
			if val == math.Trunc(val) {
				return strconv.FormatInt(int64(val), 10), nil
			}
			return strconv.FormatFloat(val, 'f', -1, 64), nil
		}
		return nil, coerceError(v, t)

	case List:
		items, ok := v.([]any)
		if !ok {
			return nil, coerceError(v, t)
		}
		res := make([]any, len(items))
		for i, item := range items {
			norm, err := Normalize(item, *t.Elem)
			if err != nil {
				return nil, err
			}
			res[i] = norm
		}
		return res, nil

	case Struct:
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, coerceError(v, t)
		}
		res := make(map[string]any, len(t.Fields))
		for _, f := range t.Fields {
			norm, err := Normalize(obj[f.Name], f.Type)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
			res[f.Name] = norm
		}
		for name := range obj {
			if _, ok := t.Lookup(name); !ok {
				return nil, fmt.Errorf(
					"field %q not present in unified schema", name,
				)
			}
		}
		return res, nil

	default:
		return nil, coerceError(v, t)
	}
}

func coerceError(v any, t Type) error {
	return fmt.Errorf("cannot represent %T as %s", v, t)
}
