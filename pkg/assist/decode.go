package assist

import (
	"fmt"

	"github.com/akash-pandit/CACourses/pkg/jsonschema"
)

// DecodeDocument normalizes a decoded JSON document against the
// unified schema of its kind and maps it into the typed model.
// The two physical layouts are flattened here: prefix-scoped rows
// explode their "articulations" list, major-scoped rows carry a
// single "articulation" object, and both come out as one Articulation
// per logical row.
//
// A failure means the whole document does not conform to the unified
// schema; per-row problems are left for extraction to judge.
func DecodeDocument(
	raw any,
	schema jsonschema.Schema,
	cc, uni int,
	kind Kind,
) (*Document, error) {
	norm, err := jsonschema.Normalize(raw, schema)
	if err != nil {
		return nil, fmt.Errorf("document does not fit unified schema: %w", err)
	}

	rows, ok := norm.([]any)
	if !ok {
		return nil, fmt.Errorf("document root is %T, expected a row list", norm)
	}

	doc := &Document{CC: cc, Uni: uni, Kind: kind}
	for i, row := range rows {
		obj := asMap(row)
		if obj == nil {
			return nil, fmt.Errorf("row %d is %T, expected an object", i, row)
		}

		switch kind {
		case KindPrefixes:
			for _, item := range asList(obj["articulations"]) {
				doc.Rows = append(doc.Rows, decodeArticulation(item))
			}
		case KindMajors:
			doc.Rows = append(doc.Rows, decodeArticulation(obj["articulation"]))
		default:
			return nil, fmt.Errorf("unknown document kind %q", kind)
		}
	}
	return doc, nil
}

func decodeArticulation(v any) Articulation {
	obj := asMap(v)
	res := Articulation{}
	if obj == nil {
		return res
	}

	if course := asMap(obj["course"]); course != nil {
		c := decodeCourse(course)
		res.Course = &c
	}

	if series := asMap(obj["series"]); series != nil {
		courses := asList(series["courses"])
		if len(courses) > 0 {
			s := Series{Courses: make([]Course, 0, len(courses))}
			for _, item := range courses {
				if m := asMap(item); m != nil {
					s.Courses = append(s.Courses, decodeCourse(m))
				}
			}
			res.Series = &s
		}
	}

	res.Sending = decodeSending(asMap(obj["sendingArticulation"]))
	return res
}

func decodeSending(obj map[string]any) SendingArticulation {
	res := SendingArticulation{}
	if obj == nil {
		return res
	}

	// Only the first group conjunction matters: documents repeat the
	// same value between every pair of groups.
	for _, item := range asList(obj["courseGroupConjunctions"]) {
		if m := asMap(item); m != nil {
			res.GroupConjunction = asString(m["groupConjunction"])
			break
		}
	}

	for _, item := range asList(obj["items"]) {
		m := asMap(item)
		if m == nil {
			continue
		}
		group := CourseGroup{
			Conjunction: asString(m["courseConjunction"]),
		}
		for _, courseVal := range asList(m["items"]) {
			if cm := asMap(courseVal); cm != nil {
				group.Items = append(group.Items, decodeCourse(cm))
			}
		}
		res.Items = append(res.Items, group)
	}
	return res
}

func decodeCourse(obj map[string]any) Course {
	return Course{
		ID:           asInt64(obj["courseIdentifierParentId"]),
		Prefix:       asString(obj["prefix"]),
		CourseNumber: asString(obj["courseNumber"]),
		CourseTitle:  asString(obj["courseTitle"]),
		MinUnits:     asFloat(obj["minUnits"]),
		MaxUnits:     asFloat(obj["maxUnits"]),
		Begin:        asString(obj["begin"]),
		End:          asString(obj["end"]),
	}
}

// Normalized values only hold nil, bool, int64, float64, string,
// []any and map[string]any; the helpers below tolerate nil and the
// numeric widenings schema merging can introduce.

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asList(v any) []any {
	l, _ := v.([]any)
	return l
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt64(v any) int64 {
	switch val := v.(type) {
	case int64:
		return val
	case float64:
		return int64(val)
	}
	return 0
}

func asFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int64:
		return float64(val)
	}
	return 0
}
