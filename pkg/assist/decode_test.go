package assist_test

import (
	"encoding/json"
	"testing"

	"github.com/akash-pandit/CACourses/pkg/assist"
	"github.com/akash-pandit/CACourses/pkg/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rawArticulation = `{
	"course": {
		"courseIdentifierParentId": 900,
		"prefix": "MATH",
		"courseNumber": "21A",
		"courseTitle": "Calculus I",
		"minUnits": 4,
		"maxUnits": 4,
		"begin": "Fall 2019",
		"end": ""
	},
	"sendingArticulation": {
		"courseGroupConjunctions": [
			{"groupConjunction": "Or"}
		],
		"items": [
			{
				"courseConjunction": "And",
				"items": [
					{
						"courseIdentifierParentId": 1,
						"prefix": "MATH",
						"courseNumber": "1A",
						"courseTitle": "Calculus",
						"minUnits": 5,
						"maxUnits": 5
					},
					{
						"courseIdentifierParentId": 2,
						"prefix": "MATH",
						"courseNumber": "1B",
						"courseTitle": "Calculus II",
						"minUnits": 5,
						"maxUnits": 5
					}
				]
			}
		]
	}
}`

// load decodes a raw document and infers its own schema, the
// single-file degenerate case of corpus unification.
func load(
	t *testing.T, raw string, kind assist.Kind,
) *assist.Document {
	t.Helper()

	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))

	schema := jsonschema.Infer(v)
	doc, err := assist.DecodeDocument(v, schema, 113, 7, kind)
	require.NoError(t, err)
	return doc
}

func TestDecodePrefixesDocument(t *testing.T) {
	raw := `[
		{"prefix": "MATH", "articulations": [` + rawArticulation + `]},
		{"prefix": "PHYS", "articulations": []}
	]`

	doc := load(t, raw, assist.KindPrefixes)
	assert.Equal(t, 113, doc.CC)
	assert.Equal(t, 7, doc.Uni)
	require.Len(t, doc.Rows, 1,
		"rows flatten across prefixes, empty lists contribute nothing")

	row := doc.Rows[0]
	require.NotNil(t, row.Course)
	assert.Equal(t, int64(900), row.Course.ID)
	assert.Equal(t, "MATH 21A", row.Course.Code())
	assert.Equal(t, "Fall 2019", row.Course.Begin)

	assert.Equal(t, "Or", row.Sending.GroupConjunction)
	require.Len(t, row.Sending.Items, 1)
	group := row.Sending.Items[0]
	assert.Equal(t, "And", group.Conjunction)
	require.Len(t, group.Items, 2)
	assert.Equal(t, int64(1), group.Items[0].ID)
	assert.Equal(t, 5.0, group.Items[0].MinUnits)
}

func TestDecodeMajorsDocument(t *testing.T) {
	raw := `[
		{"major": "Mathematics B.S.", "articulation": ` + rawArticulation + `}
	]`

	doc := load(t, raw, assist.KindMajors)
	require.Len(t, doc.Rows, 1)
	require.NotNil(t, doc.Rows[0].Course)
	assert.Equal(t, int64(900), doc.Rows[0].Course.ID)
}

func TestDecodeSeries(t *testing.T) {
	raw := `[
		{"articulation": {
			"series": {
				"name": "PHYS 4A-4B",
				"courses": [
					{"courseIdentifierParentId": 901, "prefix": "PHYS",
					 "courseNumber": "4A", "courseTitle": "Mechanics",
					 "minUnits": 5, "maxUnits": 5},
					{"courseIdentifierParentId": 902, "prefix": "PHYS",
					 "courseNumber": "4B", "courseTitle": "E&M",
					 "minUnits": 5, "maxUnits": 5}
				]
			},
			"sendingArticulation": {"items": []}
		}}
	]`

	doc := load(t, raw, assist.KindMajors)
	require.Len(t, doc.Rows, 1)

	row := doc.Rows[0]
	require.NotNil(t, row.Series)
	require.Len(t, row.Series.Courses, 2)
	assert.Equal(t, int64(901), row.Series.Courses[0].ID)
	assert.True(t, row.Sending.Empty())
}

func TestDecodeAgainstMergedSchema(t *testing.T) {
	// A document missing optional fields decodes fine against the
	// superschema of a corpus where other documents carry them.
	withSeries := `[{"articulation": {
		"series": {"courses": [
			{"courseIdentifierParentId": 901, "prefix": "PHYS",
			 "courseNumber": "4A", "courseTitle": "Mechanics",
			 "minUnits": 5, "maxUnits": 5}
		]},
		"sendingArticulation": {"items": []}
	}}]`
	withCourse := `[{"articulation": ` + rawArticulation + `}]`

	var v1, v2 any
	require.NoError(t, json.Unmarshal([]byte(withSeries), &v1))
	require.NoError(t, json.Unmarshal([]byte(withCourse), &v2))

	schema, err := jsonschema.Merge([]jsonschema.Schema{
		jsonschema.Infer(v1), jsonschema.Infer(v2),
	}, nil)
	require.NoError(t, err)

	doc1, err := assist.DecodeDocument(v1, schema, 113, 7, assist.KindMajors)
	require.NoError(t, err)
	require.Len(t, doc1.Rows, 1)
	assert.Nil(t, doc1.Rows[0].Course)
	assert.NotNil(t, doc1.Rows[0].Series)

	doc2, err := assist.DecodeDocument(v2, schema, 19, 24, assist.KindMajors)
	require.NoError(t, err)
	require.Len(t, doc2.Rows, 1)
	assert.NotNil(t, doc2.Rows[0].Course)
	assert.Nil(t, doc2.Rows[0].Series)
}

func TestDecodeRejectsWrongShape(t *testing.T) {
	var v any
	require.NoError(t, json.Unmarshal([]byte(`{"not": "a list"}`), &v))

	schema := jsonschema.Infer(v)
	_, err := assist.DecodeDocument(v, schema, 113, 7, assist.KindPrefixes)
	assert.Error(t, err)
}

func TestCourseCode(t *testing.T) {
	course := assist.Course{Prefix: "MATH", CourseNumber: "1A"}
	assert.Equal(t, "MATH 1A", course.Code())

	assert.Empty(t, assist.Course{Prefix: "MATH"}.Code())
	assert.Empty(t, assist.Course{CourseNumber: "1A"}.Code())
}
