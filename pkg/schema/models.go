// Package schema provides database schema models for CACourses.
// Column shapes mirror what the read-only API layer expects.
package schema

// Articulation stores one normalized articulation: the DNF
// requirement that satisfies a university course when transferring
// from a community college.
type Articulation struct {
	// CourseID is the university course the requirement satisfies.
	CourseID int32 `gorm:"column:course_id;primaryKey;autoIncrement:false"`

	// CC is the sending (community college) institution id.
	CC int16 `gorm:"column:cc;primaryKey;autoIncrement:false"`

	// Uni is the receiving (university) institution id.
	Uni int16 `gorm:"column:uni;primaryKey;autoIncrement:false"`

	// Articulation is the requirement serialized as DNF JSON:
	// {"conj":"Or","items":[{"conj":"And","items":[...]}]}.
	Articulation string `gorm:"column:articulation;type:jsonb;not null"`
}

// TableName returns the PostgreSQL table name.
func (Articulation) TableName() string {
	return "articulations"
}

// GlossaryEntry stores resolved course metadata. CourseID is globally
// unique (assigned by the source catalog); (CourseCode, InstID) is a
// secondary uniqueness constraint.
type GlossaryEntry struct {
	CourseID int32 `gorm:"column:course_id;primaryKey;autoIncrement:false"`

	InstID int16 `gorm:"column:inst_id;not null;uniqueIndex:idx_glossary_code_inst"`

	// CourseCode is "PREFIX NUMBER", e.g. "MATH 1A".
	CourseCode string `gorm:"column:course_code;type:text;not null;uniqueIndex:idx_glossary_code_inst"`

	CourseName string `gorm:"column:course_name;type:text;not null"`

	MinUnits float32 `gorm:"column:min_units;not null"`
	MaxUnits float32 `gorm:"column:max_units;not null"`
}

// TableName returns the PostgreSQL table name.
func (GlossaryEntry) TableName() string {
	return "glossary"
}
