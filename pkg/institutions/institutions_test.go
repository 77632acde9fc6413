package institutions_test

import (
	"testing"

	"github.com/akash-pandit/CACourses/pkg/institutions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistry() *institutions.Registry {
	return &institutions.Registry{
		CommunityColleges: []institutions.Institution{
			{ID: 113, Name: "De Anza College"},
		},
		Universities: []institutions.Institution{
			{ID: 7, Name: "University of California, Berkeley"},
		},
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validRegistry().Validate())
}

func TestValidateEmptySections(t *testing.T) {
	reg := validRegistry()
	reg.CommunityColleges = nil
	err := reg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, institutions.ErrNoCommunityColleges)

	reg = validRegistry()
	reg.Universities = nil
	err = reg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, institutions.ErrNoUniversities)
}

func TestValidateBadIDs(t *testing.T) {
	reg := validRegistry()
	reg.CommunityColleges = append(reg.CommunityColleges,
		institutions.Institution{ID: 0, Name: "Unknown"})
	assert.Error(t, reg.Validate())

	reg = validRegistry()
	reg.Universities[0].ID = -5
	assert.Error(t, reg.Validate())
}
