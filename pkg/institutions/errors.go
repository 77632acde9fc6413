package institutions

import (
	"errors"
	"fmt"
)

var (
	ErrNoCommunityColleges = errors.New(
		"institutions.yaml lists no community colleges")
	ErrNoUniversities = errors.New(
		"institutions.yaml lists no universities")
)

func badIDError(section string, inst Institution) error {
	return fmt.Errorf(
		"institutions.yaml %s entry %q has invalid id %d",
		section, inst.Name, inst.ID,
	)
}
