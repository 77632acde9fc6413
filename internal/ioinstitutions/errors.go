package ioinstitutions

import (
	"fmt"

	"github.com/akash-pandit/CACourses/pkg/errcode"
	"github.com/gnames/gn"
)

// RegistryError creates an error for a missing or invalid
// institutions.yaml.
func RegistryError(path string, err error) error {
	msg := `Cannot load institutions registry

<em>Path:</em> %s

<em>How to fix:</em>
  1. Run the app once to generate the default institutions.yaml
  2. Check the file is valid YAML with community_colleges and
     universities sections`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.FetchInstitutionsConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("load institutions registry: %w", err),
	}
}
