package jsonschema

import (
	"errors"
	"fmt"

	"github.com/akash-pandit/CACourses/pkg/errcode"
	"github.com/gnames/gn"
)

// ConflictError creates an error for two types that have no common
// representable supertype.
func ConflictError(a, b Type) error {
	msg := `Cannot merge incompatible schema types

<em>Type 1:</em> %s
<em>Type 2:</em> %s

A corrupted superschema would silently misparse unrelated documents,
so the whole schema unification step is aborted.`

	vars := []any{a.String(), b.String()}

	return &gn.Error{
		Code: errcode.UnifierSchemaConflictError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"no common supertype for %s and %s", a, b,
		),
	}
}

// IsConflict reports whether err is a schema conflict.
func IsConflict(err error) bool {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return gnErr.Code == errcode.UnifierSchemaConflictError
	}
	return false
}
