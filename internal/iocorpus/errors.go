package iocorpus

import (
	"fmt"

	"github.com/akash-pandit/CACourses/pkg/errcode"
	"github.com/gnames/gn"
)

// enumerateError creates an error for a failed corpus listing.
func enumerateError(dataDir string, err error) error {
	msg := `Cannot list agreement files

<em>Data directory:</em> %s

<em>How to fix:</em>
  1. Run <em>cacourses fetch</em> to download agreements
  2. Check data_dir in config.yaml`

	vars := []any{dataDir}

	return &gn.Error{
		Code: errcode.CorpusEnumerateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("list corpus at %s: %w", dataDir, err),
	}
}

// readError creates an error for an agreement file that cannot be
// read or decoded.
func readError(path string, err error) error {
	msg := `Cannot read agreement file

<em>Path:</em> %s

The file may be truncated or corrupt. Delete it and run
<em>cacourses fetch</em> to download it again.`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.CorpusReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("read %s: %w", path, err),
	}
}
