package iopopulate

import (
	"fmt"
	"strings"

	"github.com/akash-pandit/CACourses/pkg/assist"
	"github.com/akash-pandit/CACourses/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for a populate run attempted
// without a database connection.
func NotConnectedError() error {
	msg := "Populate attempted without a database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// UnknownKindError creates an error for an unrecognized document
// kind requested via flags.
func UnknownKindError(kind string) error {
	kinds := make([]string, 0, 2)
	for _, k := range assist.Kinds() {
		kinds = append(kinds, string(k))
	}

	msg := `Unknown document kind <em>%s</em>

Valid kinds: %s`

	vars := []any{kind, strings.Join(kinds, ", ")}

	return &gn.Error{
		Code: errcode.PopulateUnknownKindError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown document kind %q", kind),
	}
}

// EmptyCorpusError creates an error for a populate run over an empty
// data directory.
func EmptyCorpusError(dataDir string) error {
	msg := `No agreement files found

<em>Data directory:</em> %s

<em>How to fix:</em>
  1. Run <em>cacourses fetch</em> to download agreements
  2. Check data_dir in config.yaml`

	vars := []any{dataDir}

	return &gn.Error{
		Code: errcode.PopulateEmptyCorpusError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no agreement files in %s", dataDir),
	}
}

// DocumentError creates an error for a document that failed to
// decode or extract.
func DocumentError(path string, err error) error {
	msg := "Cannot process agreement <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.PopulateDocumentError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("process %s: %w", path, err),
	}
}

// CopyError creates an error for a failed bulk insert.
func CopyError(table string, err error) error {
	msg := `Cannot load table <em>%s</em>

<em>How to fix:</em>
  1. Check the schema exists: run <em>cacourses create</em>
  2. Check PostgreSQL logs for constraint violations`

	vars := []any{table}

	return &gn.Error{
		Code: errcode.PopulateCopyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("copy into %s: %w", table, err),
	}
}

// AllDocumentsFailedError creates an error for a run where no
// document processed successfully.
func AllDocumentsFailedError(failed int) error {
	msg := `All %d documents failed to process

The corpus may be corrupt or in an unexpected format. Check the log
for per-document errors.`

	vars := []any{failed}

	return &gn.Error{
		Code: errcode.PopulateAllDocumentsFailedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("all %d documents failed", failed),
	}
}
