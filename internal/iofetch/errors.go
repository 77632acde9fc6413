package iofetch

import (
	"fmt"

	"github.com/akash-pandit/CACourses/pkg/errcode"
	"github.com/gnames/gn"
)

// requestError creates an error for a failed HTTP request.
func requestError(url string, err error) error {
	msg := `Cannot reach the ASSIST API

<em>URL:</em> %s

<em>How to fix:</em>
  1. Check your network connection
  2. Check https://assist.org is up
  3. Verify fetch.base_url in config.yaml`

	vars := []any{url}

	return &gn.Error{
		Code: errcode.FetchRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("fetch %s: %w", url, err),
	}
}

// badResponseError creates an error for a response that could not be
// decoded as an agreement envelope.
func badResponseError(url string, err error) error {
	msg := `Unexpected response from the ASSIST API

<em>URL:</em> %s

The API may have changed its response format.`

	vars := []any{url}

	return &gn.Error{
		Code: errcode.FetchBadResponseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("decode response from %s: %w", url, err),
	}
}

// writeError creates an error for a failed agreement file write.
func writeError(path string, err error) error {
	msg := `Cannot save agreement file

<em>Path:</em> %s

<em>How to fix:</em>
  1. Check the data directory is writable
  2. Check available disk space`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("write %s: %w", path, err),
	}
}
