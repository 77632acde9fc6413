package assist

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// PairPath identifies one agreement file within the corpus.
type PairPath struct {
	CC   int
	Uni  int
	Kind Kind
}

// ParsePairPath extracts the institution pair and document kind from
// a corpus file path. Files are laid out as
// <data-dir>/<uni>/<cc>to<uni>-<kind>.json, the naming the downloader
// uses when saving agreements.
func ParsePairPath(fp string) (PairPath, error) {
	var res PairPath

	base := filepath.Base(fp)
	name, ok := strings.CutSuffix(base, ".json")
	if !ok {
		return res, fmt.Errorf("%q is not a .json file", fp)
	}

	pair, kindStr, ok := strings.Cut(name, "-")
	if !ok {
		return res, fmt.Errorf("%q has no kind suffix", fp)
	}
	switch Kind(kindStr) {
	case KindPrefixes, KindMajors:
		res.Kind = Kind(kindStr)
	default:
		return res, fmt.Errorf("%q has unknown kind %q", fp, kindStr)
	}

	ccStr, uniStr, ok := strings.Cut(pair, "to")
	if !ok {
		return res, fmt.Errorf("%q does not encode an institution pair", fp)
	}

	var err error
	if res.CC, err = strconv.Atoi(ccStr); err != nil {
		return res, fmt.Errorf("%q has bad sending institution id: %w", fp, err)
	}
	if res.Uni, err = strconv.Atoi(uniStr); err != nil {
		return res, fmt.Errorf("%q has bad receiving institution id: %w", fp, err)
	}

	return res, nil
}

// PairFileName renders the canonical file name for an agreement.
func PairFileName(cc, uni int, kind Kind) string {
	return fmt.Sprintf("%dto%d-%s.json", cc, uni, kind)
}
