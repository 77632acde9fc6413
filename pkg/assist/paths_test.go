package assist_test

import (
	"testing"

	"github.com/akash-pandit/CACourses/pkg/assist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePairPath(t *testing.T) {
	tests := []struct {
		msg  string
		path string
		cc   int
		uni  int
		kind assist.Kind
	}{
		{
			msg:  "prefixes file",
			path: "data/7/113to7-prefixes.json",
			cc:   113, uni: 7, kind: assist.KindPrefixes,
		},
		{
			msg:  "majors file",
			path: "data/137/105to137-majors.json",
			cc:   105, uni: 137, kind: assist.KindMajors,
		},
		{
			msg:  "bare file name",
			path: "19to24-prefixes.json",
			cc:   19, uni: 24, kind: assist.KindPrefixes,
		},
	}

	for _, v := range tests {
		res, err := assist.ParsePairPath(v.path)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.cc, res.CC, v.msg)
		assert.Equal(t, v.uni, res.Uni, v.msg)
		assert.Equal(t, v.kind, res.Kind, v.msg)
	}
}

func TestParsePairPathErrors(t *testing.T) {
	tests := []struct {
		msg  string
		path string
	}{
		{"not json", "113to7-prefixes.csv"},
		{"no kind suffix", "113to7.json"},
		{"unknown kind", "113to7-departments.json"},
		{"no pair", "readme-prefixes.json"},
		{"bad sending id", "xto7-prefixes.json"},
		{"bad receiving id", "113tox-prefixes.json"},
	}

	for _, v := range tests {
		_, err := assist.ParsePairPath(v.path)
		assert.Error(t, err, v.msg)
	}
}

func TestPairFileName(t *testing.T) {
	assert.Equal(t, "113to7-prefixes.json",
		assist.PairFileName(113, 7, assist.KindPrefixes))
	assert.Equal(t, "105to137-majors.json",
		assist.PairFileName(105, 137, assist.KindMajors))
}

func TestPairPathRoundTrip(t *testing.T) {
	name := assist.PairFileName(9, 89, assist.KindMajors)
	res, err := assist.ParsePairPath(name)
	require.NoError(t, err)
	assert.Equal(t, assist.PairPath{CC: 9, Uni: 89, Kind: assist.KindMajors}, res)
}
