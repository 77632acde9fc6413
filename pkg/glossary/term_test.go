package glossary_test

import (
	"testing"

	"github.com/akash-pandit/CACourses/pkg/glossary"
	"github.com/stretchr/testify/assert"
)

func TestTermKeyOrdering(t *testing.T) {
	// Each term strictly after the previous one.
	terms := []string{
		"Winter 2022",
		"Spring 2022",
		"Summer 2022",
		"Fall 2022",
		"Spring 2023",
		"Fall 2023",
	}

	for i := 1; i < len(terms); i++ {
		assert.Greater(t,
			glossary.TermKey(terms[i]), glossary.TermKey(terms[i-1]),
			"%s should sort after %s", terms[i], terms[i-1])
	}
}

func TestTermKeyCurrentlyOffered(t *testing.T) {
	// Blank or unparseable terms mean the course is still offered,
	// sorting after every real term.
	for _, term := range []string{"", "  ", "Fall", "Fall of 2023", "Autumn 2023"} {
		assert.Greater(t,
			glossary.TermKey(term), glossary.TermKey("Fall 2999"),
			"term %q", term)
	}
}

func TestTermKeyCaseInsensitive(t *testing.T) {
	assert.Equal(t,
		glossary.TermKey("fall 2022"), glossary.TermKey("Fall 2022"))
}
