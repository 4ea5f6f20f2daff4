package slug_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"studytrack/internal/platform/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"Algebra Review":         "algebra-review",
		"  Ch. 3: Limits!! ":     "ch-3-limits",
		"Física -- Ondas":        "física-ondas",
		"???":                    "session",
		"":                       "session",
		"Read pp. 10/20 (again)": "read-pp-10-20-again",
	}
	for in, want := range cases {
		assert.Equal(t, want, slug.Make(in), in)
	}
}

func TestMakeCapsLength(t *testing.T) {
	t.Parallel()
	out := slug.Make(strings.Repeat("word ", 40))
	assert.LessOrEqual(t, utf8.RuneCountInString(out), slug.MaxRunes)
	assert.False(t, strings.HasSuffix(out, "-"))
	assert.True(t, strings.HasPrefix(out, "word-word"))
}
