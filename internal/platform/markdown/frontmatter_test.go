package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytrack/internal/platform/markdown"
)

func TestNoteKeepsKeyOrder(t *testing.T) {
	meta, err := markdown.Mapping("id", "s-1", "duration", 45, "completed", true)
	require.NoError(t, err)
	out, err := markdown.Note(meta, "# Title\n")
	require.NoError(t, err)
	assert.Equal(t, "---\nid: s-1\nduration: 45\ncompleted: true\n---\n\n# Title\n", out)
}

func TestMappingRejectsOddPairs(t *testing.T) {
	_, err := markdown.Mapping("id")
	require.Error(t, err)
}

func TestFromJSONRendersBlockYAML(t *testing.T) {
	t.Parallel()
	out, err := markdown.FromJSON([]byte(`{"sessions":[{"id":"a","duration":30}],"settings":{"remindersEnabled":true}}`))
	require.NoError(t, err)
	assert.Equal(t, "sessions:\n  - id: a\n    duration: 30\nsettings:\n  remindersEnabled: true\n", string(out))
}

func TestFromJSONRejectsGarbage(t *testing.T) {
	t.Parallel()
	_, err := markdown.FromJSON([]byte(`{"sessions": [`))
	require.Error(t, err)
}
