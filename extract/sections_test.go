package extract_test

import (
	"testing"

	"github.com/fwojciec/troubledoc/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSections(t *testing.T) {
	t.Parallel()

	t.Run("no headings yields no sections", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, extract.Sections(`<p>prose only</p>`))
	})

	t.Run("splits on headings with ordinal ids and verbatim levels", func(t *testing.T) {
		t.Parallel()

		in := `<h1>Guide</h1><p>Intro text.</p><h2>Details</h2><p>More text.</p>`

		got := extract.Sections(in)

		require.Len(t, got, 2)
		assert.Equal(t, "section-0", got[0].ID)
		assert.Equal(t, "Guide", got[0].Heading)
		assert.Equal(t, 1, got[0].Level)
		assert.Equal(t, "Intro text. Details More text.", got[0].Content)
		assert.Equal(t, "section-1", got[1].ID)
		assert.Equal(t, "Details", got[1].Heading)
		assert.Equal(t, 2, got[1].Level)
		assert.Equal(t, "More text.", got[1].Content)
	})

	t.Run("section runs to the next heading of same or higher level", func(t *testing.T) {
		t.Parallel()

		in := `<h2>Alpha</h2><p>A</p><h3>Sub</h3><p>B</p><h2>Beta</h2><p>C</p>`

		got := extract.Sections(in)

		require.Len(t, got, 3)
		assert.Equal(t, "A Sub B", got[0].Content)
		assert.Equal(t, "B", got[1].Content)
		assert.Equal(t, "C", got[2].Content)
	})

	t.Run("heading text with regex metacharacters is handled", func(t *testing.T) {
		t.Parallel()

		in := `<h2>What is (S3)? [FAQ]</h2><p>Answer.</p>`

		got := extract.Sections(in)

		require.Len(t, got, 1)
		assert.Equal(t, "What is (S3)? [FAQ]", got[0].Heading)
		assert.Equal(t, "Answer.", got[0].Content)
	})

	t.Run("duplicate headings keep distinct boundaries", func(t *testing.T) {
		t.Parallel()

		in := `<h2>Errors</h2><p>First block.</p><h2>Errors</h2><p>Second block.</p>`

		got := extract.Sections(in)

		require.Len(t, got, 2)
		assert.Equal(t, "First block.", got[0].Content)
		assert.Equal(t, "Second block.", got[1].Content)
	})

	t.Run("heading attributes are tolerated", func(t *testing.T) {
		t.Parallel()

		in := `<h3 id="t" class="title">Configuration</h3><p>Body.</p>`

		got := extract.Sections(in)

		require.Len(t, got, 1)
		assert.Equal(t, "Configuration", got[0].Heading)
		assert.Equal(t, 3, got[0].Level)
	})
}
