package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_StructureSurvives(t *testing.T) {
	html := `<h1>Jane Doe</h1>
<p><strong>Compositor</strong></p>
<h2>Works</h2>
<ul><li>Pyro</li><li>Ocean</li></ul>
<p><a href="https://vimeo.com/42">Showreel</a></p>`

	md, err := New().Normalize(html)
	require.NoError(t, err)

	assert.Contains(t, md, "# Jane Doe")
	assert.Contains(t, md, "**Compositor**")
	assert.Contains(t, md, "## Works")
	assert.Contains(t, md, "- Pyro")
	assert.Contains(t, md, "[Showreel](https://vimeo.com/42)")
	assert.Regexp(t, `[^\n]\n$`, md)
}

func TestNormalize_Empty(t *testing.T) {
	md, err := New().Normalize("")
	require.NoError(t, err)
	assert.Equal(t, "\n", md)
}
