package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportHTML_PlainHTML(t *testing.T) {
	md, err := ImportHTML("<h1>The Cave</h1><p>It is dark in here.</p>")
	require.NoError(t, err)

	assert.Contains(t, md, "# The Cave")
	assert.Contains(t, md, "It is dark in here.")
}

func TestImportHTML_RecoversStoryMarkup(t *testing.T) {
	html := `<div id="Start" class="section" hidden="true">` +
		`<p>Go <a href="#" data-goto-section="Cave">in</a> or ` +
		`<a href="#" data-call-function="wait">wait</a>.</p>` +
		`<p>You carry <span data-expand-macro="$gold"></span> coins.</p>` +
		`</div>`

	md, err := ImportHTML(html)
	require.NoError(t, err)

	assert.Contains(t, md, "{{Start}}")
	assert.Contains(t, md, "{@Cave}")
	assert.Contains(t, md, "{#wait}")
	assert.Contains(t, md, "{$gold}")
	assert.NotContains(t, md, "<div")
	assert.NotContains(t, md, "</div>")
}

func TestImportHTML_Empty(t *testing.T) {
	md, err := ImportHTML("")
	require.NoError(t, err)
	assert.Empty(t, md)
}
