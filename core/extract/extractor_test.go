package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readerHTML mimics a saved viewer page: entity-escaped background-image
// URLs, each page repeated in preload and display markup, plus UI images
// that must be ignored.
const readerHTML = `<!DOCTYPE html>
<html><head><title>Reader</title></head><body>
<img src="https://cdn.example.com/logo.png" alt="logo"/>
<div class="preload">
  <div class="page" style="background-image: url(&quot;//img.example.com/book/0001/page-1&quot;);"></div>
  <div class="page" style="background-image: url(&quot;//img.example.com/book/0001/page-2&quot;);"></div>
</div>
<div class="viewport">
  <div class="page current" style="width: 800px; background-image: url(&quot;//img.example.com/book/0001/page-1&quot;);"></div>
  <div class="page" style="background-image: url(&quot;//img.example.com/book/0001/page-2&quot;);"></div>
  <div class="page" style="background-image: url(&quot;//img.example.com/book/0001/page-3&quot;);"></div>
</div>
<div class="toolbar" style="background-image: url('/assets/toolbar.svg')"></div>
</body></html>`

func TestExtractOrderedAndDeduplicated(t *testing.T) {
	refs, err := New().Extract(readerHTML)
	require.NoError(t, err)
	require.Len(t, refs, 3)

	want := []string{
		"https://img.example.com/book/0001/page-1",
		"https://img.example.com/book/0001/page-2",
		"https://img.example.com/book/0001/page-3",
	}
	for i, ref := range refs {
		assert.Equal(t, i, ref.Index)
		assert.Equal(t, want[i], ref.URL)
	}
}

func TestExtractNoPagesIsEmptyNotError(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"empty document", ""},
		{"no page markup", `<html><body><p>hello</p><img src="https://x.example.com/a.jpg"/></body></html>`},
		{"page divs without styles", `<html><body><div class="page"></div></body></html>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs, err := New().Extract(tt.html)
			require.NoError(t, err)
			assert.Empty(t, refs)
		})
	}
}

func TestExtractStyleFallback(t *testing.T) {
	// A save that lost the page class still exposes the background-image
	// styles themselves.
	html := `<html><body>
	<div style="background-image: url(&quot;//img.example.com/p/1&quot;)"></div>
	<div style="background-image: url(&quot;//img.example.com/p/2&quot;)"></div>
	</body></html>`

	refs, err := New().Extract(html)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "https://img.example.com/p/1", refs[0].URL)
	assert.Equal(t, "https://img.example.com/p/2", refs[1].URL)
}

func TestExtractStyleFallbackSkipsViewerChrome(t *testing.T) {
	// Without the page class, decorative backgrounds with absolute URLs
	// would otherwise match the style scan.
	html := `<html><body>
	<nav style="background-image: url(&quot;//cdn.example.com/chrome/nav-bg.png&quot;)"></nav>
	<div class="toolbar" style="background-image: url(&quot;//cdn.example.com/chrome/toolbar.png&quot;)"></div>
	<div style="background-image: url(&quot;//img.example.com/p/1&quot;)"></div>
	<div style="background-image: url(&quot;//img.example.com/p/2&quot;)"></div>
	<footer style="background-image: url(&quot;//cdn.example.com/chrome/footer.png&quot;)"></footer>
	</body></html>`

	refs, err := New().Extract(html)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "https://img.example.com/p/1", refs[0].URL)
	assert.Equal(t, "https://img.example.com/p/2", refs[1].URL)
}

func TestExtractIgnoresRelativeURLs(t *testing.T) {
	html := `<html><body>
	<div class="page" style="background-image: url('/local/page-1.jpg')"></div>
	<div class="page" style="background-image: url(&quot;//img.example.com/p/1&quot;)"></div>
	</body></html>`

	refs, err := New().Extract(html)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "https://img.example.com/p/1", refs[0].URL)
}
