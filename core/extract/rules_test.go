package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackgroundImageURL(t *testing.T) {
	tests := []struct {
		name  string
		style string
		want  string
	}{
		{"double quoted", `background-image: url("//img.example.com/p/1");`, "//img.example.com/p/1"},
		{"single quoted", `background-image: url('//img.example.com/p/1')`, "//img.example.com/p/1"},
		{"unquoted", `background-image: url(//img.example.com/p/1)`, "//img.example.com/p/1"},
		{"entity remnants", `background-image: url(&quot;//img.example.com/p/1&quot;)`, "//img.example.com/p/1"},
		{"other declarations around", `width: 800px; background-image: url("//a.example.com/x"); height: 600px`, "//a.example.com/x"},
		{"no background image", `width: 800px; color: red`, ""},
		{"background image without url", `background-image: none`, ""},
		{"unclosed url", `background-image: url("//img.example.com/p/1`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, backgroundImageURL(tt.style))
		})
	}
}

func TestResolveImageURL(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"scheme relative", "//img.example.com/p/1", "https://img.example.com/p/1", true},
		{"absolute https", "https://img.example.com/p/1", "https://img.example.com/p/1", true},
		{"absolute http", "http://img.example.com/p/1", "http://img.example.com/p/1", true},
		{"fragment stripped", "https://img.example.com/p/1#top", "https://img.example.com/p/1", true},
		{"whitespace trimmed", "  //img.example.com/p/1  ", "https://img.example.com/p/1", true},
		{"relative path", "/assets/toolbar.svg", "", false},
		{"data url", "data:image/png;base64,xyz", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveImageURL(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
