// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "removes illegal characters",
			title: "A/B:C*D",
			want:  "ABCD",
		},
		{
			name:  "removes every illegal character",
			title: `a<b>c:d"e/f\g|h?i*j`,
			want:  "abcdefghij",
		},
		{
			name:  "all-illegal title becomes untitled",
			title: `<>:"/\|?*`,
			want:  "untitled",
		},
		{
			name:  "empty title becomes untitled",
			title: "",
			want:  "untitled",
		},
		{
			name:  "whitespace-only title becomes untitled",
			title: "   ",
			want:  "untitled",
		},
		{
			name:  "trims surrounding whitespace",
			title: "  spaced out  ",
			want:  "spaced out",
		},
		{
			name:  "plain title passes through",
			title: "Normandy landings",
			want:  "Normandy landings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.title))
		})
	}
}

func TestSanitizeFilename_TruncatesTo200Runes(t *testing.T) {
	got := SanitizeFilename(strings.Repeat("a", 250))
	assert.Len(t, []rune(got), 200)
}

func TestSanitizeFilename_TruncatesMultibyteByRune(t *testing.T) {
	got := SanitizeFilename(strings.Repeat("日", 250))
	assert.Len(t, []rune(got), 200)
	assert.Equal(t, strings.Repeat("日", 200), got)
}

func TestSanitizeFilename_TruncatesBeforeTrimming(t *testing.T) {
	// 199 characters then whitespace: the truncated tail is trimmed away.
	title := strings.Repeat("a", 199) + strings.Repeat(" ", 10)
	got := SanitizeFilename(title)
	assert.Equal(t, strings.Repeat("a", 199), got)
}
