package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitIntoWords(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single", "hello", []string{"hello"}},
		{"multiple", "the quick fox", []string{"the", "quick", "fox"}},
		{"leading/trailing spaces", "  hello world  ", []string{"hello", "world"}},
		{"repeated internal spaces", "a    b", []string{"a", "b"}},
		{"tabs are not separators", "a\tb", []string{"a\tb"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := splitIntoWords(tc.text)
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHasControlByte(t *testing.T) {
	assert.False(t, hasControlByte("clean text"))
	assert.True(t, hasControlByte("bad\x01text"))
	assert.True(t, hasControlByte("bad\ntext"))
	assert.False(t, hasControlByte(""))
}
