package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    []string
	}{
		{
			name:    "empty content",
			content: []byte{},
			want:    nil,
		},
		{
			name:    "single line without newline",
			content: []byte("hello"),
			want:    []string{"hello"},
		},
		{
			name:    "trailing newline adds no empty line",
			content: []byte("a\nb\nc\nd\n"),
			want:    []string{"a", "b", "c", "d"},
		},
		{
			name:    "last line without newline",
			content: []byte("a\nb"),
			want:    []string{"a", "b"},
		},
		{
			name:    "blank lines are kept",
			content: []byte("a\n\n\nb\n"),
			want:    []string{"a", "", "", "b"},
		},
		{
			name:    "carriage return stays in content",
			content: []byte("a\r\nb\r\n"),
			want:    []string{"a\r", "b\r"},
		},
		{
			name:    "only a newline",
			content: []byte("\n"),
			want:    []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.content))
		})
	}
}

func TestIsBinary(t *testing.T) {
	assert.False(t, IsBinary([]byte("plain text\n")))
	assert.False(t, IsBinary(nil))
	assert.True(t, IsBinary([]byte("ab\x00cd")))

	// NUL past the 8KB window is not inspected
	late := make([]byte, 9000)
	for i := range late {
		late[i] = 'a'
	}
	late[8500] = 0
	assert.False(t, IsBinary(late))
}
