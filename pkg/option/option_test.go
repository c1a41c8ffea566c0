package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToken_Simple(t *testing.T) {
	tests := []struct {
		token string
		want  Flag
	}{
		{"-v", FlagInvert},
		{"--invert-match", FlagInvert},
		{"-c", FlagCount},
		{"--count", FlagCount},
		{"-l", FlagFilesWithMatches},
		{"--files-with-matches", FlagFilesWithMatches},
		{"-L", FlagFilesWithoutMatch},
		{"--files-without-match", FlagFilesWithoutMatch},
		{"-o", FlagOnlyMatching},
		{"--only-matching", FlagOnlyMatching},
		{"-F", FlagFixedStrings},
		{"--fixed-strings", FlagFixedStrings},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			flag, val, err := ParseToken(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, flag)
			assert.False(t, val.HasNum)
		})
	}
}

func TestParseToken_WithNumber(t *testing.T) {
	tests := []struct {
		token string
		flag  Flag
		num   int
	}{
		{"-A_123", FlagAfter, 123},
		{"--after-context=123", FlagAfter, 123},
		{"-B_1", FlagBefore, 1},
		{"--before-context=2", FlagBefore, 2},
		{"-C_0", FlagContext, 0},
		{"--context=7", FlagContext, 7},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			flag, val, err := ParseToken(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.flag, flag)
			assert.Equal(t, Value{Num: tt.num, HasNum: true}, val)
		})
	}
}

func TestParseToken_Invalid(t *testing.T) {
	for _, token := range []string{"-a", "-A_D", "-A1", "--after", "-", "--", "-vc", "--context:1"} {
		t.Run(token, func(t *testing.T) {
			_, _, err := ParseToken(token)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidName)
			assert.Equal(t, "invalid option names "+token, err.Error())
		})
	}
}

func TestParseToken_NumberOverflow(t *testing.T) {
	_, _, err := ParseToken("-A_99999999999999999999999")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestFlags_Key(t *testing.T) {
	tests := []struct {
		tokens []string
		want   string
	}{
		{nil, ""},
		{[]string{"-v"}, "v"},
		{[]string{"-v", "-c"}, "cv"},
		{[]string{"-o", "-c"}, "co"},
		{[]string{"-v", "-c", "-F"}, "Fcv"},
		{[]string{"--invert-match", "--after-context=1"}, "Av"},
		{[]string{"-c", "-c"}, "c"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			f := NewFlags()
			for _, token := range tt.tokens {
				require.NoError(t, f.Add(token))
			}
			assert.Equal(t, tt.want, f.Key())
		})
	}
}

func TestFlags_LastValueWins(t *testing.T) {
	f := NewFlags()
	require.NoError(t, f.Add("-A_1"))
	require.NoError(t, f.Add("--after-context=4"))

	v, ok := f.Get(FlagAfter)
	require.True(t, ok)
	assert.Equal(t, 4, v.Num)
	assert.Equal(t, 1, f.Len())
	assert.True(t, f.Has(FlagAfter))
	assert.False(t, f.Has(FlagBefore))
	assert.Equal(t, "-A_4", f.String())
}

func TestFlags_AddInvalid(t *testing.T) {
	f := NewFlags()
	assert.ErrorIs(t, f.Add("-x"), ErrInvalidName)
	assert.Equal(t, 0, f.Len())
}
