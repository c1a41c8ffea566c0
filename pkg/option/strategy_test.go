package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flagsOf(t *testing.T, tokens ...string) *Flags {
	t.Helper()
	f := NewFlags()
	for _, token := range tokens {
		require.NoError(t, f.Add(token))
	}
	return f
}

func TestResolve_Supported(t *testing.T) {
	tests := []struct {
		tokens []string
		want   Strategy
	}{
		{nil, Strategy{Kind: KindDefault}},
		{[]string{"-v"}, Strategy{Kind: KindInvert}},
		{[]string{"-c"}, Strategy{Kind: KindCount}},
		{[]string{"-o", "-c"}, Strategy{Kind: KindCount}},
		{[]string{"-c", "-v"}, Strategy{Kind: KindCountInvert}},
		{[]string{"-l"}, Strategy{Kind: KindFilesWithMatches}},
		{[]string{"-L"}, Strategy{Kind: KindFilesWithoutMatch}},
		{[]string{"-o"}, Strategy{Kind: KindOnlyMatching}},
		{[]string{"-F"}, Strategy{Kind: KindFixed}},
		{[]string{"-F", "-c"}, Strategy{Kind: KindFixedCount}},
		{[]string{"-F", "-o"}, Strategy{Kind: KindFixedOnlyMatching}},
		{[]string{"-F", "-v"}, Strategy{Kind: KindFixedInvert}},
		{[]string{"-F", "-v", "-c"}, Strategy{Kind: KindFixedCountInvert}},
		{[]string{"-A_1"}, Strategy{Kind: KindAfter, Window: 1}},
		{[]string{"-A_2", "-v"}, Strategy{Kind: KindAfterInvert, Window: 2}},
		{[]string{"-B_1"}, Strategy{Kind: KindBefore, Window: 1}},
		{[]string{"--before-context=3", "-v"}, Strategy{Kind: KindBeforeInvert, Window: 3}},
		{[]string{"-C_1"}, Strategy{Kind: KindContext, Window: 1}},
		{[]string{"-C_5", "--invert-match"}, Strategy{Kind: KindContextInvert, Window: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got, err := Resolve(flagsOf(t, tt.tokens...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Rejected(t *testing.T) {
	combos := [][]string{
		{"-l", "-c"},
		{"-l", "-L"},
		{"-o", "-v"},
		{"-A_1", "-B_1"},
		{"-A_1", "-c"},
		{"-C_1", "-F"},
		{"-F", "-l"},
		{"-F", "-o", "-v"},
	}

	for _, tokens := range combos {
		f := flagsOf(t, tokens...)
		t.Run(f.Key(), func(t *testing.T) {
			_, err := Resolve(f)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCombination)
		})
	}
}

func TestResolve_WindowNeedsNumber(t *testing.T) {
	for _, tokens := range [][]string{{"-A"}, {"--before-context", "-v"}, {"-C"}} {
		_, err := Resolve(flagsOf(t, tokens...))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCombination)
	}
}

func TestStrategy_Predicates(t *testing.T) {
	assert.True(t, Strategy{Kind: KindFixedCountInvert}.FixedStrings())
	assert.True(t, Strategy{Kind: KindFixedCountInvert}.Inverted())
	assert.False(t, Strategy{Kind: KindFixedCountInvert}.Windowed())

	assert.False(t, Strategy{Kind: KindContext}.FixedStrings())
	assert.False(t, Strategy{Kind: KindContext}.Inverted())
	assert.True(t, Strategy{Kind: KindContext}.Windowed())
	assert.True(t, Strategy{Kind: KindBeforeInvert}.Inverted())

	assert.False(t, Strategy{Kind: KindFilesWithoutMatch}.Windowed())
	assert.Equal(t, "Av(2)", Strategy{Kind: KindAfterInvert, Window: 2}.String())
	assert.Equal(t, "Fcv", KindFixedCountInvert.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestSupported(t *testing.T) {
	combos := Supported()
	require.Len(t, combos, 19)

	seen := make(map[string]bool)
	for _, c := range combos {
		assert.False(t, seen[c.Key], "duplicate key %q", c.Key)
		seen[c.Key] = true
		assert.NotEmpty(t, c.Description)

		// every listed key resolves to the listed kind
		f := NewFlags()
		for i := 0; i < len(c.Key); i++ {
			f.Set(Flag(c.Key[i]), Value{Num: 1, HasNum: true})
		}
		got, err := Resolve(f)
		require.NoError(t, err, c.Key)
		assert.Equal(t, c.Kind, got.Kind, c.Key)
	}

	// callers cannot mutate the table
	combos[0].Key = "zz"
	assert.Equal(t, "", Supported()[0].Key)
}
