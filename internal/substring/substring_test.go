package substring

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLongestUnique(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "repeated abc", input: "abcabcbb", want: 3},
		{name: "single repeated char", input: "bbbbb", want: 1},
		{name: "answer in the middle", input: "pwwkew", want: 3},
		{name: "empty", input: "", want: 0},
		{name: "all distinct", input: "abcdefg", want: 7},
		{name: "leading duplicate", input: "aab", want: 2},
		{name: "window restarts after repeat", input: "dvdf", want: 3},
		{name: "two chars", input: "au", want: 2},
		{name: "single char", input: "x", want: 1},
		{name: "stale index left of window", input: "abba", want: 2},
		{name: "spaces count", input: "a b c", want: 3},
		{name: "multibyte runes", input: "héllo wörld", want: 7},
		{name: "cjk", input: "日本日本語", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LongestUnique(tt.input))
			assert.Equal(t, tt.want, LongestUniqueShrinking(tt.input))
		})
	}
}

func TestLongestUniqueWindow(t *testing.T) {
	tests := []struct {
		input     string
		want      Window
		substring string
	}{
		{input: "abcabcbb", want: Window{Start: 0, End: 3}, substring: "abc"},
		{input: "pwwkew", want: Window{Start: 2, End: 5}, substring: "wke"},
		{input: "dvdf", want: Window{Start: 1, End: 4}, substring: "vdf"},
		{input: "", want: Window{}, substring: ""},
		{input: "日本日本語", want: Window{Start: 2, End: 5}, substring: "日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := LongestUniqueWindow(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.substring, got.Slice(tt.input))
		})
	}
}

func TestLongestUniqueBytes(t *testing.T) {
	assert.Equal(t, 3, LongestUniqueBytes([]byte("abcabcbb")))
	assert.Equal(t, 0, LongestUniqueBytes(nil))
	assert.Equal(t, 2, LongestUniqueBytes([]byte("abba")))
	// "é" is two bytes, so byte and rune answers differ.
	assert.Equal(t, 3, LongestUnique("éab"))
	assert.Equal(t, 4, LongestUniqueBytes([]byte("éab")))
}

func TestLongestUnique_InvalidUTF8(t *testing.T) {
	// Both invalid bytes decode to utf8.RuneError.
	input := "\xff\xfe"
	require.False(t, utf8.ValidString(input))
	assert.Equal(t, 1, LongestUnique(input))
	assert.Equal(t, 1, LongestUniqueShrinking(input))
	assert.Equal(t, 2, LongestUniqueBytes([]byte(input)))
}

func TestWindow_SliceKeepsOriginalBytes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "a\xffb", want: "a\xffb"},
		{input: "\xff\xfeab", want: "\xfeab"},
		{input: "héllo wörld", want: "o wörld"},
		{input: "日本日本語", want: "日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := LongestUniqueWindow(tt.input).Slice(tt.input)
			assert.Equal(t, tt.want, got)
			assert.True(t, strings.Contains(tt.input, got))
		})
	}
}

func TestWindow_SliceOutOfRange(t *testing.T) {
	assert.Equal(t, "", Window{Start: 5, End: 8}.Slice("abc"))
	assert.Equal(t, "bc", Window{Start: 1, End: 9}.Slice("abc"))
	assert.Equal(t, "", Window{}.Slice("abc"))
}

func TestLongestUnique_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	alphabet := []rune("abcdeé日")

	for i := 0; i < 500; i++ {
		n := rng.IntN(24)
		var b strings.Builder
		for j := 0; j < n; j++ {
			b.WriteRune(alphabet[rng.IntN(len(alphabet))])
		}
		s := b.String()

		got := LongestUnique(s)
		require.Equal(t, bruteForce(s), got, "input %q", s)
		require.Equal(t, got, LongestUniqueShrinking(s), "input %q", s)
		require.GreaterOrEqual(t, got, 0)
		require.LessOrEqual(t, got, utf8.RuneCountInString(s))

		w := LongestUniqueWindow(s)
		require.Equal(t, got, w.Len())
		require.True(t, distinct(w.Slice(s)), "window %q of %q repeats", w.Slice(s), s)

		if IsASCII(s) {
			require.Equal(t, got, LongestUniqueBytes([]byte(s)), "input %q", s)
		}
	}
}

func TestLongestUnique_DistinctAndRepeated(t *testing.T) {
	for n := 1; n <= 30; n++ {
		assert.Equal(t, 1, LongestUnique(strings.Repeat("z", n)))
	}

	distinctInput := "abcdefghijklmnopqrstuvwxyz0123456789"
	assert.Equal(t, len(distinctInput), LongestUnique(distinctInput))
}

func TestIsASCII(t *testing.T) {
	assert.True(t, IsASCII(""))
	assert.True(t, IsASCII("abc~"))
	assert.False(t, IsASCII("héllo"))
}

func bruteForce(s string) int {
	runes := []rune(s)
	best := 0
	for i := range runes {
		seen := make(map[rune]bool)
		for j := i; j < len(runes); j++ {
			if seen[runes[j]] {
				break
			}
			seen[runes[j]] = true
			best = max(best, j-i+1)
		}
	}
	return best
}

func distinct(s string) bool {
	seen := make(map[rune]bool)
	for _, r := range s {
		if seen[r] {
			return false
		}
		seen[r] = true
	}
	return true
}
