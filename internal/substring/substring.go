// Package substring finds the longest run of a string in which no character
// repeats. Characters are Unicode code points; invalid UTF-8 bytes all decode
// to utf8.RuneError and therefore count as the same character.
package substring

// Window is a half-open range [Start, End) of rune offsets into a string.
type Window struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of runes covered by the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// Slice returns the part of s covered by the window. The original bytes are
// kept, so invalid UTF-8 comes back unchanged rather than as U+FFFD and the
// result is always a substring of s.
func (w Window) Slice(s string) string {
	if w.Len() <= 0 {
		return ""
	}

	from, to := -1, len(s)
	n := 0
	for i := range s {
		if n == w.Start {
			from = i
		}
		if n == w.End {
			to = i
			break
		}
		n++
	}
	if from < 0 {
		return ""
	}
	return s[from:to]
}

// LongestUnique returns the length of the longest substring of s without
// repeating characters. It is total: the empty string yields 0.
func LongestUnique(s string) int {
	return LongestUniqueWindow(s).Len()
}

// LongestUniqueWindow returns the earliest window of maximal length that
// contains no repeated character.
func LongestUniqueWindow(s string) Window {
	lastSeen := make(map[rune]int)
	var best Window
	left, right := 0, 0

	for _, c := range s {
		// A previous occurrence left of the window is already excluded.
		if idx, ok := lastSeen[c]; ok && idx >= left {
			left = idx + 1
		}
		lastSeen[c] = right

		if right-left+1 > best.Len() {
			best = Window{Start: left, End: right + 1}
		}
		right++
	}

	return best
}

// LongestUniqueShrinking computes the same length as LongestUnique with a
// membership set, dropping characters from the left of the window until a
// repeat is gone.
func LongestUniqueShrinking(s string) int {
	runes := []rune(s)
	inWindow := make(map[rune]struct{})
	best, left := 0, 0

	for right, c := range runes {
		for {
			if _, ok := inWindow[c]; !ok {
				break
			}
			delete(inWindow, runes[left])
			left++
		}
		inWindow[c] = struct{}{}
		best = max(best, right-left+1)
	}

	return best
}

// LongestUniqueBytes treats every byte as a character. It agrees with
// LongestUnique only when b is ASCII.
func LongestUniqueBytes(b []byte) int {
	var lastSeen [256]int
	for i := range lastSeen {
		lastSeen[i] = -1
	}

	best, left := 0, 0
	for right, c := range b {
		if lastSeen[c] >= left {
			left = lastSeen[c] + 1
		}
		lastSeen[c] = right
		best = max(best, right-left+1)
	}

	return best
}

// IsASCII reports whether every byte of s is below 0x80.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
