package arabic

import (
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// reorder rearranges one shaped line into visual order for a renderer
// that draws glyphs strictly left-to-right. The algorithm hands runs
// back in logical order, so for a right-to-left paragraph they are
// emitted last to first; left-to-right runs, Latin words and numerals,
// keep their content as it is. The paragraph direction comes from the
// first strong character, like the reordering library the original
// used. On any failure the input is returned untouched.
func reorder(line string) string {
	p := &bidi.Paragraph{}
	if _, err := p.SetString(line); err != nil {
		return line
	}

	ordering, err := p.Order()
	if err != nil {
		return line
	}

	parts := make([]string, ordering.NumRuns())
	for i := range parts {
		run := ordering.Run(i)
		if run.Direction() == bidi.RightToLeft {
			parts[i] = reverseRun(run.String())
		} else {
			parts[i] = run.String()
		}
	}

	if firstStrongRTL(line) {
		for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
			parts[i], parts[j] = parts[j], parts[i]
		}
	}
	return strings.Join(parts, "")
}

// reverseRun flips a right-to-left run for left-to-right placement.
// Combining marks stay behind the letter they modify and paired
// brackets are mirrored.
func reverseRun(s string) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	for end := len(runes); end > 0; {
		start := end - 1
		for start > 0 && isTransparent(runes[start]) {
			start--
		}
		out = append(out, runes[start:end]...)
		end = start
	}
	for i, r := range out {
		if prop, _ := bidi.LookupRune(r); prop.IsBracket() {
			out[i] = []rune(bidi.ReverseString(string(r)))[0]
		}
	}
	return string(out)
}

// firstStrongRTL reports whether the first strong character of the line
// reads right-to-left, which fixes the paragraph direction. Digits,
// marks and punctuation are not strong; a line without any strong
// character stays left-to-right.
func firstStrongRTL(line string) bool {
	for _, r := range line {
		prop, _ := bidi.LookupRune(r)
		switch prop.Class() {
		case bidi.R, bidi.AL:
			return true
		case bidi.L:
			return false
		}
	}
	return false
}
