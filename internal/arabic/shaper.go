// Package arabic converts logical Arabic text into the presentation
// forms a left-to-right glyph renderer can draw, mirroring the
// reshape-then-reorder pipeline of the original application.
package arabic

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Shape converts each Arabic letter to its contextual presentation form
// (isolated/initial/medial/final) and reorders the text for
// right-to-left display, keeping embedded Latin and numeral runs
// left-to-right. Unsupported characters pass through unchanged and any
// reordering failure returns the input as-is, so shaping never fails an
// export.
//
// Shape is NOT idempotent: re-shaping already-shaped text scrambles it.
// Call it exactly once per string, immediately before layout.
func Shape(text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = shapeLine(line)
	}
	return strings.Join(lines, "\n")
}

func shapeLine(line string) string {
	if line == "" {
		return ""
	}
	line = norm.NFC.String(line)
	return reorder(joinForms(line))
}

// joinForms resolves the positional form of every letter in logical
// order. prevConnects tracks whether the previous letter reaches
// forward into the current one; harakat are transparent to that.
func joinForms(s string) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes))

	prevConnects := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if isTransparent(r) {
			out = append(out, r)
			continue
		}

		entry, ok := letters[r]
		if !ok {
			out = append(out, r)
			prevConnects = false
			continue
		}

		// lam + alef fuses into a single ligature glyph
		if r == lam {
			if j, next := nextLetter(runes, i); j >= 0 {
				if lig, isAlef := lamAlef[next]; isAlef {
					form := lig.isolated
					if prevConnects {
						form = lig.final
					}
					out = append(out, form)
					// harakat between the pair stay behind the ligature
					out = append(out, runes[i+1:j]...)
					i = j
					prevConnects = false
					continue
				}
			}
		}

		connects := entry.class == joinDual && nextAccepts(runes, i)
		out = append(out, entry.pick(prevConnects, connects))
		prevConnects = connects
	}

	return string(out)
}

// nextLetter finds the first rune after i that participates in joining.
func nextLetter(runes []rune, i int) (int, rune) {
	for j := i + 1; j < len(runes); j++ {
		if !isTransparent(runes[j]) {
			return j, runes[j]
		}
	}
	return -1, 0
}

// nextAccepts reports whether the following letter can receive a
// connection from the current one.
func nextAccepts(runes []rune, i int) bool {
	j, next := nextLetter(runes, i)
	if j < 0 {
		return false
	}
	entry, ok := letters[next]
	return ok && (entry.class == joinDual || entry.class == joinRight)
}
