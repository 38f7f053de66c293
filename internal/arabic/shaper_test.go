package arabic

import (
	"strings"
	"testing"
)

func TestShapeLeavesLatinUnchanged(t *testing.T) {
	inputs := []string{
		"Grilled Chicken",
		"150g skyr",
		"HTTPS://CAP-SHADOW.NETLIFY.APP/",
		"140",
	}
	for _, in := range inputs {
		if got := Shape(in); got != in {
			t.Errorf("Shape(%q) = %q, expected unchanged", in, got)
		}
	}
}

func TestShapeEmptyString(t *testing.T) {
	if got := Shape(""); got != "" {
		t.Fatalf("Shape(\"\") = %q, expected empty", got)
	}
}

func TestShapeMarhaba(t *testing.T) {
	// م ر ح ب ا joins to ﻣﺮﺣﺒﺎ, then reverses for display.
	got := Shape("مرحبا")
	want := "ﺎﺒﺣﺮﻣ"
	if got != want {
		t.Fatalf("Shape(مرحبا) = %U, want %U", []rune(got), []rune(want))
	}
}

func TestShapeLamAlefLigature(t *testing.T) {
	// س ل ا م: the lam-alef pair fuses into the final-form ligature.
	got := Shape("سلام")
	want := "ﻡﻼﺳ"
	if got != want {
		t.Fatalf("Shape(سلام) = %U, want %U", []rune(got), []rune(want))
	}
}

func TestShapeKeepsNumeralsLeftToRight(t *testing.T) {
	// Digits keep their left-to-right order inside an RTL phrase.
	got := Shape("140 جرام بيض")
	want := "ﺾﻴﺑ ﻡﺍﺮﺟ 140"
	if got != want {
		t.Fatalf("got %U, want %U", []rune(got), []rune(want))
	}
	if !strings.Contains(got, "140") {
		t.Fatalf("numerals were reordered: %q", got)
	}
}

func TestShapeKeepsHarakatOnTheirLetters(t *testing.T) {
	// muhammad with damma, fatha and shadda. The shadda is typed before
	// the fatha; NFC reorders the pair by combining class, and reversal
	// keeps each mark behind its letter.
	in := "\u0645\u064F\u062D\u064E\u0645\u0651\u064E\u062F"
	got := Shape(in)
	want := "\uFEAA\uFEE4\u064E\u0651\uFEA4\u064E\uFEE3\u064F"
	if got != want {
		t.Fatalf("got %U, want %U", []rune(got), []rune(want))
	}
}

func TestShapeTotalsLineKeepsLabelsWithNumbers(t *testing.T) {
	// Reading starts at the right edge, so the logical first word must
	// land at the end of the returned string and the trailing unit at
	// the start, each still beside its own number.
	got := Shape("إجمالي الدهون: 10 غ")

	if !strings.HasSuffix(got, Shape("إجمالي")) {
		t.Fatalf("leading word is not at the reading start: %U", []rune(got))
	}
	if !strings.HasPrefix(got, Shape("غ")+" 10 ") {
		t.Fatalf("amount and unit drifted apart: %U", []rune(got))
	}
}

func TestShapeMirrorsBracketsInArabicText(t *testing.T) {
	// The pair flips with its run, so the brackets still wrap the word.
	got := Shape("(جرام)")
	want := "(ﻡﺍﺮﺟ)"
	if got != want {
		t.Fatalf("got %U, want %U", []rune(got), []rune(want))
	}
}

func TestShapeTatweelStaysJoining(t *testing.T) {
	got := Shape("بـب")
	want := "ﺐـﺑ"
	if got != want {
		t.Fatalf("got %U, want %U", []rune(got), []rune(want))
	}
}

func TestShapeUnsupportedCharactersPassThrough(t *testing.T) {
	got := Shape("سمك ☂ طازج")
	if !strings.ContainsRune(got, '☂') {
		t.Fatalf("unsupported rune was dropped: %q", got)
	}
}

func TestShapeIsNotIdempotent(t *testing.T) {
	once := Shape("مرحبا")
	twice := Shape(once)
	if twice == once {
		t.Fatalf("re-shaping should scramble shaped text, got identical %q", once)
	}
}

func TestShapePreservesNewlines(t *testing.T) {
	got := Shape("مرحبا\nHello")
	parts := strings.Split(got, "\n")
	if len(parts) != 2 {
		t.Fatalf("expected two lines, got %q", got)
	}
	if parts[1] != "Hello" {
		t.Fatalf("latin line changed: %q", parts[1])
	}
	if parts[0] != Shape("مرحبا") {
		t.Fatalf("first line not shaped independently: %q", parts[0])
	}
}
