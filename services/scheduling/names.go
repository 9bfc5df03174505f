package scheduling

import (
	"strings"
	"unicode"
)

// DerivePainterName turns a painter id into a display name:
// "painter-1" becomes "Painter 1", "painter-a" becomes "Painter A", anything
// else is title-cased with each run of dashes and underscores read as one space.
func DerivePainterName(painterID string) string {
	if painterID == "" {
		return "Painter"
	}

	if rest, ok := strings.CutPrefix(painterID, "painter-"); ok {
		suffix, _, _ := strings.Cut(rest, "-")
		if suffix == "" {
			suffix = painterID
		}
		return "Painter " + strings.ToUpper(suffix)
	}

	return titleWords("Painter " + collapseSeparators(painterID))
}

// collapseSeparators replaces every run of dashes and underscores with one
// space. Leading and trailing runs are kept as a space.
func collapseSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if r == '-' || r == '_' {
			if !inRun {
				b.WriteByte(' ')
			}
			inRun = true
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

// titleWords upper-cases the first letter of every word.
func titleWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	startOfWord := true
	for _, r := range s {
		if startOfWord && unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		startOfWord = !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}
	return b.String()
}
