package promo

import (
	"strings"
	"unicode"
)

const (
	CodePrefix    = "MYN-"
	codeBodyChars = 6
)

// Normalize trims surrounding whitespace and upper-cases the code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CodeForOffer derives the customer-facing code: MYN- followed by the first six
// ASCII alphanumerics of the id, upper-cased. Shorter ids yield shorter codes.
func CodeForOffer(offerID string) string {
	var b strings.Builder
	b.WriteString(CodePrefix)
	n := 0
	for _, r := range offerID {
		if n == codeBodyChars {
			break
		}
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		n++
	}
	return b.String()
}
