package account

import "strings"

// FormatPhone canonicalizes a phone number: it keeps a leading plus sign when
// present and strips every other non-digit character. The function is
// idempotent; applying it to its own output yields the same string, which is
// what lets the canonical form be stored and re-formatted freely.
//
//	FormatPhone("+54 (11) 4321-5678") == "+541143215678"
//	FormatPhone(FormatPhone(x)) == FormatPhone(x)
func FormatPhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	trimmed := strings.TrimSpace(raw)
	for i, r := range trimmed {
		if r == '+' && i == 0 {
			b.WriteRune(r)
			continue
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
