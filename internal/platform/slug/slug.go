package slug

import (
	"strings"
	"unicode"
)

// MaxRunes caps slugs so long session titles still make usable file names.
const MaxRunes = 60

// Make lowercases title and joins its letter and digit runs with dashes.
// Letters outside ASCII are kept. An empty result becomes "session".
func Make(title string) string {
	var b strings.Builder
	runes := 0
	pendingDash := false
	for _, r := range strings.ToLower(title) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pendingDash = runes > 0
			continue
		}
		if pendingDash {
			if runes+1 >= MaxRunes {
				break
			}
			b.WriteByte('-')
			runes++
			pendingDash = false
		}
		if runes >= MaxRunes {
			break
		}
		b.WriteRune(r)
		runes++
	}
	if b.Len() == 0 {
		return "session"
	}
	return b.String()
}
