package ui

import "strings"

// Cx joins class fragments with a single space. Empty and whitespace-only
// fragments are dropped; every other fragment is written verbatim. Order is
// preserved and repeated utilities are kept so that later fragments (caller
// overrides included) stay last.
func Cx(fragments ...string) string {
	var b strings.Builder
	for _, fragment := range fragments {
		if strings.TrimSpace(fragment) == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fragment)
	}
	return b.String()
}

// When returns class if cond holds and the empty fragment otherwise.
func When(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
