package ast

import (
	"unicode"
	"unicode/utf8"
)

func isIdentStart(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' ||
		ch >= utf8.RuneSelf && unicode.IsLetter(ch)
}

func isIdentCont(ch rune) bool {
	return isIdentStart(ch) || '0' <= ch && ch <= '9' ||
		ch >= utf8.RuneSelf && unicode.IsDigit(ch)
}

// IsValidIdentifier reports whether name has the shape of a Python
// identifier: an XID_Start-ish character followed by XID_Continue-ish
// characters, per the reference grammar's Name token (ASCII fast path;
// the full Unicode XID tables are outside this module's scope).
func IsValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 {
			if !isIdentStart(r) {
				return false
			}
			continue
		}
		if !isIdentCont(r) {
			return false
		}
	}
	return true
}
