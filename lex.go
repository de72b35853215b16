// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"strings"
)

// isPunct reports whether c is Markdown punctuation.
func isPunct(c byte) bool {
	return '!' <= c && c <= '/' || ':' <= c && c <= '@' || '[' <= c && c <= '`' || '{' <= c && c <= '~'
}

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isLetterDigit reports whether c is an ASCII letter or digit.
func isLetterDigit(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9'
}

// isLDH reports whether c is an ASCII letter, digit, or hyphen.
func isLDH(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' || c == '-'
}

// isHexDigit reports whether c is an ASCII hexadecimal digit.
func isHexDigit(c byte) bool {
	return 'A' <= c && c <= 'F' || 'a' <= c && c <= 'f' || '0' <= c && c <= '9'
}

// isSpace reports whether c is ASCII white space:
// space, tab, newline, vertical tab, form feed, or carriage return.
// The end-of-text byte 0 is not a space, so a delimiter run
// at the end of the text counts as followed by non-space.
func isSpace(c byte) bool {
	return c == ' ' || '\t' <= c && c <= '\r'
}

// isSpecial reports whether c might start an inline other than plain text.
// A run of plain text ends before the first such byte.
func isSpecial(c byte) bool {
	switch c {
	case '\n', '\\', '`', '&', '_', '*', '[', ']', '<', '!':
		return true
	}
	return false
}

// trimSpace removes leading and trailing ASCII white space from s.
func trimSpace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	j := len(s)
	for j > i && isSpace(s[j-1]) {
		j--
	}
	return s[i:j]
}

// skipSpace returns i + the number of spaces, tabs, and newlines
// at the start of s[i:]. That is, it skips i past any such characters, returning the new i.
func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
		i++
	}
	return i
}

// collapseSpace replaces each run of white space in s with a single space.
func collapseSpace(s string) string {
	var b strings.Builder
	space := false
	for i := 0; i < len(s); i++ {
		if isSpace(s[i]) {
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteByte(s[i])
	}
	if space {
		b.WriteByte(' ')
	}
	return b.String()
}

// mdUnescape returns s with the backslashes before punctuation removed.
// A doubled backslash becomes a single one.
func mdUnescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return mdUnescaper.Replace(s)
}

// mdUnescaper removes Markdown escapes.
var mdUnescaper = func() *strings.Replacer {
	var list []string
	for c := byte('!'); c <= '~'; c++ {
		if isPunct(c) {
			list = append(list, `\`+string(c), string(c))
		}
	}
	return strings.NewReplacer(list...)
}()
