// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

// The scanners in this file look for a fixed syntactic form at s[i:]
// and return its length, or -1 if it is not there.
// They neither move a cursor nor look at parser state.

// scanSpacechars returns the length of the run of spaces, tabs,
// and newlines at s[i:]. The run may be empty.
func scanSpacechars(s string, i int) int {
	return skipSpace(s, i) - i
}

// isEscaped reports whether s[i:] starts with a backslash-escaped punctuation character.
func isEscaped(s string, i int) bool {
	return i+1 < len(s) && s[i] == '\\' && isPunct(s[i+1])
}

// scanLinkURL returns the length of the link destination at s[i:].
// A destination is either <...> containing no newline or unescaped < >,
// or a possibly empty sequence of non-space characters in which
// parentheses appear only escaped or as a single level of balanced pairs.
// The second form always matches, so scanLinkURL never returns -1,
// but it may return 0.
func scanLinkURL(s string, i int) int {
	if i < len(s) && s[i] == '<' {
		for j := i + 1; j < len(s); j++ {
			switch s[j] {
			case '>':
				return j + 1 - i
			case '<', '\n', 0:
				j = len(s)
			case '\\':
				if isEscaped(s, j) {
					j++
				}
			}
		}
	}

	j := i
	for j < len(s) {
		switch {
		case isEscaped(s, j):
			j += 2
		case s[j] == '(':
			k := j + 1
			for k < len(s) && s[k] != ')' {
				if isEscaped(s, k) {
					k += 2
					continue
				}
				if !isURLChar(s[k]) {
					break
				}
				k++
			}
			if k >= len(s) || s[k] != ')' {
				return j - i
			}
			j = k + 1
		case isURLChar(s[j]):
			j++
		default:
			return j - i
		}
	}
	return j - i
}

// isURLChar reports whether c can appear unescaped in a link destination
// outside of parentheses.
func isURLChar(c byte) bool {
	return c > ' ' && c != '\\' && c != '(' && c != ')'
}

// scanLinkTitle returns the length of the link title at s[i:], or -1.
// A title is enclosed in "...", '...', or (...),
// and the closing character can appear inside it only escaped.
func scanLinkTitle(s string, i int) int {
	if i >= len(s) {
		return -1
	}
	var end byte
	switch s[i] {
	default:
		return -1
	case '"', '\'':
		end = s[i]
	case '(':
		end = ')'
	}
	for j := i + 1; j < len(s); j++ {
		switch {
		case s[j] == end:
			return j + 1 - i
		case s[j] == 0:
			return -1
		case isEscaped(s, j):
			j++
		}
	}
	return -1
}

// scanAutolinkURI returns the length of the URI autolink at s[i:],
// including its < > brackets, or -1.
func scanAutolinkURI(s string, i int) int {
	// CommonMark 0.30:
	//
	//	A scheme is any sequence of 2–32 characters beginning with an
	//	ASCII letter and followed by any combination of ASCII letters,
	//	digits, or the symbols plus (”+”), period (”.”), or hyphen (”-”).
	//
	//	An absolute URI, for these purposes, consists of a scheme followed by
	//	a colon (:) followed by zero or more characters other ASCII control
	//	characters, space, <, and >. If the URI includes these characters,
	//	they must be percent-encoded (e.g. %20 for a space).

	j := i
	if j+1 >= len(s) || s[j] != '<' || !isLetter(s[j+1]) {
		return -1
	}
	j++
	for j < len(s) && isScheme(s[j]) && j-(i+1) <= 32 {
		j++
	}
	if j-(i+1) < 2 || j-(i+1) > 32 || j >= len(s) || s[j] != ':' {
		return -1
	}
	j++
	for j < len(s) && isURL(s[j]) {
		j++
	}
	if j >= len(s) || s[j] != '>' {
		return -1
	}
	return j + 1 - i
}

// scanAutolinkEmail returns the length of the email autolink at s[i:],
// including its < > brackets, or -1.
func scanAutolinkEmail(s string, i int) int {
	// CommonMark 0.30:
	//
	//	An email address, for these purposes, is anything that matches
	//	the non-normative regex from the HTML5 spec:
	//
	//	/^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$/

	j := i
	if j+1 >= len(s) || s[j] != '<' || !isUser(s[j+1]) {
		return -1
	}
	j++
	for j < len(s) && isUser(s[j]) {
		j++
	}
	if j >= len(s) || s[j] != '@' {
		return -1
	}
	for {
		j++
		n, ok := skipDomainElem(s[j:])
		if !ok {
			return -1
		}
		j += n
		if j >= len(s) || s[j] != '.' && s[j] != '>' {
			return -1
		}
		if s[j] == '>' {
			break
		}
	}
	return j + 1 - i
}

// skipDomainElem reports the length of a leading domain element in s,
// along with whether there is one.
func skipDomainElem(s string) (int, bool) {
	// String of LDH, up to 63 in length, with LetterDigit
	// at both ends (1-letter/digit names are OK).
	// Aka /[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?/.
	if len(s) < 1 || !isLetterDigit(s[0]) {
		return 0, false
	}
	i := 1
	for i < len(s) && isLDH(s[i]) && i <= 63 {
		i++
	}
	if i > 63 || !isLetterDigit(s[i-1]) {
		return 0, false
	}
	return i, true
}

// isUser reports whether c is an email user byte.
func isUser(c byte) bool {
	// A-Za-z0-9 plus ".!#$%&'*+/=?^_`{|}~-"
	return c == '!' ||
		'#' <= c && c <= '\'' ||
		'*' <= c && c <= '+' ||
		'-' <= c && c <= '9' ||
		c == '=' ||
		c == '?' ||
		'A' <= c && c <= 'Z' ||
		'^' <= c && c <= '`' ||
		'a' <= c && c <= 'z' ||
		'{' <= c && c <= '~'
}

// isScheme reports whether c is a scheme character.
func isScheme(c byte) bool {
	return isLetterDigit(c) || c == '+' || c == '.' || c == '-'
}

// isURL reports whether c is a URL character.
func isURL(c byte) bool {
	return c > ' ' && c != '<' && c != '>'
}
