// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"strings"

	"golang.org/x/net/html"
)

// An HTMLTag is an [Inline] representing a [raw HTML tag],
// including its < and > brackets.
//
// [raw HTML tag]: https://spec.commonmark.org/0.31.2/#raw-html
type HTMLTag struct {
	Text string
}

func (*HTMLTag) Inline() {}

func (x *HTMLTag) printText(p *printer) {}

func (x *HTMLTag) printTree(p *printer) {
	p.node("HTMLTag %q", x.Text)
}

// An Entity is an [Inline] representing an HTML entity or numeric
// character reference, such as &amp;, &#123;, or &#x12AB;.
// Text holds the reference as written, including the & and ;.
type Entity struct {
	Text string
}

func (*Entity) Inline() {}

// Decode returns the text the entity stands for.
// A reference to an unknown name decodes to itself.
func (x *Entity) Decode() string {
	return html.UnescapeString(x.Text)
}

func (x *Entity) printText(p *printer) {
	p.text(x.Decode())
}

func (x *Entity) printTree(p *printer) {
	p.node("Entity %q", x.Text)
}

// parseHTMLEntity is an [inlineParser] for an [Entity].
// An & that does not start an entity is plain text.
func parseHTMLEntity(c *cursor, list Inlines) Inlines {
	if n := scanEntity(c.s, c.pos); n > 0 {
		c.pos += n
		return append(list, &Entity{c.s[c.pos-n : c.pos]})
	}
	c.advance()
	return append(list, &Plain{"&"})
}

// scanEntity returns the length of the entity reference at s[i:],
// or -1 if there is none. The name of a named reference is not checked
// against the HTML entity list; it only has to look like one.
func scanEntity(s string, i int) int {
	if i >= len(s) || s[i] != '&' {
		return -1
	}
	j := i + 1
	if j < len(s) && s[j] == '#' {
		j++
		digit := isDigit
		if j < len(s) && (s[j] == 'x' || s[j] == 'X') {
			digit = isHexDigit
			j++
		}
		k := j
		for k < len(s) && digit(s[k]) && k-j < 8 {
			k++
		}
		if k == j || k >= len(s) || s[k] != ';' {
			return -1
		}
		return k + 1 - i
	}
	if j >= len(s) || !isLetter(s[j]) {
		return -1
	}
	k := j + 1
	for k < len(s) && isLetterDigit(s[k]) && k-j < 32 {
		k++
	}
	if k-j < 2 || k >= len(s) || s[k] != ';' {
		return -1
	}
	return k + 1 - i
}

// parseAutoLinkOrHTML is an [inlineParser] for an autolink or [HTMLTag].
// A < that starts neither is plain text.
func parseAutoLinkOrHTML(c *cursor, list Inlines) Inlines {
	if x, ok := c.parseAutoLink(); ok {
		return append(list, x)
	}
	if n := c.scanHTMLTag(c.pos); n > 0 {
		c.pos += n
		return append(list, &HTMLTag{c.s[c.pos-n : c.pos]})
	}
	c.advance()
	return append(list, &Plain{"<"})
}

// scanHTMLTag returns the length of the HTML tag at s[i:], or -1 if there is none.
//
// “An HTML tag consists of an open tag, a closing tag, an HTML comment,
// a processing instruction, a declaration, or a CDATA section.”
func (c *cursor) scanHTMLTag(i int) int {
	s := c.s
	if len(s)-i < 3 || s[i] != '<' {
		return -1
	}
	switch s[i+1] {
	default:
		return scanHTMLOpenTag(s, i)
	case '/':
		return scanHTMLClosingTag(s, i)
	case '!':
		switch s[i+2] {
		case '-':
			return c.scanHTMLComment(i)
		case '[':
			return c.scanHTMLMarker(i, "<![CDATA[", "]]>")
		default:
			// “A declaration consists of the string <!, an ASCII letter,
			// zero or more characters not including the character >, and the character >.”
			if !isLetter(s[i+2]) {
				return -1
			}
			return c.scanHTMLMarker(i, "<!", ">")
		}
	case '?':
		return c.scanHTMLMarker(i, "<?", "?>")
	}
}

// scanHTMLOpenTag returns the length of the HTML open tag at s[i:], or -1.
func scanHTMLOpenTag(s string, i int) int {
	// “An open tag consists of a < character, a tag name, zero or more attributes,
	// optional spaces, tabs, and up to one line ending, an optional / character, and a > character.”
	j, ok := scanTagName(s, i+1)
	if !ok {
		return -1
	}

	// zero or more attributes
	for {
		if j >= len(s) || s[j] != ' ' && s[j] != '\t' && s[j] != '\n' && s[j] != '/' && s[j] != '>' {
			return -1
		}
		k, ok := scanAttr(s, skipSpace(s, j))
		if !ok {
			break
		}
		j = k
	}

	// optional spaces, tabs, and up to one line ending
	j = skipSpace(s, j)

	// an optional / character
	if j < len(s) && s[j] == '/' {
		j++
	}

	// and a > character.
	if j >= len(s) || s[j] != '>' {
		return -1
	}
	return j + 1 - i
}

// scanHTMLClosingTag returns the length of the HTML closing tag at s[i:], or -1.
func scanHTMLClosingTag(s string, i int) int {
	// “A closing tag consists of the string </, a tag name,
	// optional spaces, tabs, and up to one line ending, and the character >.”
	if j, ok := scanTagName(s, i+2); ok {
		j = skipSpace(s, j)
		if j < len(s) && s[j] == '>' {
			return j + 1 - i
		}
	}
	return -1
}

// scanTagName scans a leading tag name from s[start:],
// returning the end location.
func scanTagName(s string, start int) (end int, ok bool) {
	// “A tag name consists of an ASCII letter followed by zero or more ASCII letters, digits, or hyphens (-).”
	if start >= len(s) || !isLetter(s[start]) {
		return
	}
	end = start + 1
	for end < len(s) && isLDH(s[end]) {
		end++
	}
	return end, true
}

// scanAttr scans a leading attr (or attr=value) from s[start:],
// returning the end location.
func scanAttr(s string, start int) (end int, ok bool) {
	// “An attribute consists of spaces, tabs, and up to one line ending,
	// an attribute name, and an optional attribute value specification.”
	end, ok = scanAttrName(s, start)
	if !ok {
		return
	}
	if endVal, ok := scanAttrValueSpec(s, end); ok {
		end = endVal
	}
	return end, true
}

// scanAttrName scans a leading attribute name from s[start:],
// returning the end location.
func scanAttrName(s string, start int) (end int, ok bool) {
	// “An attribute name consists of an ASCII letter, _, or :,
	// followed by zero or more ASCII letters, digits, _, ., :, or -.”
	if start >= len(s) || (!isLetter(s[start]) && s[start] != '_' && s[start] != ':') {
		return
	}
	end = start + 1
	for end < len(s) && (isLDH(s[end]) || s[end] == '_' || s[end] == '.' || s[end] == ':') {
		end++
	}
	return end, true
}

// scanAttrValueSpec scans a leading attribute value specification
// from s[start:], returning the end location.
func scanAttrValueSpec(s string, start int) (end int, ok bool) {
	// “An attribute value specification consists of
	// optional spaces, tabs, and up to one line ending,
	// a = character,
	// optional spaces, tabs, and up to one line ending,
	// and an attribute value.”
	end = skipSpace(s, start)
	if end >= len(s) || s[end] != '=' {
		return
	}
	end = skipSpace(s, end+1)

	// “A single-quoted attribute value consists of ',
	// zero or more characters not including ', and a final '.”
	// “A double-quoted attribute value consists of ",
	// zero or more characters not including ", and a final ".”
	if end < len(s) && (s[end] == '\'' || s[end] == '"') {
		i := strings.IndexByte(s[end+1:], s[end])
		if i < 0 {
			return
		}
		return end + 1 + i + 1, true
	}

	// “An unquoted attribute value is a nonempty string of characters
	// not including spaces, tabs, line endings, ", ', =, <, >, or `.”
	isAttrVal := func(c byte) bool {
		return c != ' ' && c != '\t' && c != '\n' &&
			c != '"' && c != '\'' &&
			c != '=' && c != '<' && c != '>' && c != '`'
	}
	i := end
	for i < len(s) && isAttrVal(s[i]) {
		i++
	}
	if i == end {
		return
	}
	return i, true
}

// scanHTMLComment returns the length of the HTML comment at c.s[i:], or -1.
func (c *cursor) scanHTMLComment(i int) int {
	// “An HTML comment consists of <!-- + text + -->,
	// where text does not start with > or ->,
	// does not end with -, and does not contain --.”
	s := c.s[i:]
	if strings.HasPrefix(s, "<!-->") {
		return len("<!-->")
	}
	if strings.HasPrefix(s, "<!--->") {
		return len("<!--->")
	}
	return c.scanHTMLMarker(i, "<!--", "-->")
}

// scanHTMLMarker is a generalized scanner for the
// various prefix/suffix-delimited HTML markers.
// If c.s[i:] starts with prefix and is followed eventually by suffix,
// scanHTMLMarker returns the length through the end of suffix.
// Otherwise it returns -1.
func (c *cursor) scanHTMLMarker(i int, prefix, suffix string) int {
	if !strings.HasPrefix(c.s[i:], prefix) {
		return -1
	}

	// To avoid quadratic behavior looking at <!-- <!-- <!-- <!-- ...
	// we record where a search for a terminator has failed
	// and don't bother to search again from there or later.
	var noEnd *int
	switch prefix {
	case "<![CDATA[":
		noEnd = &c.noCDATAEnd
	case "<!":
		noEnd = &c.noDeclEnd
	case "<!--":
		noEnd = &c.noCommentEnd
	case "<?":
		noEnd = &c.noProcInstEnd
	}
	from := i + len(prefix)
	if *noEnd > 0 && from >= *noEnd {
		return -1
	}
	if j := strings.Index(c.s[from:], suffix); j >= 0 {
		return len(prefix) + j + len(suffix)
	}
	*noEnd = from
	return -1
}
