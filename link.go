// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"strings"
)

// Link and Image have the same underlying struct,
// so that parseImageOpen can convert a *Link to an *Image.

// A Link is an [Inline] representing a [link]:
// an inline link, a resolved reference link, or an autolink.
//
// [link]: https://spec.commonmark.org/0.31.2/#links
type Link struct {
	Inner Inlines
	URL   string
	Title string
}

// An Image is an [Inline] representing an [image].
// Inner is the image description.
//
// [image]: https://spec.commonmark.org/0.31.2/#images
type Image struct {
	Inner Inlines
	URL   string
	Title string
}

func (*Link) Inline() {}

func (x *Link) printText(p *printer) {
	x.Inner.printText(p)
}

func (x *Link) printTree(p *printer) {
	p.node("Link %q %q", x.URL, x.Title)
	p.inner(x.Inner)
}

func (*Image) Inline() {}

func (x *Image) printText(p *printer) {
	x.Inner.printText(p)
}

func (x *Image) printTree(p *printer) {
	p.node("Image %q %q", x.URL, x.Title)
	p.inner(x.Inner)
}

// parseLinkOpen is an [inlineParser] for a link starting with [.
// The caller has checked that the byte at c is [.
func parseLinkOpen(c *cursor, list Inlines) Inlines {
	return append(list, c.parseBracket()...)
}

// parseImageOpen is an [inlineParser] for an image starting with ![.
// The caller has checked that the byte at c is !.
// If the bracket that follows is not a link, the ! is plain text.
func parseImageOpen(c *cursor, list Inlines) Inlines {
	c.advance()
	if c.peek() != '[' {
		return append(list, &Plain{"!"})
	}
	x := c.parseBracket()
	if len(x) == 1 {
		if link, ok := x[0].(*Link); ok {
			return append(list, (*Image)(link))
		}
	}
	list = append(list, &Plain{"!"})
	return append(list, x...)
}

// parseBracket parses the link starting at the [ under c.
// It tries, in order, an inline link [label](url "title"),
// a reference link [label][ref], [label][], or [label],
// and finally the label as bracketed text.
// If there is no label at all, the [ is plain text.
func (c *cursor) parseBracket() Inlines {
	if c.depth >= c.p.maxDepth() {
		c.advance()
		return Inlines{&Plain{"["}}
	}
	label, ok := c.linkLabel()
	if !ok {
		c.advance()
		return Inlines{&Plain{"["}}
	}
	endLabel := c.pos

	if link, ok := c.parseInlineLink(label); ok {
		return Inlines{link}
	}
	c.restore(endLabel)

	ref := label
	c.pos += scanSpacechars(c.s, c.pos)
	if c.peek() == '[' {
		if label2, ok := c.linkLabel(); ok {
			if label2 != "" {
				ref = label2
			}
		} else {
			c.restore(endLabel)
		}
	} else {
		c.restore(endLabel)
	}
	if r, ok := c.refs.Lookup(ref); ok {
		return Inlines{&Link{Inner: c.reparse(label, c.refs), URL: r.URL, Title: r.Title}}
	}

	c.restore(endLabel)
	x := Inlines{&Plain{"["}}
	x = append(x, c.reparse(label, c.refs)...)
	return append(x, &Plain{"]"})
}

// parseInlineLink parses the (url "title") following a link label.
// The label text is parsed without reference definitions:
// a link cannot contain another link resolved by reference.
func (c *cursor) parseInlineLink(label string) (*Link, bool) {
	if c.peek() != '(' {
		return nil, false
	}
	s := c.s
	i := c.pos + 1
	i += scanSpacechars(s, i)
	urlStart := i
	urlEnd := i + scanLinkURL(s, i)
	i = urlEnd + scanSpacechars(s, urlEnd)

	// A title must be separated from the URL by space.
	titleStart, titleEnd := i, i
	if i > urlEnd {
		if n := c.linkTitle(i); n > 0 {
			titleEnd = i + n
		}
	}
	i = titleEnd + scanSpacechars(s, titleEnd)
	if i >= len(s) || s[i] != ')' {
		return nil, false
	}
	c.pos = i + 1

	return &Link{
		Inner: c.reparse(label, nil),
		URL:   cleanURL(s[urlStart:urlEnd]),
		Title: cleanTitle(s[titleStart:titleEnd]),
	}, true
}

// linkTitle returns scanLinkTitle(c.s, i).
// A title with no closing delimiter scans to the end of the text,
// and a scan from any later offset with the same delimiter would too,
// so linkTitle records where such a scan started and fails at once
// from there on. Input like [a](b (c [a](b (c ... would otherwise
// take quadratic time.
func (c *cursor) linkTitle(i int) int {
	if i >= len(c.s) {
		return -1
	}
	var noEnd *int
	switch c.s[i] {
	case '"':
		noEnd = &c.noTitleEnd[0]
	case '\'':
		noEnd = &c.noTitleEnd[1]
	case '(':
		noEnd = &c.noTitleEnd[2]
	default:
		return -1
	}
	if *noEnd > 0 && i >= *noEnd {
		return -1
	}
	n := scanLinkTitle(c.s, i)
	if n < 0 && i > 0 && strings.IndexByte(c.s[i:], 0) < 0 {
		// A NUL ends the scan early, so only a scan
		// that reached the end of the text is recorded.
		*noEnd = i
	}
	return n
}

// linkLabel scans the link label starting at the [ under c.
// If the label is closed, linkLabel advances c past the closing ]
// and returns the text between the brackets.
// Otherwise it leaves c unchanged and returns ok=false.
//
// Brackets nest. Code spans, autolinks, and HTML tags are skipped
// whole, so that a ] inside them does not end the label,
// and a backslash-escaped punctuation byte is skipped with its backslash.
//
// When a scan reaches the end of the text, every [ that it saw
// without a matching ] (including the first) can never start a label,
// because a scan from any of them would run to the end of the text the same way.
// linkLabel records those offsets so that it can fail without scanning
// when asked to start at one of them. Without that, input like [[[[[[...
// would take quadratic time.
func (c *cursor) linkLabel() (label string, ok bool) {
	start := c.save()
	if c.noLabel[start] {
		return "", false
	}

	open := []int{start}
	c.advance()
	for !c.eof() {
		switch c.peek() {
		case '`':
			c.scanCodeSpan()
		case '<':
			n := scanAutolinkURI(c.s, c.pos)
			if n < 0 {
				n = scanAutolinkEmail(c.s, c.pos)
			}
			if n < 0 {
				n = c.scanHTMLTag(c.pos)
			}
			c.pos += max(n, 1)
		case '[':
			open = append(open, c.pos)
			c.advance()
		case ']':
			open = open[:len(open)-1]
			c.advance()
			if len(open) == 0 {
				return c.s[start+1 : c.pos-1], true
			}
		case '\\':
			c.advance()
			if isPunct(c.peek()) {
				c.advance()
			}
		default:
			c.advance()
		}
	}

	if c.noLabel == nil {
		c.noLabel = make(map[int]bool)
	}
	for _, i := range open {
		c.noLabel[i] = true
	}
	c.restore(start)
	return "", false
}

// parseAutoLink parses the URI or email autolink at the < under c.
// The link text is the address with any entities in it decoded;
// the URL is the address as written, with mailto: added for an email.
func (c *cursor) parseAutoLink() (*Link, bool) {
	url := ""
	n := scanAutolinkURI(c.s, c.pos)
	if n < 0 {
		n = scanAutolinkEmail(c.s, c.pos)
		url = "mailto:"
	}
	if n < 0 {
		return nil, false
	}
	text := c.s[c.pos+1 : c.pos+n-1]
	c.pos += n
	return &Link{Inner: textWithEntities(text), URL: url + text}, true
}

// textWithEntities splits s into Plain and Entity nodes.
// Nothing but entities is recognized in s.
func textWithEntities(s string) Inlines {
	var list Inlines
	for s != "" {
		i := strings.IndexByte(s, '&')
		switch {
		case i < 0:
			i = len(s)
		case i == 0:
			if n := scanEntity(s, 0); n > 0 {
				list = append(list, &Entity{s[:n]})
				s = s[n:]
				continue
			}
			i = 1
		}
		list = append(list, &Plain{s[:i]})
		s = s[i:]
	}
	return mergePlain(list)
}

// cleanURL returns the link destination for the URL text s:
// surrounding space and < > brackets removed, and escapes removed.
func cleanURL(s string) string {
	s = trimSpace(s)
	if len(s) >= 2 && s[0] == '<' && s[len(s)-1] == '>' {
		s = s[1 : len(s)-1]
	}
	return mdUnescape(s)
}

// cleanTitle returns the link title for the title text s:
// the surrounding quotes or parentheses removed, and escapes removed.
func cleanTitle(s string) string {
	if len(s) >= 2 {
		switch first, last := s[0], s[len(s)-1]; {
		case first == '"' && last == '"',
			first == '\'' && last == '\'',
			first == '(' && last == ')':
			s = s[1 : len(s)-1]
		}
	}
	return mdUnescape(s)
}
