// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"strings"
)

// An Inline is an inline Markdown element, one of
// [Plain], [Code], [HTMLTag], [Entity],
// [HardBreak], [SoftBreak],
// [Link], [Image], [Emph], and [Strong].
type Inline interface {
	Inline()

	printText(*printer)
	printTree(*printer)
}

// An Inlines is an [Inline] that represents a concatenation of Inlines.
type Inlines []Inline

func (Inlines) Inline() {}

func (x Inlines) printText(p *printer) {
	for _, inl := range x {
		inl.printText(p)
	}
}

func (x Inlines) printTree(p *printer) {
	for _, inl := range x {
		inl.printTree(p)
	}
}

// A Plain is an [Inline] that represents plain textual content.
type Plain struct {
	Text string
}

func (*Plain) Inline() {}

func (x *Plain) printText(p *printer) { p.text(x.Text) }
func (x *Plain) printTree(p *printer) { p.node("Plain %q", x.Text) }

// A Code is an [Inline] that represents a code span.
type Code struct {
	Text string
}

func (*Code) Inline() {}

func (x *Code) printText(p *printer) { p.text(x.Text) }
func (x *Code) printTree(p *printer) { p.node("Code %q", x.Text) }

// A Strong is an [Inline] that represents strong emphasis (bold text).
type Strong struct {
	Marker string
	Inner  Inlines
}

func (*Strong) Inline() {}

func (x *Strong) printText(p *printer) { x.Inner.printText(p) }

func (x *Strong) printTree(p *printer) {
	p.node("Strong %q", x.Marker)
	p.inner(x.Inner)
}

// An Emph is an [Inline] representing emphasis (italic text).
type Emph struct {
	Marker string
	Inner  Inlines
}

func (*Emph) Inline() {}

func (x *Emph) printText(p *printer) { x.Inner.printText(p) }

func (x *Emph) printTree(p *printer) {
	p.node("Emph %q", x.Marker)
	p.inner(x.Inner)
}

// Parsing Inlines
//
// The parser is a recursive descent over the text, one inline at a time.
// parseInline looks at the byte under the cursor and hands off to the
// handler for it. Handlers that need nested content (emphasis, and link
// labels via reparse) call back into parseInline or parse a substring
// with a nested cursor.
//
// A handler that tries an interpretation and fails rewinds the cursor
// and emits the text it consumed as plain text instead. Nothing is
// appended to a result list until the handler knows what it has, so
// rewinding the position is all that is needed.
//
// Precedence falls out of the order of scanning: a link label scan skips
// over code spans and autolinks, so a ] inside them cannot end the label,
// and a link label is consumed as a unit before emphasis can see any of
// the delimiters inside it.
//
// Several scans would be accidentally quadratic if done naively
// (unclosed backtick runs, unclosed link labels, unclosed HTML comments).
// Each of those records enough about a failed scan to the end of the text
// that a later scan from a further position can fail immediately.

// An inlineParser parses the inline at c, appending the result to list
// and advancing c past it. The caller has checked that the byte
// at c is appropriate for this parser.
type inlineParser func(c *cursor, list Inlines) Inlines

// parseInline parses a single inline at c, appending it to list.
// It reports false only at the end of the text.
func parseInline(c *cursor, list Inlines) (Inlines, bool) {
	if c.eof() {
		return list, false
	}
	var parser inlineParser
	switch c.peek() {
	case '\n':
		parser = parseBreak
	case '`':
		parser = parseCodeSpan
	case '\\':
		parser = parseEscape
	case '&':
		parser = parseHTMLEntity
	case '<':
		parser = parseAutoLinkOrHTML
	case '_':
		// Intraword underscores never start emphasis.
		if i := c.pos; i > 0 && (isLetterDigit(c.s[i-1]) || c.s[i-1] == '_') {
			parser = parseText
			break
		}
		parser = parseEmph
	case '*':
		parser = parseEmph
	case '[':
		parser = parseLinkOpen
	case '!':
		parser = parseImageOpen
	default:
		parser = parseText
	}
	return parser(c, list), true
}

// parseText is an [inlineParser] for a run of plain text.
// The run always includes the byte at c and ends before
// the next byte that might start some other inline.
func parseText(c *cursor, list Inlines) Inlines {
	start := c.pos
	end := start + 1
	for end < len(c.s) && !isSpecial(c.s[end]) {
		end++
	}
	c.pos = end
	text := c.s[start:end]
	if c.peek() == '\n' {
		// Trailing spaces are part of the line break, not the text.
		text = strings.TrimRight(text, " \t")
	}
	if text == "" {
		return list
	}
	return append(list, &Plain{text})
}

// parseEscape is an [inlineParser] for a backslash escape,
// an escaped line ending (a [HardBreak]), or a lone backslash.
func parseEscape(c *cursor, list Inlines) Inlines {
	c.advance()
	switch ch := c.peek(); {
	case isPunct(ch):
		c.advance()
		return append(list, &Plain{c.s[c.pos-1 : c.pos]})
	case ch == '\n':
		c.advance()
		return append(list, &HardBreak{})
	}
	return append(list, &Plain{`\`})
}

// mergePlain merges each run of Plain nodes in list to a single Plain node,
// so that for example a*b is Plain{a*b} and not Plain{a}Plain{*}Plain{b}.
// (The * was parsed separately because it might have started emphasis.)
func mergePlain(list Inlines) Inlines {
	out := list[:0]
	start := 0
	for i := 0; ; i++ {
		if i < len(list) {
			if _, ok := list[i].(*Plain); ok {
				continue
			}
		}
		// Non-Plain or end of list.
		if start < i {
			out = append(out, mergePlainRun(list[start:i]))
		}
		if i >= len(list) {
			break
		}
		out = append(out, list[i])
		start = i + 1
	}
	return out
}

// mergePlainRun merges list, which is known to be entirely *Plain nodes,
// down to a single Plain node.
func mergePlainRun(list Inlines) *Plain {
	if len(list) == 1 {
		return list[0].(*Plain)
	}
	var all []string
	for _, pl := range list {
		all = append(all, pl.(*Plain).Text)
	}
	return &Plain{Text: strings.Join(all, "")}
}
