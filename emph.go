// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"slices"
)

// Emphasis
//
// A delimiter run of * or _ opens emphasis if it is one to three bytes
// long and can open (see scanDelims). The parser then keeps parsing
// inlines into the body of the emphasis until it finds a run that can
// close it, so an opener never looks ahead and the body is parsed once.
//
// A single or double opener closes at the first run at least as long
// that can close, taking one or two bytes from it.
//
// A triple opener needs two closes. The first close (of length 1 or 2,
// or a closing triple, which counts as a single * followed by a double)
// is kept in the body as a plain marker. A later close of the other length
// ends the whole construct: the body before the marker becomes the inner
// node and the body after it is appended to the outer node.
// Closing 1 then 2 makes Strong(Emph(...)...); closing 2 then 1 makes
// Emph(Strong(...)...).
//
// If no close arrives before the end of the text, the opening run
// is plain text followed by whatever was parsed after it.

// parseEmph is an [inlineParser] for emphasis delimited by * or _.
// The caller has checked that the byte at c is * or _,
// and that an _ is not preceded by a letter, digit, or _.
func parseEmph(c *cursor, list Inlines) Inlines {
	n, canOpen, _ := c.scanDelims(c.peek())
	open := c.s[c.pos : c.pos+n]
	c.pos += n
	if !canOpen || c.depth >= c.p.maxDepth() {
		return append(list, &Plain{open})
	}

	c.depth++
	var x Inlines
	if n == 3 {
		x = c.parseTripleEmph(open)
	} else {
		x = c.parseEmphBody(open)
	}
	c.depth--
	return append(list, x...)
}

// scanDelims measures the run of ch at c without consuming it,
// reporting its length and whether it can open or close emphasis.
//
// A run can open if it is one to three bytes and not followed by space.
// It can close if it is one to three bytes and not preceded by space.
// An _ run additionally cannot open after a letter or digit
// and cannot close before one.
// The start of the text counts as a newline and the end as non-space.
func (c *cursor) scanDelims(ch byte) (n int, canOpen, canClose bool) {
	before := byte('\n')
	if c.pos > 0 {
		before = c.s[c.pos-1]
	}
	for c.pos+n < len(c.s) && c.s[c.pos+n] == ch {
		n++
	}
	var after byte
	if c.pos+n < len(c.s) {
		after = c.s[c.pos+n]
	}

	canOpen = 1 <= n && n <= 3 && !isSpace(after)
	canClose = 1 <= n && n <= 3 && !isSpace(before)
	if ch == '_' {
		canOpen = canOpen && !isLetterDigit(before)
		canClose = canClose && !isLetterDigit(after)
	}
	return n, canOpen, canClose
}

// parseEmphBody parses the body of emphasis opened by open,
// which is * _ ** or __, up to its close.
func (c *cursor) parseEmphBody(open string) Inlines {
	ch, n := open[0], len(open)
	var inner Inlines
	for {
		if c.peek() == ch {
			if m, _, canClose := c.scanDelims(ch); canClose && m >= n {
				c.pos += n
				inner = mergePlain(inner)
				if n == 1 {
					return Inlines{&Emph{Marker: open, Inner: inner}}
				}
				return Inlines{&Strong{Marker: open, Inner: inner}}
			}
		}
		var ok bool
		if inner, ok = parseInline(c, inner); !ok {
			break
		}
	}
	return append(Inlines{&Plain{open}}, inner...)
}

// parseTripleEmph parses the body of emphasis opened by open,
// which is *** or ___, up to its second close.
func (c *cursor) parseTripleEmph(open string) Inlines {
	ch := open[0]
	var inner Inlines
	first := -1 // index in inner of the marker for the first close
	firstN := 0 // length of the first close
	for {
		if c.peek() == ch {
			if m, _, canClose := c.scanDelims(ch); canClose && m != firstN {
				switch {
				case firstN == 1 && m > 2:
					m = 2
				case firstN == 2:
					m = 1
				case m == 3:
					m = 1
				}
				c.pos += m
				if first < 0 {
					first, firstN = len(inner), m
					inner = append(inner, &Plain{c.s[c.pos-m : c.pos]})
					continue
				}
				before, after := excise(inner, first)
				if firstN == 1 {
					emph := &Emph{Marker: open[:1], Inner: before}
					return Inlines{&Strong{Marker: open[:2], Inner: mergePlain(append(Inlines{emph}, after...))}}
				}
				strong := &Strong{Marker: open[:2], Inner: before}
				return Inlines{&Emph{Marker: open[:1], Inner: mergePlain(append(Inlines{strong}, after...))}}
			}
		}
		var ok bool
		if inner, ok = parseInline(c, inner); !ok {
			break
		}
	}
	return append(Inlines{&Plain{open}}, inner...)
}

// excise splits inner around the first-close marker at index i,
// returning fresh copies of the nodes before and after it.
// The marker itself is dropped: its bytes were the first close.
func excise(inner Inlines, i int) (before, after Inlines) {
	if _, ok := inner[i].(*Plain); !ok {
		panic("inline: emphasis marker is not plain text")
	}
	before = mergePlain(slices.Clone(inner[:i]))
	after = mergePlain(slices.Clone(inner[i+1:]))
	return before, after
}
