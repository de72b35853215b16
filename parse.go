// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

// DefaultMaxDepth is the nesting limit used when Parser.MaxDepth is zero.
// Emphasis that would open beyond it, and link labels that would be
// scanned beyond it, are kept as literal text instead.
const DefaultMaxDepth = 128

// A Parser is a Markdown inline parser configuration.
// The zero value is ready to use.
// A Parser is not modified by parsing and may be shared.
type Parser struct {
	// MaxDepth limits the nesting of emphasis and link labels.
	// Zero means DefaultMaxDepth.
	MaxDepth int

	// CollapseCodeSpace collapses each run of spaces and line endings
	// inside a code span to a single space.
	CollapseCodeSpace bool
}

func (p *Parser) maxDepth() int {
	if p.MaxDepth > 0 {
		return p.MaxDepth
	}
	return DefaultMaxDepth
}

// ParseInlines parses s[start:] as Markdown inline content,
// resolving reference links against refs, which may be nil.
// It consumes all of s[start:] and never fails: text that does not
// form a valid construct is returned as literal text.
func (p *Parser) ParseInlines(s string, start int, refs *Refs) Inlines {
	c := p.newCursor(s, refs)
	c.pos = min(max(start, 0), len(s))
	return c.parseAll()
}

// ParseInlines parses s[start:] using the default Parser settings.
func ParseInlines(s string, start int, refs *Refs) Inlines {
	var p Parser
	return p.ParseInlines(s, start, refs)
}

// A cursor is a position in the text being parsed,
// along with the state that the inline handlers share.
type cursor struct {
	p     *Parser
	s     string
	pos   int
	refs  *Refs
	depth int // emphasis and label nesting

	// noLabel records the offsets of [ brackets known to have
	// no matching ]. See linkLabel.
	noLabel map[int]bool

	backticks backtickParser

	// If nonzero, the offset from which a search for the terminator
	// of an HTML construct has already failed. See scanHTMLMarker.
	noCommentEnd  int
	noProcInstEnd int
	noCDATAEnd    int
	noDeclEnd     int

	// The same for link titles delimited by " ' and ( ). See linkTitle.
	noTitleEnd [3]int
}

func (p *Parser) newCursor(s string, refs *Refs) *cursor {
	return &cursor{p: p, s: s, refs: refs}
}

// sub returns a cursor for s, which is nested inside c.
func (c *cursor) sub(s string, refs *Refs) *cursor {
	return &cursor{p: c.p, s: s, refs: refs, depth: c.depth + 1}
}

// peek returns the byte at the cursor, or 0 at the end of the text.
func (c *cursor) peek() byte {
	if c.pos >= len(c.s) {
		return 0
	}
	return c.s[c.pos]
}

// advance moves the cursor forward one byte.
func (c *cursor) advance() { c.pos++ }

func (c *cursor) eof() bool { return c.pos >= len(c.s) }

// takeWhile advances past the bytes satisfying f and returns them.
func (c *cursor) takeWhile(f func(byte) bool) string {
	start := c.pos
	for c.pos < len(c.s) && f(c.s[c.pos]) {
		c.pos++
	}
	return c.s[start:c.pos]
}

// save and restore implement rewinding after a failed speculative match.
// Nothing but the position needs to be restored: no node is added
// to a result list until its handler has succeeded.
func (c *cursor) save() int       { return c.pos }
func (c *cursor) restore(pos int) { c.pos = pos }

// spnl skips spaces and at most one newline.
func (c *cursor) spnl() {
	nl := false
	for {
		switch c.peek() {
		case ' ':
			c.advance()
			continue
		case '\n':
			if !nl {
				nl = true
				c.advance()
				continue
			}
		}
		return
	}
}

// parseAll parses inlines until the end of the text.
func (c *cursor) parseAll() Inlines {
	var list Inlines
	for {
		var ok bool
		if list, ok = parseInline(c, list); !ok {
			break
		}
	}
	return mergePlain(list)
}

// reparse parses s, the text of a link label, as a nested inline sequence.
func (c *cursor) reparse(s string, refs *Refs) Inlines {
	return c.sub(s, refs).parseAll()
}
