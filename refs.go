// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// A Ref is a [link reference definition]: a label with a URL and optional title.
//
// [link reference definition]: https://spec.commonmark.org/0.31.2/#link-reference-definitions
type Ref struct {
	Label string // normalized label
	URL   string
	Title string
}

// Refs is a table of link reference definitions, keyed by normalized label.
// The zero value is an empty table ready to use,
// and a nil *Refs is an empty table that cannot be added to.
//
// A Refs is filled in before any text referring to it is parsed
// and is not modified by parsing, so after it is filled in
// it can be used by multiple goroutines at once.
type Refs struct {
	m map[string]*Ref
}

// Insert adds a definition of label to the table,
// unless the table already has one for the same normalized label,
// in which case it leaves the table unchanged and returns false.
// The first definition of a label wins.
func (r *Refs) Insert(label, url, title string) bool {
	key := normalizeLabel(label)
	if _, ok := r.m[key]; ok {
		return false
	}
	if r.m == nil {
		r.m = make(map[string]*Ref)
	}
	r.m[key] = &Ref{Label: key, URL: url, Title: title}
	return true
}

// Lookup returns the definition for label, if any.
func (r *Refs) Lookup(label string) (*Ref, bool) {
	if r == nil || len(r.m) == 0 {
		return nil, false
	}
	ref, ok := r.m[normalizeLabel(label)]
	return ref, ok
}

// Len returns the number of definitions in the table.
func (r *Refs) Len() int {
	if r == nil {
		return 0
	}
	return len(r.m)
}

// All returns the definitions in the table, sorted by label.
func (r *Refs) All() []*Ref {
	if r == nil {
		return nil
	}
	var list []*Ref
	for _, ref := range r.m {
		list = append(list, ref)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Label < list[j].Label
	})
	return list
}

// normalizeLabel returns the normalized label for s, for uniquely identifying that label.
func normalizeLabel(s string) string {
	// “To normalize a label, strip off the opening and closing brackets,
	// perform the Unicode case fold, strip leading and trailing spaces, tabs, and line endings,
	// and collapse consecutive internal spaces, tabs, and line endings to a single space.”
	s = strings.Trim(s, " \t\n")
	var b strings.Builder
	space := false
	hi := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ' ', '\t', '\n':
			space = true
			continue
		default:
			if space {
				b.WriteByte(' ')
				space = false
			}
			if 'A' <= c && c <= 'Z' {
				c += 'a' - 'A'
			}
			if c >= 0x80 {
				hi = true
			}
			b.WriteByte(c)
		}
	}
	s = b.String()
	if hi {
		// Table at https://www.unicode.org/Public/12.1.0/ucd/CaseFolding.txt.
		s = cases.Fold().String(s)
	}
	return s
}

// ParseReference parses a link reference definition at s[start:]
// and adds it to refs.
//
// The definition is a link label, a colon, a URL, and an optional title,
// separated by spaces and at most one newline each,
// ending at a newline (which is consumed) or the end of s.
// The title can only follow the URL after white space.
//
// If successful, ParseReference returns the offset just past the definition
// and ok=true. An earlier definition of the same label is not replaced,
// but the text still counts as a definition.
// Otherwise it returns start, false and leaves refs unchanged.
// If refs is nil, ParseReference only checks the syntax.
func (p *Parser) ParseReference(s string, start int, refs *Refs) (end int, ok bool) {
	if start < 0 || start >= len(s) || s[start] != '[' {
		return start, false
	}
	c := p.newCursor(s, nil)
	c.pos = start

	label, ok := c.linkLabel()
	if !ok || normalizeLabel(label) == "" {
		return start, false
	}
	if c.peek() != ':' {
		return start, false
	}
	c.advance()

	c.spnl()
	n := scanLinkURL(s, c.pos)
	if n <= 0 {
		return start, false
	}
	url := s[c.pos : c.pos+n]
	c.pos += n

	title := ""
	beforeTitle := c.save()
	c.spnl()
	if n := c.linkTitle(c.pos); n > 0 && c.pos > beforeTitle {
		title = s[c.pos : c.pos+n]
		c.pos += n
	} else {
		c.restore(beforeTitle)
	}

	c.takeWhile(func(ch byte) bool { return ch == ' ' })
	switch {
	case c.peek() == '\n':
		c.advance()
	case !c.eof():
		return start, false
	}

	if refs != nil {
		refs.Insert(label, cleanURL(url), cleanTitle(title))
	}
	return c.pos, true
}

// ParseReference parses a link reference definition using the default Parser settings.
func ParseReference(s string, start int, refs *Refs) (end int, ok bool) {
	var p Parser
	return p.ParseReference(s, start, refs)
}
