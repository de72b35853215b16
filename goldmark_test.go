// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
)

// A shaper prints the parts of an inline tree that both this package
// and goldmark record: text (with entities decoded and adjacent runs joined),
// code, raw HTML, breaks, emphasis levels, and link targets.
type shaper struct {
	out   strings.Builder
	text  strings.Builder // pending text
	depth int             // depth of pending text
}

func (s *shaper) flush() {
	if s.text.Len() > 0 {
		fmt.Fprintf(&s.out, "%stext %q\n", strings.Repeat("\t", s.depth), s.text.String())
		s.text.Reset()
	}
}

func (s *shaper) addText(depth int, t string) {
	if depth != s.depth {
		s.flush()
	}
	s.depth = depth
	s.text.WriteString(t)
}

func (s *shaper) node(depth int, format string, args ...any) {
	s.flush()
	s.out.WriteString(strings.Repeat("\t", depth))
	fmt.Fprintf(&s.out, format, args...)
	s.out.WriteString("\n")
}

// shape returns the shape of x.
func shape(x Inline) string {
	var s shaper
	s.inline(x, 0)
	s.flush()
	return s.out.String()
}

func (s *shaper) inline(x Inline, depth int) {
	switch x := x.(type) {
	case Inlines:
		for _, y := range x {
			s.inline(y, depth)
		}
	case *Plain:
		s.addText(depth, x.Text)
	case *Entity:
		s.addText(depth, x.Decode())
	case *Code:
		s.node(depth, "code %q", x.Text)
	case *HTMLTag:
		s.node(depth, "html %q", x.Text)
	case *SoftBreak:
		s.node(depth, "soft")
	case *HardBreak:
		s.node(depth, "hard")
	case *Emph:
		s.node(depth, "emph")
		s.inline(x.Inner, depth+1)
		s.flush()
	case *Strong:
		s.node(depth, "strong")
		s.inline(x.Inner, depth+1)
		s.flush()
	case *Link:
		s.node(depth, "link %q %q", x.URL, x.Title)
		s.inline(x.Inner, depth+1)
		s.flush()
	case *Image:
		s.node(depth, "image %q %q", x.URL, x.Title)
		s.inline(x.Inner, depth+1)
		s.flush()
	default:
		panic(fmt.Sprintf("unexpected inline %T", x))
	}
}

// goldmarkShape returns the shape of goldmark's parse of the
// paragraph text in, preceded by the reference definitions refs.
func goldmarkShape(refs, in string) string {
	src := []byte(refs + "\n" + in + "\n")
	doc := goldmark.New().Parser().Parse(gtext.NewReader(src))
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if n.Kind() == ast.KindParagraph {
			var s shaper
			s.goldmark(n, src, 0)
			s.flush()
			return s.out.String()
		}
	}
	if doc.FirstChild() == nil {
		return ""
	}
	return fmt.Sprintf("no paragraph: %s\n", doc.FirstChild().Kind())
}

func (s *shaper) goldmark(n ast.Node, src []byte, depth int) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			s.addText(depth, html.UnescapeString(mdUnescape(string(c.Segment.Value(src)))))
			if c.HardLineBreak() {
				s.node(depth, "hard")
			} else if c.SoftLineBreak() {
				s.node(depth, "soft")
			}
		case *ast.String:
			s.addText(depth, string(c.Value))
		case *ast.CodeSpan:
			var b strings.Builder
			for t := c.FirstChild(); t != nil; t = t.NextSibling() {
				if t, ok := t.(*ast.Text); ok {
					b.Write(t.Segment.Value(src))
				}
			}
			s.node(depth, "code %q", b.String())
		case *ast.RawHTML:
			var b strings.Builder
			for i := 0; i < c.Segments.Len(); i++ {
				seg := c.Segments.At(i)
				b.Write(seg.Value(src))
			}
			s.node(depth, "html %q", b.String())
		case *ast.Emphasis:
			if c.Level == 2 {
				s.node(depth, "strong")
			} else {
				s.node(depth, "emph")
			}
			s.goldmark(c, src, depth+1)
			s.flush()
		case *ast.Link:
			s.node(depth, "link %q %q", c.Destination, c.Title)
			s.goldmark(c, src, depth+1)
			s.flush()
		case *ast.Image:
			s.node(depth, "image %q %q", c.Destination, c.Title)
			s.goldmark(c, src, depth+1)
			s.flush()
		case *ast.AutoLink:
			s.node(depth, "link %q %q", c.URL(src), "")
			s.addText(depth+1, string(c.Label(src)))
			s.flush()
		default:
			s.node(depth, "%s", c.Kind())
		}
	}
}
