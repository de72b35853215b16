// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"bytes"
	"fmt"
)

type printer struct {
	buf   bytes.Buffer
	depth int
}

// text writes literal text, for ToText.
func (p *printer) text(list ...string) {
	for _, s := range list {
		p.buf.WriteString(s)
	}
}

// node writes a line of the tree, for Dump,
// indented one tab per level of nesting.
func (p *printer) node(format string, args ...any) {
	for i := 0; i < p.depth; i++ {
		p.buf.WriteByte('\t')
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

// inner writes the children of the node just written.
func (p *printer) inner(x Inlines) {
	p.depth++
	x.printTree(p)
	p.depth--
}

// Dump returns a textual tree of x, one node per line,
// with children indented by a tab below their parent.
// For example, Dump of the parse of "*a* [b](/u)" is
//
//	Emph "*"
//		Plain "a"
//	Plain " "
//	Link "/u" ""
//		Plain "b"
func Dump(x Inline) string {
	var p printer
	x.printTree(&p)
	return p.buf.String()
}

// ToText returns the plain text of x:
// the text of every node, with entities decoded,
// line breaks as newlines, and HTML tags omitted.
func ToText(x Inline) string {
	var p printer
	x.printText(&p)
	return p.buf.String()
}
