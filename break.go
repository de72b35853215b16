// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

// A HardBreak is an Inline representing a hard line break.
type HardBreak struct{}

func (*HardBreak) Inline() {}

func (x *HardBreak) printText(p *printer) {
	p.text("\n")
}

func (x *HardBreak) printTree(p *printer) {
	p.node("HardBreak")
}

// A SoftBreak is an Inline representing a soft line break (newline character).
type SoftBreak struct{}

func (*SoftBreak) Inline() {}

func (x *SoftBreak) printText(p *printer) {
	p.text("\n")
}

func (x *SoftBreak) printTree(p *printer) {
	p.node("SoftBreak")
}

// parseBreak is an [inlineParser] for a [SoftBreak] or [HardBreak].
// The caller has checked that the byte at c is a newline.
// The spaces before the newline were trimmed from the preceding text
// by parseText; the spaces after it are skipped here.
func parseBreak(c *cursor, list Inlines) Inlines {
	nl := c.pos
	c.advance()
	c.takeWhile(func(ch byte) bool { return ch == ' ' })

	// TODO: Do tabs count? That would be a mess.
	if nl >= 2 && c.s[nl-1] == ' ' && c.s[nl-2] == ' ' {
		return append(list, &HardBreak{})
	}
	return append(list, &SoftBreak{})
}
