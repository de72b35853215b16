// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

// maxBackticks is the maximum number of backticks allowed for an inline code span.
// To avoid super-linear (not quite quadratic) behavior, we need to track the last position
// where a run of exactly N backticks was seen, for each possible N, rather than scan
// backward to find them. This means we must place some limit on N (or use a map).
// cmark-gfm imposes a limit of 80, which seems good enough.
// (If your backticks don't fit on a punch card, you can't use them!)
const maxBackticks = 80

// A backtickParser holds the state for scanCodeSpan looking for backticks.
type backtickParser struct {
	last    [maxBackticks]int // last[n-1] = start offset of the final run of n backticks seen
	scanned bool              // whether a scan has run off the end of the text
	from    int               // offset from which every run has been recorded
}

// scan looks for the end of a code span opened by the run of n backticks
// at s[start:start+n]. If there is one, scan returns the start and end
// offsets of the closing run. Otherwise it returns -1, -1.
//
// The naive implementation of backtick scanning would take O(n√n) time on an input like
//
//	` `` ``` ```` ````` `````` ``````` ````````
//
// It's not quite quadratic, because you can only make O(√n) scans of suffixes of a string of
// length n, but those will still do O(n√n) character comparisons because there are so many
// more backtick runs toward the start of the string than toward the end.
//
// Successful scans are always fine: they consume all the text they scanned.
// To avoid O(n√n) behavior, during an unsuccessful scan for any length, we record the
// last location of every run of n backticks for all n, in an array indexed by n-1.
// Then, the next time we do a scan from a later point in the string,
// we can tell whether it will be successful by checking whether start < last[n-1].
// If not, there's no terminator out there and we can avoid scanning.
// Otherwise, there's a guaranteed terminator, so a successful scan
// pays for itself by shortening s by the scan amount.
//
// Link labels are scanned ahead and then reparsed, so a scan can start
// before the point where an earlier scan failed. The record only covers
// the text after that point, so the shortcut is only taken past it.
func (b *backtickParser) scan(s string, start, n int) (estart, end int) {
	if n > len(b.last) || b.scanned && start+n >= b.from && b.last[n-1] < start+n {
		return -1, -1
	}
	for end = start + n; end < len(s); {
		if s[end] != '`' {
			end++
			continue
		}
		estart = end
		for end < len(s) && s[end] == '`' {
			end++
		}
		m := end - estart
		if m <= len(b.last) && b.last[m-1] < estart {
			b.last[m-1] = estart
		}
		if m == n {
			return estart, end
		}
	}
	if !b.scanned || start+n < b.from {
		b.from = start + n
	}
	b.scanned = true
	return -1, -1
}

// scanCodeSpan scans the code span starting at the backtick under c.
// If the span is closed, scanCodeSpan advances c past it and returns its text.
// Otherwise it advances c past the opening backtick run only,
// so that ``x` is not a single backtick followed by a code span.
func (c *cursor) scanCodeSpan() (text string, ok bool) {
	start := c.pos
	ticks := c.takeWhile(func(ch byte) bool { return ch == '`' })
	estart, end := c.backticks.scan(c.s, start, len(ticks))
	if estart < 0 {
		return "", false
	}
	c.pos = end
	return c.s[start+len(ticks) : estart], true
}

// parseCodeSpan is an [inlineParser] for a [Code],
// which is an n-backtick-delimited code span for some n.
// An unclosed opening run is plain text.
func parseCodeSpan(c *cursor, list Inlines) Inlines {
	start := c.pos
	text, ok := c.scanCodeSpan()
	if !ok {
		return append(list, &Plain{c.s[start:c.pos]})
	}
	text = trimSpace(text)
	if c.p.CollapseCodeSpace {
		text = collapseSpace(text)
	}
	return append(list, &Code{text})
}
