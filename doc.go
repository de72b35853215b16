// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package inline parses the inline content of Markdown text:
emphasis, strong emphasis, code spans, links, images, autolinks,
raw HTML, entities, and line breaks.

The input is the text of a single block, such as a paragraph,
already separated from the rest of the document:

	refs := new(inline.Refs)
	end, ok := inline.ParseReference(text, 0, refs)
	...
	list := inline.ParseInlines(text, end, refs)

[ParseReference] reads a link reference definition into a [Refs] table.
All definitions in a document should be read before any of its text is parsed,
since a reference link may appear before the definition it uses.

[ParseInlines] returns the text as a list of [Inline] nodes.
Parsing never fails: any text that does not form a complete construct,
such as an unmatched * or [, is returned as [Plain] text.
[Dump] and [ToText] print the result.

A [Parser] holds options. The zero Parser, which the package-level
functions use, limits nesting to [DefaultMaxDepth] and
leaves the space inside code spans as written.
*/
package inline
