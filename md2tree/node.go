// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"rsc.io/inline"
)

// A node is an inline in the form written by the yaml and json formats.
type node struct {
	Kind   string  `yaml:"kind" json:"kind"`
	Text   string  `yaml:"text,omitempty" json:"text,omitempty"`
	Marker string  `yaml:"marker,omitempty" json:"marker,omitempty"`
	URL    string  `yaml:"url,omitempty" json:"url,omitempty"`
	Title  string  `yaml:"title,omitempty" json:"title,omitempty"`
	Inner  []*node `yaml:"inner,omitempty" json:"inner,omitempty"`
}

// toNodes converts each paragraph to a list of nodes.
func toNodes(paras []inline.Inlines) [][]*node {
	out := make([][]*node, 0, len(paras))
	for _, para := range paras {
		out = append(out, toNodeList(para))
	}
	return out
}

func toNodeList(list inline.Inlines) []*node {
	var out []*node
	for _, x := range list {
		out = append(out, toNode(x))
	}
	return out
}

func toNode(x inline.Inline) *node {
	switch x := x.(type) {
	case *inline.Plain:
		return &node{Kind: "plain", Text: x.Text}
	case *inline.Code:
		return &node{Kind: "code", Text: x.Text}
	case *inline.HTMLTag:
		return &node{Kind: "html", Text: x.Text}
	case *inline.Entity:
		return &node{Kind: "entity", Text: x.Text}
	case *inline.SoftBreak:
		return &node{Kind: "softbreak"}
	case *inline.HardBreak:
		return &node{Kind: "hardbreak"}
	case *inline.Emph:
		return &node{Kind: "emph", Marker: x.Marker, Inner: toNodeList(x.Inner)}
	case *inline.Strong:
		return &node{Kind: "strong", Marker: x.Marker, Inner: toNodeList(x.Inner)}
	case *inline.Link:
		return &node{Kind: "link", URL: x.URL, Title: x.Title, Inner: toNodeList(x.Inner)}
	case *inline.Image:
		return &node{Kind: "image", URL: x.URL, Title: x.Title, Inner: toNodeList(x.Inner)}
	}
	panic(fmt.Sprintf("md2tree: unexpected inline %T", x))
}
