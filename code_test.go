// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"strings"
	"testing"
)

var backtickScanTests = []struct {
	s      string
	start  int
	n      int
	estart int
	end    int
}{
	{"`a`", 0, 1, 2, 3},
	{"``a`b``", 0, 2, 5, 7},
	{"a `b`", 2, 1, 4, 5},
	{"`a``", 0, 1, -1, -1},
	{"`a", 0, 1, -1, -1},
	{strings.Repeat("`", 81) + "x" + strings.Repeat("`", 81), 0, 81, -1, -1},
	{strings.Repeat("`", 80) + "x" + strings.Repeat("`", 80), 0, 80, 81, 161},
}

func TestBacktickScan(t *testing.T) {
	for _, tt := range backtickScanTests {
		var b backtickParser
		estart, end := b.scan(tt.s, tt.start, tt.n)
		if estart != tt.estart || end != tt.end {
			t.Errorf("scan(%q, %d, %d) = %d, %d, want %d, %d", tt.s, tt.start, tt.n, estart, end, tt.estart, tt.end)
		}
	}
}

func TestBacktickMemo(t *testing.T) {
	// A failed scan records the runs it saw,
	// so a later scan for a missing length fails at once.
	s := "` `` x ``"
	var b backtickParser
	if estart, _ := b.scan(s, 0, 1); estart != -1 {
		t.Fatalf("scan(%q, 0, 1) = %d, want -1", s, estart)
	}
	if !b.scanned || b.last[1] != 7 {
		t.Errorf("after failed scan: scanned=%v last[1]=%d, want true, 7", b.scanned, b.last[1])
	}
	if estart, end := b.scan(s, 2, 2); estart != 7 || end != 9 {
		t.Errorf("scan(%q, 2, 2) = %d, %d, want 7, 9", s, estart, end)
	}
	if estart, _ := b.scan(s, 7, 2); estart != -1 {
		t.Errorf("scan(%q, 7, 2) = %d, want -1", s, estart)
	}

	// A scan that starts before an earlier failure
	// must still find a closing run in between.
	s = "`a`"
	b = backtickParser{}
	if estart, _ := b.scan(s, 2, 1); estart != -1 {
		t.Fatalf("scan(%q, 2, 1) = %d, want -1", s, estart)
	}
	if estart, end := b.scan(s, 0, 1); estart != 2 || end != 3 {
		t.Errorf("scan(%q, 0, 1) after failure at 2 = %d, %d, want 2, 3", s, estart, end)
	}
}

func TestScanCodeSpan(t *testing.T) {
	var tests = []struct {
		s    string
		text string
		ok   bool
		end  int
	}{
		{"`a`b", "a", true, 3},
		{"`` a ` b ``", " a ` b ", true, 11},
		{"``x`", "", false, 2},
		{"`", "", false, 1},
	}
	for _, tt := range tests {
		c := new(Parser).newCursor(tt.s, nil)
		text, ok := c.scanCodeSpan()
		if text != tt.text || ok != tt.ok || c.pos != tt.end {
			t.Errorf("scanCodeSpan(%q) = %q, %v, end %d, want %q, %v, end %d", tt.s, text, ok, c.pos, tt.text, tt.ok, tt.end)
		}
	}
}

func TestCodeSpanText(t *testing.T) {
	var tests = []struct {
		in       string
		collapse bool
		out      string
	}{
		{"` a `", false, "Code \"a\"\n"},
		{"`a  b`", false, "Code \"a  b\"\n"},
		{"`a  b`", true, "Code \"a b\"\n"},
		{"`a\n b`", true, "Code \"a b\"\n"},
		{"`a\\`b`", false, "Code \"a\\\\\"\nPlain \"b`\"\n"},
	}
	for _, tt := range tests {
		p := &Parser{CollapseCodeSpace: tt.collapse}
		out := Dump(p.ParseInlines(tt.in, 0, nil))
		if out != tt.out {
			t.Errorf("ParseInlines(%q) with CollapseCodeSpace=%v:\nhave:\n%s\nwant:\n%s", tt.in, tt.collapse, out, tt.out)
		}
	}
}
