// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import "testing"

var toTextTests = []struct {
	in  string
	out string
}{
	{"a *b* &amp; <i>c</i>\nd", "a b & c\nd"},
	{"a  \nb", "a\nb"},
	{"`x` y", "x y"},
	{"[a](/u) ![b](/i)", "a b"},
	{"<http://x/?a&amp;b>", "http://x/?a&b"},
	{`\*a\*`, "*a*"},
	{"&#65;&#x42;&unknown;", "AB&unknown;"},
}

func TestToText(t *testing.T) {
	for _, tt := range toTextTests {
		if out := ToText(ParseInlines(tt.in, 0, nil)); out != tt.out {
			t.Errorf("ToText(ParseInlines(%q)) = %q, want %q", tt.in, out, tt.out)
		}
	}
}

func TestDump(t *testing.T) {
	x := Inlines{
		&Plain{"a"},
		&Link{
			Inner: Inlines{&Emph{"*", Inlines{&Plain{"b"}}}, &HardBreak{}},
			URL:   "/u",
			Title: "t",
		},
		&Entity{"&amp;"},
		&HTMLTag{"<br>"},
		&SoftBreak{},
		&Strong{"__", Inlines{&Code{"c"}}},
	}
	want := "Plain \"a\"\n" +
		"Link \"/u\" \"t\"\n" +
		"\tEmph \"*\"\n" +
		"\t\tPlain \"b\"\n" +
		"\tHardBreak\n" +
		"Entity \"&amp;\"\n" +
		"HTMLTag \"<br>\"\n" +
		"SoftBreak\n" +
		"Strong \"__\"\n" +
		"\tCode \"c\"\n"
	if out := Dump(x); out != want {
		t.Errorf("Dump:\nhave:\n%s\nwant:\n%s", out, want)
	}
	if out, want := ToText(x), "ab\n&\nc"; out != want {
		t.Errorf("ToText = %q, want %q", out, want)
	}
}
