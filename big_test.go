// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"fmt"
	"strings"
	"testing"
)

var rep = strings.Repeat

func repf(f func(int) string, n int) string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = f(i)
	}
	return strings.Join(out, "")
}

// Many cases here derived from cmark-gfm/test/pathological_tests.py

var bigTests = []struct {
	name  string
	in    string
	text  string // ToText of the result; "" means the input
	count map[string]int
	dump  string
}{
	{
		name: "nested strong emph",
		in:   rep("*a **a ", 65000) + "b" + rep(" a** a*", 65000),
		// Only the first DefaultMaxDepth openers nest.
		text:  rep("a a ", 64) + rep("*a **a ", 65000-64) + "b" + rep(" a a", 64) + rep(" a** a*", 65000-64),
		count: map[string]int{"Emph \"*\"": 64, "Strong \"**\"": 64},
	},
	{
		name: "many emph closers with no openers",
		in:   rep("a_ ", 65000),
	},
	{
		name: "many emph openers with no closers",
		in:   rep("_a ", 65000),
	},
	{
		name: "many link closers with no openers",
		in:   rep("a]", 65000),
	},
	{
		name: "many link openers with no closers",
		in:   rep("[a", 65000),
	},
	{
		name: "mismatched openers and closers",
		in:   rep("*a_ ", 50000),
	},
	{
		name: "openers and closers multiple of 3",
		in:   "a**b" + rep("c* ", 50000),
	},
	{
		name: "link openers and emph closers",
		in:   rep("[ a_", 50000),
	},
	{
		name: "pattern [ (]( repeated",
		in:   rep("[ (](", 80000),
	},
	{
		name: "pattern [a](b ( repeated",
		in:   rep("[a](b (", 80000),
	},
	{
		name:  "pattern ![[]() repeated",
		in:    rep("![[]()", 160000),
		text:  rep("![", 160000),
		count: map[string]int{"Link \"\" \"\"": 160000},
	},
	{
		name: "hard link/emph case",
		in:   "**x [a*b**c*](d)",
		dump: "Plain \"**x \"\n" +
			"Link \"d\" \"\"\n" +
			"\tPlain \"a\"\n" +
			"\tEmph \"*\"\n" +
			"\t\tPlain \"b\"\n" +
			"\tEmph \"*\"\n" +
			"\t\tPlain \"c\"\n",
	},
	{
		name: "nested brackets",
		in:   rep("[", 50000) + "a" + rep("]", 50000),
	},
	{
		name: "backticks",
		in:   repf(func(x int) string { return "e" + rep("`", x) }, 5000),
	},
	{
		name: "backticks2",
		in:   repf(func(x int) string { return "e" + rep("`", 5000-x) }, 5000),
	},
	{
		name: "unclosed links A",
		in:   rep("[a](<b", 30000),
	},
	{
		name: "unclosed links B",
		in:   rep("[a](b", 30000),
	},
	{
		name: "unclosed links C",
		in:   rep("[a](b\\#", 30000),
		text: rep("[a](b#", 30000),
	},
	{
		name: "unclosed <!--",
		in:   "</" + rep(" <!--", 30000),
	},
	{
		name: "unclosed <?",
		in:   "</" + rep(" <?", 30000),
	},
	{
		name: "unclosed <!X",
		in:   "</" + rep(" <!X", 30000),
	},
	{
		name: "unclosed <![CDATA[",
		in:   "</" + rep(" <![CDATA[", 30000),
	},
}

func compress(s string) string {
	var out []byte
	start := 0
S:
	for i := 0; i+4 < len(s); i++ {
		c := s[i]
		for j := i + 1; j < i+100 && j < len(s); j++ {
			if s[j] == c {
				n := 1
				w := j - i
				for j+w <= len(s) && s[i:i+w] == s[j:j+w] {
					j += w
					n++
				}
				if n > 2 {
					out = append(out, s[start:i]...)
					out = fmt.Appendf(out, "«%d:%s»", n, s[i:i+w])
					start = j
					i = start - 1
					continue S
				}
			}
		}
	}
	out = append(out, s[start:]...)
	return string(out)
}

func TestBig(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in -short mode")
	}
	for _, tt := range bigTests {
		t.Run(tt.name, func(t *testing.T) {
			list := ParseInlines(tt.in, 0, nil)
			if tt.dump != "" {
				if out := Dump(list); out != tt.dump {
					t.Fatalf("Dump(ParseInlines(%q)):\nhave:\n%s\nwant:\n%s", tt.in, out, tt.dump)
				}
				return
			}
			want := tt.text
			if want == "" {
				want = tt.in
			}
			if out := ToText(list); out != want {
				t.Fatalf("ToText(ParseInlines(%q)):\nhave %q\nwant %q", compress(tt.in), compress(out), compress(want))
			}
			if tt.count != nil {
				dump := Dump(list)
				for node, n := range tt.count {
					if have := strings.Count(dump, node); have != n {
						t.Errorf("ParseInlines(%q) has %d %s, want %d", compress(tt.in), have, node, n)
					}
				}
			}
		})
	}
}

func bench(b *testing.B, text string) {
	for i := 0; i < b.N; i++ {
		_ = ParseInlines(text, 0, nil)
	}
	b.SetBytes(int64(len(text)))
}

func BenchmarkBrackets(b *testing.B) {
	bench(b, rep("[", 10000)+"a"+rep("]", 10000))
}

func BenchmarkEmph(b *testing.B) {
	bench(b, rep("*a **a ", 1000)+"b"+rep(" a** a*", 1000))
}

func BenchmarkBackticks(b *testing.B) {
	bench(b, repf(func(x int) string { return "e" + rep("`", x) }, 1000))
}

func BenchmarkText(b *testing.B) {
	bench(b, rep("Some *emphasis*, a [link](/u \"t\"), `code`, and &amp; text.\n", 1000))
}
