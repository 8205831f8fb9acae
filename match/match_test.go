// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package match_test

import (
	"strings"
	"testing"

	"github.com/db47h/rlex"
	"github.com/db47h/rlex/match"
)

var testLang = rlex.MustCompile([]rlex.Rule{
	rlex.Func("WS", match.Space()),
	{Name: "NL", Match: rlex.Literals{"\n"}, LineBreaks: true},
	{Name: "STRING", Match: match.QuotedString('"'), Value: match.Unquote},
	{Name: "CHAR", Match: match.QuotedChar('\''), Value: match.Unquote},
	rlex.Func("NUMBER", match.Number('.')),
	rlex.Func("IDENT", match.UnicodeIdent()),
	rlex.Error("ERR"),
})

type res []string

type testData struct {
	name string
	in   string
	res  res
}

func runTests(t *testing.T, td []testData) {
	t.Helper()
	for _, sample := range td {
		t.Run(sample.name, func(t *testing.T) {
			l := testLang.Filtered(sample.in, "WS", "NL")
			for i := range sample.res {
				tok, err := l.Next()
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if tok == nil {
					t.Fatalf("\nGot     : end of input\nExpected: %v", sample.res[i])
				}
				if got := tok.String(); got != sample.res[i] {
					t.Errorf("\nGot     : %v\nExpected: %v", got, sample.res[i])
				}
			}
			tok, err := l.Next()
			if tok != nil || err != nil {
				t.Errorf("Got: %v, %v, Expected: end of input", tok, err)
			}
		})
	}
}

func Test_QuotedString(t *testing.T) {
	var td = []testData{
		{"str1", `"abcd\"\\\a\b\f\n\r\v\t"`, res{`1:1 STRING "abcd\"\\\a\b\f\n\r\v\t"`}},
		{"str2", `"\xcC"`, res{`1:1 STRING "\xcc"`}},
		{"str3", `"\U0010FFFF ∤"`, res{`1:1 STRING "\U0010ffff ∤"`}},
		{"str4", `"\w" x`, res{`1:1 ERR "\""`, `1:2 ERR "\\"`, `1:3 IDENT "w"`, `1:4 ERR "\""`, `1:6 IDENT "x"`}},
		{"str5", "\"a\nb", res{`1:1 ERR "\""`, `1:2 IDENT "a"`, `2:1 IDENT "b"`}},
		{"str6", `"\277" "\28"`, res{`1:1 STRING "\xbf"`, `1:8 ERR "\""`, `1:9 ERR "\\"`, `1:10 NUMBER "28"`, `1:12 ERR "\""`}},
		{"str7", `"\ud800"`, res{`1:1 ERR "\""`, `1:2 ERR "\\"`, `1:3 IDENT "ud800"`, `1:8 ERR "\""`}},
	}
	runTests(t, td)
}

func Test_QuotedChar(t *testing.T) {
	var td = []testData{
		{"char1", `'a' '\n' '\'' 'ab'`, res{`1:1 CHAR "a"`, `1:5 CHAR "\n"`, `1:10 CHAR "'"`, `1:15 ERR "'"`, `1:16 IDENT "ab"`, `1:18 ERR "'"`}},
		{"char2", `''`, res{`1:1 ERR "'"`, `1:2 ERR "'"`}},
		{"char3", `'\x41'`, res{`1:1 CHAR "A"`}},
	}
	runTests(t, td)
}

func Test_Number(t *testing.T) {
	var td = []testData{
		{"int10", "12 0 4", res{`1:1 NUMBER "12"`, `1:4 NUMBER "0"`, `1:6 NUMBER "4"`}},
		{"int2", "0b011 0b", res{`1:1 NUMBER "0b011"`, `1:7 ERR "0"`, `1:8 IDENT "b"`}},
		{"int16", "0x0f0 0x", res{`1:1 NUMBER "0x0f0"`, `1:7 ERR "0"`, `1:8 IDENT "x"`}},
		{"int8", "017 08", res{`1:1 NUMBER "017"`, `1:5 ERR "0"`, `1:6 NUMBER "8"`}},
		{"float1", ".23 1.23 10e3 10.e1 10e-2 13.23E+2", res{
			`1:1 NUMBER ".23"`, `1:5 NUMBER "1.23"`, `1:10 NUMBER "10e3"`,
			`1:15 NUMBER "10.e1"`, `1:21 NUMBER "10e-2"`, `1:27 NUMBER "13.23E+2"`}},
		{"float2", "1e", res{`1:1 ERR "1"`, `1:2 IDENT "e"`}},
		{"float3", ".b", res{`1:1 ERR "."`, `1:2 IDENT "b"`}},
		{"float4", "9a", res{`1:1 NUMBER "9"`, `1:2 IDENT "a"`}},
	}
	runTests(t, td)
}

func Test_UnicodeIdent(t *testing.T) {
	var td = []testData{
		{"ident1", "héllo _x9 日本語", res{`1:1 IDENT "héllo"`, `1:7 IDENT "_x9"`, `1:11 IDENT "日本語"`}},
		{"ident2", "a-b\nc", res{`1:1 IDENT "a"`, `1:2 ERR "-"`, `1:3 IDENT "b"`, `2:1 IDENT "c"`}},
	}
	runTests(t, td)
}

func TestDefaultIdent(t *testing.T) {
	id, goID := match.DefaultIdent(), match.UnicodeIdent()
	for _, td := range []struct {
		in     string
		n, goN int
	}{
		{"héllo_9 x", 8, 8},
		{"_x", -1, 2},
		{"Ⅻa", 4, 4},
		{"9a", -1, -1},
		{"a\u0301b", 4, 4},
	} {
		if n := id(td.in, 0); n != td.n {
			t.Errorf("DefaultIdent()(%q, 0) = %d, expected %d", td.in, n, td.n)
		}
		if n := goID(td.in, 0); n != td.goN {
			t.Errorf("UnicodeIdent()(%q, 0) = %d, expected %d", td.in, n, td.goN)
		}
	}
}

func TestSpace(t *testing.T) {
	sp := match.Space()
	for _, td := range []struct {
		in  string
		pos int
		n   int
	}{
		{"\t  x", 0, 4},
		{"x  ", 1, 2},
		{"\n", 0, -1},
		{" \n ", 0, 1},
		{"x", 0, -1},
		{"", 0, -1},
	} {
		if n := sp(td.in, td.pos); n != td.n {
			t.Errorf("Space()(%q, %d) = %d, expected %d", td.in, td.pos, n, td.n)
		}
	}
}

func TestUnquote(t *testing.T) {
	for _, td := range []struct {
		in, out string
	}{
		{`"a\tb"`, "a\tb"},
		{`'x'`, "x"},
		{`"é\x41"`, "éA"},
		{`"bad`, `"bad`},
		{`"a"b`, `"a"b`},
		{``, ``},
	} {
		if out := match.Unquote(td.in); out != td.out {
			t.Errorf("Unquote(%q) = %q, expected %q", td.in, out, td.out)
		}
	}
}

func TestDFA(t *testing.T) {
	for _, bad := range []string{`[a-z`, `(ab`, `a*`} {
		if f, err := match.DFA(bad); err == nil || f != nil {
			t.Errorf("DFA(%q): expected an error", bad)
		}
	}
	word := match.MustDFA(`[a-z]+[0-9]*`)
	alt := match.MustDFA(`a|ab`)
	for _, td := range []struct {
		f   rlex.MatchFunc
		in  string
		pos int
		n   int
	}{
		{word, "abc12 x", 0, 5},
		{word, "abc12 x", 5, -1},
		{word, "abc12 x", 6, 1},
		{word, "12", 0, -1},
		{alt, "abc", 0, 2},
		{alt, "ac", 0, 1},
		{alt, strings.Repeat("x", 1<<16) + "ab", 1 << 16, 2},
		{alt, "xa", 1, 1},
		{alt, "a", 1, -1},
	} {
		if n := td.f(td.in, td.pos); n != td.n {
			t.Errorf("DFA match %q at %d = %d, expected %d", td.in, td.pos, n, td.n)
		}
	}
}
