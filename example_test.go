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

package rlex_test

import (
	"fmt"

	"github.com/db47h/rlex"
	"github.com/db47h/rlex/match"
)

func Example() {
	lang := rlex.MustCompile([]rlex.Rule{
		rlex.Regexp("WS", `[ \t]+`),
		rlex.Regexp("comment", `//.*?$`),
		rlex.Regexp("number", `0|[1-9][0-9]*`),
		{Name: "string", Match: rlex.Pattern(`"(?:\\["\\]|[^\n"\\])*"`), Value: match.Unquote},
		rlex.Literal("lparen", "("),
		rlex.Literal("rparen", ")"),
		rlex.Literal("keyword", "while", "if", "else", "moo", "cow"),
		{Name: "NL", Match: rlex.Literals{"\n"}, LineBreaks: true},
	})

	for t, err := range lang.Lexer("while (10) cow\nmoo").All() {
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(t)
	}

	// Output:
	// 1:1 keyword "while"
	// 1:6 WS " "
	// 1:7 lparen "("
	// 1:8 number "10"
	// 1:10 rparen ")"
	// 1:11 WS " "
	// 1:12 keyword "cow"
	// 1:15 NL "\n"
	// 2:1 keyword "moo"
}

func Example_keywords() {
	lang := rlex.MustCompile([]rlex.Rule{
		{Name: "ws", Match: rlex.Pattern(`\s+`), LineBreaks: true},
		rlex.Regexp("number", `0|[1-9][0-9]*`),
		{Name: "IDEN", Match: rlex.Pattern(`[a-zA-Z]+`), Keywords: rlex.Keywords{"KW": {"while", "moo"}}},
		{Name: "ANY", Match: rlex.Pattern(`.`), Keywords: rlex.Keywords{"paren": {"(", ")"}}},
	})

	toks, err := lang.Filtered("while (10) cow\nmoo", "ws").Collect()
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, t := range toks {
		fmt.Println(t.Type, t.Text)
	}

	// Output:
	// KW while
	// paren (
	// number 10
	// paren )
	// IDEN cow
	// KW moo
}

// With FallbackRuns, input that no rule matches is grouped into a single
// fallback token.
//
func Example_fallbackRuns() {
	lang := rlex.MustCompile([]rlex.Rule{
		{Name: "ws", Match: rlex.Pattern(`[\s\p{Zs}]+`), LineBreaks: true},
		rlex.Func("word", match.DefaultIdent()),
		rlex.Fallback("op"),
	}, rlex.FallbackRuns(true))

	for t, err := range lang.Filtered("while ( a < 3 ) { a += 1; } --;--", "ws").All() {
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(t.Type, t.Text)
	}

	// Output:
	// word while
	// op (
	// word a
	// op <
	// op 3
	// op )
	// op {
	// word a
	// op +=
	// op 1;
	// op }
	// op --;--
}

func ExampleLang_Filtered() {
	lang := rlex.MustCompile([]rlex.Rule{
		{Name: "WS", Match: rlex.Pattern(`\s+`), LineBreaks: true},
		{Name: "comment", Match: rlex.Pattern(`/\*(?:.|\n)*?\*/`), LineBreaks: true},
		rlex.Regexp("number", `\d+(?:\.\d*)?(?:[eE][-+]?\d+)?`),
		rlex.Literal("minus", "-"),
	})

	toks, err := lang.Filtered("3 - /* a multiline\ncomment */ 2", "WS", "comment").Collect()
	if err != nil {
		fmt.Println(err)
		return
	}
	var types []string
	for _, t := range toks {
		types = append(types, t.Type)
	}
	fmt.Println(types)
	fmt.Println(toks[2])

	// Output:
	// [number minus number]
	// 2:12 number "2"
}

func ExampleLexer_FormatError() {
	lang := rlex.MustCompile([]rlex.Rule{
		rlex.Regexp("ident", `\pL+`),
		rlex.Regexp("ws", `[ \t]+`),
		rlex.Literal("op", "=", ";"),
	})

	l := rlex.NewLexer(lang, rlex.NewFile("prog", "x = 世界 + 1;"))
	for {
		if _, err := l.Next(); err != nil {
			fmt.Println(l.FormatError(nil, "unexpected input"))
			return
		}
	}

	// Output:
	// prog:1:8: unexpected input
	// |x = 世界 + 1;
	// |         ^
}
