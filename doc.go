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

/*
Package rlex compiles an ordered list of token rules into a lexer.

Each rule names a token type and says how it matches: a list of literal
strings, a regular expression, or a Go function. Rules are tried in declaration
order and the first one that matches at the current position wins, even if a
later rule would match a longer run of input:

	lang := rlex.MustCompile([]rlex.Rule{
		{Name: "WS", Match: rlex.Pattern(`[ \t]+`)},
		{Name: "NL", Match: rlex.Literals{"\n"}, LineBreaks: true},
		{Name: "IDENT", Match: rlex.Pattern(`[a-z]+`), Keywords: rlex.Keywords{
			"KW": {"if", "else"},
		}},
		{Name: "NUMBER", Match: rlex.Pattern(`0|[1-9][0-9]*`)},
		rlex.Literal("LPAREN", "("),
		rlex.Literal("RPAREN", ")"),
	})

	l := lang.Lexer("if (10)")
	for t, err := range l.All() {
		if err != nil {
			// handle error
		}
		fmt.Println(t)
	}

A compiled Lang is immutable and can be shared by any number of Lexers running
concurrently. A Lexer holds the scan state for a single input and returns
tokens one at a time from Next, with one token look-ahead via Peek.

Matching

Consecutive Literals rules are merged into a byte search tree. When several
literals match at the same position, the one from the earliest rule wins, and
within a rule, the earliest in the list. Consecutive Pattern rules are merged
into a single regular expression where each rule is an alternative; since Go
regular expressions prefer leftmost alternatives, the first declared rule
wins. MatchFunc rules are called in turn.

Patterns are implicitly anchored at the scan position and compiled in
multi-line mode: $ matches at the end of a line as well as at the end of the
input, so a comment rule like

	rlex.Regexp("comment", `//.*?$`)

stops before the line break. Patterns only see the input from the scan
position onward, so assertions like \b or ^ cannot look behind the start of
the token.

A rule must not match the empty string. A rule that can match a line break
("\n") must set LineBreaks so that the lexer can keep line and column numbers
up to date. Compile checks both conditions for literals and patterns and
returns a *ConfigError if they do not hold. Empty matches of a MatchFunc are
only detected at scan time.

Keywords

A rule can reclassify some of its matches by exact value. This is the common
way to lex reserved words: the identifier rule matches "while" in full, and its
keyword table turns it into a KW token. Since the whole match is compared,
"whiles" stays an identifier.

Error recovery

When no rule matches, the lexer checks for a fallback rule, then for an error
rule. Both consume a single character (or with the FallbackRuns option, a
fallback token extends up to the next position where a rule matches). If
neither is present, Next returns an *UnexpectedInputError with the offending
position. Errors are sticky: further calls to Next return the same error until
the Lexer is Reset.

Positions

Tokens carry a 0-based byte offset as well as 1-based line and column numbers.
Columns count runes, not bytes. Lines are separated by '\n' only.

Sub-packages

The match package provides MatchFuncs for quoted strings, numbers, Unicode
identifiers and DFA compiled regular expressions. The plexer package turns a
Lang into a lexer definition for the participle parser generator. The config
package loads rule sets from JSON files.
*/
package rlex
