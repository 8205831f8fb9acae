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

package rlex

// Kind distinguishes regular rules from the catch-all fallback and error rules.
//
type Kind int

// Rule kinds.
//
const (
	Normal       Kind = iota // matches with its Matcher
	FallbackKind             // matches one character when no Normal rule does
	ErrorKind                // like FallbackKind, but marks the character as an error
)

func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case FallbackKind:
		return "fallback"
	case ErrorKind:
		return "error"
	}
	return "invalid"
}

// A Matcher describes how a Normal rule matches input. It is one of Literals,
// Pattern or MatchFunc.
//
type Matcher interface {
	isMatcher()
}

// Literals matches any of the given strings. When more than one matches at the
// same position, the first one in the list wins.
//
type Literals []string

// Pattern is a regular expression in the syntax accepted by the regexp
// package. It is implicitly anchored at the current scan position.
//
type Pattern string

// A MatchFunc reports the length in bytes of the match starting at
// input[pos:]. It returns -1 if there is no match. A return value of 0 (empty
// match) is a configuration error and is reported as such by the Lexer.
//
// MatchFuncs are called concurrently by Lexers sharing the same Lang and must
// not keep mutable state.
//
type MatchFunc func(input string, pos int) int

func (Literals) isMatcher()  {}
func (Pattern) isMatcher()   {}
func (MatchFunc) isMatcher() {}

// Keywords maps token types to the exact values that get reclassified to
// that type. For example, with an identifier rule:
//
//	rlex.Rule{
//		Name:     "IDEN",
//		Match:    rlex.Pattern(`[a-zA-Z]+`),
//		Keywords: rlex.Keywords{"KW": {"while", "moo"}},
//	}
//
// the input "while" yields a token of type "KW" while "cow" yields "IDEN".
//
type Keywords map[string][]string

// A Rule describes one named token class.
//
type Rule struct {
	// Name is the token type emitted for matches of this rule.
	Name string
	// Match is the rule's matcher. It must be nil for fallback and error
	// rules.
	Match Matcher
	// LineBreaks must be set if a match can contain a '\n'.
	LineBreaks bool
	// Keywords optionally reclassifies matches by exact value.
	Keywords Keywords
	// Kind defaults to Normal.
	Kind Kind
	// Value optionally transforms the matched text into the token value.
	Value func(text string) string
}

// Literal returns a rule matching any of the given literal strings.
//
func Literal(name string, s ...string) Rule {
	return Rule{Name: name, Match: Literals(s)}
}

// Regexp returns a rule matching the given regular expression.
//
func Regexp(name string, expr string) Rule {
	return Rule{Name: name, Match: Pattern(expr)}
}

// Func returns a rule matching with f.
//
func Func(name string, f MatchFunc) Rule {
	return Rule{Name: name, Match: f}
}

// Fallback returns a catch-all rule: when no other rule matches, a single
// character is emitted as a token of the given type.
//
func Fallback(name string) Rule {
	return Rule{Name: name, Kind: FallbackKind}
}

// Error returns an error rule: when no other rule matches, a single character
// is emitted as a token of the given type and scanning resumes after it.
//
func Error(name string) Rule {
	return Rule{Name: name, Kind: ErrorKind}
}
