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

// Package match provides rlex.MatchFuncs for lexing numbers, quoted strings,
// quoted characters, identifiers and white space, as well as a MatchFunc
// built from a DFA compiled regular expression.
//
// All MatchFuncs in this package return -1 on malformed input (like an
// unterminated string or a bad escape sequence) so that a fallback or error
// rule can take over.
//
// Unlike Pattern rules, the returned functions hold no state and are safe for
// concurrent use.
//
package match

import "unicode/utf8"

const eof = -1

// cursor reads runes from a string.
//
type cursor struct {
	s string
	i int // offset of the next rune
}

func (c *cursor) peek() rune {
	if c.i >= len(c.s) {
		return eof
	}
	if b := c.s[c.i]; b < utf8.RuneSelf {
		return rune(b)
	}
	r, _ := utf8.DecodeRuneInString(c.s[c.i:])
	return r
}

// next returns the next rune and advances past it. At the end of the input it
// returns eof and does not move.
//
func (c *cursor) next() rune {
	if c.i >= len(c.s) {
		return eof
	}
	if b := c.s[c.i]; b < utf8.RuneSelf {
		c.i++
		return rune(b)
	}
	r, n := utf8.DecodeRuneInString(c.s[c.i:])
	c.i += n
	return r
}

// accept consumes r if it is the next rune.
//
func (c *cursor) accept(r rune) bool {
	if c.peek() == r {
		c.next()
		return true
	}
	return false
}

// digitVal returns the value of digit r, or 36 if r is not a digit in any
// base.
//
func digitVal(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'z':
		return int(r - 'a' + 10)
	case r >= 'A' && r <= 'Z':
		return int(r - 'A' + 10)
	}
	return 36
}

// digits consumes digits in the given base and returns their count.
//
func (c *cursor) digits(base int) int {
	n := 0
	for digitVal(c.peek()) < base {
		c.next()
		n++
	}
	return n
}
