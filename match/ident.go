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

package match

import (
	"unicode"

	"github.com/db47h/rlex"
	"golang.org/x/text/unicode/rangetable"
)

var (
	idStart    = rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_ID_Start)
	idCont     = rangetable.Merge(idStart, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
	identStart = rangetable.Merge(idStart, rangetable.New('_'))
	identCont  = rangetable.Merge(identStart, idCont)
)

// Ident returns a MatchFunc that matches a rune for which start returns true,
// followed by any number of runes for which cont returns true.
//
func Ident(start, cont func(rune) bool) rlex.MatchFunc {
	return func(input string, pos int) int {
		c := cursor{s: input, i: pos}
		if r := c.next(); r == eof || !start(r) {
			return -1
		}
		for r := c.peek(); r != eof && cont(r); r = c.peek() {
			c.next()
		}
		return c.i - pos
	}
}

// IsIdentStart reports whether r can start an identifier: letters, letter
// numbers and the underscore.
//
func IsIdentStart(r rune) bool {
	return unicode.Is(identStart, r)
}

// IsIdentCont reports whether r can be part of an identifier: identifier
// start characters, combining marks, decimal digits and connector
// punctuation.
//
func IsIdentCont(r rune) bool {
	return unicode.Is(identCont, r)
}

// UnicodeIdent returns a MatchFunc for identifiers made of Unicode letters,
// digits and connector punctuation that may start with an underscore, as in Go.
//
func UnicodeIdent() rlex.MatchFunc {
	return Ident(IsIdentStart, IsIdentCont)
}

// DefaultIdent returns a MatchFunc for UAX #31 default identifiers: an
// ID_Start character followed by ID_Continue characters. Unlike UnicodeIdent,
// an identifier cannot start with an underscore.
//
// The Go unicode tables have no XID properties. ID_Start and ID_Continue only
// differ from them for a handful of characters that change under NFKC.
//
func DefaultIdent() rlex.MatchFunc {
	return Ident(func(r rune) bool { return unicode.Is(idStart, r) }, func(r rune) bool { return unicode.Is(idCont, r) })
}

// Space returns a MatchFunc that matches a run of Unicode white space other
// than '\n'.
//
func Space() rlex.MatchFunc {
	return func(input string, pos int) int {
		c := cursor{s: input, i: pos}
		for r := c.peek(); r != '\n' && r != eof && unicode.Is(unicode.White_Space, r); r = c.peek() {
			c.next()
		}
		if c.i == pos {
			return -1
		}
		return c.i - pos
	}
}
