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
	"strings"
	"unicode/utf8"

	"github.com/db47h/rlex"
)

const (
	errEnd     = -2
	errRawByte = -1
	errNone    = iota
	errEOL
	errInvalidEscape
	errInvalidRune
	errInvalidHex
	errInvalidOctal
)

// QuotedString returns a MatchFunc that matches a string literal delimited by
// quote. It supports the same escape sequences as double-quoted Go string
// literals. Strings cannot span multiple lines.
//
func QuotedString(quote rune) rlex.MatchFunc {
	return func(input string, pos int) int {
		c := cursor{s: input, i: pos}
		if c.next() != quote {
			return -1
		}
		for {
			switch _, err := readChar(&c, quote); err {
			case errNone, errRawByte:
			case errEnd:
				return c.i - pos
			default:
				return -1
			}
		}
	}
}

// QuotedChar returns a MatchFunc that matches a character literal delimited
// by quote, like Go rune literals.
//
func QuotedChar(quote rune) rlex.MatchFunc {
	return func(input string, pos int) int {
		c := cursor{s: input, i: pos}
		if c.next() != quote {
			return -1
		}
		switch _, err := readChar(&c, quote); err {
		case errNone, errRawByte:
			if c.next() == quote {
				return c.i - pos
			}
		}
		return -1
	}
}

// Unquote returns the value of a string or character literal matched by
// QuotedString or QuotedChar: the delimiters are removed and escape sequences
// replaced. It can be used as a Rule's Value function.
//
// If s is not a valid literal, it is returned unchanged.
//
func Unquote(s string) string {
	c := cursor{s: s}
	quote := c.next()
	if quote == eof {
		return s
	}
	var b strings.Builder
	var rb [utf8.UTFMax]byte
	for {
		r, err := readChar(&c, quote)
		switch err {
		case errNone:
			if r < utf8.RuneSelf {
				b.WriteByte(byte(r))
			} else {
				b.Write(rb[:utf8.EncodeRune(rb[:], r)])
			}
		case errRawByte:
			b.WriteByte(byte(r))
		case errEnd:
			if c.i != len(s) {
				return s
			}
			return b.String()
		default:
			return s
		}
	}
}

func readChar(c *cursor, quote rune) (r rune, err int) {
	r = c.next()
	switch r {
	case quote:
		return r, errEnd
	case '\\':
		r = c.next()
		switch r {
		case 'a':
			return '\a', errNone
		case 'b':
			return '\b', errNone
		case 'f':
			return '\f', errNone
		case 'n':
			return '\n', errNone
		case 'r':
			return '\r', errNone
		case 't':
			return '\t', errNone
		case 'v':
			return '\v', errNone
		case '\\':
			return '\\', errNone
		case quote:
			return r, errNone
		case 'U':
			r, err := readDigits(c, 8, 16)
			if err == errNone && !utf8.ValidRune(r) {
				return utf8.RuneError, errInvalidRune
			}
			return r, err
		case 'u':
			r, err := readDigits(c, 4, 16)
			if err == errNone && !utf8.ValidRune(r) {
				return utf8.RuneError, errInvalidRune
			}
			return r, err
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'x':
			if r == 'x' {
				r, err = readDigits(c, 2, 16)
			} else {
				c.i-- // ASCII digit
				r, err = readDigits(c, 3, 8)
			}
			if err == errNone {
				if r > 0xff {
					return r, errInvalidOctal
				}
				err = errRawByte
			}
			return r, err
		case '\n', eof:
			return r, errEOL
		default:
			return r, errInvalidEscape
		}
	case '\n', eof:
		return r, errEOL
	}
	return r, errNone
}

func readDigits(c *cursor, n int, b int) (v rune, err int) {
	for i := 0; i < n; i++ {
		r := c.next()
		if r == '\n' || r == eof {
			return v, errEOL
		}
		d := digitVal(r)
		if d >= b {
			if b == 8 {
				return v, errInvalidOctal
			}
			return v, errInvalidHex
		}
		v = v*rune(b) + rune(d)
	}
	return v, errNone
}
