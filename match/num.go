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

import "github.com/db47h/rlex"

// Number returns a MatchFunc that matches integer and floating-point literals.
//
// For integers, the number base is determined by the number prefix. A prefix
// of “0x” or “0X” selects base 16; a “0b” or “0B” prefix selects base 2 and
// the “0” prefix selects base 8 (unless the number is a floating point
// literal, which are always in base 10). Otherwise the selected base is 10.
//
// decimalSep sets the decimal separator. A number can start with the decimal
// separator if it is immediately followed by a digit.
//
// Malformed literals, like "0x", "09" or "1e", do not match.
//
func Number(decimalSep rune) rlex.MatchFunc {
	return func(input string, pos int) int {
		c := cursor{s: input, i: pos}
		if !c.number(decimalSep) {
			return -1
		}
		return c.i - pos
	}
}

func (c *cursor) number(sep rune) bool {
	start := c.i
	switch r := c.peek(); {
	case r == '0':
		c.next()
		switch c.peek() {
		case 'x', 'X':
			c.next()
			return c.integer(16)
		case 'b', 'B':
			c.next()
			return c.integer(2)
		}
		c.i = start
	case r == sep:
		c.next()
		if r := c.peek(); r < '0' || r > '9' {
			return false
		}
		c.i = start
	case r >= '1' && r <= '9':
	default:
		return false
	}
	return c.integerOrFloat(start, sep)
}

// integer scans the digits of an integer in the given base, past its prefix.
//
func (c *cursor) integer(base int) bool {
	if c.digits(base) == 0 {
		return false
	}
	// for bases < 10, consider digits >= base following the constant to be an error
	r := c.peek()
	return r < '0' || r > '9'
}

// base 8 integer, base 10 integer, or float.
// i.e. anything of the form [0-9]*(\.[0-9]*)?([eE][-+]?[0-9]+)?
func (c *cursor) integerOrFloat(start int, sep rune) bool {
	c.digits(10)
	end := c.i
	float := false
	if c.accept(sep) {
		float = true
		c.digits(10)
	}
	if r := c.peek(); r == 'e' || r == 'E' {
		c.next()
		if !c.accept('+') {
			c.accept('-')
		}
		if c.digits(10) == 0 {
			return false
		}
		float = true
	}
	if !float && c.s[start] == '0' {
		for i := start + 1; i < end; i++ {
			if c.s[i] > '7' {
				return false
			}
		}
	}
	return true
}
