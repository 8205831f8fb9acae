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

import "fmt"

// A Token is a typed slice of the input.
//
type Token struct {
	Type       string // rule name or keyword type
	Value      string // Text, possibly transformed by the rule's Value function
	Text       string // matched input
	Offset     int    // 0-based byte offset of Text in the input
	LineBreaks int    // number of line breaks in Text
	Line       int    // 1-based line number of the first character
	Col        int    // 1-based column number (in runes) of the first character
}

// String returns a string representation of the token in the form
// "line:col type value".
//
func (t *Token) String() string {
	return fmt.Sprintf("%d:%d %s %q", t.Line, t.Col, t.Type, t.Value)
}
