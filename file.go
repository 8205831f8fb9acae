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

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrLine is returned by File.Line for out of range line numbers.
//
var ErrLine = errors.New("invalid line number")

// Position describes an arbitrary source position including the file, line,
// and column location.
//
type Position struct {
	Filename string
	Offset   int // 0-based byte offset
	Line     int // 1-based line number
	Column   int // 1-based column number (rune index)
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// A File represents an input. It handles offset to line/column conversion.
//
// Lines are registered by the Lexer as it scans the input, so File.Position
// is only accurate for offsets that have already been scanned.
//
type File struct {
	name  string
	src   string
	lines []int // offset of the first byte of each line
	line0 int   // number of the first line
	col0  int   // column of the first character
}

// NewFile returns a new File for the given source.
//
func NewFile(name string, src string) *File {
	return newFile(name, src, 1, 1)
}

func newFile(name, src string, line, col int) *File {
	return &File{
		name:  name,
		src:   src,
		lines: []int{0},
		line0: line,
		col0:  col,
	}
}

// Name returns the file name.
//
func (f *File) Name() string {
	return f.name
}

// Source returns the file contents.
//
func (f *File) Source() string {
	return f.src
}

// AddLine registers the start of a new line at the given offset. Offsets at or
// before the last known line are ignored.
//
func (f *File) AddLine(offset int) {
	if offset <= f.lines[len(f.lines)-1] || offset > len(f.src) {
		return
	}
	f.lines = append(f.lines, offset)
}

// index returns the index in f.lines of the line containing offset.
//
func (f *File) index(offset int) int {
	i, j := 0, len(f.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(f.lines[h] > offset) {
			i = h + 1
		} else {
			j = h
		}
	}
	return i - 1
}

// Position returns the position of the given byte offset.
//
func (f *File) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.src) {
		offset = len(f.src)
	}
	i := f.index(offset)
	col := utf8.RuneCountInString(f.src[f.lines[i]:offset]) + 1
	if i == 0 {
		col += f.col0 - 1
	}
	return Position{f.name, offset, f.line0 + i, col}
}

// Line returns the text of line n, without its line terminator.
//
func (f *File) Line(n int) (string, error) {
	i := n - f.line0
	if i < 0 || i >= len(f.lines) {
		return "", ErrLine
	}
	s := f.src[f.lines[i]:]
	if e := strings.IndexByte(s, '\n'); e >= 0 {
		s = s[:e]
	}
	return s, nil
}
