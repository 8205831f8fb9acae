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
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// queue is a FIFO queue of tokens.
//
type queue struct {
	items []*Token
	head  int
	tail  int
	count int
}

func (q *queue) push(t *Token) {
	if q.items == nil {
		// size must be a power of 2
		q.items = make([]*Token, 2)
	}
	if q.head == q.tail && q.count > 0 {
		items := make([]*Token, len(q.items)*2)
		copy(items, q.items[q.head:])
		copy(items[len(q.items)-q.head:], q.items[:q.head])
		q.head = 0
		q.tail = len(q.items)
		q.items = items
	}
	q.items[q.tail] = t
	q.tail = (q.tail + 1) % len(q.items)
	q.count++
}

// pop pops the first item from the queue. Callers must check that q.count > 0
// beforehand.
//
func (q *queue) pop() *Token {
	i := q.head
	q.head = (q.head + 1) % len(q.items)
	q.count--
	t := q.items[i]
	q.items[i] = nil
	return t
}

func (q *queue) clear() {
	for q.count > 0 {
		q.pop()
	}
	q.head, q.tail = 0, 0
}

// State holds the line and column numbers of a Lexer's next token. It is used
// to continue numbering across input chunks.
//
type State struct {
	Line int
	Col  int
}

// A Lexer produces the tokens of an input according to a Lang.
//
// A Lexer is not safe for concurrent use, but any number of Lexers can share
// the same Lang.
//
type Lexer struct {
	scanner
	queue
	err error // sticky error
}

// NewLexer returns a new lexer for the given File.
//
func NewLexer(lang *Lang, f *File) *Lexer {
	l := &Lexer{}
	l.scanner.init(lang, f)
	return l
}

// Lexer returns a new lexer for the given input.
//
func (l *Lang) Lexer(input string) *Lexer {
	return NewLexer(l, NewFile("", input))
}

// Filtered returns a token source for the given input that skips tokens of the
// given types.
//
func (l *Lang) Filtered(input string, ignore ...string) *Filter {
	return NewFilter(l.Lexer(input), ignore...)
}

// Next returns the next token. At the end of the input, it returns a nil token
// and a nil error, and keeps doing so on subsequent calls.
//
// A returned error is either a *ConfigError or an *UnexpectedInputError. It is
// fatal: subsequent calls return the same error until the Lexer is Reset.
//
func (l *Lexer) Next() (*Token, error) {
	if l.count > 0 {
		return l.pop(), nil
	}
	return l.lex()
}

// Peek returns the next token without consuming it.
//
func (l *Lexer) Peek() (*Token, error) {
	if l.count > 0 {
		return l.items[l.head], nil
	}
	t, err := l.lex()
	if t != nil {
		l.push(t)
	}
	return t, err
}

func (l *Lexer) lex() (*Token, error) {
	if l.err != nil {
		return nil, l.err
	}
	t, err := l.advance()
	if err != nil {
		l.err = err
	}
	return t, err
}

// Reset resets the lexer to the start of a new input, with line and column
// numbers starting at 1.
//
func (l *Lexer) Reset(input string) {
	l.ResetState(input, State{Line: 1, Col: 1})
}

// ResetState resets the lexer to the start of a new input, with line and
// column numbers starting at st. Use it together with Save to lex an input
// in chunks.
//
func (l *Lexer) ResetState(input string, st State) {
	if st.Line < 1 {
		st.Line = 1
	}
	if st.Col < 1 {
		st.Col = 1
	}
	l.queue.clear()
	l.err = nil
	l.scanner.init(l.lang, newFile(l.f.name, input, st.Line, st.Col))
}

// Save returns the line and column numbers at the current scan position.
// Peeked tokens are not accounted for.
//
func (l *Lexer) Save() State {
	return State{Line: l.line, Col: l.col}
}

// File returns the File used as input for the lexer.
//
func (l *Lexer) File() *File {
	return l.f
}

// Lang returns the Lang used by the lexer.
//
func (l *Lexer) Lang() *Lang {
	return l.lang
}

// Pos returns the position of the scanner in the input.
//
func (l *Lexer) Pos() Position {
	return l.position()
}

// FormatError returns msg prefixed with the position of tok, followed by the
// source line and a caret pointing to the token:
//
//	input:2:5: unexpected number
//	|let 1 = 2
//	|    ^
//
// If tok is nil, the current position of the lexer is used.
//
func (l *Lexer) FormatError(tok *Token, msg string) string {
	var pos Position
	if tok != nil {
		pos = Position{l.f.name, tok.Offset, tok.Line, tok.Col}
	} else {
		pos = l.position()
	}
	var b strings.Builder
	b.WriteString(pos.String())
	b.WriteString(": ")
	b.WriteString(msg)
	src := l.f.src
	if pos.Offset > len(src) {
		return b.String()
	}
	start := strings.LastIndexByte(src[:pos.Offset], '\n') + 1
	end := strings.IndexByte(src[start:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += start
	}
	b.WriteString("\n|")
	b.WriteString(src[start:end])
	b.WriteString("\n|")
	b.WriteString(caretPad(src[start:pos.Offset]))
	b.WriteByte('^')
	return b.String()
}

// caretPad returns the padding needed to display a caret after s, supposing
// rendering with a UTF-8 locale and monospaced font. Tabs are preserved.
//
func caretPad(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		i += n
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			b.WriteString("  ")
		default:
			// EastAsianAmbiguous depends on user locale. 2 if locale is CJK, 1 otherwise.
			b.WriteByte(' ')
		}
	}
	return b.String()
}
