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
	"unicode/utf8"
)

// scanner is the scan engine of a Lexer.
//
type scanner struct {
	lang  *Lang
	f     *File
	input string
	pos   int // byte offset of the next token
	line  int // line number at pos
	col   int // column number at pos
}

func (s *scanner) init(lang *Lang, f *File) {
	s.lang = lang
	s.f = f
	s.input = f.src
	s.pos = 0
	s.line = f.line0
	s.col = f.col0
}

func (s *scanner) position() Position {
	return Position{s.f.name, s.pos, s.line, s.col}
}

// advance scans the next token. It returns nil, nil at the end of the input.
//
func (s *scanner) advance() (*Token, error) {
	if s.pos >= len(s.input) {
		return nil, nil
	}
	lang := s.lang
	ri, n, err := lang.match(s.input, s.pos)
	if err != nil {
		tracer().Errorf("rlex: %s: %v", s.position(), err)
		return nil, err
	}
	if ri < 0 {
		switch {
		case lang.fallback >= 0:
			ri, n = lang.fallback, s.fallbackLen()
		case lang.errRule >= 0:
			ri = lang.errRule
			_, n = utf8.DecodeRuneInString(s.input[s.pos:])
			tracer().Debugf("rlex: %s: error token %q", s.position(), s.input[s.pos:s.pos+n])
		default:
			_, n = utf8.DecodeRuneInString(s.input[s.pos:])
			err := &UnexpectedInputError{Position: s.position(), Text: s.input[s.pos : s.pos+n]}
			tracer().Errorf("rlex: %v", err)
			return nil, err
		}
	}
	return s.emit(ri, n), nil
}

// fallbackLen returns the length of the fallback token at the current
// position: a single rune, or with FallbackRuns, all the input up to the next
// position where a rule matches.
//
func (s *scanner) fallbackLen() int {
	_, n := utf8.DecodeRuneInString(s.input[s.pos:])
	if !s.lang.opts.fallbackRuns {
		return n
	}
	p := s.pos + n
	for p < len(s.input) {
		// match errors are reported by the next call to advance.
		if ri, _, err := s.lang.match(s.input, p); ri >= 0 || err != nil {
			break
		}
		_, n = utf8.DecodeRuneInString(s.input[p:])
		p += n
	}
	return p - s.pos
}

// emit builds a token of rule ri and length n at the current position and
// moves past it.
//
func (s *scanner) emit(ri, n int) *Token {
	r := &s.lang.rules[ri]
	text := s.input[s.pos : s.pos+n]
	t := &Token{
		Type:   r.name,
		Value:  text,
		Text:   text,
		Offset: s.pos,
		Line:   s.line,
		Col:    s.col,
	}
	if typ, ok := r.keywords[text]; ok {
		t.Type = typ
	}
	if r.value != nil {
		t.Value = r.value(text)
	}

	if r.lineBreaks {
		if nl := strings.Count(text, "\n"); nl > 0 {
			t.LineBreaks = nl
			for i := 0; i < n; i++ {
				if text[i] == '\n' {
					s.f.AddLine(s.pos + i + 1)
				}
			}
			s.line += nl
			s.col = utf8.RuneCountInString(text[strings.LastIndexByte(text, '\n')+1:]) + 1
			s.pos += n
			return t
		}
	}
	s.col += utf8.RuneCountInString(text)
	s.pos += n
	return t
}
