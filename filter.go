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

import "iter"

// A TokenSource is anything that produces tokens like a Lexer: Next returns
// nil, nil at the end of the input.
//
type TokenSource interface {
	Next() (*Token, error)
}

// A Filter is a TokenSource that drops tokens of ignored types from an
// underlying TokenSource.
//
type Filter struct {
	src    TokenSource
	ignore map[string]bool
}

// NewFilter returns a Filter that skips tokens of the given types. Type names
// that the source never emits are allowed.
//
func NewFilter(src TokenSource, ignore ...string) *Filter {
	f := &Filter{src: src, ignore: make(map[string]bool, len(ignore))}
	for _, t := range ignore {
		f.ignore[t] = true
	}
	return f
}

// Next returns the next token whose type is not ignored. Errors from the
// underlying source are returned as is.
//
func (f *Filter) Next() (*Token, error) {
	for {
		t, err := f.src.Next()
		if err != nil || t == nil || !f.ignore[t.Type] {
			return t, err
		}
	}
}

// Source returns the underlying TokenSource.
//
func (f *Filter) Source() TokenSource {
	return f.src
}

// All returns an iterator over the remaining tokens. An error ends the
// iteration after being yielded with a nil token.
//
func (f *Filter) All() iter.Seq2[*Token, error] {
	return all(f)
}

// Collect returns all remaining tokens. On error, it returns the tokens read
// so far along with the error.
//
func (f *Filter) Collect() ([]*Token, error) {
	return collect(f)
}

// All returns an iterator over the remaining tokens. An error ends the
// iteration after being yielded with a nil token.
//
//	for t, err := range l.All() {
//		if err != nil {
//			return err
//		}
//		fmt.Println(t)
//	}
//
func (l *Lexer) All() iter.Seq2[*Token, error] {
	return all(l)
}

// Collect returns all remaining tokens. On error, it returns the tokens read
// so far along with the error.
//
func (l *Lexer) Collect() ([]*Token, error) {
	return collect(l)
}

func all(src TokenSource) iter.Seq2[*Token, error] {
	return func(yield func(*Token, error) bool) {
		for {
			t, err := src.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if t == nil || !yield(t, nil) {
				return
			}
		}
	}
}

func collect(src TokenSource) ([]*Token, error) {
	var ts []*Token
	for {
		t, err := src.Next()
		if err != nil {
			return ts, err
		}
		if t == nil {
			return ts, nil
		}
		ts = append(ts, t)
	}
}
