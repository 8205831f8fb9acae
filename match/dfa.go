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
	"fmt"

	"github.com/db47h/rlex"
	"github.com/timtadh/lexmachine/dfa"
	"github.com/timtadh/lexmachine/frontend"
)

// DFA compiles the regular expression pattern to a deterministic finite
// automaton and returns a MatchFunc that returns the length of the longest
// match at the scan position.
//
// The pattern syntax is the one of the lexmachine package, which is close to
// POSIX extended regular expressions. Unlike Pattern rules, which prefer the
// leftmost alternative, the DFA always picks the longest match. Matching runs
// the automaton in place over the input and only reads the bytes it needs.
//
func DFA(pattern string) (f rlex.MatchFunc, err error) {
	ast, err := frontend.Parse([]byte(pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	// the generator panics on some malformed patterns that the parser accepts.
	defer func() {
		if r := recover(); r != nil {
			f, err = nil, fmt.Errorf("invalid pattern %q: %v", pattern, r)
		}
	}()
	d := dfa.Generate(ast)
	if _, ok := d.Accepting[d.Start]; ok {
		return nil, fmt.Errorf("pattern %q matches the empty string", pattern)
	}
	return func(input string, pos int) int {
		n := -1
		state := d.Start
		for i := pos; i < len(input) && state != d.Error; i++ {
			state = d.Trans[state][input[i]]
			if _, ok := d.Accepting[state]; ok {
				n = i + 1 - pos
			}
		}
		return n
	}, nil
}

// MustDFA is like DFA but panics if the pattern cannot be compiled.
//
func MustDFA(pattern string) rlex.MatchFunc {
	f, err := DFA(pattern)
	if err != nil {
		panic(err)
	}
	return f
}
