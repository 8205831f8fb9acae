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
	"fmt"
	"strconv"
)

// A ConfigError reports an invalid rule set. It is returned by Compile, and by
// Lexer.Next when a MatchFunc matches the empty string.
//
type ConfigError struct {
	Rule   string // name of the offending rule, if any
	Reason string
	Err    error // underlying error, if any
}

func (e *ConfigError) Error() string {
	msg := "rlex: "
	if e.Rule != "" {
		msg += "rule " + strconv.Quote(e.Rule) + ": "
	}
	msg += e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
//
func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErrorf(rule string, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Rule: rule, Reason: fmt.Sprintf(format, args...)}
}

// An UnexpectedInputError is returned by Lexer.Next when no rule matches the
// input at the current position and the rule set has neither a fallback nor an
// error rule. It is fatal to the current scan: subsequent calls to Next return
// the same error until the Lexer is Reset.
//
type UnexpectedInputError struct {
	Position
	Text string // offending input (a single character)
}

func (e *UnexpectedInputError) Error() string {
	return fmt.Sprintf("%s: unexpected input %s", e.Position, strconv.Quote(e.Text))
}
