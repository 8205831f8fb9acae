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

package config_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/db47h/rlex"
	"github.com/db47h/rlex/config"
)

const testSpec = `{
	"rules": [
		{"name": "WS", "builtin": "space"},
		{"name": "NL", "literal": "\n", "lineBreaks": true},
		{"name": "STRING", "builtin": "string", "value": "unquote"},
		{"name": "NUMBER", "dfa": "[0-9]+"},
		{"name": "IDENT", "pattern": "[a-zA-Z]+", "value": "lower", "keywords": {
			"KW": "if",
			"BOOL": ["true", "false"]
		}},
		{"name": "OP", "literals": ["==", "="]},
		{"name": "ERROR", "error": true}
	],
	"ignore": ["WS", "NL"]
}`

func TestLoad(t *testing.T) {
	s, err := config.Load(strings.NewReader(testSpec))
	if err != nil {
		t.Fatal(err)
	}
	lang, err := s.Compile()
	if err != nil {
		t.Fatal(err)
	}
	toks, err := lang.Filtered("if X == \"a\\tb\"\n12 true $", s.Ignore...).Collect()
	if err != nil {
		t.Fatal(err)
	}
	exp := []string{
		`1:1 KW "if"`,
		`1:4 IDENT "x"`,
		`1:6 OP "=="`,
		`1:9 STRING "a\tb"`,
		`2:1 NUMBER "12"`,
		`2:4 BOOL "true"`,
		`2:9 ERROR "$"`,
	}
	if len(toks) != len(exp) {
		t.Fatalf("got %d tokens, expected %d: %v", len(toks), len(exp), toks)
	}
	for i, tok := range toks {
		if got := tok.String(); got != exp[i] {
			t.Errorf("\nGot     : %v\nExpected: %v", got, exp[i])
		}
	}
}

func TestFallbackRuns(t *testing.T) {
	s, err := config.Load(strings.NewReader(`{
		"rules": [
			{"name": "WORD", "pattern": "[a-z]+"},
			{"name": "OTHER", "fallback": true}
		],
		"fallbackRuns": true
	}`))
	if err != nil {
		t.Fatal(err)
	}
	lang, err := s.Compile()
	if err != nil {
		t.Fatal(err)
	}
	toks, err := lang.Lexer("ab+=-cd").Collect()
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 3 || toks[1].Type != "OTHER" || toks[1].Text != "+=-" {
		t.Errorf("unexpected tokens: %v", toks)
	}
}

func TestErrors(t *testing.T) {
	for _, td := range []struct {
		name   string
		in     string
		config bool // error is a *rlex.ConfigError
		msg    string
	}{
		{"nomatcher", `{"rules": [{"name": "A"}]}`, true, "no matcher"},
		{"twomatchers", `{"rules": [{"name": "A", "literal": "a", "pattern": "a"}]}`, true, "more than one matcher: literal, pattern"},
		{"builtin", `{"rules": [{"name": "A", "builtin": "nope"}]}`, true, `unknown builtin "nope"`},
		{"value", `{"rules": [{"name": "A", "literal": "a", "value": "nope"}]}`, true, `unknown value function "nope"`},
		{"dfa", `{"rules": [{"name": "A", "dfa": "[a-"}]}`, true, "invalid dfa pattern"},
		{"pattern", `{"rules": [{"name": "A", "pattern": "("}]}`, true, "invalid pattern"},
		{"empty", `{"rules": [{"name": "A", "pattern": "a*"}]}`, true, "matches the empty string"},
		{"field", `{"rules": [], "bogus": 1}`, false, "unknown field"},
		{"keywords", `{"rules": [{"name": "A", "literal": "a", "keywords": {"K": 1}}]}`, false, "config:"},
		{"syntax", `{"rules": [`, false, "config:"},
	} {
		t.Run(td.name, func(t *testing.T) {
			s, err := config.Load(strings.NewReader(td.in))
			if err == nil {
				_, err = s.Compile()
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			var ce *rlex.ConfigError
			if errors.As(err, &ce) != td.config {
				t.Errorf("%v: ConfigError: %v, expected %v", err, !td.config, td.config)
			}
			if ce != nil && ce.Rule != "A" {
				t.Errorf("%v: rule %q, expected %q", err, ce.Rule, "A")
			}
			if !strings.Contains(err.Error(), td.msg) {
				t.Errorf("%q does not contain %q", err.Error(), td.msg)
			}
		})
	}
}
