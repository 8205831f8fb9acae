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

// Package config loads rlex rule sets from JSON documents:
//
//	{
//		"rules": [
//			{"name": "WS", "pattern": "[ \\t]+"},
//			{"name": "NL", "literal": "\n", "lineBreaks": true},
//			{"name": "STRING", "builtin": "string", "value": "unquote"},
//			{"name": "NUMBER", "dfa": "[0-9]+(\\.[0-9]+)?"},
//			{"name": "IDENT", "builtin": "ident", "keywords": {"KW": ["if", "else"]}},
//			{"name": "OP", "literals": ["==", "=", "+", "-"]},
//			{"name": "ERROR", "error": true}
//		],
//		"ignore": ["WS"]
//	}
//
// Each rule has a name and exactly one of literal, literals, pattern, builtin,
// dfa, fallback or error. Keyword values can be given as a single string or a
// list of strings.
//
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/db47h/rlex"
	"github.com/db47h/rlex/match"
)

// Spec is a rule set description.
//
type Spec struct {
	Rules        []Rule   `json:"rules"`
	Ignore       []string `json:"ignore,omitempty"`
	FallbackRuns bool     `json:"fallbackRuns,omitempty"`
}

// Rule describes a single rule. See the package documentation.
//
type Rule struct {
	Name       string             `json:"name"`
	Literal    string             `json:"literal,omitempty"`
	Literals   []string           `json:"literals,omitempty"`
	Pattern    string             `json:"pattern,omitempty"`
	Builtin    string             `json:"builtin,omitempty"`
	DFA        string             `json:"dfa,omitempty"`
	Fallback   bool               `json:"fallback,omitempty"`
	Error      bool               `json:"error,omitempty"`
	LineBreaks bool               `json:"lineBreaks,omitempty"`
	Keywords   map[string]Strings `json:"keywords,omitempty"`
	Value      string             `json:"value,omitempty"`
}

// Strings is a list of strings that can be decoded from either a JSON string
// or an array of strings.
//
type Strings []string

// UnmarshalJSON implements json.Unmarshaler.
//
func (s *Strings) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err == nil {
		*s = Strings{v}
		return nil
	}
	var l []string
	if err := json.Unmarshal(b, &l); err != nil {
		return err
	}
	*s = l
	return nil
}

var builtins = map[string]func() rlex.MatchFunc{
	"string": func() rlex.MatchFunc { return match.QuotedString('"') },
	"char":   func() rlex.MatchFunc { return match.QuotedChar('\'') },
	"number": func() rlex.MatchFunc { return match.Number('.') },
	"ident":  match.UnicodeIdent,
	"space":  match.Space,
}

var values = map[string]func(string) string{
	"unquote": match.Unquote,
	"lower":   strings.ToLower,
	"upper":   strings.ToUpper,
	"trim":    strings.TrimSpace,
}

// Load decodes a Spec from r. Unknown fields are an error.
//
func Load(r io.Reader) (*Spec, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var s Spec
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &s, nil
}

// LoadFile loads a Spec from the named file.
//
func LoadFile(name string) (*Spec, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// RuleSet converts the Spec rules to rlex rules.
//
func (s *Spec) RuleSet() ([]rlex.Rule, error) {
	rules := make([]rlex.Rule, 0, len(s.Rules))
	for i := range s.Rules {
		r, err := s.Rules[i].rule()
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// Compile compiles the Spec rules. The Spec's FallbackRuns setting is applied
// before opts.
//
func (s *Spec) Compile(opts ...rlex.Option) (*rlex.Lang, error) {
	rules, err := s.RuleSet()
	if err != nil {
		return nil, err
	}
	return rlex.Compile(rules, append([]rlex.Option{rlex.FallbackRuns(s.FallbackRuns)}, opts...)...)
}

func (r *Rule) matchers() []string {
	var ms []string
	if r.Literal != "" {
		ms = append(ms, "literal")
	}
	if r.Literals != nil {
		ms = append(ms, "literals")
	}
	if r.Pattern != "" {
		ms = append(ms, "pattern")
	}
	if r.Builtin != "" {
		ms = append(ms, "builtin")
	}
	if r.DFA != "" {
		ms = append(ms, "dfa")
	}
	if r.Fallback {
		ms = append(ms, "fallback")
	}
	if r.Error {
		ms = append(ms, "error")
	}
	return ms
}

func (r *Rule) rule() (rlex.Rule, error) {
	out := rlex.Rule{Name: r.Name, LineBreaks: r.LineBreaks}
	ms := r.matchers()
	switch len(ms) {
	case 0:
		return out, &rlex.ConfigError{Rule: r.Name, Reason: "no matcher"}
	case 1:
	default:
		return out, &rlex.ConfigError{Rule: r.Name, Reason: "more than one matcher: " + strings.Join(ms, ", ")}
	}

	switch ms[0] {
	case "literal":
		out.Match = rlex.Literals{r.Literal}
	case "literals":
		out.Match = rlex.Literals(r.Literals)
	case "pattern":
		out.Match = rlex.Pattern(r.Pattern)
	case "builtin":
		f, ok := builtins[r.Builtin]
		if !ok {
			return out, &rlex.ConfigError{Rule: r.Name, Reason: fmt.Sprintf("unknown builtin %q (want one of %s)", r.Builtin, keys(builtins))}
		}
		out.Match = f()
	case "dfa":
		f, err := match.DFA(r.DFA)
		if err != nil {
			return out, &rlex.ConfigError{Rule: r.Name, Reason: "invalid dfa pattern", Err: err}
		}
		out.Match = f
	case "fallback":
		out.Kind = rlex.FallbackKind
	case "error":
		out.Kind = rlex.ErrorKind
	}

	if r.Value != "" {
		f, ok := values[r.Value]
		if !ok {
			return out, &rlex.ConfigError{Rule: r.Name, Reason: fmt.Sprintf("unknown value function %q (want one of %s)", r.Value, keys(values))}
		}
		out.Value = f
	}
	if len(r.Keywords) > 0 {
		out.Keywords = make(rlex.Keywords, len(r.Keywords))
		for t, vs := range r.Keywords {
			out.Keywords[t] = []string(vs)
		}
	}
	return out, nil
}

func keys[T any](m map[string]T) string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return strings.Join(ks, ", ")
}
