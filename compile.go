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
	"regexp"
	"sort"
	"strings"
)

// rule is the compiled form of a Rule.
//
type rule struct {
	name       string
	kind       Kind
	lineBreaks bool
	keywords   map[string]string // value -> type
	value      func(string) string
}

// A group matches a run of consecutive rules of the same matcher type. Exactly
// one of t, re or fn is set.
//
type group struct {
	t    *trie
	re   *regexp.Regexp
	fn   MatchFunc
	rule int // MatchFunc groups: rule index

	// pattern groups
	srcs []string // source of each alternative
	alts []int    // rule index of each alternative
	subs []int    // submatch index of each alternative
	next int      // next free submatch index
}

// A Lang is a compiled rule set. It is immutable and safe for concurrent use
// by any number of Lexers.
//
type Lang struct {
	rules    []rule
	groups   []group
	fallback int // index of the fallback rule or -1
	errRule  int // index of the error rule or -1
	types    []string
	known    map[string]bool
	opts     options
}

// Compile compiles an ordered list of rules. Declaration order is priority
// order: at any position, the first rule that matches wins, regardless of the
// length of matches of subsequent rules.
//
// Consecutive Literals rules are merged into a single search tree, and
// consecutive Pattern rules into a single regular expression. Patterns are
// compiled in multi-line mode: '^' and '$' also match at line boundaries.
//
func Compile(rules []Rule, opts ...Option) (*Lang, error) {
	l := &Lang{
		fallback: -1,
		errRule:  -1,
		known:    make(map[string]bool, len(rules)),
	}
	for _, o := range opts {
		o(&l.opts)
	}

	for i := range rules {
		r := &rules[i]
		if r.Name == "" {
			return nil, configErrorf("", "rule #%d has no name", i)
		}
		for j := range l.rules {
			if l.rules[j].name == r.Name {
				return nil, configErrorf(r.Name, "duplicate rule name")
			}
		}
		if err := l.addRule(i, r); err != nil {
			return nil, err
		}
	}
	l.buildTypes()

	tracer().Debugf("rlex: compiled %d rules in %d groups", len(l.rules), len(l.groups))
	return l, nil
}

// MustCompile is like Compile but panics if the rules cannot be compiled.
//
func MustCompile(rules []Rule, opts ...Option) *Lang {
	l, err := Compile(rules, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Lang) addRule(i int, r *Rule) error {
	kw, err := compileKeywords(r.Name, r.Keywords)
	if err != nil {
		return err
	}
	l.rules = append(l.rules, rule{
		name:       r.Name,
		kind:       r.Kind,
		lineBreaks: r.LineBreaks || r.Kind != Normal,
		keywords:   kw,
		value:      r.Value,
	})

	switch r.Kind {
	case Normal:
	case FallbackKind, ErrorKind:
		if r.Match != nil {
			return configErrorf(r.Name, "%s rule cannot have a matcher", r.Kind)
		}
		p := &l.fallback
		if r.Kind == ErrorKind {
			p = &l.errRule
		}
		if *p >= 0 {
			return configErrorf(r.Name, "more than one %s rule (first is %q)", r.Kind, l.rules[*p].name)
		}
		*p = i
		return nil
	default:
		return configErrorf(r.Name, "invalid rule kind %d", int(r.Kind))
	}

	switch m := r.Match.(type) {
	case nil:
		if len(r.Keywords) > 0 {
			return configErrorf(r.Name, "keywords without a primary matcher")
		}
		return configErrorf(r.Name, "no matcher")
	case Literals:
		return l.addLiterals(i, r, m)
	case Pattern:
		return l.addPattern(i, r, m)
	case MatchFunc:
		if m == nil {
			return configErrorf(r.Name, "nil MatchFunc")
		}
		l.groups = append(l.groups, group{fn: m, rule: i})
		return nil
	default:
		return configErrorf(r.Name, "unsupported matcher type %T", m)
	}
}

// last returns the last group or nil.
//
func (l *Lang) last() *group {
	if len(l.groups) == 0 {
		return nil
	}
	return &l.groups[len(l.groups)-1]
}

func (l *Lang) addLiterals(i int, r *Rule, lits Literals) error {
	if len(lits) == 0 {
		return configErrorf(r.Name, "empty literal list")
	}
	for _, s := range lits {
		if s == "" {
			return configErrorf(r.Name, "literal matches the empty string")
		}
		if !r.LineBreaks && strings.IndexByte(s, '\n') >= 0 {
			return configErrorf(r.Name, "literal %q contains a line break but LineBreaks is not set", s)
		}
	}
	g := l.last()
	if g == nil || g.t == nil {
		l.groups = append(l.groups, group{t: newTrie()})
		g = l.last()
	}
	for j, s := range lits {
		g.t.add(s, i, j)
	}
	return nil
}

func (l *Lang) addPattern(i int, r *Rule, p Pattern) error {
	re, err := regexp.Compile(`(?m)\A(?:` + string(p) + `)`)
	if err != nil {
		return &ConfigError{Rule: r.Name, Reason: "invalid pattern", Err: err}
	}
	if re.MatchString("") {
		return configErrorf(r.Name, "pattern %q matches the empty string", string(p))
	}
	if loc := re.FindStringIndex("\n"); !r.LineBreaks && loc != nil {
		return configErrorf(r.Name, "pattern %q can match a line break but LineBreaks is not set", string(p))
	}

	g := l.last()
	if g == nil || g.re == nil {
		l.groups = append(l.groups, group{next: 1})
		g = l.last()
	}
	g.srcs = append(g.srcs, string(p))
	g.alts = append(g.alts, i)
	g.subs = append(g.subs, g.next)
	g.next += 1 + re.NumSubexp()

	var b strings.Builder
	b.WriteString(`(?m)\A(?:`)
	for j, s := range g.srcs {
		if j > 0 {
			b.WriteByte('|')
		}
		b.WriteByte('(')
		b.WriteString(s)
		b.WriteByte(')')
	}
	b.WriteByte(')')
	if g.re, err = regexp.Compile(b.String()); err != nil {
		return &ConfigError{Rule: r.Name, Reason: "invalid pattern", Err: err}
	}
	return nil
}

// compileKeywords inverts a keyword map into a value to type lookup table.
//
func compileKeywords(name string, kw Keywords) (map[string]string, error) {
	if len(kw) == 0 {
		return nil, nil
	}
	m := make(map[string]string)
	for _, typ := range sortedKeys(kw) {
		if typ == "" {
			return nil, configErrorf(name, "keyword type with an empty name")
		}
		vs := kw[typ]
		if len(vs) == 0 {
			return nil, configErrorf(name, "keyword type %q has no values", typ)
		}
		for _, v := range vs {
			if v == "" {
				return nil, configErrorf(name, "keyword type %q has an empty value", typ)
			}
			if t, ok := m[v]; ok && t != typ {
				return nil, configErrorf(name, "keyword %q is mapped to both %q and %q", v, t, typ)
			}
			m[v] = typ
		}
	}
	return m, nil
}

func sortedKeys(kw Keywords) []string {
	keys := make([]string, 0, len(kw))
	for k := range kw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// buildTypes collects the token types the Lang can emit: rule names in
// declaration order, followed by keyword types not already listed.
//
func (l *Lang) buildTypes() {
	for i := range l.rules {
		l.types = append(l.types, l.rules[i].name)
		l.known[l.rules[i].name] = true
	}
	for i := range l.rules {
		r := &l.rules[i]
		if len(r.keywords) == 0 {
			continue
		}
		seen := make(map[string]bool)
		var ts []string
		for _, t := range r.keywords {
			if !seen[t] {
				seen[t] = true
				ts = append(ts, t)
			}
		}
		sort.Strings(ts)
		for _, t := range ts {
			if !l.known[t] {
				l.known[t] = true
				l.types = append(l.types, t)
			}
		}
	}
}

// match finds the highest priority rule matching input at pos. It returns the
// rule index and the length of the match, or -1 if no rule matches.
//
func (l *Lang) match(input string, pos int) (int, int, error) {
	for i := range l.groups {
		g := &l.groups[i]
		switch {
		case g.t != nil:
			if r, n := g.t.search(input, pos); r >= 0 {
				return r, n, nil
			}
		case g.re != nil:
			m := g.re.FindStringSubmatchIndex(input[pos:])
			if m == nil {
				continue
			}
			for j, sub := range g.subs {
				if m[2*sub] < 0 {
					continue
				}
				n := m[2*sub+1] - m[2*sub]
				if n == 0 {
					return -1, 0, configErrorf(l.rules[g.alts[j]].name, "empty match at offset %d", pos)
				}
				return g.alts[j], n, nil
			}
		default:
			n := g.fn(input, pos)
			switch {
			case n < 0:
				continue
			case n == 0:
				return -1, 0, configErrorf(l.rules[g.rule].name, "empty match at offset %d", pos)
			case pos+n > len(input):
				return -1, 0, configErrorf(l.rules[g.rule].name, "match length %d past end of input at offset %d", n, pos)
			}
			return g.rule, n, nil
		}
	}
	return -1, 0, nil
}

// Has reports whether the Lang can emit tokens of the given type, either as a
// rule name or as a keyword type.
//
func (l *Lang) Has(typ string) bool {
	return l.known[typ]
}

// Types returns the token types the Lang can emit: rule names in declaration
// order followed by keyword types.
//
func (l *Lang) Types() []string {
	return append([]string(nil), l.types...)
}
