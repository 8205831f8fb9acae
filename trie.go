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

type nodeList map[byte]*node

// A node is a node in the literal search tree of a group of literal rules.
//
type node struct {
	c    nodeList // child nodes
	term bool     // a literal ends here
	rule int      // rule index
	item int      // index in the rule's literal list
}

// match returns the child node that matches the given byte.
//
func (n *node) match(b byte) *node {
	return n.c[b]
}

// before reports whether (rule, item) has priority over the literal
// terminating at n.
//
func (n *node) before(rule, item int) bool {
	return !n.term || rule < n.rule || rule == n.rule && item < n.item
}

// A trie matches a group of consecutive literal rules.
//
type trie struct {
	root node
}

func newTrie() *trie {
	return &trie{root: node{c: make(nodeList)}}
}

// add registers literal s of the given rule. Duplicate literals keep the
// first registration.
//
func (t *trie) add(s string, rule, item int) {
	n := &t.root
	for i := 0; i < len(s); i++ {
		c, ok := n.c[s[i]]
		if !ok {
			c = &node{c: make(nodeList)}
			n.c[s[i]] = c
		}
		n = c
	}
	if n.before(rule, item) {
		n.term = true
		n.rule = rule
		n.item = item
	}
}

// search walks the tree along input[pos:] and returns the matching literal
// with the highest priority (lowest rule then item index), not the longest.
//
func (t *trie) search(input string, pos int) (rule int, length int) {
	var match *node
	rule, length = -1, 0
	n := &t.root
	for i := pos; i < len(input); i++ {
		if n = n.match(input[i]); n == nil {
			break
		}
		if n.term && (match == nil || match.before(n.rule, n.item)) {
			match = n
			rule, length = n.rule, i-pos+1
		}
		if len(n.c) == 0 {
			break
		}
	}
	return rule, length
}
