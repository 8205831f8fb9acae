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

// Package plexer adapts rlex to the lexer interface of the participle parser
// generator, so that a compiled rule set can drive a participle grammar.
//
//	def := plexer.New(lang, "WS")
//	parser := participle.MustBuild[Program](participle.Lexer(def))
//
// Token types map to participle symbols by name: grammars refer to rule names
// and keyword types, as in @IDENT or @NUMBER.
//
package plexer

import (
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/db47h/rlex"
)

// A Definition is a participle lexer.Definition backed by an rlex.Lang.
//
type Definition struct {
	lang    *rlex.Lang
	ignore  []string
	symbols map[string]lexer.TokenType
}

var (
	_ lexer.Definition       = (*Definition)(nil)
	_ lexer.StringDefinition = (*Definition)(nil)
	_ lexer.BytesDefinition  = (*Definition)(nil)
)

// New returns a Definition for lang. Tokens of the ignored types are dropped
// before they reach the parser.
//
func New(lang *rlex.Lang, ignore ...string) *Definition {
	d := &Definition{
		lang:    lang,
		ignore:  ignore,
		symbols: map[string]lexer.TokenType{"EOF": lexer.EOF},
	}
	for i, t := range lang.Types() {
		d.symbols[t] = lexer.EOF - lexer.TokenType(i+1)
	}
	return d
}

// Symbols returns the token types known to the lexer, by name.
//
func (d *Definition) Symbols() map[string]lexer.TokenType {
	return d.symbols
}

// Lex reads all of r and returns a lexer for its contents.
//
func (d *Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, string(b))
}

// LexBytes returns a lexer for input.
//
func (d *Definition) LexBytes(filename string, input []byte) (lexer.Lexer, error) {
	return d.LexString(filename, string(input))
}

// LexString returns a lexer for input.
//
func (d *Definition) LexString(filename string, input string) (lexer.Lexer, error) {
	l := rlex.NewLexer(d.lang, rlex.NewFile(filename, input))
	return &plex{l: l, src: rlex.NewFilter(l, d.ignore...), symbols: d.symbols}, nil
}

type plex struct {
	l       *rlex.Lexer
	src     rlex.TokenSource
	symbols map[string]lexer.TokenType
}

func position(p rlex.Position) lexer.Position {
	return lexer.Position{
		Filename: p.Filename,
		Offset:   p.Offset,
		Line:     p.Line,
		Column:   p.Column,
	}
}

func (p *plex) Next() (lexer.Token, error) {
	t, err := p.src.Next()
	if err != nil {
		if e, ok := err.(*rlex.UnexpectedInputError); ok {
			return lexer.Token{}, &lexer.Error{
				Msg: "unexpected input " + strconv.Quote(e.Text),
				Pos: position(e.Position),
			}
		}
		return lexer.Token{}, err
	}
	if t == nil {
		return lexer.EOFToken(position(p.l.Pos())), nil
	}
	return lexer.Token{
		Type:  p.symbols[t.Type],
		Value: t.Value,
		Pos: lexer.Position{
			Filename: p.l.File().Name(),
			Offset:   t.Offset,
			Line:     t.Line,
			Column:   t.Col,
		},
	}, nil
}
