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

// Command rlex tokenizes input files with a rule set loaded from a JSON file
// and prints one token per line:
//
//	rlex -rules go.json main.go
//
// With no file arguments, rlex reads standard input. If standard input is a
// terminal, it starts an interactive prompt where each line entered is
// tokenized.
//
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/db47h/rlex"
	"github.com/db47h/rlex/config"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/peterh/liner"
)

const prompt = "rlex> "

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type app struct {
	lang   *rlex.Lang
	ignore []string
	out    io.Writer
	errOut io.Writer
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rlex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rules := fs.String("rules", "", "JSON rule set `file` (required)")
	ignore := fs.String("ignore", "", "comma separated list of token types to skip, in addition to the rule set's")
	runs := fs.Bool("runs", false, "make the fallback rule match runs of characters")
	level := fs.String("trace", "Error", "trace `level` (Debug, Info or Error)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: rlex -rules FILE [flags] [FILE...]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *rules == "" {
		fs.Usage()
		return 2
	}

	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tr := tracing.Select("rlex")
	tr.SetTraceLevel(tracing.TraceLevelFromString(*level))
	tr.SetOutput(stderr)

	spec, err := config.LoadFile(*rules)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	var opts []rlex.Option
	if *runs {
		opts = append(opts, rlex.FallbackRuns(true))
	}
	lang, err := spec.Compile(opts...)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", *rules, err)
		return 1
	}
	a := &app{lang: lang, ignore: spec.Ignore, out: stdout, errOut: stderr}
	if *ignore != "" {
		a.ignore = append(a.ignore, strings.Split(*ignore, ",")...)
	}

	if fs.NArg() == 0 {
		if fi, err := stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
			return a.repl()
		}
		return a.lexReader("<stdin>", stdin)
	}
	status := 0
	for _, name := range fs.Args() {
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintln(stderr, err)
			status = 1
			continue
		}
		if s := a.lexReader(name, f); s != 0 {
			status = s
		}
		f.Close()
	}
	return status
}

func (a *app) lexReader(name string, r io.Reader) int {
	b, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintf(a.errOut, "%s: %v\n", name, err)
		return 1
	}
	l := rlex.NewLexer(a.lang, rlex.NewFile(name, string(b)))
	return a.print(l)
}

// print prints all tokens from l and returns the exit status. Errors are
// reported to a.errOut.
//
func (a *app) print(l *rlex.Lexer) int {
	for t, err := range rlex.NewFilter(l, a.ignore...).All() {
		if err != nil {
			var ue *rlex.UnexpectedInputError
			if errors.As(err, &ue) {
				fmt.Fprintln(a.errOut, l.FormatError(nil, fmt.Sprintf("unexpected input %q", ue.Text)))
			} else {
				fmt.Fprintln(a.errOut, err)
			}
			return 1
		}
		fmt.Fprintf(a.out, "%d:%d\t%s\t%q\n", t.Line, t.Col, t.Type, t.Value)
	}
	return 0
}

func (a *app) repl() int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	l := rlex.NewLexer(a.lang, rlex.NewFile("<stdin>", ""))
	for n := 1; ; n++ {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(a.out)
			return 0
		}
		if err != nil {
			fmt.Fprintln(a.errOut, err)
			return 1
		}
		ln.AppendHistory(line)
		l.ResetState(line, rlex.State{Line: n, Col: 1})
		a.print(l)
	}
}
