package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/peterh/liner"
)

const historyFile = ".pesc_history"

func main() {
	var trace, dump bool
	var outputMode string
	flag.BoolVar(&trace, "trace", false, "enable dispatch trace logging")
	flag.BoolVar(&dump, "dump", false, "dump parsed tokens before evaluating")
	flag.StringVar(&outputMode, "output", "", "stack output mode: human, simple or quiet")
	flag.Parse()

	mode := AutoOutput()
	if outputMode != "" {
		m, err := ParseOutputMode(outputMode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pesc: %v\n", err)
			os.Exit(2)
		}
		mode = m
	}

	opts := []Option{
		WithStdlib(),
		WithOutput(os.Stdout),
	}
	if trace {
		opts = append(opts, WithLogf(log.Printf))
	}
	p := New(opts...)

	if args := flag.Args(); len(args) > 0 {
		os.Exit(runScript(p, strings.Join(args, " "), mode, dump))
	}
	os.Exit(repl(p, mode, dump))
}

func runScript(p *Pesc, src string, mode OutputMode, dump bool) int {
	_, toks, err := p.Parse(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if dump {
		fmt.Fprintln(os.Stderr, repr.String(toks, repr.Indent("  ")))
	}
	if err := p.Eval(toks); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	mode.FormatStack(os.Stdout, p)
	return 0
}

func repl(p *Pesc, mode OutputMode, dump bool) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(completer(p))

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("pesc> ")
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println("Use Ctrl-D to quit.")
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		_, toks, err := p.Parse(line)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		if dump {
			fmt.Println(repr.String(toks, repr.Indent("  ")))
		}

		// the stack survives an eval error: completed tokens stand and
		// the failed call has been rolled back
		if err := p.Eval(toks); err != nil {
			fmt.Printf("error: %v\n", err)
		}
		mode.FormatStack(os.Stdout, p)
	}
}

// completer finishes a partial [function reference from the registry.
func completer(p *Pesc) liner.Completer {
	return func(line string) []string {
		open := strings.LastIndex(line, "[")
		if open < 0 || strings.Contains(line[open:], "]") {
			return nil
		}
		prefix := line[open+1:]

		names := p.FunctionNames()
		sort.Strings(names)

		var out []string
		for _, name := range names {
			if strings.HasPrefix(name, prefix) {
				out = append(out, line[:open+1]+name+"]")
			}
		}
		return out
	}
}
