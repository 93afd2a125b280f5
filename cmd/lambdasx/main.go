// Command lambdasx is a read-eval-print loop for the untyped lambda
// calculus with integer constants and primitive arithmetic. Its shape is
// original_source/main.c's REPL loop translated into Go, extended with the
// teacher's own trace-toggle convention (t73fde-sx's cmd/main.go) behind a
// -trace flag.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"lambdasx/driver"
	"lambdasx/parser"
	"lambdasx/printer"
	"lambdasx/registry"
)

// lineBufferSize mirrors original_source/main.c's BUFF_SIZE: the original
// evaluator reads at most this many bytes of input per line.
const lineBufferSize = 255

func main() {
	trace := flag.Bool("trace", false, "log each REPL step to stderr")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: levelFor(*trace),
	}))
	slog.SetDefault(logger)

	builtins, standards := registry.Default()
	reg, err := registry.New(builtins, standards, parser.Parse)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lambdasx: cannot build registry: %v\n", err)
		os.Exit(1)
	}
	ev := driver.New(reg)

	repl(os.Stdin, os.Stdout, ev)
}

func levelFor(trace bool) slog.Level {
	if trace {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

func repl(in *os.File, out *os.File, ev *driver.Evaluator) {
	fmt.Fprintln(out, "Welcome to the lambda calculus evaluator.")
	fmt.Fprintln(out, "Press Ctrl+D to quit.")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, lineBufferSize), lineBufferSize)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		slog.Debug("read line", "line", line)

		e, err := parser.Parse(line)
		if err != nil {
			fmt.Fprintf(out, ";%v\n\n", err)
			continue
		}
		slog.Debug("parsed", "expr", e)

		result, err := ev.Evaluate(e)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v.\n", err)
			continue
		}

		fmt.Fprint(out, "-> ")
		fmt.Fprintln(out, printer.String(result))
		fmt.Fprintln(out)
	}
}
