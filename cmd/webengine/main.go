// Command webengine drives the two parsing/evaluation pipelines from the
// command line: HTML tokenization+tree construction, and ECMAScript
// scanning+parsing+interpretation. The mode is selected positionally,
// following original_source/src/main.rs's argument dispatch
// (`webengine <path>` vs `webengine js` vs `webengine js <path>`).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/chtml-engine/webengine/html"
	"github.com/chtml-engine/webengine/js"
	"github.com/chtml-engine/webengine/js/runtime"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("webengine", flag.ContinueOnError)
	fs.SetOutput(stderr)
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "text", "log format: text, json")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(*logLevel, *logFormat, stderr)
	rest := fs.Args()

	switch len(rest) {
	case 1:
		if rest[0] == "js" {
			return runJSRepl(logger, stdin, stdout)
		}
		return runHTMLFile(logger, rest[0], stdout, stderr)
	case 2:
		if rest[0] != "js" {
			logger.Error("usage error", "args", rest)
			return 2
		}
		return runJSFile(logger, rest[1], stdout, stderr)
	default:
		fmt.Fprintln(stderr, "usage: webengine <path> | webengine js | webengine js <path>")
		return 2
	}
}

func newLogger(level, format string, w *os.File) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func runHTMLFile(logger *slog.Logger, path string, stdout, stderr *os.File) int {
	src, err := os.ReadFile(path)
	if err != nil {
		logger.Error("could not read file", "path", path, "error", err)
		return 1
	}

	doc, parseErrs := html.ParseHTML(string(src))
	for _, pe := range parseErrs {
		logger.Warn("HTML parse error", "code", pe)
	}

	if err := html.Fprint(stdout, doc); err != nil {
		logger.Error("could not write output", "error", err)
		return 1
	}
	return 0
}

func runJSFile(logger *slog.Logger, path string, stdout, stderr *os.File) int {
	src, err := os.ReadFile(path)
	if err != nil {
		logger.Error("could not read file", "path", path, "error", err)
		return 1
	}

	// had_error, in original_source/src/interpreter.rs's terms: any scan
	// or parse error during a script run exits 65, matching run_file's
	// std::process::exit(65) path.
	program, pipelineErrs := parseJS(string(src), logger)
	if len(pipelineErrs) > 0 {
		return 65
	}

	interp := runtime.NewInterpreter()
	runtime.ConsoleLogFunc = func(args []string) {
		for i, a := range args {
			if i > 0 {
				fmt.Fprint(stdout, " ")
			}
			fmt.Fprint(stdout, a)
		}
		fmt.Fprintln(stdout)
	}

	if _, thr := interp.Run(program); thr != nil {
		fmt.Fprintf(stderr, "Uncaught %s\n", thr.Value.String())
		return 1
	}
	return 0
}

func runJSRepl(logger *slog.Logger, stdin *os.File, stdout *os.File) int {
	interp := runtime.NewInterpreter()
	runtime.ConsoleLogFunc = func(args []string) {
		for i, a := range args {
			if i > 0 {
				fmt.Fprint(stdout, " ")
			}
			fmt.Fprint(stdout, a)
		}
		fmt.Fprintln(stdout)
	}

	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, "> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()

		program, parseErrs := parseJS(line, logger)
		if len(parseErrs) > 0 {
			continue
		}

		v, thr := interp.Run(program)
		if thr != nil {
			fmt.Fprintf(stdout, "Uncaught %s\n", thr.Value.String())
			continue
		}
		fmt.Fprintln(stdout, v.String())
	}
	return 0
}

func parseJS(src string, logger *slog.Logger) ([]js.Statement, []error) {
	toks, scanErrs := js.NewScanner(src).ScanTokens()
	for _, e := range scanErrs {
		logger.Warn("JS scan error", "error", e)
	}
	if len(scanErrs) > 0 {
		return nil, scanErrs
	}

	program, parseErrs := js.NewParser(toks).Parse()
	for _, e := range parseErrs {
		logger.Warn("JS parse error", "error", e)
	}
	return program, parseErrs
}
