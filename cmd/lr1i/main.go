/*
Lr1i starts an interactive LR(1) construction session.

It reads in a grammar file and builds a canonical LR(1) parser from it, then
repeatedly reads an input string from the user and drives the constructed
parser over it, printing the resulting trace and whether the string was
accepted.

Usage:

	lr1i [flags]

The flags are:

	-v, --version
		Give the current version of lr1i and then exit.

	-g, --grammar FILE
		Load the grammar from the given file. Defaults to "grammar.txt" in
		the current working directory.

	-d, --direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading input, even if launched in a
		tty with stdin and stdout.

	-f, --format FORMAT
		Output format for the ":dump table" meta-command: "text" (default)
		or "yaml". ":dump dot" always prints DOT text.

Once a session has started, each line of input is treated as a string to
parse against the loaded grammar. Lines beginning with ":" are meta-commands:

	:dump table   print the ACTION/GOTO tables
	:dump dot     print the canonical collection as Graphviz DOT
	:reload       reread the grammar file
	:quit         exit the interpreter
*/
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/corvidlabs/lr1construct/internal/lr1/export"
	"github.com/corvidlabs/lr1construct/internal/lr1/grammar"
	"github.com/corvidlabs/lr1construct/internal/lr1/parse"
	"github.com/corvidlabs/lr1construct/internal/version"
	"github.com/dustin/go-humanize"
	shellquote "github.com/kballard/go-shellquote"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	ExitSuccess = iota
	ExitInitError
	ExitRuntimeError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of lr1i and then exit.")
	flagGrammar = pflag.StringP("grammar", "g", "grammar.txt", "The grammar file to construct a parser from.")
	flagDirect  = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of GNU readline.")
	flagFormat  = pflag.StringP("format", "f", "text", `Output format for ":dump table": "text" or "yaml".`)
)

// lineReader abstracts over readline.Instance and a plain stdin reader, in
// the manner of dekarrin/tunaq's internal/input package's Direct/Interactive
// split.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		}
		os.Exit(returnCode)
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("lr1i (lr1construct v%s)\n", version.Current)
		return
	}

	grammarText, err := os.ReadFile(*flagGrammar)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: could not read grammar file: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	tables, err := buildTables(string(grammarText))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	reportConstructed(tables, len(grammarText))

	rl, err := newLineReader()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: could not start input reader: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if !handleMeta(line, tables) {
				break
			}
			continue
		}

		runOne(tables, line)
	}
}

func buildTables(grammarText string) (*parse.Tables, error) {
	g := grammar.ParseGrammar(grammarText)
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("grammar has no usable productions")
	}
	return parse.BuildTables(g)
}

func reportConstructed(tables *parse.Tables, grammarBytes int) {
	fmt.Printf(
		"Constructed %s-state LR(1) parser from %s of grammar text.\n",
		humanize.Comma(int64(len(tables.Collection.States))),
		humanize.Bytes(uint64(grammarBytes)),
	)
	if tables.HasConflicts() {
		fmt.Printf("WARNING: %d ACTION conflict(s) detected; see \":dump table\".\n", len(tables.Conflicts))
	}
}

// handleMeta processes a ":"-prefixed command, returning false if the
// session should end.
func handleMeta(line string, tables *parse.Tables) bool {
	args, err := shellquote.Split(strings.TrimPrefix(line, ":"))
	if err != nil || len(args) == 0 {
		fmt.Fprintln(os.Stderr, "ERROR: could not parse meta-command")
		return true
	}

	switch args[0] {
	case "quit", "exit":
		return false
	case "dump":
		dumpTarget := "table"
		if len(args) > 1 {
			dumpTarget = args[1]
		}
		dump(tables, dumpTarget)
	case "reload":
		grammarText, err := os.ReadFile(*flagGrammar)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: could not reread grammar file: %s\n", err.Error())
			return true
		}
		newTables, err := buildTables(string(grammarText))
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			return true
		}
		*tables = *newTables
		reportConstructed(tables, len(grammarText))
	default:
		fmt.Fprintf(os.Stderr, "ERROR: unknown meta-command %q\n", args[0])
	}
	return true
}

func dump(tables *parse.Tables, target string) {
	switch target {
	case "table":
		if *flagFormat == "yaml" {
			writeYAML(tables.Action)
			return
		}
		fmt.Println(tables.String())
	case "dot":
		fmt.Println(export.DOT(tables.Collection))
	default:
		fmt.Fprintf(os.Stderr, "ERROR: unknown dump target %q\n", target)
	}
}

func writeYAML(v interface{}) {
	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: could not encode YAML: %s\n", err.Error())
	}
}

func runOne(tables *parse.Tables, input string) {
	start := time.Now()
	tokens := parse.Tokenize(input)
	result := parse.Run(tables, tokens)
	elapsed := time.Since(start)

	for _, step := range result.Steps {
		fmt.Printf("%3d | %-30s | %-20s | %s\n", step.StepNum, strings.Join(step.Stack, " "), strings.Join(step.Input, " "), step.Action)
	}

	if result.Accepted {
		fmt.Printf("ACCEPTED in %s (%d steps)\n", elapsed, len(result.Steps))
		return
	}

	if result.StepLimited {
		fmt.Println("REJECTED: step limit exceeded, the grammar likely has an unresolved conflict driving it into a loop")
		return
	}

	expected := parse.ExpectedString(result.Expected)
	fmt.Printf("REJECTED at token %q (state %d); expected %s\n", result.ErrorToken, result.ErrorState, expected)
}

func newLineReader() (lineReader, error) {
	if *flagDirect || !isatty.IsTerminal(os.Stdin.Fd()) {
		return &directReader{}, nil
	}

	rl, err := readline.NewEx(&readline.Config{Prompt: "lr1> "})
	if err != nil {
		return nil, err
	}
	return rl, nil
}

// directReader reads one line at a time from stdin without readline, for
// non-tty or --direct invocations, in the style of dekarrin/tunaq's
// input.DirectCommandReader.
type directReader struct {
	buf []byte
}

func (d *directReader) Readline() (string, error) {
	var line []byte
	b := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(b)
		if n > 0 {
			if b[0] == '\n' {
				break
			}
			line = append(line, b[0])
		}
		if err != nil {
			if len(line) == 0 {
				return "", err
			}
			break
		}
	}
	return string(line), nil
}

func (d *directReader) Close() error {
	return nil
}
