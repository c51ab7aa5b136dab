// Package repl is an interactive line-oriented front end over
// internal/surface's Interpreter, the non-LSP counterpart of the
// teacher's one-shot CLI entrypoints (main.go, cmd/kanso-cli/main.go):
// same read-a-source/report-diagnostics shape, but reading one command
// at a time from stdin instead of a whole file.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/asm-nop/proost/internal/surface"
)

const prompt = "proost> "

// Run reads semicolon-terminated commands from in, executing each
// against a single Interpreter (so def'd names persist across lines),
// printing results to out until in is exhausted or the user types
// "quit"/"exit".
func Run(in io.Reader, out io.Writer) error {
	interp := surface.NewInterpreter()
	scanner := bufio.NewScanner(in)

	var pending strings.Builder
	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if pending.Len() == 0 && (line == "quit" || line == "exit") {
			return nil
		}
		pending.WriteString(line)
		pending.WriteString("\n")

		if !strings.HasSuffix(line, ";") {
			fmt.Fprint(out, "......> ")
			continue
		}

		source := pending.String()
		pending.Reset()

		results, err := interp.Run(source)
		if err != nil {
			color.New(color.FgRed, color.Bold).Fprintf(out, "%s\n", err)
		} else {
			for _, line := range results {
				fmt.Fprintln(out, line)
			}
		}
		fmt.Fprint(out, prompt)
	}
	fmt.Fprintln(out)
	return scanner.Err()
}
