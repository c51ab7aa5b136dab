package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/asm-nop/proost/internal/surface"
	"github.com/asm-nop/proost/repl"
)

func main() {
	if len(os.Args) < 2 {
		runRepl()
		return
	}

	path := os.Args[1]
	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("Failed to read file: %s", err)
		os.Exit(1)
	}

	interp := surface.NewInterpreter()
	results, err := interp.Run(string(source))
	if err != nil {
		color.Red("❌ %s", err)
		os.Exit(1)
	}

	for _, line := range results {
		fmt.Println(line)
	}
	color.Green("✅ Successfully processed %s", path)
}

func runRepl() {
	if err := repl.Run(os.Stdin, os.Stdout); err != nil {
		color.Red("%s", err)
		os.Exit(1)
	}
}
