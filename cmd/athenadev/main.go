package main

import (
	"fmt"
	"os"

	"github.com/lakequery/athena-pager-go/internal/devcli"
	"github.com/lakequery/athena-pager-go/internal/devcli/commands"
)

// Entry point for the dev CLI: athenadev.
func main() {
	if len(os.Args) < 2 {
		devcli.PrintGlobalUsage("athenadev")
		os.Exit(2)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "help", "-h", "--help":
		devcli.PrintGlobalUsage("athenadev")
		return

	case "page":
		if err := commands.RunPage(args); err != nil {
			fail(err)
		}
	case "rows":
		if err := commands.RunRows(args); err != nil {
			fail(err)
		}
	case "columns":
		if err := commands.RunColumns(args); err != nil {
			fail(err)
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		devcli.PrintGlobalUsage("athenadev")
		os.Exit(2)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
