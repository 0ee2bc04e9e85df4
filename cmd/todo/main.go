package main

import (
	"os"

	"github.com/idilsaglam/todofile/internal/cli"
)

func main() {
	// Flags and positional args are parsed by the CLI runner.
	code := cli.Run(os.Args[1:], cli.Options{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	os.Exit(code)
}
