package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
