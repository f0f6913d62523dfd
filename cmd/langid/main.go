package main

import (
	"fmt"
	"os"

	"tangled.org/ashwam.app/langid/cmd/langid/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
