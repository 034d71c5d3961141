package main

import (
	"os"
)

// main is the entry point of the crowdledger service. Subcommands load
// configuration from the environment; see newRootCommand.
func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
