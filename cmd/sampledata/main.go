package main

import (
	"os"

	"sampledata/cmd/sampledata/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
