package main

import (
	"os"

	"tableflip.dev/jed/pkg/commands"
)

func main() {
	if err := commands.Execute(commands.New()); err != nil {
		os.Exit(1)
	}
}
