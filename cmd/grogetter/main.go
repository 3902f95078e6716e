package main

import (
	"os"

	"grogetter/cmd/grogetter/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
