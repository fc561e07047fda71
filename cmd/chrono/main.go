package main

import (
	"os"

	"chrono/cmd/chrono/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
