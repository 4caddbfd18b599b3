package main

import (
	"os"

	"cipherbox/cmd/cipherbox/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
