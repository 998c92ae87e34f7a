package main

import (
	"os"

	"securemsg/cmd/securemsg/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
