package main

import (
	"fmt"
	"os"

	"github.com/symfony-cli/console"

	"github.com/dkarlovi/exifrename/commands"
)

func main() {
	app := &console.Application{
		Name:     "exifrename",
		Usage:    "Rename media files from their embedded creation-time metadata",
		Version:  "0.1.0",
		Commands: commands.Commands(),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
