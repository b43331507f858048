package commands

import (
	"fmt"

	"github.com/symfony-cli/console"

	"github.com/dkarlovi/exifrename/config"
	"github.com/dkarlovi/exifrename/rename"
	"github.com/dkarlovi/exifrename/scan"
)

var renameCmd = &console.Command{
	Category:    "",
	Name:        "rename",
	Usage:       "Rename media files from their creation-time metadata",
	Description: "Resolves each file's embedded creation time and renames it to [prefix]<time>[_counter][suffix]<ext>, avoiding collisions",
	Flags: append(commonFlags(),
		&console.BoolFlag{Name: "dry", Usage: "Dry run, do not modify any file"},
		&console.BoolFlag{Name: "skip-thumbnail", Usage: "Skip thumbnail creation for videos"},
		&console.IntFlag{Name: "thumbnail-width", Usage: "Width of the video thumbnail"},
	),
	Action: func(c *console.Context) error {
		args := c.Args().Slice()
		if len(args) == 0 {
			return console.Exit("missing path argument", 1)
		}
		path := args[0]

		cfg, err := config.LoadConfigPrefer(c.String("config"))
		if err != nil {
			return console.Exit(fmt.Sprintf("Failed to load config: %v", err), 1)
		}

		opts, err := runOptions(c)
		if err != nil {
			return console.Exit(err.Error(), 1)
		}
		opts.DryRun = c.Bool("dry")

		log := newLogger(c.Bool("verbose"))
		engine := newEngine(c, cfg, log, true)

		files, err := scan.Collect(path, c.Bool("recursive"), c.Bool("glob"))
		if err != nil {
			return console.Exit(fmt.Sprintf("Failed to collect files: %v", err), 1)
		}

		counts := make(map[rename.Outcome]int)
		for _, file := range files {
			result := engine.Process(file, opts)
			counts[result.Outcome]++
		}

		printSummary(c, counts)
		return nil
	},
}
