package commands

import (
	"fmt"

	"github.com/symfony-cli/console"
	"github.com/symfony-cli/terminal"

	"github.com/dkarlovi/exifrename/config"
	"github.com/dkarlovi/exifrename/rename"
	"github.com/dkarlovi/exifrename/scan"
)

var metaCmd = &console.Command{
	Category:    "",
	Name:        "meta",
	Usage:       "List metadata and the resolved creation time",
	Description: "Prints every file's metadata tree and the creation time a rename would use, without renaming anything",
	Flags:       commonFlags(),
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

		log := newLogger(c.Bool("verbose"))
		engine := newEngine(c, cfg, log, false)

		files, err := scan.Collect(path, c.Bool("recursive"), c.Bool("glob"))
		if err != nil {
			return console.Exit(fmt.Sprintf("Failed to collect files: %v", err), 1)
		}

		counts := make(map[rename.Outcome]int)
		for _, file := range files {
			tree, used, err := engine.Inspect(file, opts)
			if tree == nil {
				counts[rename.OutcomeError]++
				fmt.Fprintf(c.App.ErrWriter, "%s: %v\n", file, err)
				continue
			}
			terminal.Printfln("<info>%s</>", file)
			if err != nil {
				// The tree is still worth listing when no creation time
				// resolved from it.
				counts[rename.OutcomeError]++
				terminal.Printfln("  <comment>Used creation time</>: unresolved (%v)", err)
			} else {
				counts[rename.OutcomeUnchanged]++
				terminal.Printfln("  <comment>Used creation time</>: %s", used)
			}
			for _, group := range tree.Groups() {
				for _, key := range tree.Keys(group) {
					value, _ := tree.Lookup(group, key)
					terminal.Printfln("  %s/%s: %s", group, key, value)
				}
			}
		}
		printSummary(c, counts)
		return nil
	},
}
