package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	cli "github.com/urfave/cli/v2"

	"github.com/yeqown/kbavl"
)

// kbavl-ctl is a command line tool to query a knowledge base through an AVL index.
// Usage:
// $ kbavl-ctl [global flags] sub-command [sub-command flags] [args...]
// It has sub-commands:
// - search: kbavl-ctl search --queries FILE
// - lookup: kbavl-ctl lookup term [term...]
// - print: kbavl-ctl print [--data]
// - experiment: kbavl-ctl experiment --queries FILE --out FILE
//
// Global flags:
// - kb: knowledge base file, default is ./GenericsKB.txt
// - key-strategy: first-field or whole-record
// - verbose: log loading progress to stderr

func main() {
	app := newCliApp(afero.NewOsFs())
	if err := app.Run(os.Args); err != nil {
		fmt.Printf("kbavl-ctl failed: %v\n", err)
		os.Exit(1)
	}
}

func newCliApp(fs afero.Fs) *cli.App {
	app := cli.NewApp()
	app.Name = "kbavl-ctl"
	app.Usage = "knowledge base lookup tool backed by an AVL index"
	app.Version = "0.1.0"
	app.Commands = []*cli.Command{
		newSearchCommand(fs),
		newLookupCommand(fs),
		newPrintCommand(fs),
		newExperimentCommand(fs),
	}
	// global flags
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "kb",
			Aliases: []string{"k"},
			Usage:   "knowledge base file, .gz and .zst are decompressed",
			Value:   "GenericsKB.txt",
			EnvVars: []string{"KBAVL_KB"},
		},
		&cli.StringFlag{
			Name:    "key-strategy",
			Usage:   "index key, first-field or whole-record",
			Value:   kbavl.KeyFirstField.String(),
			EnvVars: []string{"KBAVL_KEY_STRATEGY"},
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "log loading and querying to stderr",
		},
	}

	return app
}

func kbOptions(c *cli.Context, fs afero.Fs) ([]kbavl.Option, error) {
	ks, err := kbavl.ParseKeyStrategy(c.String("key-strategy"))
	if err != nil {
		return nil, err
	}

	logger := kbavl.NopLogger()
	if c.Bool("verbose") {
		logger = kbavl.NewStdLogger(c.App.ErrWriter)
	}

	return []kbavl.Option{
		kbavl.WithFileSystem(fs),
		kbavl.WithKeyStrategy(ks),
		kbavl.WithLogger(logger),
	}, nil
}

// loadKB loads the knowledge base named by the global kb flag and puts it
// into the command context. A missing file is reported and the command
// carries on with an empty knowledge base.
func loadKB(fs afero.Fs) cli.BeforeFunc {
	return func(c *cli.Context) error {
		opts, err := kbOptions(c, fs)
		if err != nil {
			return err
		}

		filename := c.String("kb")
		kb := kbavl.New(opts...)
		if _, err = kb.Load(filename); err != nil {
			if !errors.Is(err, kbavl.ErrFileNotFound) {
				return err
			}
			fmt.Fprintf(c.App.ErrWriter, "\nError - File not found: %s\n\n", filename)
		} else {
			fmt.Fprintf(c.App.ErrWriter, "\nKnowledge base loaded successfully.\n\n")
		}

		c.Context = contextWithKB(c.Context, kb)
		return nil
	}
}
