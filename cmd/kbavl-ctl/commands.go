package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	cli "github.com/urfave/cli/v2"

	"github.com/yeqown/kbavl"
	"github.com/yeqown/kbavl/experiment"
)

func printRecord(w io.Writer, line string) {
	record, err := kbavl.ParseRecord(line)
	if err != nil {
		fmt.Fprintln(w, line)
		return
	}
	fmt.Fprintln(w, record.String())
}

func newSearchCommand(fs afero.Fs) *cli.Command {
	return &cli.Command{
		Name:   "search",
		Usage:  "search every term of the query file",
		Before: loadKB(fs),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "queries",
				Aliases: []string{"q"},
				Usage:   "query file, one term per line",
				Value:   "GenericsKB-queries.txt",
			},
		},
		Action: func(c *cli.Context) error {
			kb := kbFromContext(c.Context)
			w := c.App.Writer

			filename := c.String("queries")
			_, err := kb.Query(filename, func(r kbavl.QueryResult) {
				if r.Found {
					printRecord(w, r.Record)
				} else {
					fmt.Fprintf(w, "Term not found: \"%s\"\n", r.Term)
				}
				fmt.Fprintln(w)
			})
			if err != nil {
				if !errors.Is(err, kbavl.ErrFileNotFound) {
					return err
				}
				fmt.Fprintf(c.App.ErrWriter, "\nError - File not found: %s\n\n", filename)
			}

			fmt.Fprintf(w, "Total Search Operations: %d\n", kb.Index().SearchOpCount())
			fmt.Fprintf(w, "Total Insert Operations: %d\n", kb.Index().InsertOpCount())
			return nil
		},
	}
}

func newLookupCommand(fs afero.Fs) *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "look up the terms given as arguments",
		ArgsUsage: "term [term...]",
		Before:    loadKB(fs),
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("lookup needs at least one term")
			}

			kb := kbFromContext(c.Context)
			w := c.App.Writer
			for _, term := range c.Args().Slice() {
				term = strings.TrimSpace(term)
				record, err := kb.Lookup(term)
				switch {
				case err == nil:
					fmt.Fprintln(w, record.String())
				case errors.Is(err, kbavl.ErrKeyNotFound):
					fmt.Fprintf(w, "Term not found: \"%s\"\n", term)
				default:
					// found, but loaded leniently and not a three field record
					line, _ := kb.Search(term)
					fmt.Fprintln(w, line)
				}
			}
			return nil
		},
	}
}

func newPrintCommand(fs afero.Fs) *cli.Command {
	return &cli.Command{
		Name:   "print",
		Usage:  "draw the index tree",
		Before: loadKB(fs),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "data",
				Usage: "print records, heights and balance factors",
			},
		},
		Action: func(c *cli.Context) error {
			kb := kbFromContext(c.Context)
			tree := kb.Index().Tree()
			depth := tree.Print(c.App.Writer, c.Bool("data"))
			fmt.Fprintf(c.App.Writer, "records: %d depth: %d\n", tree.Count(), depth)
			return tree.Check()
		},
	}
}

func newExperimentCommand(fs afero.Fs) *cli.Command {
	def := experiment.DefaultConfig()
	return &cli.Command{
		Name:  "experiment",
		Usage: "measure insert and search operations over growing dataset sizes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "queries",
				Aliases: []string{"q"},
				Usage:   "query file, one term per line",
				Value:   "GenericsKB-queries.txt",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "results file",
				Value:   "experiment_results.txt",
			},
			&cli.IntSliceFlag{
				Name:  "sizes",
				Usage: "dataset sizes",
				Value: cli.NewIntSlice(def.Sizes...),
			},
			&cli.IntFlag{
				Name:  "trials",
				Usage: "trials per dataset size",
				Value: def.Trials,
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "random seed of the first trial",
				Value: def.Seed,
			},
			&cli.IntFlag{
				Name:  "parallel",
				Usage: "concurrent trials, 0 for one per cpu",
			},
		},
		Action: func(c *cli.Context) error {
			opts, err := kbOptions(c, fs)
			if err != nil {
				return err
			}

			dataset, err := kbavl.ReadLines(c.String("kb"), opts...)
			if err != nil {
				return errors.Wrap(err, "read dataset")
			}

			queryFile := c.String("queries")
			queries, err := kbavl.ReadLines(queryFile, opts...)
			if err != nil {
				if !errors.Is(err, kbavl.ErrFileNotFound) {
					return errors.Wrap(err, "read queries")
				}
				fmt.Fprintf(c.App.ErrWriter, "\nError - File not found: %s\n\n", queryFile)
			}
			for i := range queries {
				queries[i] = strings.TrimSpace(queries[i])
			}

			cfg := def
			cfg.Sizes = c.IntSlice("sizes")
			cfg.Trials = c.Int("trials")
			cfg.Seed = c.Int64("seed")
			cfg.Parallelism = c.Int("parallel")
			cfg.IndexOptions = opts

			rows, err := experiment.Run(c.Context, dataset, queries, cfg)
			if err != nil {
				return err
			}

			out := c.String("out")
			if err = experiment.WriteFile(fs, out, rows); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Experiment completed. Results written to %s.\n", out)
			return nil
		},
	}
}
