// Package experiment measures how much work the index does as the
// knowledge base grows.
//
// For every dataset size a number of trials is run. A trial samples that
// many lines from the dataset (with replacement), inserts them into a fresh
// index and then runs every query, resetting the search counter before each
// one. The trial reports the insert counter and the search counter of the
// last query that was found. Rows aggregate the trials of one size into
// minimum, maximum and truncated average.
package experiment

import (
	"context"
	"math/rand"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/yeqown/kbavl"
)

var (
	ErrEmptyDataset = errors.New("empty dataset")
	ErrInvalidSize  = errors.New("dataset size must be positive")
)

// Config drives Run.
type Config struct {
	Sizes  []int // dataset sizes, one row each
	Trials int   // trials per size
	Seed   int64 // base seed, trials are reproducible for a given seed

	// Parallelism limits concurrent trials, 0 means runtime.NumCPU().
	Parallelism int

	// IndexOptions are applied to every trial index.
	IndexOptions []kbavl.Option
}

func DefaultConfig() Config {
	return Config{
		Sizes:  []int{10, 100, 1000, 10000, 100000},
		Trials: 10,
		Seed:   1,
	}
}

// Row is the aggregate of the trials of one dataset size.
type Row struct {
	Size      int
	InsertMin int
	InsertMax int
	InsertAvg int
	SearchMin int
	SearchMax int
	SearchAvg int
}

type trial struct {
	inserts  int
	searches int
}

// Run performs the experiment. Trials run concurrently, each on its own
// index, so no index is shared between goroutines.
func Run(ctx context.Context, dataset, queries []string, cfg Config) ([]Row, error) {
	if len(dataset) == 0 {
		return nil, ErrEmptyDataset
	}
	if cfg.Trials <= 0 {
		cfg.Trials = 1
	}
	for _, size := range cfg.Sizes {
		if size <= 0 {
			return nil, errors.Wrapf(ErrInvalidSize, "%d", size)
		}
	}

	limit := cfg.Parallelism
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	results := make([][]trial, len(cfg.Sizes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, size := range cfg.Sizes {
		size := size // per-iteration copy (go directive < 1.22)
		results[i] = make([]trial, cfg.Trials)
		for j := 0; j < cfg.Trials; j++ {
			seed := cfg.Seed + int64(i*cfg.Trials+j)
			out := &results[i][j]
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				*out = runTrial(dataset, queries, size, seed, cfg.IndexOptions)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "experiment aborted")
	}

	rows := make([]Row, len(cfg.Sizes))
	for i, size := range cfg.Sizes {
		rows[i] = aggregate(size, results[i])
	}
	return rows, nil
}

func runTrial(dataset, queries []string, size int, seed int64, opts []kbavl.Option) trial {
	r := rand.New(rand.NewSource(seed))
	idx := kbavl.NewIndex(opts...)

	for i := 0; i < size; i++ {
		idx.Insert(dataset[r.Intn(len(dataset))])
	}

	t := trial{inserts: idx.InsertOpCount()}
	for _, q := range queries {
		idx.ResetSearchOpCount()
		if _, found := idx.Search(q); found {
			t.searches = idx.SearchOpCount()
		}
	}
	return t
}

func aggregate(size int, trials []trial) Row {
	row := Row{Size: size}
	if len(trials) == 0 {
		return row
	}

	row.InsertMin, row.InsertMax = trials[0].inserts, trials[0].inserts
	row.SearchMin, row.SearchMax = trials[0].searches, trials[0].searches
	insertSum, searchSum := 0, 0
	for _, t := range trials {
		row.InsertMin = min(row.InsertMin, t.inserts)
		row.InsertMax = max(row.InsertMax, t.inserts)
		row.SearchMin = min(row.SearchMin, t.searches)
		row.SearchMax = max(row.SearchMax, t.searches)
		insertSum += t.inserts
		searchSum += t.searches
	}
	row.InsertAvg = insertSum / len(trials)
	row.SearchAvg = searchSum / len(trials)
	return row
}
