package kbavl

import (
	"strings"

	"github.com/pkg/errors"
)

// QueryResult is the outcome of one query line.
type QueryResult struct {
	Term   string
	Record string // the matched line, empty on a miss
	Found  bool
	Ops    int // nodes visited by this search
}

type QueryStats struct {
	Queries int
	Found   int
	Missed  int
}

// RunQueries searches s for every term in filename, one term per line with
// surrounding whitespace trimmed. Blank lines are skipped. fn, if not nil,
// is called with each result in file order.
func RunQueries(filename string, s Searcher, fn func(QueryResult), options ...Option) (QueryStats, error) {
	return runQueries(applyOptions(options), filename, s, fn)
}

func runQueries(opt *options, filename string, s Searcher, fn func(QueryResult)) (stats QueryStats, err error) {
	r, err := openFile(opt.fs, filename)
	if err != nil {
		return stats, err
	}
	defer func() {
		_ = r.Close()
	}()

	err = scanLines(r, opt.maxLineBytes, func(line string) error {
		term := strings.TrimSpace(line)
		if term == "" {
			return nil
		}

		before := s.SearchOpCount()
		record, found := s.Search(term)
		res := QueryResult{
			Term:   term,
			Record: record,
			Found:  found,
			Ops:    s.SearchOpCount() - before,
		}

		stats.Queries++
		if found {
			stats.Found++
		} else {
			stats.Missed++
		}
		if fn != nil {
			fn(res)
		}
		return nil
	})
	if err != nil {
		return stats, errors.Wrap(err, "read "+filename)
	}

	opt.logger.Log("queried %s: queries=%d found=%d missed=%d",
		filename, stats.Queries, stats.Found, stats.Missed)
	return stats, nil
}
