package kbavl

import (
	"github.com/pkg/errors"
)

// LoadStats counts what happened to the lines of a knowledge base file.
type LoadStats struct {
	Lines      int // lines read
	Inserted   int // new records
	Duplicates int // records whose term was already indexed
	Rejected   int // malformed lines, never inserted
}

func (s *LoadStats) add(o LoadStats) {
	s.Lines += o.Lines
	s.Inserted += o.Inserted
	s.Duplicates += o.Duplicates
	s.Rejected += o.Rejected
}

// LoadRecords reads the knowledge base filename line by line and inserts
// every well formed record into idx.
func LoadRecords(filename string, idx Inserter, options ...Option) (LoadStats, error) {
	return loadRecords(applyOptions(options), filename, idx)
}

func loadRecords(opt *options, filename string, idx Inserter) (stats LoadStats, err error) {
	r, err := openFile(opt.fs, filename)
	if err != nil {
		return stats, err
	}
	defer func() {
		_ = r.Close()
	}()

	err = scanLines(r, opt.maxLineBytes, func(line string) error {
		stats.Lines++
		if !acceptable(opt, line) {
			stats.Rejected++
			return nil
		}

		if idx.Insert(line) {
			stats.Inserted++
		} else {
			stats.Duplicates++
		}
		return nil
	})
	if err != nil {
		return stats, errors.Wrap(err, "read "+filename)
	}

	opt.logger.Log("loaded %s: lines=%d inserted=%d duplicates=%d rejected=%d",
		filename, stats.Lines, stats.Inserted, stats.Duplicates, stats.Rejected)
	return stats, nil
}

func acceptable(opt *options, line string) bool {
	if !opt.strictRecords {
		return line != ""
	}
	_, err := ParseRecord(line)
	return err == nil
}

// ReadLines returns every line of filename, compressed files included.
func ReadLines(filename string, options ...Option) ([]string, error) {
	opt := applyOptions(options)

	r, err := openFile(opt.fs, filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = r.Close()
	}()

	lines := make([]string, 0, 1024)
	err = scanLines(r, opt.maxLineBytes, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "read "+filename)
	}
	return lines, nil
}
