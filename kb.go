package kbavl

import (
	"github.com/pkg/errors"
)

// KnowledgeBase owns an Index together with the options used to fill and
// query it.
type KnowledgeBase struct {
	opt   *options
	idx   *Index
	stats LoadStats
}

// New creates an empty knowledge base.
func New(options ...Option) *KnowledgeBase {
	opt := applyOptions(options)
	return &KnowledgeBase{
		opt: opt,
		idx: newIndex(opt),
	}
}

// Open creates a knowledge base and loads filename into it.
func Open(filename string, options ...Option) (*KnowledgeBase, error) {
	kb := New(options...)
	if _, err := kb.Load(filename); err != nil {
		return nil, err
	}
	return kb, nil
}

// Load adds the records of filename. It can be called several times, terms
// already present keep their first record. A missing file leaves the
// knowledge base as it was and returns an error matching ErrFileNotFound.
func (kb *KnowledgeBase) Load(filename string) (LoadStats, error) {
	stats, err := loadRecords(kb.opt, filename, kb.idx)
	kb.stats.add(stats)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			kb.opt.logger.Log("skip loading: %v", err)
		}
		return stats, err
	}
	return stats, nil
}

// Search returns the stored line for term.
func (kb *KnowledgeBase) Search(term string) (string, bool) {
	return kb.idx.Search(term)
}

// Lookup returns the parsed record for term, ErrKeyNotFound when absent.
func (kb *KnowledgeBase) Lookup(term string) (Record, error) {
	line, found := kb.idx.Search(term)
	if !found {
		return Record{}, errors.Wrapf(ErrKeyNotFound, "%q", term)
	}
	return ParseRecord(line)
}

// Query runs every term of the query file against the knowledge base.
func (kb *KnowledgeBase) Query(filename string, fn func(QueryResult)) (QueryStats, error) {
	stats, err := runQueries(kb.opt, filename, kb.idx, fn)
	if err != nil && errors.Is(err, ErrFileNotFound) {
		kb.opt.logger.Log("skip querying: %v", err)
	}
	return stats, err
}

func (kb *KnowledgeBase) Index() *Index {
	return kb.idx
}

// Stats sums the statistics of every Load call.
func (kb *KnowledgeBase) Stats() LoadStats {
	return kb.stats
}
