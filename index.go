package kbavl

import (
	"strings"

	"github.com/yeqown/kbavl/avl"
)

// Inserter accepts raw knowledge base lines.
type Inserter interface {
	Insert(record string) bool
}

// Searcher answers exact-term lookups and reports its search counter.
type Searcher interface {
	Search(term string) (string, bool)
	SearchOpCount() int
}

var (
	_ Inserter = (*Index)(nil)
	_ Searcher = (*Index)(nil)
)

// Index is a balanced index of knowledge base lines. Each line is stored
// whole, ordered by the key its KeyStrategy extracts.
type Index struct {
	keyStrategy KeyStrategy
	tree        *avl.Tree[string]
}

// NewIndex creates an empty index, only WithKeyStrategy is relevant here.
func NewIndex(options ...Option) *Index {
	opt := applyOptions(options)
	return newIndex(opt)
}

func newIndex(opt *options) *Index {
	return &Index{
		keyStrategy: opt.keyStrategy,
		tree:        avl.New[string](),
	}
}

// Insert adds record, returning false when its key is already indexed.
// The record is not validated, callers filter malformed lines beforehand.
func (idx *Index) Insert(record string) bool {
	return idx.tree.Insert(idx.keyStrategy.Key(record), record)
}

// Search looks term up and returns the stored line on a match.
func (idx *Index) Search(term string) (string, bool) {
	if idx.keyStrategy == KeyWholeRecord {
		return idx.tree.SearchFunc(func(nodeKey string) int {
			return strings.Compare(term, FirstField(nodeKey))
		})
	}
	return idx.tree.Search(term)
}

func (idx *Index) KeyStrategy() KeyStrategy {
	return idx.keyStrategy
}

// Count is the number of indexed records.
func (idx *Index) Count() int {
	return idx.tree.Count()
}

// Tree exposes the underlying tree for inspection and printing.
func (idx *Index) Tree() *avl.Tree[string] {
	return idx.tree
}

func (idx *Index) SearchOpCount() int {
	return idx.tree.SearchOpCount()
}

func (idx *Index) InsertOpCount() int {
	return idx.tree.InsertOpCount()
}

func (idx *Index) ResetSearchOpCount() {
	idx.tree.ResetSearchOpCount()
}

func (idx *Index) ResetInsertOpCount() {
	idx.tree.ResetInsertOpCount()
}
