package kbavl

import "sync"

var (
	_ Inserter = (*SyncIndex)(nil)
	_ Searcher = (*SyncIndex)(nil)
)

// SyncIndex guards an Index with one exclusive lock. Search takes the same
// lock as Insert because it updates the search counter.
type SyncIndex struct {
	lock sync.Mutex
	idx  *Index
}

func NewSyncIndex(options ...Option) *SyncIndex {
	return &SyncIndex{
		idx: NewIndex(options...),
	}
}

func (si *SyncIndex) Insert(record string) bool {
	si.lock.Lock()
	defer si.lock.Unlock()

	return si.idx.Insert(record)
}

func (si *SyncIndex) Search(term string) (string, bool) {
	si.lock.Lock()
	defer si.lock.Unlock()

	return si.idx.Search(term)
}

// SearchCounted searches and returns how many nodes this search visited,
// which SearchOpCount deltas cannot tell when other goroutines search too.
func (si *SyncIndex) SearchCounted(term string) (string, bool, int) {
	si.lock.Lock()
	defer si.lock.Unlock()

	before := si.idx.SearchOpCount()
	record, found := si.idx.Search(term)
	return record, found, si.idx.SearchOpCount() - before
}

func (si *SyncIndex) Count() int {
	si.lock.Lock()
	defer si.lock.Unlock()

	return si.idx.Count()
}

func (si *SyncIndex) SearchOpCount() int {
	si.lock.Lock()
	defer si.lock.Unlock()

	return si.idx.SearchOpCount()
}

func (si *SyncIndex) InsertOpCount() int {
	si.lock.Lock()
	defer si.lock.Unlock()

	return si.idx.InsertOpCount()
}

func (si *SyncIndex) ResetSearchOpCount() {
	si.lock.Lock()
	defer si.lock.Unlock()

	si.idx.ResetSearchOpCount()
}

func (si *SyncIndex) ResetInsertOpCount() {
	si.lock.Lock()
	defer si.lock.Unlock()

	si.idx.ResetInsertOpCount()
}
