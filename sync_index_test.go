package kbavl

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SyncIndex_concurrent(t *testing.T) {
	si := NewSyncIndex()

	const (
		writers = 8
		perW    = 500
	)

	wg := sync.WaitGroup{}
	for w := 0; w < writers; w++ {
		wg.Add(2)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perW; i++ {
				term := "t" + strconv.Itoa(w*perW+i)
				si.Insert(term + "\tstatement\t0.5")
			}
		}(w)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perW; i++ {
				si.Search("t" + strconv.Itoa(w*perW+i))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, writers*perW, si.Count())
	assert.Equal(t, writers*perW, si.InsertOpCount())
	require.NoError(t, si.idx.Tree().Check())

	for i := 0; i < writers*perW; i++ {
		_, found := si.Search("t" + strconv.Itoa(i))
		require.True(t, found, i)
	}
}

func Test_SyncIndex_counters(t *testing.T) {
	si := NewSyncIndex()
	si.Insert("b\tx\t1")
	si.Insert("a\tx\t1")
	si.Insert("c\tx\t1")

	record, found, ops := si.SearchCounted("c")
	assert.True(t, found)
	assert.Equal(t, "c\tx\t1", record)
	assert.Equal(t, 2, ops)
	assert.Equal(t, 2, si.SearchOpCount())

	si.ResetSearchOpCount()
	assert.Equal(t, 0, si.SearchOpCount())

	assert.Equal(t, 3, si.InsertOpCount())
	si.ResetInsertOpCount()
	assert.Equal(t, 0, si.InsertOpCount())
	assert.Equal(t, 3, si.Count())
}
