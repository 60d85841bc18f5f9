package kbavl_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeqown/kbavl"
)

const kbContent = "dog\tDogs are loyal companions.\t0.92\n" +
	"cat\tCats are independent.\t0.88\n" +
	"malformed line without tabs\n" +
	"bird\tBirds have feathers.\t1.0\n" +
	"cat\tCats are lazy.\t0.10\n" +
	"two\tfields\n" +
	"\n" +
	"fish\tFish live in water.\t0.97\n" +
	"ant\tAnts live in colonies.\t0.81\n"

func memFs(t testing.TB, files map[string]string) afero.Fs {
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0644))
	}
	return fs
}

func Test_LoadRecords(t *testing.T) {
	fs := memFs(t, map[string]string{"kb.txt": kbContent})
	idx := kbavl.NewIndex()

	stats, err := kbavl.LoadRecords("kb.txt", idx, kbavl.WithFileSystem(fs), kbavl.WithLogger(nil))
	require.NoError(t, err)

	assert.Equal(t, kbavl.LoadStats{Lines: 9, Inserted: 5, Duplicates: 1, Rejected: 3}, stats)
	assert.Equal(t, 5, idx.Count())
	assert.Equal(t, 5, idx.InsertOpCount())

	record, found := idx.Search("cat")
	assert.True(t, found)
	assert.Equal(t, "cat\tCats are independent.\t0.88", record)
	assert.NoError(t, idx.Tree().Check())
}

func Test_LoadRecords_lenient(t *testing.T) {
	fs := memFs(t, map[string]string{"kb.txt": kbContent})
	idx := kbavl.NewIndex()

	stats, err := kbavl.LoadRecords("kb.txt", idx,
		kbavl.WithFileSystem(fs), kbavl.WithStrictRecords(false), kbavl.WithLogger(nil))
	require.NoError(t, err)

	// only the blank line is rejected
	assert.Equal(t, kbavl.LoadStats{Lines: 9, Inserted: 7, Duplicates: 1, Rejected: 1}, stats)

	record, found := idx.Search("malformed line without tabs")
	assert.True(t, found)
	assert.Equal(t, "malformed line without tabs", record)
}

func Test_LoadRecords_missingFile(t *testing.T) {
	idx := kbavl.NewIndex()

	stats, err := kbavl.LoadRecords("absent.txt", idx,
		kbavl.WithFileSystem(afero.NewMemMapFs()), kbavl.WithLogger(nil))

	assert.True(t, errors.Is(err, kbavl.ErrFileNotFound))
	assert.Equal(t, kbavl.LoadStats{}, stats)
	assert.Equal(t, 0, idx.Count())
}

func Test_LoadRecords_lineTooLong(t *testing.T) {
	line := "term\t" + strings.Repeat("s", 10000) + "\t1\n"
	fs := memFs(t, map[string]string{"kb.txt": line})

	_, err := kbavl.LoadRecords("kb.txt", kbavl.NewIndex(),
		kbavl.WithFileSystem(fs), kbavl.WithMaxLineBytes(4096), kbavl.WithLogger(nil))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, kbavl.ErrFileNotFound))
}

func Test_ReadLines(t *testing.T) {
	fs := memFs(t, map[string]string{"q.txt": "cat\n  dog  \n\nzebra"})

	lines, err := kbavl.ReadLines("q.txt", kbavl.WithFileSystem(fs))
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "  dog  ", "", "zebra"}, lines)

	_, err = kbavl.ReadLines("none.txt", kbavl.WithFileSystem(fs))
	assert.True(t, errors.Is(err, kbavl.ErrFileNotFound))
}
