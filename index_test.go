package kbavl_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/yeqown/kbavl"
)

var animals = []string{
	"dog\tDogs are loyal companions.\t0.92",
	"cat\tCats are independent.\t0.88",
	"bird\tBirds have feathers.\t1.0",
	"fish\tFish live in water.\t0.97",
	"ant\tAnts live in colonies.\t0.81",
}

type indexTestSuite struct {
	suite.Suite

	idx *kbavl.Index
}

func (su *indexTestSuite) SetupTest() {
	su.idx = kbavl.NewIndex()
	for _, line := range animals {
		su.Require().True(su.idx.Insert(line))
	}
}

func (su *indexTestSuite) Test_Index_Search() {
	record, found := su.idx.Search("cat")
	su.True(found)
	su.Equal("cat\tCats are independent.\t0.88", record)

	record, found = su.idx.Search("zebra")
	su.False(found)
	su.Empty(record)

	su.NoError(su.idx.Tree().Check())
	su.Equal([]string{"ant", "bird", "cat", "dog", "fish"}, su.idx.Tree().Keys())
}

func (su *indexTestSuite) Test_Index_FirstWriterWins() {
	su.False(su.idx.Insert("cat\tCats are dogs.\t0.01"))
	su.Equal(len(animals), su.idx.Count())

	record, found := su.idx.Search("cat")
	su.True(found)
	su.Equal("cat\tCats are independent.\t0.88", record)
}

func (su *indexTestSuite) Test_Index_Counters() {
	su.Equal(len(animals), su.idx.InsertOpCount())
	su.Equal(0, su.idx.SearchOpCount())

	su.idx.Search("cat")   // root
	su.idx.Search("zebra") // cat -> dog -> fish
	su.Equal(4, su.idx.SearchOpCount())

	su.idx.ResetSearchOpCount()
	su.Equal(0, su.idx.SearchOpCount())
	su.Equal(len(animals), su.idx.InsertOpCount())

	su.idx.ResetInsertOpCount()
	su.Equal(0, su.idx.InsertOpCount())
	su.Equal(len(animals), su.idx.Count())
}

func (su *indexTestSuite) Test_Index_UntabbedRecord() {
	su.True(su.idx.Insert("lonely"))

	record, found := su.idx.Search("lonely")
	su.True(found)
	su.Equal("lonely", record)
}

func Test_Index(t *testing.T) {
	suite.Run(t, new(indexTestSuite))
}

func Test_Index_WholeRecordKeying(t *testing.T) {
	idx := kbavl.NewIndex(kbavl.WithKeyStrategy(kbavl.KeyWholeRecord))
	for _, line := range animals {
		idx.Insert(line)
	}
	if idx.KeyStrategy() != kbavl.KeyWholeRecord {
		t.Fatalf("key strategy: %v", idx.KeyStrategy())
	}

	record, found := idx.Search("fish")
	if !found || record != animals[3] {
		t.Fatalf("search fish: %q %v", record, found)
	}
	if _, found = idx.Search("zebra"); found {
		t.Fatal("zebra found")
	}

	// the same term with another statement is a different whole-record key
	if !idx.Insert("fish\tFish have gills.\t0.9") {
		t.Fatal("whole record keys should differ")
	}
}

// A term holding a byte below '\t' sorts differently as a whole line than
// as a bare term, so a whole-record index can miss a present record.
func Test_Index_WholeRecordKeyingMismatch(t *testing.T) {
	odd := "a\x01b\tstatement\t1"
	plain := "a\tstatement\t1"

	whole := kbavl.NewIndex(kbavl.WithKeyStrategy(kbavl.KeyWholeRecord))
	whole.Insert(odd)
	whole.Insert(plain)
	if _, found := whole.Search("a"); found {
		t.Fatal("expected the whole-record index to miss \"a\"")
	}
	if _, found := whole.Search("a\x01b"); !found {
		t.Fatal("expected root term to be found")
	}

	first := kbavl.NewIndex()
	first.Insert(odd)
	first.Insert(plain)
	if _, found := first.Search("a"); !found {
		t.Fatal("expected the first-field index to find \"a\"")
	}
}
