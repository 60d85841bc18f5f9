package kbavl

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	fieldSeparator = "\t"
	recordFields   = 3
)

// Record is a parsed knowledge base line.
type Record struct {
	Term      string
	Statement string
	Score     string
}

// ParseRecord splits line into term, statement and score. Lines that do not
// have exactly three fields, or have an empty term, are malformed.
func ParseRecord(line string) (Record, error) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) != recordFields {
		return Record{}, errors.Wrapf(ErrMalformedRecord, "%d fields", len(parts))
	}
	if parts[0] == "" {
		return Record{}, errors.Wrap(ErrMalformedRecord, "empty term")
	}

	return Record{
		Term:      parts[0],
		Statement: parts[1],
		Score:     parts[2],
	}, nil
}

// Line joins the fields back into a knowledge base line.
func (r Record) Line() string {
	return r.Term + fieldSeparator + r.Statement + fieldSeparator + r.Score
}

// String renders "term: statement (score)".
func (r Record) String() string {
	return r.Term + ": " + r.Statement + " (" + r.Score + ")"
}

// FirstField returns the text before the first tab, or the whole line when
// there is none.
func FirstField(line string) string {
	field, _, _ := strings.Cut(line, fieldSeparator)
	return field
}
