package kbavl

import (
	"strings"

	"github.com/pkg/errors"
)

// KeyStrategy decides which part of a record orders the index.
//
// KeyFirstField keys on the term, the same field Search compares against.
//
// KeyWholeRecord orders nodes by the complete line while Search still
// compares the term with each node's first field. The two orders agree as
// long as no term contains a byte below '\t', but they are not the same
// order, and a lookup can miss a record that is present. It exists to
// reproduce indexes built that way; prefer KeyFirstField.
type KeyStrategy int

const (
	KeyFirstField KeyStrategy = iota
	KeyWholeRecord
)

// Key extracts the index key of record.
func (ks KeyStrategy) Key(record string) string {
	if ks == KeyWholeRecord {
		return record
	}
	return FirstField(record)
}

func (ks KeyStrategy) String() string {
	switch ks {
	case KeyFirstField:
		return "first-field"
	case KeyWholeRecord:
		return "whole-record"
	}
	return "unknown"
}

// ParseKeyStrategy is the inverse of KeyStrategy.String.
func ParseKeyStrategy(s string) (KeyStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first-field":
		return KeyFirstField, nil
	case "whole-record":
		return KeyWholeRecord, nil
	}
	return 0, errors.Wrapf(ErrUnknownKeyStrategy, "%q", s)
}
