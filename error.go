package kbavl

import "github.com/pkg/errors"

var (
	ErrMalformedRecord    = errors.New("malformed record")
	ErrKeyNotFound        = errors.New("key not found")
	ErrFileNotFound       = errors.New("file not found")
	ErrUnknownKeyStrategy = errors.New("unknown key strategy")
)
