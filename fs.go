package kbavl

import (
	"github.com/spf13/afero"
)

// FileSystem is the interface that wraps the basic methods for a file
// system. Knowledge base and query files are read through it, so that the
// default os file system can be replaced by other implementations.
//
// It's useful for testing, since it can be replaced by afero.NewMemMapFs().
type FileSystem = afero.Fs
