package kbavl

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

const (
	gzipExt = ".gz"
	zstdExt = ".zst"
)

// compressionOf returns the compression extension of filename, "" for plain files.
// e.g.
// - GenericsKB.txt     -> ""
// - GenericsKB.txt.gz  -> ".gz"
// - path/to/kb.ZST     -> ".zst"
func compressionOf(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case gzipExt, zstdExt:
		return ext
	}
	return ""
}

// readCloser reads from the outermost decoder and closes every layer.
type readCloser struct {
	io.Reader
	closers []func() error
}

func (rc *readCloser) Close() error {
	var first error
	for _, fn := range rc.closers {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// openFile opens filename on fs and unwraps gzip or zstd compression chosen
// by its extension. A missing file is reported as ErrFileNotFound.
func openFile(fs FileSystem, filename string) (io.ReadCloser, error) {
	fd, err := fs.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrFileNotFound, filename)
		}
		return nil, errors.Wrap(err, "open "+filename)
	}

	switch compressionOf(filename) {
	case gzipExt:
		zr, err := gzip.NewReader(fd)
		if err != nil {
			_ = fd.Close()
			return nil, errors.Wrap(err, "gzip header "+filename)
		}
		return &readCloser{Reader: zr, closers: []func() error{zr.Close, fd.Close}}, nil
	case zstdExt:
		zr, err := zstd.NewReader(fd)
		if err != nil {
			_ = fd.Close()
			return nil, errors.Wrap(err, "zstd reader "+filename)
		}
		release := func() error {
			zr.Close()
			return nil
		}
		return &readCloser{Reader: zr, closers: []func() error{release, fd.Close}}, nil
	}

	return fd, nil
}

// scanLines calls fn with every line of r, without the line terminator.
func scanLines(r io.Reader, maxLineBytes int, fn func(line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, maxLineBytes)), maxLineBytes)
	for sc.Scan() {
		if err := fn(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}
