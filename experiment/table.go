package experiment

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const tableHeader = "Dataset Size\tInsert Min\tInsert Max\tInsert Avg\tSearch Min\tSearch Max\tSearch Avg\n"

// WriteTable writes rows as a tab separated table with a header line.
func WriteTable(w io.Writer, rows []Row) error {
	if _, err := io.WriteString(w, tableHeader); err != nil {
		return err
	}
	for _, r := range rows {
		_, err := fmt.Fprintf(w, "%d\t\t%d\t\t%d\t\t%d\t\t%d\t\t%d\t\t%d\n",
			r.Size, r.InsertMin, r.InsertMax, r.InsertAvg, r.SearchMin, r.SearchMax, r.SearchAvg)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes the table to filename on fs, creating parent directories.
func WriteFile(fs afero.Fs, filename string, rows []Row) (err error) {
	if dir := filepath.Dir(filename); dir != "." {
		if err = fs.MkdirAll(dir, 0744); err != nil {
			return errors.Wrap(err, "create "+dir)
		}
	}

	fd, err := fs.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create "+filename)
	}
	defer func() {
		if cerr := fd.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close "+filename)
		}
	}()

	if err = WriteTable(fd, rows); err != nil {
		return errors.Wrap(err, "write "+filename)
	}
	return nil
}
