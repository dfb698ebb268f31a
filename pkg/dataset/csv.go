package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
)

// ReadCSV loads a delimited file into a Dataset. The first record is the
// header. Malformed rows and rows whose field count does not match the
// header are skipped, mirroring the best-effort row handling of the
// scraped inputs; a file without a readable header is a *ParseError and
// an I/O failure mid-file is returned as-is.
func ReadCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ds, err := ReadCSVFrom(file)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Path = path
		}
		return nil, err
	}
	return ds, nil
}

// ReadCSVFrom reads CSV data from an arbitrary reader.
func ReadCSVFrom(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, &ParseError{Reason: "no header record"}
	}
	if len(header) == 0 {
		return nil, &ParseError{Reason: "empty header record"}
	}

	ds := New(header)
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		var recordErr *csv.ParseError
		if errors.As(err, &recordErr) {
			continue // skip malformed records
		}
		if err != nil {
			return nil, err // reader failure, not a bad record
		}
		if len(rec) != len(header) {
			continue // ragged row, skip
		}
		row := make([]string, len(rec))
		copy(row, rec)
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

// WriteCSV serializes a Dataset, header first.
func WriteCSV(ds *Dataset, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write(ds.Columns); err != nil {
		return err
	}
	for _, row := range ds.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
