package gtfs

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCalendars decodes the rows of a calendar.txt table, in file order.
// A table with no content at all has no rows.
func ReadCalendars(in io.Reader) ([]*Calendar, error) {
	reader, ok := gtfsCSVReader(in)
	if !ok {
		return nil, nil
	}

	var rows []*Calendar
	err := gocsv.UnmarshalCSV(reader, &rows)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if err := row.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
	}
	return rows, nil
}

// ReadCalendarDates decodes the rows of a calendar_dates.txt table, in file order.
func ReadCalendarDates(in io.Reader) ([]*CalendarDate, error) {
	reader, ok := gtfsCSVReader(in)
	if !ok {
		return nil, nil
	}

	var rows []*CalendarDate
	err := gocsv.UnmarshalCSV(reader, &rows)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if err := row.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
	}
	return rows, nil
}

// EncodeTable renders a slice of rows, header first.
func EncodeTable(rows interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gocsv.Marshal(rows, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTable encodes the rows and replaces the file at path with them.
// Nothing is written unless every row encodes; the file is swapped in with a rename.
func WriteTable(path string, rows interface{}) error {
	contents, err := EncodeTable(rows)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err = tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if _, err = tmp.Write(contents); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// This allows us to handle the fact that GTFS supports optional fields
// We do not error if the CSV row has fewer columns than the header row, for better or worse.
// The reader is not returned when the input holds nothing but line breaks.
func gtfsCSVReader(in io.Reader) (gocsv.CSVReader, bool) {
	br := skipBOM(in)
	if isBlank(br) {
		return nil, false
	}

	csvReader := csv.NewReader(br)
	csvReader.FieldsPerRecord = -1
	return csvReader, true
}

// Many agencies export their feeds with a byte order mark, which would otherwise end up in the first header.
func skipBOM(in io.Reader) *bufio.Reader {
	br := bufio.NewReader(in)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		br.Discard(len(utf8BOM))
	}
	return br
}

// isBlank consumes leading line breaks and reports whether nothing follows them.
func isBlank(br *bufio.Reader) bool {
	for {
		next, err := br.Peek(1)
		if err != nil {
			return true
		}
		if next[0] != '\n' && next[0] != '\r' {
			return false
		}
		br.Discard(1)
	}
}
