package registry

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/adfharrison1/go-datasets/pkg/domain"
)

// utf8BOM is stripped from the start of the source if present
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Open reads a delimited catalog table from path and builds a registry.
// The file is read fully and closed before Open returns. Any parse error
// fails the whole load; no partial registry is produced.
func Open(path string, options ...Option) (*Registry, error) {
	content, err := readSource(path)
	if err != nil {
		return nil, err
	}

	r := newRegistry(options...)
	r.source = path

	columns, rows, err := r.parse(path, content)
	if err != nil {
		return nil, err
	}

	r.columns = columns
	r.build(rows)
	return r, nil
}

// readSource performs the single read of the source file
func readSource(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, path, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, path, err)
	}
	return content, nil
}

// parse decodes the header row and every data row into trimmed records
func (r *Registry) parse(path string, content []byte) ([]string, []domain.Record, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	if !utf8.Valid(content) {
		return nil, nil, &MalformedSourceError{Path: path, Err: errors.New("source is not valid UTF-8")}
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.Comma = r.comma
	reader.Comment = r.comment

	header, err := reader.Read()
	if err == io.EOF {
		// Empty source: an empty registry
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, malformed(path, err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}
	// Every data row must match the header width
	reader.FieldsPerRecord = len(columns)

	var rows []domain.Record
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, malformed(path, err)
		}

		var rec domain.Record
		for i, column := range columns {
			rec.Set(column, strings.TrimSpace(cells[i]))
		}
		rows = append(rows, rec)
	}

	return columns, rows, nil
}

func malformed(path string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &MalformedSourceError{Path: path, Line: parseErr.Line, Err: parseErr.Err}
	}
	return &MalformedSourceError{Path: path, Err: err}
}
