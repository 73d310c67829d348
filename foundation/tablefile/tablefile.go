// Package tablefile provides support for the flat csv tables the generator
// reads and rewrites: header indexed row parsing and atomic file replacement.
package tablefile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Parser holds information about a csv table file. Methods read typed columns
// from the current row. Errors while extracting data types are accumulated
// with the line number they happened on.
type Parser struct {
	Filename      string
	line          int
	csvReader     *csv.Reader
	headers       []string
	currentRecord []string
	errors        []error
}

// MakeParser creates a new Parser from an io.Reader, consuming the header line
func MakeParser(r io.Reader, filename string) (*Parser, error) {
	csvReader := csv.NewReader(r)

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("unable to read header in %s: %v", filename, err)
	}
	removeBOMIfPresent(headers)

	return &Parser{
		Filename:      filename,
		line:          1,
		csvReader:     csvReader,
		headers:       headers,
		currentRecord: headers,
	}, nil
}

func removeBOMIfPresent(headers []string) {
	if len(headers) < 1 || len(headers[0]) < 1 {
		return
	}
	runes := []rune(headers[0])
	if runes[0] == '\uFEFF' {
		headers[0] = string(runes[1:])
	}
}

// NextLine moves the reader one row forward. Returns io.EOF at end of file.
func (p *Parser) NextLine() error {
	var err error
	p.currentRecord, err = p.csvReader.Read()
	p.line++
	return err
}

// Line returns the current line number, counting the header as line 1
func (p *Parser) Line() int {
	return p.line
}

// GetString retrieves a string column from the current row.
// Returns an empty string if missing, recording an error unless optional.
func (p *Parser) GetString(name string, optional bool) string {
	value, err := findValue(name, p.currentRecord, p.headers, optional)
	if err != nil {
		p.errors = append(p.errors, err)
	}
	if value == nil {
		return ""
	}
	return *value
}

// GetFloat64 retrieves a float64 column from the current row.
// Returns 0 if missing, recording an error unless optional.
func (p *Parser) GetFloat64(name string, optional bool) float64 {
	value, err := findValue(name, p.currentRecord, p.headers, optional)
	if err != nil {
		p.errors = append(p.errors, err)
		return 0
	}
	if value == nil || len(*value) == 0 {
		if !optional {
			p.errors = append(p.errors, fmt.Errorf("missing required value in column %v", name))
		}
		return 0
	}
	result, err := strconv.ParseFloat(*value, 64)
	if err != nil {
		p.errors = append(p.errors, fmt.Errorf("unable to parse column %s, error: %v", name, err))
		return 0
	}
	return result
}

// Err returns the accumulated parsing errors for the file, or nil
func (p *Parser) Err() error {
	if len(p.errors) > 0 {
		return fmt.Errorf("in file %v, line %v: %v", p.Filename, p.line, p.errors)
	}
	return nil
}

// AddError appends an error to the list of parsing errors for the file
func (p *Parser) AddError(err error) {
	p.errors = append(p.errors, err)
}

// find index of element that matches name string. returns -1 if not found
func indexOf(name string, elements []string) int {
	for i, value := range elements {
		if name == value {
			return i
		}
	}
	return -1
}

// findValue retrieves a string value from csv records
// returns nil if the column isn't present and optional is true
func findValue(name string, records []string, headers []string, optional bool) (*string, error) {
	index := indexOf(name, headers)
	if index < 0 {
		if optional {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to find header: %s", name)
	}
	if len(records) <= index {
		return nil, fmt.Errorf("records are too short to find header at %v named %s", index, name)
	}
	value := records[index]
	if len(value) == 0 && !optional {
		return nil, fmt.Errorf("missing required value in column %v", name)
	}
	return &value, nil
}

// WriteAtomic writes a file by handing a temporary file in the destination
// directory to write, then renaming it over path. A crash mid-write leaves
// the previous file untouched.
func WriteAtomic(path string, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	defer func() {
		// no-ops once the rename has happened
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
