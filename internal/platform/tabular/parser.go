package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrNoPlausibleTable is returned when no encoding and delimiter
	// combination produces a usable table.
	ErrNoPlausibleTable = errors.New("no plausible table found")
)

const (
	defaultMinColumns = 4
	defaultMinRows    = 1
)

// DefaultDelimiters is the order in which delimiters are attempted.
var DefaultDelimiters = []rune{',', ';', '\t', '|'}

// Parser tries every encoding and delimiter combination until one yields
// a table wide enough to be meaningful. The first match wins.
type Parser struct {
	Encodings  []Encoding
	Delimiters []rune
	MinColumns int
	MinRows    int
}

// Result is a decoded table together with the settings that produced it.
type Result struct {
	Table     Table
	Delimiter rune
	Encoding  Encoding
}

func NewParser() *Parser {
	return &Parser{
		Encodings:  DefaultEncodings,
		Delimiters: DefaultDelimiters,
		MinColumns: defaultMinColumns,
		MinRows:    defaultMinRows,
	}
}

// Parse decodes data. Encodings are the outer loop and delimiters the
// inner one. When nothing has data rows but some combination produced a
// wide enough header, that header-only table is returned so validation
// can explain what is missing.
func (p *Parser) Parse(data []byte) (Result, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Result{}, fmt.Errorf("%w: input is empty", ErrNoPlausibleTable)
	}
	if isWorkbook(data) {
		return p.parseWorkbook(data)
	}

	var headerOnly *Result
	for _, enc := range p.encodings() {
		text, err := enc.Decode(data)
		if err != nil {
			continue
		}
		for _, delim := range p.delimiters() {
			table, err := readDelimited(text, delim)
			if err != nil {
				continue
			}
			if table.NumColumns() < p.minColumns() {
				continue
			}
			if table.NumRows() >= p.minRows() {
				return Result{Table: table, Delimiter: delim, Encoding: enc}, nil
			}
			if headerOnly == nil && table.NumRows() == 0 {
				headerOnly = &Result{Table: table, Delimiter: delim, Encoding: enc}
			}
		}
	}

	if headerOnly != nil {
		return *headerOnly, nil
	}
	return Result{}, fmt.Errorf("%w: tried %d encodings x %d delimiters, none produced %d+ columns",
		ErrNoPlausibleTable, len(p.encodings()), len(p.delimiters()), p.minColumns())
}

func (p *Parser) encodings() []Encoding {
	if len(p.Encodings) == 0 {
		return DefaultEncodings
	}
	return p.Encodings
}

func (p *Parser) delimiters() []rune {
	if len(p.Delimiters) == 0 {
		return DefaultDelimiters
	}
	return p.Delimiters
}

func (p *Parser) minColumns() int {
	if p.MinColumns <= 0 {
		return defaultMinColumns
	}
	return p.MinColumns
}

func (p *Parser) minRows() int {
	if p.MinRows <= 0 {
		return defaultMinRows
	}
	return p.MinRows
}

// readDelimited reads text with one delimiter. A data row wider than the
// header fails the attempt; shorter rows are padded.
func readDelimited(text string, delim rune) (Table, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var header []string
	var rows [][]string
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("read delimited text: %w", err)
		}
		line++

		if header == nil {
			header = normalizeHeader(record)
			continue
		}
		if len(record) > len(header) {
			return Table{}, fmt.Errorf("expected %d fields in line %d, saw %d", len(header), line, len(record))
		}
		row := make([]string, len(header))
		copy(row, record)
		rows = append(rows, row)
	}

	if header == nil {
		return Table{}, fmt.Errorf("no header row")
	}
	return Table{Columns: header, Rows: rows}, nil
}

// normalizeHeader trims names, names blank columns after their position
// and suffixes duplicates with .1, .2 and so on.
func normalizeHeader(record []string) []string {
	out := make([]string, len(record))
	seen := make(map[string]int, len(record))
	for idx, raw := range record {
		name := strings.TrimSpace(raw)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", idx)
		}
		if n, ok := seen[name]; ok {
			candidate := name
			for {
				n++
				candidate = fmt.Sprintf("%s.%d", name, n)
				if _, taken := seen[candidate]; !taken {
					break
				}
			}
			seen[name] = n
			name = candidate
		}
		seen[name] = 0
		out[idx] = name
	}
	return out
}
