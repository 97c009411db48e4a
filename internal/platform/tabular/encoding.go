package tabular

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names a text encoding the parser can try.
type Encoding string

const (
	UTF8     Encoding = "utf-8"
	Latin1   Encoding = "latin-1"
	CP1252   Encoding = "cp1252"
	ISO88591 Encoding = "iso-8859-1"
	// Workbook marks tables read from an XLSX file rather than text.
	Workbook Encoding = "xlsx"
)

// DefaultEncodings is the order in which encodings are attempted.
var DefaultEncodings = []Encoding{UTF8, Latin1, CP1252, ISO88591}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts data to a Go string.
func (e Encoding) Decode(data []byte) (string, error) {
	switch e {
	case UTF8:
		data = bytes.TrimPrefix(data, utf8BOM)
		if !utf8.Valid(data) {
			return "", fmt.Errorf("input is not valid %s", e)
		}
		return string(data), nil
	case Latin1, ISO88591:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("decode %s: %w", e, err)
		}
		return string(out), nil
	case CP1252:
		out, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("decode %s: %w", e, err)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unsupported encoding %q", string(e))
	}
}
