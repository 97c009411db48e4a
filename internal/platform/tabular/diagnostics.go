package tabular

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	previewLines     = 3
	previewMaxLength = 120
	sampledLines     = 2
)

// SeparatorStat is how often a candidate separator occurs per sampled line.
type SeparatorStat struct {
	Name      string
	Delimiter rune
	Average   float64
}

// Report describes raw input that could not be parsed.
type Report struct {
	Separators        []SeparatorStat
	HasQuotes         bool
	AverageLineLength float64
	LineCount         int
	Preview           []string
	Hints             []string
	failure           string
}

var separatorNames = map[rune]string{
	',':  "comma (,)",
	';':  "semicolon (;)",
	'\t': "tab",
	'|':  "pipe (|)",
}

// Diagnose inspects data that the parser rejected. It never panics; any
// internal failure ends up in the rendered message instead.
func Diagnose(data []byte) (report Report) {
	defer func() {
		if rec := recover(); rec != nil {
			report = Report{failure: fmt.Sprint(rec)}
		}
	}()

	lines := splitLines(decodeForDisplay(data))
	report.LineCount = len(lines)

	sample := lines
	if len(sample) > sampledLines {
		sample = sample[:sampledLines]
	}
	for _, delim := range DefaultDelimiters {
		stat := SeparatorStat{Name: separatorNames[delim], Delimiter: delim}
		if len(sample) > 0 {
			total := 0
			for _, line := range sample {
				total += strings.Count(line, string(delim))
			}
			stat.Average = float64(total) / float64(len(sample))
		}
		report.Separators = append(report.Separators, stat)
	}

	totalLength := 0
	for _, line := range lines {
		totalLength += utf8.RuneCountInString(line)
		if strings.ContainsAny(line, `"'`) {
			report.HasQuotes = true
		}
	}
	if len(lines) > 0 {
		report.AverageLineLength = float64(totalLength) / float64(len(lines))
	}

	for idx, line := range lines {
		if idx == previewLines {
			break
		}
		report.Preview = append(report.Preview, truncate(line, previewMaxLength))
	}

	report.Hints = report.hints()
	return report
}

// Likely returns the separator with the highest average, if any occurs.
func (r Report) Likely() (SeparatorStat, bool) {
	var best SeparatorStat
	found := false
	for _, stat := range r.Separators {
		if stat.Average > best.Average {
			best = stat
			found = true
		}
	}
	return best, found
}

func (r Report) hints() []string {
	var out []string
	if r.LineCount == 0 {
		return []string{"The file is empty. Export the sheet again and make sure it contains a header row."}
	}
	best, ok := r.Likely()
	switch {
	case !ok:
		out = append(out, "No supported separator was found. Save the file as CSV using commas, semicolons, tabs or pipes.")
	case best.Average+1 < defaultMinColumns:
		out = append(out, fmt.Sprintf("Only about %.0f columns were detected with the %s separator; at least %d are needed.",
			best.Average+1, best.Name, defaultMinColumns))
	default:
		out = append(out, fmt.Sprintf("The %s looks like the separator; check that every row has the same number of fields.", best.Name))
	}
	if r.HasQuotes {
		out = append(out, "Quotes were found. Make sure every quoted value is closed and separators inside values are quoted.")
	}
	if r.LineCount == 1 {
		out = append(out, "Only a header line is present. Add at least one player row.")
	}
	out = append(out, "Download one of the templates to compare against a known-good layout.")
	return out
}

// String renders the report for humans.
func (r Report) String() string {
	if r.failure != "" {
		return "Sorry, the file could not be analysed further (" + r.failure + "). Please check that it is a plain CSV export."
	}

	var b strings.Builder
	b.WriteString("CSV diagnostics\n")
	b.WriteString("Separator occurrences (average over header and first row):\n")
	for _, stat := range r.Separators {
		fmt.Fprintf(&b, "  %s: %.1f\n", stat.Name, stat.Average)
	}
	fmt.Fprintf(&b, "Quotes present: %s\n", yesNo(r.HasQuotes))
	fmt.Fprintf(&b, "Average line length: %.1f characters\n", r.AverageLineLength)
	if len(r.Preview) > 0 {
		b.WriteString("First lines:\n")
		for idx, line := range r.Preview {
			fmt.Fprintf(&b, "  %d: %s\n", idx+1, line)
		}
	}
	if len(r.Hints) > 0 {
		b.WriteString("Hints:\n")
		for _, hint := range r.Hints {
			fmt.Fprintf(&b, "  - %s\n", hint)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// decodeForDisplay prefers UTF-8 and falls back to Latin-1, which accepts
// every byte.
func decodeForDisplay(data []byte) string {
	if text, err := UTF8.Decode(data); err == nil {
		return text
	}
	text, err := Latin1.Decode(data)
	if err != nil {
		return string(bytes.ToValidUTF8(data, []byte("?")))
	}
	return text
}

func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
