// Package csvexport writes rankings and stats tables as CSV and reads
// them back.
package csvexport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/laliga-forwards/internal/domain/scoring"
)

var (
	// ErrMalformed is returned when a CSV document does not have the shape
	// WriteScores or WriteStats produce.
	ErrMalformed    = errors.New("malformed export")
	ErrUnknownTable = errors.New("unknown export table")
)

// Table names accepted by Render.
const (
	TableScores = "scores"
	TableStats  = "stats"
)

var (
	scoresHeader = []string{scoring.ColumnPlayer, scoring.ColumnScore}
	statsHeader  = append([]string{scoring.ColumnPlayer}, scoring.StatsColumns...)
)

// WriteScores writes Player,Score rows in ranking order.
func WriteScores(w io.Writer, ranking scoring.Ranking) error {
	rows := make([][]string, 0, len(ranking)+1)
	rows = append(rows, scoresHeader)
	for _, entry := range ranking {
		rows = append(rows, []string{entry.Player, strconv.Itoa(entry.Score)})
	}
	return write(w, rows)
}

// WriteStats writes one row per player with every derived counter.
func WriteStats(w io.Writer, stats []scoring.Stats) error {
	rows := make([][]string, 0, len(stats)+1)
	rows = append(rows, statsHeader)
	for _, s := range stats {
		row := make([]string, 0, len(statsHeader))
		row = append(row, s.Player)
		for _, v := range s.Values() {
			row = append(row, strconv.Itoa(v))
		}
		rows = append(rows, row)
	}
	return write(w, rows)
}

// Render returns the named table of analysis as CSV bytes.
func Render(analysis scoring.Analysis, table string) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	var err error
	switch table {
	case TableScores:
		err = WriteScores(buf, analysis.Ranking)
	case TableStats:
		err = WriteStats(buf, analysis.Stats)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	if err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

// ReadScores parses a document written by WriteScores.
func ReadScores(r io.Reader) (scoring.Ranking, error) {
	rows, err := read(r, scoresHeader)
	if err != nil {
		return nil, err
	}
	out := make(scoring.Ranking, 0, len(rows))
	for idx, row := range rows {
		score, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: score %q is not an integer", ErrMalformed, idx+2, row[1])
		}
		out = append(out, scoring.Entry{Player: row[0], Score: score})
	}
	return out, nil
}

// ReadStats parses a document written by WriteStats.
func ReadStats(r io.Reader) ([]scoring.Stats, error) {
	rows, err := read(r, statsHeader)
	if err != nil {
		return nil, err
	}
	out := make([]scoring.Stats, 0, len(rows))
	for idx, row := range rows {
		values := make([]int, len(scoring.StatsColumns))
		for col := range values {
			v, err := strconv.Atoi(row[col+1])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %s %q is not an integer",
					ErrMalformed, idx+2, scoring.StatsColumns[col], row[col+1])
			}
			values[col] = v
		}
		out = append(out, scoring.Stats{
			Player:            row[0],
			CareerGoals:       values[0],
			LaLigaTitles:      values[1],
			CLTitles:          values[2],
			BallonDorWins:     values[3],
			TotalScore:        values[4],
			GoldenBoots:       values[5],
			TwentyGoalSeasons: values[6],
			TenAssistSeasons:  values[7],
			CupFinalWins:      values[8],
			CLTopScorerAwards: values[9],
		})
	}
	return out, nil
}

func write(w io.Writer, rows [][]string) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	cw := csv.NewWriter(buf)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	if _, err := w.Write(buf.B); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func read(r io.Reader, header []string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header", ErrMalformed)
	}
	for idx, name := range header {
		if records[0][idx] != name {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrMalformed, idx+1, records[0][idx], name)
		}
	}
	return records[1:], nil
}
