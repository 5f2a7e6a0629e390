// Package csvio reads and writes the CSV formats of the batch evaluation
// flow: the upload format (one row per chat, AI and human scores side by
// side), the downloadable template, and the results export.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/superanalyst/concord/internal/agreement"
	"github.com/superanalyst/concord/internal/kpi"
	"github.com/superanalyst/concord/internal/sample"
)

const idColumn = "chat_id"

// Header returns the upload-format header: chat_id, then ai_<KPI> and
// human_<KPI> columns in vocabulary order.
func Header() []string {
	h := make([]string, 0, 1+2*len(kpi.Names))
	h = append(h, idColumn)
	for _, n := range kpi.Names {
		h = append(h, "ai_"+n)
	}
	for _, n := range kpi.Names {
		h = append(h, "human_"+n)
	}
	return h
}

// ParseRecords reads upload-format CSV into records ready for
// agreement.CompareBatch. Columns are located by header name, so column
// order is free as long as every expected column is present. Any malformed
// row aborts the parse with its row number; no partial batch is returned.
func ParseRecords(r io.Reader) ([]agreement.Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV input")
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, want := range Header() {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("missing CSV column %q", want)
		}
	}

	var records []agreement.Record
	for row := 2; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		rec := agreement.Record{
			ID:    fields[cols[idColumn]],
			AI:    make(agreement.ScoreSet, len(kpi.Names)),
			Human: make(agreement.ScoreSet, len(kpi.Names)),
		}
		for _, n := range kpi.Names {
			ai, err := strconv.Atoi(fields[cols["ai_"+n]])
			if err != nil {
				return nil, fmt.Errorf("row %d: column ai_%s: %w", row, n, err)
			}
			human, err := strconv.Atoi(fields[cols["human_"+n]])
			if err != nil {
				return nil, fmt.Errorf("row %d: column human_%s: %w", row, n, err)
			}
			rec.AI[n] = ai
			rec.Human[n] = human
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteTemplate writes the downloadable sample template: the upload header
// plus the two demo chats.
func WriteTemplate(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("writing template header: %w", err)
	}
	for _, rec := range sample.DemoBatch() {
		row := make([]string, 0, 1+2*len(kpi.Names))
		row = append(row, rec.ID)
		for _, n := range kpi.Names {
			row = append(row, strconv.Itoa(rec.AI[n]))
		}
		for _, n := range kpi.Names {
			row = append(row, strconv.Itoa(rec.Human[n]))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing template row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteResults exports a batch result, one row per record.
func WriteResults(w io.Writer, batch *agreement.BatchResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Chat ID", "MAE", "Total Diff", "Interpretation"}); err != nil {
		return fmt.Errorf("writing results header: %w", err)
	}
	for _, rr := range batch.Results {
		row := []string{
			rr.ID,
			strconv.FormatFloat(rr.MAE, 'f', 2, 64),
			strconv.FormatFloat(rr.TotalDifference, 'f', 0, 64),
			rr.Interpretation,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing results row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
