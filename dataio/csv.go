// SPDX-License-Identifier: MIT

package dataio

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"

	"github.com/Alnusjaponica/DPP-MAP-Inference/greedy"
)

var csvHeader = []string{
	"seed", "n", "k", "solution_size", "time", "value",
	"computed_entries_L", "oracle_calls", "computed_offdiagonals_V",
}

// CSVWriter appends one row per run to path, writing the header only the
// first time the file is created. No third-party CSV library is present
// anywhere in the retrieval pack (the teacher is stdlib-plus-testify), so
// this leans on encoding/csv directly.
type CSVWriter struct {
	f *os.File
	w *csv.Writer
}

// NewCSVWriter opens (creating if necessary) path for append, writing the
// header row exactly once.
func NewCSVWriter(path string) (*CSVWriter, error) {
	_, statErr := os.Stat(path)
	needsHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, dataioErrorf("NewCSVWriter", err)
	}
	w := csv.NewWriter(f)
	if needsHeader {
		if err := w.Write(csvHeader); err != nil {
			f.Close()
			return nil, dataioErrorf("NewCSVWriter", err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, dataioErrorf("NewCSVWriter", err)
		}
	}
	return &CSVWriter{f: f, w: w}, nil
}

// WriteRun appends one row for a completed or time-limited run, formatting
// floats with 16 significant digits and using "-inf" for a degenerate
// log(0) objective value.
func (c *CSVWriter) WriteRun(seed uint32, n, k int, r greedy.Result) error {
	record := []string{
		strconv.FormatUint(uint64(seed), 10),
		strconv.Itoa(n),
		strconv.Itoa(k),
		strconv.Itoa(len(r.Solution)),
		strconv.FormatFloat(r.Time.Seconds(), 'g', 16, 64),
		formatValue(r.Value),
		strconv.Itoa(r.ComputedEntriesL),
		strconv.Itoa(r.OracleCalls),
		strconv.Itoa(r.ComputedOffdiagonalsV),
	}
	if err := c.w.Write(record); err != nil {
		return dataioErrorf("WriteRun", err)
	}
	c.w.Flush()
	return dataioErrorf("WriteRun", c.w.Error())
}

func formatValue(v float64) string {
	if math.IsInf(v, -1) {
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', 16, 64)
}

// Close closes the underlying file.
func (c *CSVWriter) Close() error {
	return dataioErrorf("Close", c.f.Close())
}
