// Package dataset implements streaming loaders for the tab-separated title
// datasets. Files are read in bounded batches so peak memory stays capped
// regardless of input size; only the filtered subset of each batch is
// retained. Each loader projects the fixed set of columns its analysis needs
// and validates the header once up front.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"titlestats/internal/datasource/file"
	apperr "titlestats/internal/errors"
)

const (
	// nullSentinel is the two-character token the datasets use for a missing
	// value. It is mapped to the empty string during parsing and must never
	// reach a consumer as a literal.
	nullSentinel = `\N`

	// batchSize bounds how many raw rows are held before the filter runs.
	batchSize = 250_000

	// logEveryN is the reader heartbeat interval.
	logEveryN = 500_000
)

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\ufeff"

// RowFilter decides whether a projected row survives loading. The row slice
// is aligned to the requested column order and is only valid for the
// duration of the call.
type RowFilter func(row []string) bool

// Load reads the tab-separated file at path, projects the requested columns,
// and returns every row accepted by keep (nil keeps everything). Rows are
// returned in file order.
//
// The header row is mandatory; a NOT_FOUND error is returned when the path
// does not exist and a SCHEMA error when any requested column is absent.
// The \N sentinel and source cells beyond a short row both become the empty
// string, which consumers treat as missing.
func Load(ctx context.Context, path string, columns []string, keep RowFilter) ([][]string, error) {
	rc, err := file.NewLocal(path).Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	cr := csv.NewReader(rc)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	hdr, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	colIx, err := mapColumns(path, hdr, columns)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	var (
		out   [][]string
		batch [][]string
		line  = 1
	)
	flush := func() {
		for _, row := range batch {
			if keep == nil || keep(row) {
				out = append(out, row)
			}
		}
		batch = batch[:0]
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read %s line %d: %w", name, line, err)
		}

		row := make([]string, len(columns))
		for t, si := range colIx {
			if si >= len(rec) {
				continue // short row: treat cell as missing
			}
			if v := rec[si]; v != nullSentinel {
				row[t] = v
			}
		}
		batch = append(batch, row)
		if len(batch) >= batchSize {
			flush()
		}
		if line%logEveryN == 0 {
			log.Printf("loader: %s line=%d kept=%d", name, line, len(out)+len(batch))
		}
	}
	flush()
	log.Printf("loader: %s done lines=%d kept=%d", name, line, len(out))
	return out, nil
}

// mapColumns resolves the requested column names against the header and
// returns, per target index, the source field index.
func mapColumns(path string, hdr, columns []string) ([]int, error) {
	srcToIdx := make(map[string]int, len(hdr))
	for i, h := range hdr {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		srcToIdx[h] = i
	}
	colIx := make([]int, len(columns))
	for t, want := range columns {
		si, ok := srcToIdx[want]
		if !ok {
			return nil, apperr.NewSchemaError(
				fmt.Sprintf("column %q missing from header of %s", want, path), nil)
		}
		colIx[t] = si
	}
	return colIx, nil
}
