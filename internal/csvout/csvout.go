package csvout

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/hyperifyio/gradescrape/internal/scrape"
)

// Header is the fixed four-column header of the exported table.
var Header = []string{"Student ID", "Student Name", "Course", "Year"}

// Write serializes records to a UTF-8 CSV file at path: the fixed
// header, then one row per record in order. Fields containing the
// delimiter, quotes or line breaks are quoted per RFC 4180. The file is
// assembled in memory and written in one shot, so a failed run never
// leaves a partial file behind.
func Write(path string, records []scrape.Record) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := w.Write([]string{r.ID, r.Name, r.Course, r.Year}); err != nil {
			return fmt.Errorf("write record %s: %w", r.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("serialize records: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
