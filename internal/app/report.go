package app

import (
	"fmt"
	"strings"

	"github.com/hyperifyio/gradescrape/internal/scrape"
)

// previewLimit bounds the number of records echoed after a run.
const previewLimit = 5

// report prints the human-readable run summary: a count, the output
// path, and a bounded preview of the first records.
func (a *App) report(records []scrape.Record) {
	fmt.Fprintf(a.out, "Successfully scraped %d students\n", len(records))
	fmt.Fprintf(a.out, "Data saved to: %s\n", a.cfg.OutputPath)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Preview of extracted data:")
	fmt.Fprintln(a.out, strings.Repeat("-", 80))
	for i, r := range records {
		if i == previewLimit {
			break
		}
		fmt.Fprintf(a.out, "%d. %s | %s | %s | Year %s\n", i+1, r.ID, r.Name, r.Course, r.Year)
	}
	if extra := len(records) - previewLimit; extra > 0 {
		fmt.Fprintf(a.out, "... and %d more students\n", extra)
	}
}
