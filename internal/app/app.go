package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/gradescrape/internal/csvout"
	"github.com/hyperifyio/gradescrape/internal/decode"
	"github.com/hyperifyio/gradescrape/internal/scrape"
)

// App runs the extraction pipeline: decode the grade sheet, select
// student rows, extract records, write the CSV and print a summary.
type App struct {
	cfg Config
	out io.Writer
}

func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return &App{cfg: cfg, out: os.Stdout}, nil
}

// Run executes one pass over the input document. Unusable rows are
// logged and skipped; only input/output I/O failures abort the run.
func (a *App) Run(ctx context.Context) error {
	_ = ctx // the pass is synchronous; nothing blocks long enough to cancel

	fmt.Fprintf(a.out, "Reading HTML file: %s\n", a.cfg.InputPath)
	fmt.Fprintf(a.out, "Output CSV file: %s\n", a.cfg.OutputPath)
	fmt.Fprintln(a.out, strings.Repeat("-", 80))

	text, enc, err := decode.ReadFile(a.cfg.InputPath)
	if err != nil {
		return err
	}
	log.Debug().Str("encoding", enc).Int("chars", len(text)).Msg("decoded input")

	doc, err := scrape.Parse(text)
	if err != nil {
		return err
	}

	var records []scrape.Record
	for row := range scrape.Rows(doc) {
		rec, err := scrape.FromRow(row)
		if err != nil {
			log.Warn().Err(err).Msg("skipping unusable row")
			continue
		}
		if !rec.Keep() {
			// Rows without a student ID carry no data worth exporting.
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		fmt.Fprintln(a.out, "No student data found in the HTML file")
		log.Info().Msg("no matching rows")
		return nil
	}

	if err := csvout.Write(a.cfg.OutputPath, records); err != nil {
		return err
	}
	log.Info().Str("out", a.cfg.OutputPath).Int("students", len(records)).Msg("wrote output")

	a.report(records)

	if a.cfg.OutputPDFPath != "" {
		if err := writeRosterPDF(records, a.cfg.OutputPDFPath); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("out", a.cfg.OutputPDFPath).Msg("wrote roster pdf")
	}
	return nil
}
