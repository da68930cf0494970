package app

// Config holds runtime configuration for one scrape run.
type Config struct {
	InputPath  string
	OutputPath string

	// Optional printable roster; empty disables the PDF export.
	OutputPDFPath string

	Verbose bool
}
