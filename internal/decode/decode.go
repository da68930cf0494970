package decode

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names reported to callers for logging.
const (
	EncodingWindows1252 = "windows-1252"
	EncodingLatin1      = "latin-1"
)

// ReadFile reads the document at path and decodes it to UTF-8 text.
// Windows-1252 is attempted first; when the bytes are not valid
// Windows-1252 the read is retried as ISO-8859-1, which assigns every
// byte value and therefore cannot fail (at the cost of mojibake for
// input that was genuinely something else). I/O errors propagate
// unchanged with no retry.
func ReadFile(path string) (text string, encoding string, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read input: %w", err)
	}
	return Decode(raw)
}

// Decode converts raw legacy-encoded bytes to UTF-8 text, returning the
// name of the encoding that was used.
func Decode(raw []byte) (string, string, error) {
	if windows1252Valid(raw) {
		out, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		if err == nil {
			return string(out), EncodingWindows1252, nil
		}
		// Fall through to the permissive table.
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", "", fmt.Errorf("decode %s: %w", EncodingLatin1, err)
	}
	return string(out), EncodingLatin1, nil
}

// windows1252Valid reports whether every byte is assigned in Windows-1252.
// The table leaves five bytes unassigned; the charmap decoder substitutes
// U+FFFD for them instead of returning an error, so they are checked up
// front to make the strict-then-fallback contract observable.
func windows1252Valid(raw []byte) bool {
	for _, b := range raw {
		switch b {
		case 0x81, 0x8D, 0x8F, 0x90, 0x9D:
			return false
		}
	}
	return true
}
