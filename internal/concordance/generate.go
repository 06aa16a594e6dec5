package concordance

import (
	"fmt"
	"io"
	"os"
)

// InputReadError reports a failure to read the source document.
type InputReadError struct {
	Path string
	Err  error
}

func (e *InputReadError) Error() string {
	return fmt.Sprintf("unable to read document %s: %v", e.Path, e.Err)
}

func (e *InputReadError) Unwrap() error { return e.Err }

// Generate reads the document at path and writes its concordance to out:
// one line per distinct word whose first rune is a letter, sorted
// alphabetically, with occurrence counts and 1-based sentence numbers.
// An empty document writes nothing and returns nil. The whole document is
// read and scanned before any output, so a failed read returns
// *InputReadError without producing partial output.
func Generate(path string, out io.Writer) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &InputReadError{Path: path, Err: err}
	}
	if len(raw) == 0 {
		// Nothing to generate.
		return nil
	}
	return Render(ScanText(string(raw)), out)
}
