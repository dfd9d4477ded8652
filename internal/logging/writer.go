package logging

import (
	"io"

	"go.uber.org/multierr"
)

// teeWriter writes every log line to all writers. A failing writer does
// not stop the others; the line counts as written if any writer took it.
type teeWriter struct {
	writers []io.Writer
}

func newTeeWriter(writers ...io.Writer) *teeWriter {
	return &teeWriter{writers: writers}
}

func (tw *teeWriter) Write(p []byte) (int, error) {
	var errs error
	written := false
	for _, w := range tw.writers {
		if _, err := w.Write(p); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		written = true
	}
	if written {
		return len(p), nil
	}
	return 0, errs
}
