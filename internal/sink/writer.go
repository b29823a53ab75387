package sink

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/TomRegan/uuid"
)

// WriterSink prints one canonical UUID per line.
type WriterSink struct {
	w *bufio.Writer
}

// NewWriter returns a sink writing to w, or os.Stdout when w is nil.
func NewWriter(w io.Writer) *WriterSink {
	if w == nil {
		w = os.Stdout
	}
	return &WriterSink{w: bufio.NewWriter(w)}
}

func (s *WriterSink) Write(_ context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		s.w.WriteString(id.String())
		s.w.WriteByte('\n')
	}
	return s.w.Flush()
}

func (s *WriterSink) Close() error {
	return s.w.Flush()
}
