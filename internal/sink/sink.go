// Package sink delivers generated UUIDs to stdout, a SQL table or a Redis
// list.
package sink

import (
	"context"
	"fmt"
	"io"

	"github.com/TomRegan/uuid"
	"github.com/TomRegan/uuid/internal/config"
)

// Sink accepts batches of UUIDs. Implementations are not required to be safe
// for concurrent use.
type Sink interface {
	Write(ctx context.Context, ids []uuid.UUID) error
	Close() error
}

// Open returns the sink selected by cfg.Kind. out is used by the stdout sink.
func Open(ctx context.Context, cfg config.Sink, out io.Writer) (Sink, error) {
	var (
		s   Sink
		err error
	)
	switch cfg.Kind {
	case config.SinkStdout, "":
		return NewWriter(out), nil
	case config.SinkSQLite:
		s, err = OpenSQLite(ctx, cfg.DSN, cfg.Table)
	case config.SinkMySQL:
		s, err = OpenMySQL(ctx, cfg.DSN, cfg.Table)
	case config.SinkRedis:
		s, err = OpenRedis(ctx, cfg.DSN, cfg.RedisKey)
	default:
		return nil, fmt.Errorf("unknown sink %q", cfg.Kind)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Emit calls next n times and writes the results to s in batches of at most
// size. It stops at the first failed write or when ctx is done.
func Emit(ctx context.Context, s Sink, n, size int, next func() uuid.UUID) error {
	if size <= 0 {
		size = n
	}
	batch := make([]uuid.UUID, 0, min(n, size))
	for written := 0; written < n; {
		if err := ctx.Err(); err != nil {
			return err
		}
		batch = batch[:0]
		for len(batch) < size && written+len(batch) < n {
			batch = append(batch, next())
		}
		if err := s.Write(ctx, batch); err != nil {
			return fmt.Errorf("write batch at %d: %w", written, err)
		}
		written += len(batch)
	}
	return nil
}
