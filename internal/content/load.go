package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// DefaultRetryDelay is the wait before the single recheck of a missing payload.
const DefaultRetryDelay = 250 * time.Millisecond

// Source produces a content payload.
type Source interface {
	// Fetch returns ErrPayloadMissing (possibly wrapped) when the payload
	// is not available yet.
	Fetch(ctx context.Context) (*Payload, error)
	String() string
}

// LoadOptions tunes Load.
type LoadOptions struct {
	RetryDelay time.Duration
	Logger     *zap.Logger
}

// Load fetches and indexes a payload. A missing payload is rechecked exactly
// once after RetryDelay; if it is still missing Load fails with
// ErrDataUnavailable. Malformed payloads fail immediately.
func Load(ctx context.Context, src Source, opts LoadOptions) (*Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	delay := opts.RetryDelay
	if delay <= 0 {
		delay = DefaultRetryDelay
	}

	p, err := src.Fetch(ctx)
	if errors.Is(err, ErrPayloadMissing) {
		logger.Debug("content payload missing, rechecking once",
			zap.String("source", src.String()), zap.Duration("delay", delay))
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, fmt.Errorf("%w: %s: %w", ErrDataUnavailable, src, ctx.Err())
		case <-t.C:
		}
		p, err = src.Fetch(ctx)
	}
	if err != nil {
		if errors.Is(err, ErrPayloadMissing) {
			return nil, fmt.Errorf("%w: %s: %w", ErrDataUnavailable, src, err)
		}
		return nil, fmt.Errorf("loading %s: %w", src, err)
	}

	store, err := New(p)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", src, err)
	}
	counts := store.Counts()
	logger.Info("content loaded",
		zap.String("source", src.String()),
		zap.Int("characters", counts[KindCharacter]),
		zap.Int("archives", counts[KindArchive]),
		zap.Int("blog_posts", counts[KindBlog]))
	return store, nil
}

// FileSource reads a payload file (.json, .yml, .yaml or .js).
type FileSource struct {
	Path string
}

func (f FileSource) String() string { return "file:" + f.Path }

func (f FileSource) Fetch(ctx context.Context) (*Payload, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", f.Path, ErrPayloadMissing)
		}
		return nil, fmt.Errorf("reading %s: %w", f.Path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s is empty: %w", f.Path, ErrPayloadMissing)
	}
	return DecodePayload(f.Path, data)
}
