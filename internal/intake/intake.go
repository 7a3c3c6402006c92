package intake

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"qrqueue/internal/logging"
	"qrqueue/internal/queue"
	"qrqueue/internal/scanner"
)

const defaultConcurrency = 4

// Adder is the part of the queue store intake writes to.
type Adder interface {
	Add(ctx context.Context, item queue.Item) error
}

// Option customizes a Service.
type Option func(*Service)

// WithLogger routes intake diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logging.NewComponentLogger(logger, "intake")
	}
}

// WithIDFromCode uses the decoded text as the item id, so rescanning the same
// label replaces the queued item instead of adding another.
func WithIDFromCode(enabled bool) Option {
	return func(s *Service) { s.idFromCode = enabled }
}

// WithConcurrency bounds the number of images decoded at once.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// Service queues scan results.
type Service struct {
	store       Adder
	logger      *slog.Logger
	idFromCode  bool
	concurrency int
	now         func() time.Time
	newID       func() string
}

// New builds a Service writing to store.
func New(store Adder, opts ...Option) *Service {
	s := &Service{
		store:       store,
		logger:      logging.NewComponentLogger(nil, "intake"),
		concurrency: defaultConcurrency,
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Outcome is the per-image result of ScanFiles.
type Outcome struct {
	Path string
	Item queue.Item
	Err  error
}

// Enqueue builds a queue item from res and stores it.
func (s *Service) Enqueue(ctx context.Context, res scanner.Result) (queue.Item, error) {
	text := scanner.Normalize(res.Text)
	if text == "" {
		return nil, scanner.ErrNoCode
	}

	id := s.newID()
	if s.idFromCode {
		id = text
	}
	item := queue.Item{
		queue.KeyPath: id,
		"code":        text,
		"format":      res.Format,
		"scanned_at":  s.now().UTC().Format(time.RFC3339),
	}
	if res.Source != "" {
		item["source"] = res.Source
	}

	if err := s.store.Add(ctx, item); err != nil {
		return nil, err
	}
	logging.WithContext(logging.WithItemID(ctx, id), s.logger).Info("scan queued",
		logging.String("code", text),
		logging.String("source", res.Source),
	)
	return item, nil
}

// ScanFiles decodes each image and queues what it finds. Outcomes follow the
// order of paths. Decode failures are recorded on the outcome; the first
// store failure cancels the remaining work and is returned.
func (s *Service) ScanFiles(ctx context.Context, paths []string) ([]Outcome, error) {
	outcomes := make([]Outcome, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, path := range paths {
		outcomes[i].Path = path
		g.Go(func() error {
			res, err := scanner.DecodeFile(gctx, path)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				s.logger.Warn("scan failed",
					logging.String("source", path),
					logging.Error(err),
				)
				outcomes[i].Err = err
				return nil
			}
			item, err := s.Enqueue(gctx, res)
			if err != nil {
				outcomes[i].Err = err
				return fmt.Errorf("queue %s: %w", path, err)
			}
			outcomes[i].Item = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}
