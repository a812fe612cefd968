package main

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"

	"github.com/djdv/go-pagecache"
	"github.com/djdv/go-pagecache/internal/baseline"
	"github.com/djdv/go-pagecache/internal/observe"
	"github.com/djdv/go-pagecache/internal/observe/promobserver"
	"github.com/djdv/go-pagecache/internal/observe/zapobserver"
)

type (
	engine = pagecache.Engine[int, int]
	// engineFactory builds an engine for one replay of keys.
	engineFactory struct {
		name string
		new  func(capacity int, keys []int, options ...pagecache.Option[int]) (engine, error)
	}
	// session holds the logging and metrics shared by a command run.
	session struct {
		logger   *zap.Logger
		registry *prometheus.Registry
	}
)

var (
	lfuFactory = engineFactory{
		name: "lfu",
		new: func(capacity int, _ []int, options ...pagecache.Option[int]) (engine, error) {
			return pagecache.NewLFU[int, int](capacity, options...)
		},
	}
	optimalFactory = engineFactory{
		name: "optimal",
		new: func(capacity int, keys []int, options ...pagecache.Option[int]) (engine, error) {
			return pagecache.NewOptimal[int, int](capacity, keys, options...)
		},
	}
	lruFactory = engineFactory{
		name: "lru",
		new: func(capacity int, _ []int, _ ...pagecache.Option[int]) (engine, error) {
			return baseline.NewLRU[int, int](capacity)
		},
	}
	arcFactory = engineFactory{
		name: "arc",
		new: func(capacity int, _ []int, _ ...pagecache.Option[int]) (engine, error) {
			return baseline.NewARC[int, int](capacity)
		},
	}
	allFactories = []engineFactory{lfuFactory, optimalFactory, lruFactory, arcFactory}
)

func newSession() (*session, error) {
	logger := zap.NewNop()
	if verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, fmt.Errorf("creating logger: %w", err)
		}
	}
	return &session{
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}, nil
}

// build constructs the engine with observers attached.
func (s *session) build(factory engineFactory, capacity int, keys []int) (engine, error) {
	counters, err := promobserver.New[int](s.registry, factory.name)
	if err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}
	observers := observe.Multi[int]{
		zapobserver.New[int](s.logger.Named(factory.name)),
		counters,
	}
	return factory.new(capacity, keys, pagecache.WithObserver[int](observers))
}

// replay drives keys through the engine once and returns the hit count.
// Pages are the keys themselves, as in the original drivers.
func (s *session) replay(factory engineFactory, capacity int, keys []int) (int, error) {
	cache, err := s.build(factory, capacity, keys)
	if err != nil {
		return 0, err
	}
	fetch := func(key int) (int, error) { return key, nil }
	var hits int
	for _, key := range keys {
		hit, err := cache.LookupUpdate(key, fetch)
		if err != nil {
			return hits, err
		}
		if hit {
			hits++
		}
	}
	s.logger.Info("replay finished",
		zap.String("engine", factory.name),
		zap.Int("capacity", capacity),
		zap.Int("keys", len(keys)),
		zap.Int("hits", hits),
	)
	return hits, nil
}

// close flushes the logger and, if requested, writes metrics to w.
func (s *session) close(w io.Writer) error {
	syncErr := syncLogger(s.logger)
	if !metrics {
		return syncErr
	}
	return errors.Join(syncErr, s.writeMetrics(w))
}

// syncLogger flushes logger.
// Terminals and pipes reject fsync with ENOTTY or EINVAL,
// which is not a failure to flush.
func syncLogger(logger *zap.Logger) error {
	err := logger.Sync()
	if err == nil ||
		errors.Is(err, syscall.ENOTTY) ||
		errors.Is(err, syscall.EINVAL) {
		return nil
	}
	return fmt.Errorf("flushing logger: %w", err)
}

func (s *session) writeMetrics(w io.Writer) error {
	families, err := s.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	encoder := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := encoder.Encode(family); err != nil {
			return fmt.Errorf("encoding metrics: %w", err)
		}
	}
	return nil
}
