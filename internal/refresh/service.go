package refresh

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabapcia/orderwatch/internal/catalog"
	"github.com/gabapcia/orderwatch/internal/order"
	"github.com/gabapcia/orderwatch/internal/pkg/logger"
	"github.com/gabapcia/orderwatch/internal/pkg/x/chflow"
	"github.com/gabapcia/orderwatch/internal/session"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"
)

type Service interface {
	// Refresh rebuilds the snapshot for the logged in seller. Without a
	// session it does nothing.
	Refresh(ctx context.Context) error

	// Snapshot returns the result of the last successful refresh.
	Snapshot() Snapshot

	// Trigger asks the background loop for a refresh. Requests made while one
	// is already pending are coalesced.
	Trigger()

	// Start runs the background loop until Close is called or ctx is done.
	Start(ctx context.Context) error
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	orders   OrderAssembler
	catalogs CatalogLoader
	sessions SessionStore
	notifier Notifier

	interval time.Duration
	now      func() time.Time
	metrics  *metrics

	inProgress atomic.Bool
	snapshot   atomic.Pointer[Snapshot]
	trigger    chan struct{}
}

var _ Service = (*service)(nil)

func (s *service) Refresh(ctx context.Context) error {
	if !s.inProgress.CompareAndSwap(false, true) {
		return ErrRefreshInProgress
	}
	defer s.inProgress.Store(false)

	sess, err := s.sessions.Current(ctx)
	if errors.Is(err, session.ErrNoSession) {
		logger.Debug(ctx, "refresh skipped without a session")
		return nil
	}
	if err != nil {
		return s.fail(ctx, err)
	}

	ctx, span := tracer().Start(ctx, "refresh")
	defer span.End()
	span.SetAttributes(attribute.String("seller", sess.Address.Hex()))

	start := time.Now()

	var (
		orders   []order.Order
		catalogs []catalog.Catalog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		orders, err = s.orders.Assemble(gctx, sess.PrivateKey)
		return err
	})
	g.Go(func() (err error) {
		catalogs, err = s.catalogs.Load(gctx, sess.PublicKey)
		return err
	})

	err = g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.metrics.record(ctx, outcomeFailure, time.Since(start))
		return s.fail(ctx, err)
	}

	refreshedAt := s.now()
	s.snapshot.Store(&Snapshot{
		Seller:      sess.Address,
		Orders:      orders,
		Catalogs:    catalogs,
		RefreshedAt: refreshedAt,
	})

	s.metrics.record(ctx, outcomeSuccess, time.Since(start))
	s.metrics.orders.Record(ctx, int64(len(orders)))

	if err := s.sessions.MarkRefreshed(ctx, refreshedAt); err != nil {
		logger.Warn(ctx, "could not persist refresh time", "error", err)
	}

	logger.Info(ctx, "refresh completed",
		"refresh.orders", len(orders),
		"refresh.catalogs", len(catalogs),
		"refresh.duration", time.Since(start).String(),
	)

	return nil
}

func (s *service) fail(ctx context.Context, err error) error {
	err = fmt.Errorf("refresh failed: %w", err)
	logger.Error(ctx, "refresh failed", "error", err)
	s.notifier.Push(err.Error())
	return err
}

func (s *service) Snapshot() Snapshot {
	if snap := s.snapshot.Load(); snap != nil {
		return *snap
	}
	return Snapshot{}
}

func (s *service) Trigger() {
	chflow.TrySend(s.trigger, struct{}{})
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	s.closeFunc = func() {
		cancel()
		wg.Wait()
	}

	if sess, err := s.sessions.Current(ctx); err == nil && sess.Stale(s.now(), s.interval) {
		s.Trigger()
	} else if err != nil && !errors.Is(err, session.ErrNoSession) {
		logger.Warn(ctx, "could not load session", "error", err)
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		s.tick(ctx)
	}()
	go func() {
		defer wg.Done()
		s.loop(ctx)
	}()

	s.isStarted = true
	return nil
}

func (s *service) tick(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, ok := chflow.Receive(ctx, ticker.C); !ok {
			return
		}
		s.Trigger()
	}
}

func (s *service) loop(ctx context.Context) {
	for {
		if _, ok := chflow.Receive(ctx, s.trigger); !ok {
			return
		}

		err := s.Refresh(ctx)
		if errors.Is(err, ErrRefreshInProgress) {
			logger.Debug(ctx, "refresh request dropped", "error", err)
		}
	}
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

type config struct {
	interval time.Duration
	now      func() time.Time
	meter    metric.Meter
}

type Option func(*config)

func New(orders OrderAssembler, catalogs CatalogLoader, sessions SessionStore, notifier Notifier, opts ...Option) *service {
	cfg := config{
		interval: DefaultInterval,
		now:      time.Now,
		meter:    otel.Meter(instrumentationName),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		orders:   orders,
		catalogs: catalogs,
		sessions: sessions,
		notifier: notifier,
		interval: cfg.interval,
		now:      cfg.now,
		metrics:  mustMetrics(cfg.meter),
		trigger:  make(chan struct{}, 1),
	}
}

// WithInterval overrides DefaultInterval. It is also the age after which a
// session is refreshed as soon as the loop starts.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		c.interval = d
	}
}

// WithClock replaces time.Now as the source of refresh timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithMeterProvider records refresh metrics through mp instead of the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meter = mp.Meter(instrumentationName)
	}
}
