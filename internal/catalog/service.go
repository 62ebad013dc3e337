package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/gabapcia/orderwatch/internal/cryptobox"
	"github.com/gabapcia/orderwatch/internal/pkg/logger"
	"github.com/gabapcia/orderwatch/internal/pkg/resilience/retry"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type Service interface {
	// Uploads lists the uploads made with pub, in contract order.
	Uploads(ctx context.Context, pub cryptobox.PublicKey) ([]Upload, error)

	// Load retrieves and parses every catalog uploaded with pub, sorted by
	// ascending timestamp. Catalogs that fail to load are reported to the
	// failure handler and left out.
	Load(ctx context.Context, pub cryptobox.PublicKey) ([]Catalog, error)
}

type failureHandler func(ctx context.Context, failure Failure)

type service struct {
	ledger         Ledger
	cache          PayloadCache
	retry          retry.Retry
	failureHandler failureHandler
}

var _ Service = (*service)(nil)

func (s *service) Uploads(ctx context.Context, pub cryptobox.PublicKey) ([]Upload, error) {
	all, err := s.ledger.ListProductUploads(ctx)
	if err != nil {
		return nil, err
	}

	key := pub.Uncompressed()
	uploads := make([]Upload, 0)
	for _, u := range all {
		if bytes.Equal(u.SellerPublicKey, key) {
			uploads = append(uploads, u)
		}
	}
	return uploads, nil
}

func (s *service) Load(ctx context.Context, pub cryptobox.PublicKey) ([]Catalog, error) {
	uploads, err := s.Uploads(ctx, pub)
	if err != nil {
		return nil, err
	}

	var (
		catalogs = make([]Catalog, 0, len(uploads))
		nextID   = 0
	)
	for _, u := range uploads {
		products, err := s.products(ctx, u.Link)
		if errors.Is(err, ErrCatalogTooShort) {
			logger.Info(ctx, "skipping empty catalog", "catalog.link", u.Link)
			continue
		}
		if err != nil {
			s.failureHandler(ctx, Failure{Link: u.Link, Err: err})
			continue
		}

		for i := range products {
			products[i].ID = nextID
			products[i].VendorAddress = u.SellerAddress.Hex()
			products[i].VendorPublicKey = hexutil.Encode(u.SellerPublicKey)
			nextID++
		}

		catalogs = append(catalogs, Catalog{
			Link:      u.Link,
			Timestamp: u.Timestamp,
			Products:  products,
		})
	}

	slices.SortStableFunc(catalogs, func(a, b Catalog) int {
		switch {
		case a.Timestamp < b.Timestamp:
			return -1
		case a.Timestamp > b.Timestamp:
			return 1
		}
		return 0
	})

	return catalogs, nil
}

// products returns the parsed rows of the catalog stored at link.
func (s *service) products(ctx context.Context, link string) ([]Product, error) {
	document, ok := s.cache.Get(link)
	if !ok {
		hash, err := parseLink(link)
		if err != nil {
			return nil, err
		}

		payload, err := retry.Value(ctx, s.retry, func() ([]byte, error) {
			return s.ledger.TransactionInput(ctx, hash)
		})
		if err != nil {
			return nil, fmt.Errorf("%w: retrieve %s: %w", ErrCatalogParse, link, err)
		}

		if document, err = Decompress(payload); err != nil {
			return nil, err
		}
		s.cache.Add(link, document)
	}

	return ParseDocument(document)
}

func parseLink(link string) (common.Hash, error) {
	raw, err := hexutil.Decode(link)
	if err != nil || len(raw) != common.HashLength {
		return common.Hash{}, fmt.Errorf("%w: link %q is not a transaction hash", ErrCatalogParse, link)
	}
	return common.BytesToHash(raw), nil
}

type config struct {
	cache          PayloadCache
	retry          retry.Retry
	failureHandler failureHandler
}

type Option func(*config)

func New(ledger Ledger, opts ...Option) *service {
	cfg := config{
		cache:          nopCache{},
		retry:          retry.New(retry.WithAttempts(1)),
		failureHandler: defaultOnFailure,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		ledger:         ledger,
		cache:          cfg.cache,
		retry:          cfg.retry,
		failureHandler: cfg.failureHandler,
	}
}

func defaultOnFailure(ctx context.Context, failure Failure) {
	logger.Warn(ctx, "catalog skipped",
		"catalog.link", failure.Link,
		"error", failure.Err,
	)
}

// WithPayloadCache keeps decompressed payloads across loads.
func WithPayloadCache(c PayloadCache) Option {
	return func(cfg *config) {
		cfg.cache = c
	}
}

// WithRetry retries payload retrieval from the ledger.
func WithRetry(r retry.Retry) Option {
	return func(cfg *config) {
		cfg.retry = r
	}
}

func WithFailureHandler(f func(ctx context.Context, failure Failure)) Option {
	return func(cfg *config) {
		cfg.failureHandler = f
	}
}
