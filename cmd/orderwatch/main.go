package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/orderwatch/internal/catalog"
	"github.com/gabapcia/orderwatch/internal/config"
	"github.com/gabapcia/orderwatch/internal/handlers/cli"
	"github.com/gabapcia/orderwatch/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/orderwatch/internal/infra/explorer/etherscan"
	"github.com/gabapcia/orderwatch/internal/infra/storage/redis"
	"github.com/gabapcia/orderwatch/internal/notice"
	"github.com/gabapcia/orderwatch/internal/order"
	"github.com/gabapcia/orderwatch/internal/pkg/logger"
	"github.com/gabapcia/orderwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/orderwatch/internal/pkg/resilience/throttle"
	"github.com/gabapcia/orderwatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/orderwatch/internal/pkg/transport/http"
	"github.com/gabapcia/orderwatch/internal/refresh"
	"github.com/gabapcia/orderwatch/internal/selleractions"
	"github.com/gabapcia/orderwatch/internal/session"

	"github.com/ethereum/go-ethereum/ethclient"
	lru "github.com/hashicorp/golang-lru/v2"
)

func main() {
	ctx := context.Background()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName, telemetry.WithChain(cfg.ChainID, cfg.Contract().Hex()))
		if err != nil {
			return err
		}
		defer shutdown(context.WithoutCancel(ctx))
	}

	if err := logger.Init(cfg.LogLevel, logger.WithOutput(os.Stderr)); err != nil {
		return err
	}
	defer logger.Sync()

	store, err := redis.NewClient(ctx, cfg.Redis.Addr,
		redis.WithCredentials(cfg.Redis.Username, cfg.Redis.Password),
		redis.WithDB(cfg.Redis.DB),
		redis.WithNamespace(cfg.Redis.Namespace),
	)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer store.Close()

	conn, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("connect to rpc: %w", err)
	}
	defer conn.Close()

	chain := ethereum.NewClient(conn,
		ethereum.WithContract(cfg.Contract()),
		ethereum.WithPollInterval(cfg.ReceiptPollInterval),
	)

	explorer := etherscan.NewClient(
		transporthttp.NewClient(
			transporthttp.WithTimeout(cfg.HTTP.Timeout),
			transporthttp.WithRetryMax(cfg.HTTP.RetryMax),
			transporthttp.WithUserAgent(cfg.ServiceName),
			transporthttp.WithLeveledLogger(logger.NewLeveled(ctx)),
		),
		cfg.ExplorerAPIKey,
		etherscan.WithEndpoint(cfg.ExplorerURL),
		etherscan.WithChainID(cfg.ChainID),
		etherscan.WithThrottle(throttle.New(throttle.WithInterval(cfg.ExplorerRateLimit))),
	)

	notices := notice.New(notice.WithTTL(cfg.NoticeTTL))

	orders := order.New(explorer,
		order.WithContract(cfg.Contract()),
		order.WithFailureHandler(func(ctx context.Context, failure order.TransactionFailure) {
			logger.Warn(ctx, "failed to process transaction",
				"tx.hash", failure.TxHash.Hex(),
				"error", failure.Err,
			)
			notices.Push(fmt.Sprintf("transaction %s skipped: %v", failure.TxHash.Hex(), failure.Err))
		}),
	)

	payloads, err := lru.New[string, []byte](cfg.CatalogCacheSize)
	if err != nil {
		return err
	}

	catalogs := catalog.New(chain,
		catalog.WithPayloadCache(payloads),
		catalog.WithRetry(retry.New(retry.WithAttempts(cfg.CatalogRetryAttempts))),
		catalog.WithFailureHandler(func(ctx context.Context, failure catalog.Failure) {
			logger.Warn(ctx, "catalog skipped",
				"catalog.link", failure.Link,
				"error", failure.Err,
			)
			notices.Push(fmt.Sprintf("catalog %s skipped: %v", failure.Link, failure.Err))
		}),
	)

	sessions := session.New(store, chain)

	return cli.Run(ctx, cli.Services{
		Session: sessions,
		Refresh: refresh.New(orders, catalogs, sessions, notices, refresh.WithInterval(cfg.RefreshInterval)),
		Actions: selleractions.New(chain, catalogs, selleractions.WithContract(cfg.Contract())),
		Notices: notices,
	})
}
