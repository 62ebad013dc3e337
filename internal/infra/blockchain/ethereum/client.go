// Package ethereum gives the domain packages access to an Ethereum node: the
// marketplace contract views, raw transaction data and the submission of
// signed seller transactions.
package ethereum

import (
	"context"
	"math/big"
	"time"

	"github.com/gabapcia/orderwatch/internal/calldata"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// averageBlockTime is the default delay between two receipt polls.
const averageBlockTime = 12 * time.Second

// Backend is the subset of *ethclient.Client the adapter uses.
type Backend interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (tx *types.Transaction, isPending bool, err error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

type client struct {
	conn         Backend
	contract     common.Address
	pollInterval time.Duration
}

type config struct {
	contract     common.Address
	pollInterval time.Duration
}

type Option func(*config)

// NewClient wraps conn, usually an *ethclient.Client.
func NewClient(conn Backend, opts ...Option) *client {
	cfg := config{
		contract:     calldata.DefaultMarketAddress,
		pollInterval: averageBlockTime,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		conn:         conn,
		contract:     cfg.contract,
		pollInterval: cfg.pollInterval,
	}
}

// WithContract points the adapter at another marketplace deployment.
func WithContract(addr common.Address) Option {
	return func(c *config) {
		c.contract = addr
	}
}

// WithPollInterval sets how often a pending transaction's receipt is checked.
//
// Default: 12 seconds.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}
