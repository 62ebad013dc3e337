package order

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/gabapcia/orderwatch/internal/calldata"
	"github.com/gabapcia/orderwatch/internal/cryptobox"
	"github.com/gabapcia/orderwatch/internal/pkg/logger"
	"github.com/gabapcia/orderwatch/internal/pkg/types"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

// payloadSeparator splits the sealed envelope from the plaintext trailer of a purchase payload.
const payloadSeparator = "@@@"

type Service interface {
	// Assemble returns every order addressed to the holder of sk, with
	// fulfillment status attached. Purchases that cannot be decrypted or parsed
	// are reported to the failure handler and left out.
	//
	// The result depends only on the explorer data and sk.
	Assemble(ctx context.Context, sk *ecdsa.PrivateKey) ([]Order, error)

	// BuildReplyIndex indexes the successful replyToOrder calls sent by seller.
	BuildReplyIndex(ctx context.Context, seller common.Address) (ReplyIndex, error)
}

type failureHandler func(ctx context.Context, failure TransactionFailure)

type service struct {
	explorer       Explorer
	contract       common.Address
	failureHandler failureHandler
}

var _ Service = (*service)(nil)

func (s *service) Assemble(ctx context.Context, sk *ecdsa.PrivateKey) ([]Order, error) {
	seller := cryptobox.DeriveAddress(sk)

	var (
		orders []Order
		index  ReplyIndex
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		orders, err = s.purchases(gctx, sk, seller)
		return err
	})
	g.Go(func() (err error) {
		index, err = s.BuildReplyIndex(gctx, seller)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range orders {
		if reply, ok := index.Lookup(orders[i].TxHash); ok {
			orders[i].ReplyTxHash = reply
		}
	}

	return orders, nil
}

// purchases decrypts the purchases of the contract addressed to seller.
func (s *service) purchases(ctx context.Context, sk *ecdsa.PrivateKey, seller common.Address) ([]Order, error) {
	var (
		txs       []Transaction
		transfers []TokenTransfer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		txs, err = s.explorer.ListTransactions(gctx, s.contract)
		return err
	})
	g.Go(func() (err error) {
		transfers, err = s.explorer.ListTokenTransfers(gctx, s.contract)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	received := make([]TokenTransfer, 0, len(transfers))
	for _, t := range transfers {
		if t.To == seller {
			received = append(received, t)
		}
	}
	transfersByTx := types.GroupBy(received, func(t TokenTransfer) common.Hash { return t.Hash })

	var (
		orders = make([]Order, 0)
		seen   = types.NewSet[common.Hash]()
	)
	for _, tx := range txs {
		if !tx.IsTo(s.contract) || !tx.Succeeded || seen.Has(tx.Hash) {
			continue
		}
		seen.Add(tx.Hash)

		o, ok, err := s.assemble(ctx, sk, seller, tx, transfersByTx[tx.Hash])
		if err != nil {
			s.failureHandler(ctx, TransactionFailure{TxHash: tx.Hash, Err: err})
			continue
		}
		if ok {
			orders = append(orders, o)
		}
	}

	return orders, nil
}

// assemble turns one contract transaction into an order. It returns false
// without error for transactions that are not purchases meant for seller.
func (s *service) assemble(ctx context.Context, sk *ecdsa.PrivateKey, seller common.Address, tx Transaction, transfers []TokenTransfer) (Order, bool, error) {
	call, err := calldata.Decode(tx.Input)
	if err != nil {
		return Order{}, false, err
	}

	purchase, ok := call.(calldata.Purchase)
	if !ok {
		return Order{}, false, nil
	}

	if purchase.Seller != seller {
		logger.Debug(ctx, "purchase addressed to another seller", "tx.hash", tx.Hash.Hex(), "purchase.seller", purchase.Seller.Hex())
		return Order{}, false, nil
	}

	envelope, _, found := strings.Cut(string(purchase.EncryptedPayload), payloadSeparator)
	if !found {
		return Order{}, false, nil
	}

	plaintext, err := cryptobox.Decrypt(sk, envelope)
	if err != nil {
		return Order{}, false, err
	}

	payload, err := ParsePayload(plaintext)
	if err != nil {
		return Order{}, false, err
	}

	return Order{
		Payload:      payload,
		TxHash:       tx.Hash,
		BuyerAddress: tx.From,
		BuyerGateway: purchase.BuyerGateway,
		Payment:      NewPayment(tx.Value, transfers),
	}, true, nil
}

func (s *service) BuildReplyIndex(ctx context.Context, seller common.Address) (ReplyIndex, error) {
	txs, err := s.explorer.ListTransactions(ctx, seller)
	if err != nil {
		return nil, fmt.Errorf("list seller transactions: %w", err)
	}

	index := make(ReplyIndex)
	for _, tx := range txs {
		if !tx.IsTo(s.contract) || tx.From != seller || !tx.Succeeded {
			continue
		}
		if !calldata.IsMethod(tx.Input, calldata.MethodReplyToOrder) {
			continue
		}

		call, err := calldata.Decode(tx.Input)
		if err != nil {
			logger.Debug(ctx, "skipping undecodable reply", "tx.hash", tx.Hash.Hex(), "error", err)
			continue
		}

		if reply, ok := call.(calldata.Reply); ok {
			index[reply.OrderTxHash] = tx.Hash
		}
	}

	return index, nil
}

type config struct {
	contract       common.Address
	failureHandler failureHandler
}

type Option func(*config)

func New(explorer Explorer, opts ...Option) *service {
	cfg := config{
		contract:       calldata.DefaultMarketAddress,
		failureHandler: defaultOnFailure,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		explorer:       explorer,
		contract:       cfg.contract,
		failureHandler: cfg.failureHandler,
	}
}

func defaultOnFailure(ctx context.Context, failure TransactionFailure) {
	logger.Warn(ctx, "failed to process transaction",
		"tx.hash", failure.TxHash.Hex(),
		"error", failure.Err,
	)
}

// WithContract overrides the marketplace contract address.
func WithContract(addr common.Address) Option {
	return func(c *config) {
		c.contract = addr
	}
}

func WithFailureHandler(f func(ctx context.Context, failure TransactionFailure)) Option {
	return func(c *config) {
		c.failureHandler = f
	}
}
