package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/gabapcia/orderwatch/internal/pkg/logger"
	"github.com/gabapcia/orderwatch/internal/selleractions"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ErrTransactionReverted is returned by Send when a transaction is mined with a failed status.
var ErrTransactionReverted = errors.New("transaction reverted")

func callMsg(req selleractions.TxRequest) ethereum.CallMsg {
	to := req.To
	return ethereum.CallMsg{
		From:  req.From,
		To:    &to,
		Data:  req.Data,
		Value: req.Value,
	}
}

// EstimateGas implements the selleractions.Submitter interface.
func (c *client) EstimateGas(ctx context.Context, req selleractions.TxRequest) (uint64, error) {
	return c.conn.EstimateGas(ctx, callMsg(req))
}

// SuggestGasPrice implements the selleractions.Submitter interface.
func (c *client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return c.conn.SuggestGasPrice(ctx)
}

// Send implements the selleractions.Submitter interface. The transaction is
// priced at the node's suggested gas price and signed for the node's chain id.
func (c *client) Send(ctx context.Context, sk *ecdsa.PrivateKey, req selleractions.TxRequest) (selleractions.Receipt, error) {
	chainID, err := c.conn.ChainID(ctx)
	if err != nil {
		return selleractions.Receipt{}, fmt.Errorf("chain id: %w", err)
	}

	nonce, err := c.conn.PendingNonceAt(ctx, req.From)
	if err != nil {
		return selleractions.Receipt{}, fmt.Errorf("nonce: %w", err)
	}

	gas, err := c.EstimateGas(ctx, req)
	if err != nil {
		return selleractions.Receipt{}, fmt.Errorf("estimate gas: %w", err)
	}

	gasPrice, err := c.conn.SuggestGasPrice(ctx)
	if err != nil {
		return selleractions.Receipt{}, fmt.Errorf("gas price: %w", err)
	}

	value := req.Value
	if value == nil {
		value = new(big.Int)
	}

	tx, err := types.SignNewTx(sk, types.LatestSignerForChainID(chainID), &types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &req.To,
		Value:    value,
		Data:     req.Data,
	})
	if err != nil {
		return selleractions.Receipt{}, err
	}

	if err := c.conn.SendTransaction(ctx, tx); err != nil {
		return selleractions.Receipt{}, err
	}

	ctx = logger.Derive(ctx, "tx.hash", tx.Hash().Hex())
	logger.Info(ctx, "transaction sent", "tx.nonce", nonce, "tx.gas", gas)

	receipt, err := c.waitMined(ctx, tx.Hash())
	if err != nil {
		return selleractions.Receipt{}, err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return selleractions.Receipt{}, fmt.Errorf("%w: %s", ErrTransactionReverted, tx.Hash().Hex())
	}

	return selleractions.Receipt{
		TxHash:      tx.Hash(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	}, nil
}

// waitMined polls for the receipt of hash until it exists or ctx is done.
func (c *client) waitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.conn.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			logger.Debug(ctx, "receipt lookup failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Compile-time assertion to ensure *client satisfies the selleractions.Submitter interface
var _ selleractions.Submitter = new(client)
