package ethereum

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/orderwatch/internal/calldata"
	"github.com/gabapcia/orderwatch/internal/catalog"
	"github.com/gabapcia/orderwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/orderwatch/internal/session"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

// ErrTransactionNotFound is returned when the node does not know a transaction.
// It is permanent for retry.
var ErrTransactionNotFound = errors.New("transaction not found")

// call runs a read-only call against the marketplace contract at the latest block.
func (c *client) call(ctx context.Context, data []byte) ([]byte, error) {
	return c.conn.CallContract(ctx, ethereum.CallMsg{To: &c.contract, Data: data}, nil)
}

func (c *client) sellerFlag(ctx context.Context, method string, seller common.Address) (bool, error) {
	data, err := calldata.PackSellerFlag(method, seller)
	if err != nil {
		return false, err
	}

	out, err := c.call(ctx, data)
	if err != nil {
		return false, fmt.Errorf("%s: %w", method, err)
	}

	return calldata.UnpackBool(method, out)
}

// IsApprovedSeller implements the session.SellerRegistry interface. An address
// qualifies when the contract approves it and does not blacklist it.
func (c *client) IsApprovedSeller(ctx context.Context, seller common.Address) (bool, error) {
	approved, err := c.sellerFlag(ctx, calldata.MethodApprovedSellers, seller)
	if err != nil || !approved {
		return false, err
	}

	blacklisted, err := c.sellerFlag(ctx, calldata.MethodBlacklistedSellers, seller)
	if err != nil {
		return false, err
	}

	return !blacklisted, nil
}

// ListProductUploads implements the catalog.Ledger interface with the getProducts view.
func (c *client) ListProductUploads(ctx context.Context) ([]catalog.Upload, error) {
	data, err := calldata.PackGetProducts()
	if err != nil {
		return nil, err
	}

	out, err := c.call(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", calldata.MethodGetProducts, err)
	}

	records, err := calldata.UnpackGetProducts(out)
	if err != nil {
		return nil, err
	}

	uploads := make([]catalog.Upload, len(records))
	for i, r := range records {
		uploads[i] = catalog.Upload{
			SellerAddress:   r.SellerAddr,
			SellerPublicKey: r.SellerPubKey,
			Link:            r.Link,
		}
		if r.Timestamp != nil {
			uploads[i].Timestamp = r.Timestamp.Uint64()
		}
	}

	return uploads, nil
}

// TransactionInput implements the catalog.Ledger interface.
func (c *client) TransactionInput(ctx context.Context, hash common.Hash) ([]byte, error) {
	tx, _, err := c.conn.TransactionByHash(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return nil, retry.Permanent(fmt.Errorf("%w: %s", ErrTransactionNotFound, hash.Hex()))
	}
	if err != nil {
		return nil, err
	}

	return tx.Data(), nil
}

// Compile-time assertions to ensure *client satisfies the domain interfaces
var (
	_ catalog.Ledger         = new(client)
	_ session.SellerRegistry = new(client)
)
