// Package order assembles the orders addressed to a seller from the
// marketplace contract's transaction history.
//
// Purchases reach the contract as purchaseWithEth or purchaseWithToken calls
// whose last argument carries an envelope sealed for the seller's public key.
// Assembly joins three independent feeds: the contract's transactions, the
// contract's token transfers (grouped by transaction hash) and the seller's
// own reply transactions (indexed by the order hash they answer).
package order

import (
	"context"
	"math/big"

	"github.com/gabapcia/orderwatch/internal/cryptobox"

	"github.com/ethereum/go-ethereum/common"
)

// Transaction is a transaction as reported by the explorer.
type Transaction struct {
	Hash      common.Hash
	From      common.Address
	To        *common.Address // nil for contract creations
	Input     []byte
	Value     *big.Int // native value in wei
	Succeeded bool     // executed without error and with a successful receipt
}

// IsTo reports whether the transaction was sent to addr.
func (tx Transaction) IsTo(addr common.Address) bool {
	return tx.To != nil && *tx.To == addr
}

// TokenTransfer is a single token transfer log entry. A purchase may move
// several tokens, so several transfers can share a Hash.
type TokenTransfer struct {
	Hash     common.Hash
	To       common.Address
	Contract common.Address // token contract
	Value    *big.Int       // raw token units
}

// Explorer lists the history of an address.
type Explorer interface {
	// ListTransactions returns the transactions of address in ascending chain order.
	ListTransactions(ctx context.Context, address common.Address) ([]Transaction, error)

	// ListTokenTransfers returns the token transfers involving address.
	ListTokenTransfers(ctx context.Context, address common.Address) ([]TokenTransfer, error)
}

// Order is a decrypted purchase addressed to the seller.
type Order struct {
	Payload

	TxHash       common.Hash
	BuyerAddress common.Address
	BuyerGateway common.Address
	Payment      Payment
	ReplyTxHash  common.Hash // zero until the seller replies
}

// Fulfilled reports whether a reply transaction references the order.
func (o Order) Fulfilled() bool {
	return o.ReplyTxHash != (common.Hash{})
}

// BuyerKey parses the public key the buyer expects replies to be sealed for.
func (o Order) BuyerKey() (cryptobox.PublicKey, error) {
	return cryptobox.ParsePublicKey(o.BuyerPublicKey)
}

// ReplyIndex maps order transaction hashes to the reply transaction that
// fulfilled them. Hashes are compared as 32-byte values, so the hex case used
// by the source is irrelevant.
type ReplyIndex map[common.Hash]common.Hash

// Lookup returns the reply to orderHash, if any.
func (idx ReplyIndex) Lookup(orderHash common.Hash) (common.Hash, bool) {
	reply, ok := idx[orderHash]
	return reply, ok
}

// TransactionFailure reports a purchase that could not be turned into an order.
type TransactionFailure struct {
	TxHash common.Hash
	Err    error
}
