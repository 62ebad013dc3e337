// Package selleractions implements the transactions a seller sends to the
// marketplace: replying to an order and uploading a catalog. Every action has
// a matching estimate that prices it without sending anything.
package selleractions

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"

	"github.com/gabapcia/orderwatch/internal/catalog"
	"github.com/gabapcia/orderwatch/internal/cryptobox"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

var (
	// ErrOrderNotFulfillable is returned when an order lacks the buyer data a reply needs.
	ErrOrderNotFulfillable = errors.New("order cannot be fulfilled")

	// ErrInvalidCatalog is returned when an upload would not load as a catalog.
	ErrInvalidCatalog = errors.New("invalid catalog document")
)

const weiDecimals = 18

// TxRequest is an unsigned transaction from the seller.
type TxRequest struct {
	From  common.Address
	To    common.Address
	Data  []byte
	Value *big.Int
}

// Receipt is the mined result of a transaction.
type Receipt struct {
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
}

// Submitter prices, signs and sends seller transactions.
type Submitter interface {
	EstimateGas(ctx context.Context, req TxRequest) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)

	// Send signs req with sk, broadcasts it and waits until it is mined.
	// A mined but reverted transaction is an error.
	Send(ctx context.Context, sk *ecdsa.PrivateKey, req TxRequest) (Receipt, error)
}

// UploadLister lists catalog uploads.
type UploadLister interface {
	Uploads(ctx context.Context, pub cryptobox.PublicKey) ([]catalog.Upload, error)
}

// Fulfillment is what the seller tells the buyer about a shipped order.
type Fulfillment struct {
	OrderTxHash string `json:"order_trxn_hash"`
	TrackingURL string `json:"tracking_url"`
	Message     string `json:"message"`
}

// Cost is the price of an action at the current gas price.
type Cost struct {
	Gas      uint64
	GasPrice *big.Int // wei per gas
}

// Wei returns Gas × GasPrice.
func (c Cost) Wei() *big.Int {
	if c.GasPrice == nil {
		return new(big.Int)
	}
	return new(big.Int).Mul(new(big.Int).SetUint64(c.Gas), c.GasPrice)
}

// ETH returns the cost in ether.
func (c Cost) ETH() decimal.Decimal {
	return decimal.NewFromBigInt(c.Wei(), -weiDecimals)
}

// UploadReceipt describes a completed catalog upload.
//
// The embedded Receipt is the uploadProduct transaction, with GasUsed covering
// both transactions. DataTxHash is the transaction carrying the payload, which
// the contract stores as the catalog link.
type UploadReceipt struct {
	Receipt
	DataTxHash common.Hash
}
