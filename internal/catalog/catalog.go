// Package catalog loads a seller's product catalogs from the ledger and
// reconciles order payments against the price in effect when the order was placed.
//
// Every upload recorded by the marketplace contract points to a data
// transaction whose input is a gzip compressed, comma delimited document.
// Catalogs are immutable once uploaded and form a sequence ordered by upload
// time; a later catalog never changes the expected price of an earlier order.
package catalog

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// Upload is a catalog upload recorded by the marketplace contract.
type Upload struct {
	SellerAddress   common.Address // uploader
	SellerPublicKey []byte         // 0x04-prefixed uncompressed key the upload was made with
	Link            string         // hash of the data transaction carrying the payload
	Timestamp       uint64         // upload time, epoch seconds
}

// Catalog is one timestamped snapshot of a seller's product list.
type Catalog struct {
	Link      string
	Timestamp uint64
	Products  []Product
}

// Ledger provides read access to the catalog uploads on chain.
type Ledger interface {
	// ListProductUploads returns every upload recorded by the contract, of all sellers.
	ListProductUploads(ctx context.Context) ([]Upload, error)

	// TransactionInput returns the input bytes of the transaction with the given hash.
	TransactionInput(ctx context.Context, hash common.Hash) ([]byte, error)
}

// PayloadCache keeps decompressed payloads by link. Payloads never change,
// so entries never need invalidation.
//
// *lru.Cache[string, []byte] from hashicorp/golang-lru satisfies it.
type PayloadCache interface {
	Get(link string) ([]byte, bool)
	Add(link string, payload []byte) bool
}

// Failure describes a catalog that was skipped because it could not be loaded.
type Failure struct {
	Link string
	Err  error
}

type nopCache struct{}

func (nopCache) Get(string) ([]byte, bool) { return nil, false }
func (nopCache) Add(string, []byte) bool   { return false }
