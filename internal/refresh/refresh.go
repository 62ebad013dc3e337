// Package refresh rebuilds the seller's view of orders and catalogs.
//
// A refresh runs the order assembler and the catalog loader concurrently and
// replaces the published Snapshot only when both succeed. At most one refresh
// runs at a time; a concurrent request is dropped with ErrRefreshInProgress.
package refresh

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"time"

	"github.com/gabapcia/orderwatch/internal/catalog"
	"github.com/gabapcia/orderwatch/internal/cryptobox"
	"github.com/gabapcia/orderwatch/internal/order"
	"github.com/gabapcia/orderwatch/internal/session"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrRefreshInProgress = errors.New("refresh already in progress")
	ErrServiceStarted    = errors.New("service already started")
)

// DefaultInterval is the period of the background refresh loop.
const DefaultInterval = 30 * time.Minute

// OrderAssembler builds the seller's orders.
type OrderAssembler interface {
	Assemble(ctx context.Context, sk *ecdsa.PrivateKey) ([]order.Order, error)
}

// CatalogLoader loads the seller's catalogs.
type CatalogLoader interface {
	Load(ctx context.Context, pub cryptobox.PublicKey) ([]catalog.Catalog, error)
}

// SessionStore gives access to the logged in seller.
type SessionStore interface {
	Current(ctx context.Context) (session.Session, error)
	MarkRefreshed(ctx context.Context, at time.Time) error
}

// Notifier receives user-visible failure messages.
type Notifier interface {
	Push(msg string)
}

// Snapshot is the result of the last successful refresh.
type Snapshot struct {
	Seller      common.Address
	Orders      []order.Order
	Catalogs    []catalog.Catalog
	RefreshedAt time.Time
}

// Empty reports whether no refresh has completed yet.
func (s Snapshot) Empty() bool {
	return s.RefreshedAt.IsZero()
}

// Reconcile compares what the buyer paid in stablecoins for o against the
// catalog price in effect when the order was created.
func (s Snapshot) Reconcile(o order.Order) catalog.Reconciliation {
	return catalog.Reconcile(
		s.Catalogs,
		o.CreatedAt,
		o.Product.CompoundName,
		o.Product.Quantity,
		o.Payment.Stablecoins(),
	)
}

// Pending returns the orders without a fulfillment reply.
func (s Snapshot) Pending() []order.Order {
	pending := make([]order.Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		if !o.Fulfilled() {
			pending = append(pending, o)
		}
	}
	return pending
}

// Find returns the order created by the given purchase transaction.
func (s Snapshot) Find(txHash common.Hash) (order.Order, bool) {
	for _, o := range s.Orders {
		if o.TxHash == txHash {
			return o, true
		}
	}
	return order.Order{}, false
}
