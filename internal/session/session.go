// Package session manages the seller identity the pipeline runs as.
//
// Only the private key and the time of the last successful refresh survive
// restarts; everything else is derived from the key on load.
package session

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/orderwatch/internal/cryptobox"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrNoSession is returned when no seller is logged in.
	ErrNoSession = errors.New("no active session")

	// ErrSellerNotApproved is returned by Login when the contract does not list
	// the address as an approved, non-blacklisted seller.
	ErrSellerNotApproved = fmt.Errorf("%w: address is not an approved seller", cryptobox.ErrIdentity)
)

// Session is the identity of the logged in seller.
type Session struct {
	PrivateKey      *ecdsa.PrivateKey
	PublicKey       cryptobox.PublicKey
	Address         common.Address
	LastRefreshedAt time.Time // zero when never refreshed
}

// Stale reports whether the session data is older than maxAge or was never refreshed.
func (s Session) Stale(now time.Time, maxAge time.Duration) bool {
	return s.LastRefreshedAt.IsZero() || now.Sub(s.LastRefreshedAt) >= maxAge
}

// Record is the persisted form of a Session.
type Record struct {
	PrivateKey      string     `json:"private_key"`
	Address         string     `json:"address"`
	LastRefreshedAt *time.Time `json:"last_refreshed_at,omitempty"`
}

// Storage persists the session record.
type Storage interface {
	// SaveSession replaces the stored record.
	SaveSession(ctx context.Context, record Record) error

	// LoadSession returns the stored record or ErrNoSession.
	LoadSession(ctx context.Context) (Record, error)

	// DeleteSession removes the stored record. Deleting a missing record is not an error.
	DeleteSession(ctx context.Context) error
}

// SellerRegistry answers whether an address may sell on the marketplace.
type SellerRegistry interface {
	IsApprovedSeller(ctx context.Context, seller common.Address) (bool, error)
}

func fromRecord(r Record) (Session, error) {
	sk, err := cryptobox.ParsePrivateKey(r.PrivateKey)
	if err != nil {
		return Session{}, err
	}

	s := Session{
		PrivateKey: sk,
		PublicKey:  cryptobox.DerivePublicKey(sk),
		Address:    cryptobox.DeriveAddress(sk),
	}
	if r.LastRefreshedAt != nil {
		s.LastRefreshedAt = *r.LastRefreshedAt
	}
	return s, nil
}

func toRecord(s Session) Record {
	r := Record{
		PrivateKey: cryptobox.EncodePrivateKey(s.PrivateKey),
		Address:    s.Address.Hex(),
	}
	if !s.LastRefreshedAt.IsZero() {
		t := s.LastRefreshedAt
		r.LastRefreshedAt = &t
	}
	return r
}
