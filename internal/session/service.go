package session

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/orderwatch/internal/cryptobox"
	"github.com/gabapcia/orderwatch/internal/pkg/logger"
)

type Service interface {
	// Login validates the private key, checks the derived address against the
	// seller registry and stores the session. Logging in again with the same
	// key keeps the last refresh time.
	Login(ctx context.Context, privateKey string) (Session, error)

	// Logout forgets the stored session.
	Logout(ctx context.Context) error

	// Current returns the stored session or ErrNoSession.
	Current(ctx context.Context) (Session, error)

	// MarkRefreshed records the completion time of a successful refresh.
	MarkRefreshed(ctx context.Context, at time.Time) error
}

type service struct {
	storage  Storage
	registry SellerRegistry
}

var _ Service = (*service)(nil)

func (s *service) Login(ctx context.Context, privateKey string) (Session, error) {
	sk, err := cryptobox.ParsePrivateKey(privateKey)
	if err != nil {
		return Session{}, err
	}

	sess := Session{
		PrivateKey: sk,
		PublicKey:  cryptobox.DerivePublicKey(sk),
		Address:    cryptobox.DeriveAddress(sk),
	}

	approved, err := s.registry.IsApprovedSeller(ctx, sess.Address)
	if err != nil {
		return Session{}, err
	}
	if !approved {
		return Session{}, ErrSellerNotApproved
	}

	previous, err := s.Current(ctx)
	switch {
	case err == nil && previous.Address == sess.Address:
		sess.LastRefreshedAt = previous.LastRefreshedAt
	case err != nil && !errors.Is(err, ErrNoSession) && !errors.Is(err, cryptobox.ErrIdentity):
		return Session{}, err
	}

	if err := s.storage.SaveSession(ctx, toRecord(sess)); err != nil {
		return Session{}, err
	}

	logger.Info(ctx, "seller logged in", "seller.address", sess.Address.Hex())
	return sess, nil
}

func (s *service) Logout(ctx context.Context) error {
	return s.storage.DeleteSession(ctx)
}

func (s *service) Current(ctx context.Context) (Session, error) {
	record, err := s.storage.LoadSession(ctx)
	if err != nil {
		return Session{}, err
	}

	return fromRecord(record)
}

func (s *service) MarkRefreshed(ctx context.Context, at time.Time) error {
	sess, err := s.Current(ctx)
	if err != nil {
		return err
	}

	sess.LastRefreshedAt = at
	return s.storage.SaveSession(ctx, toRecord(sess))
}

func New(storage Storage, registry SellerRegistry) *service {
	return &service{
		storage:  storage,
		registry: registry,
	}
}
