// Package cryptobox implements the seller identity and the envelope cipher used
// to exchange orders and fulfillment replies with buyers.
//
// Identities are secp256k1 key pairs. Envelopes follow the ECIES construction
// shared by the buyer-side tooling: an ephemeral ECDH exchange, AES-256-CBC for
// the payload and an HMAC-SHA256 tag, serialized as a single hex string.
package cryptobox

import (
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	// ErrIdentity is returned when a private or public key cannot be parsed.
	ErrIdentity = errors.New("invalid identity")

	// ErrDecryption is returned when an envelope is malformed or fails authentication.
	ErrDecryption = errors.New("decryption failed")
)

// PublicKey is an uncompressed secp256k1 public key without the 0x04 prefix (X || Y).
type PublicKey [64]byte

// String returns the key as lower-case hex without prefix.
func (p PublicKey) String() string {
	return hex.EncodeToString(p[:])
}

// Uncompressed returns the SEC1 uncompressed form, 0x04 || X || Y.
func (p PublicKey) Uncompressed() []byte {
	return append([]byte{0x04}, p[:]...)
}

// ECDSA converts the key into a curve point, checking it lies on secp256k1.
func (p PublicKey) ECDSA() (*ecdsa.PublicKey, error) {
	pub, err := crypto.UnmarshalPubkey(p.Uncompressed())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIdentity, err)
	}
	return pub, nil
}

func (p PublicKey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}

func trimHexPrefix(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}

// ParsePrivateKey decodes a 32-byte hex private key, with or without 0x.
func ParsePrivateKey(s string) (*ecdsa.PrivateKey, error) {
	sk, err := crypto.HexToECDSA(trimHexPrefix(s))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid private key: %w", ErrIdentity, err)
	}
	return sk, nil
}

// EncodePrivateKey is the inverse of ParsePrivateKey. The result has no 0x prefix.
func EncodePrivateKey(sk *ecdsa.PrivateKey) string {
	return hex.EncodeToString(crypto.FromECDSA(sk))
}

// ParsePublicKey accepts the 64-byte form, the 0x04-prefixed 65-byte form or the
// 33-byte compressed form, each optionally prefixed with 0x.
func ParsePublicKey(s string) (PublicKey, error) {
	var pk PublicKey

	raw, err := hex.DecodeString(trimHexPrefix(s))
	if err != nil {
		return pk, fmt.Errorf("%w: invalid public key: %w", ErrIdentity, err)
	}

	switch {
	case len(raw) == 64:
		copy(pk[:], raw)
	case len(raw) == 65 && raw[0] == 0x04:
		copy(pk[:], raw[1:])
	case len(raw) == 33:
		pub, err := crypto.DecompressPubkey(raw)
		if err != nil {
			return pk, fmt.Errorf("%w: invalid public key: %w", ErrIdentity, err)
		}
		copy(pk[:], crypto.FromECDSAPub(pub)[1:])
		return pk, nil
	default:
		return pk, fmt.Errorf("%w: invalid public key length %d", ErrIdentity, len(raw))
	}

	if _, err := pk.ECDSA(); err != nil {
		return PublicKey{}, err
	}
	return pk, nil
}

// DerivePublicKey returns the public half of sk.
func DerivePublicKey(sk *ecdsa.PrivateKey) PublicKey {
	var pk PublicKey
	copy(pk[:], crypto.FromECDSAPub(&sk.PublicKey)[1:])
	return pk
}

// DeriveAddress returns the ledger address of sk: the last 20 bytes of the
// keccak256 hash of X || Y.
func DeriveAddress(sk *ecdsa.PrivateKey) common.Address {
	return crypto.PubkeyToAddress(sk.PublicKey)
}
