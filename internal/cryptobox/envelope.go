package cryptobox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdsa"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

const (
	ivSize        = aes.BlockSize
	ephemeralSize = 33 // compressed point
	macSize       = sha256.Size
	headerSize    = ivSize + ephemeralSize + macSize
)

// Encrypt seals plaintext for the holder of pub and returns the hex envelope
// iv || ephemeral public key (compressed) || mac || ciphertext.
func Encrypt(pub PublicKey, plaintext []byte) (string, error) {
	recipient, err := pub.ECDSA()
	if err != nil {
		return "", err
	}

	ephemeral, err := crypto.GenerateKey()
	if err != nil {
		return "", fmt.Errorf("generate ephemeral key: %w", err)
	}

	iv := make([]byte, ivSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	encKey, macKey := deriveKeys(ephemeral, recipient)

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return "", err
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	mac := tag(macKey, iv, crypto.FromECDSAPub(&ephemeral.PublicKey), ciphertext)

	out := make([]byte, 0, headerSize+len(ciphertext))
	out = append(out, iv...)
	out = append(out, crypto.CompressPubkey(&ephemeral.PublicKey)...)
	out = append(out, mac...)
	out = append(out, ciphertext...)

	return hex.EncodeToString(out), nil
}

// Decrypt opens an envelope produced by Encrypt (or any compatible sender) with sk.
// Every failure wraps ErrDecryption.
func Decrypt(sk *ecdsa.PrivateKey, envelope string) ([]byte, error) {
	raw, err := hex.DecodeString(trimHexPrefix(envelope))
	if err != nil {
		return nil, fmt.Errorf("%w: envelope is not hex: %w", ErrDecryption, err)
	}

	if len(raw) <= headerSize || (len(raw)-headerSize)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: envelope has invalid length %d", ErrDecryption, len(raw))
	}

	iv := raw[:ivSize]
	mac := raw[ivSize+ephemeralSize : headerSize]
	ciphertext := raw[headerSize:]

	ephemeral, err := crypto.DecompressPubkey(raw[ivSize : ivSize+ephemeralSize])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid ephemeral key: %w", ErrDecryption, err)
	}

	encKey, macKey := deriveKeys(sk, ephemeral)

	if !hmac.Equal(mac, tag(macKey, iv, crypto.FromECDSAPub(ephemeral), ciphertext)) {
		return nil, fmt.Errorf("%w: bad mac", ErrDecryption)
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	plaintext, err = pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}
	return plaintext, nil
}

// deriveKeys runs ECDH and splits SHA-512 of the shared X coordinate into the
// AES key and the MAC key. X is taken in its minimal big-endian form, leading
// zero bytes stripped, to stay compatible with existing senders.
func deriveKeys(sk *ecdsa.PrivateKey, pub *ecdsa.PublicKey) (encKey, macKey []byte) {
	x, _ := crypto.S256().ScalarMult(pub.X, pub.Y, sk.D.Bytes())
	hash := sha512.Sum512(x.Bytes())
	return hash[:32], hash[32:]
}

func tag(macKey, iv, ephemeral, ciphertext []byte) []byte {
	h := hmac.New(sha256.New, macKey)
	h.Write(iv)
	h.Write(ephemeral)
	h.Write(ciphertext)
	return h.Sum(nil)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, errors.New("invalid padding")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, errors.New("invalid padding")
		}
	}
	return data[:len(data)-n], nil
}
