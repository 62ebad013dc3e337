// Package calldata decodes and encodes calls to the marketplace contract.
//
// Decode identifies which purchase or reply function a transaction invoked by
// its 4-byte selector, the keccak256 prefix of the canonical signature, and
// extracts the arguments the order pipeline needs. The Pack and Unpack helpers
// build the calls a seller submits and read the contract's view functions.
package calldata

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ErrCalldataDecode is returned when input matches a known selector but its
// arguments cannot be decoded.
var ErrCalldataDecode = errors.New("calldata decode error")

// PurchaseKind tells which purchase function was called.
type PurchaseKind string

const (
	PurchaseWithEth   PurchaseKind = "eth"
	PurchaseWithToken PurchaseKind = "token"
)

// Call is a decoded marketplace call: either a Purchase or a Reply.
type Call interface {
	Method() string
}

// Purchase holds the arguments of purchaseWithEth and purchaseWithToken.
// Token and TokenAmount are only set for token purchases.
type Purchase struct {
	Kind             PurchaseKind
	ProductID        *big.Int
	Seller           common.Address
	BuyerGateway     common.Address
	Token            common.Address
	TokenAmount      *big.Int
	EncryptedPayload []byte
}

func (p Purchase) Method() string {
	if p.Kind == PurchaseWithToken {
		return MethodPurchaseWithToken
	}
	return MethodPurchaseWithEth
}

// Reply holds the arguments of replyToOrder.
type Reply struct {
	BuyerAddress  common.Address
	BuyerGateway  common.Address
	OrderTxHash   common.Hash
	EncryptedData []byte
}

func (Reply) Method() string { return MethodReplyToOrder }

// Decode dispatches input on its selector. Input that is too short or carries
// an unknown selector yields (nil, nil).
func Decode(input []byte) (Call, error) {
	if len(input) < 4 {
		return nil, nil
	}

	method, err := MarketABI.MethodById(input[:4])
	if err != nil {
		return nil, nil
	}

	switch method.Name {
	case MethodPurchaseWithEth, MethodPurchaseWithToken, MethodReplyToOrder:
	default:
		return nil, nil
	}

	args, err := method.Inputs.Unpack(input[4:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCalldataDecode, method.Name, err)
	}

	var call Call
	switch method.Name {
	case MethodPurchaseWithEth:
		call, err = decodePurchaseWithEth(args)
	case MethodPurchaseWithToken:
		call, err = decodePurchaseWithToken(args)
	case MethodReplyToOrder:
		call, err = decodeReply(args)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCalldataDecode, method.Name, err)
	}
	return call, nil
}

// IsMethod reports whether input starts with the selector of the named method.
func IsMethod(input []byte, name string) bool {
	method, ok := MarketABI.Methods[name]
	return ok && len(input) >= 4 && bytes.Equal(input[:4], method.ID)
}

func decodePurchaseWithEth(args []any) (Purchase, error) {
	var (
		p   = Purchase{Kind: PurchaseWithEth}
		err error
	)

	if len(args) != 5 {
		return p, fmt.Errorf("expected 5 arguments, got %d", len(args))
	}

	if p.ProductID, err = as[*big.Int](args[0]); err != nil {
		return p, err
	}
	if p.Seller, err = as[common.Address](args[1]); err != nil {
		return p, err
	}
	if p.BuyerGateway, err = as[common.Address](args[2]); err != nil {
		return p, err
	}
	p.EncryptedPayload, err = as[[]byte](args[4])
	return p, err
}

func decodePurchaseWithToken(args []any) (Purchase, error) {
	var (
		p   = Purchase{Kind: PurchaseWithToken}
		err error
	)

	if len(args) != 7 {
		return p, fmt.Errorf("expected 7 arguments, got %d", len(args))
	}

	if p.ProductID, err = as[*big.Int](args[0]); err != nil {
		return p, err
	}
	if p.Token, err = as[common.Address](args[1]); err != nil {
		return p, err
	}
	if p.TokenAmount, err = as[*big.Int](args[2]); err != nil {
		return p, err
	}
	if p.Seller, err = as[common.Address](args[3]); err != nil {
		return p, err
	}
	if p.BuyerGateway, err = as[common.Address](args[4]); err != nil {
		return p, err
	}
	p.EncryptedPayload, err = as[[]byte](args[6])
	return p, err
}

func decodeReply(args []any) (Reply, error) {
	var (
		r   Reply
		err error
	)

	if len(args) != 4 {
		return r, fmt.Errorf("expected 4 arguments, got %d", len(args))
	}

	if r.BuyerAddress, err = as[common.Address](args[0]); err != nil {
		return r, err
	}
	if r.BuyerGateway, err = as[common.Address](args[1]); err != nil {
		return r, err
	}

	hash, err := as[[32]byte](args[2])
	if err != nil {
		return r, err
	}
	r.OrderTxHash = common.Hash(hash)

	r.EncryptedData, err = as[[]byte](args[3])
	return r, err
}

func as[T any](v any) (T, error) {
	out, ok := v.(T)
	if !ok {
		return out, fmt.Errorf("unexpected argument type %T", v)
	}
	return out, nil
}

// ProductRecord is one entry returned by getProducts.
type ProductRecord struct {
	SellerAddr   common.Address
	SellerPubKey []byte
	Link         string
	Timestamp    *big.Int
}

// PackReplyToOrder encodes a replyToOrder call.
func PackReplyToOrder(buyer, gateway common.Address, orderTxHash common.Hash, encryptedData []byte) ([]byte, error) {
	return MarketABI.Pack(MethodReplyToOrder, buyer, gateway, [32]byte(orderTxHash), encryptedData)
}

// PackUploadProduct encodes an uploadProduct call. pubKey is the 65-byte uncompressed key.
func PackUploadProduct(pubKey []byte, link string) ([]byte, error) {
	return MarketABI.Pack(MethodUploadProduct, pubKey, link)
}

// PackSellerFlag encodes approvedSellers or blacklistedSellers for seller.
func PackSellerFlag(method string, seller common.Address) ([]byte, error) {
	return MarketABI.Pack(method, seller)
}

// PackGetProducts encodes a getProducts call.
func PackGetProducts() ([]byte, error) {
	return MarketABI.Pack(MethodGetProducts)
}

// UnpackBool decodes the single boolean output of method.
func UnpackBool(method string, output []byte) (bool, error) {
	out, err := MarketABI.Unpack(method, output)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrCalldataDecode, method, err)
	}
	if len(out) != 1 {
		return false, fmt.Errorf("%w: %s: expected 1 output, got %d", ErrCalldataDecode, method, len(out))
	}

	v, err := as[bool](out[0])
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrCalldataDecode, method, err)
	}
	return v, nil
}

// UnpackGetProducts decodes the output of getProducts.
func UnpackGetProducts(output []byte) ([]ProductRecord, error) {
	out, err := MarketABI.Unpack(MethodGetProducts, output)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCalldataDecode, MethodGetProducts, err)
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("%w: %s: expected 1 output, got %d", ErrCalldataDecode, MethodGetProducts, len(out))
	}

	records := *abi.ConvertType(out[0], new([]ProductRecord)).(*[]ProductRecord)
	return records, nil
}
