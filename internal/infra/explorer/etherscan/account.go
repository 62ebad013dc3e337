package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/url"

	"github.com/gabapcia/orderwatch/internal/order"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	sortAsc  = "asc"
	sortDesc = "desc"
)

// transaction is an entry of the txlist action.
type transaction struct {
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	Input           string `json:"input"`
	Value           string `json:"value"`
	IsError         string `json:"isError"`
	TxReceiptStatus string `json:"txreceipt_status"`
}

func (t transaction) toDomain() (order.Transaction, error) {
	tx := order.Transaction{
		Hash:      common.HexToHash(t.Hash),
		From:      common.HexToAddress(t.From),
		Succeeded: t.IsError == "0" && t.TxReceiptStatus == "1",
	}

	if t.To != "" {
		to := common.HexToAddress(t.To)
		tx.To = &to
	}

	input, err := hexutil.Decode(t.Input)
	if err != nil && t.Input != "" {
		return order.Transaction{}, fmt.Errorf("input of %s: %w", t.Hash, err)
	}
	tx.Input = input

	value, err := parseUint(t.Value)
	if err != nil {
		return order.Transaction{}, fmt.Errorf("value of %s: %w", t.Hash, err)
	}
	tx.Value = value

	return tx, nil
}

// tokenTransfer is an entry of the tokentx action.
type tokenTransfer struct {
	Hash            string `json:"hash"`
	To              string `json:"to"`
	ContractAddress string `json:"contractAddress"`
	Value           string `json:"value"`
}

func (t tokenTransfer) toDomain() (order.TokenTransfer, error) {
	value, err := parseUint(t.Value)
	if err != nil {
		return order.TokenTransfer{}, fmt.Errorf("value of %s: %w", t.Hash, err)
	}

	return order.TokenTransfer{
		Hash:     common.HexToHash(t.Hash),
		To:       common.HexToAddress(t.To),
		Contract: common.HexToAddress(t.ContractAddress),
		Value:    value,
	}, nil
}

func parseUint(s string) (*big.Int, error) {
	if s == "" {
		return new(big.Int), nil
	}

	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}

func decodeList[T any, D any](raw json.RawMessage, convert func(T) (D, error)) ([]D, error) {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	out := make([]D, 0, len(items))
	for _, item := range items {
		d, err := convert(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// ListTransactions implements order.Explorer with the txlist action, oldest first.
func (c *client) ListTransactions(ctx context.Context, address common.Address) ([]order.Transaction, error) {
	raw, err := c.fetch(ctx, url.Values{
		"module":  {"account"},
		"action":  {"txlist"},
		"address": {address.Hex()},
		"sort":    {sortAsc},
	})
	if err != nil {
		return nil, err
	}

	return decodeList(raw, transaction.toDomain)
}

// ListTokenTransfers implements order.Explorer with the tokentx action, newest first.
func (c *client) ListTokenTransfers(ctx context.Context, address common.Address) ([]order.TokenTransfer, error) {
	raw, err := c.fetch(ctx, url.Values{
		"module":  {"account"},
		"action":  {"tokentx"},
		"address": {address.Hex()},
		"sort":    {sortDesc},
	})
	if err != nil {
		return nil, err
	}

	return decodeList(raw, tokenTransfer.toDomain)
}

// Compile-time assertion to ensure *client satisfies the order.Explorer interface
var _ order.Explorer = new(client)
