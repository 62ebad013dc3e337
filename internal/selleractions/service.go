package selleractions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/orderwatch/internal/calldata"
	"github.com/gabapcia/orderwatch/internal/catalog"
	"github.com/gabapcia/orderwatch/internal/cryptobox"
	"github.com/gabapcia/orderwatch/internal/order"
	"github.com/gabapcia/orderwatch/internal/pkg/logger"
	"github.com/gabapcia/orderwatch/internal/session"

	"github.com/ethereum/go-ethereum/common"
)

var gzipMagic = []byte{0x1f, 0x8b}

type Service interface {
	// EstimateFulfillCost prices the reply Fulfill would send.
	EstimateFulfillCost(ctx context.Context, seller session.Session, o order.Order, f Fulfillment) (Cost, error)

	// Fulfill seals f for the buyer of o and sends it in a replyToOrder call.
	Fulfill(ctx context.Context, seller session.Session, o order.Order, f Fulfillment) (Receipt, error)

	// EstimateUploadCost prices both transactions UploadCatalog would send.
	EstimateUploadCost(ctx context.Context, seller session.Session, document []byte) (Cost, error)

	// UploadCatalog stores document on chain in a data transaction to the
	// seller's own address, then registers its hash with uploadProduct.
	// document is either the plain catalog or its gzip form.
	UploadCatalog(ctx context.Context, seller session.Session, document []byte) (UploadReceipt, error)

	// ListUploads returns the seller's catalog uploads.
	ListUploads(ctx context.Context, seller session.Session) ([]catalog.Upload, error)
}

type service struct {
	submitter Submitter
	uploads   UploadLister
	contract  common.Address
}

var _ Service = (*service)(nil)

func (s *service) replyRequest(seller session.Session, o order.Order, f Fulfillment) (TxRequest, error) {
	if o.BuyerAddress == (common.Address{}) || o.BuyerGateway == (common.Address{}) {
		return TxRequest{}, fmt.Errorf("%w: missing buyer address or gateway", ErrOrderNotFulfillable)
	}

	buyer, err := o.BuyerKey()
	if err != nil {
		return TxRequest{}, fmt.Errorf("%w: %w", ErrOrderNotFulfillable, err)
	}

	if f.OrderTxHash == "" {
		f.OrderTxHash = o.TxHash.Hex()
	}

	plaintext, err := json.Marshal(f)
	if err != nil {
		return TxRequest{}, err
	}

	envelope, err := cryptobox.Encrypt(buyer, plaintext)
	if err != nil {
		return TxRequest{}, err
	}

	data, err := calldata.PackReplyToOrder(o.BuyerAddress, o.BuyerGateway, o.TxHash, []byte(envelope))
	if err != nil {
		return TxRequest{}, err
	}

	return TxRequest{From: seller.Address, To: s.contract, Data: data}, nil
}

func (s *service) estimate(ctx context.Context, reqs ...TxRequest) (Cost, error) {
	var cost Cost
	for _, req := range reqs {
		gas, err := s.submitter.EstimateGas(ctx, req)
		if err != nil {
			return Cost{}, fmt.Errorf("estimate gas: %w", err)
		}
		cost.Gas += gas
	}

	price, err := s.submitter.SuggestGasPrice(ctx)
	if err != nil {
		return Cost{}, fmt.Errorf("gas price: %w", err)
	}
	cost.GasPrice = price

	return cost, nil
}

func (s *service) EstimateFulfillCost(ctx context.Context, seller session.Session, o order.Order, f Fulfillment) (Cost, error) {
	req, err := s.replyRequest(seller, o, f)
	if err != nil {
		return Cost{}, err
	}
	return s.estimate(ctx, req)
}

func (s *service) Fulfill(ctx context.Context, seller session.Session, o order.Order, f Fulfillment) (Receipt, error) {
	req, err := s.replyRequest(seller, o, f)
	if err != nil {
		return Receipt{}, err
	}

	ctx = logger.Derive(ctx, "order.hash", o.TxHash.Hex())

	receipt, err := s.submitter.Send(ctx, seller.PrivateKey, req)
	if err != nil {
		return Receipt{}, fmt.Errorf("send reply: %w", err)
	}

	logger.Info(ctx, "order fulfilled", "reply.hash", receipt.TxHash.Hex(), "reply.block", receipt.BlockNumber)
	return receipt, nil
}

// payload validates document and returns its gzip form.
func payload(document []byte) ([]byte, error) {
	if bytes.HasPrefix(document, gzipMagic) {
		plain, err := catalog.Decompress(document)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
		if _, err := catalog.ParseDocument(plain); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
		return document, nil
	}

	if _, err := catalog.ParseDocument(document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return catalog.Compress(document)
}

func (s *service) uploadRequest(seller session.Session, link common.Hash) (TxRequest, error) {
	data, err := calldata.PackUploadProduct(seller.PublicKey.Uncompressed(), link.Hex())
	if err != nil {
		return TxRequest{}, err
	}
	return TxRequest{From: seller.Address, To: s.contract, Data: data}, nil
}

func (s *service) EstimateUploadCost(ctx context.Context, seller session.Session, document []byte) (Cost, error) {
	gz, err := payload(document)
	if err != nil {
		return Cost{}, err
	}

	// the data transaction hash is unknown until it is sent
	register, err := s.uploadRequest(seller, common.Hash{})
	if err != nil {
		return Cost{}, err
	}

	data := TxRequest{From: seller.Address, To: seller.Address, Data: gz}
	return s.estimate(ctx, data, register)
}

func (s *service) UploadCatalog(ctx context.Context, seller session.Session, document []byte) (UploadReceipt, error) {
	gz, err := payload(document)
	if err != nil {
		return UploadReceipt{}, err
	}

	dataReceipt, err := s.submitter.Send(ctx, seller.PrivateKey, TxRequest{From: seller.Address, To: seller.Address, Data: gz})
	if err != nil {
		return UploadReceipt{}, fmt.Errorf("send catalog data: %w", err)
	}

	ctx = logger.Derive(ctx, "catalog.link", dataReceipt.TxHash.Hex())
	logger.Debug(ctx, "catalog data mined", "catalog.block", dataReceipt.BlockNumber)

	register, err := s.uploadRequest(seller, dataReceipt.TxHash)
	if err != nil {
		return UploadReceipt{}, err
	}

	receipt, err := s.submitter.Send(ctx, seller.PrivateKey, register)
	if err != nil {
		return UploadReceipt{}, fmt.Errorf("register catalog: %w", err)
	}

	receipt.GasUsed += dataReceipt.GasUsed
	logger.Info(ctx, "catalog uploaded", "upload.hash", receipt.TxHash.Hex(), "upload.gas", receipt.GasUsed)

	return UploadReceipt{Receipt: receipt, DataTxHash: dataReceipt.TxHash}, nil
}

func (s *service) ListUploads(ctx context.Context, seller session.Session) ([]catalog.Upload, error) {
	return s.uploads.Uploads(ctx, seller.PublicKey)
}

type config struct {
	contract common.Address
}

type Option func(*config)

func New(submitter Submitter, uploads UploadLister, opts ...Option) *service {
	cfg := config{
		contract: calldata.DefaultMarketAddress,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		submitter: submitter,
		uploads:   uploads,
		contract:  cfg.contract,
	}
}

func WithContract(addr common.Address) Option {
	return func(c *config) {
		c.contract = addr
	}
}
