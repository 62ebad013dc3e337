package order

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/orderwatch/internal/catalog"
	"github.com/gabapcia/orderwatch/internal/pkg/validator"
)

// ErrPayloadInvalid is returned when a decrypted order does not match the
// expected schema.
var ErrPayloadInvalid = errors.New("invalid order payload")

// ShippingAddress is where the buyer wants the product delivered.
type ShippingAddress struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Street1  string `json:"street1"`
	Street2  string `json:"street2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Postcode string `json:"postcode"`
}

// Payload is the decrypted order record written by the buyer.
type Payload struct {
	Product         catalog.Product  `json:"product" validate:"required"`
	ShippingAddress *ShippingAddress `json:"shipping_address,omitempty"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"created_at" validate:"required"`
	ContractAddress string           `json:"contract_address,omitempty"`
	QAParticipant   bool             `json:"qa_participant"`
	Currency        *string          `json:"currency,omitempty"`
	BuyerPublicKey  string           `json:"buyer_secp256k1" validate:"required,secp256k1pub"`
}

// ParsePayload decodes a decrypted order. Unknown fields are rejected and the
// result is validated; every failure wraps ErrPayloadInvalid.
func ParsePayload(data []byte) (Payload, error) {
	var p Payload

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&p); err != nil {
		return Payload{}, fmt.Errorf("%w: %w", ErrPayloadInvalid, err)
	}
	if dec.More() {
		return Payload{}, fmt.Errorf("%w: trailing data", ErrPayloadInvalid)
	}

	if err := validator.Validate(p); err != nil {
		return Payload{}, fmt.Errorf("%w: %w", ErrPayloadInvalid, err)
	}
	return p, nil
}
