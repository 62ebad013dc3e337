package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/shopspring/decimal"
)

var (
	// ErrCatalogParse is returned when a catalog payload cannot be retrieved,
	// decompressed or read as delimited text.
	ErrCatalogParse = errors.New("catalog parse error")

	// ErrCatalogTooShort is returned for payloads without any data row.
	// Such catalogs are skipped rather than reported as failures.
	ErrCatalogTooShort = fmt.Errorf("%w: catalog has no data rows", ErrCatalogParse)
)

// column positions of the catalog layout
const (
	colName = iota
	colQuantity
	colPrice
	colSupplier
	colLinks
	colShipping
	colTotalQuantity
	colUnit
	colShipTime
	colDescription
	colCASNumber
	colFormula
	colMolarWeight
)

// Product is one row of a catalog. Within a catalog it is identified by
// the (CompoundName, Quantity) pair.
type Product struct {
	ID                int             `json:"id"`
	CompoundName      string          `json:"compound_name" validate:"required"`
	Quantity          string          `json:"quantity" validate:"required"`
	Price             decimal.Decimal `json:"price"`
	ShippingCost      decimal.Decimal `json:"shipping_cost"`
	Supplier          string          `json:"supplier"`
	Links             []string        `json:"coa_link"`
	TotalQuantity     string          `json:"total_quantity"`
	TotalQuantityUnit string          `json:"total_quantity_unit"`
	ShipTime          int             `json:"ship_time"`
	Description       string          `json:"description"`
	CASNumber         string          `json:"cas_number"`
	ChemicalFormula   string          `json:"chemical_formula"`
	MolarWeight       string          `json:"molar_weight"`
	VendorAddress     string          `json:"vendor_addr"`
	VendorPublicKey   string          `json:"vendor_secp256k1"`
}

// Matches reports whether p is the row identified by name and quantity.
func (p Product) Matches(name, quantity string) bool {
	return p.CompoundName == name && p.Quantity == quantity
}

// Total is the price including shipping.
func (p Product) Total() decimal.Decimal {
	return p.Price.Add(p.ShippingCost)
}

// Decompress reverses the gzip compression of a catalog payload.
func Decompress(payload []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogParse, err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogParse, err)
	}
	return data, nil
}

// Compress gzips a catalog document so it can be uploaded.
func Compress(document []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(document); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseDocument reads the decompressed catalog text. The first row is a header
// and is discarded; blank lines are ignored. Missing trailing columns read as
// empty, and unparsable price, shipping or ship time values read as zero.
//
// Returns ErrCatalogTooShort when the document has no data row.
func ParseDocument(document []byte) ([]Product, error) {
	r := csv.NewReader(bytes.NewReader(document))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogParse, err)
	}

	rows = skipBlank(rows)
	if len(rows) < 2 {
		return nil, ErrCatalogTooShort
	}

	products := make([]Product, 0, len(rows)-1)
	for _, row := range rows[1:] {
		products = append(products, parseRow(row))
	}
	return products, nil
}

func skipBlank(rows [][]string) [][]string {
	out := rows[:0]
	for _, row := range rows {
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		out = append(out, row)
	}
	return out
}

func parseRow(row []string) Product {
	col := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	return Product{
		CompoundName:      col(colName),
		Quantity:          col(colQuantity),
		Price:             parseAmount(col(colPrice)),
		ShippingCost:      parseAmount(col(colShipping)),
		Supplier:          col(colSupplier),
		Links:             splitLinks(col(colLinks)),
		TotalQuantity:     col(colTotalQuantity),
		TotalQuantityUnit: col(colUnit),
		ShipTime:          parseLeadingInt(col(colShipTime)),
		Description:       col(colDescription),
		CASNumber:         col(colCASNumber),
		ChemicalFormula:   col(colFormula),
		MolarWeight:       col(colMolarWeight),
	}
}

func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseLeadingInt reads the leading integer of s, so "5 days" is 5.
func parseLeadingInt(s string) int {
	s = strings.TrimSpace(s)

	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || end == 0 && (s[end] == '-' || s[end] == '+')) {
		end++
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func splitLinks(s string) []string {
	links := []string{}
	for _, l := range strings.Split(s, "|") {
		if strings.TrimSpace(l) != "" {
			links = append(links, l)
		}
	}
	return links
}
