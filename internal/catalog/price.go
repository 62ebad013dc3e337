package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the outcome of comparing a payment with the expected price.
type Status string

const (
	StatusUnknown   Status = "unknown"   // no catalog or row gives an expected price
	StatusExact     Status = "exact"     // paid exactly the expected price
	StatusSurplus   Status = "surplus"   // paid more than expected
	StatusShortfall Status = "shortfall" // paid less than expected
)

// Reconciliation compares what an order paid with what its product cost when
// the order was placed. Expected and Difference are meaningless when Status is
// StatusUnknown.
type Reconciliation struct {
	Received   decimal.Decimal
	Expected   decimal.Decimal
	Difference decimal.Decimal // Received - Expected
	Status     Status
}

// Known reports whether an expected price was found.
func (r Reconciliation) Known() bool {
	return r.Status != StatusUnknown
}

// CatalogAt returns the most recent catalog whose timestamp does not exceed at.
// Catalogs sharing a timestamp resolve to the last one in the slice.
func CatalogAt(catalogs []Catalog, at time.Time) (Catalog, bool) {
	var (
		found  Catalog
		ok     bool
		cutoff = at.Unix()
	)

	if cutoff < 0 {
		return found, false
	}

	for _, c := range catalogs {
		if c.Timestamp > uint64(cutoff) {
			continue
		}
		if !ok || c.Timestamp >= found.Timestamp {
			found, ok = c, true
		}
	}
	return found, ok
}

// ExpectedPrice returns price plus shipping of the product identified by name
// and quantity in the catalog in effect at the given time. The boolean is false
// when no catalog precedes the order or no row matches; an unknown price is
// never reported as zero.
func ExpectedPrice(catalogs []Catalog, at time.Time, name, quantity string) (decimal.Decimal, bool) {
	c, ok := CatalogAt(catalogs, at)
	if !ok {
		return decimal.Zero, false
	}

	for _, p := range c.Products {
		if p.Matches(name, quantity) {
			return p.Total(), true
		}
	}
	return decimal.Zero, false
}

// Reconcile compares received with the expected price of the product at the given time.
func Reconcile(catalogs []Catalog, at time.Time, name, quantity string, received decimal.Decimal) Reconciliation {
	r := Reconciliation{
		Received: received,
		Status:   StatusUnknown,
	}

	expected, ok := ExpectedPrice(catalogs, at, name, quantity)
	if !ok {
		return r
	}

	r.Expected = expected
	r.Difference = received.Sub(expected)
	switch r.Difference.Sign() {
	case 0:
		r.Status = StatusExact
	case 1:
		r.Status = StatusSurplus
	default:
		r.Status = StatusShortfall
	}
	return r
}
