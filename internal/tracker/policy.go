package tracker

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AbsentPricePolicy decides what happens to stored price when scraped record doesn't carry it.
type AbsentPricePolicy int

const (
	// KeepStored never overwrites stored price with absent value.
	KeepStored AbsentPricePolicy = iota
	// ClearStored clears stored price when record carries the other price but not this one.
	ClearStored
)

// Policy holds absent price policies of both price fields.
type Policy struct {
	OriginalPrice AbsentPricePolicy
	FinalPrice    AbsentPricePolicy
}

// String returns policy name.
func (p AbsentPricePolicy) String() string {
	if p == ClearStored {
		return "clear"
	}
	return "keep"
}

// UnmarshalText parses policy name.
func (p *AbsentPricePolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "keep":
		*p = KeepStored
	case "clear":
		*p = ClearStored
	default:
		return fmt.Errorf("unknown absent price policy %q", string(text))
	}
	return nil
}

// resolvePrice returns price to store and whether it differs from stored one.
func resolvePrice(
	stored decimal.NullDecimal,
	incoming decimal.NullDecimal,
	policy AbsentPricePolicy,
	recordHasPrice bool,
) (decimal.NullDecimal, bool) {
	if !incoming.Valid {
		if policy == ClearStored && recordHasPrice && stored.Valid {
			return decimal.NullDecimal{}, true
		}
		return stored, false
	}

	if !stored.Valid || !stored.Decimal.Equal(incoming.Decimal) {
		return incoming, true
	}

	return stored, false
}
