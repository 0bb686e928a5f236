package cart

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Records returns the flat ordered list of lines to persist after a
// successful mutation.
func (c *Cart) Records() []Line {
	return c.Lines()
}

// FromLines restores a cart from persisted records.
//
// Records that violate the line invariants are discarded and reported as
// *MalformedStateError values joined into the returned error. The cart is
// never nil and always satisfies the invariants.
func FromLines(records []Line) (*Cart, error) {
	c := New()
	var errs []error
	for i, r := range records {
		if err := validateRecord(r); err != nil {
			errs = append(errs, &MalformedStateError{Piece: "line", Index: i, Err: err})
			continue
		}
		if _, dup := c.index[r.ProductID]; dup {
			errs = append(errs, &MalformedStateError{Piece: "line", Index: i, Err: fmt.Errorf("duplicate product %s", r.ProductID)})
			continue
		}
		c.index[r.ProductID] = len(c.lines)
		c.lines = append(c.lines, r)
	}
	return c, errors.Join(errs...)
}

// DecodeLinesJSON parses a JSON array of line records one element at a time.
// Elements that fail to parse are skipped and reported; a payload that is not
// an array yields no lines.
func DecodeLinesJSON(raw json.RawMessage) ([]Line, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, Malformed("cart", err)
	}

	lines := make([]Line, 0, len(elems))
	var errs []error
	for i, e := range elems {
		var l Line
		if err := json.Unmarshal(e, &l); err != nil {
			errs = append(errs, &MalformedStateError{Piece: "line", Index: i, Err: err})
			continue
		}
		lines = append(lines, l)
	}
	return lines, errors.Join(errs...)
}

func validateRecord(r Line) error {
	switch {
	case r.ProductID == "":
		return ErrEmptyProductID
	case r.Quantity < 1:
		return fmt.Errorf("quantity %d below 1", r.Quantity)
	case r.StockCeiling < r.Quantity:
		return fmt.Errorf("quantity %d exceeds stock ceiling %d", r.Quantity, r.StockCeiling)
	case r.UnitPrice < 0:
		return fmt.Errorf("negative unit price %v", r.UnitPrice)
	}
	return nil
}
