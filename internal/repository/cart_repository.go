// Package repository provides cart persistence.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/storefront-service/internal/cart"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StoredCart is the persisted state of one cart owner: line records plus the
// checkout info kept alongside them.
type StoredCart struct {
	Owner     string
	Lines     []cart.Line
	Checkout  model.CheckoutInfo
	UpdatedAt time.Time
	// Discarded joins the *cart.MalformedStateError values for pieces that
	// could not be restored. It is never persisted.
	Discarded error
}

// CartRepository stores account carts as MongoDB documents keyed by owner.
type CartRepository struct {
	collection *mongo.Collection
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(db *MongoDB) *CartRepository {
	return &CartRepository{
		collection: db.Carts,
	}
}

// Load returns the stored cart for owner, or nil, nil when none exists.
// Records that cannot be decoded are skipped and reported in Discarded.
func (r *CartRepository) Load(ctx context.Context, owner string) (*StoredCart, error) {
	var raw bson.Raw
	err := r.collection.FindOne(ctx, bson.M{"_id": owner}).Decode(&raw)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeCartDocument(owner, raw), nil
}

// Save replaces the stored cart for owner.
func (r *CartRepository) Save(ctx context.Context, owner string, state *StoredCart) error {
	items := state.Lines
	if items == nil {
		items = []cart.Line{}
	}
	doc := bson.M{
		"_id":        owner,
		"items":      items,
		"updated_at": time.Now(),
	}
	if state.Checkout.Shipping != nil {
		doc["shipping"] = state.Checkout.Shipping
	}
	if state.Checkout.PaymentMethod != "" {
		doc["payment_method"] = string(state.Checkout.PaymentMethod)
	}

	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": owner}, doc, options.Replace().SetUpsert(true))
	return err
}

// Delete removes the stored cart for owner.
func (r *CartRepository) Delete(ctx context.Context, owner string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": owner})
	return err
}

func decodeCartDocument(owner string, raw bson.Raw) *StoredCart {
	stored := &StoredCart{Owner: owner}
	var errs []error

	if err := raw.Validate(); err != nil {
		stored.Discarded = cart.Malformed("cart", err)
		return stored
	}

	if v, err := raw.LookupErr("items"); err == nil {
		lines, lineErrs := decodeBSONLines(v)
		stored.Lines = lines
		errs = append(errs, lineErrs...)
	}

	if v, err := raw.LookupErr("shipping"); err == nil && v.Type != bson.TypeNull {
		var addr model.Address
		if err := v.Unmarshal(&addr); err != nil {
			errs = append(errs, cart.Malformed("shipping", err))
		} else {
			stored.Checkout.Shipping = &addr
		}
	}

	if v, err := raw.LookupErr("payment_method"); err == nil && v.Type != bson.TypeNull {
		method, ok := v.StringValueOK()
		if !ok || !model.PaymentMethod(method).Valid() {
			errs = append(errs, cart.Malformed("payment", fmt.Errorf("unsupported payment method %s", v.String())))
		} else {
			stored.Checkout.PaymentMethod = model.PaymentMethod(method)
		}
	}

	if v, err := raw.LookupErr("updated_at"); err == nil {
		if t, ok := v.TimeOK(); ok {
			stored.UpdatedAt = t
		}
	}

	stored.Discarded = errors.Join(errs...)
	return stored
}

func decodeBSONLines(v bson.RawValue) ([]cart.Line, []error) {
	if v.Type == bson.TypeNull {
		return nil, nil
	}
	arr, ok := v.ArrayOK()
	if !ok {
		return nil, []error{cart.Malformed("cart", fmt.Errorf("items is %s, not an array", v.Type))}
	}
	values, err := arr.Values()
	if err != nil {
		return nil, []error{cart.Malformed("cart", err)}
	}

	lines := make([]cart.Line, 0, len(values))
	var errs []error
	for i, val := range values {
		var line cart.Line
		if err := val.Unmarshal(&line); err != nil {
			errs = append(errs, &cart.MalformedStateError{Piece: "line", Index: i, Err: err})
			continue
		}
		lines = append(lines, line)
	}
	return lines, errs
}
