package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/storefront-service/internal/cart"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

const guestCartKeyPrefix = "storefront:cart:"

// redisCmdable is the subset of the go-redis client used by the guest cart store.
type redisCmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisCartStore keeps guest carts in Redis with a sliding TTL.
type RedisCartStore struct {
	client redisCmdable
	ttl    time.Duration
}

// NewRedisCartStore creates a guest cart store. Each Save refreshes the TTL.
func NewRedisCartStore(client redisCmdable, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{
		client: client,
		ttl:    ttl,
	}
}

// guestCartEnvelope keeps every piece as raw JSON so each one can fail to
// decode on its own.
type guestCartEnvelope struct {
	Items         json.RawMessage `json:"items"`
	Shipping      json.RawMessage `json:"shipping,omitempty"`
	PaymentMethod json.RawMessage `json:"paymentMethod,omitempty"`
	UpdatedAt     json.RawMessage `json:"updatedAt,omitempty"`
}

// Load returns the guest cart for owner, or nil, nil when none exists or it expired.
func (s *RedisCartStore) Load(ctx context.Context, owner string) (*StoredCart, error) {
	data, err := s.client.Get(ctx, guestCartKey(owner)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load guest cart: %w", err)
	}
	return decodeGuestCart(owner, data), nil
}

// Save writes the guest cart for owner.
func (s *RedisCartStore) Save(ctx context.Context, owner string, state *StoredCart) error {
	items := state.Lines
	if items == nil {
		items = []cart.Line{}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart lines: %w", err)
	}
	env := guestCartEnvelope{Items: itemsJSON}
	env.UpdatedAt, _ = json.Marshal(time.Now().UTC())
	if state.Checkout.Shipping != nil {
		if env.Shipping, err = json.Marshal(state.Checkout.Shipping); err != nil {
			return fmt.Errorf("encode shipping: %w", err)
		}
	}
	if state.Checkout.PaymentMethod != "" {
		env.PaymentMethod, _ = json.Marshal(string(state.Checkout.PaymentMethod))
	}

	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode guest cart: %w", err)
	}
	if err := s.client.Set(ctx, guestCartKey(owner), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save guest cart: %w", err)
	}
	return nil
}

// Delete removes the guest cart for owner.
func (s *RedisCartStore) Delete(ctx context.Context, owner string) error {
	return s.client.Del(ctx, guestCartKey(owner)).Err()
}

func guestCartKey(owner string) string {
	return guestCartKeyPrefix + owner
}

func decodeGuestCart(owner string, data []byte) *StoredCart {
	stored := &StoredCart{Owner: owner}

	var env guestCartEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		stored.Discarded = cart.Malformed("cart", err)
		return stored
	}
	// An unreadable timestamp leaves UpdatedAt zero, as in the Mongo store.
	if len(env.UpdatedAt) > 0 {
		var updatedAt time.Time
		if err := json.Unmarshal(env.UpdatedAt, &updatedAt); err == nil {
			stored.UpdatedAt = updatedAt
		}
	}

	var errs []error
	lines, err := cart.DecodeLinesJSON(env.Items)
	if err != nil {
		errs = append(errs, err)
	}
	stored.Lines = lines

	if len(env.Shipping) > 0 && string(env.Shipping) != "null" {
		var addr model.Address
		if err := json.Unmarshal(env.Shipping, &addr); err != nil {
			errs = append(errs, cart.Malformed("shipping", err))
		} else {
			stored.Checkout.Shipping = &addr
		}
	}

	if len(env.PaymentMethod) > 0 && string(env.PaymentMethod) != "null" {
		var method string
		if err := json.Unmarshal(env.PaymentMethod, &method); err != nil {
			errs = append(errs, cart.Malformed("payment", err))
		} else if !model.PaymentMethod(method).Valid() {
			errs = append(errs, cart.Malformed("payment", fmt.Errorf("unsupported payment method %q", method)))
		} else {
			stored.Checkout.PaymentMethod = model.PaymentMethod(method)
		}
	}

	stored.Discarded = errors.Join(errs...)
	return stored
}
