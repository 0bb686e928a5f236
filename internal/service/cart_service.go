package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/storefront-service/internal/cart"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/metrics"
	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/rs/zerolog/log"
)

var (
	// ErrInvalidCartOwner is returned when a request carries neither a user nor a cart session.
	ErrInvalidCartOwner = errors.New("cart owner is required")
	// ErrCartUnavailable is returned when the cart could not be loaded from its store.
	ErrCartUnavailable = errors.New("cart storage unavailable")
	// ErrInvalidPaymentMethod is returned for an unsupported payment method.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

const (
	storeAccount = "account"
	storeGuest   = "guest"
)

// CartView is the state of a cart returned to the caller after an operation.
type CartView struct {
	Owner    model.CartOwner
	Lines    []cart.Line
	Totals   cart.Totals
	Pricing  cart.Pricing
	Checkout model.CheckoutInfo
	// Notice is nil for reads.
	Notice *cart.Notice
	// Saved is false when the mutation was applied but could not be persisted.
	Saved bool
	// Discarded counts persisted pieces dropped as malformed while loading.
	Discarded int
}

// CartService runs cart operations for one owner: load, apply the mutation,
// then commit the result to the owner's store.
//
// Mutations refused for stock reasons return the unchanged view together with
// a *cart.OutOfStockError.
type CartService interface {
	Get(ctx context.Context, owner model.CartOwner) (*CartView, error)
	AddItem(ctx context.Context, owner model.CartOwner, productID string) (*CartView, error)
	UpdateItem(ctx context.Context, owner model.CartOwner, productID string, quantity int) (*CartView, error)
	RemoveItem(ctx context.Context, owner model.CartOwner, productID string) (*CartView, error)
	Clear(ctx context.Context, owner model.CartOwner) (*CartView, error)
	SetCheckoutInfo(ctx context.Context, owner model.CartOwner, info model.CheckoutInfo) (*CartView, error)
	Merge(ctx context.Context, guest, account model.CartOwner) (*CartView, error)
	Discard(ctx context.Context, owner model.CartOwner) error
}

// CheckoutDefaultsSource returns the checkout info saved on an account.
type CheckoutDefaultsSource interface {
	CheckoutDefaults(ctx context.Context, userID string) (model.CheckoutInfo, error)
}

// CartServiceImpl implements CartService.
type CartServiceImpl struct {
	stock    StockSource
	pricing  PricingProvider
	accounts repository.CartStoreInterface
	guests   repository.CartStoreInterface
	defaults CheckoutDefaultsSource
}

// CartOption configures a CartServiceImpl.
type CartOption func(*CartServiceImpl)

// WithCheckoutDefaults prefills missing checkout info of account carts from src.
func WithCheckoutDefaults(src CheckoutDefaultsSource) CartOption {
	return func(s *CartServiceImpl) {
		s.defaults = src
	}
}

// NewCartService creates a cart service. Account carts live in accounts;
// guest carts live in guests, or in accounts when guests is nil.
func NewCartService(stock StockSource, pricing PricingProvider, accounts, guests repository.CartStoreInterface, opts ...CartOption) CartService {
	s := &CartServiceImpl{
		stock:    stock,
		pricing:  pricing,
		accounts: accounts,
		guests:   guests,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type cartState struct {
	owner     model.CartOwner
	cart      *cart.Cart
	checkout  model.CheckoutInfo
	discarded int
}

func (s *CartServiceImpl) Get(ctx context.Context, owner model.CartOwner) (*CartView, error) {
	st, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}
	view := s.view(ctx, st, nil)
	view.Saved = true
	return view, nil
}

// AddItem adds one unit of productID, bounded by the product's current stock.
func (s *CartServiceImpl) AddItem(ctx context.Context, owner model.CartOwner, productID string) (*CartView, error) {
	st, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}
	product, err := s.stock.Product(ctx, productID)
	if err != nil {
		metrics.RecordCartOperation("add", "error")
		return nil, err
	}
	snap := cart.Snapshot{
		Name:        product.Name,
		UnitPrice:   product.Price,
		ImageRef:    product.Image,
		CategoryRef: product.Category,
	}
	notice, opErr := st.cart.Add(productID, snap, product.Purchasable())
	return s.finish(ctx, st, "add", notice, opErr)
}

// UpdateItem sets the quantity of an existing line. A quantity below one
// removes the line and an absent line is left alone.
func (s *CartServiceImpl) UpdateItem(ctx context.Context, owner model.CartOwner, productID string, quantity int) (*CartView, error) {
	st, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}

	ceiling := 0
	if _, ok := st.cart.Line(productID); ok && quantity >= 1 {
		product, err := s.stock.Product(ctx, productID)
		switch {
		case errors.Is(err, ErrProductNotFound):
			// removed from the catalog: nothing left to buy
		case err != nil:
			metrics.RecordCartOperation("update", "error")
			return nil, err
		default:
			ceiling = product.Purchasable()
		}
	}

	notice, opErr := st.cart.UpdateQuantity(productID, quantity, ceiling)
	return s.finish(ctx, st, "update", notice, opErr)
}

func (s *CartServiceImpl) RemoveItem(ctx context.Context, owner model.CartOwner, productID string) (*CartView, error) {
	st, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}
	return s.finish(ctx, st, "remove", st.cart.Remove(productID), nil)
}

// Clear empties the cart. Checkout info is kept.
func (s *CartServiceImpl) Clear(ctx context.Context, owner model.CartOwner) (*CartView, error) {
	st, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}
	return s.finish(ctx, st, "clear", st.cart.Clear(), nil)
}

// SetCheckoutInfo stores the shipping address and payment method next to the cart.
// A nil address or empty method keeps the stored value.
func (s *CartServiceImpl) SetCheckoutInfo(ctx context.Context, owner model.CartOwner, info model.CheckoutInfo) (*CartView, error) {
	if info.PaymentMethod != "" && !info.PaymentMethod.Valid() {
		return nil, ErrInvalidPaymentMethod
	}
	st, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}
	if info.Shipping != nil {
		addr := *info.Shipping
		st.checkout.Shipping = &addr
	}
	if info.PaymentMethod != "" {
		st.checkout.PaymentMethod = info.PaymentMethod
	}

	view := s.view(ctx, st, nil)
	view.Saved = s.commit(ctx, st)
	metrics.RecordCartOperation("checkout_info", "updated")
	return view, nil
}

// Merge moves the lines of a guest cart into an account cart, capping each
// line at the product's current stock. The guest cart is deleted afterwards.
func (s *CartServiceImpl) Merge(ctx context.Context, guest, account model.CartOwner) (*CartView, error) {
	if !guest.IsGuest() || account.IsGuest() {
		return nil, ErrInvalidCartOwner
	}
	from, err := s.load(ctx, guest)
	if err != nil {
		return nil, err
	}
	into, err := s.load(ctx, account)
	if err != nil {
		return nil, err
	}

	merged := 0
	for _, line := range from.cart.Lines() {
		product, err := s.stock.Product(ctx, line.ProductID)
		if err != nil {
			log.Warn().Err(err).Str("product_id", line.ProductID).Msg("Skipping guest cart line during merge")
			continue
		}
		ceiling := product.Purchasable()
		if ceiling < 1 {
			continue
		}
		want := line.Quantity
		if existing, ok := into.cart.Line(line.ProductID); ok {
			want += existing.Quantity
		} else {
			snap := cart.Snapshot{Name: line.Name, UnitPrice: line.UnitPrice, ImageRef: line.ImageRef, CategoryRef: line.CategoryRef}
			if _, err := into.cart.Add(line.ProductID, snap, ceiling); err != nil {
				continue
			}
		}
		if want > ceiling {
			want = ceiling
		}
		if _, err := into.cart.UpdateQuantity(line.ProductID, want, ceiling); err == nil {
			merged++
		}
	}

	if into.checkout.Shipping == nil {
		into.checkout.Shipping = from.checkout.Shipping
	}
	if into.checkout.PaymentMethod == "" {
		into.checkout.PaymentMethod = from.checkout.PaymentMethod
	}

	notice := cart.Notice{Kind: cart.NoticeUnchanged}
	if merged > 0 {
		notice = cart.Notice{Kind: cart.NoticeMerged, Quantity: merged}
	}
	view := s.view(ctx, into, &notice)
	view.Saved = s.commit(ctx, into)
	if view.Saved {
		if err := s.storeFor(guest).Delete(ctx, guest.Key()); err != nil {
			log.Warn().Err(err).Str("cart_owner", guest.Key()).Msg("Failed to delete merged guest cart")
		}
	}
	metrics.RecordCartOperation("merge", string(notice.Kind))
	log.Info().
		Str("guest", guest.Key()).
		Str("account", account.Key()).
		Int("merged_lines", merged).
		Msg("Guest cart merged")
	return view, nil
}

// Discard deletes the stored cart including its checkout info.
func (s *CartServiceImpl) Discard(ctx context.Context, owner model.CartOwner) error {
	if !owner.Valid() {
		return ErrInvalidCartOwner
	}
	return s.storeFor(owner).Delete(ctx, owner.Key())
}

func (s *CartServiceImpl) finish(ctx context.Context, st *cartState, op string, notice cart.Notice, opErr error) (*CartView, error) {
	if opErr != nil && !errors.Is(opErr, cart.ErrOutOfStock) {
		metrics.RecordCartOperation(op, "error")
		return nil, opErr
	}
	metrics.RecordCartOperation(op, string(notice.Kind))

	view := s.view(ctx, st, &notice)
	if notice.Changed() {
		view.Saved = s.commit(ctx, st)
	} else {
		view.Saved = true
	}

	log.Debug().
		Str("cart_owner", st.owner.Key()).
		Str("operation", op).
		Str("result", string(notice.Kind)).
		Str("product_id", notice.ProductID).
		Int("quantity", notice.Quantity).
		Msg("Cart operation")
	return view, opErr
}

func (s *CartServiceImpl) load(ctx context.Context, owner model.CartOwner) (*cartState, error) {
	if !owner.Valid() {
		return nil, ErrInvalidCartOwner
	}
	st := &cartState{owner: owner, cart: cart.New()}

	stored, err := s.storeFor(owner).Load(ctx, owner.Key())
	if err != nil {
		log.Error().Err(err).Str("cart_owner", owner.Key()).Msg("Failed to load cart")
		return nil, fmt.Errorf("%w: %w", ErrCartUnavailable, err)
	}
	if stored == nil {
		s.prefill(ctx, st)
		return st, nil
	}

	c, lineErr := cart.FromLines(stored.Lines)
	st.cart = c
	st.checkout = stored.Checkout
	for _, m := range malformedPieces(errors.Join(stored.Discarded, lineErr), nil) {
		log.Warn().
			Err(m.Err).
			Str("cart_owner", owner.Key()).
			Str("piece", m.Piece).
			Int("index", m.Index).
			Msg("Discarded malformed cart data")
		metrics.RecordDiscardedCartRecord(m.Piece)
		st.discarded++
	}
	s.prefill(ctx, st)
	return st, nil
}

// prefill fills the missing checkout fields of an account cart from the
// account's saved details. A failed lookup leaves the cart as loaded.
func (s *CartServiceImpl) prefill(ctx context.Context, st *cartState) {
	if s.defaults == nil || st.owner.IsGuest() || st.checkout.Ready() {
		return
	}
	defaults, err := s.defaults.CheckoutDefaults(ctx, st.owner.UserID)
	if err != nil {
		log.Debug().Err(err).Str("cart_owner", st.owner.Key()).Msg("No checkout defaults for account cart")
		return
	}
	if st.checkout.Shipping == nil {
		st.checkout.Shipping = defaults.Shipping
	}
	if st.checkout.PaymentMethod == "" {
		st.checkout.PaymentMethod = defaults.PaymentMethod
	}
}

// commit persists the cart and reports whether it succeeded. A failed write
// leaves the in-memory cart as it is.
func (s *CartServiceImpl) commit(ctx context.Context, st *cartState) bool {
	state := &repository.StoredCart{
		Owner:     st.owner.Key(),
		Lines:     st.cart.Records(),
		Checkout:  st.checkout,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.storeFor(st.owner).Save(ctx, st.owner.Key(), state); err != nil {
		label := storeAccount
		if st.owner.IsGuest() {
			label = storeGuest
		}
		metrics.RecordCartCommitFailure(label)
		log.Error().Err(err).Str("cart_owner", st.owner.Key()).Msg("Failed to persist cart")
		return false
	}
	return true
}

func (s *CartServiceImpl) view(ctx context.Context, st *cartState, notice *cart.Notice) *CartView {
	pricing := cart.DefaultPricing()
	if s.pricing != nil {
		pricing = s.pricing.Current(ctx)
	}
	return &CartView{
		Owner:     st.owner,
		Lines:     st.cart.Lines(),
		Totals:    st.cart.Totals(pricing),
		Pricing:   pricing,
		Checkout:  st.checkout,
		Notice:    notice,
		Discarded: st.discarded,
	}
}

func (s *CartServiceImpl) storeFor(owner model.CartOwner) repository.CartStoreInterface {
	if owner.IsGuest() && s.guests != nil {
		return s.guests
	}
	return s.accounts
}

func malformedPieces(err error, out []*cart.MalformedStateError) []*cart.MalformedStateError {
	switch e := err.(type) {
	case nil:
		return out
	case *cart.MalformedStateError:
		return append(out, e)
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			out = malformedPieces(inner, out)
		}
	}
	return out
}
