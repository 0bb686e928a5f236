package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when the login or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid login or password")
	// ErrAccountExists is returned when the email or username is already registered.
	ErrAccountExists = errors.New("account already exists")
	// ErrAccountNotFound is returned when the account does not exist or is disabled.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidToken is returned when a token is malformed, forged or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrTokenRevoked is returned for an access token used after logout.
	ErrTokenRevoked = errors.New("token has been revoked")
)

// Registration is a new shopper account.
type Registration struct {
	Email          string
	Username       string
	Password       string
	Name           string
	MarketingOptIn bool
}

// ProfileUpdate changes the fields that are not nil.
type ProfileUpdate struct {
	Name             *string
	Phone            *string
	DefaultShipping  *model.Address
	PreferredPayment *model.PaymentMethod
	MarketingOptIn   *bool
}

// AuthService manages shopper and staff accounts and their sessions.
type AuthService interface {
	Login(ctx context.Context, login, password string) (*dto.TokenPair, *model.User, error)
	Register(ctx context.Context, reg Registration) (*dto.TokenPair, *model.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error)
	ValidateToken(ctx context.Context, accessToken string) (*dto.Claims, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
	Account(ctx context.Context, userID primitive.ObjectID) (*model.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, upd ProfileUpdate) (*model.User, error)
	// CheckoutDefaults returns the checkout info saved on the account.
	CheckoutDefaults(ctx context.Context, userID string) (model.CheckoutInfo, error)
}

// AuthServiceImpl implements AuthService. Token handling is delegated to a
// TokenService.
type AuthServiceImpl struct {
	users  repository.UserRepositoryInterface
	access repository.AccessRepositoryInterface
	tokens TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	users repository.UserRepositoryInterface,
	access repository.AccessRepositoryInterface,
	tokenRepo repository.TokenRepositoryInterface,
	authConfig config.AuthConfig,
) AuthService {
	return NewAuthServiceWithTokenService(users, access, NewTokenService(tokenRepo, NewTokenConfigFromAuthConfig(authConfig)))
}

// NewAuthServiceWithTokenService creates an authentication service around an
// existing TokenService.
func NewAuthServiceWithTokenService(
	users repository.UserRepositoryInterface,
	access repository.AccessRepositoryInterface,
	tokens TokenService,
) AuthService {
	return &AuthServiceImpl{
		users:  users,
		access: access,
		tokens: tokens,
	}
}

// Login accepts either the email or the username.
func (s *AuthServiceImpl) Login(ctx context.Context, login, password string) (*dto.TokenPair, *model.User, error) {
	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		return nil, nil, fmt.Errorf("find account: %w", err)
	}
	if user == nil || !user.Active {
		return nil, nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	if err := s.users.RecordLogin(ctx, user.ID, now); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID.Hex()).Msg("Failed to record login time")
	} else {
		user.LastLoginAt = &now
	}
	return pair, user, nil
}

// Register creates a shopper account holding the customer role and signs it in.
func (s *AuthServiceImpl) Register(ctx context.Context, reg Registration) (*dto.TokenPair, *model.User, error) {
	role, err := s.access.FindRoleByName(ctx, model.RoleCustomer)
	if err != nil {
		return nil, nil, err
	}
	if role == nil {
		return nil, nil, errors.New("customer role is not initialized")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{
		Email:        reg.Email,
		Username:     reg.Username,
		PasswordHash: string(hash),
		Name:         reg.Name,
		Roles:        []string{role.ID.Hex()},
		Profile:      model.CustomerProfile{MarketingOptIn: reg.MarketingOptIn},
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			return nil, nil, ErrAccountExists
		}
		return nil, nil, err
	}
	log.Info().Str("user_id", user.ID.Hex()).Msg("Account registered")

	pair, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// RefreshToken exchanges a refresh token for a new pair. The old refresh
// token cannot be used again.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	userID, err := s.tokens.Consume(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, ErrInvalidToken
	}
	return s.tokens.Issue(ctx, user)
}

func (s *AuthServiceImpl) ValidateToken(ctx context.Context, accessToken string) (*dto.Claims, error) {
	return s.tokens.ParseAccess(ctx, accessToken)
}

// Logout revokes the access token and spends the refresh token. Either may be
// empty. Refresh tokens that are already invalid are ignored.
func (s *AuthServiceImpl) Logout(ctx context.Context, accessToken, refreshToken string) error {
	var errs []error

	if accessToken != "" {
		if err := s.tokens.Revoke(ctx, accessToken); err != nil {
			errs = append(errs, fmt.Errorf("revoke access token: %w", err))
		}
	}
	if refreshToken != "" {
		if _, err := s.tokens.Consume(ctx, refreshToken); err != nil && !errors.Is(err, ErrInvalidToken) {
			errs = append(errs, fmt.Errorf("consume refresh token: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (s *AuthServiceImpl) Account(ctx context.Context, userID primitive.ObjectID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, ErrAccountNotFound
	}
	return user, nil
}

func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID primitive.ObjectID, upd ProfileUpdate) (*model.User, error) {
	if upd.PreferredPayment != nil && !upd.PreferredPayment.Valid() {
		return nil, ErrInvalidPaymentMethod
	}
	user, err := s.Account(ctx, userID)
	if err != nil {
		return nil, err
	}

	name := user.Name
	profile := user.Profile
	if upd.Name != nil {
		name = *upd.Name
	}
	if upd.Phone != nil {
		profile.Phone = *upd.Phone
	}
	if upd.DefaultShipping != nil {
		addr := *upd.DefaultShipping
		profile.DefaultShipping = &addr
	}
	if upd.PreferredPayment != nil {
		profile.PreferredPayment = *upd.PreferredPayment
	}
	if upd.MarketingOptIn != nil {
		profile.MarketingOptIn = *upd.MarketingOptIn
	}

	updated, err := s.users.UpdateProfile(ctx, userID, name, profile)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrAccountNotFound
	}
	return updated, nil
}

func (s *AuthServiceImpl) CheckoutDefaults(ctx context.Context, userID string) (model.CheckoutInfo, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return model.CheckoutInfo{}, ErrAccountNotFound
	}
	user, err := s.Account(ctx, id)
	if err != nil {
		return model.CheckoutInfo{}, err
	}
	return user.Profile.CheckoutDefaults(), nil
}
