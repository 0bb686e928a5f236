package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/repository"
)

const tokenIssuer = "storefront-service"

// TokenService issues and checks the JWTs of shopper and staff accounts.
type TokenService interface {
	// Issue signs a new access and refresh token pair for user.
	Issue(ctx context.Context, user *model.User) (*dto.TokenPair, error)
	// ParseAccess verifies an access token and returns its claims.
	ParseAccess(ctx context.Context, raw string) (*dto.Claims, error)
	// Consume spends a refresh token and returns the account it was issued to.
	Consume(ctx context.Context, raw string) (primitive.ObjectID, error)
	// Revoke rejects an access token until it expires.
	Revoke(ctx context.Context, raw string) error
	// RevokeAll drops every refresh token of userID.
	RevokeAll(ctx context.Context, userID primitive.ObjectID) error
}

// TokenConfig holds configuration for the token service.
type TokenConfig struct {
	SecretKey        string
	RefreshSecretKey string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
}

// NewTokenConfigFromAuthConfig creates TokenConfig from config.AuthConfig.
func NewTokenConfigFromAuthConfig(authConfig config.AuthConfig) TokenConfig {
	return TokenConfig{
		SecretKey:        authConfig.JWTSecretKey,
		RefreshSecretKey: authConfig.JWTRefreshSecret,
		AccessTokenTTL:   authConfig.AccessTokenTTL,
		RefreshTokenTTL:  authConfig.RefreshTokenTTL,
	}
}

// accountClaims is the JWT payload of both token kinds.
type accountClaims struct {
	dto.Claims
	jwt.RegisteredClaims
}

// TokenServiceImpl implements TokenService with HS256 tokens. Access and
// refresh tokens are signed with different keys.
type TokenServiceImpl struct {
	accessKey  []byte
	refreshKey []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	tokens     repository.TokenRepositoryInterface
	now        func() time.Time
}

// NewTokenService creates a new token service.
func NewTokenService(tokens repository.TokenRepositoryInterface, cfg TokenConfig) TokenService {
	return &TokenServiceImpl{
		accessKey:  []byte(cfg.SecretKey),
		refreshKey: []byte(cfg.RefreshSecretKey),
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
		tokens:     tokens,
		now:        time.Now,
	}
}

func (s *TokenServiceImpl) Issue(ctx context.Context, user *model.User) (*dto.TokenPair, error) {
	if user.ID.IsZero() {
		return nil, errors.New("cannot issue tokens for an unsaved account")
	}
	now := s.now()

	access, err := s.sign(user, now, s.accessTTL, s.accessKey)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := s.sign(user, now, s.refreshTTL, s.refreshKey)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}
	if err := s.tokens.Store(ctx, refresh, user.ID, model.TokenRefresh, now.Add(s.refreshTTL)); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &dto.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

func (s *TokenServiceImpl) sign(user *model.User, now time.Time, ttl time.Duration, key []byte) (string, error) {
	claims := accountClaims{
		Claims: dto.Claims{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.Name,
			Roles:  user.Roles,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

func (s *TokenServiceImpl) parse(raw string, key []byte, opts ...jwt.ParserOption) (*accountClaims, error) {
	opts = append(opts,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	claims := &accountClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	}, opts...)
	if err != nil || !token.Valid || claims.UserID.IsZero() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *TokenServiceImpl) ParseAccess(ctx context.Context, raw string) (*dto.Claims, error) {
	claims, err := s.parse(raw, s.accessKey)
	if err != nil {
		return nil, err
	}
	revoked, err := s.tokens.IsRevoked(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("check token revocation: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return &claims.Claims, nil
}

func (s *TokenServiceImpl) Consume(ctx context.Context, raw string) (primitive.ObjectID, error) {
	claims, err := s.parse(raw, s.refreshKey)
	if err != nil {
		return primitive.NilObjectID, err
	}
	stored, err := s.tokens.ConsumeRefresh(ctx, raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("consume refresh token: %w", err)
	}
	if stored == nil || stored.UserID != claims.UserID {
		return primitive.NilObjectID, ErrInvalidToken
	}
	return claims.UserID, nil
}

// Revoke ignores tokens that are already expired.
func (s *TokenServiceImpl) Revoke(ctx context.Context, raw string) error {
	claims, err := s.parse(raw, s.accessKey)
	if err != nil {
		if _, expiredErr := s.parse(raw, s.accessKey, jwt.WithoutClaimsValidation()); expiredErr == nil {
			return nil
		}
		return err
	}
	return s.tokens.Store(ctx, raw, claims.UserID, model.TokenRevoked, claims.ExpiresAt.Time)
}

func (s *TokenServiceImpl) RevokeAll(ctx context.Context, userID primitive.ObjectID) error {
	return s.tokens.DeleteForUser(ctx, userID, model.TokenRefresh)
}
