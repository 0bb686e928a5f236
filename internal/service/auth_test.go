package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/mocks"
	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/guttosm/storefront-service/internal/service"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecretKey:     "test-access-secret",
		JWTRefreshSecret: "test-refresh-secret",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  7 * 24 * time.Hour,
	}
}

func testAccount(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.User{
		ID:           primitive.NewObjectID(),
		Email:        "ana@example.com",
		Username:     "ana",
		PasswordHash: string(hash),
		Name:         "Ana Lima",
		Roles:        []string{"r-customer"},
		Active:       true,
	}
}

type authMocks struct {
	users  *mocks.MockUserRepositoryInterface
	access *mocks.MockAccessRepositoryInterface
	tokens *mocks.MockTokenRepositoryInterface
}

func newAuthService(t *testing.T) (service.AuthService, authMocks) {
	m := authMocks{
		users:  mocks.NewMockUserRepositoryInterface(t),
		access: mocks.NewMockAccessRepositoryInterface(t),
		tokens: mocks.NewMockTokenRepositoryInterface(t),
	}
	return service.NewAuthService(m.users, m.access, m.tokens, testAuthConfig()), m
}

func expectRefreshStored(m authMocks, userID primitive.ObjectID) {
	m.tokens.On("Store", mock.Anything, mock.AnythingOfType("string"), userID, model.TokenRefresh, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name     string
		login    string
		password string
		setup    func(authMocks, *model.User)
		wantErr  error
	}{
		{
			name:     "email login",
			login:    "ana@example.com",
			password: "s3cret-pass",
			setup: func(m authMocks, u *model.User) {
				m.users.On("FindByLogin", mock.Anything, "ana@example.com").Return(u, nil)
				expectRefreshStored(m, u.ID)
				m.users.On("RecordLogin", mock.Anything, u.ID, mock.AnythingOfType("time.Time")).Return(nil)
			},
		},
		{
			name:     "username login survives a failed login stamp",
			login:    "ana",
			password: "s3cret-pass",
			setup: func(m authMocks, u *model.User) {
				m.users.On("FindByLogin", mock.Anything, "ana").Return(u, nil)
				expectRefreshStored(m, u.ID)
				m.users.On("RecordLogin", mock.Anything, u.ID, mock.Anything).Return(errors.New("write failed"))
			},
		},
		{
			name:     "unknown account",
			login:    "bruno",
			password: "s3cret-pass",
			setup: func(m authMocks, _ *model.User) {
				m.users.On("FindByLogin", mock.Anything, "bruno").Return(nil, nil)
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			login:    "ana",
			password: "guess",
			setup: func(m authMocks, u *model.User) {
				m.users.On("FindByLogin", mock.Anything, "ana").Return(u, nil)
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:     "disabled account",
			login:    "ana",
			password: "s3cret-pass",
			setup: func(m authMocks, u *model.User) {
				u.Active = false
				m.users.On("FindByLogin", mock.Anything, "ana").Return(u, nil)
			},
			wantErr: service.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			user := testAccount(t, "s3cret-pass")
			tt.setup(m, user)

			pair, got, err := svc.Login(context.Background(), tt.login, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, pair)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, pair.AccessToken)
			assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
			assert.Equal(t, int64(900), pair.ExpiresIn)
			assert.Equal(t, user.ID, got.ID)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	customer := &model.Role{ID: primitive.NewObjectID(), Name: model.RoleCustomer}
	reg := service.Registration{Email: "ana@example.com", Username: "ana", Password: "s3cret-pass", Name: "Ana", MarketingOptIn: true}

	t.Run("creates a customer account", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.access.On("FindRoleByName", mock.Anything, model.RoleCustomer).Return(customer, nil)
		m.users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Username == "ana" &&
				u.Active &&
				u.Profile.MarketingOptIn &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")) == nil
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.User).ID = primitive.NewObjectID()
		}).Return(nil)
		m.tokens.On("Store", mock.Anything, mock.Anything, mock.Anything, model.TokenRefresh, mock.Anything).Return(nil)

		pair, user, err := svc.Register(context.Background(), reg)

		require.NoError(t, err)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.Equal(t, []string{customer.ID.Hex()}, user.Roles)
	})

	t.Run("taken email or username", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.access.On("FindRoleByName", mock.Anything, model.RoleCustomer).Return(customer, nil)
		m.users.On("Create", mock.Anything, mock.Anything).Return(repository.ErrAccountExists)

		_, _, err := svc.Register(context.Background(), reg)
		assert.ErrorIs(t, err, service.ErrAccountExists)
	})

	t.Run("missing customer role", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.access.On("FindRoleByName", mock.Anything, model.RoleCustomer).Return(nil, nil)

		_, _, err := svc.Register(context.Background(), reg)
		assert.Error(t, err)
	})
}

func TestAuthService_RefreshAndLogout(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthService(t)
	user := testAccount(t, "s3cret-pass")

	m.users.On("FindByLogin", mock.Anything, "ana").Return(user, nil)
	m.users.On("RecordLogin", mock.Anything, user.ID, mock.Anything).Return(nil)
	m.tokens.On("Store", mock.Anything, mock.Anything, user.ID, model.TokenRefresh, mock.Anything).Return(nil)

	pair, _, err := svc.Login(ctx, "ana", "s3cret-pass")
	require.NoError(t, err)

	t.Run("refresh rotates the pair", func(t *testing.T) {
		m.tokens.On("ConsumeRefresh", mock.Anything, pair.RefreshToken).Return(&model.Token{UserID: user.ID, Type: model.TokenRefresh}, nil).Once()
		m.users.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()

		next, err := svc.RefreshToken(ctx, pair.RefreshToken)
		require.NoError(t, err)
		assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)
	})

	t.Run("spent refresh token", func(t *testing.T) {
		m.tokens.On("ConsumeRefresh", mock.Anything, pair.RefreshToken).Return(nil, nil).Once()

		_, err := svc.RefreshToken(ctx, pair.RefreshToken)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		_, err := svc.RefreshToken(ctx, pair.AccessToken)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("disabled account cannot refresh", func(t *testing.T) {
		disabled := *user
		disabled.Active = false
		m.tokens.On("ConsumeRefresh", mock.Anything, pair.RefreshToken).Return(&model.Token{UserID: user.ID}, nil).Once()
		m.users.On("FindByID", mock.Anything, user.ID).Return(&disabled, nil).Once()

		_, err := svc.RefreshToken(ctx, pair.RefreshToken)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("validate", func(t *testing.T) {
		m.tokens.On("IsRevoked", mock.Anything, pair.AccessToken).Return(false, nil).Once()

		claims, err := svc.ValidateToken(ctx, pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "ana@example.com", claims.Email)
		assert.Equal(t, user.Roles, claims.Roles)
	})

	t.Run("logout revokes the access token", func(t *testing.T) {
		m.tokens.On("Store", mock.Anything, pair.AccessToken, user.ID, model.TokenRevoked, mock.Anything).Return(nil).Once()
		m.tokens.On("ConsumeRefresh", mock.Anything, pair.RefreshToken).Return(nil, nil).Once()

		require.NoError(t, svc.Logout(ctx, pair.AccessToken, pair.RefreshToken))

		m.tokens.On("IsRevoked", mock.Anything, pair.AccessToken).Return(true, nil).Once()
		_, err := svc.ValidateToken(ctx, pair.AccessToken)
		assert.ErrorIs(t, err, service.ErrTokenRevoked)
	})

	t.Run("logout reports storage errors", func(t *testing.T) {
		m.tokens.On("Store", mock.Anything, pair.AccessToken, user.ID, model.TokenRevoked, mock.Anything).Return(errors.New("down")).Once()

		assert.Error(t, svc.Logout(ctx, pair.AccessToken, ""))
		assert.NoError(t, svc.Logout(ctx, "", ""))
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	phone := "+351 912 345 678"
	cod := model.PaymentCashOnDelivery
	barter := model.PaymentMethod("barter")
	home := &model.Address{FullName: "Ana", Line1: "Rua 1", City: "Lisboa", PostalCode: "1000-001", Country: "PT"}

	t.Run("changes only the given fields", func(t *testing.T) {
		svc, m := newAuthService(t)
		user := testAccount(t, "pw")
		user.Profile = model.CustomerProfile{MarketingOptIn: true, PreferredPayment: model.PaymentCard}

		want := model.CustomerProfile{Phone: phone, DefaultShipping: home, PreferredPayment: cod, MarketingOptIn: true}
		m.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		m.users.On("UpdateProfile", mock.Anything, user.ID, "Ana Lima", want).Return(&model.User{ID: user.ID, Profile: want}, nil)

		updated, err := svc.UpdateProfile(ctx, user.ID, service.ProfileUpdate{Phone: &phone, DefaultShipping: home, PreferredPayment: &cod})
		require.NoError(t, err)
		assert.Equal(t, cod, updated.Profile.PreferredPayment)
	})

	t.Run("rejects unknown payment methods", func(t *testing.T) {
		svc, _ := newAuthService(t)
		_, err := svc.UpdateProfile(ctx, primitive.NewObjectID(), service.ProfileUpdate{PreferredPayment: &barter})
		assert.ErrorIs(t, err, service.ErrInvalidPaymentMethod)
	})

	t.Run("missing account", func(t *testing.T) {
		svc, m := newAuthService(t)
		id := primitive.NewObjectID()
		m.users.On("FindByID", mock.Anything, id).Return(nil, nil)

		_, err := svc.UpdateProfile(ctx, id, service.ProfileUpdate{Phone: &phone})
		assert.ErrorIs(t, err, service.ErrAccountNotFound)
	})
}

func TestAuthService_CheckoutDefaults(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthService(t)
	user := testAccount(t, "pw")
	user.Profile = model.CustomerProfile{PreferredPayment: model.PaymentPayPal}
	m.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	info, err := svc.CheckoutDefaults(ctx, user.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPayPal, info.PaymentMethod)
	assert.Nil(t, info.Shipping)

	_, err = svc.CheckoutDefaults(ctx, "not-an-id")
	assert.ErrorIs(t, err, service.ErrAccountNotFound)
}

func TestAuthService_TokenServiceInjection(t *testing.T) {
	tokens := &stubTokens{claims: &dto.Claims{Email: "ana@example.com"}}
	svc := service.NewAuthServiceWithTokenService(mocks.NewMockUserRepositoryInterface(t), mocks.NewMockAccessRepositoryInterface(t), tokens)

	claims, err := svc.ValidateToken(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)
}

type stubTokens struct {
	service.TokenService
	claims *dto.Claims
}

func (s *stubTokens) ParseAccess(context.Context, string) (*dto.Claims, error) {
	return s.claims, nil
}
