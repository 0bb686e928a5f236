package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/middleware"
	"github.com/guttosm/storefront-service/internal/service"
	"github.com/rs/zerolog/log"
)

// RefreshTokenHeader carries the refresh token on refresh and logout.
const RefreshTokenHeader = "X-Refresh-Token"

// AuthHandler provides HTTP handlers for sign-in and the account of the
// signed-in shopper.
type AuthHandler struct {
	auth  service.AuthService
	carts service.CartService
}

// NewAuthHandler creates a new authentication handler. carts may be nil, in
// which case guest carts are not merged on sign-in.
func NewAuthHandler(auth service.AuthService, carts service.CartService) *AuthHandler {
	return &AuthHandler{auth: auth, carts: carts}
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Sign in
// @Description  Signs in with email or username. When the request carries a guest X-Cart-ID, the guest cart is merged into the account cart.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        X-Cart-ID header string false "Guest cart session to merge"
// @Param        request body dto.LoginRequest true "Credentials"
// @Success      200 {object} dto.SuccessResponse{data=dto.AuthResponse} "Signed in"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Incorrect login or password"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.ValidationError(err)
		return
	}

	pair, user, err := h.auth.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			middleware.AuditFailure(c, "account.login_failed", "Failed login attempt", err, map[string]interface{}{"login": req.Login})
			builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	c.Set(string(middleware.UserIDKey), user.ID)
	middleware.Audit(c, "account.login", "Account signed in", nil)
	builder.SuccessOK(h.authResponse(c, pair, user))
}

// Register handles POST /api/auth/register requests.
//
// @Summary      Create account
// @Description  Creates a customer account and signs it in. A guest X-Cart-ID cart is merged like on sign-in.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        X-Cart-ID header string false "Guest cart session to merge"
// @Param        request body dto.RegisterRequest true "Account details"
// @Success      201 {object} dto.SuccessResponse{data=dto.AuthResponse} "Account created"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Email or username taken"
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.ValidationError(err)
		return
	}

	pair, user, err := h.auth.Register(c.Request.Context(), service.Registration{
		Email:          req.Email,
		Username:       req.Username,
		Password:       req.Password,
		Name:           req.Name,
		MarketingOptIn: req.MarketingOptIn,
	})
	switch {
	case errors.Is(err, service.ErrAccountExists):
		builder.Error(http.StatusConflict, i18n.ErrKeyAccountExists, err)
		return
	case err != nil:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	c.Set(string(middleware.UserIDKey), user.ID)
	middleware.Audit(c, "account.registered", "Account registered", nil)
	builder.SuccessCreated(h.authResponse(c, pair, user))
}

// authResponse merges the guest cart of the request, if any, into the
// account cart. A failed merge leaves the guest cart in place and is not an
// error for the sign-in.
func (h *AuthHandler) authResponse(c *gin.Context, pair *dto.TokenPair, user *model.User) dto.AuthResponse {
	resp := dto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		Account:      dto.NewAccountResponse(user),
	}

	sessionID := c.GetHeader(middleware.CartIDHeader)
	if h.carts == nil || sessionID == "" {
		return resp
	}
	if _, err := uuid.Parse(sessionID); err != nil {
		return resp
	}

	guest := model.CartOwner{SessionID: sessionID}
	account := model.CartOwner{UserID: user.ID.Hex(), SessionID: sessionID}
	view, err := h.carts.Merge(c.Request.Context(), guest, account)
	if err != nil {
		log.Warn().Err(err).Str("user_id", user.ID.Hex()).Msg("Failed to merge guest cart on sign-in")
		return resp
	}
	merged := cartResponse(c, view)
	resp.MergedCart = &merged
	return resp
}

// RefreshToken handles POST /api/auth/refresh requests.
//
// @Summary      Refresh tokens
// @Description  Exchanges a refresh token for a new token pair. Each refresh token can be used once.
// @Tags         Auth
// @Produce      json
// @Param        X-Refresh-Token header string true "Refresh token"
// @Success      200 {object} dto.SuccessResponse{data=dto.TokenPair} "New tokens"
// @Failure      400 {object} dto.ErrorResponse "Missing refresh token"
// @Failure      401 {object} dto.ErrorResponse "Invalid or spent refresh token"
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	builder := NewResponseBuilder(c)

	refreshToken := c.GetHeader(RefreshTokenHeader)
	if refreshToken == "" {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyTokenRequired, nil)
		return
	}

	pair, err := h.auth.RefreshToken(c.Request.Context(), refreshToken)
	switch {
	case errors.Is(err, service.ErrInvalidToken):
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidToken, err)
	case err != nil:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	default:
		builder.SuccessOK(pair)
	}
}

// Logout handles POST /api/auth/logout requests.
//
// @Summary      Sign out
// @Description  Revokes the access token and, when X-Refresh-Token is sent, the refresh token.
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Param        X-Refresh-Token header string false "Refresh token"
// @Success      200 {object} dto.SuccessResponse "Signed out"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	accessToken, ok := middleware.BearerToken(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyTokenRequired, nil)
		return
	}

	if err := h.auth.Logout(c.Request.Context(), accessToken, c.GetHeader(RefreshTokenHeader)); err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	middleware.Audit(c, "account.logout", "Account signed out", nil)
	builder.SuccessOK(gin.H{"signedOut": true})
}

// GetAccount handles GET /api/account requests.
//
// @Summary      Get account
// @Description  Returns the signed-in account with its saved customer details.
// @Tags         Account
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.SuccessResponse{data=dto.AccountResponse} "Account"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Account not found"
// @Router       /api/account [get]
func (h *AuthHandler) GetAccount(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		NewResponseBuilder(c).Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}
	user, err := h.auth.Account(c.Request.Context(), userID)
	h.respondAccount(c, user, err)
}

// UpdateProfile handles PUT /api/account/profile requests.
//
// @Summary      Update customer details
// @Description  Changes the name and the details used to prefill checkout: phone, default shipping address and preferred payment method. Omitted fields keep their value.
// @Tags         Account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.ProfileRequest true "Fields to change"
// @Success      200 {object} dto.SuccessResponse{data=dto.AccountResponse} "Updated account"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Router       /api/account/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.ValidationError(err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.ValidationError(err)
		return
	}

	upd := service.ProfileUpdate{
		Name:            req.Name,
		Phone:           req.Phone,
		DefaultShipping: req.DefaultShipping,
		MarketingOptIn:  req.MarketingOptIn,
	}
	if req.PreferredPayment != nil {
		method := model.PaymentMethod(*req.PreferredPayment)
		upd.PreferredPayment = &method
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), userID, upd)
	if err == nil {
		middleware.Audit(c, "account.profile_updated", "Customer details updated", nil)
	}
	h.respondAccount(c, user, err)
}

func (h *AuthHandler) respondAccount(c *gin.Context, user *model.User, err error) {
	builder := NewResponseBuilder(c)
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyAccountNotFound, err)
	case errors.Is(err, service.ErrInvalidPaymentMethod):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidPaymentMethod, err)
	case err != nil:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	default:
		builder.SuccessOK(dto.NewAccountResponse(user))
	}
}
