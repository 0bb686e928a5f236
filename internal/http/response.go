package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/middleware"
)

// selfValidating is implemented by request bodies with rules that struct
// tags cannot express.
type selfValidating interface {
	Validate() error
}

// bindJSON decodes the request body into a T and runs its binding tags and,
// when T has one, its Validate method.
func bindJSON[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	if v, ok := any(&req).(selfValidating); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return &req, nil
}

// ResponseBuilder writes the success and error envelopes of the API.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success wraps data in a SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	b.c.JSON(statusCode, dto.SuccessResponse{
		Data:      data,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	})
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Error aborts with the message of messageKey in the caller's locale. A
// non-nil err is attached to the context for ErrorHandler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorWithDetails(statusCode, messageKey, nil, err)
}

// ValidationError sends a 400 response for a request that failed binding or
// validation, listing the offending fields when they are known.
func (b *ResponseBuilder) ValidationError(err error) {
	details := dto.ValidationDetails(err)
	if details == nil {
		b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	b.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyValidationFailed, details, err)
}

// ErrorWithDetails is Error with per-field details.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, messageKey string, details map[string]string, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}
	b.c.AbortWithStatusJSON(statusCode, dto.ErrorResponse{
		Error:     dto.ErrCodeFromStatus(statusCode),
		Message:   i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c)),
		Details:   details,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	})
}
