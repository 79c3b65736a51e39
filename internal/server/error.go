package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelolalabs/kelola/internal/arrears"
	paymentdomain "github.com/kelolalabs/kelola/internal/payment/domain"
	propertydomain "github.com/kelolalabs/kelola/internal/property/domain"
	rentaldomain "github.com/kelolalabs/kelola/internal/rental/domain"
	reportdomain "github.com/kelolalabs/kelola/internal/report/domain"
	roomdomain "github.com/kelolalabs/kelola/internal/room/domain"
	tenantdomain "github.com/kelolalabs/kelola/internal/tenant/domain"
)

// APIError is the error envelope every handler responds with.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *APIError) Error() string { return e.Code }

func invalidRequestError() *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: "invalid_request", Message: "invalid request body"}
}

func newValidationError(field, code, message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: code, Message: message, Field: field}
}

type errorMapping struct {
	err    error
	status int
}

// Domain sentinels share code strings across packages but are distinct
// values, so every one is listed here.
var errorMappings = []errorMapping{
	{propertydomain.ErrNotFound, http.StatusNotFound},
	{roomdomain.ErrNotFound, http.StatusNotFound},
	{tenantdomain.ErrNotFound, http.StatusNotFound},
	{rentaldomain.ErrNotFound, http.StatusNotFound},
	{paymentdomain.ErrNotFound, http.StatusNotFound},
	{reportdomain.ErrNotFound, http.StatusNotFound},

	{rentaldomain.ErrRoomUnavailable, http.StatusConflict},

	{propertydomain.ErrInvalidName, http.StatusBadRequest},
	{propertydomain.ErrInvalidID, http.StatusBadRequest},
	{roomdomain.ErrInvalidName, http.StatusBadRequest},
	{roomdomain.ErrInvalidStatus, http.StatusBadRequest},
	{roomdomain.ErrInvalidPrice, http.StatusBadRequest},
	{roomdomain.ErrInvalidProperty, http.StatusBadRequest},
	{roomdomain.ErrInvalidID, http.StatusBadRequest},
	{tenantdomain.ErrInvalidName, http.StatusBadRequest},
	{tenantdomain.ErrInvalidPhone, http.StatusBadRequest},
	{tenantdomain.ErrInvalidKtpAddress, http.StatusBadRequest},
	{tenantdomain.ErrInvalidID, http.StatusBadRequest},
	{rentaldomain.ErrInvalidRoom, http.StatusBadRequest},
	{rentaldomain.ErrInvalidTenant, http.StatusBadRequest},
	{rentaldomain.ErrInvalidMonth, http.StatusBadRequest},
	{rentaldomain.ErrInvalidPrice, http.StatusBadRequest},
	{rentaldomain.ErrInvalidStatus, http.StatusBadRequest},
	{rentaldomain.ErrInvalidID, http.StatusBadRequest},
	{paymentdomain.ErrInvalidRental, http.StatusBadRequest},
	{paymentdomain.ErrInvalidAmount, http.StatusBadRequest},
	{paymentdomain.ErrInvalidMonth, http.StatusBadRequest},
	{paymentdomain.ErrInvalidID, http.StatusBadRequest},
	{reportdomain.ErrInvalidID, http.StatusBadRequest},

	{arrears.ErrInvalidContract, http.StatusUnprocessableEntity},
	{arrears.ErrDataIntegrity, http.StatusUnprocessableEntity},
}

// AbortWithError translates a service error into the JSON error
// envelope. Unknown errors become an opaque 500.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			c.AbortWithStatusJSON(m.status, gin.H{"error": &APIError{
				Status:  m.status,
				Code:    m.err.Error(),
				Message: err.Error(),
			}})
			return
		}
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "internal error",
	}})
}
