package httperr

import (
	"fmt"
	"net/http"

	"commerce-order-core/internal/domain/refund"
	"commerce-order-core/internal/pkg/errs"
	"commerce-order-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

var mappings = []struct {
	err    error
	status int
	msg    string
}{
	{errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{errs.ErrProductNotFound, http.StatusNotFound, "Product not found"},
	{errs.ErrPurchaseNotFound, http.StatusNotFound, "Purchase not found"},
	{errs.ErrInvalidQuantity, http.StatusBadRequest, "Quantity must be positive"},
	{errs.ErrInvalidRefundReason, http.StatusBadRequest, fmt.Sprintf("Refund reason must be 1 to %d characters", refund.MaxReasonLength)},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{errs.ErrInsufficientStock, http.StatusConflict, "Insufficient stock"},
	{errs.ErrRefundNotAllowed, http.StatusConflict, "Refund not allowed"},
	{errs.ErrInvalidStatusTransition, http.StatusConflict, "Invalid status transition"},
	{errs.ErrInfrastructure, http.StatusServiceUnavailable, "Service temporarily unavailable"},
}

// Status maps a use-case error to its HTTP status and public message.
func Status(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.err) {
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// AbortWithUseCaseError aborts with the status mapped from err.
func AbortWithUseCaseError(c *gin.Context, err error) {
	status, msg := Status(err)
	resp := Response{Status: status}
	resp.Error.Message = msg
	if code := errs.Code(err); code != "INTERNAL" {
		resp.Error.Code = code
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
