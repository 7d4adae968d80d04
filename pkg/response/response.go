package response

import (
	"errors"
	"net/http"

	"storefront-events/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// AckResponse is the acknowledgment the provider expects for a consumed
// delivery, including duplicates and no-ops.
type AckResponse struct {
	Received bool `json:"received"`
}

// ErrorResponse is the rejection envelope for signature/decode failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// InternalErrorResponse carries detail for truly unexpected faults only.
type InternalErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// Ack sends the 200 acknowledgment.
func Ack(c *gin.Context) {
	c.JSON(http.StatusOK, AckResponse{Received: true})
}

// OK sends a 200 response with data (operator endpoints).
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Reject sends the error envelope. An *apperror.AppError chooses the status;
// anything else is reported as an internal fault.
func Reject(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.HTTPStatus < http.StatusInternalServerError {
		c.JSON(appErr.HTTPStatus, ErrorResponse{Error: appErr.Message})
		return
	}

	details := ""
	if errors.As(err, &appErr) && appErr.Err != nil {
		details = appErr.Err.Error()
	} else if err != nil {
		details = err.Error()
	}
	c.JSON(http.StatusInternalServerError, InternalErrorResponse{
		Error:   "internal error",
		Details: details,
	})
}
