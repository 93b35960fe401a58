package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// ErrorStatus maps service errors to a status code: validation failures are
// 400, missing records 404, anything else 500.
func ErrorStatus(err error) int {
	var ve *ValidationError
	var nf *NotFoundError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// RespondServiceError is RespondError with the code chosen by ErrorStatus.
func RespondServiceError(c *gin.Context, err error) {
	RespondError(c, ErrorStatus(err), err)
}
