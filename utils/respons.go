package utils

import (
	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// FieldError describes one violated constraint of a request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResponse struct {
	Status  bool         `json:"status"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
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

// RespondValidationError reports every violated field at once.
func RespondValidationError(c *gin.Context, code int, message string, errs []FieldError) {
	if errs == nil {
		errs = []FieldError{}
	}
	c.JSON(code, ValidationResponse{
		Status:  false,
		Message: message,
		Errors:  errs,
	})
}
