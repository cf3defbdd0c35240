package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-ordering/dto"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

var errInternal = errors.New("internal server error")

// paramID parses an integer path parameter. A non-integer writes a 422 and
// returns false. Integers no row can have (zero, negative, out of range) come
// back as 0 so the lookup answers 404.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, true
	}
	if err != nil {
		utils.RespondValidationError(c, http.StatusUnprocessableEntity, "Invalid path parameter", []utils.FieldError{{
			Field:   name,
			Message: "must be a valid integer",
		}})
		return 0, false
	}
	if id <= 0 {
		return 0, true
	}
	return uint(id), true
}

// respondBindError writes a 422 listing every violated field.
func respondBindError(c *gin.Context, err error) {
	errs, _ := dto.FieldErrors(err)
	utils.RespondValidationError(c, http.StatusUnprocessableEntity, "Validation failed", errs)
}

// respondStoreError logs the store error and hides it from the client.
func respondStoreError(c *gin.Context, action string, err error) {
	utils.ErrorLogger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"path":       c.Request.URL.Path,
	}).Errorf("%s: %v", action, err)
	utils.RespondError(c, http.StatusInternalServerError, errInternal)
}

func respondNotFound(c *gin.Context, entity string) {
	utils.RespondError(c, http.StatusNotFound, fmt.Errorf("%s not found", entity))
}

// bindQueryOrJSON binds from the query string when one is present or the
// request has no body, and from the JSON body otherwise.
func bindQueryOrJSON(c *gin.Context, obj interface{}) error {
	if c.Request.ContentLength == 0 || len(c.Request.URL.Query()) > 0 {
		return c.ShouldBindQuery(obj)
	}
	return c.ShouldBindJSON(obj)
}
