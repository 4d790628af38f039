package controllers

import (
	"errors"
	"net/http"

	"go-postgres-pos/service"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) (uint, error) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, errors.New("user_id tidak ada di context")
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.New("user_id tidak valid")
	}
	return id, nil
}

// respondServiceError memetakan error service ke status HTTP.
func respondServiceError(c *gin.Context, message string, err error) {
	code := http.StatusInternalServerError

	var vErr *service.ValidationError
	var fundsErr *service.InsufficientFundsError
	var stockErr *service.InsufficientStockError

	switch {
	case errors.As(err, &vErr):
		code = http.StatusBadRequest
	case errors.As(err, &fundsErr), errors.As(err, &stockErr):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, service.ErrTransactionConflict):
		code = http.StatusConflict
	}

	c.JSON(code, gin.H{"message": message, "error": err.Error()})
}
