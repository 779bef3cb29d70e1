package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"reward_wallet_back/internal/withdrawal"
)

type Error struct {
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	logrus.Error(message)
	c.AbortWithStatusJSON(statusCode, Error{Message: message})
}

func wrapOkJSON(c *gin.Context, response map[string]interface{}) {
	c.JSON(http.StatusOK, response)
}

// errorResponse maps a service error kind to the HTTP status the web app
// expects: 400 for user-fixable input, 401 for identity problems, 404 for
// missing records, 500 for ledger faults.
func errorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, withdrawal.ErrUnauthorized):
		newErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, withdrawal.ErrNotFound):
		newErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, withdrawal.ErrInvalidAmount),
		errors.Is(err, withdrawal.ErrAmountOutOfRange),
		errors.Is(err, withdrawal.ErrInsufficientBalance),
		errors.Is(err, withdrawal.ErrInvalidRecipient),
		errors.Is(err, withdrawal.ErrUnsupportedMethod),
		errors.Is(err, withdrawal.ErrInvalidStateTransition):
		newErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		newErrorResponse(c, http.StatusInternalServerError, "internal server error")
	}
}
