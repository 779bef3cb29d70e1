package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reward_wallet_back/models"
	"reward_wallet_back/pkg/middleware"
)

func (h *Handler) Login(c *gin.Context) {
	var input models.User

	if err := c.BindJSON(&input); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.service.Authorization.GetUserByTelegramId(input.TelegramID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			id, err := h.service.Authorization.CreateUser(input)
			if err != nil {
				newErrorResponse(c, http.StatusInternalServerError, "cannot create user")
				return
			}

			input.ID = id
			c.JSON(http.StatusOK, input)
			return
		}

		newErrorResponse(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"user": user,
	})
}

func (h *Handler) GetMe(c *gin.Context) {
	telegramIDStr := c.Query("telegram_id")
	if telegramIDStr == "" {
		newErrorResponse(c, http.StatusBadRequest, "telegram_id is required")
		return
	}
	telegramID, err := strconv.ParseInt(telegramIDStr, 10, 64)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "telegram_id is required")
		return
	}
	user, err := h.service.Authorization.GetUserByTelegramId(telegramID)
	if err != nil {
		newErrorResponse(c, http.StatusUnauthorized, "something went wrong")
		return
	}
	wrapOkJSON(c, map[string]interface{}{
		"user": user,
	})
}

// actor resolves the authenticated Telegram id set by the middleware into
// the caller identity handed to the service layer.
func (h *Handler) actor(c *gin.Context) (models.Actor, error) {
	telegramID := c.GetInt64(middleware.TelegramIDKey)

	user, err := h.service.Authorization.GetUserByTelegramId(telegramID)
	if err != nil {
		return models.Actor{}, err
	}

	return models.Actor{
		UserID:     user.ID,
		TelegramID: user.TelegramID,
		IsAdmin:    user.IsAdmin,
		IPAddress:  c.ClientIP(),
		DeviceInfo: c.GetHeader("User-Agent"),
	}, nil
}
