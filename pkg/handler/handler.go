package handler

import (
	"reward_wallet_back/pkg/middleware"
	"reward_wallet_back/pkg/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

type Handler struct {
	service *service.Service
}

func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) InitRoute() *gin.Engine {
	router := gin.New()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     viper.GetStringSlice("cors.origins"),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Telegram-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.GET("/me", h.GetMe)
	}

	api := router.Group("/api")
	{
		withdrawals := api.Group("/withdrawals", middleware.AuthMiddleware())
		{
			withdrawals.GET("", h.ListWithdrawals)
			withdrawals.POST("", h.SubmitWithdrawal)
			withdrawals.PUT("", h.DecideWithdrawal)
			withdrawals.DELETE("", h.CancelWithdrawal)
		}
	}
	return router
}
