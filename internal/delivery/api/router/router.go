// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mentorship/config"
	"mentorship/internal/delivery/api/middleware"
	"mentorship/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler *handler.ProfileHandler
	MentorHandler  *handler.MentorHandler
	MatchHandler   *handler.MatchHandler
	ChatHandler    *handler.ChatHandler
	DeviceHandler  *handler.DeviceHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler *handler.ProfileHandler
	mentorHandler  *handler.MentorHandler
	matchHandler   *handler.MatchHandler
	chatHandler    *handler.ChatHandler
	deviceHandler  *handler.DeviceHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler: params.ProfileHandler,
		mentorHandler:  params.MentorHandler,
		matchHandler:   params.MatchHandler,
		chatHandler:    params.ChatHandler,
		deviceHandler:  params.DeviceHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.POST("", r.profileHandler.Register)
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.GET("/preferences", r.profileHandler.GetPreferences)
		profileGroup.POST("/mentor", r.profileHandler.BecomeMentor)
		profileGroup.PATCH("/mentor", r.profileHandler.UpdateMentorProfile)
		profileGroup.POST("/mentee", r.profileHandler.BecomeMentee)
		profileGroup.PATCH("/mentee", r.profileHandler.UpdateMenteeProfile)
	}

	mentorsGroup := apiV1.Group("/mentors")
	{
		mentorsGroup.GET("", r.mentorHandler.ListAvailableMentors)
		mentorsGroup.GET("/me/qr", r.mentorHandler.GenerateInviteQR)
	}

	matchesGroup := apiV1.Group("/matches")
	{
		matchesGroup.GET("", r.matchHandler.ListMatches)
		matchesGroup.POST("", r.matchHandler.RequestMentorship)
		matchesGroup.POST("/qr", r.matchHandler.RequestMentorshipViaQR)
		matchesGroup.POST("/:id/respond", r.matchHandler.RespondToRequest)
		matchesGroup.POST("/:id/complete", r.matchHandler.CompleteMentorship)

		matchesGroup.GET("/:id/chat", r.chatHandler.ListMessages)
		matchesGroup.POST("/:id/chat", r.chatHandler.SendMessage)
		matchesGroup.GET("/:id/chat/unread", r.chatHandler.UnreadCount)
		matchesGroup.GET("/:id/chat/ws", r.chatHandler.Stream)
	}

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.POST("/score", r.testHandler.ScorePreview)
		testGroup.GET("/whoami", r.testHandler.WhoAmI, r.authMiddleware.Authenticate)
	}
}
