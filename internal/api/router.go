package api

import (
	"time" // Token lifetime

	"bet_assist/internal/middleware" // Auth, premium and admin gates
	"bet_assist/internal/service"    // Services behind the handlers

	"github.com/gin-gonic/gin" // Gin web framework
)

// Deps are the services and settings the router is built from
type Deps struct {
	Users          *service.UserService
	Profiles       *service.ProfileService
	Plans          *service.PlanService
	Suggestions    *service.SuggestionService
	Bets           *service.BetService
	Stats          *service.StatsService
	JWTSecret      string
	JWTTTL         time.Duration
	TrustedProxies []string
}

// NewRouter wires every route onto a new gin engine
func NewRouter(d Deps) (*gin.Engine, error) {
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware(), gin.Recovery())
	if err := r.SetTrustedProxies(d.TrustedProxies); err != nil {
		return nil, err
	}

	auth := middleware.JWTAuthMiddleware(d.JWTSecret)
	premium := middleware.PremiumOnlyMiddleware(d.Profiles)

	// Auth routes
	r.POST("/user", RegisterHandler(d.Users))
	r.POST("/user/login", LoginHandler(d.Users, d.JWTSecret, d.JWTTTL))

	// Everything below needs a valid token
	api := r.Group("", auth)
	api.GET("/profile", GetProfileHandler(d.Profiles))
	api.PUT("/profile", SaveProfileHandler(d.Profiles))

	api.GET("/stake/suggestion", SuggestionHandler(d.Suggestions))
	api.GET("/stake/calculator", CalculatorHandler(d.Suggestions))

	api.GET("/bookmakers", BookmakersHandler(d.Bets))
	api.GET("/bets", BetHistoryHandler(d.Bets))
	api.POST("/bets", RecordBetHandler(d.Bets))

	api.GET("/stats", BaseStatsHandler(d.Stats))
	api.GET("/stats/profit-loss", ProfitLossHandler(d.Stats))
	api.GET("/stats/advanced", premium, AdvancedStatsHandler(d.Stats))
	api.POST("/stats/refresh", RefreshStatsHandler(d.Stats))

	// Staking plans are a premium feature
	plans := api.Group("/plans", premium)
	plans.GET("", ListPlansHandler(d.Plans))
	plans.POST("", AddPlanHandler(d.Plans))
	plans.POST("/:id/activate", ActivatePlanHandler(d.Plans))
	plans.POST("/:id/deactivate", DeactivatePlanHandler(d.Plans))
	plans.DELETE("/:id", DeletePlanHandler(d.Plans))

	// Admin routes
	admin := api.Group("/admin", middleware.AdminOnlyMiddleware(d.Users))
	admin.GET("/users", ListUsersHandler(d.Users))
	admin.PUT("/users/:id/subscription", SetSubscriptionHandler(d.Users, d.Profiles))

	return r, nil
}
