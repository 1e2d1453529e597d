package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/nexuslabs/social-api/docs"
	"github.com/nexuslabs/social-api/internal/api/handler"
	"github.com/nexuslabs/social-api/internal/api/middleware"
	"github.com/nexuslabs/social-api/internal/core/service"
	"github.com/nexuslabs/social-api/internal/infrastructure/config"
	"github.com/nexuslabs/social-api/internal/infrastructure/db/redis"
	"github.com/nexuslabs/social-api/internal/infrastructure/supabase"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, which disables rate limiting and its readiness check.
func NewRouter(platform *supabase.Client, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("social"))

	// --- Dependencies ---
	gateway := service.NewIdentityService(platform.Auth())
	profileService := service.NewProfileService(supabase.NewProfileRepository(platform), log)
	friendService := service.NewFriendService(supabase.NewFriendRepository(platform), log)
	messageService := service.NewMessageService(supabase.NewMessageRepository(platform), log)

	authHandler := handler.NewAuthHandler(platform.Auth(), gateway)
	userHandler := handler.NewUserHandler(profileService, friendService, messageService)
	authMiddleware := middleware.Auth(gateway)

	limited := func(g *echo.Group) {
		if rdb != nil && cfg.RateLimitPerMinute > 0 {
			limiter := redis.NewRateLimiter(rdb, cfg.RateLimitPerMinute, time.Minute)
			g.Use(middleware.RateLimit(limiter, log))
		}
	}

	// --- Auth routes (pass-through to the identity platform) ---
	auth := e.Group("/auth")
	limited(auth)
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.GET("/auth/google", authHandler.GoogleRedirect)
	auth.GET("/auth/callback", authHandler.GoogleCallback)
	auth.POST("/signup/google", authHandler.GoogleURL)
	auth.POST("/login/google", authHandler.GoogleURL)
	auth.GET("/profile", authHandler.Profile)
	auth.POST("/logout", authHandler.Logout)

	// --- User routes ---
	user := e.Group("/user")
	limited(user)
	user.GET("/search", userHandler.Search) // unauthenticated by design
	user.POST("/set-username", userHandler.SetUsername, authMiddleware)
	user.POST("/add-friend", userHandler.AddFriend, authMiddleware)
	user.GET("/friends", userHandler.Friends, authMiddleware)
	user.POST("/send-message", userHandler.SendMessage, authMiddleware)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(platform, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
