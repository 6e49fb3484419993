// Package api contains all endpoints available
package api

import (
	"fmt"
	"hoangtv/flashcard-api/db"
	"hoangtv/flashcard-api/internal/service"
	"hoangtv/flashcard-api/middleware"
	"hoangtv/flashcard-api/pkg/security"
	"time"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

type API struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Argon    *security.ArgonHash
	Guard    *service.Guard
	Progress *service.Progress
	Copier   *service.Copier
}

func NewRouter() (*API, error) {
	a := &API{}

	db, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = db

	makeLogger()

	a.Argon = security.New()
	a.Guard = &service.Guard{DB: db}
	a.Progress = &service.Progress{DB: db}
	a.Copier = &service.Copier{DB: db}

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("cors.origins"),
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	jwt := middleware.NewJWTMiddleware(db)
	admin := middleware.NewAdminMiddleware()
	bodyLimit := middleware.BodySizeLimiter(1 << 20)
	authLimit := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: 2,
		Burst:             5,
	})

	main := router.Group("/api")
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)

		// HEAD /api/validate		-> Validates a JWT token
		main.HEAD("/validate", jwt, a.Validate)
	}

	users := main.Group("/users", bodyLimit)
	{
		// POST /api/users 		-> Registers a new user
		users.POST("", authLimit, a.UserRegister)

		// POST /api/users/login 	-> Logs in a user and returns a JWT cookie
		users.POST("/login", authLimit, a.UserLogin)

		// POST /api/users/logout 	-> Clears the auth cookie
		users.POST("/logout", a.UserLogout)

		// GET /api/users/me		-> Returns the current user
		users.GET("/me", jwt, a.UserMe)
	}

	sets := main.Group("/sets", jwt, bodyLimit)
	{
		// GET /api/sets 		-> Returns the caller's sets, newest first
		sets.GET("", a.SetFetchBulk)

		// POST /api/sets 		-> Creates a new flashcard set
		sets.POST("", a.SetCreate)

		// GET /api/sets/:id 		-> Returns one set with its author
		sets.GET("/:id", a.SetFetch)

		// PUT /api/sets/:id 		-> Updates a set owned by the caller
		sets.PUT("/:id", a.SetUpdate)

		// DELETE /api/sets/:id 	-> Deletes a set and its cards
		sets.DELETE("/:id", a.SetDelete)

		// GET /api/sets/:id/cards 	-> Returns the cards of an owned set
		sets.GET("/:id/cards", a.CardFetchBulk)

		// POST /api/sets/:id/cards 	-> Adds a card to an owned set
		sets.POST("/:id/cards", a.CardCreate)

		// PUT /api/sets/:id/cards/:cardId -> Updates a card
		sets.PUT("/:id/cards/:cardId", a.CardUpdate)

		// DELETE /api/sets/:id/cards/:cardId -> Deletes a card
		sets.DELETE("/:id/cards/:cardId", a.CardDelete)
	}

	library := main.Group("/library")
	{
		// GET /api/library 		-> Lists all public sets
		library.GET("", cacheFor(30), a.LibraryFetchBulk)

		// GET /api/library/:id 	-> Public set detail with cards
		library.GET("/:id", a.LibraryFetch)

		// POST /api/library/:id/copy 	-> Copies a public set into the caller's account
		library.POST("/:id/copy", jwt, a.LibraryCopy)
	}

	progress := main.Group("", jwt, bodyLimit)
	{
		// POST /api/study-sessions 	-> Records a completed study/test session
		progress.POST("/study-sessions", a.SessionRecord)

		// GET /api/stats 		-> The caller's stats, zeroed when absent
		progress.GET("/stats", a.StatsFetch)

		// GET /api/achievements 	-> Threshold achievements derived from stats
		progress.GET("/achievements", a.AchievementsFetch)
	}

	adminG := main.Group("/admin", jwt, admin)
	{
		// GET /api/admin/check 	-> 200 iff the caller is an admin
		adminG.GET("/check", a.AdminCheck)

		// GET /api/admin/stats 	-> Site-wide totals
		adminG.GET("/stats", a.AdminStats)

		// GET /api/admin/users 	-> Lists users with their stats
		adminG.GET("/users", a.AdminUsers)

		// DELETE /api/admin/users/:id 	-> Deactivates a user account
		adminG.DELETE("/users/:id", a.AdminUserDelete)

		// GET /api/admin/moderation 	-> Lists all public sets
		adminG.GET("/moderation", a.AdminModeration)

		// POST /api/admin/moderation/:id/unpublish -> Forces a set private
		adminG.POST("/moderation/:id/unpublish", a.AdminModerationUnpublish)

		// DELETE /api/admin/moderation/:id -> Removes a set and its cards
		adminG.DELETE("/moderation/:id", a.AdminModerationDelete)
	}

	return a, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}
