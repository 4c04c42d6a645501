package router

import (
	"fmt"
	"net/http"

	"github.com/AkhilKonduru1/Eventure/internal/adventure"
	"github.com/AkhilKonduru1/Eventure/internal/config"
	"github.com/AkhilKonduru1/Eventure/internal/handler"
	"github.com/AkhilKonduru1/Eventure/internal/middleware"
	"github.com/AkhilKonduru1/Eventure/internal/session"
	"github.com/AkhilKonduru1/Eventure/internal/store"
	"github.com/AkhilKonduru1/Eventure/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and wires all API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	// every handler is a boundary: unhandled faults become a generic 500
	// carrying the fault's string description
	r.Use(gin.Logger(), gin.CustomRecovery(func(c *gin.Context, err any) {
		util.Error(c, http.StatusInternalServerError, fmt.Sprintf("Server error: %v", err))
	}))

	r.GET("/health", handler.Health)

	cookieName := cfg.Session.CookieName
	if cookieName == "" {
		cookieName = session.DefaultCookieName
	}

	authHandler := handler.NewAuthHandler(store.NewUserStore(db), cfg.Session)
	r.POST("/auth/signup", authHandler.Signup)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/logout", authHandler.Logout)

	protected := r.Group("")
	protected.Use(middleware.Auth(cfg.Session.Secret, cookieName))

	protected.GET("/auth/me", authHandler.Me)

	advHandler := handler.NewAdventureHandler(
		adventure.New(),
		store.NewSavedAdventureStore(db),
	)
	protected.POST("/adventures/discover", advHandler.Discover)
	protected.POST("/adventures/save", advHandler.Save)
	protected.GET("/adventures/memories", advHandler.Memories)
	protected.GET("/adventures/memories/export", advHandler.ExportMemories)

	return r
}
