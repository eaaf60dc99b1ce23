// Package app wires the chess engine behind shared HTTP routes for both
// local and Lambda execution.
package app

import (
	"time"

	"github.com/fatihtuzcu28/chess/app/config"
	"github.com/fatihtuzcu28/chess/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the shared HTTP router for both local and Lambda
// execution. With AUTH_ENABLED unset every route is public, which is
// how local development runs.
func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/health", Health)

	protected := router.Group("/")
	if cfg.Auth.Enabled {
		verifier, err := auth.NewVerifier(cfg.Auth.Issuer, cfg.Auth.Audience, "")
		if err != nil {
			return nil, err
		}
		protected.Use(auth.Middleware(verifier))
	}
	protected.POST("/move", GetBestMove)
	protected.POST("/jobs", EnqueueBatch)
	protected.GET("/moves", GetRecentMoves)

	return router, nil
}
