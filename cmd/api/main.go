package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/berberbook/booking-api/internal/config"
	dbpkg "github.com/berberbook/booking-api/internal/db"
	"github.com/berberbook/booking-api/internal/middleware"
	"github.com/berberbook/booking-api/internal/routes"
)

func main() {

	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DurationFieldUnit = time.Millisecond

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	dbpkg.EnsureAdmin(db, cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
