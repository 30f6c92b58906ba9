package main

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"toy-marketplace/internal/config"
	"toy-marketplace/internal/database"
	"toy-marketplace/internal/handlers"
	"toy-marketplace/internal/logger"
	"toy-marketplace/internal/payments"
	"toy-marketplace/internal/routes"
)

// corsConfig allows the configured origins; credentialed requests are only
// possible with an explicit origin list, never with the wildcard default.
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}
	if len(origins) == 1 && origins[0] == "*" {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

func main() {
	cfg := config.LoadConfig()
	log := logger.New("api")

	client := database.Connect(cfg.MongoURI)
	db := client.Database(cfg.MongoDB)
	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	intents := payments.NewStripeClient(cfg.StripeSecretKey)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handlers.RequestLogger(log))
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	routes.RegisterRoutes(router, db, intents, log)

	log.Info().Str("port", cfg.Port).Msg("toy marketplace server running")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
