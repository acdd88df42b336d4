package main

import (
	"log"

	_ "github.com/coinpulse/crypto-news-search/docs"
	"github.com/coinpulse/crypto-news-search/internal/api/routes"
	"github.com/coinpulse/crypto-news-search/internal/config"
	"github.com/coinpulse/crypto-news-search/internal/observability"
)

// @title           Crypto News Search API
// @version         1.0
// @description     Search API for recent cryptocurrency news with sentiment labels, backed by NewsData.io with a process-local result cache.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080

func main() {
	cfg := config.LoadConfig()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	r := routes.SetupRouter(cfg)

	log.Printf("Server listening on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
