package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/coinpulse/crypto-news-search/internal/api/handlers"
	"github.com/coinpulse/crypto-news-search/internal/config"
	"github.com/coinpulse/crypto-news-search/internal/middleware"
	"github.com/coinpulse/crypto-news-search/internal/news"
	"github.com/coinpulse/crypto-news-search/internal/news/provider"
)

// SetupRouter wires the engine and handlers into a gin router. The engine is
// constructed once here and shared by every route.
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middleware.RequestTiming())

	newsClient := provider.NewNewsDataClient(cfg)
	engine := news.NewEngine(newsClient, cfg.CacheTTL, cfg.CacheMaxEntries)

	searchHandler := handlers.NewSearchHandler(engine)
	statsHandler := handlers.NewStatsHandler(engine)
	liveHandler := handlers.NewLiveHandler(engine)

	api := r.Group("/api/v1")
	{
		api.GET("/news", searchHandler.Search)
		api.GET("/stats", statsHandler.Stats)
	}

	r.GET("/ws", liveHandler.Serve)
	r.GET("/health", handlers.Health)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
