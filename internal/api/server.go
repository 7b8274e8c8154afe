package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"storefront/internal/api/handlers"
	"storefront/internal/api/middleware"
	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/events"
	"storefront/internal/logger"
	"storefront/internal/services/shopify"
	syncer "storefront/internal/sync"
)

type Server struct {
	config *config.Config
	logger *logger.Logger
	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config, logger *logger.Logger, db *database.Database, publisher events.Publisher) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))

	store := catalog.NewStore(db.DB)
	client := shopify.NewClient(cfg.ShopifyStoreDomain, cfg.ShopifyStorefrontToken, logger)
	engine := syncer.NewEngine(client, store, logger, cfg.SyncDrainPages)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(store, engine, client, publisher, logger, cfg.SyncOnRead)
	collectionHandler := handlers.NewCollectionHandler(store, logger)
	syncHandler := handlers.NewSyncHandler(engine, publisher, logger)

	// Routes
	apiGroup := router.Group("/api")
	{
		products := apiGroup.Group("/products")
		{
			products.GET("", productHandler.List)
			products.POST("", productHandler.Create)
			products.PUT("", productHandler.Update)
			products.DELETE("", productHandler.Delete)
			products.GET("/handle/:handle", productHandler.ByHandle)
		}

		collections := apiGroup.Group("/collections")
		{
			collections.GET("", collectionHandler.List)
			collections.POST("", collectionHandler.Create)
		}

		apiGroup.POST("/sync", syncHandler.Run)
	}

	return &Server{
		config: cfg,
		logger: logger,
		router: router,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.APIHost, s.config.APIPort)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      cors.Default().Handler(s.router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on " + addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
