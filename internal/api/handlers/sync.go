package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/events"
	"storefront/internal/logger"
	syncer "storefront/internal/sync"
)

type SyncHandler struct {
	engine    *syncer.Engine
	publisher events.Publisher
	logger    *logger.Logger
}

func NewSyncHandler(engine *syncer.Engine, publisher events.Publisher, logger *logger.Logger) *SyncHandler {
	return &SyncHandler{
		engine:    engine,
		publisher: publisher,
		logger:    logger,
	}
}

// Run triggers a full remote catalog synchronization.
func (h *SyncHandler) Run(c *gin.Context) {
	result, err := h.engine.Synchronize(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	event := events.Event{
		Type: events.TypeCatalogSynced,
		Data: map[string]interface{}{
			"collectionsProcessed": result.CollectionsProcessed,
			"productsProcessed":    result.ProductsProcessed,
		},
	}
	if err := h.publisher.Publish(c.Request.Context(), event); err != nil {
		h.logger.Warn("Failed to publish %s event: %v", event.Type, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":              true,
		"collectionsProcessed": result.CollectionsProcessed,
		"productsProcessed":    result.ProductsProcessed,
	})
}
