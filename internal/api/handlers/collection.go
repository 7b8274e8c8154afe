package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/logger"
	"storefront/internal/models"
)

type CollectionHandler struct {
	store  *catalog.Store
	logger *logger.Logger
}

func NewCollectionHandler(store *catalog.Store, logger *logger.Logger) *CollectionHandler {
	return &CollectionHandler{
		store:  store,
		logger: logger,
	}
}

// List returns every collection from both sources, sorted by title.
func (h *CollectionHandler) List(c *gin.Context) {
	raws, err := h.store.Collections(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	collections := make([]models.Collection, 0, len(raws))
	for _, raw := range raws {
		collections = append(collections, catalog.NormalizeCollection(raw))
	}

	c.JSON(http.StatusOK, gin.H{"collections": collections})
}

type createCollectionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Create makes a local collection. The handle is derived from the title.
func (h *CollectionHandler) Create(c *gin.Context) {
	var req createCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, models.NewValidationError("invalid request body: %s", err.Error()))
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		respondError(c, models.NewValidationError("Title is required"))
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	collection := models.Collection{
		Title:       title,
		Description: req.Description,
		Handle:      catalog.Handle(title),
		Source:      models.SourceLocal,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	insertedID, err := h.store.InsertCollection(c.Request.Context(), collection)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"collectionId": insertedID, "title": title})
}
