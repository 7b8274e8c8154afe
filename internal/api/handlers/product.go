package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"storefront/internal/catalog"
	"storefront/internal/events"
	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/services/shopify"
	syncer "storefront/internal/sync"
)

type ProductHandler struct {
	store       *catalog.Store
	engine      *syncer.Engine
	remote      *shopify.Client
	publisher   events.Publisher
	logger      *logger.Logger
	transformer *shopify.Transformer
	syncOnRead  bool
}

func NewProductHandler(store *catalog.Store, engine *syncer.Engine, remote *shopify.Client, publisher events.Publisher, logger *logger.Logger, syncOnRead bool) *ProductHandler {
	return &ProductHandler{
		store:       store,
		engine:      engine,
		remote:      remote,
		publisher:   publisher,
		logger:      logger,
		transformer: shopify.NewTransformer(),
		syncOnRead:  syncOnRead,
	}
}

// collectionInput accepts the two collection payload forms callers send:
// a bare string id or a {id,title,handle} object.
type collectionInput struct {
	ID     string
	Title  string
	Handle string
}

func (ci *collectionInput) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &ci.ID)
	}

	var obj struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Handle string `json:"handle"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	ci.ID = obj.ID
	ci.Title = obj.Title
	ci.Handle = obj.Handle
	return nil
}

func collectionEdges(inputs []collectionInput) models.CollectionRefConnection {
	edges := make([]models.CollectionRefEdge, 0, len(inputs))
	for _, input := range inputs {
		edges = append(edges, models.CollectionRefEdge{
			Node: models.CollectionRef{
				ID:     input.ID,
				Title:  input.Title,
				Handle: input.Handle,
			},
		})
	}
	return models.CollectionRefConnection{Edges: edges}
}

// List serves the merged catalog, or a single product when an id query
// param is present. The id transparently addresses either source.
func (h *ProductHandler) List(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		h.getOne(c, id)
		return
	}

	// The original storefront refreshed the remote catalog on every page
	// load. Kept behind a config switch.
	if h.syncOnRead {
		if _, err := h.engine.Synchronize(c.Request.Context()); err != nil {
			h.logger.Error("Sync on read failed, serving local catalog: %v", err)
		}
	}

	collections, err := h.store.Collections(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	raws, err := h.store.Products(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	byID := catalog.BuildCollectionsMap(collections)
	products := make([]models.Product, 0, len(raws))
	for _, raw := range raws {
		products = append(products, catalog.NormalizeProduct(raw, byID))
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"tags":     catalog.TagsUnion(products),
		"vendors":  catalog.VendorsUnion(products),
	})
}

func (h *ProductHandler) getOne(c *gin.Context, id string) {
	raw, err := h.store.FindProduct(c.Request.Context(), catalog.IDQuery(id))
	if err != nil {
		respondError(c, err)
		return
	}
	if raw == nil {
		respondError(c, models.NewNotFoundError("Product not found"))
		return
	}

	product := catalog.NormalizeProduct(*raw, nil)
	c.JSON(http.StatusOK, gin.H{"products": []models.Product{product}})
}

// ByHandle looks a product up in the remote catalog directly.
func (h *ProductHandler) ByHandle(c *gin.Context) {
	handle := c.Param("handle")

	node, err := h.remote.GetProductByHandle(c.Request.Context(), handle)
	if err != nil {
		respondError(c, err)
		return
	}
	if node == nil {
		respondError(c, models.NewNotFoundError("Product not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": h.transformer.TransformProduct(node)})
}

type createProductRequest struct {
	IsVariant       bool              `json:"isVariant"`
	ParentProductID string            `json:"parentProductId"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	ProductType     string            `json:"productType"`
	Vendor          string            `json:"vendor"`
	Price           string            `json:"price"`
	CompareAtPrice  string            `json:"compareAtPrice"`
	SKU             string            `json:"sku"`
	StockQuantity   int               `json:"stockQuantity"`
	Tags            []string          `json:"tags"`
	Collections     []collectionInput `json:"collections"`
	Images          []models.Image    `json:"images"`
}

// Create makes a local product, or appends a variant to an existing product
// when isVariant is set.
func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, models.NewValidationError("invalid request body: %s", err.Error()))
		return
	}

	if req.IsVariant && req.ParentProductID != "" {
		h.createVariant(c, req)
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		respondError(c, models.NewValidationError("Title is required"))
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	price := req.Price
	if price == "" {
		price = "0"
	}

	imageEdges := make([]models.ImageEdge, 0, len(req.Images))
	for _, image := range req.Images {
		if image.AltText == "" {
			image.AltText = title
		}
		imageEdges = append(imageEdges, models.ImageEdge{Node: image})
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	product := models.Product{
		ID:          catalog.NewProductID(),
		Title:       title,
		Description: req.Description,
		Handle:      catalog.Handle(title),
		ProductType: req.ProductType,
		Vendor:      req.Vendor,
		Tags:        tags,
		Variants: models.VariantConnection{
			Edges: []models.VariantEdge{{
				Node: models.Variant{
					ID:               catalog.NewVariantID(),
					Title:            "Default Variant",
					Price:            models.Money{Amount: price, CurrencyCode: models.CurrencyCode},
					CompareAtPrice:   &models.Money{Amount: req.CompareAtPrice, CurrencyCode: models.CurrencyCode},
					SKU:              req.SKU,
					StockQuantity:    req.StockQuantity,
					AvailableForSale: req.StockQuantity > 0,
				},
			}},
		},
		Images:      models.ImageConnection{Edges: imageEdges},
		Collections: collectionEdges(req.Collections),
		Source:      models.SourceLocal,
		IsCustom:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.store.InsertProduct(c.Request.Context(), product); err != nil {
		respondError(c, err)
		return
	}

	h.publish(c, events.Event{Type: events.TypeProductCreated, ProductID: product.ID})
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

func (h *ProductHandler) createVariant(c *gin.Context, req createProductRequest) {
	price := req.Price
	if price == "" {
		price = "0"
	}

	variant := models.Variant{
		ID:               catalog.NewVariantID(),
		Title:            req.Title,
		Price:            models.Money{Amount: price, CurrencyCode: models.CurrencyCode},
		CompareAtPrice:   &models.Money{Amount: req.CompareAtPrice, CurrencyCode: models.CurrencyCode},
		SKU:              req.SKU,
		StockQuantity:    req.StockQuantity,
		AvailableForSale: req.StockQuantity > 0,
	}

	now := time.Now().UTC().Format(time.RFC3339)
	matched, err := h.store.PushVariant(c.Request.Context(), req.ParentProductID, models.VariantEdge{Node: variant}, now)
	if err != nil {
		respondError(c, err)
		return
	}
	if matched == 0 {
		respondError(c, models.NewNotFoundError("Product not found"))
		return
	}

	h.publish(c, events.Event{Type: events.TypeProductUpdated, ProductID: req.ParentProductID})
	c.JSON(http.StatusOK, gin.H{"success": true, "variant": variant})
}

type updateProductRequest struct {
	Title         string                   `json:"title"`
	Description   string                   `json:"description"`
	Vendor        string                   `json:"vendor"`
	ProductType   string                   `json:"productType"`
	StockQuantity int                      `json:"stockQuantity"`
	Tags          []string                 `json:"tags"`
	Collections   []collectionInput        `json:"collections"`
	Variants      models.VariantConnection `json:"variants"`
}

// Update replaces the editable fields of a product wholesale.
func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		respondError(c, models.NewValidationError("Product ID is required"))
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, models.NewValidationError("invalid request body: %s", err.Error()))
		return
	}

	// The top-level stock quantity belongs to the default variant.
	if len(req.Variants.Edges) > 0 {
		node := &req.Variants.Edges[0].Node
		node.StockQuantity = req.StockQuantity
		node.AvailableForSale = req.StockQuantity > 0
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	set := bson.M{
		"title":       req.Title,
		"description": req.Description,
		"vendor":      req.Vendor,
		"productType": req.ProductType,
		"tags":        tags,
		"collections": collectionEdges(req.Collections),
		"variants":    req.Variants,
		"updatedAt":   time.Now().UTC().Format(time.RFC3339),
	}

	matched, err := h.store.UpdateProduct(c.Request.Context(), catalog.IDQuery(id), set)
	if err != nil {
		respondError(c, err)
		return
	}
	if matched == 0 {
		respondError(c, models.NewNotFoundError("Product not found"))
		return
	}

	h.publish(c, events.Event{Type: events.TypeProductUpdated, ProductID: id})
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes a local product, or a single variant when variantId is
// present. Remote-origin products are never deletable through this path.
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		respondError(c, models.NewValidationError("Product ID is required"))
		return
	}

	if variantID := c.Query("variantId"); variantID != "" {
		h.deleteVariant(c, id, variantID)
		return
	}

	filter := catalog.IDQuery(id)
	filter["source"] = models.SourceLocal

	deleted, err := h.store.DeleteProduct(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if deleted == 0 {
		respondError(c, models.NewNotFoundError("Product not found"))
		return
	}

	h.publish(c, events.Event{Type: events.TypeProductDeleted, ProductID: id})
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ProductHandler) deleteVariant(c *gin.Context, productID, variantID string) {
	raw, err := h.store.FindProduct(c.Request.Context(), bson.M{"id": productID})
	if err != nil {
		respondError(c, err)
		return
	}
	if raw == nil {
		respondError(c, models.NewNotFoundError("Product not found"))
		return
	}

	var variants models.VariantConnection
	if raw.Variants != nil {
		variants = *raw.Variants
	}

	updated, err := catalog.RemoveVariant(variants, variantID)
	if err != nil {
		respondError(c, err)
		return
	}

	set := bson.M{
		"variants":  updated,
		"updatedAt": time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := h.store.UpdateProduct(c.Request.Context(), bson.M{"id": productID}, set); err != nil {
		respondError(c, err)
		return
	}

	h.publish(c, events.Event{Type: events.TypeProductUpdated, ProductID: productID})
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ProductHandler) publish(c *gin.Context, event events.Event) {
	if err := h.publisher.Publish(c.Request.Context(), event); err != nil {
		h.logger.Warn("Failed to publish %s event: %v", event.Type, err)
	}
}
