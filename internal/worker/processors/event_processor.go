package processors

import (
	"context"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/events"
	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/worker/processors/export"
	"storefront/internal/worker/processors/validation"
)

type EventProcessor struct {
	config    *config.Config
	logger    *logger.Logger
	store     *catalog.Store
	validator *validation.Validator
	exporter  *export.Exporter
}

func NewEventProcessor(cfg *config.Config, logger *logger.Logger, store *catalog.Store) *EventProcessor {
	return &EventProcessor{
		config:    cfg,
		logger:    logger,
		store:     store,
		validator: validation.New(logger),
		exporter:  export.New(cfg.FeedExportPath, logger),
	}
}

func (ep *EventProcessor) Process(event events.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch event.Type {
	case events.TypeProductCreated, events.TypeProductUpdated:
		return ep.validateProduct(ctx, event.ProductID)
	case events.TypeProductDeleted:
		ep.logger.Info("Product %s deleted", event.ProductID)
		return nil
	case events.TypeCatalogSynced:
		return ep.exportFeed(ctx)
	default:
		ep.logger.Debug("Unhandled event type: %s", event.Type)
		return nil
	}
}

func (ep *EventProcessor) validateProduct(ctx context.Context, productID string) error {
	raw, err := ep.store.FindProduct(ctx, catalog.IDQuery(productID))
	if err != nil {
		return err
	}
	if raw == nil {
		ep.logger.Warn("Product %s no longer exists, skipping validation", productID)
		return nil
	}

	product := catalog.NormalizeProduct(*raw, nil)
	issues := ep.validator.ValidateProduct(product)
	for _, issue := range issues {
		ep.logger.Warn("Product %s: %s", productID, issue)
	}

	return nil
}

func (ep *EventProcessor) exportFeed(ctx context.Context) error {
	collections, err := ep.store.Collections(ctx)
	if err != nil {
		return err
	}

	raws, err := ep.store.Products(ctx)
	if err != nil {
		return err
	}

	byID := catalog.BuildCollectionsMap(collections)
	products := make([]models.Product, 0, len(raws))
	for _, raw := range raws {
		products = append(products, catalog.NormalizeProduct(raw, byID))
	}

	return ep.exporter.WriteFeed(products)
}
