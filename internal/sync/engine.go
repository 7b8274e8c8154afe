package sync

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/catalog"
	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/services/shopify"
)

// RemoteCatalog is the slice of the storefront client the engine consumes.
type RemoteCatalog interface {
	ListProducts(ctx context.Context, cursor string) (*shopify.ProductConnection, error)
	ListCollections(ctx context.Context, cursor string) (*shopify.CollectionConnection, error)
}

// Store is the slice of the local catalog store the engine consumes. A
// stronger implementation (atomic upsert under a uniqueness constraint) can
// be substituted without touching the engine.
type Store interface {
	UpsertRemoteProduct(ctx context.Context, product models.Product) error
	UpsertRemoteCollection(ctx context.Context, collection models.Collection) error
	ProductDuplicates(ctx context.Context) ([]catalog.DuplicateGroup, error)
	DeleteProductsByDocID(ctx context.Context, ids []primitive.ObjectID) error
}

type Result struct {
	CollectionsProcessed int `json:"collectionsProcessed"`
	ProductsProcessed    int `json:"productsProcessed"`
}

// Engine reconciles the remote catalog into local storage. It is not
// protected by any lock: concurrent runs may interleave upserts, and
// duplicate cleanup converges the outcome across repeated invocations.
type Engine struct {
	remote      RemoteCatalog
	store       Store
	transformer *shopify.Transformer
	logger      *logger.Logger
	drainPages  bool
}

func NewEngine(remote RemoteCatalog, store Store, logger *logger.Logger, drainPages bool) *Engine {
	return &Engine{
		remote:      remote,
		store:       store,
		transformer: shopify.NewTransformer(),
		logger:      logger,
		drainPages:  drainPages,
	}
}

// Synchronize pulls remote collections and products and upserts them into
// local storage keyed by remote id. The operation is not atomic: the first
// failure aborts the remaining batch and earlier upserts stay committed.
func (e *Engine) Synchronize(ctx context.Context) (Result, error) {
	var result Result

	if err := e.CleanupDuplicates(ctx); err != nil {
		return result, &models.SyncError{Op: "cleanup", Err: err}
	}

	collectionsProcessed, err := e.syncCollections(ctx)
	result.CollectionsProcessed = collectionsProcessed
	if err != nil {
		return result, err
	}

	productsProcessed, err := e.syncProducts(ctx)
	result.ProductsProcessed = productsProcessed
	if err != nil {
		return result, err
	}

	// Concurrent syncs may have raced new duplicates in while we ran.
	if err := e.CleanupDuplicates(ctx); err != nil {
		return result, &models.SyncError{Op: "cleanup", Err: err}
	}

	e.logger.Info("Sync complete: %d collections, %d products", result.CollectionsProcessed, result.ProductsProcessed)
	return result, nil
}

func (e *Engine) syncCollections(ctx context.Context) (int, error) {
	processed := 0
	cursor := ""

	for {
		page, err := e.remote.ListCollections(ctx, cursor)
		if err != nil {
			return processed, &models.SyncError{Op: "fetch collections", Err: err}
		}

		for _, edge := range page.Edges {
			collection := e.transformer.TransformCollection(edge.Node)
			if err := e.store.UpsertRemoteCollection(ctx, collection); err != nil {
				return processed, &models.SyncError{Op: "upsert collection", Err: err}
			}
			processed++
		}

		if !e.drainPages || !page.PageInfo.HasNextPage {
			break
		}
		cursor = page.PageInfo.EndCursor
	}

	return processed, nil
}

func (e *Engine) syncProducts(ctx context.Context) (int, error) {
	processed := 0
	cursor := ""

	for {
		page, err := e.remote.ListProducts(ctx, cursor)
		if err != nil {
			return processed, &models.SyncError{Op: "fetch products", Err: err}
		}

		for _, edge := range page.Edges {
			node := edge.Node
			product := e.transformer.TransformProduct(&node)
			if err := e.store.UpsertRemoteProduct(ctx, product); err != nil {
				return processed, &models.SyncError{Op: "upsert product", Err: err}
			}
			processed++
		}

		if !e.drainPages || !page.PageInfo.HasNextPage {
			break
		}
		cursor = page.PageInfo.EndCursor
	}

	return processed, nil
}

// CleanupDuplicates removes all but the most recently updated document for
// every logical product id that is stored more than once. Ties on updatedAt
// keep the first document encountered.
func (e *Engine) CleanupDuplicates(ctx context.Context) error {
	groups, err := e.store.ProductDuplicates(ctx)
	if err != nil {
		return err
	}

	for _, group := range groups {
		docs := make([]catalog.DuplicateDoc, len(group.Docs))
		copy(docs, group.Docs)
		sort.SliceStable(docs, func(i, j int) bool {
			return docs[i].UpdatedAt > docs[j].UpdatedAt
		})

		if len(docs) < 2 {
			continue
		}

		remove := make([]primitive.ObjectID, 0, len(docs)-1)
		for _, doc := range docs[1:] {
			remove = append(remove, doc.DocID)
		}

		e.logger.Debug("Removing %d duplicate documents for product %s", len(remove), group.ID)
		if err := e.store.DeleteProductsByDocID(ctx, remove); err != nil {
			return err
		}
	}

	return nil
}
