package catalog

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/database"
	"storefront/internal/models"
)

// DuplicateGroup is one logical product id that is present in more than one
// stored document.
type DuplicateGroup struct {
	ID    string         `bson:"_id"`
	Count int            `bson:"count"`
	Docs  []DuplicateDoc `bson:"docs"`
}

type DuplicateDoc struct {
	DocID     primitive.ObjectID `bson:"_id"`
	UpdatedAt string             `bson:"updatedAt"`
}

// Store is the document-backed local catalog. Upserts are idempotent per
// record; nothing here takes a lock, duplicate cleanup compensates instead.
type Store struct {
	products    *mongo.Collection
	collections *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		products:    db.Collection(database.ProductsCollection),
		collections: db.Collection(database.CollectionsCollection),
	}
}

func (s *Store) Products(ctx context.Context) ([]RawProduct, error) {
	cursor, err := s.products.Find(ctx, bson.M{})
	if err != nil {
		return nil, &models.StoreError{Op: "find products", Err: err}
	}

	var products []RawProduct
	if err := cursor.All(ctx, &products); err != nil {
		return nil, &models.StoreError{Op: "decode products", Err: err}
	}
	return products, nil
}

// FindProduct returns nil without error when no document matches.
func (s *Store) FindProduct(ctx context.Context, filter bson.M) (*RawProduct, error) {
	var product RawProduct
	err := s.products.FindOne(ctx, filter).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &models.StoreError{Op: "find product", Err: err}
	}
	return &product, nil
}

func (s *Store) InsertProduct(ctx context.Context, product models.Product) error {
	if _, err := s.products.InsertOne(ctx, product); err != nil {
		return &models.StoreError{Op: "insert product", Err: err}
	}
	return nil
}

// UpsertRemoteProduct writes a remote-sourced product keyed by its logical
// id. createdAt is set on first insert only; updatedAt advances on every
// sync even when nothing else changed.
func (s *Store) UpsertRemoteProduct(ctx context.Context, product models.Product) error {
	update := bson.M{
		"$set": bson.M{
			"id":               product.ID,
			"title":            product.Title,
			"handle":           product.Handle,
			"description":      product.Description,
			"productType":      product.ProductType,
			"vendor":           product.Vendor,
			"tags":             product.Tags,
			"collections":      product.Collections,
			"variants":         product.Variants,
			"images":           product.Images,
			"source":           models.SourceRemote,
			"isShopifyProduct": true,
			"updatedAt":        product.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"createdAt": product.CreatedAt,
		},
	}

	_, err := s.products.UpdateOne(ctx, bson.M{"id": product.ID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return &models.StoreError{Op: "upsert product", Err: err}
	}
	return nil
}

func (s *Store) UpdateProduct(ctx context.Context, filter bson.M, set bson.M) (int64, error) {
	result, err := s.products.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, &models.StoreError{Op: "update product", Err: err}
	}
	return result.MatchedCount, nil
}

func (s *Store) PushVariant(ctx context.Context, productID string, edge models.VariantEdge, updatedAt string) (int64, error) {
	update := bson.M{
		"$push": bson.M{"variants.edges": edge},
		"$set":  bson.M{"updatedAt": updatedAt},
	}

	result, err := s.products.UpdateOne(ctx, bson.M{"id": productID}, update)
	if err != nil {
		return 0, &models.StoreError{Op: "push variant", Err: err}
	}
	return result.MatchedCount, nil
}

func (s *Store) DeleteProduct(ctx context.Context, filter bson.M) (int64, error) {
	result, err := s.products.DeleteOne(ctx, filter)
	if err != nil {
		return 0, &models.StoreError{Op: "delete product", Err: err}
	}
	return result.DeletedCount, nil
}

// ProductDuplicates groups product documents by logical id and returns the
// groups holding more than one document.
func (s *Store) ProductDuplicates(ctx context.Context) ([]DuplicateGroup, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$id",
			"count": bson.M{"$sum": 1},
			"docs":  bson.M{"$push": bson.M{"_id": "$_id", "updatedAt": "$updatedAt"}},
		}}},
		{{Key: "$match", Value: bson.M{
			"count": bson.M{"$gt": 1},
		}}},
	}

	cursor, err := s.products.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, &models.StoreError{Op: "aggregate duplicates", Err: err}
	}

	var groups []DuplicateGroup
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, &models.StoreError{Op: "decode duplicates", Err: err}
	}
	return groups, nil
}

func (s *Store) DeleteProductsByDocID(ctx context.Context, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := s.products.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return &models.StoreError{Op: "delete duplicate products", Err: err}
	}
	return nil
}

// Collections returns all collection documents sorted by title.
func (s *Store) Collections(ctx context.Context) ([]RawCollection, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cursor, err := s.collections.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, &models.StoreError{Op: "find collections", Err: err}
	}

	var collections []RawCollection
	if err := cursor.All(ctx, &collections); err != nil {
		return nil, &models.StoreError{Op: "decode collections", Err: err}
	}
	return collections, nil
}

func (s *Store) InsertCollection(ctx context.Context, collection models.Collection) (string, error) {
	result, err := s.collections.InsertOne(ctx, collection)
	if err != nil {
		return "", &models.StoreError{Op: "insert collection", Err: err}
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", nil
}

// UpsertRemoteCollection mirrors UpsertRemoteProduct for collections.
func (s *Store) UpsertRemoteCollection(ctx context.Context, collection models.Collection) error {
	update := bson.M{
		"$set": bson.M{
			"id":                  collection.ID,
			"title":               collection.Title,
			"handle":              collection.Handle,
			"description":         collection.Description,
			"source":              models.SourceRemote,
			"isShopifyCollection": true,
			"updatedAt":           collection.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"createdAt": collection.CreatedAt,
		},
	}

	_, err := s.collections.UpdateOne(ctx, bson.M{"id": collection.ID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return &models.StoreError{Op: "upsert collection", Err: err}
	}
	return nil
}
