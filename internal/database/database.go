package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ProductsCollection    = "products"
	CollectionsCollection = "collections"
)

type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// New connects to MongoDB and makes sure the catalog collections and their
// indexes exist. The connection is acquired once at startup and lives for
// the process lifetime.
func New(uri, dbName string) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := client.Database(dbName)

	if err := ensureCollections(ctx, db); err != nil {
		return nil, err
	}

	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	return &Database{Client: client, DB: db}, nil
}

func ensureCollections(ctx context.Context, db *mongo.Database) error {
	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	names := map[string]bool{}
	for _, name := range existing {
		names[name] = true
	}

	for _, name := range []string{ProductsCollection, CollectionsCollection} {
		if names[name] {
			continue
		}
		if err := db.CreateCollection(ctx, name); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}
	}

	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	// The logical id index is intentionally NOT unique: concurrent syncs may
	// transiently insert duplicates, and duplicate cleanup converges them.
	for _, name := range []string{ProductsCollection, CollectionsCollection} {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetName("id_single"),
		})
		if err != nil {
			return fmt.Errorf("failed to create id index on %s: %w", name, err)
		}
	}

	return nil
}

func (d *Database) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return d.Client.Disconnect(ctx)
}
