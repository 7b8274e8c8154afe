package catalog

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/models"
)

// RawProduct is a product document as stored. Several generations of writers
// persisted images and collections in different shapes, so those fields are
// kept as raw BSON and dispatched by the normalizer.
type RawProduct struct {
	OID              primitive.ObjectID        `bson:"_id,omitempty"`
	ID               string                    `bson:"id,omitempty"`
	Title            string                    `bson:"title,omitempty"`
	Description      string                    `bson:"description,omitempty"`
	Handle           string                    `bson:"handle,omitempty"`
	ProductType      string                    `bson:"productType,omitempty"`
	Vendor           string                    `bson:"vendor,omitempty"`
	Tags             []string                  `bson:"tags,omitempty"`
	Variants         *models.VariantConnection `bson:"variants,omitempty"`
	Images           bson.RawValue             `bson:"images,omitempty"`
	Collections      bson.RawValue             `bson:"collections,omitempty"`
	Source           string                    `bson:"source,omitempty"`
	IsShopifyProduct bool                      `bson:"isShopifyProduct,omitempty"`
	IsCustom         bool                      `bson:"isCustom,omitempty"`
	CreatedAt        string                    `bson:"createdAt,omitempty"`
	UpdatedAt        string                    `bson:"updatedAt,omitempty"`
}

// RawCollection is a collection document as stored. Remote collections carry
// a logical id; early local ones only have their storage id.
type RawCollection struct {
	OID                 primitive.ObjectID `bson:"_id,omitempty"`
	ID                  string             `bson:"id,omitempty"`
	Title               string             `bson:"title,omitempty"`
	Handle              string             `bson:"handle,omitempty"`
	Description         string             `bson:"description,omitempty"`
	Source              string             `bson:"source,omitempty"`
	IsShopifyCollection bool               `bson:"isShopifyCollection,omitempty"`
	CreatedAt           string             `bson:"createdAt,omitempty"`
	UpdatedAt           string             `bson:"updatedAt,omitempty"`
}

// CollectionInfo is the lookup value used to refresh denormalized collection
// refs embedded in products.
type CollectionInfo struct {
	Title  string
	Handle string
}

// BuildCollectionsMap indexes collections by logical id, falling back to the
// storage id for local collections created before logical ids existed.
func BuildCollectionsMap(collections []RawCollection) map[string]CollectionInfo {
	byID := make(map[string]CollectionInfo, len(collections))
	for _, c := range collections {
		id := c.ID
		if id == "" {
			id = c.OID.Hex()
		}
		byID[id] = CollectionInfo{Title: c.Title, Handle: c.Handle}
	}
	return byID
}
