package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/models"
)

// rawProduct round-trips a document through BSON so the raw-value fields
// carry exactly what a stored document would.
func rawProduct(t *testing.T, doc bson.M) RawProduct {
	t.Helper()

	data, err := bson.Marshal(doc)
	require.NoError(t, err)

	var raw RawProduct
	require.NoError(t, bson.Unmarshal(data, &raw))
	return raw
}

func rawCollection(t *testing.T, doc bson.M) RawCollection {
	t.Helper()

	data, err := bson.Marshal(doc)
	require.NoError(t, err)

	var raw RawCollection
	require.NoError(t, bson.Unmarshal(data, &raw))
	return raw
}

func TestNormalizeImagesLegacyShapes(t *testing.T) {
	want := models.ImageConnection{
		Edges: []models.ImageEdge{
			{Node: models.Image{URL: "https://cdn.example.com/a.png", AltText: "A"}},
		},
	}

	tests := []struct {
		name string
		doc  bson.M
	}{
		{
			name: "edge node connection",
			doc: bson.M{
				"id": "custom-1",
				"images": bson.M{
					"edges": []bson.M{
						{"node": bson.M{"url": "https://cdn.example.com/a.png", "altText": "A"}},
					},
				},
			},
		},
		{
			name: "bare array of objects",
			doc: bson.M{
				"id": "custom-1",
				"images": []bson.M{
					{"url": "https://cdn.example.com/a.png", "altText": "A"},
				},
			},
		},
		{
			name: "single object",
			doc: bson.M{
				"id":     "custom-1",
				"images": bson.M{"url": "https://cdn.example.com/a.png", "altText": "A"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := NormalizeProduct(rawProduct(t, tt.doc), nil)
			assert.Equal(t, want, product.Images)
		})
	}
}

func TestNormalizeImagesStringArray(t *testing.T) {
	raw := rawProduct(t, bson.M{
		"id":     "custom-1",
		"images": []string{"https://cdn.example.com/a.png", "https://cdn.example.com/b.png"},
	})

	product := NormalizeProduct(raw, nil)
	require.Len(t, product.Images.Edges, 2)
	assert.Equal(t, "https://cdn.example.com/a.png", product.Images.Edges[0].Node.URL)
	assert.Equal(t, "https://cdn.example.com/b.png", product.Images.Edges[1].Node.URL)
}

func TestNormalizeImagesAbsent(t *testing.T) {
	product := NormalizeProduct(rawProduct(t, bson.M{"id": "custom-1"}), nil)
	assert.Equal(t, models.ImageConnection{Edges: []models.ImageEdge{}}, product.Images)
}

func TestNormalizeVariantsSynthesizesDefault(t *testing.T) {
	product := NormalizeProduct(rawProduct(t, bson.M{"id": "custom-42", "title": "Shirt"}), nil)

	require.Len(t, product.Variants.Edges, 1)
	variant := product.Variants.Edges[0].Node
	assert.Equal(t, "variant-custom-42", variant.ID)
	assert.Equal(t, "Default Variant", variant.Title)
	assert.Equal(t, models.Money{Amount: "0", CurrencyCode: models.CurrencyCode}, variant.Price)
	assert.Empty(t, variant.SKU)
	assert.True(t, variant.AvailableForSale)
}

func TestNormalizeVariantsKeepsStoredEdges(t *testing.T) {
	raw := rawProduct(t, bson.M{
		"id": "custom-42",
		"variants": bson.M{
			"edges": []bson.M{
				{"node": bson.M{"id": "variant-1", "title": "Small"}},
			},
		},
	})

	product := NormalizeProduct(raw, nil)
	require.Len(t, product.Variants.Edges, 1)
	assert.Equal(t, "variant-1", product.Variants.Edges[0].Node.ID)
}

func TestNormalizeCollectionRefsEdgesShape(t *testing.T) {
	byID := map[string]CollectionInfo{
		"gid://shopify/Collection/1": {Title: "Shoes", Handle: "shoes"},
	}

	raw := rawProduct(t, bson.M{
		"id": "custom-1",
		"collections": bson.M{
			"edges": []bson.M{
				{"node": bson.M{"id": "gid://shopify/Collection/1", "title": "Old Title"}},
			},
		},
	})

	product := NormalizeProduct(raw, byID)
	require.Len(t, product.Collections.Edges, 1)
	node := product.Collections.Edges[0].Node
	assert.Equal(t, "gid://shopify/Collection/1", node.ID)
	assert.Equal(t, "Shoes", node.Title)
	assert.Equal(t, "shoes", node.Handle)
}

func TestNormalizeCollectionRefsBareIDArray(t *testing.T) {
	byID := map[string]CollectionInfo{
		"col-1": {Title: "Accessories", Handle: "accessories"},
	}

	raw := rawProduct(t, bson.M{
		"id":          "custom-1",
		"collections": []string{"col-1", "col-unknown"},
	})

	product := NormalizeProduct(raw, byID)
	require.Len(t, product.Collections.Edges, 2)
	assert.Equal(t, "Accessories", product.Collections.Edges[0].Node.Title)
	// Unknown refs keep their id and stay otherwise empty.
	assert.Equal(t, "col-unknown", product.Collections.Edges[1].Node.ID)
	assert.Empty(t, product.Collections.Edges[1].Node.Title)
}

func TestNormalizeCollectionRefsMalformedNodeRepaired(t *testing.T) {
	raw := rawProduct(t, bson.M{
		"id": "custom-1",
		"collections": bson.M{
			"edges": []bson.M{
				{"cursor": "abc"},
			},
		},
	})

	product := NormalizeProduct(raw, nil)
	require.Len(t, product.Collections.Edges, 1)
	assert.Empty(t, product.Collections.Edges[0].Node.ID)
}

func TestNormalizeProductSourceDerivation(t *testing.T) {
	remote := NormalizeProduct(rawProduct(t, bson.M{"id": "gid://shopify/Product/1", "isShopifyProduct": true}), nil)
	assert.Equal(t, models.SourceRemote, remote.Source)

	local := NormalizeProduct(rawProduct(t, bson.M{"id": "custom-1"}), nil)
	assert.Equal(t, models.SourceLocal, local.Source)

	explicit := NormalizeProduct(rawProduct(t, bson.M{"id": "custom-2", "source": models.SourceLocal}), nil)
	assert.Equal(t, models.SourceLocal, explicit.Source)
}

func TestNormalizeProductTagsNeverNil(t *testing.T) {
	product := NormalizeProduct(rawProduct(t, bson.M{"id": "custom-1"}), nil)
	assert.NotNil(t, product.Tags)
	assert.Empty(t, product.Tags)
}

func TestNormalizeCollectionIDFallsBackToStorageID(t *testing.T) {
	oid := primitive.NewObjectID()
	raw := rawCollection(t, bson.M{"_id": oid, "title": "Sale"})

	collection := NormalizeCollection(raw)
	assert.Equal(t, oid.Hex(), collection.ID)
	assert.Equal(t, oid.Hex(), collection.DocID)
	assert.Equal(t, models.SourceLocal, collection.Source)
}

func TestNormalizeCollectionRemoteSource(t *testing.T) {
	raw := rawCollection(t, bson.M{
		"id":                  "gid://shopify/Collection/9",
		"title":               "New",
		"isShopifyCollection": true,
	})

	collection := NormalizeCollection(raw)
	assert.Equal(t, "gid://shopify/Collection/9", collection.ID)
	assert.Equal(t, models.SourceRemote, collection.Source)
}

func TestBuildCollectionsMap(t *testing.T) {
	oid := primitive.NewObjectID()
	collections := []RawCollection{
		rawCollection(t, bson.M{"id": "gid://shopify/Collection/1", "title": "Shoes", "handle": "shoes"}),
		rawCollection(t, bson.M{"_id": oid, "title": "Local Picks", "handle": "local-picks"}),
	}

	byID := BuildCollectionsMap(collections)
	assert.Equal(t, CollectionInfo{Title: "Shoes", Handle: "shoes"}, byID["gid://shopify/Collection/1"])
	assert.Equal(t, CollectionInfo{Title: "Local Picks", Handle: "local-picks"}, byID[oid.Hex()])
}
