package shopify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
)

func TestTransformProduct(t *testing.T) {
	node := &ProductNode{
		ID:          "gid://shopify/Product/1",
		Title:       "Shoe",
		Handle:      "shoe",
		Description: "A shoe",
		ProductType: "Footwear",
		Vendor:      "Acme",
		Tags:        []string{"sale"},
		Collections: &CollectionConnection{
			Edges: []CollectionEdge{
				{Node: CollectionNode{ID: "gid://shopify/Collection/1", Title: "Shoes", Handle: "shoes"}},
			},
		},
		Variants: VariantConnection{
			Edges: []VariantEdge{
				{Node: VariantNode{
					ID:               "gid://shopify/ProductVariant/1",
					Title:            "Default",
					Price:            &Money{Amount: "10.0", CurrencyCode: "CZK"},
					SKU:              "SKU-1",
					AvailableForSale: true,
				}},
			},
		},
		Images: &ImageConnection{
			Edges: []ImageEdge{
				{Node: ImageNode{URL: "https://cdn.example.com/a.png", AltText: "A"}},
			},
		},
	}

	product := NewTransformer().TransformProduct(node)

	assert.Equal(t, "gid://shopify/Product/1", product.ID)
	assert.Equal(t, models.SourceRemote, product.Source)
	assert.True(t, product.IsShopifyProduct)
	assert.Equal(t, []string{"sale"}, product.Tags)
	require.Len(t, product.Collections.Edges, 1)
	assert.Equal(t, "Shoes", product.Collections.Edges[0].Node.Title)
	require.Len(t, product.Images.Edges, 1)
	assert.Equal(t, "https://cdn.example.com/a.png", product.Images.Edges[0].Node.URL)
	assert.NotEmpty(t, product.CreatedAt)
	assert.NotEmpty(t, product.UpdatedAt)

	require.Len(t, product.Variants.Edges, 1)
	variant := product.Variants.Edges[0].Node
	assert.Equal(t, models.Money{Amount: "10.0", CurrencyCode: "CZK"}, variant.Price)
	assert.Equal(t, 1, variant.StockQuantity)
	assert.True(t, variant.AvailableForSale)
	assert.True(t, variant.IsShopifyVariant)
}

func TestTransformProductDefaults(t *testing.T) {
	node := &ProductNode{
		ID: "gid://shopify/Product/2",
		Variants: VariantConnection{
			Edges: []VariantEdge{
				{Node: VariantNode{ID: "gid://shopify/ProductVariant/2"}},
			},
		},
	}

	product := NewTransformer().TransformProduct(node)

	assert.NotNil(t, product.Tags)
	assert.Empty(t, product.Tags)
	assert.Empty(t, product.Collections.Edges)
	assert.Empty(t, product.Images.Edges)

	variant := product.Variants.Edges[0].Node
	assert.Equal(t, models.Money{Amount: "0", CurrencyCode: models.CurrencyCode}, variant.Price)
	require.NotNil(t, variant.CompareAtPrice)
	assert.Equal(t, models.CurrencyCode, variant.CompareAtPrice.CurrencyCode)
	assert.Equal(t, 0, variant.StockQuantity)
	assert.False(t, variant.AvailableForSale)
}

func TestTransformCollection(t *testing.T) {
	node := CollectionNode{
		ID:          "gid://shopify/Collection/1",
		Title:       "Shoes",
		Handle:      "shoes",
		Description: "All shoes",
	}

	collection := NewTransformer().TransformCollection(node)

	assert.Equal(t, "gid://shopify/Collection/1", collection.ID)
	assert.Equal(t, models.SourceRemote, collection.Source)
	assert.True(t, collection.IsShopifyCollection)
	assert.NotEmpty(t, collection.CreatedAt)
}
