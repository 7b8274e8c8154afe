package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/logger"
	"storefront/internal/models"
)

func sampleProduct(available bool) models.Product {
	return models.Product{
		ID:          "custom-1",
		Title:       "Shirt",
		Description: "A shirt",
		Handle:      "shirt",
		Vendor:      "Acme",
		ProductType: "Apparel",
		Variants: models.VariantConnection{
			Edges: []models.VariantEdge{{
				Node: models.Variant{
					ID:               "variant-1",
					Price:            models.Money{Amount: "199", CurrencyCode: "CZK"},
					AvailableForSale: available,
				},
			}},
		},
		Images: models.ImageConnection{
			Edges: []models.ImageEdge{{Node: models.Image{URL: "https://cdn.example.com/shirt.png"}}},
		},
	}
}

func TestRender(t *testing.T) {
	exporter := New("unused.xml", logger.New("error"))

	data, err := exporter.Render([]models.Product{sampleProduct(true)})
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `<rss version="2.0" xmlns:g="http://base.google.com/ns/1.0">`)
	assert.Contains(t, out, "<g:id>custom-1</g:id>")
	assert.Contains(t, out, "<g:price>199 CZK</g:price>")
	assert.Contains(t, out, "<g:availability>in stock</g:availability>")
	assert.Contains(t, out, "<g:brand>Acme</g:brand>")
	assert.Contains(t, out, "<link>/product/shirt</link>")
	assert.Contains(t, out, "<g:image_link>https://cdn.example.com/shirt.png</g:image_link>")
}

func TestRenderOutOfStock(t *testing.T) {
	exporter := New("unused.xml", logger.New("error"))

	data, err := exporter.Render([]models.Product{sampleProduct(false)})
	require.NoError(t, err)
	assert.Contains(t, string(data), "<g:availability>out of stock</g:availability>")
}

func TestWriteFeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.xml")
	exporter := New(path, logger.New("error"))

	require.NoError(t, exporter.WriteFeed([]models.Product{sampleProduct(true)}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>Shirt</title>")
}
