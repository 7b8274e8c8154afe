package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/logger"
	"storefront/internal/models"
)

func validProduct() models.Product {
	return models.Product{
		ID:     "custom-1",
		Title:  "Shirt",
		Handle: "shirt",
		Source: models.SourceLocal,
		Variants: models.VariantConnection{
			Edges: []models.VariantEdge{{
				Node: models.Variant{
					ID:               "variant-1",
					Price:            models.Money{Amount: "199", CurrencyCode: "CZK"},
					StockQuantity:    3,
					AvailableForSale: true,
				},
			}},
		},
	}
}

func TestValidateProductClean(t *testing.T) {
	assert.Empty(t, New(logger.New("error")).ValidateProduct(validProduct()))
}

func TestValidateProductMissingFields(t *testing.T) {
	product := validProduct()
	product.Title = ""
	product.Handle = ""
	product.Variants.Edges = nil

	issues := New(logger.New("error")).ValidateProduct(product)
	assert.Contains(t, issues, "missing title")
	assert.Contains(t, issues, "missing handle")
	assert.Contains(t, issues, "no variants")
}

func TestValidateProductBadPrice(t *testing.T) {
	product := validProduct()
	product.Variants.Edges[0].Node.Price.Amount = "free"

	issues := New(logger.New("error")).ValidateProduct(product)
	assert.Len(t, issues, 1)
	assert.Contains(t, issues[0], "unparseable price")
}

func TestValidateProductAvailabilityMismatch(t *testing.T) {
	product := validProduct()
	product.Variants.Edges[0].Node.StockQuantity = 0

	issues := New(logger.New("error")).ValidateProduct(product)
	assert.Len(t, issues, 1)
	assert.Contains(t, issues[0], "availableForSale disagrees")
}

func TestValidateProductRemoteAvailabilityExempt(t *testing.T) {
	product := validProduct()
	product.Source = models.SourceRemote
	product.Variants.Edges[0].Node.StockQuantity = 0

	assert.Empty(t, New(logger.New("error")).ValidateProduct(product))
}
