package shopify

import (
	"time"

	"storefront/internal/models"
)

type Transformer struct{}

func NewTransformer() *Transformer {
	return &Transformer{}
}

// TransformProduct converts a storefront product node to the canonical
// catalog shape. Missing nested values degrade to defaults instead of
// failing; remote variants keep their availableForSale flag verbatim.
func (t *Transformer) TransformProduct(node *ProductNode) models.Product {
	now := time.Now().UTC().Format(time.RFC3339)

	collections := models.CollectionRefConnection{Edges: []models.CollectionRefEdge{}}
	if node.Collections != nil {
		for _, edge := range node.Collections.Edges {
			collections.Edges = append(collections.Edges, models.CollectionRefEdge{
				Node: models.CollectionRef{
					ID:     edge.Node.ID,
					Title:  edge.Node.Title,
					Handle: edge.Node.Handle,
				},
			})
		}
	}

	variants := models.VariantConnection{Edges: []models.VariantEdge{}}
	for _, edge := range node.Variants.Edges {
		variants.Edges = append(variants.Edges, models.VariantEdge{
			Node: t.transformVariant(edge.Node),
		})
	}

	images := models.ImageConnection{Edges: []models.ImageEdge{}}
	if node.Images != nil {
		for _, edge := range node.Images.Edges {
			images.Edges = append(images.Edges, models.ImageEdge{
				Node: models.Image{URL: edge.Node.URL, AltText: edge.Node.AltText},
			})
		}
	}

	tags := node.Tags
	if tags == nil {
		tags = []string{}
	}

	return models.Product{
		ID:               node.ID,
		Title:            node.Title,
		Handle:           node.Handle,
		Description:      node.Description,
		ProductType:      node.ProductType,
		Vendor:           node.Vendor,
		Tags:             tags,
		Collections:      collections,
		Variants:         variants,
		Images:           images,
		Source:           models.SourceRemote,
		IsShopifyProduct: true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (t *Transformer) transformVariant(node VariantNode) models.Variant {
	price := models.Money{Amount: "0", CurrencyCode: models.CurrencyCode}
	if node.Price != nil {
		price = models.Money{Amount: node.Price.Amount, CurrencyCode: node.Price.CurrencyCode}
	}

	compareAt := &models.Money{Amount: "", CurrencyCode: models.CurrencyCode}
	if node.CompareAtPrice != nil {
		compareAt = &models.Money{Amount: node.CompareAtPrice.Amount, CurrencyCode: node.CompareAtPrice.CurrencyCode}
	}

	stock := 0
	if node.AvailableForSale {
		stock = 1
	}

	return models.Variant{
		ID:               node.ID,
		Title:            node.Title,
		Price:            price,
		CompareAtPrice:   compareAt,
		SKU:              node.SKU,
		StockQuantity:    stock,
		AvailableForSale: node.AvailableForSale,
		IsShopifyVariant: true,
	}
}

// TransformCollection converts a storefront collection node to the canonical
// catalog shape.
func (t *Transformer) TransformCollection(node CollectionNode) models.Collection {
	now := time.Now().UTC().Format(time.RFC3339)

	return models.Collection{
		ID:                  node.ID,
		Title:               node.Title,
		Handle:              node.Handle,
		Description:         node.Description,
		Source:              models.SourceRemote,
		IsShopifyCollection: true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}
