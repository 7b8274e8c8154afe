package models

// Source of a catalog record. Exactly one of the IsShopifyProduct/IsCustom
// flags is true per product; Source is the canonical form of that pair.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

// CurrencyCode is fixed across the whole catalog.
const CurrencyCode = "CZK"

// Money is a decimal amount carried as a string, the way the storefront API
// returns it.
type Money struct {
	Amount       string `json:"amount" bson:"amount"`
	CurrencyCode string `json:"currencyCode" bson:"currencyCode"`
}

// Variant is a sellable variation of a product. The variant at index 0 of a
// product's variant list is the default variant and is never deletable.
type Variant struct {
	ID               string `json:"id" bson:"id"`
	Title            string `json:"title" bson:"title"`
	Price            Money  `json:"price" bson:"price"`
	CompareAtPrice   *Money `json:"compareAtPrice,omitempty" bson:"compareAtPrice,omitempty"`
	SKU              string `json:"sku" bson:"sku"`
	StockQuantity    int    `json:"stockQuantity" bson:"stockQuantity"`
	AvailableForSale bool   `json:"availableForSale" bson:"availableForSale"`
	IsShopifyVariant bool   `json:"isShopifyVariant,omitempty" bson:"isShopifyVariant,omitempty"`
}

type VariantEdge struct {
	Node Variant `json:"node" bson:"node"`
}

type VariantConnection struct {
	Edges []VariantEdge `json:"edges" bson:"edges"`
}

type Image struct {
	URL     string `json:"url" bson:"url"`
	AltText string `json:"altText,omitempty" bson:"altText,omitempty"`
}

type ImageEdge struct {
	Node Image `json:"node" bson:"node"`
}

type ImageConnection struct {
	Edges []ImageEdge `json:"edges" bson:"edges"`
}

// CollectionRef is a denormalized pointer to a collection embedded in a
// product. Title and handle may be stale; they are refreshed from the
// collections table at read time.
type CollectionRef struct {
	ID     string `json:"id" bson:"id"`
	Title  string `json:"title" bson:"title"`
	Handle string `json:"handle,omitempty" bson:"handle,omitempty"`
}

type CollectionRefEdge struct {
	Node CollectionRef `json:"node" bson:"node"`
}

type CollectionRefConnection struct {
	Edges []CollectionRefEdge `json:"edges" bson:"edges"`
}

// Product is the canonical merged-catalog product shape. Remote-sourced ids
// are gid:// URIs, locally-created ids are "custom-<timestamp>".
type Product struct {
	DocID            string                  `json:"_id,omitempty" bson:"-"`
	ID               string                  `json:"id" bson:"id"`
	Title            string                  `json:"title" bson:"title"`
	Description      string                  `json:"description" bson:"description"`
	Handle           string                  `json:"handle" bson:"handle"`
	ProductType      string                  `json:"productType" bson:"productType"`
	Vendor           string                  `json:"vendor" bson:"vendor"`
	Tags             []string                `json:"tags" bson:"tags"`
	Variants         VariantConnection       `json:"variants" bson:"variants"`
	Images           ImageConnection         `json:"images" bson:"images"`
	Collections      CollectionRefConnection `json:"collections" bson:"collections"`
	Source           string                  `json:"source" bson:"source"`
	IsShopifyProduct bool                    `json:"isShopifyProduct,omitempty" bson:"isShopifyProduct,omitempty"`
	IsCustom         bool                    `json:"isCustom,omitempty" bson:"isCustom,omitempty"`
	CreatedAt        string                  `json:"createdAt" bson:"createdAt"`
	UpdatedAt        string                  `json:"updatedAt" bson:"updatedAt"`
}
