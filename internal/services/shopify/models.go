package shopify

// Shapes returned by the Shopify Storefront GraphQL API. Optional fields are
// pointers so missing values survive decoding and can be defaulted by the
// transformer.

type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type CollectionNode struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Handle      string `json:"handle"`
	Description string `json:"description"`
}

type CollectionEdge struct {
	Node   CollectionNode `json:"node"`
	Cursor string         `json:"cursor,omitempty"`
}

type CollectionConnection struct {
	Edges    []CollectionEdge `json:"edges"`
	PageInfo PageInfo         `json:"pageInfo"`
}

type VariantNode struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Price            *Money `json:"price"`
	CompareAtPrice   *Money `json:"compareAtPrice"`
	SKU              string `json:"sku"`
	AvailableForSale bool   `json:"availableForSale"`
}

type VariantEdge struct {
	Node VariantNode `json:"node"`
}

type VariantConnection struct {
	Edges []VariantEdge `json:"edges"`
}

type ImageNode struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

type ImageEdge struct {
	Node ImageNode `json:"node"`
}

type ImageConnection struct {
	Edges []ImageEdge `json:"edges"`
}

type ProductNode struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Handle      string                `json:"handle"`
	Description string                `json:"description"`
	ProductType string                `json:"productType"`
	Vendor      string                `json:"vendor"`
	Tags        []string              `json:"tags"`
	Collections *CollectionConnection `json:"collections"`
	Variants    VariantConnection     `json:"variants"`
	Images      *ImageConnection      `json:"images"`
}

type ProductEdge struct {
	Node   ProductNode `json:"node"`
	Cursor string      `json:"cursor,omitempty"`
}

type ProductConnection struct {
	Edges    []ProductEdge `json:"edges"`
	PageInfo PageInfo      `json:"pageInfo"`
}

type productsData struct {
	Products ProductConnection `json:"products"`
}

type collectionsData struct {
	Collections CollectionConnection `json:"collections"`
}

type productByHandleData struct {
	Product *ProductNode `json:"product"`
}
