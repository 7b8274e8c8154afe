package models

// Collection groups products. Local collections carry an empty products
// linkage; membership lives on the product side.
type Collection struct {
	DocID               string `json:"_id,omitempty" bson:"-"`
	ID                  string `json:"id" bson:"id"`
	Title               string `json:"title" bson:"title"`
	Handle              string `json:"handle" bson:"handle"`
	Description         string `json:"description" bson:"description"`
	Source              string `json:"source" bson:"source"`
	IsShopifyCollection bool   `json:"isShopifyCollection,omitempty" bson:"isShopifyCollection,omitempty"`
	CreatedAt           string `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt           string `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
