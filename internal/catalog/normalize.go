package catalog

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"storefront/internal/models"
)

// NormalizeProduct converts a stored product of any vintage into the
// canonical shape. It never fails: unknown or missing fields degrade to
// defaults because stored data is heterogeneous across writer generations.
func NormalizeProduct(raw RawProduct, collectionsByID map[string]CollectionInfo) models.Product {
	docID := ""
	if !raw.OID.IsZero() {
		docID = raw.OID.Hex()
	}

	source := raw.Source
	if source == "" {
		switch {
		case raw.IsShopifyProduct:
			source = models.SourceRemote
		default:
			source = models.SourceLocal
		}
	}

	tags := raw.Tags
	if tags == nil {
		tags = []string{}
	}

	return models.Product{
		DocID:            docID,
		ID:               raw.ID,
		Title:            raw.Title,
		Description:      raw.Description,
		Handle:           raw.Handle,
		ProductType:      raw.ProductType,
		Vendor:           raw.Vendor,
		Tags:             tags,
		Variants:         normalizeVariants(raw),
		Images:           normalizeImages(raw.Images),
		Collections:      normalizeCollectionRefs(raw.Collections, collectionsByID),
		Source:           source,
		IsShopifyProduct: raw.IsShopifyProduct,
		IsCustom:         raw.IsCustom,
		CreatedAt:        raw.CreatedAt,
		UpdatedAt:        raw.UpdatedAt,
	}
}

// NormalizeCollection converts a stored collection into the canonical shape,
// falling back to the storage id when no logical id was recorded.
func NormalizeCollection(raw RawCollection) models.Collection {
	docID := ""
	if !raw.OID.IsZero() {
		docID = raw.OID.Hex()
	}

	id := raw.ID
	if id == "" {
		id = docID
	}

	source := raw.Source
	if source == "" {
		if raw.IsShopifyCollection {
			source = models.SourceRemote
		} else {
			source = models.SourceLocal
		}
	}

	return models.Collection{
		DocID:               docID,
		ID:                  id,
		Title:               raw.Title,
		Handle:              raw.Handle,
		Description:         raw.Description,
		Source:              source,
		IsShopifyCollection: raw.IsShopifyCollection,
		CreatedAt:           raw.CreatedAt,
		UpdatedAt:           raw.UpdatedAt,
	}
}

// normalizeVariants passes stored variants through and synthesizes the single
// default variant when the field is absent entirely.
func normalizeVariants(raw RawProduct) models.VariantConnection {
	if raw.Variants != nil {
		conn := *raw.Variants
		if conn.Edges == nil {
			conn.Edges = []models.VariantEdge{}
		}
		return conn
	}

	productID := raw.ID
	if productID == "" && !raw.OID.IsZero() {
		productID = raw.OID.Hex()
	}

	return models.VariantConnection{
		Edges: []models.VariantEdge{{
			Node: models.Variant{
				ID:               "variant-" + productID,
				Title:            "Default Variant",
				Price:            models.Money{Amount: "0", CurrencyCode: models.CurrencyCode},
				SKU:              "",
				AvailableForSale: true,
			},
		}},
	}
}

// normalizeImages folds the legacy image representations into the canonical
// edge/node connection. The stored value is one of: an edge/node connection,
// a bare array of URL strings or {url,altText} objects, or a single
// {url,altText} object. Anything else becomes an empty connection.
func normalizeImages(raw bson.RawValue) models.ImageConnection {
	empty := models.ImageConnection{Edges: []models.ImageEdge{}}

	switch raw.Type {
	case bsontype.EmbeddedDocument:
		doc := raw.Document()
		if edges := doc.Lookup("edges"); edges.Type == bsontype.Array {
			var conn models.ImageConnection
			if err := raw.Unmarshal(&conn); err != nil {
				return empty
			}
			if conn.Edges == nil {
				conn.Edges = []models.ImageEdge{}
			}
			return conn
		}

		var img models.Image
		if err := raw.Unmarshal(&img); err != nil || img.URL == "" {
			return empty
		}
		return models.ImageConnection{Edges: []models.ImageEdge{{Node: img}}}

	case bsontype.Array:
		values, err := raw.Array().Values()
		if err != nil {
			return empty
		}
		edges := []models.ImageEdge{}
		for _, value := range values {
			switch value.Type {
			case bsontype.String:
				edges = append(edges, models.ImageEdge{Node: models.Image{URL: value.StringValue()}})
			case bsontype.EmbeddedDocument:
				var img models.Image
				if err := value.Unmarshal(&img); err == nil {
					edges = append(edges, models.ImageEdge{Node: img})
				}
			}
		}
		return models.ImageConnection{Edges: edges}

	default:
		return empty
	}
}

// normalizeCollectionRefs folds the two stored collection-membership shapes
// (edge/node connection, bare array of ids or objects) into canonical edges,
// refreshing stale titles and handles from the collections map.
func normalizeCollectionRefs(raw bson.RawValue, byID map[string]CollectionInfo) models.CollectionRefConnection {
	empty := models.CollectionRefConnection{Edges: []models.CollectionRefEdge{}}

	switch raw.Type {
	case bsontype.EmbeddedDocument:
		edgesValue := raw.Document().Lookup("edges")
		if edgesValue.Type != bsontype.Array {
			return empty
		}
		values, err := edgesValue.Array().Values()
		if err != nil {
			return empty
		}
		edges := []models.CollectionRefEdge{}
		for _, value := range values {
			var ref models.CollectionRef
			if value.Type == bsontype.EmbeddedDocument {
				node := value.Document().Lookup("node")
				if node.Type == bsontype.EmbeddedDocument {
					node.Unmarshal(&ref)
				}
			}
			// A missing or malformed node is repaired, not rejected.
			edges = append(edges, models.CollectionRefEdge{Node: resolveRef(ref, byID)})
		}
		return models.CollectionRefConnection{Edges: edges}

	case bsontype.Array:
		values, err := raw.Array().Values()
		if err != nil {
			return empty
		}
		edges := []models.CollectionRefEdge{}
		for _, value := range values {
			var ref models.CollectionRef
			switch value.Type {
			case bsontype.String:
				ref.ID = value.StringValue()
			case bsontype.EmbeddedDocument:
				value.Unmarshal(&ref)
			}
			edges = append(edges, models.CollectionRefEdge{Node: resolveRef(ref, byID)})
		}
		return models.CollectionRefConnection{Edges: edges}

	default:
		return empty
	}
}

// resolveRef refreshes a denormalized ref from the collections map, keeping
// whatever was embedded as the fallback.
func resolveRef(ref models.CollectionRef, byID map[string]CollectionInfo) models.CollectionRef {
	resolved := models.CollectionRef{ID: ref.ID, Title: ref.Title, Handle: ref.Handle}
	if info, ok := byID[ref.ID]; ok {
		if info.Title != "" {
			resolved.Title = info.Title
		}
		if info.Handle != "" {
			resolved.Handle = info.Handle
		}
	}
	return resolved
}
