package catalog

import (
	"storefront/internal/models"
)

// RemoveVariant returns the variant list without the given variant. The
// variant at index 0 is the default variant and is never deletable, nor is
// the sole remaining variant.
func RemoveVariant(conn models.VariantConnection, variantID string) (models.VariantConnection, error) {
	index := -1
	for i, edge := range conn.Edges {
		if edge.Node.ID == variantID {
			index = i
			break
		}
	}

	if index == -1 {
		return conn, models.NewNotFoundError("variant %s not found", variantID)
	}
	if len(conn.Edges) == 1 {
		return conn, models.NewValidationError("cannot delete the only variant of a product")
	}
	if index == 0 {
		return conn, models.NewValidationError("cannot delete the default variant of a product")
	}

	edges := make([]models.VariantEdge, 0, len(conn.Edges)-1)
	edges = append(edges, conn.Edges[:index]...)
	edges = append(edges, conn.Edges[index+1:]...)
	return models.VariantConnection{Edges: edges}, nil
}

// TagsUnion deduplicates tags across products, keeping first-seen order.
func TagsUnion(products []models.Product) []string {
	seen := map[string]bool{}
	tags := []string{}
	for _, p := range products {
		for _, tag := range p.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// VendorsUnion deduplicates non-empty vendors across products from both
// sources, keeping first-seen order.
func VendorsUnion(products []models.Product) []string {
	seen := map[string]bool{}
	vendors := []string{}
	for _, p := range products {
		if p.Vendor == "" || seen[p.Vendor] {
			continue
		}
		seen[p.Vendor] = true
		vendors = append(vendors, p.Vendor)
	}
	return vendors
}
