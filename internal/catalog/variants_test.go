package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
)

func variantConn(ids ...string) models.VariantConnection {
	edges := make([]models.VariantEdge, 0, len(ids))
	for _, id := range ids {
		edges = append(edges, models.VariantEdge{Node: models.Variant{ID: id}})
	}
	return models.VariantConnection{Edges: edges}
}

func TestRemoveVariant(t *testing.T) {
	updated, err := RemoveVariant(variantConn("v1", "v2", "v3"), "v2")
	require.NoError(t, err)
	assert.Equal(t, variantConn("v1", "v3"), updated)
}

func TestRemoveVariantNotFound(t *testing.T) {
	_, err := RemoveVariant(variantConn("v1", "v2"), "v9")

	var notFound *models.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestRemoveVariantSoleVariantGuard(t *testing.T) {
	_, err := RemoveVariant(variantConn("v1"), "v1")

	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Msg, "only variant")
}

func TestRemoveVariantDefaultVariantGuard(t *testing.T) {
	_, err := RemoveVariant(variantConn("v1", "v2"), "v1")

	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Msg, "default variant")
}

func TestTagsUnion(t *testing.T) {
	products := []models.Product{
		{Tags: []string{"sale", "shoes"}},
		{Tags: []string{"shoes", "new"}},
		{Tags: nil},
	}

	assert.Equal(t, []string{"sale", "shoes", "new"}, TagsUnion(products))
}

func TestTagsUnionEmpty(t *testing.T) {
	tags := TagsUnion(nil)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestVendorsUnion(t *testing.T) {
	products := []models.Product{
		{Vendor: "Acme"},
		{Vendor: ""},
		{Vendor: "Acme"},
		{Vendor: "Globex"},
	}

	assert.Equal(t, []string{"Acme", "Globex"}, VendorsUnion(products))
}
