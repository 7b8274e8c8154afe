package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestHandle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Running Shoes", "running-shoes"},
		{"Men's Running Shoes!!", "men-s-running-shoes"},
		{"  Spaced  Out  ", "spaced-out"},
		{"UPPER case", "upper-case"},
		{"already-a-handle", "already-a-handle"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Handle(tt.title), "title %q", tt.title)
	}
}

func TestIDQueryRemoteID(t *testing.T) {
	query := IDQuery("gid://shopify/Product/123")
	assert.Equal(t, bson.M{"id": "gid://shopify/Product/123"}, query)
}

func TestIDQueryStorageID(t *testing.T) {
	oid := primitive.NewObjectID()
	query := IDQuery(oid.Hex())
	assert.Equal(t, bson.M{"_id": oid}, query)
}

func TestIDQueryLogicalID(t *testing.T) {
	query := IDQuery("custom-1700000000000")
	assert.Equal(t, bson.M{"id": "custom-1700000000000"}, query)
}

func TestNewProductID(t *testing.T) {
	id := NewProductID()
	require.Regexp(t, `^custom-\d+$`, id)
	assert.False(t, IsRemoteID(id))
}

func TestNewVariantID(t *testing.T) {
	require.Regexp(t, `^variant-\d+$`, NewVariantID())
}

func TestIsRemoteID(t *testing.T) {
	assert.True(t, IsRemoteID("gid://shopify/Product/1"))
	assert.False(t, IsRemoteID("custom-1"))
	assert.False(t, IsRemoteID(primitive.NewObjectID().Hex()))
}
