package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const remoteIDPrefix = "gid://"

var handlePattern = regexp.MustCompile(`[^a-z0-9]+`)

// Handle derives a URL handle from a title: lowercase with every run of
// non-alphanumeric characters collapsed to a single hyphen.
func Handle(title string) string {
	handle := handlePattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(handle, "-")
}

// NewProductID generates the id for a locally-created product.
func NewProductID() string {
	return fmt.Sprintf("custom-%d", time.Now().UnixMilli())
}

// NewVariantID generates the id for a locally-created variant.
func NewVariantID() string {
	return fmt.Sprintf("variant-%d", time.Now().UnixMilli())
}

// IDQuery builds the lookup filter for an id that may be either a remote
// gid:// URI or a storage id. Remote ids match the logical id field; anything
// that parses as an ObjectID matches the storage id; everything else falls
// back to the logical id verbatim. This is what lets one id query param
// address either source.
func IDQuery(id string) bson.M {
	if strings.HasPrefix(id, remoteIDPrefix) {
		return bson.M{"id": id}
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"id": id}
}

// IsRemoteID reports whether an id came from the remote catalog.
func IsRemoteID(id string) bool {
	return strings.HasPrefix(id, remoteIDPrefix)
}
