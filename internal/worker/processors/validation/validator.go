package validation

import (
	"fmt"
	"strconv"

	"storefront/internal/logger"
	"storefront/internal/models"
)

type Validator struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *Validator {
	return &Validator{
		logger: logger,
	}
}

// ValidateProduct checks a normalized product for feed-quality issues.
// Issues are reported, never fatal.
func (v *Validator) ValidateProduct(product models.Product) []string {
	var issues []string

	if product.Title == "" {
		issues = append(issues, "missing title")
	}
	if product.Handle == "" {
		issues = append(issues, "missing handle")
	}
	if len(product.Variants.Edges) == 0 {
		issues = append(issues, "no variants")
	}

	for _, edge := range product.Variants.Edges {
		node := edge.Node
		if _, err := strconv.ParseFloat(node.Price.Amount, 64); err != nil {
			issues = append(issues, fmt.Sprintf("variant %s: unparseable price %q", node.ID, node.Price.Amount))
		}
		if node.StockQuantity < 0 {
			issues = append(issues, fmt.Sprintf("variant %s: negative stock quantity", node.ID))
		}
		// Local variants are supposed to derive availability from stock.
		if product.Source == models.SourceLocal && node.AvailableForSale != (node.StockQuantity > 0) {
			issues = append(issues, fmt.Sprintf("variant %s: availableForSale disagrees with stockQuantity", node.ID))
		}
	}

	return issues
}
