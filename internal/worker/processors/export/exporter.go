package export

import (
	"encoding/xml"
	"fmt"
	"os"

	"storefront/internal/logger"
	"storefront/internal/models"
)

// Exporter writes the merged catalog as a Google Shopping RSS feed.
type Exporter struct {
	path   string
	logger *logger.Logger
}

func New(path string, logger *logger.Logger) *Exporter {
	return &Exporter{
		path:   path,
		logger: logger,
	}
}

type feed struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	NS      string   `xml:"xmlns:g,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title       string `xml:"title"`
	Description string `xml:"description"`
	Items       []item `xml:"item"`
}

type item struct {
	ID           string `xml:"g:id"`
	Title        string `xml:"title"`
	Description  string `xml:"description"`
	Link         string `xml:"link"`
	Price        string `xml:"g:price"`
	Availability string `xml:"g:availability"`
	Brand        string `xml:"g:brand,omitempty"`
	ProductType  string `xml:"g:product_type,omitempty"`
	ImageLink    string `xml:"g:image_link,omitempty"`
}

func (e *Exporter) WriteFeed(products []models.Product) error {
	data, err := e.Render(products)
	if err != nil {
		return err
	}

	if err := os.WriteFile(e.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write feed: %w", err)
	}

	e.logger.Info("Exported %d products to %s", len(products), e.path)
	return nil
}

// Render builds the feed document without touching the filesystem.
func (e *Exporter) Render(products []models.Product) ([]byte, error) {
	doc := feed{
		Version: "2.0",
		NS:      "http://base.google.com/ns/1.0",
		Channel: channel{
			Title:       "Storefront Catalog",
			Description: "Merged product catalog",
		},
	}

	for _, product := range products {
		entry := item{
			ID:          product.ID,
			Title:       product.Title,
			Description: product.Description,
			Link:        "/product/" + product.Handle,
			Brand:       product.Vendor,
			ProductType: product.ProductType,
		}

		if len(product.Variants.Edges) > 0 {
			node := product.Variants.Edges[0].Node
			entry.Price = node.Price.Amount + " " + node.Price.CurrencyCode
			if node.AvailableForSale {
				entry.Availability = "in stock"
			} else {
				entry.Availability = "out of stock"
			}
		}

		if len(product.Images.Edges) > 0 {
			entry.ImageLink = product.Images.Edges[0].Node.URL
		}

		doc.Channel.Items = append(doc.Channel.Items, entry)
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal feed: %w", err)
	}

	return append([]byte(xml.Header), data...), nil
}
