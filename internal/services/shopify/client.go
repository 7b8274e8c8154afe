package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"storefront/internal/logger"
)

const listProductsQuery = `
query GetProducts($cursor: String) {
  products(first: 250, after: $cursor) {
    edges {
      node {
        id
        title
        handle
        description
        productType
        vendor
        tags
        collections(first: 250) {
          edges {
            node { id title handle }
          }
        }
        variants(first: 250) {
          edges {
            node {
              id
              title
              price { amount currencyCode }
              compareAtPrice { amount currencyCode }
              sku
              availableForSale
            }
          }
        }
        images(first: 250) {
          edges {
            node { url altText }
          }
        }
      }
      cursor
    }
    pageInfo { hasNextPage endCursor }
  }
}`

const listCollectionsQuery = `
query GetAllCollections($cursor: String) {
  collections(first: 250, after: $cursor) {
    edges {
      node { id title handle description }
      cursor
    }
    pageInfo { hasNextPage endCursor }
  }
}`

const productByHandleQuery = `
query GetProductByHandle($handle: String!) {
  product(handle: $handle) {
    id
    title
    handle
    description
    productType
    vendor
    tags
    collections(first: 10) {
      edges {
        node { id title handle }
      }
    }
    variants(first: 250) {
      edges {
        node {
          id
          title
          price { amount currencyCode }
          compareAtPrice { amount currencyCode }
          sku
          availableForSale
        }
      }
    }
    images(first: 10) {
      edges {
        node { url altText }
      }
    }
  }
}`

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type Client struct {
	endpoint    string
	accessToken string
	httpClient  *http.Client
	logger      *logger.Logger
}

func NewClient(storeDomain, accessToken string, logger *logger.Logger) *Client {
	return &Client{
		endpoint:    fmt.Sprintf("https://%s/api/2024-01/graphql.json", storeDomain),
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// ListProducts fetches one page of products from the storefront API.
func (c *Client) ListProducts(ctx context.Context, cursor string) (*ProductConnection, error) {
	var data productsData
	if err := c.query(ctx, listProductsQuery, cursorVars(cursor), &data); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return &data.Products, nil
}

// ListCollections fetches one page of collections from the storefront API.
func (c *Client) ListCollections(ctx context.Context, cursor string) (*CollectionConnection, error) {
	var data collectionsData
	if err := c.query(ctx, listCollectionsQuery, cursorVars(cursor), &data); err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return &data.Collections, nil
}

// GetProductByHandle fetches a single remote product, nil when absent.
func (c *Client) GetProductByHandle(ctx context.Context, handle string) (*ProductNode, error) {
	var data productByHandleData
	vars := map[string]interface{}{"handle": handle}
	if err := c.query(ctx, productByHandleQuery, vars, &data); err != nil {
		return nil, fmt.Errorf("failed to get product %q: %w", handle, err)
	}
	return data.Product, nil
}

func cursorVars(cursor string) map[string]interface{} {
	if cursor == "" {
		return nil
	}
	return map[string]interface{}{"cursor": cursor}
}

func (c *Client) query(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Shopify-Storefront-Access-Token", c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API request failed: %d - %s", resp.StatusCode, string(respBody))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphqlError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		return fmt.Errorf("graphql error: %s", envelope.Errors[0].Message)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode data: %w", err)
	}

	return nil
}
