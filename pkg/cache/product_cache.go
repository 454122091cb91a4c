package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ProductCacheTTL is the time-to-live for cached product views.
	ProductCacheTTL = time.Hour

	productCacheKeyPrefix = "product"
)

// CachedProduct is the denormalized product read model stored in Redis.
// CategoryName is pre-resolved ("Uncategorized" / "Unknown" / actual name)
// so cache hits skip the category join entirely.
type CachedProduct struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	CategoryID   string    `json:"category_id"` // empty when the product has no category
	CategoryName string    `json:"category_name"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductCache provides structured read/write operations for product cache entries.
// Key format: "product:{productID}". Entries must be invalidated on every
// product update and on every stock mutation, since stock is part of the view.
type ProductCache struct {
	client *RedisClient
}

// NewProductCache creates a new ProductCache backed by the given RedisClient.
func NewProductCache(r *RedisClient) *ProductCache {
	return &ProductCache{client: r}
}

// Get retrieves a cached product by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ProductCache) Get(ctx context.Context, productID uuid.UUID) (*CachedProduct, error) {
	key := c.key(productID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	price, err := strconv.ParseFloat(vals["price"], 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse price: %w", err)
	}
	stock, err := strconv.Atoi(vals["stock"])
	if err != nil {
		return nil, fmt.Errorf("cache parse stock: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, vals["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse updated_at: %w", err)
	}

	return &CachedProduct{
		ID:           id,
		Name:         vals["name"],
		Description:  vals["description"],
		Price:        price,
		Stock:        stock,
		CategoryID:   vals["category_id"],
		CategoryName: vals["category_name"],
		ImageURL:     vals["image_url"],
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

// Set writes a cached product as a Redis hash with a 1-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ProductCache) Set(ctx context.Context, p *CachedProduct) error {
	key := c.key(p.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", p.ID.String(),
		"name", p.Name,
		"description", p.Description,
		"price", strconv.FormatFloat(p.Price, 'f', -1, 64),
		"stock", strconv.Itoa(p.Stock),
		"category_id", p.CategoryID,
		"category_name", p.CategoryName,
		"image_url", p.ImageURL,
		"created_at", p.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at", p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, ProductCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached product. Callers invoke this after any write to the
// product row, including stock mutations.
func (c *ProductCache) Delete(ctx context.Context, productID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(productID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "product:{productID}"
func (c *ProductCache) key(productID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", productCacheKeyPrefix, productID)
}
