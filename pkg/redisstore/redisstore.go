// Package redisstore holds the redis-backed stores: the guest cart and
// wishlist lists keyed by a guest token, and the catalog list cache.
// Falling back to redis for un-authenticated shoppers keeps their lists
// alive across requests without creating user rows for them.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"storefront/internal/models"
)

// ErrCacheMiss is returned when a requested key holds no value.
var ErrCacheMiss = errors.New("cache miss")

// GuestStore persists the cart and wishlist of un-authenticated shoppers,
// keyed by a client-generated guest token.
type GuestStore interface {
	GetCart(ctx context.Context, guestID string) ([]models.CartItem, error)
	SaveCart(ctx context.Context, guestID string, items []models.CartItem) error
	DeleteCart(ctx context.Context, guestID string) error
	GetWishlist(ctx context.Context, guestID string) ([]models.WishlistItem, error)
	SaveWishlist(ctx context.Context, guestID string, items []models.WishlistItem) error
	DeleteWishlist(ctx context.Context, guestID string) error
}

// CatalogCache caches the full product list for the catalog read path.
type CatalogCache interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	SetProducts(ctx context.Context, products []models.Product) error
	Invalidate(ctx context.Context) error
}

// Config holds redis connection details and TTLs.
type Config struct {
	Addr       string
	Password   string
	DB         int
	GuestTTL   time.Duration // how long an idle guest list survives
	CatalogTTL time.Duration // how long the cached product list is served
}

// Client wraps a redis connection and implements GuestStore and
// CatalogCache on top of JSON-serialized values.
type Client struct {
	rdb *redis.Client
	cfg Config
}

const (
	guestCartKey     = "guest:cart:%s"
	guestWishlistKey = "guest:wishlist:%s"
	catalogKey       = "catalog:products"
)

// NewClient connects to redis and verifies the connection with a ping.
func NewClient(cfg Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	if cfg.GuestTTL <= 0 {
		cfg.GuestTTL = 7 * 24 * time.Hour
	}
	if cfg.CatalogTTL <= 0 {
		cfg.CatalogTTL = 5 * time.Minute
	}

	return &Client{rdb: rdb, cfg: cfg}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}

func (c *Client) getJSON(ctx context.Context, key string, out interface{}) error {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (c *Client) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// GetCart returns the guest's cart list; an absent key is an empty cart.
func (c *Client) GetCart(ctx context.Context, guestID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := c.getJSON(ctx, fmt.Sprintf(guestCartKey, guestID), &items)
	if errors.Is(err, ErrCacheMiss) {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}

// SaveCart overwrites the guest's cart list and refreshes its TTL.
func (c *Client) SaveCart(ctx context.Context, guestID string, items []models.CartItem) error {
	return c.setJSON(ctx, fmt.Sprintf(guestCartKey, guestID), items, c.cfg.GuestTTL)
}

// DeleteCart discards the guest's cart list.
func (c *Client) DeleteCart(ctx context.Context, guestID string) error {
	return c.rdb.Del(ctx, fmt.Sprintf(guestCartKey, guestID)).Err()
}

// GetWishlist returns the guest's wishlist; an absent key is empty.
func (c *Client) GetWishlist(ctx context.Context, guestID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := c.getJSON(ctx, fmt.Sprintf(guestWishlistKey, guestID), &items)
	if errors.Is(err, ErrCacheMiss) {
		return []models.WishlistItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}

// SaveWishlist overwrites the guest's wishlist and refreshes its TTL.
func (c *Client) SaveWishlist(ctx context.Context, guestID string, items []models.WishlistItem) error {
	return c.setJSON(ctx, fmt.Sprintf(guestWishlistKey, guestID), items, c.cfg.GuestTTL)
}

// DeleteWishlist discards the guest's wishlist.
func (c *Client) DeleteWishlist(ctx context.Context, guestID string) error {
	return c.rdb.Del(ctx, fmt.Sprintf(guestWishlistKey, guestID)).Err()
}

// GetProducts returns the cached product list or ErrCacheMiss.
func (c *Client) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, catalogKey, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SetProducts replaces the cached product list wholesale.
func (c *Client) SetProducts(ctx context.Context, products []models.Product) error {
	return c.setJSON(ctx, catalogKey, products, c.cfg.CatalogTTL)
}

// Invalidate drops the cached product list.
func (c *Client) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, catalogKey).Err()
}
