package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds connection settings for the MongoDB cache backend.
type MongoConfig struct {
	// URI is the MongoDB connection string.
	URI string

	// Database is the database name. Defaults to "statecanvas".
	Database string

	// Collection is the collection name. Defaults to "cache".
	Collection string
}

// MongoCache implements a MongoDB-backed cache.
// Expiration uses a TTL index on the expires_at field, so entries disappear
// within roughly a minute of their deadline rather than instantly; Get
// additionally checks the deadline so expired entries are never returned.
type MongoCache struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// mongoEntry is the stored document shape.
type mongoEntry struct {
	Key       string     `bson:"_id"`
	Data      []byte     `bson:"data"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty"`
}

// NewMongoCache creates a MongoDB-backed cache and ensures the TTL index.
func NewMongoCache(ctx context.Context, cfg MongoConfig) (Cache, error) {
	if cfg.Database == "" {
		cfg.Database = "statecanvas"
	}
	if cfg.Collection == "" {
		cfg.Collection = "cache"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	coll := client.Database(cfg.Database).Collection(cfg.Collection)

	// expireAfterSeconds 0 means "expire at the indexed timestamp".
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("create ttl index: %w", err)
	}

	return &MongoCache{client: client, coll: coll}, nil
}

// Get retrieves a value from MongoDB.
func (c *MongoCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry mongoEntry
	err := c.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	// TTL deletion is lazy; enforce the deadline here.
	if entry.ExpiresAt != nil && time.Now().After(*entry.ExpiresAt) {
		return nil, false, nil
	}

	return entry.Data, true, nil
}

// Set stores a value in MongoDB. A zero ttl stores without expiration.
func (c *MongoCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := mongoEntry{Key: key, Data: data}
	if ttl > 0 {
		deadline := time.Now().Add(ttl)
		entry.ExpiresAt = &deadline
	}

	_, err := c.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		entry,
		options.Replace().SetUpsert(true),
	)
	return err
}

// Delete removes a value from MongoDB.
func (c *MongoCache) Delete(ctx context.Context, key string) error {
	_, err := c.coll.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

// Close disconnects from MongoDB.
func (c *MongoCache) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.client.Disconnect(ctx)
}

// Ensure MongoCache implements Cache.
var _ Cache = (*MongoCache)(nil)
