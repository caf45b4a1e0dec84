package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/rueidis"

	model "time-management.com/time-management/internal/models"
)

const catalogueKey = "tags:catalogue"

// TagCatalogue caches the full tag list in redis. The catalogue is
// read on every task projection and changes rarely, so one key holding
// the whole set is enough. A nil client disables caching entirely.
type TagCatalogue struct {
	client rueidis.Client
	ttl    time.Duration
}

func NewTagCatalogue(client rueidis.Client, ttl time.Duration) *TagCatalogue {
	return &TagCatalogue{client: client, ttl: ttl}
}

func (c *TagCatalogue) Get(ctx context.Context) ([]model.Tag, bool) {
	if c.client == nil {
		return nil, false
	}

	cmd := c.client.B().Get().Key(catalogueKey).Build()
	raw, err := c.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if !rueidis.IsRedisNil(err) {
			log.Printf("tag cache read failed: %v", err)
		}
		return nil, false
	}

	var tags []model.Tag
	if err := json.Unmarshal(raw, &tags); err != nil {
		log.Printf("tag cache payload corrupt, dropping: %v", err)
		c.Invalidate(ctx)
		return nil, false
	}

	return tags, true
}

func (c *TagCatalogue) Set(ctx context.Context, tags []model.Tag) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(tags)
	if err != nil {
		return
	}

	cmd := c.client.B().Set().Key(catalogueKey).Value(string(raw)).Ex(c.ttl).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		log.Printf("tag cache write failed: %v", err)
	}
}

func (c *TagCatalogue) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}

	cmd := c.client.B().Del().Key(catalogueKey).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		log.Printf("tag cache invalidation failed: %v", err)
	}
}
