// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

// RedisPublisherDirectory implements [DirectoryStore] as a single Redis hash
// mapping publisher slug to its JSON encoding.
type RedisPublisherDirectory struct {
	client *redis.Client
	key    string
}

// NewRedisPublisherDirectory creates a directory stored under key.
func NewRedisPublisherDirectory(client *redis.Client, key string) *RedisPublisherDirectory {
	return &RedisPublisherDirectory{client: client, key: key}
}

/*
Replace rewrites the directory inside a MULTI/EXEC block so readers never
observe a half-built hash.

Parameters:
  - context: context.Context
  - publishers: []*Term (full publisher list; empty clears the directory)

Returns:
  - error: Encoding or connectivity errors
*/
func (directory *RedisPublisherDirectory) Replace(context context.Context, publishers []*Term) error {
	fields := make(map[string]any, len(publishers))
	for _, publisher := range publishers {
		encoded, err := json.Marshal(publisher)
		if err != nil {
			return fmt.Errorf("redis_publisher_directory_encode_failed: %w", err)
		}
		fields[publisher.Slug] = encoded
	}

	_, err := directory.client.TxPipelined(context, func(pipe redis.Pipeliner) error {
		pipe.Del(context, directory.key)
		if len(fields) > 0 {
			pipe.HSet(context, directory.key, fields)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis_publisher_directory_replace_failed: %w", err)
	}
	return nil
}

// List reads the whole hash. Entries that fail to decode are skipped.
func (directory *RedisPublisherDirectory) List(context context.Context) ([]*Term, error) {
	entries, err := directory.client.HGetAll(context, directory.key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis_publisher_directory_list_failed: %w", err)
	}

	publishers := make([]*Term, 0, len(entries))
	for _, raw := range entries {
		publisher := &Term{}
		if err := json.Unmarshal([]byte(raw), publisher); err != nil {
			continue
		}
		publishers = append(publishers, publisher)
	}

	sort.Slice(publishers, func(i, j int) bool {
		if publishers[i].Name != publishers[j].Name {
			return publishers[i].Name < publishers[j].Name
		}
		return publishers[i].Slug < publishers[j].Slug
	})
	return publishers, nil
}
