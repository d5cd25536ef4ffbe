// Command cachedemo wires a Config into a Cache and runs one write/read
// smoke cycle against a temporary directory, printing the put response,
// the item read back, and whether the key is cached to disk.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/151706061/DataCache/internal/cache"
)

func main() {
	root, err := os.MkdirTemp("", "cachedemo-")
	if err != nil {
		log.Fatalf("failed to create temp root: %v", err)
	}
	defer os.RemoveAll(root)
	os.Setenv("CACHE_DISK_ROOT", root)

	cfg, err := cache.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	c, err := cfg.BuildCache()
	if err != nil {
		log.Fatalf("failed to build cache: %v", err)
	}

	ctx := context.Background()
	topLevelID := "demo"
	cacheID := uuid.NewString()
	payload := []byte("hello from cachedemo")

	resp, err := c.Put(ctx, topLevelID, cacheID, &cache.Item{
		Data:         payload,
		DeclaredSize: int64(len(payload)),
		Kind:         cache.Pixels,
	})
	if err != nil {
		log.Fatalf("put failed: %v", err)
	}
	fmt.Printf("put response: %s\n", resp)

	item, err := c.Get(ctx, cache.Pixels, topLevelID, cacheID, nil)
	if err != nil {
		log.Fatalf("get failed: %v", err)
	}
	if item == nil {
		log.Fatal("expected a cache hit after put")
	}
	fmt.Printf("got %d bytes back: %q\n", item.DeclaredSize, string(item.Data))
	fmt.Printf("cached to disk: %v\n", c.IsCachedToDisk(ctx, cache.Pixels, topLevelID, cacheID))
}
