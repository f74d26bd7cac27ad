package main

import (
	"context"
	"log"
	"time"

	"agency-backend/internal/cache"
	"agency-backend/internal/catalog"
	"agency-backend/internal/config"
	"agency-backend/internal/db"
	"agency-backend/internal/marketing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	items := catalog.Static()
	if err := items.Validate(); err != nil {
		log.Fatal(err)
	}
	if dups := items.DuplicateSpecializedIDs(); len(dups) > 0 {
		log.Printf("warning: specialized services share derived ids: %v", dups)
	}

	repo := catalog.NewRepository(cols.Services, cols.SpecializedServices, cols.Projects)
	if err := repo.ReplaceAll(ctx, items); err != nil {
		log.Fatal(err)
	}

	if err := invalidateListings(ctx, cfg); err != nil {
		log.Printf("warning: cached listings not cleared: %v", err)
	}

	services, specialized, projects := items.Counts()
	log.Printf("seed complete: %d services, %d specialized services, %d projects in %s", services, specialized, projects, cfg.MongoDB)
}

// invalidateListings clears the public listings cached by a running API so the
// new catalog is served once the API reloads it.
func invalidateListings(ctx context.Context, cfg *config.Config) error {
	var redisCache *cache.RedisCache
	switch {
	case cfg.RedisURL != "":
		var err error
		redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		if err != nil {
			return err
		}
	case cfg.RedisAddr != "":
		redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		return nil
	}
	defer redisCache.Close()
	return marketing.InvalidateLists(ctx, redisCache)
}
