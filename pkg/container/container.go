package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"book-catalog/internal/config"
	bookhandler "book-catalog/internal/domains/book/handler"
	bookrepo "book-catalog/internal/domains/book/repository"
	bookservice "book-catalog/internal/domains/book/service"
	reviewhandler "book-catalog/internal/domains/review/handler"
	reviewrepo "book-catalog/internal/domains/review/repository"
	reviewservice "book-catalog/internal/domains/review/service"
	infracache "book-catalog/internal/infrastructure/cache"
	"book-catalog/internal/infrastructure/database"
	"book-catalog/pkg/cache"
)

// Container is the root of the dependency graph: config, then
// infrastructure, then repositories, services, handlers. The store handle is
// constructed and torn down here; nothing in the application reaches for
// ambient connection state.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	BookRepo   bookrepo.BookRepository
	ReviewRepo reviewrepo.ReviewRepository

	BookService   bookservice.Service
	ReviewService reviewservice.Service

	BookHandler   *bookhandler.Handler
	ReviewHandler *reviewhandler.Handler

	redis *infracache.RedisCache
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	// Redis is non-critical: when it is down the detail page just skips
	// the cache.
	redisCache := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("redis connection failed, running without cache")
		c.Cache = cache.NewNoop()
	} else {
		c.Cache = redisCache
		c.redis = redisCache
	}

	c.BookRepo = bookrepo.NewPostgresBookRepository(db.Pool)
	c.ReviewRepo = reviewrepo.NewPostgresReviewRepository(db.Pool)

	c.BookService = bookservice.NewBookService(c.BookRepo)
	c.ReviewService = reviewservice.NewReviewService(c.ReviewRepo)

	c.BookHandler = bookhandler.NewHandler(c.BookService, c.Cache)
	c.ReviewHandler = reviewhandler.NewHandler(c.ReviewService, c.BookService, c.Cache)

	return c, nil
}

// Cleanup tears down the infrastructure in reverse order.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
