package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"bookshelf/internal/config"
	bookHandler "bookshelf/internal/domains/book/handler"
	bookRepo "bookshelf/internal/domains/book/repository"
	bookService "bookshelf/internal/domains/book/service"
	infraCache "bookshelf/internal/infrastructure/cache"
	"bookshelf/internal/infrastructure/database"
	"bookshelf/pkg/cache"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the API process and is the root
// of the dependency graph. All members are singletons constructed once
// at startup and released by Cleanup.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	// Book domain
	BookRepo    bookRepo.Repository
	BookService bookService.ServiceInterface
	BookHandler *bookHandler.Handler
}

// NewContainer builds the full dependency graph in order:
// config -> infrastructure -> repositories -> services -> handlers.
func NewContainer() (*Container, error) {
	log.Println("Initializing DI container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("Config loaded (environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := bookRepo.EnsureSchema(ctx, db.Pool); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	c.DB = db

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis being down is not fatal: the service degrades to reading
	// straight from the store on every list.
	if err := redisCache.Connect(context.Background()); err != nil {
		log.Printf("Redis connection failed (non-critical): %v", err)
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: REPOSITORIES -> SERVICES -> HANDLERS
	// ========================================
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)
	c.BookService = bookService.NewService(c.BookRepo, c.Cache)
	c.BookHandler = bookHandler.NewHandler(c.BookService)

	log.Println("DI container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources. Call on shutdown.
func (c *Container) Cleanup() {
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("Redis close failed: %v", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
