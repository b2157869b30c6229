package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/graphql-go/graphql"

	"library-backend/internal/config"
	"library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/jwt"

	"library-backend/internal/domains/author"
	authorRepo "library-backend/internal/domains/author/repository"
	authorService "library-backend/internal/domains/author/service"
	"library-backend/internal/domains/book"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"
	"library-backend/internal/domains/user"
	userRepo "library-backend/internal/domains/user/repository"
	userService "library-backend/internal/domains/user/service"

	"library-backend/internal/graph"
)

// Container holds every dependency of the application and is the root
// of the dependency graph. No package keeps module-level connection
// state; everything flows down from here.
type Container struct {
	// Infrastructure - singletons shared across domains
	Config     *config.Config
	Mongo      *database.MongoDB
	Redis      *cache.RedisClient
	JWTManager *jwt.Manager

	// Repositories
	AuthorRepo author.Repository
	BookRepo   book.Repository
	UserRepo   user.Repository

	// Services
	AuthorService author.Service
	BookService   book.Service
	UserService   user.Service

	// GraphQL
	Resolver *graph.Resolver
	Schema   graphql.Schema
}

// NewContainer initializes the whole dependency graph, in order:
// config, infrastructure, repositories, services, schema. Any failure
// aborts startup.
func NewContainer() (*Container, error) {
	c := &Container{}

	// 1. CONFIGURATION
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// 2. DATABASE
	mongo := database.NewMongoDB(&cfg.Mongo)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := mongo.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := mongo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}
	c.Mongo = mongo

	// 3. REDIS
	redis := cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redis.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Redis = redis

	// 4. TOKEN MANAGER
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	// 5. REPOSITORIES
	c.AuthorRepo = authorRepo.NewMongoRepository(mongo.Database)
	c.BookRepo = bookRepo.NewMongoRepository(mongo.Database)
	c.UserRepo = userRepo.NewMongoRepository(mongo.Database)

	// 6. SERVICES
	limiter := cache.NewRedisLoginLimiter(redis,
		cfg.Login.MaxAttempts,
		time.Duration(cfg.Login.WindowMinutes)*time.Minute,
	)

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorService)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, limiter)

	// 7. GRAPHQL SCHEMA
	c.Resolver = graph.NewResolver(c.AuthorService, c.BookService, c.UserService)
	schema, err := graph.NewSchema(c.Resolver)
	if err != nil {
		return nil, fmt.Errorf("failed to build graphql schema: %w", err)
	}
	c.Schema = schema

	log.Println("✅ Container initialized")
	return c, nil
}

// Cleanup releases infrastructure connections; deferred from main.
func (c *Container) Cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Printf("⚠️  Redis close failed: %v", err)
		}
	}
	if c.Mongo != nil {
		if err := c.Mongo.Close(ctx); err != nil {
			log.Printf("⚠️  Mongo disconnect failed: %v", err)
		}
	}
}
