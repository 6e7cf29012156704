package container

import (
	"context"
	"fmt"
	"time"

	"courselibrary-backend/internal/config"
	infraCache "courselibrary-backend/internal/infrastructure/cache"
	"courselibrary-backend/internal/infrastructure/database"
	"courselibrary-backend/internal/shared/sorting"
	"courselibrary-backend/pkg/cache"
	"courselibrary-backend/pkg/logger"

	"courselibrary-backend/internal/domains/author"
	authorHandler "courselibrary-backend/internal/domains/author/handler"
	authorRepo "courselibrary-backend/internal/domains/author/repository"
	authorService "courselibrary-backend/internal/domains/author/service"

	"courselibrary-backend/internal/domains/course"
	courseHandler "courselibrary-backend/internal/domains/course/handler"
	courseRepo "courselibrary-backend/internal/domains/course/repository"
	courseService "courselibrary-backend/internal/domains/course/service"
)

// Container is the root of the dependency graph. Initialization order
// matters: config, infrastructure, repositories, services, handlers.
type Container struct {
	Config  *config.Config
	DB      *database.PostgresDB
	Cache   cache.Cache
	Sorting *sorting.Registry

	AuthorRepo author.Repository
	CourseRepo course.Repository

	AuthorService author.Service
	CourseService course.Service

	AuthorHandler           *authorHandler.AuthorHandler
	AuthorCollectionHandler *authorHandler.AuthorCollectionHandler
	CourseHandler           *courseHandler.CourseHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		// Cache failure is non-critical: reads fall through to the
		// database.
		if err := rc.Connect(context.Background()); err != nil {
			logger.Warn("redis connection failed, running without warm cache", err)
		}
	}
	c.Cache = redisCache

	// Property mappings are registered once; handlers validate
	// order-by expressions against this registry and repositories
	// translate them.
	c.Sorting = sorting.NewRegistry()
	author.RegisterMappings(c.Sorting)

	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool, c.Cache, c.Sorting)
	c.CourseRepo = courseRepo.NewPostgresRepository(db.Pool, c.Cache)

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.CourseService = courseService.NewCourseService(c.CourseRepo, c.AuthorRepo)

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService, c.Sorting)
	c.AuthorCollectionHandler = authorHandler.NewAuthorCollectionHandler(c.AuthorService)
	c.CourseHandler = courseHandler.NewCourseHandler(c.CourseService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Warn("failed to close redis client", err)
		}
	}
}
