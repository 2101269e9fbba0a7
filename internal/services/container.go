package services

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/cnpj-validator/internal/config"
)

// Container holds all service dependencies
type Container struct {
	config            *config.Config
	logger            *logrus.Logger
	redisClient       *redis.Client
	CacheService      CacheServiceInterface
	ValidationService ValidationServiceInterface
}

// NewContainer creates a new service container
func NewContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	container := &Container{
		config: cfg,
		logger: logger,
	}

	container.initRedis()
	container.initServices()

	return container, nil
}

// initRedis initializes the Redis client. A failed connection is not fatal;
// the cache service falls back to its in-memory store.
func (c *Container) initRedis() {
	c.redisClient = redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", c.config.Redis.Host, c.config.Redis.Port),
		Password:     c.config.Redis.Password,
		DB:           c.config.Redis.DB,
		PoolSize:     c.config.Redis.PoolSize,
		DialTimeout:  c.config.Redis.DialTimeout,
		ReadTimeout:  c.config.Redis.ReadTimeout,
		WriteTimeout: c.config.Redis.WriteTimeout,
	})

	ctx := context.Background()
	if err := c.redisClient.Ping(ctx).Err(); err != nil {
		c.logger.Warn("Redis connection failed, running without cache")
		c.redisClient = nil
	} else {
		c.logger.Info("Redis connection established")
	}
}

// initServices initializes all services
func (c *Container) initServices() {
	cacheService := NewCacheService(c.redisClient, c.config.Cache.TTL, c.logger)
	if cs, ok := cacheService.(*CacheService); ok {
		cs.StartCleanupRoutine()
	}
	c.CacheService = cacheService

	c.ValidationService = NewValidationService(c.CacheService, c.logger)
}

// Close closes all service connections
func (c *Container) Close() error {
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			return fmt.Errorf("failed to close Redis: %w", err)
		}
	}
	return nil
}

// Health checks the health of all services
func (c *Container) Health() map[string]interface{} {
	health := make(map[string]interface{})

	if c.CacheService != nil {
		health["cache"] = c.CacheService.Health()
	}
	if c.ValidationService != nil {
		health["validator"] = c.ValidationService.Health()
	}

	return health
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logrus.Logger {
	return c.logger
}
