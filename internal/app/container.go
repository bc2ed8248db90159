package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillpath/internal/catalog"
	"skillpath/internal/config"
	"skillpath/internal/database"
	dbpostgres "skillpath/internal/database/postgres"
	"skillpath/internal/infrastructure/cache"
	"skillpath/internal/logger"
	"skillpath/internal/repository"
	"skillpath/internal/usecase"

	"go.uber.org/zap"
)

type Container struct {
	Config          config.Config
	Logger          *zap.Logger
	DB              database.DB
	Cache           *cache.Redis
	Catalog         catalog.Source
	Recommendations usecase.RecommendationUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	c := &Container{Config: cfg, Logger: log}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	src, err := c.catalogSource(ctx)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Catalog = src

	c.Cache = cache.NewRedis(cfg.Redis, log.Named("cache"))
	c.Recommendations = usecase.NewRecommendationUsecase(c.Catalog, c.Cache, cfg.Redis.TTL, log.Named("recommend"))

	log.Info("container ready",
		zap.String("env", cfg.App.Environment),
		zap.String("catalog_source", cfg.Catalog.Source),
		zap.String("catalog_mode", cfg.Catalog.Mode),
		zap.Bool("cache", c.Cache.Enabled()),
	)
	return c, nil
}

func (c *Container) catalogSource(ctx context.Context) (catalog.Source, error) {
	var src catalog.Source

	switch c.Config.Catalog.Source {
	case config.CatalogSourcePostgres:
		db, err := dbpostgres.Connect(ctx, c.Config.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		c.DB = db
		src = catalog.NewRepositorySource(repository.NewPostgresCareerRepository(db))
	default:
		fs, err := catalog.NewFileSource(c.Config.Catalog.Path)
		if err != nil {
			return nil, err
		}
		src = fs
	}

	if c.Config.Catalog.Mode != config.CatalogModeCached {
		return src, nil
	}

	cached, err := catalog.NewCached(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("preload catalog: %w", err)
	}
	cat, _ := cached.Load(ctx)
	c.Logger.Info("catalog preloaded", zap.Int("records", cat.Len()), zap.String("version", cat.Version))
	return cached, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
	return errors.Join(errs...)
}
