package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"jobpath/internal/config"
	"jobpath/internal/database"
	dbpostgres "jobpath/internal/database/postgres"
	"jobpath/internal/dataset"
	"jobpath/internal/infrastructure/cache"
)

// Container holds the process-wide dependencies: the immutable reference
// data store, the optional database handle it was loaded from, and the
// optional response cache.
type Container struct {
	Config config.Config
	Store  *dataset.Store
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	c := &Container{Config: cfg, Logger: logger}

	tables, err := loadTables(cfg, c)
	if err != nil {
		return nil, err
	}

	c.Store = dataset.NewStore(tables)
	courses, jobs, ratings, applications := c.Store.Counts()
	logger.Printf("reference data loaded: courses=%d jobs=%d users_rated=%d users_applied=%d",
		courses, jobs, ratings, applications)

	c.Cache = cache.NewRedis(cfg.Redis, logger)

	return c, nil
}

func loadTables(cfg config.Config, c *Container) (dataset.Tables, error) {
	switch cfg.Data.Source {
	case config.DataSourcePostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return dataset.Tables{}, fmt.Errorf("connect postgres: %w", err)
		}
		c.DB = db

		tables, err := dataset.LoadPostgres(ctx, db)
		if err != nil {
			return dataset.Tables{}, fmt.Errorf("load reference data: %w", err)
		}
		return tables, nil

	case config.DataSourceCSV:
		tables, err := dataset.LoadCSVDir(cfg.Data.Dir)
		if err != nil {
			return dataset.Tables{}, fmt.Errorf("load reference data: %w", err)
		}
		return tables, nil

	default:
		return dataset.Tables{}, fmt.Errorf("unknown data source %q", cfg.Data.Source)
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
