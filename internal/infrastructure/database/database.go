package database

import (
	"context"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"memes/internal/domain/model"
)

type Database struct {
	DB           *gorm.DB
	QueryTimeout time.Duration
}

// Connect opens the postgres connection pool described by cfg.
func Connect(cfg Config) (*Database, error) {
	logger.Info("connecting to database")

	return Open(postgres.Open(cfg.URI), cfg)
}

// Open builds a Database on top of any gorm dialector.
func Open(dialector gorm.Dialector, cfg Config) (*Database, error) {
	cfg = cfg.withDefaults()

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(time.Duration(cfg.SlowQueryInMS) * time.Millisecond),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Database{
		DB:           db,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}, nil
}

// Migrate creates or updates the users and memes tables.
func (db *Database) Migrate() error {
	return db.DB.AutoMigrate(&model.User{}, &model.Meme{})
}

func (db *Database) Stop() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
