package repository

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/DrinkCatalog/configs"
	"droscher.com/DrinkCatalog/pkg/model"
)

type Repository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

const (
	maxIdleTime = 5 * time.Minute
	maxLifetime = time.Hour
)

func Open(conf *configs.Config, logger *zap.Logger) (*Repository, error) {
	gormLogger := zapgorm2.New(logger)
	gormLogger.SetAsDefault()

	db, err := gorm.Open(dialector(conf.DB), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if conf.DB.Driver == configs.DriverSQLite {
		// sqlite allows a single writer; serialise through one connection.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(conf.DB.MaxIdleConnections)
		sqlDB.SetMaxOpenConns(conf.DB.MaxOpenConnections)
	}

	sqlDB.SetConnMaxIdleTime(maxIdleTime)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return &Repository{DB: db, Logger: logger}, err
}

func dialector(conf configs.DB) gorm.Dialector {
	if conf.Driver == configs.DriverSQLite {
		return sqlite.Open(conf.Path + "?_foreign_keys=on")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		conf.Host, conf.User, conf.Password, conf.Database, conf.Port)

	return postgres.Open(dsn)
}

// Migrate creates or updates the catalog schema.
func (r *Repository) Migrate() error {
	if err := r.DB.SetupJoinTable(&model.Drink{}, "Categories", &model.DrinkCategory{}); err != nil {
		return err
	}

	return r.DB.AutoMigrate(
		&model.Brand{}, &model.Category{}, &model.Drink{}, &model.DrinkCategory{},
		&model.User{}, &model.Favorite{}, &model.Review{},
		&model.Vote{}, &model.FeaturedDrink{})
}

func (r *Repository) Close() {
	sqlDB, err := r.DB.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

func (r *Repository) isSQLite() bool {
	return r.DB.Dialector.Name() == "sqlite"
}
