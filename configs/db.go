package configs

import (
	"time"

	"github.com/contact-info00/legends-menu-sub001/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) error {
	database, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	// sqlite allows a single writer; one shared pool per process
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.Admin{},
		&entity.Media{},
		&entity.Restaurant{},
		&entity.Section{}, &entity.Category{}, &entity.Item{},
		&entity.Feedback{},
		&entity.Theme{}, &entity.UiSettings{},
	)
}
