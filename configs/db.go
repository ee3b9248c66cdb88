package configs

import (
	"fmt"

	"github.com/Sandip-364710/daily-tiffin-service/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) error {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DBSource)
	case "sqlite":
		dial = sqlite.Open(cfg.DBSource)
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}

	database, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return err
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.ProviderProfile{}, &entity.DeliveryPerson{},
		&entity.Category{}, &entity.Tiffin{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{}, &entity.OrderReview{},
		&entity.SavedCart{}, &entity.DeliveryTracking{},
	)
}
