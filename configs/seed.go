package configs

import (
	"log"

	"github.com/Sandip-364710/daily-tiffin-service/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the moderation account on first boot.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:      cfg.AdminEmail,
		Password:   string(hash),
		FirstName:  "Admin",
		LastName:   "Seed",
		Role:       entity.RoleAdmin,
		IsVerified: true,
	}
	return db.Create(&admin).Error
}

// SeedLookups inserts the default tiffin categories.
func SeedLookups() error {
	for _, name := range []string{"Gujarati Thali", "Punjabi", "South Indian", "Diet / Healthy", "Jain"} {
		if err := db.FirstOrCreate(&entity.Category{}, entity.Category{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
