package configs

import (
	"log"

	"github.com/aaryaa4/civic-connectt/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedDefaults makes sure the default community and the configured admin
// account exist. Safe to run on every start.
func SeedDefaults(cfg *Config) error {
	db := DB()

	var community entity.Community
	if err := db.First(&community, 1).Error; err != nil {
		community = entity.Community{ID: 1, Name: "Downtown", City: "Pimpri-Chinchwad"}
		if err := db.Create(&community).Error; err != nil {
			return err
		}
		log.Println("default community created")
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:          cfg.AdminEmail,
		HashedPassword: string(hash),
		FullName:       "Municipal Admin",
		Role:           entity.RoleAdmin,
		CommunityID:    1,
		IsActive:       true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("admin user created:", cfg.AdminEmail)
	return nil
}
