package configs

import (
	"log"

	"github.com/Misheck-bot/transport-system-sub001/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first administrator account from env.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("⚠️ skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("ℹ️ admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:       email,
		Password:    string(hash),
		FirstName:   "Admin",
		LastName:    "Seed",
		Role:        entity.RoleAdmin,
		IsVerified:  true,
		Status:      entity.UserActive,
		AccessLevel: "full",
	}
	return db.Create(&admin).Error
}
