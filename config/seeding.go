package config

import (
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MDYUS/quoteadmin-sub000/models"
)

// RunAllSeeding runs all seeding operations in the correct order
func RunAllSeeding() error {
	log.Println("=== Starting Database Seeding ===")

	log.Println("[1/2] Seeding Users...")
	if err := SeedUsers(); err != nil {
		return err
	}

	log.Println("[2/2] Seeding Login Codes...")
	if err := SeedLoginCodes(); err != nil {
		return err
	}

	log.Println("=== Database Seeding Complete ===")
	return nil
}

// SeedUsers creates the owner account if no users exist. Credentials come
// from OWNER_PHONE / OWNER_PASSWORD so deployments never ship a default login.
func SeedUsers() error {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Users already seeded, skipping")
		return nil
	}

	phone := os.Getenv("OWNER_PHONE")
	password := os.Getenv("OWNER_PASSWORD")
	if phone == "" || password == "" {
		log.Println("⚠️  OWNER_PHONE/OWNER_PASSWORD not set, skipping user seeding")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	owner := models.User{
		Name:         "Owner",
		Phone:        phone,
		PasswordHash: string(hash),
		Role:         models.RoleOwner,
		IsActive:     true,
	}
	if err := DB.Create(&owner).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded owner account for phone %s", phone)
	return nil
}

// SeedLoginCodes issues a one-time numeric login code for the owner when
// OWNER_LOGIN_CODE is set and the code does not exist yet.
func SeedLoginCodes() error {
	code := os.Getenv("OWNER_LOGIN_CODE")
	if code == "" {
		return nil
	}

	var owner models.User
	if err := DB.Where("role = ?", models.RoleOwner).First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("⚠️  No owner account, skipping login code seeding")
			return nil
		}
		return err
	}

	var existing models.LoginCode
	err := DB.Where("code = ?", code).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	lc := models.LoginCode{Code: code, UserID: owner.ID}
	if err := DB.Create(&lc).Error; err != nil {
		return err
	}

	log.Println("✅ Seeded owner login code")
	return nil
}
