package database

import (
	"fmt"

	"flexygig/internal/config"
	"flexygig/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm инициализирует GORM с URL из config.yaml
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей и сидирует справочники тегов.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Location{},
		&models.User{},
		&models.WorkerProfile{},
		&models.Business{},
		&models.Skill{},
		&models.Trait{},
		&models.Experience{},
		&models.WorkerSkill{},
		&models.WorkerTrait{},
		&models.WorkerExperience{},
		&models.PendingUser{},
		&models.VerificationToken{},
		&models.Message{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}

	return seedTags(db)
}

// seedTags наполняет справочники стартовым набором, пропуская существующие имена.
func seedTags(db *gorm.DB) error {
	skills := []string{
		"Bartending", "Cooking", "Serving", "Barista", "Cash Handling",
		"Event Setup", "Cleaning", "Forklift Operation", "Customer Service",
		"Food Prep", "Dishwashing", "Hosting",
	}
	traits := []string{
		"Punctual", "Team Player", "Detail-Oriented", "Fast Learner",
		"Reliable", "Friendly", "Organized", "Self-Motivated",
	}
	experiences := []string{
		"Restaurant", "Catering", "Retail", "Warehouse", "Hospitality",
		"Construction", "Office Admin", "Delivery",
	}

	for _, name := range skills {
		row := models.Skill{Name: name}
		if err := db.Where("skill_name = ?", name).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("seed skill %q: %w", name, err)
		}
	}
	for _, name := range traits {
		row := models.Trait{Name: name}
		if err := db.Where("trait_name = ?", name).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("seed trait %q: %w", name, err)
		}
	}
	for _, name := range experiences {
		row := models.Experience{Name: name}
		if err := db.Where("experience_name = ?", name).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("seed experience %q: %w", name, err)
		}
	}
	return nil
}
