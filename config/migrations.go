package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/MDYUS/quoteadmin-sub000/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250812_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.LoginCode{}, &models.Lead{},
					&models.SiteVisit{}, &models.Project{}, &models.TeamMember{},
					&models.Payment{}, &models.Invoice{}, &models.Quote{}, &models.CommLog{})
			},
		},
		{
			ID: "20250819_add_devices_and_app_state",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Device{}, &models.AppState{})
			},
		},
		{
			ID: "20250826_add_lead_tags",
			Migrate: func(tx *gorm.DB) error {
				// Older deployments predate the tags column
				return tx.Exec("ALTER TABLE leads ADD COLUMN IF NOT EXISTS tags text[]").Error
			},
		},
		{
			ID: "20250901_add_site_visit_photos",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec("ALTER TABLE site_visits ADD COLUMN IF NOT EXISTS photos jsonb DEFAULT '[]'").Error
			},
		},
	})

	return m.Migrate()
}
