package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/config"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/domain"
)

// Connect opens the Postgres connection from config.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
		cfg.Database.Password, cfg.Database.Name, cfg.Database.SSLMode,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate creates or updates every table the site uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.RegistrationApplication{},
		&domain.Student{},
		&domain.Class{},
		&domain.Enrollment{},
		&domain.BlogPost{},
		&domain.CalendarEvent{},
		&domain.ContactMessage{},
		&domain.VolunteerOpportunity{},
		&domain.GalleryAlbum{},
		&domain.GalleryImage{},
		&domain.SlideshowSlide{},
	)
}
