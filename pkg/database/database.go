package database

import (
	"fmt"

	"consulting-site/internal/model"
	"consulting-site/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB initializes the database connection with configuration and runs migrations
func InitDB(cfg *config.Config) error {
	var err error

	// Create DSN string
	dsn := cfg.DB.GetDSN()

	// Configure Postgres options
	pgConfig := postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // Disables implicit prepared statement usage
	}

	// Open connection
	db, err = gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: logger.Default.LogMode(cfg.DB.LogLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get generic database object SQL
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Set connection pool settings from config
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	// Run migrations
	if err := Migrate(db); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	return nil
}

// Migrate runs the schema migrations for all content models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Publication{},
		&model.ConsultancyService{},
		&model.ServiceFeature{},
		&model.BlogPost{},
		&model.Masterclass{},
		&model.MasterclassRegistration{},
		&model.GalleryItem{},
		&model.SiteConfig{},
		&model.HeroConfig{},
		&model.SocialMediaLink{},
		&model.AboutConfig{},
		&model.JourneyItem{},
		&model.EducationQualification{},
		&model.Achievement{},
		&model.SpeakingEngagement{},
		&model.ContactMessage{},
		&model.NewsletterSubscription{},
		&model.PageView{},
	)
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return db
}

// SetDB replaces the database instance; used by tests to run the
// handlers against an in-memory database
func SetDB(d *gorm.DB) {
	db = d
}
