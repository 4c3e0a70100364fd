package store

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"onboardly/pkg/models"
)

// LeadStore persists leads
type LeadStore interface {
	Create(ctx context.Context, lead *models.Lead) error
	List(ctx context.Context) ([]models.Lead, error)
}

// Open connects to the database named by databaseURL.
// postgres:// and postgresql:// URLs use PostgreSQL, anything else is a SQLite path.
func Open(databaseURL string, production bool) (*gorm.DB, error) {
	logLevel := logger.Info
	if production {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(dialector(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func dialector(databaseURL string) gorm.Dialector {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return postgres.Open(databaseURL)
	default:
		return sqlite.Open(strings.TrimPrefix(databaseURL, "sqlite://"))
	}
}

// Migrate creates or updates the lead table
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Lead{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}

type leadStoreImpl struct {
	db *gorm.DB
}

// NewLeadStore creates a gorm-backed lead store
func NewLeadStore(db *gorm.DB) LeadStore {
	return &leadStoreImpl{db: db}
}

func (s *leadStoreImpl) Create(ctx context.Context, lead *models.Lead) error {
	if err := s.db.WithContext(ctx).Create(lead).Error; err != nil {
		return fmt.Errorf("error creating lead: %w", err)
	}
	return nil
}

func (s *leadStoreImpl) List(ctx context.Context) ([]models.Lead, error) {
	var leads []models.Lead
	if err := s.db.WithContext(ctx).Order("id asc").Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("error listing leads: %w", err)
	}
	return leads, nil
}
