// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/farm-storefront/internal/domain/catalog"
	"github.com/your-org/farm-storefront/internal/domain/delivery"
	"github.com/your-org/farm-storefront/internal/domain/enquiry"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db  *gorm.DB
	log *logrus.Logger
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, log *logrus.Logger) *Migration {
	return &Migration{
		db:  db,
		log: log,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	m.log.Info("running database auto-migrations")

	models := []interface{}{
		&catalog.Product{},
		&delivery.Pincode{},
		&enquiry.Enquiry{},
	}

	for _, model := range models {
		m.log.Debugf("migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	m.log.Info("database auto-migrations completed")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_active_sort ON products(is_active, sort_order)",
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)",
		"CREATE INDEX IF NOT EXISTS idx_enquiries_created_at ON enquiries(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_enquiries_source ON enquiries(source)",
	}

	failCount := 0
	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			m.log.WithError(err).Warn("failed to create index")
			failCount++
		}
	}

	m.log.WithFields(logrus.Fields{
		"created": len(indexes) - failCount,
		"failed":  failCount,
	}).Info("database indexes ensured")
	return nil
}

// SeedInitialData inserts the default catalog and delivery area when missing
func (m *Migration) SeedInitialData() error {
	if err := m.seedProducts(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	if err := m.seedPincodes(); err != nil {
		return fmt.Errorf("failed to seed pincodes: %w", err)
	}
	return nil
}

func (m *Migration) seedProducts() error {
	var count int64
	if err := m.db.Model(&catalog.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		m.log.Debug("products already seeded")
		return nil
	}

	products := catalog.DefaultProducts()
	if err := m.db.Create(&products).Error; err != nil {
		return err
	}
	m.log.Infof("seeded %d products", len(products))
	return nil
}

func (m *Migration) seedPincodes() error {
	var count int64
	if err := m.db.Model(&delivery.Pincode{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		m.log.Debug("pincodes already seeded")
		return nil
	}

	pincodes := delivery.DefaultPincodes()
	if err := m.db.Create(&pincodes).Error; err != nil {
		return err
	}
	m.log.Infof("seeded %d delivery pincodes", len(pincodes))
	return nil
}
