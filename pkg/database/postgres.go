package database

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/santikahms/hotel-service/internal/models"
)

// NewPostgresDB opens a connection pool and migrates the schema.
func NewPostgresDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate runs automigration plus the indexes automigrate cannot express.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.RoomType{},
		&models.Room{},
		&models.Guest{},
		&models.Reservation{},
		&models.Payment{},
		&models.Expense{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	// Overlap lookups scan only live reservations per room.
	db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_room_active
		ON reservations (room_id, check_in_date, check_out_date)
		WHERE status IN ('confirmed', 'checked_in')
	`)

	// Balance reads sum only non-voided ledger rows.
	db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_payments_reservation_active
		ON payments (reservation_id)
		WHERE is_voided = false
	`)

	return nil
}

// TxRunner executes fn inside a database transaction. Services depend on
// this instead of *gorm.DB so transition logic is testable without a live
// database.
type TxRunner func(ctx context.Context, fn func(tx *gorm.DB) error) error

// NewTxRunner wraps db in a TxRunner.
func NewTxRunner(db *gorm.DB) TxRunner {
	return func(ctx context.Context, fn func(tx *gorm.DB) error) error {
		return db.WithContext(ctx).Transaction(fn)
	}
}
