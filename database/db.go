package database

import (
	"fmt"

	"aircnc-booking/config"
	"aircnc-booking/logger"
	"aircnc-booking/models/booking"
	"aircnc-booking/models/log"
	"aircnc-booking/models/room"
	"aircnc-booking/models/user"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the database connection, runs migrations and creates
// indexes. The handle is returned to the caller and injected wherever it is
// needed; there is no package-global connection state.
func InitDB(cfg config.App) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUsername, cfg.DBPassword, cfg.DBDatabase, cfg.DBSSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(db); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(db); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return db, nil
}

// Close releases the underlying connection pool at shutdown.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// autoMigrate runs auto migration for all models in dependency order.
func autoMigrate(db *gorm.DB) error {
	// Stage 1: foundation models
	stage1Models := []interface{}{
		&user.User{},
		&room.Room{},
	}

	for _, model := range stage1Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: models referencing stage 1
	stage2Models := []interface{}{
		&booking.Booking{},
	}

	for _, model := range stage2Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Remaining models
	remainingModels := []interface{}{
		&log.Log{},
	}

	for _, model := range remainingModels {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance.
func createIndexes(db *gorm.DB) error {
	// Room indexes
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_rooms_host_email ON rooms(host_email)").Error; err != nil {
		return fmt.Errorf("failed to create room host_email index: %w", err)
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_rooms_availability ON rooms(availability)").Error; err != nil {
		return fmt.Errorf("failed to create room availability index: %w", err)
	}

	// Booking indexes
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_uuid ON bookings(uuid)").Error; err != nil {
		return fmt.Errorf("failed to create booking uuid index: %w", err)
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_room_id_status ON bookings(room_id, status)").Error; err != nil {
		return fmt.Errorf("failed to create booking room_id/status index: %w", err)
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_guest_email ON bookings(guest_email)").Error; err != nil {
		return fmt.Errorf("failed to create booking guest_email index: %w", err)
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_host_email ON bookings(host_email)").Error; err != nil {
		return fmt.Errorf("failed to create booking host_email index: %w", err)
	}

	// User indexes
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)").Error; err != nil {
		return fmt.Errorf("failed to create user email index: %w", err)
	}

	// Log indexes
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}
