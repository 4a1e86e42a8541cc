package config

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func buildDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		GetEnvDefault("DB_PORT", "5432"),
		GetEnvDefault("DB_SSLMODE", "disable"),
	)
}

// ConnectDB mở kết nối Postgres. Handle được truyền xuống qua constructor,
// không dùng biến toàn cục để các service tự với tới.
func ConnectDB() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(buildDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	return db, nil
}

// CloseDB đóng connection pool khi shutdown
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
