package controllers

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"freight_ledger/internal/models"
)

// openTestDB returns an isolated in-memory database with the full
// schema migrated. TranslateError matches the production gorm config
// so duplicate-key classification behaves the same under test.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// cache=shared keeps the schema visible across pooled connections;
	// a single connection avoids sqlite write contention in tests.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	err = db.AutoMigrate(
		&models.User{},
		&models.Carrier{},
		&models.DistributionCenter{},
		&models.Load{},
		&models.LoadData{},
	)
	if err != nil {
		t.Fatalf("auto-migration failed: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{Username: username, Password: "not-a-real-hash"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createTestCarrier(t *testing.T, db *gorm.DB, userID uint) models.Carrier {
	t.Helper()
	carrier := models.Carrier{
		Name:    "Knight Transport",
		Address: "100 Freight Way",
		City:    "Phoenix",
		State:   "AZ",
		Zip:     "85001",
		Phone:   "602-555-0100",
		UserID:  userID,
	}
	if err := db.Create(&carrier).Error; err != nil {
		t.Fatalf("failed to create test carrier: %v", err)
	}
	return carrier
}

func createTestDC(t *testing.T, db *gorm.DB, userID uint) models.DistributionCenter {
	t.Helper()
	center := models.DistributionCenter{
		Name:    "Midwest DC",
		Address: "200 Dock St",
		City:    "Chicago",
		State:   "IL",
		Zip:     "60601",
		Phone:   "312-555-0100",
		UserID:  userID,
	}
	if err := db.Create(&center).Error; err != nil {
		t.Fatalf("failed to create test distribution center: %v", err)
	}
	return center
}
