package bootstrap

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "time-management.com/time-management/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Tag{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestProvisionIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := Provision(ctx, db, true); err != nil {
			t.Fatalf("provision run %d failed: %v", i, err)
		}
	}

	var tagCount int64
	db.Model(&model.Tag{}).Count(&tagCount)
	if tagCount != int64(len(defaultTags)) {
		t.Errorf("expected %d tags, got %d", len(defaultTags), tagCount)
	}

	var userCount int64
	db.Model(&model.User{}).Count(&userCount)
	if userCount != int64(len(demoUsers)) {
		t.Errorf("expected %d demo users, got %d", len(demoUsers), userCount)
	}
}

func TestProvisionWithoutDemoUsers(t *testing.T) {
	db := setupTestDB(t)

	if err := Provision(context.Background(), db, false); err != nil {
		t.Fatalf("provision failed: %v", err)
	}

	var userCount int64
	db.Model(&model.User{}).Count(&userCount)
	if userCount != 0 {
		t.Errorf("expected no users, got %d", userCount)
	}
}
