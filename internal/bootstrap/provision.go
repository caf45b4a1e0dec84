package bootstrap

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	model "time-management.com/time-management/internal/models"
)

var defaultTags = []model.Tag{
	{Name: "Bug", Color: "#e74c3c"},
	{Name: "Feature", Color: "#3498db"},
	{Name: "Urgent", Color: "#f39c12"},
}

var demoUsers = []struct {
	Email     string
	FirstName string
	LastName  string
	Role      string
}{
	{"admin1@local.test", "Admin", "One", "admin"},
	{"admin2@local.test", "Admin", "Two", "admin"},
	{"user1@local.test", "User", "One", "user"},
	{"user2@local.test", "User", "Two", "user"},
}

const demoPassword = "Password1"

// Provision creates the baseline tag catalogue and, when asked, a set
// of demo accounts. Safe to run on every start: existing rows are
// matched by name or email and left alone.
func Provision(ctx context.Context, db *gorm.DB, seedDemoUsers bool) error {
	for _, t := range defaultTags {
		tag := t
		if err := db.WithContext(ctx).
			Where("name = ?", tag.Name).
			FirstOrCreate(&tag).Error; err != nil {
			return err
		}
	}

	if !seedDemoUsers {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, u := range demoUsers {
		user := model.User{
			ID:           uuid.NewString(),
			Email:        u.Email,
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			PasswordHash: string(hash),
			Role:         u.Role,
		}
		res := db.WithContext(ctx).
			Where("email = ?", u.Email).
			FirstOrCreate(&user)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			log.Printf("provisioned demo user %s", u.Email)
		}
	}

	return nil
}
