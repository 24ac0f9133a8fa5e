package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/h0pler/whs2nd-secureshoppingmall/internal/logging"
	"github.com/h0pler/whs2nd-secureshoppingmall/internal/models"
	"github.com/h0pler/whs2nd-secureshoppingmall/internal/repo"
)

const (
	AdminUsername = "admin"
	AdminPassword = "admin"
	AdminFullName = "Admin User"
	AdminRole     = "admin"
)

// EnsureSchema creates the users and products tables if they are
// absent. Safe to run on every start; existing data is untouched.
func EnsureSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// EnsureAdmin guarantees the seeded administrator exists. The check is
// by username only, so a renamed admin will be re-seeded on the next
// start.
func EnsureAdmin(ctx context.Context, r *repo.GormRepo) error {
	admin := models.User{
		Username: AdminUsername,
		Password: AdminPassword,
		Role:     AdminRole,
		FullName: AdminFullName,
	}

	created, err := r.CreateUserIfNotExists(ctx, &admin)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if created {
		logging.FromContext(ctx).Info("admin_seeded", "username", AdminUsername)
	}
	return nil
}
