package gormstore

import (
	"context"
	"errors"

	"foodrun/internal/core/domain/model/account"
	"foodrun/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository over the users table.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a user repository on the given connection or
// transaction.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new user. A taken name fails with a value-is-invalid error.
func (r *GormUserRepository) Add(ctx context.Context, user *account.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("name = ?", user.Name()).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewValueIsInvalidError("name")
	}

	dto := userFromDomain(user)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a user by name.
func (r *GormUserRepository) Get(ctx context.Context, name string) (*account.User, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", name)
		}
		return nil, err
	}

	return userToDomain(dto)
}
