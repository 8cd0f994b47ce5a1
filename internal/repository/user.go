// internal/repository/user.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepositoryIface interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindWithAccess(ctx context.Context, id uuid.UUID) (*model.User, error)
	HasAnyRole(ctx context.Context, id uuid.UUID, slugs ...string) (bool, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	result := conn(ctx, r.db).Where("email = ?", strings.TrimSpace(email)).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	result := conn(ctx, r.db).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

// FindWithAccess loads the user with roles, role permissions and direct
// permissions.
func (r *UserRepository) FindWithAccess(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	result := conn(ctx, r.db).
		Preload("Roles").
		Preload("Permissions").
		First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user access: %w", result.Error)
	}
	return &user, nil
}

// HasAnyRole reports whether the user holds one of the roles named by slug.
func (r *UserRepository) HasAnyRole(ctx context.Context, id uuid.UUID, slugs ...string) (bool, error) {
	if len(slugs) == 0 {
		return false, nil
	}

	var count int64
	err := conn(ctx, r.db).
		Model(&model.RoleUser{}).
		Joins("JOIN roles ON roles.id = role_users.role_id").
		Where("role_users.user_id = ? AND roles.slug IN ?", id, slugs).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check user roles: %w", err)
	}
	return count > 0, nil
}
