// internal/repository/role.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error)
	FindAll(ctx context.Context) ([]model.Role, error)
	FindAllWithPermissions(ctx context.Context) ([]model.Role, error)
	HasChildren(ctx context.Context, id uuid.UUID) (bool, error)
	FindAssignment(ctx context.Context, roleID, userID uuid.UUID) (*model.RoleUser, error)
	Assign(ctx context.Context, roleID, userID uuid.UUID) (created bool, err error)
	Unassign(ctx context.Context, assignment *model.RoleUser) error
}

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	var role model.Role
	result := conn(ctx, r.db).First(&role, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to find role: %w", result.Error)
	}
	return &role, nil
}

// FindAll returns every role, flat, in display order.
func (r *RoleRepository) FindAll(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	result := conn(ctx, r.db).Order(`"order" ASC`).Order("name ASC").Find(&roles)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find roles: %w", result.Error)
	}
	return roles, nil
}

// FindAllWithPermissions returns every role with its granted permissions.
func (r *RoleRepository) FindAllWithPermissions(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	result := conn(ctx, r.db).Preload("Permissions").Find(&roles)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find roles with permissions: %w", result.Error)
	}
	return roles, nil
}

func (r *RoleRepository) HasChildren(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&model.Role{}).Where("parent_role_id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count child roles: %w", err)
	}
	return count > 0, nil
}

func (r *RoleRepository) FindAssignment(ctx context.Context, roleID, userID uuid.UUID) (*model.RoleUser, error) {
	var ru model.RoleUser
	result := conn(ctx, r.db).Where("role_id = ? AND user_id = ?", roleID, userID).First(&ru)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to find role assignment: %w", result.Error)
	}
	return &ru, nil
}

// Assign updates or creates the pivot row and reports whether it was created.
func (r *RoleRepository) Assign(ctx context.Context, roleID, userID uuid.UUID) (bool, error) {
	existing, err := r.FindAssignment(ctx, roleID, userID)
	switch {
	case err == nil:
		result := conn(ctx, r.db).Model(existing).Update("updated_at", time.Now().UTC())
		if result.Error != nil {
			return false, fmt.Errorf("failed to touch role assignment: %w", result.Error)
		}
		return false, nil
	case !errors.Is(err, domain.ErrRoleAssignmentNotFound):
		return false, err
	}

	// The unique (role_id, user_id) index settles concurrent assignments.
	ru := &model.RoleUser{RoleID: roleID, UserID: userID}
	result := conn(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "role_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(ru)
	if result.Error != nil {
		return false, fmt.Errorf("failed to create role assignment: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *RoleRepository) Unassign(ctx context.Context, assignment *model.RoleUser) error {
	result := conn(ctx, r.db).Delete(&model.RoleUser{}, "id = ?", assignment.ID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete role assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRoleAssignmentNotFound
	}
	return nil
}
