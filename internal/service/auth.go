package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/dangerclosesec/orgadmin/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Blocklist answers whether an email's domain is blacklisted.
type Blocklist interface {
	IsBlocked(ctx context.Context, email string, affiliateID *uuid.UUID) (bool, error)
}

// AuthService serves the session sync endpoints used by the identity
// provider and the frontend.
type AuthService struct {
	users     repository.UserRepositoryIface
	members   repository.MemberRepositoryIface
	roles     repository.RoleRepositoryIface
	blocklist Blocklist
	validate  *validator.Validate
}

func NewAuthService(
	users repository.UserRepositoryIface,
	members repository.MemberRepositoryIface,
	roles repository.RoleRepositoryIface,
	blocklist Blocklist,
) *AuthService {
	return &AuthService{
		users:     users,
		members:   members,
		roles:     roles,
		blocklist: blocklist,
		validate:  newValidator(),
	}
}

type CheckUserInput struct {
	Email string `json:"email" validate:"required,email"`
}

type CheckUserOutput struct {
	Exists      bool       `json:"exists"`
	UserID      uuid.UUID  `json:"user_id"`
	MemberID    *uuid.UUID `json:"member_id"`
	AffiliateID *uuid.UUID `json:"affiliate_id"`
}

type RoleSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

type RolesPermissionsOutput struct {
	Roles       []RoleSummary `json:"roles"`
	Permissions []string      `json:"permissions"`
}

// CheckUser reports whether an account exists for the email. Blacklisted
// domains are rejected before the lookup.
func (s *AuthService) CheckUser(ctx context.Context, input CheckUserInput) (*CheckUserOutput, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.NewValidationError(err)
	}

	blocked, err := s.blocklist.IsBlocked(ctx, input.Email, nil)
	if err != nil {
		return nil, fmt.Errorf("checking blocklist: %w", err)
	}
	if blocked {
		return nil, domain.ErrDomainBlocked
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	out := &CheckUserOutput{Exists: true, UserID: user.ID}

	member, err := s.members.FindByUserID(ctx, user.ID)
	switch {
	case err == nil:
		out.MemberID = &member.ID
		out.AffiliateID = member.AffiliateID
	case !isNotFound(err):
		return nil, err
	}
	return out, nil
}

// RolesPermissions returns the user's roles and effective permissions.
func (s *AuthService) RolesPermissions(ctx context.Context, userID uuid.UUID) (*RolesPermissionsOutput, error) {
	user, err := s.users.FindWithAccess(ctx, userID)
	if err != nil {
		return nil, err
	}
	all, err := s.roles.FindAllWithPermissions(ctx)
	if err != nil {
		return nil, err
	}

	out := &RolesPermissionsOutput{
		Roles:       make([]RoleSummary, 0, len(user.Roles)),
		Permissions: EffectivePermissions(user, all),
	}
	for _, r := range user.Roles {
		out.Roles = append(out.Roles, RoleSummary{ID: r.ID, Name: r.Name, Slug: r.Slug})
	}
	sort.Slice(out.Roles, func(i, j int) bool { return out.Roles[i].Slug < out.Roles[j].Slug })
	return out, nil
}

// EffectivePermissions is the sorted, deduplicated union of the permissions
// of the user's roles, their ancestor roles and the user's direct grants.
// all must contain every role with its permissions loaded.
func EffectivePermissions(user *model.User, all []model.Role) []string {
	byID := make(map[uuid.UUID]model.Role, len(all))
	for _, r := range all {
		byID[r.ID] = r
	}

	set := make(map[string]struct{})
	for _, held := range user.Roles {
		visited := make(map[uuid.UUID]bool)
		id := &held.ID
		for id != nil && !visited[*id] {
			visited[*id] = true
			r, ok := byID[*id]
			if !ok {
				break
			}
			for _, p := range r.Permissions {
				set[p.Name] = struct{}{}
			}
			id = r.ParentRoleID
		}
	}
	for _, p := range user.Permissions {
		set[p.Name] = struct{}{}
	}

	perms := make([]string, 0, len(set))
	for name := range set {
		perms = append(perms, name)
	}
	sort.Strings(perms)
	return perms
}
