package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dangerclosesec/orgadmin/internal/audit"
	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/dangerclosesec/orgadmin/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Assignment states written to activity log values.
const (
	statusAssigned   = "assigned"
	statusUnassigned = "unassigned"
	statusRemoved    = "removed"
)

type RoleService struct {
	tx       repository.TransactorIface
	roles    repository.RoleRepositoryIface
	users    repository.UserRepositoryIface
	officers repository.OfficerRepositoryIface
	history  repository.HistoryRepositoryIface
	recorder audit.Recorder
	cache    *CacheService
	validate *validator.Validate
	now      func() time.Time
}

func NewRoleService(
	tx repository.TransactorIface,
	roles repository.RoleRepositoryIface,
	users repository.UserRepositoryIface,
	officers repository.OfficerRepositoryIface,
	history repository.HistoryRepositoryIface,
	recorder audit.Recorder,
	cache *CacheService,
) *RoleService {
	return &RoleService{
		tx:       tx,
		roles:    roles,
		users:    users,
		officers: officers,
		history:  history,
		recorder: recorder,
		cache:    cache,
		validate: newValidator(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type AssignRoleInput struct {
	RoleID  uuid.UUID   `json:"role_id" validate:"required"`
	UserIDs []uuid.UUID `json:"user_ids" validate:"required,min=1,dive,required"`
}

type DetachRoleInput struct {
	RoleID uuid.UUID `json:"role_id" validate:"required"`
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// HistoryQuery selects which history a role history request reads.
// Type "affiliate" reads officer position history and needs AffiliateID.
type HistoryQuery struct {
	Type        string
	AffiliateID *uuid.UUID
}

// Assign gives the role to every listed user in one transaction. A missing
// user aborts the whole batch. History is opened only for new assignments;
// every user gets one activity log entry.
func (s *RoleService) Assign(ctx context.Context, actor audit.Actor, input AssignRoleInput) ([]model.ActivityLog, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.NewValidationError(err)
	}

	var (
		logs    []model.ActivityLog
		touched []uuid.UUID
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		role, err := s.assignableRole(ctx, input.RoleID)
		if err != nil {
			return err
		}

		now := s.now()
		for _, userID := range uniqueIDs(input.UserIDs) {
			user, err := s.users.FindByID(ctx, userID)
			if err != nil {
				return err
			}

			created, err := s.roles.Assign(ctx, role.ID, user.ID)
			if err != nil {
				return err
			}
			touched = append(touched, user.ID)

			previous := statusAssigned
			if created {
				previous = statusUnassigned
				if err := s.history.Open(ctx, &model.OfficerHistory{
					EntityType: model.KindRole,
					EntityID:   role.ID,
					UserID:     user.ID,
					StartDate:  now,
					Level:      model.LevelNational,
				}); err != nil {
					return err
				}
			}

			log, err := s.recorder.Record(ctx, audit.Entry{
				Actor:        actor,
				Action:       model.ActionAssigned,
				Subject:      model.RoleSubject(role.ID),
				SubjectLabel: role.Name,
				OldValues:    assignmentValues(role.Name, user, previous),
				NewValues:    assignmentValues(role.Name, user, statusAssigned),
			})
			if err != nil {
				return err
			}
			if log != nil {
				logs = append(logs, *log)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateDashboards(ctx, touched...)
	return logs, nil
}

// Detach removes the role from the user and closes the open history row.
// A missing assignment fails with domain.ErrRoleAssignmentNotFound and
// records nothing. A missing history row is tolerated.
func (s *RoleService) Detach(ctx context.Context, actor audit.Actor, input DetachRoleInput) (*model.ActivityLog, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.NewValidationError(err)
	}

	var log *model.ActivityLog
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		role, err := s.roles.FindByID(ctx, input.RoleID)
		if err != nil {
			return err
		}
		user, err := s.users.FindByID(ctx, input.UserID)
		if err != nil {
			return err
		}

		assignment, err := s.roles.FindAssignment(ctx, role.ID, user.ID)
		if err != nil {
			return err
		}
		if err := s.roles.Unassign(ctx, assignment); err != nil {
			return err
		}

		closed, err := s.history.CloseLatest(ctx, repository.HistoryKey{
			EntityType: model.KindRole,
			EntityID:   role.ID,
			UserID:     user.ID,
		}, s.now())
		if err != nil {
			return err
		}
		if !closed {
			slog.InfoContext(ctx, "No open role history to close", "roleID", role.ID, "userID", user.ID)
		}

		log, err = s.recorder.Record(ctx, audit.Entry{
			Actor:        actor,
			Action:       model.ActionRemoved,
			Subject:      model.RoleSubject(role.ID),
			SubjectLabel: role.Name,
			OldValues:    assignmentValues(role.Name, user, statusAssigned),
			NewValues:    assignmentValues(role.Name, user, statusRemoved),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateDashboards(ctx, input.UserID)
	return log, nil
}

// History returns ended assignments, most recently ended first.
func (s *RoleService) History(ctx context.Context, id uuid.UUID, query HistoryQuery, page repository.PageRequest) (*repository.Page[model.OfficerHistory], error) {
	var filter repository.HistoryFilter

	switch strings.ToLower(query.Type) {
	case "", string(model.LevelNational):
		if _, err := s.roles.FindByID(ctx, id); err != nil {
			return nil, err
		}
		filter = repository.HistoryFilter{
			EntityType: model.KindRole,
			EntityID:   id,
			Level:      model.LevelNational,
		}
	case string(model.LevelAffiliate):
		if query.AffiliateID == nil {
			return nil, domain.FieldError("affiliate_id", "is required when type is affiliate")
		}
		if _, err := s.officers.FindPosition(ctx, id); err != nil {
			return nil, err
		}
		filter = repository.HistoryFilter{
			EntityType:  model.KindOfficerPosition,
			EntityID:    id,
			Level:       model.LevelAffiliate,
			AffiliateID: query.AffiliateID,
		}
	default:
		return nil, domain.FieldError("type", "must be one of: national affiliate")
	}

	return s.history.Closed(ctx, filter, page)
}

// Tree returns the role hierarchy with roots in display order.
func (s *RoleService) Tree(ctx context.Context) ([]model.Role, error) {
	roles, err := s.roles.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return model.BuildRoleTree(roles), nil
}

// Selectable returns the roles that may be assigned: leaves of the tree.
func (s *RoleService) Selectable(ctx context.Context) ([]model.Role, error) {
	tree, err := s.Tree(ctx)
	if err != nil {
		return nil, err
	}
	return model.LeafRoles(tree), nil
}

func (s *RoleService) assignableRole(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hasChildren, err := s.roles.HasChildren(ctx, role.ID)
	if err != nil {
		return nil, err
	}
	if hasChildren {
		return nil, fmt.Errorf("%s: %w", role.Name, domain.ErrRoleNotAssignable)
	}
	return role, nil
}

// assignmentValues is the activity log payload for a role or position
// change, keyed by the subject label.
func assignmentValues(label string, user *model.User, status string) map[string]interface{} {
	return map[string]interface{}{
		label: map[string]interface{}{
			"user":    user.DisplayName(),
			"user_id": user.ID.String(),
			"status":  status,
		},
	}
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// isNotFound is errors.Is(err, domain.ErrNotFound).
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
