// internal/repository/activity_log.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityLogRepositoryIface interface {
	Create(ctx context.Context, log *model.ActivityLog) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ActivityLog, error)
	Query(ctx context.Context, filter ActivityLogFilter, page PageRequest) (*Page[model.ActivityLog], error)
	FindAll(ctx context.Context, filter ActivityLogFilter, page PageRequest) ([]model.ActivityLog, error)
}

// ActivityLogFilter holds the optional predicates of an activity log query.
// Zero values add no predicate.
type ActivityLogFilter struct {
	Search      string
	Actions     []string
	Kinds       []model.AuditableKind
	AffiliateID *uuid.UUID
	ActorID     *uuid.UUID
	Subject     *model.Auditable
	DateFrom    *time.Time
	DateTo      *time.Time
}

var activityLogSort = SortSpec{
	Columns: map[string]string{
		"created_at":     "activity_logs.created_at",
		"action":         "activity_logs.action",
		"auditable_type": "activity_logs.auditable_type",
		"auditable_name": "activity_logs.auditable_name",
	},
	DefaultColumn: "activity_logs.created_at",
}

// ActivityLogRepository handles database operations for activity logs
type ActivityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new ActivityLogRepository
func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{
		db: db,
	}
}

// Create inserts a new activity log entry, joining the transaction in ctx.
func (r *ActivityLogRepository) Create(ctx context.Context, log *model.ActivityLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}

	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}

	result := conn(ctx, r.db).Omit("User").Create(log)
	if result.Error != nil {
		return fmt.Errorf("failed to create activity log: %w", result.Error)
	}

	return nil
}

// FindByID retrieves an activity log entry by its ID
func (r *ActivityLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ActivityLog, error) {
	var log model.ActivityLog
	result := conn(ctx, r.db).Preload("User").Where("id = ?", id).First(&log)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrActivityLogNotFound
		}
		return nil, fmt.Errorf("failed to find activity log: %w", result.Error)
	}

	return &log, nil
}

// Query returns one page of activity logs matching filter.
func (r *ActivityLogRepository) Query(ctx context.Context, filter ActivityLogFilter, page PageRequest) (*Page[model.ActivityLog], error) {
	query := r.db.WithContext(ctx).
		Model(&model.ActivityLog{}).
		Preload("User").
		Scopes(filter.Scope)

	logs, err := Paginate[model.ActivityLog](ctx, query, page, activityLogSort)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity logs: %w", err)
	}
	return logs, nil
}

// FindAll returns every activity log matching filter, sorted as page requests.
func (r *ActivityLogRepository) FindAll(ctx context.Context, filter ActivityLogFilter, page PageRequest) ([]model.ActivityLog, error) {
	var logs []model.ActivityLog
	query := r.db.WithContext(ctx).
		Model(&model.ActivityLog{}).
		Preload("User").
		Scopes(filter.Scope)

	if err := activityLogSort.Apply(query, page).Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to export activity logs: %w", err)
	}
	return logs, nil
}

// Scope applies the set predicates of f.
func (f ActivityLogFilter) Scope(db *gorm.DB) *gorm.DB {
	return db.Scopes(
		Search(f.Search, "activity_logs.auditable_name", "activity_logs.action"),
		In("activity_logs.action", f.Actions),
		In("activity_logs.auditable_type", f.Kinds),
		Eq("activity_logs.user_id", f.ActorID),
		Between("activity_logs.created_at", f.DateFrom, f.DateTo),
		f.subjectScope,
		f.affiliateScope,
	)
}

func (f ActivityLogFilter) subjectScope(db *gorm.DB) *gorm.DB {
	if f.Subject == nil {
		return db
	}
	return db.Where("activity_logs.auditable_type = ? AND activity_logs.auditable_id = ?", f.Subject.Kind, f.Subject.ID)
}

// affiliateScope matches logs about the affiliate itself or about one of its
// members.
func (f ActivityLogFilter) affiliateScope(db *gorm.DB) *gorm.DB {
	if f.AffiliateID == nil {
		return db
	}
	members := model.AuditableTables[model.KindMember]
	return db.Where(
		"((activity_logs.auditable_type = ? AND activity_logs.auditable_id IN (SELECT id FROM "+members+" WHERE affiliate_id = ?))"+
			" OR (activity_logs.auditable_type = ? AND activity_logs.auditable_id = ?))",
		model.KindMember, *f.AffiliateID,
		model.KindAffiliate, *f.AffiliateID,
	)
}

// auditTypeAliases expands the audit_type query values into stored kinds.
// "affiliate" covers the affiliate and its members; "national" covers
// organization-wide subjects.
var auditTypeAliases = map[string][]model.AuditableKind{
	"member":           {model.KindMember},
	"affiliate":        {model.KindAffiliate, model.KindMember},
	"role":             {model.KindRole},
	"officer_position": {model.KindOfficerPosition},
	"document":         {model.KindDocument},
	"national":         {model.KindRole, model.KindDocument},
}

// ParseAuditTypes expands audit_type values. Unknown values are reported as an
// error so that a typo never widens the result set.
func ParseAuditTypes(values []string) ([]model.AuditableKind, error) {
	seen := make(map[model.AuditableKind]bool)
	var kinds []model.AuditableKind
	for _, v := range SplitList(values...) {
		expanded, ok := auditTypeAliases[strings.ToLower(v)]
		if !ok {
			return nil, domain.FieldError("audit_type", fmt.Sprintf("unknown audit type %q", v))
		}
		for _, k := range expanded {
			if !seen[k] {
				seen[k] = true
				kinds = append(kinds, k)
			}
		}
	}
	return kinds, nil
}
