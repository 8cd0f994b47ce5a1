package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HistoryRepositoryIface interface {
	Open(ctx context.Context, h *model.OfficerHistory) error
	CloseLatest(ctx context.Context, key HistoryKey, at time.Time) (bool, error)
	Closed(ctx context.Context, filter HistoryFilter, page PageRequest) (*Page[model.OfficerHistory], error)
}

// HistoryKey identifies the (entity, user) pair a history row tracks.
type HistoryKey struct {
	EntityType  model.AuditableKind
	EntityID    uuid.UUID
	UserID      uuid.UUID
	AffiliateID *uuid.UUID
}

// HistoryFilter selects history rows for one entity.
type HistoryFilter struct {
	EntityType  model.AuditableKind
	EntityID    uuid.UUID
	Level       model.HistoryLevel
	AffiliateID *uuid.UUID
}

var historySort = SortSpec{
	Columns: map[string]string{
		"start_date": "officer_histories.start_date",
		"end_date":   "officer_histories.end_date",
	},
	DefaultColumn: "officer_histories.end_date",
}

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Open inserts a history row with no end date.
func (r *HistoryRepository) Open(ctx context.Context, h *model.OfficerHistory) error {
	h.EndDate = nil
	if h.StartDate.IsZero() {
		h.StartDate = time.Now().UTC()
	}
	if err := conn(ctx, r.db).Omit("User").Create(h).Error; err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	return nil
}

// CloseLatest ends the most recently started open row for key. It reports
// false when there was no open row.
func (r *HistoryRepository) CloseLatest(ctx context.Context, key HistoryKey, at time.Time) (bool, error) {
	var open model.OfficerHistory
	result := conn(ctx, r.db).
		Where("entity_type = ? AND entity_id = ? AND user_id = ? AND end_date IS NULL", key.EntityType, key.EntityID, key.UserID).
		Scopes(Eq("affiliate_id", key.AffiliateID)).
		Order("start_date DESC").
		First(&open)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to find open history: %w", result.Error)
	}

	result = conn(ctx, r.db).Model(&model.OfficerHistory{}).Where("id = ?", open.ID).Update("end_date", at)
	if result.Error != nil {
		return false, fmt.Errorf("failed to close history: %w", result.Error)
	}
	return true, nil
}

// Closed pages through ended rows, most recently ended first by default.
func (r *HistoryRepository) Closed(ctx context.Context, filter HistoryFilter, page PageRequest) (*Page[model.OfficerHistory], error) {
	query := r.db.WithContext(ctx).
		Model(&model.OfficerHistory{}).
		Preload("User").
		Where("officer_histories.entity_type = ? AND officer_histories.entity_id = ?", filter.EntityType, filter.EntityID).
		Where("officer_histories.end_date IS NOT NULL").
		Scopes(Eq("officer_histories.affiliate_id", filter.AffiliateID))
	if filter.Level != "" {
		query = query.Where("officer_histories.level = ?", filter.Level)
	}

	if page.SortBy == "" {
		page.SortOrder = "desc"
	}

	history, err := Paginate[model.OfficerHistory](ctx, query, page, historySort)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	return history, nil
}
