package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Member, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Member, error)
	Query(ctx context.Context, filter MemberFilter, page PageRequest) (*Page[model.Member], error)
	CountByAffiliate(ctx context.Context, affiliateID uuid.UUID) (int64, error)
}

// MemberFilter holds the optional predicates of a member listing.
type MemberFilter struct {
	Search      string
	AffiliateID *uuid.UUID
	Status      *model.MemberStatus
}

func (f MemberFilter) Scope(db *gorm.DB) *gorm.DB {
	return db.Scopes(
		Search(f.Search, "members.first_name", "members.last_name", "members.email", "members.member_number"),
		Eq("members.affiliate_id", f.AffiliateID),
		Eq("members.status", f.Status),
	)
}

var memberSort = SortSpec{
	Columns: map[string]string{
		"first_name":    "members.first_name",
		"last_name":     "members.last_name",
		"email":         "members.email",
		"member_number": "members.member_number",
		"joined_at":     "members.joined_at",
		"created_at":    "members.created_at",
	},
	DefaultColumn: "members.created_at",
}

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	var member model.Member
	result := conn(ctx, r.db).Preload("Affiliate").First(&member, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to find member: %w", result.Error)
	}
	return &member, nil
}

func (r *MemberRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Member, error) {
	var member model.Member
	result := conn(ctx, r.db).Preload("Affiliate").First(&member, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to find member: %w", result.Error)
	}
	return &member, nil
}

func (r *MemberRepository) Query(ctx context.Context, filter MemberFilter, page PageRequest) (*Page[model.Member], error) {
	query := r.db.WithContext(ctx).
		Model(&model.Member{}).
		Preload("Affiliate").
		Scopes(filter.Scope)

	members, err := Paginate[model.Member](ctx, query, page, memberSort)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	return members, nil
}

func (r *MemberRepository) CountByAffiliate(ctx context.Context, affiliateID uuid.UUID) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&model.Member{}).Where("affiliate_id = ?", affiliateID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}
	return count, nil
}
