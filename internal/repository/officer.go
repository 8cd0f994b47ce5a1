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
)

type OfficerRepositoryIface interface {
	FindPosition(ctx context.Context, id uuid.UUID) (*model.OfficerPosition, error)
	FindByID(ctx context.Context, affiliateID, id uuid.UUID) (*model.AffiliateOfficer, error)
	FindCurrent(ctx context.Context, affiliateID, positionID uuid.UUID, at time.Time) (*model.AffiliateOfficer, error)
	Create(ctx context.Context, officer *model.AffiliateOfficer) error
	End(ctx context.Context, officer *model.AffiliateOfficer, at time.Time) error
	Leaders(ctx context.Context, affiliateID uuid.UUID, at time.Time) ([]model.AffiliateOfficer, error)
	CurrentForMember(ctx context.Context, memberID uuid.UUID, at time.Time) ([]model.AffiliateOfficer, error)
}

type OfficerRepository struct {
	db *gorm.DB
}

func NewOfficerRepository(db *gorm.DB) *OfficerRepository {
	return &OfficerRepository{db: db}
}

// current keeps assignments held at the given instant.
func current(at time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("affiliate_officers.is_vacant = ?", false).
			Where("(affiliate_officers.end_date IS NULL OR affiliate_officers.end_date > ?)", at)
	}
}

func (r *OfficerRepository) FindPosition(ctx context.Context, id uuid.UUID) (*model.OfficerPosition, error) {
	var position model.OfficerPosition
	result := conn(ctx, r.db).First(&position, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to find officer position: %w", result.Error)
	}
	return &position, nil
}

func (r *OfficerRepository) FindByID(ctx context.Context, affiliateID, id uuid.UUID) (*model.AffiliateOfficer, error) {
	var officer model.AffiliateOfficer
	result := conn(ctx, r.db).
		Preload("Position").
		Preload("Member").
		Where("affiliate_id = ? AND id = ?", affiliateID, id).
		First(&officer)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOfficerNotFound
		}
		return nil, fmt.Errorf("failed to find officer: %w", result.Error)
	}
	return &officer, nil
}

// FindCurrent returns the active holder of a position in an affiliate.
func (r *OfficerRepository) FindCurrent(ctx context.Context, affiliateID, positionID uuid.UUID, at time.Time) (*model.AffiliateOfficer, error) {
	var officer model.AffiliateOfficer
	result := conn(ctx, r.db).
		Preload("Member").
		Where("affiliate_officers.affiliate_id = ? AND affiliate_officers.position_id = ?", affiliateID, positionID).
		Scopes(current(at)).
		Order("affiliate_officers.start_date DESC").
		First(&officer)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOfficerNotFound
		}
		return nil, fmt.Errorf("failed to find current officer: %w", result.Error)
	}
	return &officer, nil
}

func (r *OfficerRepository) Create(ctx context.Context, officer *model.AffiliateOfficer) error {
	if err := conn(ctx, r.db).Omit("Position", "Member").Create(officer).Error; err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("officer references a missing row: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("failed to create officer: %w", err)
	}
	return nil
}

// End sets the end date of an assignment.
func (r *OfficerRepository) End(ctx context.Context, officer *model.AffiliateOfficer, at time.Time) error {
	result := conn(ctx, r.db).Model(&model.AffiliateOfficer{}).Where("id = ?", officer.ID).Update("end_date", at)
	if result.Error != nil {
		return fmt.Errorf("failed to end officer: %w", result.Error)
	}
	officer.EndDate = &at
	return nil
}

// Leaders returns the current officers of an affiliate in position order.
func (r *OfficerRepository) Leaders(ctx context.Context, affiliateID uuid.UUID, at time.Time) ([]model.AffiliateOfficer, error) {
	var officers []model.AffiliateOfficer
	result := conn(ctx, r.db).
		Preload("Position").
		Preload("Member").
		Joins("JOIN officer_positions ON officer_positions.id = affiliate_officers.position_id").
		Where("affiliate_officers.affiliate_id = ? AND affiliate_officers.member_id IS NOT NULL", affiliateID).
		Scopes(current(at)).
		Order(`officer_positions."order" ASC`).
		Order("affiliate_officers.start_date ASC").
		Find(&officers)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find leaders: %w", result.Error)
	}
	return officers, nil
}

// CurrentForMember returns the positions a member holds now.
func (r *OfficerRepository) CurrentForMember(ctx context.Context, memberID uuid.UUID, at time.Time) ([]model.AffiliateOfficer, error) {
	var officers []model.AffiliateOfficer
	result := conn(ctx, r.db).
		Preload("Position").
		Where("affiliate_officers.member_id = ?", memberID).
		Scopes(current(at)).
		Order("affiliate_officers.start_date DESC").
		Find(&officers)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find member positions: %w", result.Error)
	}
	return officers, nil
}
