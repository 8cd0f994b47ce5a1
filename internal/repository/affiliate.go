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

type AffiliateRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Affiliate, error)
}

type AffiliateRepository struct {
	db *gorm.DB
}

func NewAffiliateRepository(db *gorm.DB) *AffiliateRepository {
	return &AffiliateRepository{db: db}
}

func (r *AffiliateRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Affiliate, error) {
	var affiliate model.Affiliate
	result := conn(ctx, r.db).First(&affiliate, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAffiliateNotFound
		}
		return nil, fmt.Errorf("failed to find affiliate: %w", result.Error)
	}
	return &affiliate, nil
}
