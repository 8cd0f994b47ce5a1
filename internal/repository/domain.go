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

type DomainRepositoryIface interface {
	Query(ctx context.Context, filter DomainFilter, page PageRequest) (*Page[model.Domain], error)
	Find(ctx context.Context, name string, affiliateID *uuid.UUID) (*model.Domain, error)
	Create(ctx context.Context, d *model.Domain) error
	Blacklist(ctx context.Context, name string, affiliateID *uuid.UUID) (*model.Domain, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	AnyBlacklisted(ctx context.Context, names []string, affiliateID *uuid.UUID) (bool, error)
}

// DomainFilter holds the optional predicates of a domain listing. Global
// restricts results to entries without an affiliate.
type DomainFilter struct {
	Search        string
	Type          *model.DomainType
	AffiliateID   *uuid.UUID
	Global        bool
	IsBlacklisted *bool
}

func (f DomainFilter) Scope(db *gorm.DB) *gorm.DB {
	db = db.Scopes(
		Search(f.Search, "domains.domain"),
		Eq("domains.type", f.Type),
		Eq("domains.affiliate_id", f.AffiliateID),
		Eq("domains.is_blacklisted", f.IsBlacklisted),
	)
	if f.Global {
		db = db.Where("domains.affiliate_id IS NULL")
	}
	return db
}

var domainSort = SortSpec{
	Columns: map[string]string{
		"domain":     "domains.domain",
		"type":       "domains.type",
		"created_at": "domains.created_at",
		"updated_at": "domains.updated_at",
	},
	DefaultColumn: "domains.created_at",
}

type DomainRepository struct {
	db *gorm.DB
}

func NewDomainRepository(db *gorm.DB) *DomainRepository {
	return &DomainRepository{db: db}
}

func (r *DomainRepository) Query(ctx context.Context, filter DomainFilter, page PageRequest) (*Page[model.Domain], error) {
	query := r.db.WithContext(ctx).
		Model(&model.Domain{}).
		Preload("Affiliate").
		Scopes(filter.Scope)

	domains, err := Paginate[model.Domain](ctx, query, page, domainSort)
	if err != nil {
		return nil, fmt.Errorf("failed to query domains: %w", err)
	}
	return domains, nil
}

// scoped matches the entry for name in the given affiliate, or the global
// entry when affiliateID is nil.
func scoped(name string, affiliateID *uuid.UUID) Scope {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("domain = ?", name)
		if affiliateID == nil {
			return db.Where("affiliate_id IS NULL")
		}
		return db.Where("affiliate_id = ?", *affiliateID)
	}
}

func (r *DomainRepository) Find(ctx context.Context, name string, affiliateID *uuid.UUID) (*model.Domain, error) {
	var d model.Domain
	result := conn(ctx, r.db).Scopes(scoped(name, affiliateID)).First(&d)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDomainNotFound
		}
		return nil, fmt.Errorf("failed to find domain: %w", result.Error)
	}
	return &d, nil
}

func (r *DomainRepository) Create(ctx context.Context, d *model.Domain) error {
	if _, err := r.Find(ctx, d.Domain, d.AffiliateID); err == nil {
		return domain.ErrDomainExists
	} else if !errors.Is(err, domain.ErrDomainNotFound) {
		return err
	}

	if err := conn(ctx, r.db).Omit("Affiliate").Create(d).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDomainExists
		}
		return fmt.Errorf("failed to create domain: %w", err)
	}
	return nil
}

// Blacklist updates or creates the entry for name with is_blacklisted set.
func (r *DomainRepository) Blacklist(ctx context.Context, name string, affiliateID *uuid.UUID) (*model.Domain, error) {
	existing, err := r.Find(ctx, name, affiliateID)
	switch {
	case err == nil:
		if existing.IsBlacklisted {
			return existing, nil
		}
		result := conn(ctx, r.db).Model(existing).Update("is_blacklisted", true)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to blacklist domain: %w", result.Error)
		}
		existing.IsBlacklisted = true
		return existing, nil
	case !errors.Is(err, domain.ErrDomainNotFound):
		return nil, err
	}

	d := &model.Domain{
		Domain:        name,
		Type:          model.InferDomainType(name),
		IsBlacklisted: true,
		AffiliateID:   affiliateID,
	}
	if err := conn(ctx, r.db).Omit("Affiliate").Create(d).Error; err != nil {
		return nil, fmt.Errorf("failed to create blacklisted domain: %w", err)
	}
	return d, nil
}

func (r *DomainRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := conn(ctx, r.db).Where("id IN ?", ids).Delete(&model.Domain{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete domains: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// AnyBlacklisted reports whether any of names is blacklisted globally or, when
// affiliateID is set, for that affiliate.
func (r *DomainRepository) AnyBlacklisted(ctx context.Context, names []string, affiliateID *uuid.UUID) (bool, error) {
	if len(names) == 0 {
		return false, nil
	}

	query := conn(ctx, r.db).
		Model(&model.Domain{}).
		Where("is_blacklisted = ? AND domain IN ?", true, names)
	if affiliateID == nil {
		query = query.Where("affiliate_id IS NULL")
	} else {
		query = query.Where("(affiliate_id IS NULL OR affiliate_id = ?)", *affiliateID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check blacklisted domains: %w", err)
	}
	return count > 0, nil
}
