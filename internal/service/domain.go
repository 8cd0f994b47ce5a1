package service

import (
	"context"

	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/dangerclosesec/orgadmin/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// domainNameTag checks a normalized entry. RFC 1123 hostnames include bare
// labels, so top-level domains such as "ru" pass.
const domainNameTag = "required,max=253,hostname_rfc1123"

type DomainService struct {
	tx       repository.TransactorIface
	domains  repository.DomainRepositoryIface
	validate *validator.Validate
}

func NewDomainService(tx repository.TransactorIface, domains repository.DomainRepositoryIface) *DomainService {
	return &DomainService{
		tx:       tx,
		domains:  domains,
		validate: newValidator(),
	}
}

type CreateDomainInput struct {
	Domain        string     `json:"domain" validate:"required,max=253"`
	Type          string     `json:"type" validate:"omitempty,oneof=domain tld"`
	IsBlacklisted bool       `json:"is_blacklisted"`
	AffiliateID   *uuid.UUID `json:"affiliate_id"`
}

type BlockDomainsInput struct {
	Domains     []string   `json:"domains" validate:"required,min=1,dive,required,max=253"`
	AffiliateID *uuid.UUID `json:"affiliate_id"`
}

type DeleteDomainsInput struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1,dive,required"`
}

func (s *DomainService) List(ctx context.Context, filter repository.DomainFilter, page repository.PageRequest) (*repository.Page[model.Domain], error) {
	return s.domains.Query(ctx, filter, page)
}

// Create adds a single entry. The value is normalized and its type inferred
// when not given.
func (s *DomainService) Create(ctx context.Context, input CreateDomainInput) (*model.Domain, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.NewValidationError(err)
	}

	name, err := s.normalizeDomainField("domain", input.Domain)
	if err != nil {
		return nil, err
	}

	d := &model.Domain{
		Domain:        name,
		Type:          model.DomainType(input.Type),
		IsBlacklisted: input.IsBlacklisted,
		AffiliateID:   input.AffiliateID,
	}
	if d.Type == "" {
		d.Type = model.InferDomainType(name)
	}

	if err := s.domains.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Block blacklists every listed domain in one transaction, creating missing
// entries.
func (s *DomainService) Block(ctx context.Context, input BlockDomainsInput) ([]model.Domain, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.NewValidationError(err)
	}

	names := make([]string, 0, len(input.Domains))
	seen := make(map[string]bool, len(input.Domains))
	for _, raw := range input.Domains {
		name, err := s.normalizeDomainField("domains", raw)
		if err != nil {
			return nil, err
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	blocked := make([]model.Domain, 0, len(names))
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, name := range names {
			d, err := s.domains.Blacklist(ctx, name, input.AffiliateID)
			if err != nil {
				return err
			}
			blocked = append(blocked, *d)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return blocked, nil
}

// Delete removes the listed entries and returns how many were deleted.
func (s *DomainService) Delete(ctx context.Context, input DeleteDomainsInput) (int64, error) {
	if err := s.validate.Struct(input); err != nil {
		return 0, domain.NewValidationError(err)
	}
	return s.domains.DeleteByIDs(ctx, uniqueIDs(input.IDs))
}

// IsBlocked reports whether the email's domain, a parent domain or its TLD
// is blacklisted globally or for the affiliate.
func (s *DomainService) IsBlocked(ctx context.Context, email string, affiliateID *uuid.UUID) (bool, error) {
	candidates := model.EmailDomainCandidates(email)
	if len(candidates) == 0 {
		return false, nil
	}
	return s.domains.AnyBlacklisted(ctx, candidates, affiliateID)
}

func (s *DomainService) normalizeDomainField(field, raw string) (string, error) {
	name := model.NormalizeDomain(raw)
	if err := s.validate.Var(name, domainNameTag); err != nil {
		return "", domain.FieldError(field, "must be a valid domain or top-level domain")
	}
	return name, nil
}
