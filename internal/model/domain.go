// internal/model/domain.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DomainType string

const (
	DomainTypeDomain DomainType = "domain"
	DomainTypeTLD    DomainType = "tld"
)

// Domain is a blocklist/allowlist entry for email domains. A nil AffiliateID
// makes the entry global.
type Domain struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Domain        string     `gorm:"type:citext;not null;uniqueIndex:idx_domains_domain_affiliate" json:"domain"`
	Type          DomainType `gorm:"type:text;not null;default:'domain'" json:"type"`
	IsBlacklisted bool       `gorm:"not null;default:false" json:"is_blacklisted"`
	AffiliateID   *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_domains_domain_affiliate" json:"affiliate_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Affiliate *Affiliate `gorm:"foreignKey:AffiliateID" json:"affiliate,omitempty"`
}

func (d *Domain) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// NormalizeDomain lowercases the value and strips whitespace, a leading "@"
// or "." and a trailing ".".
func NormalizeDomain(raw string) string {
	d := strings.ToLower(strings.TrimSpace(raw))
	d = strings.TrimLeft(d, "@.")
	return strings.TrimRight(d, ".")
}

// InferDomainType treats values without a dot as top-level domains.
func InferDomainType(normalized string) DomainType {
	if strings.Contains(normalized, ".") {
		return DomainTypeDomain
	}
	return DomainTypeTLD
}

// EmailDomainCandidates returns the domain, each parent domain and the TLD of
// an email address, most specific first. "a@mail.example.co.uk" yields
// mail.example.co.uk, example.co.uk, co.uk, uk.
func EmailDomainCandidates(email string) []string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return nil
	}
	host := NormalizeDomain(email[at+1:])
	if host == "" {
		return nil
	}

	labels := strings.Split(host, ".")
	candidates := make([]string, 0, len(labels))
	for i := range labels {
		candidates = append(candidates, strings.Join(labels[i:], "."))
	}
	return candidates
}
