// internal/model/affiliate.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Affiliate struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Abbreviation string    `gorm:"type:text" json:"abbreviation,omitempty"`
	State        string    `gorm:"type:text" json:"state,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (a *Affiliate) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberInactive MemberStatus = "inactive"
	MemberRetired  MemberStatus = "retired"
)

// Member belongs to an affiliate, or to the national organization when
// AffiliateID is nil.
type Member struct {
	ID           uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AffiliateID  *uuid.UUID   `gorm:"type:uuid;index" json:"affiliate_id"`
	UserID       *uuid.UUID   `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	FirstName    string       `gorm:"type:text;not null" json:"first_name"`
	LastName     string       `gorm:"type:text;not null" json:"last_name"`
	Email        string       `gorm:"type:citext" json:"email"`
	MemberNumber string       `gorm:"type:text;index" json:"member_number,omitempty"`
	Status       MemberStatus `gorm:"type:text;not null;default:'active'" json:"status"`
	JoinedAt     *time.Time   `json:"joined_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	Affiliate *Affiliate `gorm:"foreignKey:AffiliateID" json:"affiliate,omitempty"`
	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *Member) DisplayName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}
