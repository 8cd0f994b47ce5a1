// internal/model/officer.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OfficerPosition is a seat that can be held within an affiliate, e.g. President.
type OfficerPosition struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Order     int       `gorm:"column:order;not null;default:0" json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *OfficerPosition) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// AffiliateOfficer assigns a member to a position within an affiliate.
// A nil EndDate means the assignment is current.
type AffiliateOfficer struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AffiliateID uuid.UUID  `gorm:"type:uuid;not null;index" json:"affiliate_id"`
	PositionID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"position_id"`
	MemberID    *uuid.UUID `gorm:"type:uuid;index" json:"member_id"`
	StartDate   time.Time  `gorm:"not null" json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	IsVacant    bool       `gorm:"not null;default:false" json:"is_vacant"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Position *OfficerPosition `gorm:"foreignKey:PositionID" json:"position,omitempty"`
	Member   *Member          `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (o *AffiliateOfficer) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// IsCurrent reports whether the assignment is held at the given instant.
func (o *AffiliateOfficer) IsCurrent(at time.Time) bool {
	if o.IsVacant {
		return false
	}
	return o.EndDate == nil || o.EndDate.After(at)
}

type HistoryLevel string

const (
	LevelNational  HistoryLevel = "national"
	LevelAffiliate HistoryLevel = "affiliate"
)

// OfficerHistory is the temporal record of a user holding a role or position.
// Rows are opened on assignment and only ever updated to set EndDate.
type OfficerHistory struct {
	ID          uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EntityType  AuditableKind `gorm:"type:text;not null;index:idx_officer_history_entity" json:"entity_type"`
	EntityID    uuid.UUID     `gorm:"type:uuid;not null;index:idx_officer_history_entity" json:"entity_id"`
	UserID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	AffiliateID *uuid.UUID    `gorm:"type:uuid;index" json:"affiliate_id"`
	StartDate   time.Time     `gorm:"not null" json:"start_date"`
	EndDate     *time.Time    `json:"end_date"`
	Level       HistoryLevel  `gorm:"type:text;not null" json:"level"`
	CreatedAt   time.Time     `json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (OfficerHistory) TableName() string {
	return "officer_histories"
}

func (h *OfficerHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
