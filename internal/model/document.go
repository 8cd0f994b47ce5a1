// internal/model/document.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentType string

const (
	DocumentContract    DocumentType = "contract"
	DocumentArbitration DocumentType = "arbitration"
	DocumentMOU         DocumentType = "mou"
	DocumentBylaws      DocumentType = "bylaws"
	DocumentResearch    DocumentType = "research"
	DocumentGeneral     DocumentType = "general"
)

var DocumentTypes = []DocumentType{
	DocumentContract,
	DocumentArbitration,
	DocumentMOU,
	DocumentBylaws,
	DocumentResearch,
	DocumentGeneral,
}

func (t DocumentType) Valid() bool {
	for _, v := range DocumentTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Contract statuses
const (
	ContractActive     = "active"
	ContractExpired    = "expired"
	ContractPending    = "pending"
	ContractTerminated = "terminated"
)

// Document is a nationally managed file. Contract fields (Status,
// ExpirationDate, EffectiveDate) are only set on contracts; arbitration fields
// (AwardDate, Arbitrator, Outcome) only on arbitrations.
type Document struct {
	ID             uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title          string       `gorm:"type:text;not null" json:"title"`
	Type           DocumentType `gorm:"type:text;not null;index" json:"type"`
	CategoryGroup  string       `gorm:"type:text;index" json:"category_group,omitempty"`
	Description    string       `gorm:"type:text" json:"description,omitempty"`
	Status         *string      `gorm:"type:text" json:"status"`
	ExpirationDate *time.Time   `gorm:"type:date" json:"expiration_date"`
	EffectiveDate  *time.Time   `gorm:"type:date" json:"effective_date"`
	AwardDate      *time.Time   `gorm:"type:date" json:"award_date"`
	Arbitrator     *string      `gorm:"type:text" json:"arbitrator"`
	Outcome        *string      `gorm:"type:text" json:"outcome"`
	FileName       string       `gorm:"type:text;not null" json:"file_name"`
	FilePath       string       `gorm:"type:text;not null" json:"file_path"`
	MimeType       string       `gorm:"type:text" json:"mime_type,omitempty"`
	FileSize       int64        `json:"file_size"`
	ContentExtract *string      `gorm:"type:text" json:"content_extract,omitempty"`
	IsArchived     bool         `gorm:"not null;default:false" json:"is_archived"`
	IsPublic       bool         `gorm:"not null;default:false" json:"is_public"`
	UploadedByID   uuid.UUID    `gorm:"type:uuid;not null" json:"uploaded_by_id"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// DocumentSummary is the projection returned for simplified listings.
type DocumentSummary struct {
	ID             uuid.UUID    `json:"id"`
	Title          string       `json:"title"`
	Type           DocumentType `json:"type"`
	CategoryGroup  string       `json:"category_group,omitempty"`
	Status         *string      `json:"status"`
	ExpirationDate *time.Time   `json:"expiration_date"`
	EffectiveDate  *time.Time   `json:"effective_date"`
	AwardDate      *time.Time   `json:"award_date"`
	IsArchived     bool         `json:"is_archived"`
	IsPublic       bool         `json:"is_public"`
	CreatedAt      time.Time    `json:"created_at"`
}
