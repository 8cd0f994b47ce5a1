package model

import (
	"time"

	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Constants for ActivityLog actions
const (
	ActionAssigned = "assigned"
	ActionRemoved  = "removed"
	ActionCreated  = "created"
	ActionUpdated  = "updated"
	ActionDeleted  = "deleted"
)

// ActivityLog is an append-only record of a mutation performed by a user.
type ActivityLog struct {
	ID            uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        uuid.UUID         `json:"user_id" gorm:"type:uuid;not null;index"`
	AffiliateID   *uuid.UUID        `json:"affiliate_id" gorm:"type:uuid;index"`
	Action        string            `json:"action" gorm:"type:text;not null;index"`
	AuditableType AuditableKind     `json:"auditable_type" gorm:"type:text;not null;index:idx_activity_logs_auditable"`
	AuditableID   uuid.UUID         `json:"auditable_id" gorm:"type:uuid;not null;index:idx_activity_logs_auditable"`
	AuditableName string            `json:"auditable_name" gorm:"type:text"`
	OldValues     datatypes.JSONMap `json:"old_values" gorm:"type:jsonb"`
	NewValues     datatypes.JSONMap `json:"new_values" gorm:"type:jsonb"`
	IPAddress     *string           `json:"ip_address" gorm:"type:text"`
	UserAgent     *string           `json:"user_agent" gorm:"type:text"`
	RequestID     *string           `json:"request_id,omitempty" gorm:"type:text"`
	CreatedAt     time.Time         `json:"created_at" gorm:"index"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for ActivityLog
func (ActivityLog) TableName() string {
	return "activity_logs"
}

func (l *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	return nil
}

func (l *ActivityLog) BeforeUpdate(tx *gorm.DB) error {
	return domain.ErrImmutableAuditLog
}

func (l *ActivityLog) BeforeDelete(tx *gorm.DB) error {
	return domain.ErrImmutableAuditLog
}
