// internal/model/auditable.go
package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// AuditableKind names the entity kinds that can be the subject of an ActivityLog.
type AuditableKind string

const (
	KindMember          AuditableKind = "member"
	KindAffiliate       AuditableKind = "affiliate"
	KindRole            AuditableKind = "role"
	KindOfficerPosition AuditableKind = "officer_position"
	KindDocument        AuditableKind = "document"
)

// AuditableTables maps each kind to the table holding its rows.
var AuditableTables = map[AuditableKind]string{
	KindMember:          "members",
	KindAffiliate:       "affiliates",
	KindRole:            "roles",
	KindOfficerPosition: "officer_positions",
	KindDocument:        "documents",
}

func (k AuditableKind) Valid() bool {
	_, ok := AuditableTables[k]
	return ok
}

// ParseAuditableKind accepts the stored value in any case.
func ParseAuditableKind(s string) (AuditableKind, error) {
	k := AuditableKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown auditable kind %q", s)
	}
	return k, nil
}

// Auditable is a typed reference to any auditable entity.
type Auditable struct {
	Kind AuditableKind `json:"kind"`
	ID   uuid.UUID     `json:"id"`
}

func (a Auditable) String() string {
	return string(a.Kind) + ":" + a.ID.String()
}

func MemberSubject(id uuid.UUID) Auditable {
	return Auditable{Kind: KindMember, ID: id}
}

func RoleSubject(id uuid.UUID) Auditable {
	return Auditable{Kind: KindRole, ID: id}
}

func OfficerPositionSubject(id uuid.UUID) Auditable {
	return Auditable{Kind: KindOfficerPosition, ID: id}
}

func DocumentSubject(id uuid.UUID) Auditable {
	return Auditable{Kind: KindDocument, ID: id}
}
