// internal/model/role.go
package model

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Well-known role slugs.
const (
	RoleSuperAdmin     = "super-admin"
	RoleNationalAdmin  = "national-admin"
	RoleAffiliateAdmin = "affiliate-admin"
)

type Role struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string     `gorm:"type:text;not null" json:"name"`
	Slug         string     `gorm:"type:text;uniqueIndex;not null" json:"slug"`
	ParentRoleID *uuid.UUID `gorm:"type:uuid;index" json:"parent_role_id"`
	Order        int        `gorm:"column:order;not null;default:0" json:"order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Children    []Role       `gorm:"foreignKey:ParentRoleID" json:"children,omitempty"`
	Permissions []Permission `gorm:"many2many:role_permissions;joinForeignKey:RoleID;joinReferences:PermissionID" json:"permissions,omitempty"`
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// IsLeaf reports whether the role can be picked in assignment flows.
func (r *Role) IsLeaf() bool {
	return len(r.Children) == 0
}

// RoleUser is the pivot between roles and users.
type RoleUser struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RoleID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_role_users_role_user" json:"role_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_role_users_role_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RoleUser) TableName() string {
	return "role_users"
}

func (ru *RoleUser) BeforeCreate(tx *gorm.DB) error {
	if ru.ID == uuid.Nil {
		ru.ID = uuid.New()
	}
	return nil
}

// BuildRoleTree nests a flat role list by ParentRoleID. Roots and siblings are
// ordered by Order, then Name. Roles whose parent is missing are treated as roots.
func BuildRoleTree(roles []Role) []Role {
	byParent := make(map[uuid.UUID][]Role)
	known := make(map[uuid.UUID]bool, len(roles))
	for _, r := range roles {
		known[r.ID] = true
	}

	var roots []Role
	for _, r := range roles {
		r.Children = nil
		if r.ParentRoleID == nil || !known[*r.ParentRoleID] {
			roots = append(roots, r)
			continue
		}
		byParent[*r.ParentRoleID] = append(byParent[*r.ParentRoleID], r)
	}

	var attach func(nodes []Role, seen map[uuid.UUID]bool) []Role
	attach = func(nodes []Role, seen map[uuid.UUID]bool) []Role {
		sortRoles(nodes)
		for i := range nodes {
			if seen[nodes[i].ID] {
				continue
			}
			seen[nodes[i].ID] = true
			nodes[i].Children = attach(byParent[nodes[i].ID], seen)
		}
		return nodes
	}

	return attach(roots, make(map[uuid.UUID]bool, len(roles)))
}

// LeafRoles flattens a tree and keeps only roles without children.
func LeafRoles(tree []Role) []Role {
	var leaves []Role
	var walk func(nodes []Role)
	walk = func(nodes []Role) {
		for _, n := range nodes {
			if n.IsLeaf() {
				leaves = append(leaves, n)
				continue
			}
			walk(n.Children)
		}
	}
	walk(tree)
	return leaves
}

func sortRoles(roles []Role) {
	sort.SliceStable(roles, func(i, j int) bool {
		if roles[i].Order != roles[j].Order {
			return roles[i].Order < roles[j].Order
		}
		return roles[i].Name < roles[j].Name
	})
}
