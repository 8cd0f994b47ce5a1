package model

// All lists every persisted model, in dependency order, for migrations.
func All() []any {
	return []any{
		&User{},
		&Permission{},
		&UserPermission{},
		&Role{},
		&RoleUser{},
		&Affiliate{},
		&Member{},
		&OfficerPosition{},
		&AffiliateOfficer{},
		&OfficerHistory{},
		&Domain{},
		&Document{},
		&ActivityLog{},
	}
}
