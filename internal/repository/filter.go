package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Scope is a query predicate applied with (*gorm.DB).Scopes.
type Scope = func(*gorm.DB) *gorm.DB

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search matches term as a case-insensitive substring of any of columns.
// An empty term adds no predicate.
func Search(term string, columns ...string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}

		pattern := "%" + likeEscaper.Replace(term) + "%"
		parts := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, c := range columns {
			parts[i] = c + " ILIKE ?"
			args[i] = pattern
		}
		return db.Where("("+strings.Join(parts, " OR ")+")", args...)
	}
}

// In restricts column to values. An empty list adds no predicate.
func In[T any](column string, values []T) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if len(values) == 0 {
			return db
		}
		return db.Where(column+" IN ?", values)
	}
}

// Eq compares column to *value when value is set.
func Eq[T any](column string, value *T) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if value == nil {
			return db
		}
		return db.Where(column+" = ?", *value)
	}
}

// Between bounds column by the set ends of [from, to].
func Between(column string, from, to *time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if from != nil {
			db = db.Where(column+" >= ?", *from)
		}
		if to != nil {
			db = db.Where(column+" <= ?", *to)
		}
		return db
	}
}

// SplitList splits comma separated query values, dropping blanks.
func SplitList(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
