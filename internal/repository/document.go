package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Document, error)
	Query(ctx context.Context, filter DocumentFilter, page PageRequest) (*Page[model.Document], error)
	QuerySummaries(ctx context.Context, filter DocumentFilter, page PageRequest) (*Page[model.DocumentSummary], error)
	RecentPublic(ctx context.Context, limit int) ([]model.DocumentSummary, error)
	CountPublic(ctx context.Context) (int64, error)
	Create(ctx context.Context, doc *model.Document) error
	Update(ctx context.Context, doc *model.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DocumentFilter holds the optional predicates of a document listing.
type DocumentFilter struct {
	Search        string
	Types         []model.DocumentType
	CategoryGroup *string
	IsArchived    *bool
	IsPublic      *bool
}

func (f DocumentFilter) Scope(db *gorm.DB) *gorm.DB {
	return db.Scopes(
		Search(f.Search, "documents.title", "documents.arbitrator", "documents.description", "documents.content_extract"),
		In("documents.type", f.Types),
		Eq("documents.category_group", f.CategoryGroup),
		Eq("documents.is_archived", f.IsArchived),
		Eq("documents.is_public", f.IsPublic),
	)
}

// Rows without any significant date sort last in both directions. LEAST
// ignores NULL arguments.
const (
	documentUndated = "CASE WHEN documents.award_date IS NULL AND documents.expiration_date IS NULL AND documents.effective_date IS NULL THEN 1 ELSE 0 END ASC"
	documentNearest = "LEAST(documents.award_date, documents.expiration_date, documents.effective_date)"
)

var documentSort = SortSpec{
	Columns: map[string]string{
		"title":           "documents.title",
		"type":            "documents.type",
		"category_group":  "documents.category_group",
		"status":          "documents.status",
		"expiration_date": "documents.expiration_date",
		"effective_date":  "documents.effective_date",
		"award_date":      "documents.award_date",
		"created_at":      "documents.created_at",
		"updated_at":      "documents.updated_at",
	},
	Default: func(db *gorm.DB, desc bool) *gorm.DB {
		dir := " ASC"
		if desc {
			dir = " DESC"
		}
		return db.Order(documentUndated).
			Order(documentNearest + dir).
			Order("documents.created_at DESC")
	},
}

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	var doc model.Document
	result := conn(ctx, r.db).First(&doc, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to find document: %w", result.Error)
	}
	return &doc, nil
}

func (r *DocumentRepository) Query(ctx context.Context, filter DocumentFilter, page PageRequest) (*Page[model.Document], error) {
	query := r.db.WithContext(ctx).Model(&model.Document{}).Scopes(filter.Scope)

	docs, err := Paginate[model.Document](ctx, query, page, documentSort)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	return docs, nil
}

// QuerySummaries is Query projected onto DocumentSummary columns.
func (r *DocumentRepository) QuerySummaries(ctx context.Context, filter DocumentFilter, page PageRequest) (*Page[model.DocumentSummary], error) {
	query := r.db.WithContext(ctx).Model(&model.Document{}).Scopes(filter.Scope)

	docs, err := Paginate[model.DocumentSummary](ctx, query, page, documentSort)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	return docs, nil
}

func (r *DocumentRepository) RecentPublic(ctx context.Context, limit int) ([]model.DocumentSummary, error) {
	var docs []model.DocumentSummary
	result := conn(ctx, r.db).
		Model(&model.Document{}).
		Where("is_public = ? AND is_archived = ?", true, false).
		Order("created_at DESC").
		Limit(limit).
		Find(&docs)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find recent documents: %w", result.Error)
	}
	return docs, nil
}

func (r *DocumentRepository) CountPublic(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&model.Document{}).Where("is_public = ? AND is_archived = ?", true, false).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

func (r *DocumentRepository) Create(ctx context.Context, doc *model.Document) error {
	if err := conn(ctx, r.db).Create(doc).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// Update saves every column, including the nil ones cleared by a type change.
func (r *DocumentRepository) Update(ctx context.Context, doc *model.Document) error {
	if err := conn(ctx, r.db).Save(doc).Error; err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&model.Document{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}
