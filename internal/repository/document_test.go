package repository

import (
	"testing"

	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestDocumentDefaultOrder(t *testing.T) {
	build := func(req PageRequest) string {
		var docs []model.Document
		return documentSort.Apply(dryRun(t).Model(&model.Document{}), req).Find(&docs).Statement.SQL.String()
	}

	undatedLast := "ORDER BY CASE WHEN documents.award_date IS NULL AND documents.expiration_date IS NULL AND documents.effective_date IS NULL THEN 1 ELSE 0 END ASC,"

	asc := build(PageRequest{SortOrder: "asc"})
	assert.Contains(t, asc, undatedLast+"LEAST(documents.award_date, documents.expiration_date, documents.effective_date) ASC,documents.created_at DESC")

	desc := build(PageRequest{})
	assert.Contains(t, desc, undatedLast+"LEAST(documents.award_date, documents.expiration_date, documents.effective_date) DESC")

	byTitle := build(PageRequest{SortBy: "title", SortOrder: "asc"})
	assert.Contains(t, byTitle, `ORDER BY "documents"."title"`)
	assert.NotContains(t, byTitle, "LEAST")
}
